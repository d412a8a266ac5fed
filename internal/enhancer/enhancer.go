// Package enhancer expands a short user prompt into a structured SDXL prompt
// by prepending camera and style qualifiers and appending detail and quality
// descriptors. The expansion is a fixed template over static lookup tables;
// it has no side effects and never fails.
package enhancer

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Style selects the overall visual treatment of the generated image.
type Style string

const (
	StyleRealistic Style = "Realistic"
	Style3DRender  Style = "3D Render"
	StyleAnime     Style = "Anime"
	StyleCyberpunk Style = "Cyberpunk"
	StyleCinematic Style = "Cinematic"
)

// CameraAngle selects the framing of the shot. Angles are embedded in the
// prompt verbatim, without a fragment mapping.
type CameraAngle string

const (
	CameraCloseUp        CameraAngle = "Close-up"
	CameraMediumShot     CameraAngle = "Medium shot"
	CameraWideAngle      CameraAngle = "Wide angle"
	CameraUltraWideAngle CameraAngle = "Ultra wide angle"
	CameraFullBody       CameraAngle = "Full body"
)

// DetailLevel selects how much environment detail the prompt asks for.
type DetailLevel string

const (
	DetailLow    DetailLevel = "Low"
	DetailMedium DetailLevel = "Medium"
	DetailHigh   DetailLevel = "High"
	DetailUltra  DetailLevel = "Ultra"
)

// BaseQuality is appended to every enhanced prompt unconditionally.
const BaseQuality = "ultra detailed, high quality, cinematic lighting, realistic shadows"

var styleFragments = map[Style]string{
	StyleRealistic: "photorealistic, real world textures",
	Style3DRender:  "3D render, unreal engine style",
	StyleAnime:     "anime style, vibrant colors",
	StyleCyberpunk: "cyberpunk theme, neon lighting",
	StyleCinematic: "dramatic lighting, movie scene composition",
}

var detailFragments = map[DetailLevel]string{
	DetailLow:    "",
	DetailMedium: "detailed background",
	DetailHigh:   "extremely detailed environment, volumetric lighting",
	DetailUltra:  "hyper detailed environment, global illumination, 8k resolution",
}

// StyleOptions lists the selectable styles in presentation order.
func StyleOptions() []Style {
	return []Style{StyleRealistic, Style3DRender, StyleAnime, StyleCyberpunk, StyleCinematic}
}

// CameraAngleOptions lists the selectable camera angles in presentation order.
func CameraAngleOptions() []CameraAngle {
	return []CameraAngle{CameraCloseUp, CameraMediumShot, CameraWideAngle, CameraUltraWideAngle, CameraFullBody}
}

// DetailLevelOptions lists the selectable detail levels in presentation order.
func DetailLevelOptions() []DetailLevel {
	return []DetailLevel{DetailLow, DetailMedium, DetailHigh, DetailUltra}
}

// Enhance builds the final prompt from the user text and the three selection
// axes. The output is the fixed-order comma join of camera angle, style
// fragment, user text, detail fragment, and the base quality suffix. Unknown
// style or detail values contribute an empty fragment; the join is performed
// regardless, so empty fragments surface as adjacent commas. That mirrors the
// historical behavior and downstream models tolerate it.
func Enhance(userPrompt string, style Style, angle CameraAngle, detail DetailLevel) string {
	parts := []string{
		string(angle),
		styleFragments[style],
		userPrompt,
		detailFragments[detail],
		BaseQuality,
	}
	return strings.Join(parts, ", ")
}

var titleCaser = cases.Title(language.English)

// ParseStyle folds free-form input onto a canonical Style. Unrecognized
// values pass through unchanged so Enhance degrades to an empty fragment
// instead of failing.
func ParseStyle(raw string) Style {
	s := Style(titleCaser.String(strings.TrimSpace(raw)))
	if _, ok := styleFragments[s]; ok {
		return s
	}
	return Style(strings.TrimSpace(raw))
}

// ParseCameraAngle folds free-form input onto a canonical CameraAngle.
// Unrecognized values pass through unchanged and are used verbatim.
func ParseCameraAngle(raw string) CameraAngle {
	trimmed := strings.TrimSpace(raw)
	normalized := strings.ToLower(trimmed)
	for _, angle := range CameraAngleOptions() {
		if strings.ToLower(string(angle)) == normalized {
			return angle
		}
	}
	return CameraAngle(trimmed)
}

// ParseDetailLevel folds free-form input onto a canonical DetailLevel.
// Unrecognized values pass through unchanged and contribute no fragment.
func ParseDetailLevel(raw string) DetailLevel {
	normalized := titleCaser.String(strings.TrimSpace(raw))
	d := DetailLevel(normalized)
	if _, ok := detailFragments[d]; ok {
		return d
	}
	return DetailLevel(strings.TrimSpace(raw))
}
