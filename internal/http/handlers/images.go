package handlers

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bhavyasri23-dev/ai-image-generator/internal/enhancer"
	"github.com/bhavyasri23-dev/ai-image-generator/internal/imagegen"
	"github.com/bhavyasri23-dev/ai-image-generator/internal/middleware"
)

type enhanceRequest struct {
	Prompt      string `json:"prompt"`
	Style       string `json:"style"`
	CameraAngle string `json:"camera_angle"`
	DetailLevel string `json:"detail_level"`
}

type enhanceResponse struct {
	EnhancedPrompt string `json:"enhanced_prompt"`
	Style          string `json:"style"`
	CameraAngle    string `json:"camera_angle"`
	DetailLevel    string `json:"detail_level"`
}

type generateResponse struct {
	EnhancedPrompt string `json:"enhanced_prompt"`
	Model          string `json:"model"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
	Image          string `json:"image"`
	DownloadURL    string `json:"download_url"`
}

func (r enhanceRequest) selections() (enhancer.Style, enhancer.CameraAngle, enhancer.DetailLevel) {
	return enhancer.ParseStyle(r.Style),
		enhancer.ParseCameraAngle(r.CameraAngle),
		enhancer.ParseDetailLevel(r.DetailLevel)
}

// PromptsEnhance previews the expanded prompt without touching the remote
// model. It cannot fail beyond payload decoding.
func (a *App) PromptsEnhance(w http.ResponseWriter, r *http.Request) {
	var req enhanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	style, angle, detail := req.selections()
	a.json(w, http.StatusOK, enhanceResponse{
		EnhancedPrompt: enhancer.Enhance(req.Prompt, style, angle, detail),
		Style:          string(style),
		CameraAngle:    string(angle),
		DetailLevel:    string(detail),
	})
}

// ImagesGenerate expands the prompt and performs one blocking generation
// call. The response carries the exact prompt used, the PNG payload, and a
// data URL suitable for a download link.
func (a *App) ImagesGenerate(w http.ResponseWriter, r *http.Request) {
	var req enhanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	style, angle, detail := req.selections()
	prompt := enhancer.Enhance(req.Prompt, style, angle, detail)

	res, err := a.Generator.Generate(r.Context(), prompt, imagegen.DefaultNegativePrompt)
	if err != nil {
		a.Logger.Error().
			Err(err).
			Str("request_id", middleware.RequestIDFromContext(r.Context())).
			Msg("image generation failed")
		if errors.Is(err, imagegen.ErrMissingCredential) {
			a.error(w, http.StatusServiceUnavailable, "missing_credential", err.Error())
			return
		}
		a.error(w, http.StatusBadGateway, "generation_failed", err.Error())
		return
	}

	pngBytes, err := imagegen.EncodePNG(res.Image)
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", err.Error())
		return
	}
	encoded := base64.StdEncoding.EncodeToString(pngBytes)
	a.json(w, http.StatusOK, generateResponse{
		EnhancedPrompt: res.Prompt,
		Model:          res.Model,
		Width:          res.Width,
		Height:         res.Height,
		Image:          encoded,
		DownloadURL:    "data:image/png;base64," + encoded,
	})
}
