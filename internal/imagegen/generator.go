// Package imagegen turns an enhanced prompt into a decoded, color-normalized
// bitmap by delegating synthesis to a hosted text-to-image model.
package imagegen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/draw"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/bhavyasri23-dev/ai-image-generator/internal/providers/hf"
)

// DefaultNegativePrompt captures visual defects the model should avoid.
const DefaultNegativePrompt = "blurry, low quality, cropped, distorted, extra limbs"

// MissingCredentialMessage is the operator-facing text returned when no API
// token is configured. It is detected before any network attempt.
const MissingCredentialMessage = "Hugging Face API token not configured. Set HF_TOKEN in the environment or a .env file."

// ErrMissingCredential is returned by Generate when the client has no token.
var ErrMissingCredential = errors.New(MissingCredentialMessage)

// Generation parameters fixed by the service; deliberately not configurable.
const (
	imageWidth     = 768
	imageHeight    = 768
	guidanceScale  = 8.5
	inferenceSteps = 30
)

// Result is the immutable outcome of a successful generation, handed to the
// presentation layer together with the exact prompt that produced it.
type Result struct {
	Image  *image.NRGBA
	Prompt string
	Model  string
	Width  int
	Height int
}

// Generator is the contract the presentation layer depends on.
type Generator interface {
	Generate(ctx context.Context, prompt, negativePrompt string) (*Result, error)
}

type inferenceClient interface {
	TextToImage(ctx context.Context, req hf.ImageRequest) (*hf.ImageAsset, error)
	HasCredentials() bool
	Model() string
}

// HFGenerator fulfils the Generator contract against the Hugging Face client.
type HFGenerator struct {
	client inferenceClient
}

// NewHFGenerator wires the generator with a configured inference client.
func NewHFGenerator(client *hf.Client) *HFGenerator {
	return &HFGenerator{client: client}
}

// Generate performs one blocking text-to-image call. The credential check
// happens before any I/O; every transport, auth, or decoding failure is
// collapsed into a single opaque error wrapping the cause text. No retries,
// no partial results.
func (g *HFGenerator) Generate(ctx context.Context, prompt, negativePrompt string) (*Result, error) {
	if g == nil || g.client == nil {
		return nil, errors.New("image generator not configured")
	}
	if !g.client.HasCredentials() {
		return nil, ErrMissingCredential
	}

	asset, err := g.client.TextToImage(ctx, hf.ImageRequest{
		Prompt:         prompt,
		NegativePrompt: negativePrompt,
		Width:          imageWidth,
		Height:         imageHeight,
		GuidanceScale:  guidanceScale,
		InferenceSteps: inferenceSteps,
	})
	if err != nil {
		return nil, fmt.Errorf("image generation failed: %w", err)
	}

	decoded, _, err := image.Decode(bytes.NewReader(asset.Data))
	if err != nil {
		return nil, fmt.Errorf("image generation failed: decode image: %w", err)
	}
	normalized := normalizeRGB(decoded)
	bounds := normalized.Bounds()
	return &Result{
		Image:  normalized,
		Prompt: prompt,
		Model:  g.client.Model(),
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}, nil
}

var _ Generator = (*HFGenerator)(nil)

// normalizeRGB redraws the decoded image into an NRGBA bitmap and forces every
// pixel fully opaque, so palette, grayscale, and transparent sources all come
// out as plain 3-channel color.
func normalizeRGB(src image.Image) *image.NRGBA {
	bounds := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), src, bounds.Min, draw.Src)
	for i := 3; i < len(dst.Pix); i += 4 {
		dst.Pix[i] = 0xFF
	}
	return dst
}
