// Package hf implements a thin client for the Hugging Face hosted inference
// API, covering the single text-to-image operation this service needs.
package hf

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bhavyasri23-dev/ai-image-generator/internal/infra"
)

// ErrMissingToken indicates that the client was configured without credentials.
var ErrMissingToken = errors.New("hf: api token is required")

// DefaultModel is the hosted text-to-image model addressed by this service.
const DefaultModel = "stabilityai/stable-diffusion-xl-base-1.0"

// Options configures the Hugging Face inference client.
type Options struct {
	Token          string
	BaseURL        string
	Model          string
	HTTPClient     *http.Client
	Logger         *infra.Logger
	RequestTimeout time.Duration
}

// Client performs HTTP calls to the Hugging Face inference API.
type Client struct {
	token      string
	baseURL    string
	model      string
	httpClient *http.Client
	logger     *infra.Logger
}

// ImageRequest captures the inputs for a single text-to-image call.
type ImageRequest struct {
	Prompt         string
	NegativePrompt string
	Width          int
	Height         int
	GuidanceScale  float64
	InferenceSteps int
}

// ImageAsset is the raw result of a text-to-image call. Data holds the image
// bytes exactly as returned by the endpoint; Format is the reported MIME type.
type ImageAsset struct {
	Data   []byte
	Format string
}

type inferenceRequest struct {
	Inputs     string          `json:"inputs"`
	Parameters inferenceParams `json:"parameters"`
}

type inferenceParams struct {
	NegativePrompt string  `json:"negative_prompt,omitempty"`
	Width          int     `json:"width,omitempty"`
	Height         int     `json:"height,omitempty"`
	GuidanceScale  float64 `json:"guidance_scale,omitempty"`
	InferenceSteps int     `json:"num_inference_steps,omitempty"`
}

type errorResponse struct {
	Error json.RawMessage `json:"error"`
}

// NewClient constructs a client with sane defaults and injected dependencies.
func NewClient(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.RequestTimeout
		if timeout <= 0 {
			timeout = 120 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://api-inference.huggingface.co"
	}
	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = DefaultModel
	}
	var logger *infra.Logger
	if opts.Logger != nil {
		logger = opts.Logger
	} else {
		discard := zerolog.New(io.Discard)
		l := infra.Logger(discard)
		logger = &l
	}
	return &Client{
		token:      strings.TrimSpace(opts.Token),
		baseURL:    baseURL,
		model:      model,
		httpClient: httpClient,
		logger:     logger,
	}
}

// Model returns the configured model identifier.
func (c *Client) Model() string {
	return c.model
}

// HasCredentials reports whether the client can perform remote calls.
func (c *Client) HasCredentials() bool {
	return c.token != ""
}

// TextToImage invokes the inference endpoint once and returns the raw image
// payload. No retries are attempted and no network call happens without a
// token.
func (c *Client) TextToImage(ctx context.Context, req ImageRequest) (*ImageAsset, error) {
	if !c.HasCredentials() {
		return nil, ErrMissingToken
	}
	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		return nil, errors.New("hf: prompt is required")
	}
	payload := inferenceRequest{
		Inputs: prompt,
		Parameters: inferenceParams{
			NegativePrompt: strings.TrimSpace(req.NegativePrompt),
			Width:          req.Width,
			Height:         req.Height,
			GuidanceScale:  req.GuidanceScale,
			InferenceSteps: req.InferenceSteps,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("hf: encode request: %w", err)
	}
	endpoint := c.baseURL + "/models/" + c.model
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("hf: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "image/png")
	httpReq.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("hf: http request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("hf: read response: %w", err)
	}

	if resp.StatusCode >= 300 {
		if detail := decodeError(raw); detail != "" {
			return nil, fmt.Errorf("hf: %s (status %d)", detail, resp.StatusCode)
		}
		return nil, fmt.Errorf("hf: status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	if len(raw) == 0 {
		return nil, errors.New("hf: empty image payload")
	}

	format := resp.Header.Get("Content-Type")
	if format == "" {
		format = "image/png"
	}
	c.logger.Debug().
		Str("model", c.model).
		Int("bytes", len(raw)).
		Str("format", format).
		Msg("hf: generated image asset")
	return &ImageAsset{Data: raw, Format: format}, nil
}

// decodeError extracts a human-readable message from an error body. The API
// reports either {"error": "..."} or {"error": ["...", ...]}.
func decodeError(raw []byte) string {
	var detail errorResponse
	if err := json.Unmarshal(raw, &detail); err != nil || len(detail.Error) == 0 {
		return ""
	}
	var single string
	if err := json.Unmarshal(detail.Error, &single); err == nil {
		return strings.TrimSpace(single)
	}
	var many []string
	if err := json.Unmarshal(detail.Error, &many); err == nil {
		return strings.TrimSpace(strings.Join(many, "; "))
	}
	return ""
}
