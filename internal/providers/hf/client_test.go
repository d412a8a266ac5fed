package hf

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
)

type captureTransport struct {
	calls    int
	lastBody []byte
	lastReq  *http.Request
	status   int
	header   http.Header
	respBody []byte
}

func (c *captureTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	c.calls++
	c.lastReq = req
	if req.Body != nil {
		body, err := io.ReadAll(req.Body)
		if err != nil {
			return nil, err
		}
		req.Body.Close()
		c.lastBody = body
	}
	header := http.Header{}
	for k, values := range c.header {
		header[k] = append([]string(nil), values...)
	}
	status := c.status
	if status == 0 {
		status = http.StatusOK
	}
	return &http.Response{
		StatusCode: status,
		Header:     header,
		Body:       io.NopCloser(bytes.NewReader(c.respBody)),
	}, nil
}

func TestTextToImagePayload(t *testing.T) {
	transport := &captureTransport{
		header:   http.Header{"Content-Type": []string{"image/png"}},
		respBody: []byte{0x89, 'P', 'N', 'G'},
	}
	client := NewClient(Options{
		Token:      "test-token",
		HTTPClient: &http.Client{Transport: transport},
	})

	asset, err := client.TextToImage(context.Background(), ImageRequest{
		Prompt:         "a lighthouse at dusk",
		NegativePrompt: "blurry",
		Width:          768,
		Height:         768,
		GuidanceScale:  8.5,
		InferenceSteps: 30,
	})
	if err != nil {
		t.Fatalf("text to image: %v", err)
	}
	if asset == nil || len(asset.Data) == 0 {
		t.Fatalf("expected image bytes")
	}
	if asset.Format != "image/png" {
		t.Fatalf("format = %q, want image/png", asset.Format)
	}

	if got := transport.lastReq.URL.Path; got != "/models/"+DefaultModel {
		t.Fatalf("path = %q, want /models/%s", got, DefaultModel)
	}
	if got := transport.lastReq.Header.Get("Authorization"); got != "Bearer test-token" {
		t.Fatalf("authorization = %q", got)
	}

	var payload map[string]any
	if err := json.Unmarshal(transport.lastBody, &payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if inputs := payload["inputs"]; inputs != "a lighthouse at dusk" {
		t.Fatalf("inputs = %v", inputs)
	}
	params := payload["parameters"].(map[string]any)
	if params["negative_prompt"] != "blurry" {
		t.Fatalf("negative_prompt = %v", params["negative_prompt"])
	}
	if params["width"].(float64) != 768 || params["height"].(float64) != 768 {
		t.Fatalf("size = %vx%v, want 768x768", params["width"], params["height"])
	}
	if params["guidance_scale"].(float64) != 8.5 {
		t.Fatalf("guidance_scale = %v, want 8.5", params["guidance_scale"])
	}
	if params["num_inference_steps"].(float64) != 30 {
		t.Fatalf("num_inference_steps = %v, want 30", params["num_inference_steps"])
	}
}

func TestTextToImageMissingTokenSkipsNetwork(t *testing.T) {
	transport := &captureTransport{}
	client := NewClient(Options{HTTPClient: &http.Client{Transport: transport}})

	_, err := client.TextToImage(context.Background(), ImageRequest{Prompt: "a cat"})
	if err != ErrMissingToken {
		t.Fatalf("err = %v, want ErrMissingToken", err)
	}
	if transport.calls != 0 {
		t.Fatalf("transport calls = %d, want 0", transport.calls)
	}
}

func TestTextToImageErrorBody(t *testing.T) {
	transport := &captureTransport{
		status:   http.StatusServiceUnavailable,
		header:   http.Header{"Content-Type": []string{"application/json"}},
		respBody: []byte(`{"error":"Model stabilityai/stable-diffusion-xl-base-1.0 is currently loading","estimated_time":42.5}`),
	}
	client := NewClient(Options{
		Token:      "test-token",
		HTTPClient: &http.Client{Transport: transport},
	})

	_, err := client.TextToImage(context.Background(), ImageRequest{Prompt: "a cat"})
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "currently loading") {
		t.Fatalf("error %q missing endpoint message", err)
	}
	if !strings.Contains(err.Error(), "503") {
		t.Fatalf("error %q missing status code", err)
	}
}

func TestTextToImageErrorList(t *testing.T) {
	transport := &captureTransport{
		status:   http.StatusBadRequest,
		respBody: []byte(`{"error":["prompt too long","unsupported size"]}`),
	}
	client := NewClient(Options{
		Token:      "test-token",
		HTTPClient: &http.Client{Transport: transport},
	})

	_, err := client.TextToImage(context.Background(), ImageRequest{Prompt: "a cat"})
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "prompt too long; unsupported size") {
		t.Fatalf("error %q missing joined messages", err)
	}
}

func TestTextToImageEmptyPayload(t *testing.T) {
	transport := &captureTransport{}
	client := NewClient(Options{
		Token:      "test-token",
		HTTPClient: &http.Client{Transport: transport},
	})

	_, err := client.TextToImage(context.Background(), ImageRequest{Prompt: "a cat"})
	if err == nil || !strings.Contains(err.Error(), "empty image payload") {
		t.Fatalf("err = %v, want empty payload error", err)
	}
}

func TestNewClientDefaults(t *testing.T) {
	client := NewClient(Options{Token: " token "})
	if client.Model() != DefaultModel {
		t.Fatalf("model = %q, want %q", client.Model(), DefaultModel)
	}
	if !client.HasCredentials() {
		t.Fatalf("expected trimmed token to count as credentials")
	}
	if client.baseURL != "https://api-inference.huggingface.co" {
		t.Fatalf("baseURL = %q", client.baseURL)
	}
}
