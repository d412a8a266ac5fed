package infra

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("HF_TOKEN", "")
	t.Setenv("PORT", "")
	t.Setenv("HF_MODEL", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.HFModel != "stabilityai/stable-diffusion-xl-base-1.0" {
		t.Fatalf("HFModel = %q", cfg.HFModel)
	}
	if cfg.HFBaseURL != "https://api-inference.huggingface.co" {
		t.Fatalf("HFBaseURL = %q", cfg.HFBaseURL)
	}
	if cfg.RateLimitPerMin != 30 {
		t.Fatalf("RateLimitPerMin = %d, want 30", cfg.RateLimitPerMin)
	}
}

func TestLoadConfigMissingTokenIsNotFatal(t *testing.T) {
	t.Setenv("HF_TOKEN", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.HFToken != "" {
		t.Fatalf("HFToken = %q, want empty", cfg.HFToken)
	}
}

func TestLoadConfigTrimsToken(t *testing.T) {
	t.Setenv("HF_TOKEN", "  hf_example  ")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.HFToken != "hf_example" {
		t.Fatalf("HFToken = %q, want trimmed value", cfg.HFToken)
	}
}

func TestLoadConfigSplitsCORSOrigins(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com ,")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	want := []string{"https://a.example.com", "https://b.example.com"}
	if len(cfg.CORSAllowedOrigins) != len(want) {
		t.Fatalf("CORSAllowedOrigins = %#v, want %#v", cfg.CORSAllowedOrigins, want)
	}
	for i, origin := range want {
		if cfg.CORSAllowedOrigins[i] != origin {
			t.Fatalf("CORSAllowedOrigins[%d] = %q, want %q", i, cfg.CORSAllowedOrigins[i], origin)
		}
	}
}
