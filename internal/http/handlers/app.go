package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/bhavyasri23-dev/ai-image-generator/internal/imagegen"
	"github.com/bhavyasri23-dev/ai-image-generator/internal/infra"
)

// AppName and AppVersion identify the service in the status endpoint.
const (
	AppName    = "AI Image Generator - Auto Enhance"
	AppVersion = "4.0.0"
)

// App is the handler container holding the service dependencies.
type App struct {
	Config    *infra.Config
	Logger    infra.Logger
	Generator imagegen.Generator
	Model     string
}

// NewApp wires the handler container.
func NewApp(cfg *infra.Config, logger infra.Logger, generator imagegen.Generator, model string) *App {
	return &App{Config: cfg, Logger: logger, Generator: generator, Model: model}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, map[string]errorBody{"error": {Code: code, Message: message}})
}
