package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/bhavyasri23-dev/ai-image-generator/internal/http/handlers"
	"github.com/bhavyasri23-dev/ai-image-generator/internal/middleware"
)

// NewRouter assembles the service routes with the shared middleware chain.
func NewRouter(app *handlers.App) http.Handler {
	r := chi.NewRouter()

	rateLimit := 30
	var origins []string
	if app.Config != nil {
		rateLimit = app.Config.RateLimitPerMin
		origins = app.Config.CORSAllowedOrigins
	}

	r.Use(
		middleware.RequestID,
		chimiddleware.RealIP,
		chimiddleware.Recoverer,
		middleware.CORS(origins),
		middleware.Logger(app.Logger),
		middleware.RateLimit(rateLimit, time.Minute),
	)

	r.Get("/", app.Index)
	r.Get("/v1/healthz", app.Health)
	r.Get("/v1/status", app.Status)
	r.Post("/v1/prompts/enhance", app.PromptsEnhance)
	r.Post("/v1/images/generate", app.ImagesGenerate)

	return r
}
