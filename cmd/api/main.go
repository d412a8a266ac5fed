package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/bhavyasri23-dev/ai-image-generator/internal/http/handlers"
	httpapi "github.com/bhavyasri23-dev/ai-image-generator/internal/http/httpapi"
	"github.com/bhavyasri23-dev/ai-image-generator/internal/imagegen"
	"github.com/bhavyasri23-dev/ai-image-generator/internal/infra"
	"github.com/bhavyasri23-dev/ai-image-generator/internal/providers/hf"
)

func main() {
	// .env is optional; real deployments configure the environment directly.
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	client := hf.NewClient(hf.Options{
		Token:          cfg.HFToken,
		BaseURL:        cfg.HFBaseURL,
		Model:          cfg.HFModel,
		Logger:         &logger,
		RequestTimeout: cfg.HTTPWriteTimeout,
	})
	if !client.HasCredentials() {
		logger.Warn().Msg("HF_TOKEN not configured; generation requests will fail until it is set")
	}
	generator := imagegen.NewHFGenerator(client)

	app := handlers.NewApp(cfg, logger, generator, client.Model())
	router := httpapi.NewRouter(app)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Str("model", client.Model()).Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
