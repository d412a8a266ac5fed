package handlers

import (
	"net/http"
)

func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Status reports the configured model and whether a token is present, for the
// frontend's configuration panel. The token itself is never echoed back.
func (a *App) Status(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{
		"app":              AppName,
		"version":          AppVersion,
		"model":            a.Model,
		"token_configured": a.Config != nil && a.Config.HFToken != "",
	})
}
