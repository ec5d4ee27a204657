// Package function contains the Cloud Function entry points for GCP Cloud Functions Gen2
package function

import (
	"context"
	"log"
	"net/http"

	// Cloud Functions images may ship without a tz database
	_ "time/tzdata"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
	"github.com/josejalvarezm/autoinx-functions/internal/app"
	"github.com/josejalvarezm/autoinx-functions/internal/config"
	"github.com/josejalvarezm/autoinx-functions/internal/services"
)

var application *app.App

func init() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := services.NewLogger(cfg.Environment, cfg.LogLevel)

	application, err = app.New(context.Background(), cfg, logger)
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}

	functions.HTTP("PublicConfig", PublicConfig)
	functions.HTTP("AdminConfig", AdminConfig)
	functions.HTTP("ToggleChatWidget", ToggleChatWidget)
}

// PublicConfig is the HTTP Cloud Function entry point for /public-config
func PublicConfig(w http.ResponseWriter, r *http.Request) {
	serve(w, r, func(a *app.App) http.Handler { return a.PublicConfig })
}

// AdminConfig is the HTTP Cloud Function entry point for /admin-config
func AdminConfig(w http.ResponseWriter, r *http.Request) {
	serve(w, r, func(a *app.App) http.Handler { return a.AdminConfig })
}

// ToggleChatWidget is the HTTP Cloud Function entry point for /toggle-chat-widget
func ToggleChatWidget(w http.ResponseWriter, r *http.Request) {
	serve(w, r, func(a *app.App) http.Handler { return a.ChatToggle })
}

func serve(w http.ResponseWriter, r *http.Request, pick func(*app.App) http.Handler) {
	if application == nil {
		http.Error(w, "Handler not initialized", http.StatusInternalServerError)
		return
	}
	pick(application).ServeHTTP(w, r)
}
