// Package app wires the Firebase clients, services and HTTP handlers
// shared by the Cloud Function entry point and the local binary.
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/josejalvarezm/autoinx-functions/internal/config"
	"github.com/josejalvarezm/autoinx-functions/internal/domain"
	"github.com/josejalvarezm/autoinx-functions/internal/handlers"
	"github.com/josejalvarezm/autoinx-functions/internal/repositories"
	"github.com/josejalvarezm/autoinx-functions/internal/services"
)

// App holds the three endpoints, each wrapped in the middleware stack
type App struct {
	PublicConfig http.Handler
	AdminConfig  http.Handler
	ChatToggle   http.Handler

	Toggler  domain.ChatToggler
	Location *time.Location
	Logger   domain.Logger

	firestore *firestore.Client
}

// New initializes Firebase and composes the handlers
func New(ctx context.Context, cfg *config.Config, logger domain.Logger) (*App, error) {
	var fbConfig *firebase.Config
	if cfg.FirebaseProjectID != "" || cfg.FirebaseDatabaseURL != "" {
		fbConfig = &firebase.Config{
			ProjectID:   cfg.FirebaseProjectID,
			DatabaseURL: cfg.FirebaseDatabaseURL,
		}
	}

	firebaseApp, err := firebase.NewApp(ctx, fbConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase: %w", err)
	}

	firestoreClient, err := firebaseApp.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Firestore client: %w", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		firestoreClient.Close()
		return nil, fmt.Errorf("failed to get Firebase Auth client: %w", err)
	}

	var audit domain.AuditWriter
	if cfg.FirebaseDatabaseURL != "" {
		dbClient, err := firebaseApp.Database(ctx)
		if err != nil {
			firestoreClient.Close()
			return nil, fmt.Errorf("failed to get Firebase database client: %w", err)
		}
		audit = repositories.NewFirebaseAuditRepository(dbClient, cfg.AuditPath)
	}

	store := repositories.NewFirestoreRepository(firestoreClient, cfg.ConfigCollection, cfg.ConfigDocument)
	configService := services.NewConfigService(store, audit, logger, cfg.Defaults)
	adminService := services.NewAdminAuthService(authClient, logger)

	location := services.LoadReferenceLocation(cfg.ScheduleTimezone, logger)
	toggleService := services.NewChatToggleService(configService, logger, location, cfg.FallbackSchedule)

	var signer *domain.HMACValidator
	if cfg.SchedulerSecret != "" {
		signer = domain.NewHMACValidator(cfg.SchedulerSecret)
	}

	// One limiter per instance, shared by all endpoints
	limiter := handlers.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	wrap := func(h http.Handler) http.Handler {
		return handlers.Stack(h, logger, limiter, cfg.AllowedOrigins)
	}

	logger.Info("autoinx functions initialized",
		"environment", cfg.Environment,
		"document", cfg.ConfigCollection+"/"+cfg.ConfigDocument,
		"timezone", location.String(),
		"audit", audit != nil,
		"signed_scheduler", signer != nil,
		"rate_limit", fmt.Sprintf("%d req/s", cfg.RateLimitRPS),
	)

	return &App{
		PublicConfig: wrap(handlers.NewPublicConfigHandler(configService, logger)),
		AdminConfig:  wrap(handlers.NewAdminConfigHandler(configService, adminService, logger)),
		ChatToggle:   wrap(handlers.NewChatToggleHandler(toggleService, adminService, signer, logger)),
		Toggler:      toggleService,
		Location:     location,
		Logger:       logger,
		firestore:    firestoreClient,
	}, nil
}

// Close releases the Firestore client
func (a *App) Close() error {
	return a.firestore.Close()
}
