package handlers

import (
	"errors"
	"net/http"

	"github.com/josejalvarezm/autoinx-functions/internal/domain"
)

// PublicConfigResponse is the unauthenticated view of the config
type PublicConfigResponse struct {
	MaintenanceMode   bool `json:"maintenanceMode"`
	ChatWidgetEnabled bool `json:"chatWidgetEnabled"`
	// IsRequesterAdmin is true when the caller's address is on the IP
	// whitelist. It is informational and grants nothing.
	IsRequesterAdmin bool   `json:"isRequesterAdmin"`
	ClientIP         string `json:"clientIp"`
}

// PublicConfigHandler serves feature flags to the web front-end before login
type PublicConfigHandler struct {
	config domain.ConfigAccessor
	logger domain.Logger
}

// NewPublicConfigHandler creates a new public config handler
func NewPublicConfigHandler(config domain.ConfigAccessor, logger domain.Logger) *PublicConfigHandler {
	return &PublicConfigHandler{
		config: config,
		logger: logger,
	}
}

// ServeHTTP handles GET /public-config
func (h *PublicConfigHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, "GET")
		return
	}

	record, err := h.config.Read(r.Context())
	if errors.Is(err, domain.ErrNotFound) {
		h.logger.Info("config document missing, serving safe defaults")
		record = domain.DefaultConfig()
		err = nil
	}
	if err != nil {
		fail(w, h.logger, "failed to read public config", err)
		return
	}

	clientIP := ClientIP(r)
	writeJSON(w, http.StatusOK, PublicConfigResponse{
		MaintenanceMode:   record.MaintenanceMode,
		ChatWidgetEnabled: record.ChatWidgetEnabled,
		IsRequesterAdmin:  domain.MatchesAny(clientIP, record.IPWhitelist),
		ClientIP:          clientIP,
	})
}
