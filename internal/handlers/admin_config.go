package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/josejalvarezm/autoinx-functions/internal/domain"
)

// maxPatchBytes bounds the POST /admin-config body
const maxPatchBytes = 64 << 10

// AdminConfigHandler reads and updates the full config for admins
type AdminConfigHandler struct {
	config domain.ConfigAccessor
	admin  domain.AdminVerifier
	logger domain.Logger
}

// NewAdminConfigHandler creates a new admin config handler
func NewAdminConfigHandler(config domain.ConfigAccessor, admin domain.AdminVerifier, logger domain.Logger) *AdminConfigHandler {
	return &AdminConfigHandler{
		config: config,
		admin:  admin,
		logger: logger,
	}
}

// ServeHTTP handles GET and POST /admin-config
func (h *AdminConfigHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		methodNotAllowed(w, "GET, POST")
		return
	}

	identity, err := h.admin.Verify(r.Context(), r.Header.Get("Authorization"))
	if err != nil {
		fail(w, h.logger, "admin verification failed", err)
		return
	}

	if r.Method == http.MethodGet {
		record, err := h.config.Read(r.Context())
		if err != nil {
			fail(w, h.logger, "failed to read admin config", err)
			return
		}
		writeJSON(w, http.StatusOK, record)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxPatchBytes))
	defer r.Body.Close()
	if err != nil {
		fail(w, h.logger, "failed to read request body", fmt.Errorf("%w: %v", domain.ErrInvalidInput, err))
		return
	}

	patch, err := ParsePatch(body)
	if err != nil {
		fail(w, h.logger, "rejected config patch", err)
		return
	}

	action := fmt.Sprintf("Manual: updated %s by %s", strings.Join(patch.Fields(), ", "), identity.Email)
	if err := h.config.Write(r.Context(), patch, action); err != nil {
		fail(w, h.logger, "failed to update admin config", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Configuration updated"})
}

// ParsePatch decodes a partial ConfigRecord, keeping only allow-listed fields.
// Unknown fields are ignored; allow-listed fields with the wrong type are rejected.
func ParsePatch(body []byte) (domain.ConfigPatch, error) {
	var patch domain.ConfigPatch

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return patch, fmt.Errorf("%w: body must be a JSON object", domain.ErrInvalidInput)
	}

	for key, value := range raw {
		if bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
			if isAllowedField(key) {
				return patch, fmt.Errorf("%w: %s must not be null", domain.ErrInvalidInput, key)
			}
			continue
		}

		var err error
		switch key {
		case domain.FieldMaintenanceMode:
			var v bool
			err = json.Unmarshal(value, &v)
			patch.MaintenanceMode = &v
		case domain.FieldChatWidgetEnabled:
			var v bool
			err = json.Unmarshal(value, &v)
			patch.ChatWidgetEnabled = &v
		case domain.FieldIPWhitelist:
			var v []string
			err = json.Unmarshal(value, &v)
			if v == nil {
				v = []string{}
			}
			patch.IPWhitelist = &v
		case domain.FieldChatSchedule:
			var v domain.ChatSchedule
			if err = json.Unmarshal(value, &v); err == nil {
				err = v.Validate()
			}
			patch.ChatSchedule = &v
		default:
			continue
		}
		if err != nil {
			return domain.ConfigPatch{}, fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, key, err)
		}
	}

	if patch.IsEmpty() {
		return patch, fmt.Errorf("%w: body contains no updatable fields (%s)", domain.ErrInvalidInput, strings.Join(allowedFields, ", "))
	}
	return patch, nil
}

var allowedFields = []string{
	domain.FieldMaintenanceMode,
	domain.FieldChatWidgetEnabled,
	domain.FieldIPWhitelist,
	domain.FieldChatSchedule,
}

func isAllowedField(key string) bool {
	for _, f := range allowedFields {
		if f == key {
			return true
		}
	}
	return false
}
