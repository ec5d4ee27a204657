package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/josejalvarezm/autoinx-functions/internal/domain"
)

// ChatToggleResponse is returned by both toggle modes
type ChatToggleResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ChatToggleHandler runs a manual override when ?mode= is present and the
// scheduled evaluation otherwise.
type ChatToggleHandler struct {
	toggler domain.ChatToggler
	admin   domain.AdminVerifier
	signer  *domain.HMACValidator
	logger  domain.Logger
	now     func() time.Time
}

// NewChatToggleHandler creates a new toggle handler. A nil signer accepts
// unsigned scheduled invocations.
func NewChatToggleHandler(
	toggler domain.ChatToggler,
	admin domain.AdminVerifier,
	signer *domain.HMACValidator,
	logger domain.Logger,
) *ChatToggleHandler {
	return &ChatToggleHandler{
		toggler: toggler,
		admin:   admin,
		signer:  signer,
		logger:  logger,
		now:     time.Now,
	}
}

// ServeHTTP handles /toggle-chat-widget
func (h *ChatToggleHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		methodNotAllowed(w, "GET, POST")
		return
	}

	var (
		message string
		err     error
	)
	if modes, ok := r.URL.Query()["mode"]; ok {
		message, err = h.manual(r, modes[0])
	} else {
		message, err = h.scheduled(r)
	}
	if err != nil {
		fail(w, h.logger, "chat widget toggle failed", err)
		return
	}

	writeJSON(w, http.StatusOK, ChatToggleResponse{Status: "success", Message: message})
}

func (h *ChatToggleHandler) manual(r *http.Request, mode string) (string, error) {
	identity, err := h.admin.Verify(r.Context(), r.Header.Get("Authorization"))
	if err != nil {
		return "", err
	}

	var enabled bool
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "on":
		enabled = true
	case "off":
		enabled = false
	default:
		return "", fmt.Errorf("%w: mode must be \"on\" or \"off\"", domain.ErrInvalidInput)
	}

	return h.toggler.SetManual(r.Context(), enabled, identity)
}

func (h *ChatToggleHandler) scheduled(r *http.Request) (string, error) {
	if h.signer != nil {
		err := h.signer.ValidateTimestamp(
			r.Header.Get("X-Scheduler-Timestamp"),
			r.Header.Get("X-Scheduler-Signature"),
			h.now(),
		)
		if err != nil {
			return "", err
		}
	}
	return h.toggler.RunSchedule(r.Context())
}
