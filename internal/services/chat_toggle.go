package services

import (
	"context"
	"fmt"
	"time"

	"github.com/josejalvarezm/autoinx-functions/internal/domain"
)

// fixedBogota is used when the tz database is unavailable; Colombia has no DST
var fixedBogota = time.FixedZone("UTC-5", -5*60*60)

// ChatToggleService implements domain.ChatToggler
type ChatToggleService struct {
	config   domain.ConfigAccessor
	logger   domain.Logger
	location *time.Location
	fallback domain.ChatSchedule
	now      func() time.Time
}

// NewChatToggleService creates a new toggle service evaluating schedules in location
func NewChatToggleService(
	config domain.ConfigAccessor,
	logger domain.Logger,
	location *time.Location,
	fallback domain.ChatSchedule,
) *ChatToggleService {
	return &ChatToggleService{
		config:   config,
		logger:   logger,
		location: location,
		fallback: fallback,
		now:      time.Now,
	}
}

// LoadReferenceLocation resolves an IANA zone, falling back to fixed UTC-5
func LoadReferenceLocation(name string, logger domain.Logger) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		logger.Error("failed to load schedule timezone, using UTC-5", err)
		return fixedBogota
	}
	return loc
}

// SetManual forces the widget on or off on behalf of an admin
func (s *ChatToggleService) SetManual(ctx context.Context, enabled bool, by domain.AdminIdentity) (string, error) {
	action := fmt.Sprintf("Manual: %s by %s", onOff(enabled), actor(by))
	if err := s.config.Write(ctx, domain.ConfigPatch{ChatWidgetEnabled: &enabled}, action); err != nil {
		return "", err
	}

	s.logger.Info("chat widget toggled manually", "enabled", enabled, "by", actor(by))
	return fmt.Sprintf("Chat widget turned %s", onOff(enabled)), nil
}

// RunSchedule evaluates the stored (or fallback) schedule and writes the result
func (s *ChatToggleService) RunSchedule(ctx context.Context) (string, error) {
	record, err := s.config.Read(ctx)
	if err != nil {
		return "", err
	}

	schedule := s.fallback
	source := "default schedule"
	if record.ChatSchedule != nil {
		schedule = *record.ChatSchedule
		source = "chatSchedule"
	}

	decision := schedule.Evaluate(s.now().In(s.location))
	enabled := decision.Enabled
	action := fmt.Sprintf("Scheduled: %s (%s, %s)", onOff(enabled), decision.Reason, source)

	if err := s.config.Write(ctx, domain.ConfigPatch{ChatWidgetEnabled: &enabled}, action); err != nil {
		return "", err
	}

	s.logger.Info("chat widget schedule evaluated", "enabled", enabled, "reason", decision.Reason, "source", source)
	return fmt.Sprintf("Chat widget %s by schedule: %s", onOff(enabled), decision.Reason), nil
}

func onOff(enabled bool) string {
	if enabled {
		return "ON"
	}
	return "OFF"
}

func actor(id domain.AdminIdentity) string {
	if id.Email != "" {
		return id.Email
	}
	if id.UID != "" {
		return id.UID
	}
	return "unknown"
}
