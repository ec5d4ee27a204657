package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/josejalvarezm/autoinx-functions/internal/domain"
)

// ConfigService implements domain.ConfigAccessor
// Owns default seeding, default filling and the field allow-list
type ConfigService struct {
	store    domain.ConfigStore
	audit    domain.AuditWriter
	logger   domain.Logger
	defaults domain.ConfigRecord
	now      func() time.Time
}

// NewConfigService creates a new config service. audit may be nil.
func NewConfigService(
	store domain.ConfigStore,
	audit domain.AuditWriter,
	logger domain.Logger,
	defaults domain.ConfigRecord,
) *ConfigService {
	return &ConfigService{
		store:    store,
		audit:    audit,
		logger:   logger,
		defaults: defaults,
		now:      time.Now,
	}
}

// Read returns the config record, creating it with defaults if it does not exist
func (s *ConfigService) Read(ctx context.Context) (domain.ConfigRecord, error) {
	stored, err := s.store.Get(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		stored, err = s.seed(ctx)
		if stored == nil && err == nil {
			return s.defaultRecord(), nil
		}
	}
	if err != nil {
		return domain.ConfigRecord{}, unavailable(err)
	}

	return s.withDefaults(stored), nil
}

// seed creates the document. It returns (nil, nil) when this call created it,
// or the winner's document when a concurrent reader created it first.
func (s *ConfigService) seed(ctx context.Context) (*domain.StoredConfig, error) {
	err := s.store.Create(ctx, s.defaultRecord())
	if err == nil {
		s.logger.Info("config document created with defaults")
		return nil, nil
	}
	if !errors.Is(err, domain.ErrAlreadyExists) {
		s.logger.Error("failed to create config document", err)
		return nil, err
	}
	return s.store.Get(ctx)
}

// Write merges the allow-listed fields of patch and records action
func (s *ConfigService) Write(ctx context.Context, patch domain.ConfigPatch, action string) error {
	if patch.IsEmpty() {
		return fmt.Errorf("%w: no updatable fields in patch", domain.ErrInvalidInput)
	}
	if patch.ChatSchedule != nil {
		if err := patch.ChatSchedule.Validate(); err != nil {
			return err
		}
	}

	fields := make(map[string]interface{}, 5)
	if patch.MaintenanceMode != nil {
		fields[domain.FieldMaintenanceMode] = *patch.MaintenanceMode
	}
	if patch.ChatWidgetEnabled != nil {
		fields[domain.FieldChatWidgetEnabled] = *patch.ChatWidgetEnabled
	}
	if patch.IPWhitelist != nil {
		fields[domain.FieldIPWhitelist] = cleanWhitelist(*patch.IPWhitelist)
	}
	if patch.ChatSchedule != nil {
		fields[domain.FieldChatSchedule] = *patch.ChatSchedule
	}
	if action != "" {
		fields[domain.FieldLastUpdateAction] = action
	}

	if err := s.store.Merge(ctx, fields); err != nil {
		s.logger.Error("failed to update config", err)
		return unavailable(err)
	}

	s.logger.Info("config updated", "fields", patch.Fields(), "action", action)
	s.recordAudit(ctx, patch, action)
	return nil
}

// recordAudit is best-effort; the config write has already succeeded
func (s *ConfigService) recordAudit(ctx context.Context, patch domain.ConfigPatch, action string) {
	if s.audit == nil {
		return
	}
	entry := domain.AuditEntry{
		Action:    action,
		Fields:    patch.Fields(),
		Timestamp: s.now(),
	}
	if err := s.audit.Write(ctx, entry); err != nil {
		s.logger.Error("failed to record config audit entry", err)
	}
}

func (s *ConfigService) defaultRecord() domain.ConfigRecord {
	rec := s.defaults
	rec.IPWhitelist = append([]string{}, s.defaults.IPWhitelist...)
	if s.defaults.ChatSchedule != nil {
		sched := *s.defaults.ChatSchedule
		sched.ActiveDays = append([]int{}, sched.ActiveDays...)
		rec.ChatSchedule = &sched
	}
	return rec
}

// withDefaults fills fields missing from older documents without writing them back
func (s *ConfigService) withDefaults(stored *domain.StoredConfig) domain.ConfigRecord {
	rec := s.defaultRecord()
	if stored.MaintenanceMode != nil {
		rec.MaintenanceMode = *stored.MaintenanceMode
	}
	if stored.ChatWidgetEnabled != nil {
		rec.ChatWidgetEnabled = *stored.ChatWidgetEnabled
	}
	if stored.HasIPWhitelist {
		rec.IPWhitelist = stored.IPWhitelist
	}
	if stored.ChatSchedule != nil {
		rec.ChatSchedule = stored.ChatSchedule
	}
	rec.LastUpdated = stored.LastUpdated
	rec.LastUpdateAction = stored.LastUpdateAction
	return rec
}

func cleanWhitelist(entries []string) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if e != "" {
			out = append(out, e)
		}
	}
	return out
}

// unavailable tags unclassified store failures as ErrServiceUnavailable
func unavailable(err error) error {
	if errors.Is(err, domain.ErrServiceUnavailable) || errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrInvalidInput) {
		return err
	}
	return fmt.Errorf("%w: %v", domain.ErrServiceUnavailable, err)
}
