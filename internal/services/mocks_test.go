package services

import (
	"context"
	"time"

	"github.com/josejalvarezm/autoinx-functions/internal/domain"
)

// MockConfigStore is an in-memory domain.ConfigStore with merge semantics
type MockConfigStore struct {
	Doc map[string]interface{}

	GetError    error
	CreateError error
	MergeError  error

	// CreateRace makes Create report that another writer created Doc first
	CreateRace map[string]interface{}

	GetCalls    int
	CreateCalls int
	MergeCalls  int
}

func (m *MockConfigStore) Get(ctx context.Context) (*domain.StoredConfig, error) {
	m.GetCalls++
	if m.GetError != nil {
		return nil, m.GetError
	}
	if m.Doc == nil {
		return nil, domain.ErrNotFound
	}

	cfg := &domain.StoredConfig{}
	if v, ok := m.Doc[domain.FieldMaintenanceMode].(bool); ok {
		cfg.MaintenanceMode = &v
	}
	if v, ok := m.Doc[domain.FieldChatWidgetEnabled].(bool); ok {
		cfg.ChatWidgetEnabled = &v
	}
	if v, ok := m.Doc[domain.FieldIPWhitelist].([]string); ok {
		cfg.IPWhitelist = v
		cfg.HasIPWhitelist = true
	}
	if v, ok := m.Doc[domain.FieldChatSchedule].(domain.ChatSchedule); ok {
		cfg.ChatSchedule = &v
	}
	if v, ok := m.Doc[domain.FieldLastUpdated].(time.Time); ok {
		cfg.LastUpdated = &v
	}
	if v, ok := m.Doc[domain.FieldLastUpdateAction].(string); ok {
		cfg.LastUpdateAction = v
	}
	return cfg, nil
}

func (m *MockConfigStore) Create(ctx context.Context, record domain.ConfigRecord) error {
	m.CreateCalls++
	if m.CreateError != nil {
		return m.CreateError
	}
	if m.CreateRace != nil {
		m.Doc = m.CreateRace
		return domain.ErrAlreadyExists
	}
	if m.Doc != nil {
		return domain.ErrAlreadyExists
	}
	m.Doc = map[string]interface{}{
		domain.FieldMaintenanceMode:   record.MaintenanceMode,
		domain.FieldChatWidgetEnabled: record.ChatWidgetEnabled,
		domain.FieldIPWhitelist:       record.IPWhitelist,
		domain.FieldLastUpdated:       time.Now(),
	}
	return nil
}

func (m *MockConfigStore) Merge(ctx context.Context, fields map[string]interface{}) error {
	m.MergeCalls++
	if m.MergeError != nil {
		return m.MergeError
	}
	if m.Doc == nil {
		m.Doc = map[string]interface{}{}
	}
	for k, v := range fields {
		m.Doc[k] = v
	}
	m.Doc[domain.FieldLastUpdated] = time.Now()
	return nil
}

// MockAuditWriter for testing
type MockAuditWriter struct {
	Entries []domain.AuditEntry
	Error   error
}

func (m *MockAuditWriter) Write(ctx context.Context, entry domain.AuditEntry) error {
	if m.Error != nil {
		return m.Error
	}
	m.Entries = append(m.Entries, entry)
	return nil
}

// MockLogger for testing
type MockLogger struct {
	ErrorLogs []string
	InfoLogs  []string
	DebugLogs []string
}

func (m *MockLogger) Error(msg string, err error) {
	m.ErrorLogs = append(m.ErrorLogs, msg)
}

func (m *MockLogger) Info(msg string, args ...interface{}) {
	m.InfoLogs = append(m.InfoLogs, msg)
}

func (m *MockLogger) Debug(msg string, args ...interface{}) {
	m.DebugLogs = append(m.DebugLogs, msg)
}
