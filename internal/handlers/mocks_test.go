package handlers

import (
	"context"

	"github.com/josejalvarezm/autoinx-functions/internal/domain"
)

// MockConfigAccessor for testing
type MockConfigAccessor struct {
	Record     domain.ConfigRecord
	ReadError  error
	WriteError error

	ReadCalled bool
	Patches    []domain.ConfigPatch
	Actions    []string
}

func (m *MockConfigAccessor) Read(ctx context.Context) (domain.ConfigRecord, error) {
	m.ReadCalled = true
	if m.ReadError != nil {
		return domain.ConfigRecord{}, m.ReadError
	}
	return m.Record, nil
}

func (m *MockConfigAccessor) Write(ctx context.Context, patch domain.ConfigPatch, action string) error {
	if m.WriteError != nil {
		return m.WriteError
	}
	m.Patches = append(m.Patches, patch)
	m.Actions = append(m.Actions, action)
	return nil
}

// MockAdminVerifier for testing
type MockAdminVerifier struct {
	Identity domain.AdminIdentity
	Error    error
	Headers  []string
}

func (m *MockAdminVerifier) Verify(ctx context.Context, authorization string) (domain.AdminIdentity, error) {
	m.Headers = append(m.Headers, authorization)
	if m.Error != nil {
		return domain.AdminIdentity{}, m.Error
	}
	return m.Identity, nil
}

// MockChatToggler for testing
type MockChatToggler struct {
	ManualCalls   []bool
	ManualBy      []domain.AdminIdentity
	ScheduleCalls int
	Error         error
}

func (m *MockChatToggler) SetManual(ctx context.Context, enabled bool, by domain.AdminIdentity) (string, error) {
	if m.Error != nil {
		return "", m.Error
	}
	m.ManualCalls = append(m.ManualCalls, enabled)
	m.ManualBy = append(m.ManualBy, by)
	return "manual ok", nil
}

func (m *MockChatToggler) RunSchedule(ctx context.Context) (string, error) {
	if m.Error != nil {
		return "", m.Error
	}
	m.ScheduleCalls++
	return "schedule ok", nil
}

// MockHandlerLogger for testing
type MockHandlerLogger struct {
	ErrorLogs []string
	InfoLogs  []string
	DebugLogs []string
}

func (m *MockHandlerLogger) Error(msg string, err error) {
	m.ErrorLogs = append(m.ErrorLogs, msg)
}

func (m *MockHandlerLogger) Info(msg string, args ...interface{}) {
	m.InfoLogs = append(m.InfoLogs, msg)
}

func (m *MockHandlerLogger) Debug(msg string, args ...interface{}) {
	m.DebugLogs = append(m.DebugLogs, msg)
}
