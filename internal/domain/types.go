// Package domain contains domain models and interfaces following SOLID principles
package domain

import (
	"context"
	"time"
)

// ConfigRecord is the singleton admin configuration document
type ConfigRecord struct {
	MaintenanceMode   bool          `json:"maintenanceMode"`
	ChatWidgetEnabled bool          `json:"chatWidgetEnabled"`
	ChatSchedule      *ChatSchedule `json:"chatSchedule,omitempty"`
	IPWhitelist       []string      `json:"ipWhitelist"`
	LastUpdated       *time.Time    `json:"lastUpdated,omitempty"`
	LastUpdateAction  string        `json:"lastUpdateAction,omitempty"`
}

// StoredConfig is the record as found in the store.
// Nil fields were never written and take their default on read.
type StoredConfig struct {
	MaintenanceMode   *bool
	ChatWidgetEnabled *bool
	ChatSchedule      *ChatSchedule
	IPWhitelist       []string
	HasIPWhitelist    bool
	LastUpdated       *time.Time
	LastUpdateAction  string
}

// ConfigPatch is a partial update. Only non-nil fields are written.
type ConfigPatch struct {
	MaintenanceMode   *bool
	ChatWidgetEnabled *bool
	IPWhitelist       *[]string
	ChatSchedule      *ChatSchedule
}

// IsEmpty reports whether the patch carries no allow-listed field
func (p ConfigPatch) IsEmpty() bool {
	return p.MaintenanceMode == nil && p.ChatWidgetEnabled == nil && p.IPWhitelist == nil && p.ChatSchedule == nil
}

// Fields returns the document field names present in the patch, in a stable order
func (p ConfigPatch) Fields() []string {
	var fields []string
	if p.MaintenanceMode != nil {
		fields = append(fields, FieldMaintenanceMode)
	}
	if p.ChatWidgetEnabled != nil {
		fields = append(fields, FieldChatWidgetEnabled)
	}
	if p.IPWhitelist != nil {
		fields = append(fields, FieldIPWhitelist)
	}
	if p.ChatSchedule != nil {
		fields = append(fields, FieldChatSchedule)
	}
	return fields
}

// Document field names
const (
	FieldMaintenanceMode   = "maintenanceMode"
	FieldChatWidgetEnabled = "chatWidgetEnabled"
	FieldIPWhitelist       = "ipWhitelist"
	FieldChatSchedule      = "chatSchedule"
	FieldLastUpdated       = "lastUpdated"
	FieldLastUpdateAction  = "lastUpdateAction"
)

// DefaultConfig returns the record seeded on first read
func DefaultConfig() ConfigRecord {
	return ConfigRecord{
		MaintenanceMode:   false,
		ChatWidgetEnabled: true,
		IPWhitelist:       []string{},
	}
}

// AdminIdentity is the verified caller of a privileged operation
type AdminIdentity struct {
	UID   string
	Email string
}

// AuditEntry describes one successful configuration mutation
type AuditEntry struct {
	Action    string
	Fields    []string
	Timestamp time.Time
}

// ConfigStore interface (Dependency Inversion Principle)
// Allows swapping Firestore for other document stores
type ConfigStore interface {
	// Get returns ErrNotFound when the document does not exist.
	Get(ctx context.Context) (*StoredConfig, error)
	// Create writes the document only if it does not exist yet. It returns
	// ErrAlreadyExists when another writer got there first.
	Create(ctx context.Context, record ConfigRecord) error
	// Merge updates the given fields and stamps lastUpdated with server time.
	Merge(ctx context.Context, fields map[string]interface{}) error
}

// AuditWriter interface
// Records configuration mutations outside the config document
type AuditWriter interface {
	Write(ctx context.Context, entry AuditEntry) error
}

// ConfigAccessor reads and patches the singleton configuration
type ConfigAccessor interface {
	Read(ctx context.Context) (ConfigRecord, error)
	Write(ctx context.Context, patch ConfigPatch, action string) error
}

// AdminVerifier checks an Authorization header for an admin identity
type AdminVerifier interface {
	Verify(ctx context.Context, authorization string) (AdminIdentity, error)
}

// ChatToggler flips the chat widget, manually or by schedule
type ChatToggler interface {
	SetManual(ctx context.Context, enabled bool, by AdminIdentity) (string, error)
	RunSchedule(ctx context.Context) (string, error)
}

// Logger interface (Dependency Inversion Principle)
// Allows swapping logging implementations
type Logger interface {
	Error(msg string, err error)
	Info(msg string, args ...interface{})
	Debug(msg string, args ...interface{})
}
