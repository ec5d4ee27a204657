package repositories

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/db"
	"github.com/josejalvarezm/autoinx-functions/internal/domain"
)

// FirebaseAuditRepository implements domain.AuditWriter using Firebase Realtime Database
type FirebaseAuditRepository struct {
	client *db.Client
	path   string
}

// NewFirebaseAuditRepository creates a new audit repository writing under path
func NewFirebaseAuditRepository(client *db.Client, path string) *FirebaseAuditRepository {
	return &FirebaseAuditRepository{
		client: client,
		path:   path,
	}
}

// Write appends an audit entry
func (r *FirebaseAuditRepository) Write(ctx context.Context, entry domain.AuditEntry) error {
	ref := r.client.NewRef(r.path)

	data := map[string]interface{}{
		"action":    entry.Action,
		"fields":    entry.Fields,
		"timestamp": entry.Timestamp.UnixMilli(),
	}

	// Push creates a new child with auto-generated key
	if _, err := ref.Push(ctx, data); err != nil {
		return fmt.Errorf("failed to write config audit entry: %w", err)
	}

	return nil
}
