package repositories

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/josejalvarezm/autoinx-functions/internal/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreRepository implements domain.ConfigStore using a single Firestore document
type FirestoreRepository struct {
	client     *firestore.Client
	collection string
	document   string
}

// NewFirestoreRepository creates a new Firestore repository for collection/document
func NewFirestoreRepository(client *firestore.Client, collection, document string) *FirestoreRepository {
	return &FirestoreRepository{
		client:     client,
		collection: collection,
		document:   document,
	}
}

func (r *FirestoreRepository) doc() *firestore.DocumentRef {
	return r.client.Collection(r.collection).Doc(r.document)
}

// Get fetches the config document
func (r *FirestoreRepository) Get(ctx context.Context) (*domain.StoredConfig, error) {
	snap, err := r.doc().Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read config from Firestore: %v", domain.ErrServiceUnavailable, err)
	}
	if !snap.Exists() {
		return nil, domain.ErrNotFound
	}

	return decodeConfig(snap.Data()), nil
}

// Create writes the document only if absent (Firestore Create fails on existing documents)
func (r *FirestoreRepository) Create(ctx context.Context, record domain.ConfigRecord) error {
	data := map[string]interface{}{
		domain.FieldMaintenanceMode:   record.MaintenanceMode,
		domain.FieldChatWidgetEnabled: record.ChatWidgetEnabled,
		domain.FieldIPWhitelist:       nonNil(record.IPWhitelist),
		domain.FieldLastUpdated:       firestore.ServerTimestamp,
		domain.FieldLastUpdateAction:  "Created with defaults",
	}
	if record.ChatSchedule != nil {
		data[domain.FieldChatSchedule] = EncodeSchedule(*record.ChatSchedule)
	}

	_, err := r.doc().Create(ctx, data)
	if status.Code(err) == codes.AlreadyExists {
		return domain.ErrAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("%w: failed to create config in Firestore: %v", domain.ErrServiceUnavailable, err)
	}
	return nil
}

// Merge updates only the given fields and stamps lastUpdated with server time.
// domain.ChatSchedule values are stored in their document form.
func (r *FirestoreRepository) Merge(ctx context.Context, fields map[string]interface{}) error {
	data := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		if sched, ok := v.(domain.ChatSchedule); ok {
			v = EncodeSchedule(sched)
		}
		data[k] = v
	}
	data[domain.FieldLastUpdated] = firestore.ServerTimestamp

	// MergeAll leaves fields absent from data untouched
	if _, err := r.doc().Set(ctx, data, firestore.MergeAll); err != nil {
		return fmt.Errorf("%w: failed to update config in Firestore: %v", domain.ErrServiceUnavailable, err)
	}
	return nil
}

// EncodeSchedule converts a schedule to its document form
func EncodeSchedule(s domain.ChatSchedule) map[string]interface{} {
	days := make([]int64, 0, len(s.ActiveDays))
	for _, d := range s.ActiveDays {
		days = append(days, int64(d))
	}
	return map[string]interface{}{
		"enableTime":  s.EnableTime,
		"disableTime": s.DisableTime,
		"activeDays":  days,
	}
}

// decodeConfig reads document data field by field so that missing or
// mistyped fields degrade to "absent" instead of failing the whole read.
func decodeConfig(data map[string]interface{}) *domain.StoredConfig {
	cfg := &domain.StoredConfig{}

	if v, ok := data[domain.FieldMaintenanceMode].(bool); ok {
		cfg.MaintenanceMode = &v
	}
	if v, ok := data[domain.FieldChatWidgetEnabled].(bool); ok {
		cfg.ChatWidgetEnabled = &v
	}
	if raw, ok := data[domain.FieldIPWhitelist].([]interface{}); ok {
		cfg.HasIPWhitelist = true
		cfg.IPWhitelist = make([]string, 0, len(raw))
		for _, entry := range raw {
			// entries must be strings; anything else cannot match an address
			if s, ok := entry.(string); ok {
				cfg.IPWhitelist = append(cfg.IPWhitelist, s)
			}
		}
	}
	if raw, ok := data[domain.FieldChatSchedule].(map[string]interface{}); ok {
		s := decodeSchedule(raw)
		cfg.ChatSchedule = &s
	}
	if v, ok := data[domain.FieldLastUpdated].(time.Time); ok {
		cfg.LastUpdated = &v
	}
	if v, ok := data[domain.FieldLastUpdateAction].(string); ok {
		cfg.LastUpdateAction = v
	}

	return cfg
}

func decodeSchedule(raw map[string]interface{}) domain.ChatSchedule {
	var s domain.ChatSchedule
	s.EnableTime, _ = raw["enableTime"].(string)
	s.DisableTime, _ = raw["disableTime"].(string)
	if days, ok := raw["activeDays"].([]interface{}); ok {
		for _, d := range days {
			switch n := d.(type) {
			case int64:
				s.ActiveDays = append(s.ActiveDays, int(n))
			case float64:
				s.ActiveDays = append(s.ActiveDays, int(n))
			case int:
				s.ActiveDays = append(s.ActiveDays, n)
			}
		}
	}
	return s
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
