package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"stagevault/internal/model"
)

// AuditRepository defines audit-trail persistence operations.
type AuditRepository interface {
	Record(ctx context.Context, userID, action, detail string) error
	ListByUser(ctx context.Context, userID string, limit int) ([]model.AuditEvent, error)
	ListRecent(ctx context.Context, limit int) ([]model.AuditEvent, error)
}

type auditRepository struct {
	db *gorm.DB
}

// NewAuditRepository creates a new audit repository.
func NewAuditRepository(db *gorm.DB) AuditRepository {
	return &auditRepository{db: db}
}

// Record appends one audit event.
func (r *auditRepository) Record(ctx context.Context, userID, action, detail string) error {
	event := &model.AuditEvent{
		ID:        uuid.New(),
		UserID:    userID,
		Action:    action,
		Detail:    detail,
		CreatedAt: time.Now(),
	}
	return r.db.WithContext(ctx).Create(event).Error
}

// ListByUser returns the most recent events for one user.
func (r *auditRepository) ListByUser(ctx context.Context, userID string, limit int) ([]model.AuditEvent, error) {
	var events []model.AuditEvent
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// ListRecent returns the most recent events across all users.
func (r *auditRepository) ListRecent(ctx context.Context, limit int) ([]model.AuditEvent, error) {
	var events []model.AuditEvent
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}
