package postgres

import (
	"context"
	"time"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/repository"
)

type auditLogRepository struct {
	db repository.DBTX
}

func NewAuditLogRepository(db repository.DBTX) repository.AuditLogRepository {
	return &auditLogRepository{db: db}
}

func (r *auditLogRepository) Create(ctx context.Context, entry *domain.AuditLog) error {
	query := `INSERT INTO audit_logs (actor_kind, actor_id, action, object_type, object_id, details, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	return r.db.QueryRowContext(ctx, query, entry.ActorKind, entry.ActorID, entry.Action, entry.ObjectType, entry.ObjectID, entry.Details, entry.CreatedAt).Scan(&entry.ID)
}

func (r *auditLogRepository) List(ctx context.Context, limit, offset int32) ([]domain.AuditLog, error) {
	query := `SELECT id, actor_kind, actor_id, action, object_type, object_id, COALESCE(details, ''), created_at
	          FROM audit_logs ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.AuditLog
	for rows.Next() {
		var e domain.AuditLog
		if err := rows.Scan(&e.ID, &e.ActorKind, &e.ActorID, &e.Action, &e.ObjectType, &e.ObjectID, &e.Details, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
