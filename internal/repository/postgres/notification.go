package postgres

import (
	"context"
	"fmt"
	"time"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/repository"
)

type notificationRepository struct {
	db repository.DBTX
}

func NewNotificationRepository(db repository.DBTX) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	query := `INSERT INTO notifications (account_id, type, title, body, is_read, related_object_type, related_object_id, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}
	return r.db.QueryRowContext(ctx, query, n.AccountID, n.Type, n.Title, n.Body, n.IsRead, n.RelatedObjectType, n.RelatedObjectID, n.CreatedAt).Scan(&n.ID)
}

func (r *notificationRepository) List(ctx context.Context, accountID int32, limit, offset int32) ([]domain.Notification, int32, error) {
	query := `SELECT id, account_id, type, title, body, is_read, COALESCE(related_object_type, ''), related_object_id, created_at
	          FROM notifications WHERE account_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, accountID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var notes []domain.Notification
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(&n.ID, &n.AccountID, &n.Type, &n.Title, &n.Body, &n.IsRead, &n.RelatedObjectType, &n.RelatedObjectID, &n.CreatedAt); err != nil {
			return nil, 0, err
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var count int32
	countQuery := `SELECT COUNT(*) FROM notifications WHERE account_id = $1`
	if err := r.db.QueryRowContext(ctx, countQuery, accountID).Scan(&count); err != nil {
		return nil, 0, err
	}
	return notes, count, nil
}

func (r *notificationRepository) ExistsForObject(ctx context.Context, accountID int32, typ domain.NotificationType, objectType string, objectID int32) (bool, error) {
	query := `SELECT COUNT(*) FROM notifications WHERE account_id = $1 AND type = $2 AND related_object_type = $3 AND related_object_id = $4`
	var count int32
	if err := r.db.QueryRowContext(ctx, query, accountID, typ, objectType, objectID).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *notificationRepository) MarkAsRead(ctx context.Context, id, accountID int32) error {
	query := `UPDATE notifications SET is_read = TRUE WHERE id = $1 AND account_id = $2`
	result, err := r.db.ExecContext(ctx, query, id, accountID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("notification not found or access denied")
	}
	return nil
}
