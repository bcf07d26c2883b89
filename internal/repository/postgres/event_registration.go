package postgres

import (
	"context"
	"time"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/repository"
)

type eventRegistrationRepository struct {
	db repository.DBTX
}

func NewEventRegistrationRepository(db repository.DBTX) repository.EventRegistrationRepository {
	return &eventRegistrationRepository{db: db}
}

func (r *eventRegistrationRepository) Create(ctx context.Context, reg *domain.EventRegistration) error {
	query := `INSERT INTO event_registrations (event_id, account_id, status, registered_at)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	if reg.RegisteredAt.IsZero() {
		reg.RegisteredAt = time.Now().UTC()
	}
	return r.db.QueryRowContext(ctx, query, reg.EventID, reg.AccountID, reg.Status, reg.RegisteredAt).Scan(&reg.ID)
}

func (r *eventRegistrationRepository) Update(ctx context.Context, reg *domain.EventRegistration) error {
	query := `UPDATE event_registrations SET status=$1, registered_at=$2, cancelled_at=$3 WHERE id=$4`
	_, err := r.db.ExecContext(ctx, query, reg.Status, reg.RegisteredAt, reg.CancelledAt, reg.ID)
	return err
}

func (r *eventRegistrationRepository) Get(ctx context.Context, eventID, accountID int32) (*domain.EventRegistration, error) {
	reg := &domain.EventRegistration{}
	query := `SELECT id, event_id, account_id, status, registered_at, cancelled_at FROM event_registrations WHERE event_id = $1 AND account_id = $2`
	err := r.db.QueryRowContext(ctx, query, eventID, accountID).Scan(&reg.ID, &reg.EventID, &reg.AccountID, &reg.Status, &reg.RegisteredAt, &reg.CancelledAt)
	if err != nil {
		return nil, err
	}
	return reg, nil
}

func (r *eventRegistrationRepository) CountRegistered(ctx context.Context, eventID int32) (int32, error) {
	query := `SELECT COUNT(*) FROM event_registrations WHERE event_id = $1 AND status = $2`
	var count int32
	if err := r.db.QueryRowContext(ctx, query, eventID, domain.EventRegistrationStatusRegistered).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *eventRegistrationRepository) ListByEvent(ctx context.Context, eventID int32) ([]domain.EventRegistration, error) {
	query := `SELECT id, event_id, account_id, status, registered_at, cancelled_at FROM event_registrations WHERE event_id = $1 ORDER BY registered_at DESC`
	rows, err := r.db.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var regs []domain.EventRegistration
	for rows.Next() {
		var reg domain.EventRegistration
		if err := rows.Scan(&reg.ID, &reg.EventID, &reg.AccountID, &reg.Status, &reg.RegisteredAt, &reg.CancelledAt); err != nil {
			return nil, err
		}
		regs = append(regs, reg)
	}
	return regs, rows.Err()
}
