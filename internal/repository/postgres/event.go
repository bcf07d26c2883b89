package postgres

import (
	"context"
	"time"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/repository"
)

type eventRepository struct {
	db repository.DBTX
}

func NewEventRepository(db repository.DBTX) repository.EventRepository {
	return &eventRepository{db: db}
}

const eventColumns = `id, club_id, title, description, location, start_at, end_at, capacity, registration_deadline, status, COALESCE(admin_comment, ''), decided_by_admin_id, created_by_manager_id, created_at, decided_at`

func scanEvent(s interface{ Scan(...any) error }) (*domain.Event, error) {
	e := &domain.Event{}
	err := s.Scan(&e.ID, &e.ClubID, &e.Title, &e.Description, &e.Location, &e.StartAt, &e.EndAt, &e.Capacity, &e.RegistrationDeadline, &e.Status, &e.AdminComment, &e.DecidedByAdminID, &e.CreatedByManagerID, &e.CreatedAt, &e.DecidedAt)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (club_id, title, description, location, start_at, end_at, capacity, registration_deadline, status, created_by_manager_id, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	return r.db.QueryRowContext(ctx, query, e.ClubID, e.Title, e.Description, e.Location, e.StartAt, e.EndAt, e.Capacity, e.RegistrationDeadline, e.Status, e.CreatedByManagerID, e.CreatedAt).Scan(&e.ID)
}

func (r *eventRepository) GetByID(ctx context.Context, id int32) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	return scanEvent(r.db.QueryRowContext(ctx, query, id))
}

// GetByIDForUpdate must run inside a transaction; the row lock serializes
// concurrent registrations against the capacity check.
func (r *eventRepository) GetByIDForUpdate(ctx context.Context, id int32) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1 FOR UPDATE`
	return scanEvent(r.db.QueryRowContext(ctx, query, id))
}

func (r *eventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `UPDATE events SET status=$1, admin_comment=$2, decided_by_admin_id=$3, decided_at=$4 WHERE id=$5`
	_, err := r.db.ExecContext(ctx, query, e.Status, e.AdminComment, e.DecidedByAdminID, e.DecidedAt, e.ID)
	return err
}

func (r *eventRepository) ListApproved(ctx context.Context, clubID, limit, offset int32) ([]domain.Event, int32, error) {
	query := `SELECT ` + eventColumns + ` FROM events
	          WHERE status = $1 AND ($2 = 0 OR club_id = $2)
	          ORDER BY start_at ASC LIMIT $3 OFFSET $4`
	events, err := r.list(ctx, query, domain.EventStatusApproved, clubID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	countQuery := `SELECT COUNT(*) FROM events WHERE status = $1 AND ($2 = 0 OR club_id = $2)`
	var total int32
	if err := r.db.QueryRowContext(ctx, countQuery, domain.EventStatusApproved, clubID).Scan(&total); err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

func (r *eventRepository) ListByClub(ctx context.Context, clubID int32) ([]domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE club_id = $1 ORDER BY start_at DESC`
	return r.list(ctx, query, clubID)
}

func (r *eventRepository) ListByStatus(ctx context.Context, status domain.EventStatus) ([]domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE status = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, status)
}

func (r *eventRepository) ListApprovedStartingBetween(ctx context.Context, from, to time.Time) ([]domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE status = $1 AND start_at >= $2 AND start_at < $3 ORDER BY start_at ASC`
	return r.list(ctx, query, domain.EventStatusApproved, from, to)
}

func (r *eventRepository) list(ctx context.Context, query string, args ...any) ([]domain.Event, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *e)
	}
	return events, rows.Err()
}
