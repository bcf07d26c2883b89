package postgres

import (
	"context"
	"time"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/repository"
)

type membershipApplicationRepository struct {
	db repository.DBTX
}

func NewMembershipApplicationRepository(db repository.DBTX) repository.MembershipApplicationRepository {
	return &membershipApplicationRepository{db: db}
}

const membershipApplicationColumns = `id, club_id, account_id, status, COALESCE(message, ''), created_at, decided_at, decided_by_manager_id, COALESCE(decision_reason, '')`

func scanMembershipApplication(s interface{ Scan(...any) error }) (*domain.MembershipApplication, error) {
	app := &domain.MembershipApplication{}
	err := s.Scan(&app.ID, &app.ClubID, &app.AccountID, &app.Status, &app.Message, &app.CreatedAt, &app.DecidedAt, &app.DecidedByManagerID, &app.DecisionReason)
	if err != nil {
		return nil, err
	}
	return app, nil
}

func (r *membershipApplicationRepository) Create(ctx context.Context, app *domain.MembershipApplication) error {
	query := `INSERT INTO membership_applications (club_id, account_id, status, message, created_at)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	if app.CreatedAt.IsZero() {
		app.CreatedAt = time.Now().UTC()
	}
	return r.db.QueryRowContext(ctx, query, app.ClubID, app.AccountID, app.Status, app.Message, app.CreatedAt).Scan(&app.ID)
}

func (r *membershipApplicationRepository) GetByID(ctx context.Context, id int32) (*domain.MembershipApplication, error) {
	query := `SELECT ` + membershipApplicationColumns + ` FROM membership_applications WHERE id = $1`
	return scanMembershipApplication(r.db.QueryRowContext(ctx, query, id))
}

func (r *membershipApplicationRepository) Update(ctx context.Context, app *domain.MembershipApplication) error {
	query := `UPDATE membership_applications SET status=$1, decided_at=$2, decided_by_manager_id=$3, decision_reason=$4 WHERE id=$5`
	_, err := r.db.ExecContext(ctx, query, app.Status, app.DecidedAt, app.DecidedByManagerID, app.DecisionReason, app.ID)
	return err
}

func (r *membershipApplicationRepository) GetOpenByClubAndAccount(ctx context.Context, clubID, accountID int32) (*domain.MembershipApplication, error) {
	query := `SELECT ` + membershipApplicationColumns + ` FROM membership_applications
	          WHERE club_id = $1 AND account_id = $2 AND status IN ($3, $4)`
	return scanMembershipApplication(r.db.QueryRowContext(ctx, query, clubID, accountID, domain.MembershipApplicationStatusPending, domain.MembershipApplicationStatusApproved))
}

func (r *membershipApplicationRepository) ListPendingByClub(ctx context.Context, clubID int32) ([]domain.MembershipApplication, error) {
	query := `SELECT ` + membershipApplicationColumns + ` FROM membership_applications
	          WHERE club_id = $1 AND status = $2 ORDER BY created_at DESC`
	return r.list(ctx, query, clubID, domain.MembershipApplicationStatusPending)
}

func (r *membershipApplicationRepository) ListDecidedByClub(ctx context.Context, clubID int32) ([]domain.MembershipApplication, error) {
	query := `SELECT ` + membershipApplicationColumns + ` FROM membership_applications
	          WHERE club_id = $1 AND status != $2 ORDER BY decided_at DESC`
	return r.list(ctx, query, clubID, domain.MembershipApplicationStatusPending)
}

func (r *membershipApplicationRepository) ListByAccount(ctx context.Context, accountID int32) ([]domain.MembershipApplication, error) {
	query := `SELECT ` + membershipApplicationColumns + ` FROM membership_applications
	          WHERE account_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, accountID)
}

func (r *membershipApplicationRepository) list(ctx context.Context, query string, args ...any) ([]domain.MembershipApplication, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.MembershipApplication
	for rows.Next() {
		app, err := scanMembershipApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, *app)
	}
	return apps, rows.Err()
}
