package postgres

import (
	"context"
	"time"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/repository"
)

type clubApplicationRepository struct {
	db repository.DBTX
}

func NewClubApplicationRepository(db repository.DBTX) repository.ClubApplicationRepository {
	return &clubApplicationRepository{db: db}
}

const clubApplicationColumns = `id, applicant_account_id, proposed_name, proposed_description, COALESCE(proposed_category, ''), COALESCE(founders_note, ''), status, COALESCE(admin_comment, ''), created_at, decided_at, decided_by_admin_id`

func scanClubApplication(s interface{ Scan(...any) error }) (*domain.ClubApplication, error) {
	app := &domain.ClubApplication{}
	err := s.Scan(&app.ID, &app.ApplicantAccountID, &app.ProposedName, &app.ProposedDescription, &app.ProposedCategory, &app.FoundersNote, &app.Status, &app.AdminComment, &app.CreatedAt, &app.DecidedAt, &app.DecidedByAdminID)
	if err != nil {
		return nil, err
	}
	return app, nil
}

func (r *clubApplicationRepository) Create(ctx context.Context, app *domain.ClubApplication) error {
	query := `INSERT INTO club_applications (applicant_account_id, proposed_name, proposed_description, proposed_category, founders_note, status, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	if app.CreatedAt.IsZero() {
		app.CreatedAt = time.Now().UTC()
	}
	return r.db.QueryRowContext(ctx, query, app.ApplicantAccountID, app.ProposedName, app.ProposedDescription, app.ProposedCategory, app.FoundersNote, app.Status, app.CreatedAt).Scan(&app.ID)
}

func (r *clubApplicationRepository) GetByID(ctx context.Context, id int32) (*domain.ClubApplication, error) {
	query := `SELECT ` + clubApplicationColumns + ` FROM club_applications WHERE id = $1`
	return scanClubApplication(r.db.QueryRowContext(ctx, query, id))
}

func (r *clubApplicationRepository) Update(ctx context.Context, app *domain.ClubApplication) error {
	query := `UPDATE club_applications SET status=$1, admin_comment=$2, decided_at=$3, decided_by_admin_id=$4 WHERE id=$5`
	_, err := r.db.ExecContext(ctx, query, app.Status, app.AdminComment, app.DecidedAt, app.DecidedByAdminID, app.ID)
	return err
}

func (r *clubApplicationRepository) GetPendingByApplicant(ctx context.Context, accountID int32) (*domain.ClubApplication, error) {
	query := `SELECT ` + clubApplicationColumns + ` FROM club_applications WHERE applicant_account_id = $1 AND status = $2`
	return scanClubApplication(r.db.QueryRowContext(ctx, query, accountID, domain.ClubApplicationStatusPending))
}

func (r *clubApplicationRepository) ListByApplicant(ctx context.Context, accountID int32) ([]domain.ClubApplication, error) {
	query := `SELECT ` + clubApplicationColumns + ` FROM club_applications WHERE applicant_account_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, accountID)
}

func (r *clubApplicationRepository) ListByStatus(ctx context.Context, status domain.ClubApplicationStatus) ([]domain.ClubApplication, error) {
	query := `SELECT ` + clubApplicationColumns + ` FROM club_applications WHERE status = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, status)
}

func (r *clubApplicationRepository) list(ctx context.Context, query string, args ...any) ([]domain.ClubApplication, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.ClubApplication
	for rows.Next() {
		app, err := scanClubApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, *app)
	}
	return apps, rows.Err()
}
