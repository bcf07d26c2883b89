package postgres

import (
	"context"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/repository"
)

type founderInvitationRepository struct {
	db repository.DBTX
}

func NewFounderInvitationRepository(db repository.DBTX) repository.FounderInvitationRepository {
	return &founderInvitationRepository{db: db}
}

const founderInvitationColumns = `id, application_id, invited_account_id, status, responded_at`

func scanFounderInvitation(s interface{ Scan(...any) error }) (*domain.FounderInvitation, error) {
	inv := &domain.FounderInvitation{}
	err := s.Scan(&inv.ID, &inv.ApplicationID, &inv.InvitedAccountID, &inv.Status, &inv.RespondedAt)
	if err != nil {
		return nil, err
	}
	return inv, nil
}

func (r *founderInvitationRepository) Create(ctx context.Context, inv *domain.FounderInvitation) error {
	query := `INSERT INTO founder_invitations (application_id, invited_account_id, status)
	          VALUES ($1, $2, $3) RETURNING id`
	return r.db.QueryRowContext(ctx, query, inv.ApplicationID, inv.InvitedAccountID, inv.Status).Scan(&inv.ID)
}

func (r *founderInvitationRepository) GetByID(ctx context.Context, id int32) (*domain.FounderInvitation, error) {
	query := `SELECT ` + founderInvitationColumns + ` FROM founder_invitations WHERE id = $1`
	return scanFounderInvitation(r.db.QueryRowContext(ctx, query, id))
}

func (r *founderInvitationRepository) GetByApplicationAndAccount(ctx context.Context, applicationID, accountID int32) (*domain.FounderInvitation, error) {
	query := `SELECT ` + founderInvitationColumns + ` FROM founder_invitations WHERE application_id = $1 AND invited_account_id = $2`
	return scanFounderInvitation(r.db.QueryRowContext(ctx, query, applicationID, accountID))
}

func (r *founderInvitationRepository) Update(ctx context.Context, inv *domain.FounderInvitation) error {
	query := `UPDATE founder_invitations SET status=$1, responded_at=$2 WHERE id=$3`
	_, err := r.db.ExecContext(ctx, query, inv.Status, inv.RespondedAt, inv.ID)
	return err
}

func (r *founderInvitationRepository) Delete(ctx context.Context, id int32) error {
	query := `DELETE FROM founder_invitations WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *founderInvitationRepository) ListByApplication(ctx context.Context, applicationID int32) ([]domain.FounderInvitation, error) {
	query := `SELECT ` + founderInvitationColumns + ` FROM founder_invitations WHERE application_id = $1 ORDER BY id ASC`
	return r.list(ctx, query, applicationID)
}

func (r *founderInvitationRepository) ListByAccount(ctx context.Context, accountID int32) ([]domain.FounderInvitation, error) {
	query := `SELECT ` + founderInvitationColumns + ` FROM founder_invitations WHERE invited_account_id = $1 ORDER BY id DESC`
	return r.list(ctx, query, accountID)
}

func (r *founderInvitationRepository) list(ctx context.Context, query string, args ...any) ([]domain.FounderInvitation, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invites []domain.FounderInvitation
	for rows.Next() {
		inv, err := scanFounderInvitation(rows)
		if err != nil {
			return nil, err
		}
		invites = append(invites, *inv)
	}
	return invites, rows.Err()
}
