package postgres

import (
	"context"
	"time"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/repository"
)

type membershipRepository struct {
	db repository.DBTX
}

func NewMembershipRepository(db repository.DBTX) repository.MembershipRepository {
	return &membershipRepository{db: db}
}

func (r *membershipRepository) Create(ctx context.Context, m *domain.Membership) error {
	query := `INSERT INTO memberships (club_id, account_id, joined_at, is_active)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	if m.JoinedAt.IsZero() {
		m.JoinedAt = time.Now().UTC()
	}
	return r.db.QueryRowContext(ctx, query, m.ClubID, m.AccountID, m.JoinedAt, m.IsActive).Scan(&m.ID)
}

func (r *membershipRepository) Get(ctx context.Context, clubID, accountID int32) (*domain.Membership, error) {
	m := &domain.Membership{}
	query := `SELECT id, club_id, account_id, joined_at, is_active FROM memberships WHERE club_id = $1 AND account_id = $2`
	err := r.db.QueryRowContext(ctx, query, clubID, accountID).Scan(&m.ID, &m.ClubID, &m.AccountID, &m.JoinedAt, &m.IsActive)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *membershipRepository) SetActive(ctx context.Context, id int32, active bool) error {
	query := `UPDATE memberships SET is_active = $1 WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, active, id)
	return err
}

func (r *membershipRepository) ListActiveByClub(ctx context.Context, clubID int32) ([]domain.Membership, error) {
	query := `SELECT id, club_id, account_id, joined_at, is_active FROM memberships WHERE club_id = $1 AND is_active = TRUE ORDER BY joined_at ASC`
	return r.list(ctx, query, clubID)
}

func (r *membershipRepository) ListActiveByAccount(ctx context.Context, accountID int32) ([]domain.Membership, error) {
	query := `SELECT id, club_id, account_id, joined_at, is_active FROM memberships WHERE account_id = $1 AND is_active = TRUE ORDER BY joined_at ASC`
	return r.list(ctx, query, accountID)
}

func (r *membershipRepository) list(ctx context.Context, query string, args ...any) ([]domain.Membership, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var memberships []domain.Membership
	for rows.Next() {
		var m domain.Membership
		if err := rows.Scan(&m.ID, &m.ClubID, &m.AccountID, &m.JoinedAt, &m.IsActive); err != nil {
			return nil, err
		}
		memberships = append(memberships, m)
	}
	return memberships, rows.Err()
}
