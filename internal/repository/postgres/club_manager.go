package postgres

import (
	"context"
	"time"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/repository"
)

type clubManagerRepository struct {
	db repository.DBTX
}

func NewClubManagerRepository(db repository.DBTX) repository.ClubManagerRepository {
	return &clubManagerRepository{db: db}
}

func (r *clubManagerRepository) Create(ctx context.Context, m *domain.ClubManager) error {
	query := `INSERT INTO club_managers (club_id, email, password_hash, is_active, created_at)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	return r.db.QueryRowContext(ctx, query, m.ClubID, m.Email, m.PasswordHash, m.IsActive, m.CreatedAt).Scan(&m.ID)
}

func (r *clubManagerRepository) GetByID(ctx context.Context, id int32) (*domain.ClubManager, error) {
	m := &domain.ClubManager{}
	query := `SELECT id, club_id, email, password_hash, is_active, created_at FROM club_managers WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&m.ID, &m.ClubID, &m.Email, &m.PasswordHash, &m.IsActive, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *clubManagerRepository) GetByEmail(ctx context.Context, email string) (*domain.ClubManager, error) {
	m := &domain.ClubManager{}
	query := `SELECT id, club_id, email, password_hash, is_active, created_at FROM club_managers WHERE LOWER(email) = LOWER($1)`
	err := r.db.QueryRowContext(ctx, query, email).Scan(&m.ID, &m.ClubID, &m.Email, &m.PasswordHash, &m.IsActive, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *clubManagerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query := `SELECT COUNT(*) FROM club_managers WHERE LOWER(email) = LOWER($1)`
	var count int32
	if err := r.db.QueryRowContext(ctx, query, email).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}
