package postgres

import (
	"context"
	"time"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/repository"
)

type accountRepository struct {
	db repository.DBTX
}

func NewAccountRepository(db repository.DBTX) repository.AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Create(ctx context.Context, a *domain.Account) error {
	query := `INSERT INTO accounts (role, name, surname, university_id, email, password_hash, is_active, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	now := time.Now().UTC()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	a.UpdatedAt = a.CreatedAt
	return r.db.QueryRowContext(ctx, query, a.Role, a.Name, a.Surname, a.UniversityID, a.Email, a.PasswordHash, a.IsActive, a.CreatedAt, a.UpdatedAt).Scan(&a.ID)
}

func (r *accountRepository) GetByID(ctx context.Context, id int32) (*domain.Account, error) {
	a := &domain.Account{}
	query := `SELECT id, role, name, surname, COALESCE(university_id, ''), email, password_hash, is_active, created_at, updated_at
	          FROM accounts WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&a.ID, &a.Role, &a.Name, &a.Surname, &a.UniversityID, &a.Email, &a.PasswordHash, &a.IsActive, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *accountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	a := &domain.Account{}
	query := `SELECT id, role, name, surname, COALESCE(university_id, ''), email, password_hash, is_active, created_at, updated_at
	          FROM accounts WHERE LOWER(email) = LOWER($1)`
	err := r.db.QueryRowContext(ctx, query, email).Scan(&a.ID, &a.Role, &a.Name, &a.Surname, &a.UniversityID, &a.Email, &a.PasswordHash, &a.IsActive, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *accountRepository) ExistsByEmailOrUniversityID(ctx context.Context, email, universityID string) (bool, error) {
	query := `SELECT COUNT(*) FROM accounts WHERE LOWER(email) = LOWER($1) OR university_id = $2`
	var count int32
	if err := r.db.QueryRowContext(ctx, query, email, universityID).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}
