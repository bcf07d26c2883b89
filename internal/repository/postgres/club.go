package postgres

import (
	"context"
	"time"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/repository"
)

type clubRepository struct {
	db repository.DBTX
}

func NewClubRepository(db repository.DBTX) repository.ClubRepository {
	return &clubRepository{db: db}
}

const clubColumns = `id, name, description, COALESCE(category, ''), COALESCE(contact_email, ''), status, applicant_account_id, approved_at, rejected_at, created_at, updated_at`

func (r *clubRepository) Create(ctx context.Context, c *domain.Club) error {
	query := `INSERT INTO clubs (name, description, category, contact_email, status, applicant_account_id, approved_at, rejected_at, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	now := time.Now().UTC()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = c.CreatedAt
	return r.db.QueryRowContext(ctx, query, c.Name, c.Description, c.Category, c.ContactEmail, c.Status, c.ApplicantAccountID, c.ApprovedAt, c.RejectedAt, c.CreatedAt, c.UpdatedAt).Scan(&c.ID)
}

func scanClub(s interface{ Scan(...any) error }) (*domain.Club, error) {
	c := &domain.Club{}
	err := s.Scan(&c.ID, &c.Name, &c.Description, &c.Category, &c.ContactEmail, &c.Status, &c.ApplicantAccountID, &c.ApprovedAt, &c.RejectedAt, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *clubRepository) GetByID(ctx context.Context, id int32) (*domain.Club, error) {
	query := `SELECT ` + clubColumns + ` FROM clubs WHERE id = $1`
	return scanClub(r.db.QueryRowContext(ctx, query, id))
}

func (r *clubRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	query := `SELECT COUNT(*) FROM clubs WHERE name = $1`
	var count int32
	if err := r.db.QueryRowContext(ctx, query, name).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *clubRepository) ListApproved(ctx context.Context, search string, limit, offset int32) ([]domain.Club, int32, error) {
	query := `SELECT ` + clubColumns + ` FROM clubs
	          WHERE status = $1 AND ($2 = '' OR name ILIKE $3)
	          ORDER BY name ASC LIMIT $4 OFFSET $5`
	rows, err := r.db.QueryContext(ctx, query, domain.ClubStatusApproved, search, "%"+search+"%", limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var clubs []domain.Club
	for rows.Next() {
		c, err := scanClub(rows)
		if err != nil {
			return nil, 0, err
		}
		clubs = append(clubs, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	countQuery := `SELECT COUNT(*) FROM clubs WHERE status = $1 AND ($2 = '' OR name ILIKE $3)`
	var total int32
	if err := r.db.QueryRowContext(ctx, countQuery, domain.ClubStatusApproved, search, "%"+search+"%").Scan(&total); err != nil {
		return nil, 0, err
	}
	return clubs, total, nil
}

func (r *clubRepository) List(ctx context.Context) ([]domain.Club, error) {
	query := `SELECT ` + clubColumns + ` FROM clubs ORDER BY name ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clubs []domain.Club
	for rows.Next() {
		c, err := scanClub(rows)
		if err != nil {
			return nil, err
		}
		clubs = append(clubs, *c)
	}
	return clubs, rows.Err()
}

func (r *clubRepository) Update(ctx context.Context, c *domain.Club) error {
	query := `UPDATE clubs SET name=$1, description=$2, category=$3, contact_email=$4, status=$5, approved_at=$6, rejected_at=$7, updated_at=$8 WHERE id=$9`
	c.UpdatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, query, c.Name, c.Description, c.Category, c.ContactEmail, c.Status, c.ApprovedAt, c.RejectedAt, c.UpdatedAt, c.ID)
	return err
}
