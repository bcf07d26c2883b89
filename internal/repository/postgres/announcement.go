package postgres

import (
	"context"
	"time"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/repository"
)

type announcementRepository struct {
	db repository.DBTX
}

func NewAnnouncementRepository(db repository.DBTX) repository.AnnouncementRepository {
	return &announcementRepository{db: db}
}

func (r *announcementRepository) Create(ctx context.Context, a *domain.Announcement) error {
	query := `INSERT INTO announcements (club_id, title, body, created_by_manager_id, created_at)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	return r.db.QueryRowContext(ctx, query, a.ClubID, a.Title, a.Body, a.CreatedByManagerID, a.CreatedAt).Scan(&a.ID)
}

func (r *announcementRepository) ListByClub(ctx context.Context, clubID int32) ([]domain.Announcement, error) {
	query := `SELECT id, club_id, title, body, created_by_manager_id, created_at FROM announcements WHERE club_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, clubID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var announcements []domain.Announcement
	for rows.Next() {
		var a domain.Announcement
		if err := rows.Scan(&a.ID, &a.ClubID, &a.Title, &a.Body, &a.CreatedByManagerID, &a.CreatedAt); err != nil {
			return nil, err
		}
		announcements = append(announcements, a)
	}
	return announcements, rows.Err()
}
