package service

import (
	"context"
	"fmt"
	"strings"

	"clubhub-backend/internal/clock"
	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/logger"
	"clubhub-backend/internal/repository"
)

type announcementService struct {
	store repository.Store
	clk   clock.Clock
}

func NewAnnouncementService(store repository.Store, clk clock.Clock) AnnouncementService {
	return &announcementService{store: store, clk: clk}
}

// Create writes the announcement and one notification per active member in
// the same transaction.
func (s *announcementService) Create(ctx context.Context, managerID int32, title, body string) (*domain.Announcement, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(body) == "" {
		return nil, fmt.Errorf("%w: title and body are required", ErrInvalid)
	}

	manager, err := s.store.ClubManagers().GetByID(ctx, managerID)
	if err != nil {
		return nil, orNotFound(err)
	}
	club, err := s.store.Clubs().GetByID(ctx, manager.ClubID)
	if err != nil {
		return nil, orNotFound(err)
	}

	now := s.clk.Now()
	announcement := &domain.Announcement{
		ClubID:             manager.ClubID,
		Title:              title,
		Body:               body,
		CreatedByManagerID: managerID,
		CreatedAt:          now,
	}
	err = s.store.WithinTx(ctx, func(tx repository.Store) error {
		if err := tx.Announcements().Create(ctx, announcement); err != nil {
			return fmt.Errorf("create announcement: %w", err)
		}

		members, err := tx.Memberships().ListActiveByClub(ctx, manager.ClubID)
		if err != nil {
			return fmt.Errorf("list members: %w", err)
		}
		for _, member := range members {
			note := &domain.Notification{
				AccountID:         member.AccountID,
				Type:              domain.NotificationTypeAnnouncement,
				Title:             fmt.Sprintf("%s: %s", club.Name, title),
				Body:              body,
				RelatedObjectType: "announcement",
				RelatedObjectID:   &announcement.ID,
				CreatedAt:         now,
			}
			if err := tx.Notifications().Create(ctx, note); err != nil {
				return fmt.Errorf("notify member %d: %w", member.AccountID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("announcement published", "announcement_id", announcement.ID, "club_id", manager.ClubID)
	return announcement, nil
}

func (s *announcementService) ListManaged(ctx context.Context, managerID int32) ([]domain.Announcement, error) {
	manager, err := s.store.ClubManagers().GetByID(ctx, managerID)
	if err != nil {
		return nil, orNotFound(err)
	}
	return s.store.Announcements().ListByClub(ctx, manager.ClubID)
}

func (s *announcementService) ListForClub(ctx context.Context, clubID int32) ([]domain.Announcement, error) {
	club, err := s.store.Clubs().GetByID(ctx, clubID)
	if err != nil {
		return nil, orNotFound(err)
	}
	if club.Status != domain.ClubStatusApproved {
		return nil, ErrNotFound
	}
	return s.store.Announcements().ListByClub(ctx, clubID)
}
