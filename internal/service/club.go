package service

import (
	"context"
	"fmt"
	"strings"

	"clubhub-backend/internal/clock"
	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/repository"
)

type clubService struct {
	store repository.Store
	clk   clock.Clock
}

func NewClubService(store repository.Store, clk clock.Clock) ClubService {
	return &clubService{store: store, clk: clk}
}

func (s *clubService) ListApproved(ctx context.Context, search string, page, pageSize int32) ([]domain.Club, int32, error) {
	limit, offset := listOffset(page, pageSize)
	clubs, total, err := s.store.Clubs().ListApproved(ctx, strings.TrimSpace(search), limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list approved clubs: %w", err)
	}
	return clubs, total, nil
}

func (s *clubService) GetApproved(ctx context.Context, clubID int32) (*domain.Club, error) {
	club, err := s.store.Clubs().GetByID(ctx, clubID)
	if err != nil {
		return nil, orNotFound(err)
	}
	if club.Status != domain.ClubStatusApproved {
		return nil, ErrNotFound
	}
	return club, nil
}

func (s *clubService) GetManaged(ctx context.Context, managerID int32) (*domain.Club, error) {
	manager, err := s.store.ClubManagers().GetByID(ctx, managerID)
	if err != nil {
		return nil, orNotFound(err)
	}
	club, err := s.store.Clubs().GetByID(ctx, manager.ClubID)
	if err != nil {
		return nil, orNotFound(err)
	}
	return club, nil
}

func (s *clubService) UpdateManaged(ctx context.Context, managerID int32, description, category, contactEmail string) (*domain.Club, error) {
	club, err := s.GetManaged(ctx, managerID)
	if err != nil {
		return nil, err
	}

	if description != "" {
		club.Description = description
	}
	if category != "" {
		club.Category = category
	}
	if contactEmail != "" {
		club.ContactEmail = strings.ToLower(strings.TrimSpace(contactEmail))
	}
	club.UpdatedAt = s.clk.Now()

	if err := s.store.Clubs().Update(ctx, club); err != nil {
		return nil, fmt.Errorf("update club: %w", err)
	}
	return club, nil
}
