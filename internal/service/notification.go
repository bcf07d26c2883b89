package service

import (
	"context"
	"fmt"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/repository"
)

type notificationService struct {
	store repository.Store
}

func NewNotificationService(store repository.Store) NotificationService {
	return &notificationService{store: store}
}

func (s *notificationService) List(ctx context.Context, accountID, page, pageSize int32) ([]domain.Notification, int32, error) {
	limit, offset := listOffset(page, pageSize)
	notes, total, err := s.store.Notifications().List(ctx, accountID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list notifications: %w", err)
	}
	return notes, total, nil
}

func (s *notificationService) MarkAsRead(ctx context.Context, accountID, notificationID int32) error {
	if err := s.store.Notifications().MarkAsRead(ctx, notificationID, accountID); err != nil {
		return ErrNotFound
	}
	return nil
}
