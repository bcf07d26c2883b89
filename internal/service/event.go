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

type eventService struct {
	store repository.Store
	clk   clock.Clock
}

func NewEventService(store repository.Store, clk clock.Clock) EventService {
	return &eventService{store: store, clk: clk}
}

func (s *eventService) Propose(ctx context.Context, managerID int32, event *domain.Event) (*domain.Event, error) {
	manager, err := s.store.ClubManagers().GetByID(ctx, managerID)
	if err != nil {
		return nil, orNotFound(err)
	}

	if strings.TrimSpace(event.Title) == "" {
		return nil, fmt.Errorf("%w: event title is required", ErrInvalid)
	}
	if !event.EndAt.After(event.StartAt) {
		return nil, fmt.Errorf("%w: event must end after it starts", ErrInvalid)
	}
	if event.RegistrationDeadline != nil && !event.RegistrationDeadline.Before(event.StartAt) {
		return nil, fmt.Errorf("%w: registration deadline must be before the start", ErrInvalid)
	}
	if event.Capacity != nil && *event.Capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive", ErrInvalid)
	}

	event.ClubID = manager.ClubID
	event.Status = domain.EventStatusPendingApproval
	event.CreatedByManagerID = managerID
	event.CreatedAt = s.clk.Now()
	event.AdminComment = ""
	event.DecidedAt = nil
	event.DecidedByAdminID = nil

	if err := s.store.Events().Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	logger.Info("event proposed", "event_id", event.ID, "club_id", event.ClubID)
	return event, nil
}

func (s *eventService) ListManaged(ctx context.Context, managerID int32) ([]domain.Event, error) {
	manager, err := s.store.ClubManagers().GetByID(ctx, managerID)
	if err != nil {
		return nil, orNotFound(err)
	}
	return s.store.Events().ListByClub(ctx, manager.ClubID)
}

func (s *eventService) ListApproved(ctx context.Context, clubID, page, pageSize int32) ([]domain.Event, int32, error) {
	limit, offset := listOffset(page, pageSize)
	events, total, err := s.store.Events().ListApproved(ctx, clubID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list approved events: %w", err)
	}
	return events, total, nil
}

func (s *eventService) GetApproved(ctx context.Context, accountID, eventID int32) (*domain.Event, *domain.EventRegistration, error) {
	event, err := s.store.Events().GetByID(ctx, eventID)
	if err != nil {
		return nil, nil, orNotFound(err)
	}
	if event.Status != domain.EventStatusApproved {
		return nil, nil, ErrNotFound
	}

	reg, err := s.store.EventRegistrations().Get(ctx, eventID, accountID)
	if err != nil {
		if isNoRows(err) {
			return event, nil, nil
		}
		return nil, nil, fmt.Errorf("get registration: %w", err)
	}
	return event, reg, nil
}

// Register serializes the capacity check by locking the event row; the unique
// (event_id, account_id) constraint decides any remaining race.
func (s *eventService) Register(ctx context.Context, accountID, eventID int32) (*domain.EventRegistration, error) {
	var out *domain.EventRegistration
	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		event, err := tx.Events().GetByIDForUpdate(ctx, eventID)
		if err != nil {
			return orNotFound(err)
		}
		if event.Status != domain.EventStatusApproved {
			return ErrNotFound
		}

		now := s.clk.Now()
		if event.RegistrationDeadline != nil && now.After(*event.RegistrationDeadline) {
			return fmt.Errorf("%w: registration deadline has passed", ErrConflict)
		}
		if !now.Before(event.StartAt) {
			return fmt.Errorf("%w: event has already started", ErrConflict)
		}
		if event.Capacity != nil {
			count, err := tx.EventRegistrations().CountRegistered(ctx, eventID)
			if err != nil {
				return fmt.Errorf("count registrations: %w", err)
			}
			if count >= *event.Capacity {
				return fmt.Errorf("%w: event is full", ErrConflict)
			}
		}

		reg, err := tx.EventRegistrations().Get(ctx, eventID, accountID)
		switch {
		case err == nil && reg.Status == domain.EventRegistrationStatusRegistered:
			return fmt.Errorf("%w: already registered", ErrConflict)
		case err == nil:
			// Cancelled before; the row is reused.
			reg.Status = domain.EventRegistrationStatusRegistered
			reg.RegisteredAt = now
			reg.CancelledAt = nil
			if err := tx.EventRegistrations().Update(ctx, reg); err != nil {
				return fmt.Errorf("reactivate registration: %w", err)
			}
			out = reg
			return nil
		case isNoRows(err):
			reg = &domain.EventRegistration{
				EventID:      eventID,
				AccountID:    accountID,
				Status:       domain.EventRegistrationStatusRegistered,
				RegisteredAt: now,
			}
			if err := tx.EventRegistrations().Create(ctx, reg); err != nil {
				if repository.IsUniqueViolation(err) {
					return fmt.Errorf("%w: already registered", ErrConflict)
				}
				return fmt.Errorf("create registration: %w", err)
			}
			out = reg
			return nil
		default:
			return fmt.Errorf("get registration: %w", err)
		}
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *eventService) CancelRegistration(ctx context.Context, accountID, eventID int32) error {
	reg, err := s.store.EventRegistrations().Get(ctx, eventID, accountID)
	if err != nil {
		return orNotFound(err)
	}
	if reg.Status != domain.EventRegistrationStatusRegistered {
		return fmt.Errorf("%w: registration is not active", ErrConflict)
	}

	now := s.clk.Now()
	reg.Status = domain.EventRegistrationStatusCancelled
	reg.CancelledAt = &now
	if err := s.store.EventRegistrations().Update(ctx, reg); err != nil {
		return fmt.Errorf("cancel registration: %w", err)
	}
	return nil
}

func (s *eventService) ListRegistrations(ctx context.Context, managerID, eventID int32) ([]domain.EventRegistration, error) {
	manager, err := s.store.ClubManagers().GetByID(ctx, managerID)
	if err != nil {
		return nil, orNotFound(err)
	}
	event, err := s.store.Events().GetByID(ctx, eventID)
	if err != nil {
		return nil, orNotFound(err)
	}
	if event.ClubID != manager.ClubID {
		return nil, ErrNotFound
	}
	return s.store.EventRegistrations().ListByEvent(ctx, eventID)
}
