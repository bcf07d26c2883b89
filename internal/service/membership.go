package service

import (
	"context"
	"fmt"

	"clubhub-backend/internal/clock"
	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/logger"
	"clubhub-backend/internal/repository"
)

type membershipService struct {
	store repository.Store
	clk   clock.Clock
}

func NewMembershipService(store repository.Store, clk clock.Clock) MembershipService {
	return &membershipService{store: store, clk: clk}
}

func (s *membershipService) Apply(ctx context.Context, accountID, clubID int32, message string) (*domain.MembershipApplication, error) {
	club, err := s.store.Clubs().GetByID(ctx, clubID)
	if err != nil {
		return nil, orNotFound(err)
	}
	if club.Status != domain.ClubStatusApproved {
		return nil, ErrNotFound
	}

	// Active members cannot apply again; a reactivation goes through the
	// manager like any other application.
	if membership, err := s.store.Memberships().Get(ctx, clubID, accountID); err == nil {
		if membership.IsActive {
			return nil, fmt.Errorf("%w: already an active member", ErrConflict)
		}
	} else if !isNoRows(err) {
		return nil, fmt.Errorf("check membership: %w", err)
	}

	if _, err := s.store.MembershipApplications().GetOpenByClubAndAccount(ctx, clubID, accountID); err == nil {
		return nil, fmt.Errorf("%w: an open application for this club already exists", ErrConflict)
	} else if !isNoRows(err) {
		return nil, fmt.Errorf("check open application: %w", err)
	}

	app := &domain.MembershipApplication{
		ClubID:    clubID,
		AccountID: accountID,
		Status:    domain.MembershipApplicationStatusPending,
		Message:   message,
		CreatedAt: s.clk.Now(),
	}
	if err := s.store.MembershipApplications().Create(ctx, app); err != nil {
		return nil, fmt.Errorf("create membership application: %w", err)
	}
	return app, nil
}

func (s *membershipService) Decide(ctx context.Context, managerID, applicationID int32, approve bool, reason string) (*domain.MembershipApplication, error) {
	manager, err := s.store.ClubManagers().GetByID(ctx, managerID)
	if err != nil {
		return nil, orNotFound(err)
	}

	app, err := s.store.MembershipApplications().GetByID(ctx, applicationID)
	if err != nil {
		return nil, orNotFound(err)
	}
	if app.ClubID != manager.ClubID {
		return nil, ErrNotFound
	}
	if app.Status != domain.MembershipApplicationStatusPending {
		return nil, fmt.Errorf("%w: application has already been decided", ErrConflict)
	}

	club, err := s.store.Clubs().GetByID(ctx, app.ClubID)
	if err != nil {
		return nil, orNotFound(err)
	}

	now := s.clk.Now()
	if approve {
		app.Status = domain.MembershipApplicationStatusApproved
	} else {
		app.Status = domain.MembershipApplicationStatusRejected
	}
	app.DecidedAt = &now
	app.DecidedByManagerID = &managerID
	app.DecisionReason = reason

	verb := "approved"
	if !approve {
		verb = "rejected"
	}
	err = s.store.WithinTx(ctx, func(tx repository.Store) error {
		if err := tx.MembershipApplications().Update(ctx, app); err != nil {
			return fmt.Errorf("update membership application: %w", err)
		}

		if approve {
			// A previously deactivated member keeps the same row.
			if membership, err := tx.Memberships().Get(ctx, app.ClubID, app.AccountID); err == nil {
				if err := tx.Memberships().SetActive(ctx, membership.ID, true); err != nil {
					return fmt.Errorf("reactivate membership: %w", err)
				}
			} else if isNoRows(err) {
				membership := &domain.Membership{
					ClubID:    app.ClubID,
					AccountID: app.AccountID,
					JoinedAt:  now,
					IsActive:  true,
				}
				if err := tx.Memberships().Create(ctx, membership); err != nil {
					return fmt.Errorf("create membership: %w", err)
				}
			} else {
				return fmt.Errorf("check membership: %w", err)
			}
		}

		note := &domain.Notification{
			AccountID:         app.AccountID,
			Type:              domain.NotificationTypeMembershipDecision,
			Title:             "Membership application " + verb,
			Body:              fmt.Sprintf("Your application to join %q was %s.", club.Name, verb),
			RelatedObjectType: "membership_application",
			RelatedObjectID:   &app.ID,
			CreatedAt:         now,
		}
		return tx.Notifications().Create(ctx, note)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("membership application decided", "application_id", app.ID, "club_id", app.ClubID, "approved", approve)
	return app, nil
}

func (s *membershipService) ListPending(ctx context.Context, managerID int32) ([]domain.MembershipApplication, error) {
	manager, err := s.store.ClubManagers().GetByID(ctx, managerID)
	if err != nil {
		return nil, orNotFound(err)
	}
	return s.store.MembershipApplications().ListPendingByClub(ctx, manager.ClubID)
}

func (s *membershipService) ListDecided(ctx context.Context, managerID int32) ([]domain.MembershipApplication, error) {
	manager, err := s.store.ClubManagers().GetByID(ctx, managerID)
	if err != nil {
		return nil, orNotFound(err)
	}
	return s.store.MembershipApplications().ListDecidedByClub(ctx, manager.ClubID)
}

func (s *membershipService) ListOwnApplications(ctx context.Context, accountID int32) ([]domain.MembershipApplication, error) {
	return s.store.MembershipApplications().ListByAccount(ctx, accountID)
}

func (s *membershipService) ListOwnMemberships(ctx context.Context, accountID int32) ([]domain.Membership, error) {
	return s.store.Memberships().ListActiveByAccount(ctx, accountID)
}
