package service

import (
	"context"
	"fmt"
	"strings"

	"clubhub-backend/internal/clock"
	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/logger"
	"clubhub-backend/internal/repository"
	"clubhub-backend/internal/security"

	"github.com/google/uuid"
)

type adminService struct {
	store  repository.Store
	hasher security.PasswordHasher
	email  EmailService
	clk    clock.Clock
}

func NewAdminService(store repository.Store, hasher security.PasswordHasher, email EmailService, clk clock.Clock) AdminService {
	return &adminService{store: store, hasher: hasher, email: email, clk: clk}
}

func (s *adminService) ListPendingClubApplications(ctx context.Context) ([]domain.ClubApplication, error) {
	return s.store.ClubApplications().ListByStatus(ctx, domain.ClubApplicationStatusPending)
}

// DecideClubApplication approves or rejects a pending application. Approval
// creates the club and its manager account in the same transaction as the
// status change, the applicant notification, and the audit entry.
func (s *adminService) DecideClubApplication(ctx context.Context, adminID, applicationID int32, approve bool, comment, managerEmail, managerPassword string) (*domain.ClubApplication, error) {
	app, err := s.store.ClubApplications().GetByID(ctx, applicationID)
	if err != nil {
		return nil, orNotFound(err)
	}
	if app.Status != domain.ClubApplicationStatusPending {
		return nil, fmt.Errorf("%w: application has already been decided", ErrConflict)
	}

	if !approve {
		return s.rejectClubApplication(ctx, adminID, app, comment)
	}

	taken, err := s.store.Clubs().ExistsByName(ctx, app.ProposedName)
	if err != nil {
		return nil, fmt.Errorf("check club name: %w", err)
	}
	if taken {
		return nil, fmt.Errorf("%w: a club with this name already exists", ErrConflict)
	}

	managerEmail = strings.ToLower(strings.TrimSpace(managerEmail))
	if managerEmail == "" {
		managerEmail = deriveManagerEmail(app.ProposedName)
	}
	emailTaken, err := s.store.ClubManagers().ExistsByEmail(ctx, managerEmail)
	if err != nil {
		return nil, fmt.Errorf("check manager email: %w", err)
	}
	if emailTaken {
		return nil, fmt.Errorf("%w: manager email already in use", ErrConflict)
	}

	if managerPassword == "" {
		managerPassword = generateInitialPassword()
	}
	hash, err := s.hasher.Hash(managerPassword)
	if err != nil {
		return nil, fmt.Errorf("hash manager password: %w", err)
	}

	now := s.clk.Now()
	club := &domain.Club{
		Name:               app.ProposedName,
		Description:        app.ProposedDescription,
		Category:           app.ProposedCategory,
		ContactEmail:       managerEmail,
		Status:             domain.ClubStatusApproved,
		ApplicantAccountID: app.ApplicantAccountID,
		ApprovedAt:         &now,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	err = s.store.WithinTx(ctx, func(tx repository.Store) error {
		if err := tx.Clubs().Create(ctx, club); err != nil {
			if repository.IsUniqueViolation(err) {
				return fmt.Errorf("%w: a club with this name already exists", ErrConflict)
			}
			return fmt.Errorf("create club: %w", err)
		}

		manager := &domain.ClubManager{
			ClubID:       club.ID,
			Email:        managerEmail,
			PasswordHash: hash,
			IsActive:     true,
			CreatedAt:    now,
		}
		if err := tx.ClubManagers().Create(ctx, manager); err != nil {
			if repository.IsUniqueViolation(err) {
				return fmt.Errorf("%w: manager email already in use", ErrConflict)
			}
			return fmt.Errorf("create club manager: %w", err)
		}

		app.Status = domain.ClubApplicationStatusApproved
		app.DecidedAt = &now
		app.DecidedByAdminID = &adminID
		app.AdminComment = comment
		if err := tx.ClubApplications().Update(ctx, app); err != nil {
			return fmt.Errorf("update application: %w", err)
		}

		// The notification is the only channel carrying the initial
		// manager password.
		note := &domain.Notification{
			AccountID: app.ApplicantAccountID,
			Type:      domain.NotificationTypeClubAppDecision,
			Title:     "Club application approved",
			Body: fmt.Sprintf("Your application for %q was approved. Manager login: %s, initial password: %s. Change it after first login.",
				club.Name, managerEmail, managerPassword),
			RelatedObjectType: "club",
			RelatedObjectID:   &club.ID,
			CreatedAt:         now,
		}
		if err := tx.Notifications().Create(ctx, note); err != nil {
			return fmt.Errorf("notify applicant: %w", err)
		}

		return tx.AuditLogs().Create(ctx, &domain.AuditLog{
			ActorKind:  domain.AuditActorKindAdmin,
			ActorID:    adminID,
			Action:     "approve_club_application",
			ObjectType: "club_application",
			ObjectID:   app.ID,
			Details:    fmt.Sprintf("club_id=%d manager_email=%s", club.ID, managerEmail),
			CreatedAt:  now,
		})
	})
	if err != nil {
		return nil, err
	}

	// Best-effort welcome mail; credentials stay out of it.
	if err := s.email.SendManagerWelcome(ctx, managerEmail, club.Name); err != nil {
		logger.Warn("manager welcome email failed", "club_id", club.ID, "error", err)
	}

	logger.Info("club application approved", "application_id", app.ID, "club_id", club.ID, "admin_id", adminID)
	return app, nil
}

func (s *adminService) rejectClubApplication(ctx context.Context, adminID int32, app *domain.ClubApplication, comment string) (*domain.ClubApplication, error) {
	now := s.clk.Now()
	app.Status = domain.ClubApplicationStatusRejected
	app.DecidedAt = &now
	app.DecidedByAdminID = &adminID
	app.AdminComment = comment

	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		if err := tx.ClubApplications().Update(ctx, app); err != nil {
			return fmt.Errorf("update application: %w", err)
		}
		note := &domain.Notification{
			AccountID:         app.ApplicantAccountID,
			Type:              domain.NotificationTypeClubAppDecision,
			Title:             "Club application rejected",
			Body:              fmt.Sprintf("Your application for %q was rejected. %s", app.ProposedName, comment),
			RelatedObjectType: "club_application",
			RelatedObjectID:   &app.ID,
			CreatedAt:         now,
		}
		if err := tx.Notifications().Create(ctx, note); err != nil {
			return fmt.Errorf("notify applicant: %w", err)
		}
		return tx.AuditLogs().Create(ctx, &domain.AuditLog{
			ActorKind:  domain.AuditActorKindAdmin,
			ActorID:    adminID,
			Action:     "reject_club_application",
			ObjectType: "club_application",
			ObjectID:   app.ID,
			Details:    comment,
			CreatedAt:  now,
		})
	})
	if err != nil {
		return nil, err
	}

	logger.Info("club application rejected", "application_id", app.ID, "admin_id", adminID)
	return app, nil
}

func (s *adminService) ListPendingEvents(ctx context.Context) ([]domain.Event, error) {
	return s.store.Events().ListByStatus(ctx, domain.EventStatusPendingApproval)
}

func (s *adminService) DecideEvent(ctx context.Context, adminID, eventID int32, approve bool, comment string) (*domain.Event, error) {
	event, err := s.store.Events().GetByID(ctx, eventID)
	if err != nil {
		return nil, orNotFound(err)
	}
	if event.Status != domain.EventStatusPendingApproval {
		return nil, fmt.Errorf("%w: event has already been decided", ErrConflict)
	}

	club, err := s.store.Clubs().GetByID(ctx, event.ClubID)
	if err != nil {
		return nil, orNotFound(err)
	}

	now := s.clk.Now()
	action := "approve_event"
	verb := "approved"
	if approve {
		event.Status = domain.EventStatusApproved
	} else {
		event.Status = domain.EventStatusRejected
		action = "reject_event"
		verb = "rejected"
	}
	event.DecidedAt = &now
	event.DecidedByAdminID = &adminID
	event.AdminComment = comment

	err = s.store.WithinTx(ctx, func(tx repository.Store) error {
		if err := tx.Events().Update(ctx, event); err != nil {
			return fmt.Errorf("update event: %w", err)
		}
		note := &domain.Notification{
			AccountID:         club.ApplicantAccountID,
			Type:              domain.NotificationTypeEventStatus,
			Title:             "Event " + verb,
			Body:              fmt.Sprintf("The event %q of %q was %s.", event.Title, club.Name, verb),
			RelatedObjectType: "event",
			RelatedObjectID:   &event.ID,
			CreatedAt:         now,
		}
		if err := tx.Notifications().Create(ctx, note); err != nil {
			return fmt.Errorf("notify club: %w", err)
		}
		return tx.AuditLogs().Create(ctx, &domain.AuditLog{
			ActorKind:  domain.AuditActorKindAdmin,
			ActorID:    adminID,
			Action:     action,
			ObjectType: "event",
			ObjectID:   event.ID,
			Details:    comment,
			CreatedAt:  now,
		})
	})
	if err != nil {
		return nil, err
	}

	logger.Info("event decided", "event_id", event.ID, "admin_id", adminID, "approved", approve)
	return event, nil
}

func (s *adminService) ListClubs(ctx context.Context) ([]domain.Club, error) {
	return s.store.Clubs().List(ctx)
}

func (s *adminService) ListClubMembers(ctx context.Context, clubID int32) ([]domain.Account, error) {
	if _, err := s.store.Clubs().GetByID(ctx, clubID); err != nil {
		return nil, orNotFound(err)
	}
	memberships, err := s.store.Memberships().ListActiveByClub(ctx, clubID)
	if err != nil {
		return nil, fmt.Errorf("list memberships: %w", err)
	}

	members := make([]domain.Account, 0, len(memberships))
	for _, m := range memberships {
		account, err := s.store.Accounts().GetByID(ctx, m.AccountID)
		if err != nil {
			return nil, fmt.Errorf("load member %d: %w", m.AccountID, err)
		}
		members = append(members, *account)
	}
	return members, nil
}

func (s *adminService) ListAuditLog(ctx context.Context, page, pageSize int32) ([]domain.AuditLog, error) {
	limit, offset := listOffset(page, pageSize)
	return s.store.AuditLogs().List(ctx, limit, offset)
}

// deriveManagerEmail builds the default manager address from the club name:
// lowercased, spaces collapsed to dots, fixed domain.
func deriveManagerEmail(clubName string) string {
	local := strings.ToLower(strings.TrimSpace(clubName))
	local = strings.Join(strings.Fields(local), ".")
	return local + "@clubs.edu"
}

func generateInitialPassword() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
}
