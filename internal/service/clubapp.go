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

type clubApplicationService struct {
	store repository.Store
	email EmailService
	clk   clock.Clock
}

func NewClubApplicationService(store repository.Store, email EmailService, clk clock.Clock) ClubApplicationService {
	return &clubApplicationService{store: store, email: email, clk: clk}
}

func (s *clubApplicationService) Submit(ctx context.Context, accountID int32, name, description, category, note string) (*domain.ClubApplication, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: proposed club name is required", ErrInvalid)
	}

	// One open application per applicant at a time.
	if _, err := s.store.ClubApplications().GetPendingByApplicant(ctx, accountID); err == nil {
		return nil, fmt.Errorf("%w: a pending club application already exists", ErrConflict)
	} else if !isNoRows(err) {
		return nil, fmt.Errorf("check pending application: %w", err)
	}

	app := &domain.ClubApplication{
		ApplicantAccountID:  accountID,
		ProposedName:        name,
		ProposedDescription: description,
		ProposedCategory:    category,
		FoundersNote:        note,
		Status:              domain.ClubApplicationStatusPending,
		CreatedAt:           s.clk.Now(),
	}
	if err := s.store.ClubApplications().Create(ctx, app); err != nil {
		return nil, fmt.Errorf("create club application: %w", err)
	}

	logger.Info("club application submitted", "application_id", app.ID, "account_id", accountID)
	return app, nil
}

func (s *clubApplicationService) Get(ctx context.Context, accountID, applicationID int32) (*domain.ClubApplication, []domain.FounderInvitation, error) {
	app, err := s.ownedApplication(ctx, accountID, applicationID)
	if err != nil {
		return nil, nil, err
	}
	invites, err := s.store.FounderInvitations().ListByApplication(ctx, app.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("list founder invitations: %w", err)
	}
	return app, invites, nil
}

func (s *clubApplicationService) ListOwn(ctx context.Context, accountID int32) ([]domain.ClubApplication, error) {
	return s.store.ClubApplications().ListByApplicant(ctx, accountID)
}

func (s *clubApplicationService) InviteFounder(ctx context.Context, accountID, applicationID int32, inviteeEmail string) (*domain.FounderInvitation, error) {
	app, err := s.ownedApplication(ctx, accountID, applicationID)
	if err != nil {
		return nil, err
	}
	if app.Status != domain.ClubApplicationStatusPending {
		return nil, fmt.Errorf("%w: founders can only change while the application is pending", ErrForbidden)
	}

	invitee, err := s.store.Accounts().GetByEmail(ctx, strings.ToLower(strings.TrimSpace(inviteeEmail)))
	if err != nil {
		if isNoRows(err) {
			return nil, fmt.Errorf("%w: no student account with that email", ErrNotFound)
		}
		return nil, fmt.Errorf("look up invitee: %w", err)
	}
	if invitee.Role != domain.AccountRoleStudent || !invitee.IsActive {
		return nil, fmt.Errorf("%w: no student account with that email", ErrNotFound)
	}
	if invitee.ID == accountID {
		return nil, fmt.Errorf("%w: the applicant is already a founder", ErrConflict)
	}

	if _, err := s.store.FounderInvitations().GetByApplicationAndAccount(ctx, app.ID, invitee.ID); err == nil {
		return nil, fmt.Errorf("%w: this student is already invited", ErrConflict)
	} else if !isNoRows(err) {
		return nil, fmt.Errorf("check existing invitation: %w", err)
	}

	applicant, err := s.store.Accounts().GetByID(ctx, accountID)
	if err != nil {
		return nil, orNotFound(err)
	}

	invite := &domain.FounderInvitation{
		ApplicationID:    app.ID,
		InvitedAccountID: invitee.ID,
		Status:           domain.InvitationStatusInvited,
	}
	err = s.store.WithinTx(ctx, func(tx repository.Store) error {
		if err := tx.FounderInvitations().Create(ctx, invite); err != nil {
			if repository.IsUniqueViolation(err) {
				return fmt.Errorf("%w: this student is already invited", ErrConflict)
			}
			return fmt.Errorf("create invitation: %w", err)
		}
		note := &domain.Notification{
			AccountID:         invitee.ID,
			Type:              domain.NotificationTypeFounderInvite,
			Title:             "Founder invitation",
			Body:              fmt.Sprintf("%s %s invited you as a founder of %q.", applicant.Name, applicant.Surname, app.ProposedName),
			RelatedObjectType: "founder_invitation",
			RelatedObjectID:   &invite.ID,
			CreatedAt:         s.clk.Now(),
		}
		return tx.Notifications().Create(ctx, note)
	})
	if err != nil {
		return nil, err
	}

	// Mail mirror is best effort and never blocks the workflow.
	if err := s.email.SendFounderInvite(ctx, invitee.Email, app.ProposedName, applicant.Name+" "+applicant.Surname); err != nil {
		logger.Warn("founder invite email failed", "invitation_id", invite.ID, "error", err)
	}
	return invite, nil
}

func (s *clubApplicationService) RemoveInvitation(ctx context.Context, accountID, invitationID int32) error {
	invite, err := s.store.FounderInvitations().GetByID(ctx, invitationID)
	if err != nil {
		return orNotFound(err)
	}
	app, err := s.ownedApplication(ctx, accountID, invite.ApplicationID)
	if err != nil {
		return err
	}
	if app.Status != domain.ClubApplicationStatusPending {
		return fmt.Errorf("%w: founders can only change while the application is pending", ErrForbidden)
	}
	return s.store.FounderInvitations().Delete(ctx, invitationID)
}

func (s *clubApplicationService) RespondToInvitation(ctx context.Context, accountID, invitationID int32, accept bool) (*domain.FounderInvitation, error) {
	invite, err := s.store.FounderInvitations().GetByID(ctx, invitationID)
	if err != nil {
		return nil, orNotFound(err)
	}
	if invite.InvitedAccountID != accountID {
		return nil, ErrNotFound
	}
	if invite.Status != domain.InvitationStatusInvited {
		return nil, fmt.Errorf("%w: invitation has already been answered", ErrConflict)
	}

	app, err := s.store.ClubApplications().GetByID(ctx, invite.ApplicationID)
	if err != nil {
		return nil, orNotFound(err)
	}
	invitee, err := s.store.Accounts().GetByID(ctx, accountID)
	if err != nil {
		return nil, orNotFound(err)
	}

	now := s.clk.Now()
	if accept {
		invite.Status = domain.InvitationStatusAccepted
	} else {
		invite.Status = domain.InvitationStatusRejected
	}
	invite.RespondedAt = &now

	verb := "accepted"
	if !accept {
		verb = "rejected"
	}
	err = s.store.WithinTx(ctx, func(tx repository.Store) error {
		if err := tx.FounderInvitations().Update(ctx, invite); err != nil {
			return fmt.Errorf("update invitation: %w", err)
		}
		note := &domain.Notification{
			AccountID:         app.ApplicantAccountID,
			Type:              domain.NotificationTypeFounderResponse,
			Title:             "Founder invitation " + verb,
			Body:              fmt.Sprintf("%s %s %s the founder invitation for %q.", invitee.Name, invitee.Surname, verb, app.ProposedName),
			RelatedObjectType: "founder_invitation",
			RelatedObjectID:   &invite.ID,
			CreatedAt:         now,
		}
		return tx.Notifications().Create(ctx, note)
	})
	if err != nil {
		return nil, err
	}
	return invite, nil
}

func (s *clubApplicationService) ListOwnInvitations(ctx context.Context, accountID int32) ([]domain.FounderInvitation, error) {
	return s.store.FounderInvitations().ListByAccount(ctx, accountID)
}

func (s *clubApplicationService) ownedApplication(ctx context.Context, accountID, applicationID int32) (*domain.ClubApplication, error) {
	app, err := s.store.ClubApplications().GetByID(ctx, applicationID)
	if err != nil {
		return nil, orNotFound(err)
	}
	if app.ApplicantAccountID != accountID {
		return nil, ErrNotFound
	}
	return app, nil
}
