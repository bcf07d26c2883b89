package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"clubhub-backend/internal/repository"
)

// Store aggregates every repository over a shared query target. NewStore binds
// to the *sql.DB; WithinTx rebinds all repositories to a single transaction so
// multi-entity transitions commit or roll back together.
type Store struct {
	db *sql.DB

	accounts               repository.AccountRepository
	clubManagers           repository.ClubManagerRepository
	clubs                  repository.ClubRepository
	clubApplications       repository.ClubApplicationRepository
	founderInvitations     repository.FounderInvitationRepository
	memberships            repository.MembershipRepository
	membershipApplications repository.MembershipApplicationRepository
	announcements          repository.AnnouncementRepository
	events                 repository.EventRepository
	eventRegistrations     repository.EventRegistrationRepository
	notifications          repository.NotificationRepository
	auditLogs              repository.AuditLogRepository
}

func NewStore(db *sql.DB) *Store {
	return bind(db, db)
}

func bind(db *sql.DB, q repository.DBTX) *Store {
	return &Store{
		db:                     db,
		accounts:               NewAccountRepository(q),
		clubManagers:           NewClubManagerRepository(q),
		clubs:                  NewClubRepository(q),
		clubApplications:       NewClubApplicationRepository(q),
		founderInvitations:     NewFounderInvitationRepository(q),
		memberships:            NewMembershipRepository(q),
		membershipApplications: NewMembershipApplicationRepository(q),
		announcements:          NewAnnouncementRepository(q),
		events:                 NewEventRepository(q),
		eventRegistrations:     NewEventRegistrationRepository(q),
		notifications:          NewNotificationRepository(q),
		auditLogs:              NewAuditLogRepository(q),
	}
}

func (s *Store) Accounts() repository.AccountRepository             { return s.accounts }
func (s *Store) ClubManagers() repository.ClubManagerRepository     { return s.clubManagers }
func (s *Store) Clubs() repository.ClubRepository                   { return s.clubs }
func (s *Store) ClubApplications() repository.ClubApplicationRepository {
	return s.clubApplications
}
func (s *Store) FounderInvitations() repository.FounderInvitationRepository {
	return s.founderInvitations
}
func (s *Store) Memberships() repository.MembershipRepository { return s.memberships }
func (s *Store) MembershipApplications() repository.MembershipApplicationRepository {
	return s.membershipApplications
}
func (s *Store) Announcements() repository.AnnouncementRepository { return s.announcements }
func (s *Store) Events() repository.EventRepository               { return s.events }
func (s *Store) EventRegistrations() repository.EventRegistrationRepository {
	return s.eventRegistrations
}
func (s *Store) Notifications() repository.NotificationRepository { return s.notifications }
func (s *Store) AuditLogs() repository.AuditLogRepository         { return s.auditLogs }

// WithinTx runs fn against a Store bound to one transaction. A nil error
// commits; any error rolls the whole unit back.
func (s *Store) WithinTx(ctx context.Context, fn func(tx repository.Store) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(bind(s.db, tx)); err != nil {
		// The callback error stays the %w operand so sentinel matching
		// survives a failed rollback.
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return err
	}
	return tx.Commit()
}
