package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"clubhub-backend/internal/domain"

	"github.com/lib/pq"
)

// IsUniqueViolation reports whether err is a postgres unique-constraint
// failure, the deterministic loser of a check-then-insert race.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

// DBTX is satisfied by both *sql.DB and *sql.Tx, so every repository can run
// inside the transactional scope a workflow transition opens.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store bundles every repository behind one handle plus the transactional
// scope workflow transitions run in. Service code depends on this interface
// so tests can substitute mocks.
type Store interface {
	Accounts() AccountRepository
	ClubManagers() ClubManagerRepository
	Clubs() ClubRepository
	ClubApplications() ClubApplicationRepository
	FounderInvitations() FounderInvitationRepository
	Memberships() MembershipRepository
	MembershipApplications() MembershipApplicationRepository
	Announcements() AnnouncementRepository
	Events() EventRepository
	EventRegistrations() EventRegistrationRepository
	Notifications() NotificationRepository
	AuditLogs() AuditLogRepository

	// WithinTx runs fn against a Store bound to a single transaction. A nil
	// error commits; any error rolls the whole unit back.
	WithinTx(ctx context.Context, fn func(tx Store) error) error
}

type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id int32) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	ExistsByEmailOrUniversityID(ctx context.Context, email, universityID string) (bool, error)
}

type ClubManagerRepository interface {
	Create(ctx context.Context, manager *domain.ClubManager) error
	GetByID(ctx context.Context, id int32) (*domain.ClubManager, error)
	GetByEmail(ctx context.Context, email string) (*domain.ClubManager, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type ClubRepository interface {
	Create(ctx context.Context, club *domain.Club) error
	GetByID(ctx context.Context, id int32) (*domain.Club, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	ListApproved(ctx context.Context, search string, limit, offset int32) ([]domain.Club, int32, error)
	List(ctx context.Context) ([]domain.Club, error)
	Update(ctx context.Context, club *domain.Club) error
}

type ClubApplicationRepository interface {
	Create(ctx context.Context, app *domain.ClubApplication) error
	GetByID(ctx context.Context, id int32) (*domain.ClubApplication, error)
	Update(ctx context.Context, app *domain.ClubApplication) error
	GetPendingByApplicant(ctx context.Context, accountID int32) (*domain.ClubApplication, error)
	ListByApplicant(ctx context.Context, accountID int32) ([]domain.ClubApplication, error)
	ListByStatus(ctx context.Context, status domain.ClubApplicationStatus) ([]domain.ClubApplication, error)
}

type FounderInvitationRepository interface {
	Create(ctx context.Context, invite *domain.FounderInvitation) error
	GetByID(ctx context.Context, id int32) (*domain.FounderInvitation, error)
	GetByApplicationAndAccount(ctx context.Context, applicationID, accountID int32) (*domain.FounderInvitation, error)
	Update(ctx context.Context, invite *domain.FounderInvitation) error
	Delete(ctx context.Context, id int32) error
	ListByApplication(ctx context.Context, applicationID int32) ([]domain.FounderInvitation, error)
	ListByAccount(ctx context.Context, accountID int32) ([]domain.FounderInvitation, error)
}

type MembershipRepository interface {
	Create(ctx context.Context, membership *domain.Membership) error
	Get(ctx context.Context, clubID, accountID int32) (*domain.Membership, error)
	SetActive(ctx context.Context, id int32, active bool) error
	ListActiveByClub(ctx context.Context, clubID int32) ([]domain.Membership, error)
	ListActiveByAccount(ctx context.Context, accountID int32) ([]domain.Membership, error)
}

type MembershipApplicationRepository interface {
	Create(ctx context.Context, app *domain.MembershipApplication) error
	GetByID(ctx context.Context, id int32) (*domain.MembershipApplication, error)
	Update(ctx context.Context, app *domain.MembershipApplication) error
	GetOpenByClubAndAccount(ctx context.Context, clubID, accountID int32) (*domain.MembershipApplication, error)
	ListPendingByClub(ctx context.Context, clubID int32) ([]domain.MembershipApplication, error)
	ListDecidedByClub(ctx context.Context, clubID int32) ([]domain.MembershipApplication, error)
	ListByAccount(ctx context.Context, accountID int32) ([]domain.MembershipApplication, error)
}

type AnnouncementRepository interface {
	Create(ctx context.Context, announcement *domain.Announcement) error
	ListByClub(ctx context.Context, clubID int32) ([]domain.Announcement, error)
}

type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
	GetByID(ctx context.Context, id int32) (*domain.Event, error)
	// GetByIDForUpdate locks the event row for the remainder of the enclosing
	// transaction; registration uses it to serialize the capacity check.
	GetByIDForUpdate(ctx context.Context, id int32) (*domain.Event, error)
	Update(ctx context.Context, event *domain.Event) error
	ListApproved(ctx context.Context, clubID, limit, offset int32) ([]domain.Event, int32, error)
	ListByClub(ctx context.Context, clubID int32) ([]domain.Event, error)
	ListByStatus(ctx context.Context, status domain.EventStatus) ([]domain.Event, error)
	ListApprovedStartingBetween(ctx context.Context, from, to time.Time) ([]domain.Event, error)
}

type EventRegistrationRepository interface {
	Create(ctx context.Context, reg *domain.EventRegistration) error
	Update(ctx context.Context, reg *domain.EventRegistration) error
	Get(ctx context.Context, eventID, accountID int32) (*domain.EventRegistration, error)
	CountRegistered(ctx context.Context, eventID int32) (int32, error)
	ListByEvent(ctx context.Context, eventID int32) ([]domain.EventRegistration, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	List(ctx context.Context, accountID int32, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id, accountID int32) error
	// ExistsForObject reports whether the account already holds a notification
	// of the given type about the given object, so periodic jobs stay
	// idempotent across overlapping runs.
	ExistsForObject(ctx context.Context, accountID int32, typ domain.NotificationType, objectType string, objectID int32) (bool, error)
}

type AuditLogRepository interface {
	Create(ctx context.Context, entry *domain.AuditLog) error
	List(ctx context.Context, limit, offset int32) ([]domain.AuditLog, error)
}
