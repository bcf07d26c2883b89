package service

import (
	"context"

	"clubhub-backend/internal/domain"
)

type AuthService interface {
	RegisterStudent(ctx context.Context, name, surname, universityID, email, password string) (*domain.Account, error)
	// LoginAccount checks the throttle before touching the credential store;
	// only failed credential checks are recorded against origin.
	LoginAccount(ctx context.Context, origin, email, password string) (*domain.Account, string, error)
	LoginManager(ctx context.Context, origin, email, password string) (*domain.ClubManager, string, error)
}

type ClubService interface {
	ListApproved(ctx context.Context, search string, page, pageSize int32) ([]domain.Club, int32, error)
	GetApproved(ctx context.Context, clubID int32) (*domain.Club, error)
	GetManaged(ctx context.Context, managerID int32) (*domain.Club, error)
	UpdateManaged(ctx context.Context, managerID int32, description, category, contactEmail string) (*domain.Club, error)
}

type ClubApplicationService interface {
	Submit(ctx context.Context, accountID int32, name, description, category, note string) (*domain.ClubApplication, error)
	Get(ctx context.Context, accountID, applicationID int32) (*domain.ClubApplication, []domain.FounderInvitation, error)
	ListOwn(ctx context.Context, accountID int32) ([]domain.ClubApplication, error)
	InviteFounder(ctx context.Context, accountID, applicationID int32, inviteeEmail string) (*domain.FounderInvitation, error)
	RemoveInvitation(ctx context.Context, accountID, invitationID int32) error
	RespondToInvitation(ctx context.Context, accountID, invitationID int32, accept bool) (*domain.FounderInvitation, error)
	ListOwnInvitations(ctx context.Context, accountID int32) ([]domain.FounderInvitation, error)
}

type MembershipService interface {
	Apply(ctx context.Context, accountID, clubID int32, message string) (*domain.MembershipApplication, error)
	Decide(ctx context.Context, managerID, applicationID int32, approve bool, reason string) (*domain.MembershipApplication, error)
	ListPending(ctx context.Context, managerID int32) ([]domain.MembershipApplication, error)
	ListDecided(ctx context.Context, managerID int32) ([]domain.MembershipApplication, error)
	ListOwnApplications(ctx context.Context, accountID int32) ([]domain.MembershipApplication, error)
	ListOwnMemberships(ctx context.Context, accountID int32) ([]domain.Membership, error)
}

type EventService interface {
	Propose(ctx context.Context, managerID int32, event *domain.Event) (*domain.Event, error)
	ListManaged(ctx context.Context, managerID int32) ([]domain.Event, error)
	ListApproved(ctx context.Context, clubID, page, pageSize int32) ([]domain.Event, int32, error)
	GetApproved(ctx context.Context, accountID, eventID int32) (*domain.Event, *domain.EventRegistration, error)
	Register(ctx context.Context, accountID, eventID int32) (*domain.EventRegistration, error)
	CancelRegistration(ctx context.Context, accountID, eventID int32) error
	ListRegistrations(ctx context.Context, managerID, eventID int32) ([]domain.EventRegistration, error)
}

type AnnouncementService interface {
	Create(ctx context.Context, managerID int32, title, body string) (*domain.Announcement, error)
	ListManaged(ctx context.Context, managerID int32) ([]domain.Announcement, error)
	ListForClub(ctx context.Context, clubID int32) ([]domain.Announcement, error)
}

type NotificationService interface {
	List(ctx context.Context, accountID, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, accountID, notificationID int32) error
}

type AdminService interface {
	ListPendingClubApplications(ctx context.Context) ([]domain.ClubApplication, error)
	DecideClubApplication(ctx context.Context, adminID, applicationID int32, approve bool, comment, managerEmail, managerPassword string) (*domain.ClubApplication, error)
	ListPendingEvents(ctx context.Context) ([]domain.Event, error)
	DecideEvent(ctx context.Context, adminID, eventID int32, approve bool, comment string) (*domain.Event, error)
	ListClubs(ctx context.Context) ([]domain.Club, error)
	ListClubMembers(ctx context.Context, clubID int32) ([]domain.Account, error)
	ListAuditLog(ctx context.Context, page, pageSize int32) ([]domain.AuditLog, error)
}

type EmailService interface {
	SendManagerWelcome(ctx context.Context, toEmail, clubName string) error
	SendFounderInvite(ctx context.Context, toEmail, clubName, inviterName string) error
}

// listOffset clamps paging inputs the same way everywhere.
func listOffset(page, pageSize int32) (limit, offset int32) {
	if pageSize <= 0 {
		pageSize = 10
	}
	if page <= 0 {
		page = 1
	}
	return pageSize, (page - 1) * pageSize
}
