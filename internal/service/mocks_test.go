package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/repository"
	"clubhub-backend/internal/security"
)

// mockStore wires the repository mocks behind the Store interface. WithinTx
// runs the callback against the same store, so expectations set on the mocks
// cover transactional calls too.
type mockStore struct {
	accounts               *MockAccountRepo
	clubManagers           *MockClubManagerRepo
	clubs                  *MockClubRepo
	clubApplications       *MockClubApplicationRepo
	founderInvitations     *MockFounderInvitationRepo
	memberships            *MockMembershipRepo
	membershipApplications *MockMembershipApplicationRepo
	announcements          *MockAnnouncementRepo
	events                 *MockEventRepo
	eventRegistrations     *MockEventRegistrationRepo
	notifications          *MockNotificationRepo
	auditLogs              *MockAuditLogRepo
}

func newMockStore() *mockStore {
	return &mockStore{
		accounts:               new(MockAccountRepo),
		clubManagers:           new(MockClubManagerRepo),
		clubs:                  new(MockClubRepo),
		clubApplications:       new(MockClubApplicationRepo),
		founderInvitations:     new(MockFounderInvitationRepo),
		memberships:            new(MockMembershipRepo),
		membershipApplications: new(MockMembershipApplicationRepo),
		announcements:          new(MockAnnouncementRepo),
		events:                 new(MockEventRepo),
		eventRegistrations:     new(MockEventRegistrationRepo),
		notifications:          new(MockNotificationRepo),
		auditLogs:              new(MockAuditLogRepo),
	}
}

func (s *mockStore) Accounts() repository.AccountRepository         { return s.accounts }
func (s *mockStore) ClubManagers() repository.ClubManagerRepository { return s.clubManagers }
func (s *mockStore) Clubs() repository.ClubRepository               { return s.clubs }
func (s *mockStore) ClubApplications() repository.ClubApplicationRepository {
	return s.clubApplications
}
func (s *mockStore) FounderInvitations() repository.FounderInvitationRepository {
	return s.founderInvitations
}
func (s *mockStore) Memberships() repository.MembershipRepository { return s.memberships }
func (s *mockStore) MembershipApplications() repository.MembershipApplicationRepository {
	return s.membershipApplications
}
func (s *mockStore) Announcements() repository.AnnouncementRepository { return s.announcements }
func (s *mockStore) Events() repository.EventRepository               { return s.events }
func (s *mockStore) EventRegistrations() repository.EventRegistrationRepository {
	return s.eventRegistrations
}
func (s *mockStore) Notifications() repository.NotificationRepository { return s.notifications }
func (s *mockStore) AuditLogs() repository.AuditLogRepository         { return s.auditLogs }

func (s *mockStore) WithinTx(ctx context.Context, fn func(tx repository.Store) error) error {
	return fn(s)
}

func (s *mockStore) AssertExpectations(t mock.TestingT) {
	s.accounts.AssertExpectations(t)
	s.clubManagers.AssertExpectations(t)
	s.clubs.AssertExpectations(t)
	s.clubApplications.AssertExpectations(t)
	s.founderInvitations.AssertExpectations(t)
	s.memberships.AssertExpectations(t)
	s.membershipApplications.AssertExpectations(t)
	s.announcements.AssertExpectations(t)
	s.events.AssertExpectations(t)
	s.eventRegistrations.AssertExpectations(t)
	s.notifications.AssertExpectations(t)
	s.auditLogs.AssertExpectations(t)
}

// MockAccountRepo
type MockAccountRepo struct {
	mock.Mock
}

func (m *MockAccountRepo) Create(ctx context.Context, account *domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}
func (m *MockAccountRepo) GetByID(ctx context.Context, id int32) (*domain.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountRepo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountRepo) ExistsByEmailOrUniversityID(ctx context.Context, email, universityID string) (bool, error) {
	args := m.Called(ctx, email, universityID)
	return args.Bool(0), args.Error(1)
}

// MockClubManagerRepo
type MockClubManagerRepo struct {
	mock.Mock
}

func (m *MockClubManagerRepo) Create(ctx context.Context, manager *domain.ClubManager) error {
	args := m.Called(ctx, manager)
	return args.Error(0)
}
func (m *MockClubManagerRepo) GetByID(ctx context.Context, id int32) (*domain.ClubManager, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClubManager), args.Error(1)
}
func (m *MockClubManagerRepo) GetByEmail(ctx context.Context, email string) (*domain.ClubManager, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClubManager), args.Error(1)
}
func (m *MockClubManagerRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

// MockClubRepo
type MockClubRepo struct {
	mock.Mock
}

func (m *MockClubRepo) Create(ctx context.Context, club *domain.Club) error {
	args := m.Called(ctx, club)
	return args.Error(0)
}
func (m *MockClubRepo) GetByID(ctx context.Context, id int32) (*domain.Club, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Club), args.Error(1)
}
func (m *MockClubRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}
func (m *MockClubRepo) ListApproved(ctx context.Context, search string, limit, offset int32) ([]domain.Club, int32, error) {
	args := m.Called(ctx, search, limit, offset)
	return args.Get(0).([]domain.Club), args.Get(1).(int32), args.Error(2)
}
func (m *MockClubRepo) List(ctx context.Context) ([]domain.Club, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Club), args.Error(1)
}
func (m *MockClubRepo) Update(ctx context.Context, club *domain.Club) error {
	args := m.Called(ctx, club)
	return args.Error(0)
}

// MockClubApplicationRepo
type MockClubApplicationRepo struct {
	mock.Mock
}

func (m *MockClubApplicationRepo) Create(ctx context.Context, app *domain.ClubApplication) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}
func (m *MockClubApplicationRepo) GetByID(ctx context.Context, id int32) (*domain.ClubApplication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClubApplication), args.Error(1)
}
func (m *MockClubApplicationRepo) Update(ctx context.Context, app *domain.ClubApplication) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}
func (m *MockClubApplicationRepo) GetPendingByApplicant(ctx context.Context, accountID int32) (*domain.ClubApplication, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClubApplication), args.Error(1)
}
func (m *MockClubApplicationRepo) ListByApplicant(ctx context.Context, accountID int32) ([]domain.ClubApplication, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).([]domain.ClubApplication), args.Error(1)
}
func (m *MockClubApplicationRepo) ListByStatus(ctx context.Context, status domain.ClubApplicationStatus) ([]domain.ClubApplication, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.ClubApplication), args.Error(1)
}

// MockFounderInvitationRepo
type MockFounderInvitationRepo struct {
	mock.Mock
}

func (m *MockFounderInvitationRepo) Create(ctx context.Context, invite *domain.FounderInvitation) error {
	args := m.Called(ctx, invite)
	return args.Error(0)
}
func (m *MockFounderInvitationRepo) GetByID(ctx context.Context, id int32) (*domain.FounderInvitation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FounderInvitation), args.Error(1)
}
func (m *MockFounderInvitationRepo) GetByApplicationAndAccount(ctx context.Context, applicationID, accountID int32) (*domain.FounderInvitation, error) {
	args := m.Called(ctx, applicationID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FounderInvitation), args.Error(1)
}
func (m *MockFounderInvitationRepo) Update(ctx context.Context, invite *domain.FounderInvitation) error {
	args := m.Called(ctx, invite)
	return args.Error(0)
}
func (m *MockFounderInvitationRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockFounderInvitationRepo) ListByApplication(ctx context.Context, applicationID int32) ([]domain.FounderInvitation, error) {
	args := m.Called(ctx, applicationID)
	return args.Get(0).([]domain.FounderInvitation), args.Error(1)
}
func (m *MockFounderInvitationRepo) ListByAccount(ctx context.Context, accountID int32) ([]domain.FounderInvitation, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).([]domain.FounderInvitation), args.Error(1)
}

// MockMembershipRepo
type MockMembershipRepo struct {
	mock.Mock
}

func (m *MockMembershipRepo) Create(ctx context.Context, membership *domain.Membership) error {
	args := m.Called(ctx, membership)
	return args.Error(0)
}
func (m *MockMembershipRepo) Get(ctx context.Context, clubID, accountID int32) (*domain.Membership, error) {
	args := m.Called(ctx, clubID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Membership), args.Error(1)
}
func (m *MockMembershipRepo) SetActive(ctx context.Context, id int32, active bool) error {
	args := m.Called(ctx, id, active)
	return args.Error(0)
}
func (m *MockMembershipRepo) ListActiveByClub(ctx context.Context, clubID int32) ([]domain.Membership, error) {
	args := m.Called(ctx, clubID)
	return args.Get(0).([]domain.Membership), args.Error(1)
}
func (m *MockMembershipRepo) ListActiveByAccount(ctx context.Context, accountID int32) ([]domain.Membership, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).([]domain.Membership), args.Error(1)
}

// MockMembershipApplicationRepo
type MockMembershipApplicationRepo struct {
	mock.Mock
}

func (m *MockMembershipApplicationRepo) Create(ctx context.Context, app *domain.MembershipApplication) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}
func (m *MockMembershipApplicationRepo) GetByID(ctx context.Context, id int32) (*domain.MembershipApplication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MembershipApplication), args.Error(1)
}
func (m *MockMembershipApplicationRepo) Update(ctx context.Context, app *domain.MembershipApplication) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}
func (m *MockMembershipApplicationRepo) GetOpenByClubAndAccount(ctx context.Context, clubID, accountID int32) (*domain.MembershipApplication, error) {
	args := m.Called(ctx, clubID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MembershipApplication), args.Error(1)
}
func (m *MockMembershipApplicationRepo) ListPendingByClub(ctx context.Context, clubID int32) ([]domain.MembershipApplication, error) {
	args := m.Called(ctx, clubID)
	return args.Get(0).([]domain.MembershipApplication), args.Error(1)
}
func (m *MockMembershipApplicationRepo) ListDecidedByClub(ctx context.Context, clubID int32) ([]domain.MembershipApplication, error) {
	args := m.Called(ctx, clubID)
	return args.Get(0).([]domain.MembershipApplication), args.Error(1)
}
func (m *MockMembershipApplicationRepo) ListByAccount(ctx context.Context, accountID int32) ([]domain.MembershipApplication, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).([]domain.MembershipApplication), args.Error(1)
}

// MockAnnouncementRepo
type MockAnnouncementRepo struct {
	mock.Mock
}

func (m *MockAnnouncementRepo) Create(ctx context.Context, announcement *domain.Announcement) error {
	args := m.Called(ctx, announcement)
	return args.Error(0)
}
func (m *MockAnnouncementRepo) ListByClub(ctx context.Context, clubID int32) ([]domain.Announcement, error) {
	args := m.Called(ctx, clubID)
	return args.Get(0).([]domain.Announcement), args.Error(1)
}

// MockEventRepo
type MockEventRepo struct {
	mock.Mock
}

func (m *MockEventRepo) Create(ctx context.Context, event *domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
func (m *MockEventRepo) GetByID(ctx context.Context, id int32) (*domain.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}
func (m *MockEventRepo) GetByIDForUpdate(ctx context.Context, id int32) (*domain.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}
func (m *MockEventRepo) Update(ctx context.Context, event *domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
func (m *MockEventRepo) ListApproved(ctx context.Context, clubID, limit, offset int32) ([]domain.Event, int32, error) {
	args := m.Called(ctx, clubID, limit, offset)
	return args.Get(0).([]domain.Event), args.Get(1).(int32), args.Error(2)
}
func (m *MockEventRepo) ListByClub(ctx context.Context, clubID int32) ([]domain.Event, error) {
	args := m.Called(ctx, clubID)
	return args.Get(0).([]domain.Event), args.Error(1)
}
func (m *MockEventRepo) ListByStatus(ctx context.Context, status domain.EventStatus) ([]domain.Event, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.Event), args.Error(1)
}
func (m *MockEventRepo) ListApprovedStartingBetween(ctx context.Context, from, to time.Time) ([]domain.Event, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]domain.Event), args.Error(1)
}

// MockEventRegistrationRepo
type MockEventRegistrationRepo struct {
	mock.Mock
}

func (m *MockEventRegistrationRepo) Create(ctx context.Context, reg *domain.EventRegistration) error {
	args := m.Called(ctx, reg)
	return args.Error(0)
}
func (m *MockEventRegistrationRepo) Update(ctx context.Context, reg *domain.EventRegistration) error {
	args := m.Called(ctx, reg)
	return args.Error(0)
}
func (m *MockEventRegistrationRepo) Get(ctx context.Context, eventID, accountID int32) (*domain.EventRegistration, error) {
	args := m.Called(ctx, eventID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EventRegistration), args.Error(1)
}
func (m *MockEventRegistrationRepo) CountRegistered(ctx context.Context, eventID int32) (int32, error) {
	args := m.Called(ctx, eventID)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockEventRegistrationRepo) ListByEvent(ctx context.Context, eventID int32) ([]domain.EventRegistration, error) {
	args := m.Called(ctx, eventID)
	return args.Get(0).([]domain.EventRegistration), args.Error(1)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, note *domain.Notification) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}
func (m *MockNotificationRepo) List(ctx context.Context, accountID int32, limit, offset int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, accountID, limit, offset)
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}
func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id, accountID int32) error {
	args := m.Called(ctx, id, accountID)
	return args.Error(0)
}
func (m *MockNotificationRepo) ExistsForObject(ctx context.Context, accountID int32, typ domain.NotificationType, objectType string, objectID int32) (bool, error) {
	args := m.Called(ctx, accountID, typ, objectType, objectID)
	return args.Bool(0), args.Error(1)
}

// MockAuditLogRepo
type MockAuditLogRepo struct {
	mock.Mock
}

func (m *MockAuditLogRepo) Create(ctx context.Context, entry *domain.AuditLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
func (m *MockAuditLogRepo) List(ctx context.Context, limit, offset int32) ([]domain.AuditLog, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]domain.AuditLog), args.Error(1)
}

// MockPasswordHasher
type MockPasswordHasher struct {
	mock.Mock
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}
func (m *MockPasswordHasher) Verify(hash, password string) bool {
	args := m.Called(hash, password)
	return args.Bool(0)
}

// MockSessionManager
type MockSessionManager struct {
	mock.Mock
}

func (m *MockSessionManager) Issue(kind security.PrincipalKind, id int32) (string, error) {
	args := m.Called(kind, id)
	return args.String(0), args.Error(1)
}
func (m *MockSessionManager) Resolve(token string) (security.PrincipalKind, int32, error) {
	args := m.Called(token)
	return args.Get(0).(security.PrincipalKind), args.Get(1).(int32), args.Error(2)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendManagerWelcome(ctx context.Context, toEmail, clubName string) error {
	args := m.Called(ctx, toEmail, clubName)
	return args.Error(0)
}
func (m *MockEmailService) SendFounderInvite(ctx context.Context, toEmail, clubName, inviterName string) error {
	args := m.Called(ctx, toEmail, clubName, inviterName)
	return args.Error(0)
}
