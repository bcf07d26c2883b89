package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"clubhub-backend/internal/clock"
	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/repository"
)

func newEventFixture() (*mockStore, *clock.Fixed, EventService) {
	store := newMockStore()
	clk := &clock.Fixed{Time: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	svc := NewEventService(store, clk)
	return store, clk, svc
}

func approvedEvent(clk *clock.Fixed) *domain.Event {
	capacity := int32(2)
	deadline := clk.Time.Add(24 * time.Hour)
	return &domain.Event{
		ID:                   20,
		ClubID:               77,
		Title:                "Open Tournament",
		StartAt:              clk.Time.Add(48 * time.Hour),
		EndAt:                clk.Time.Add(50 * time.Hour),
		Capacity:             &capacity,
		RegistrationDeadline: &deadline,
		Status:               domain.EventStatusApproved,
	}
}

func TestPropose_Validation(t *testing.T) {
	store, clk, svc := newEventFixture()
	ctx := context.Background()

	manager := &domain.ClubManager{ID: 2, ClubID: 77}
	store.clubManagers.On("GetByID", ctx, int32(2)).Return(manager, nil)

	t.Run("EndBeforeStart", func(t *testing.T) {
		event := &domain.Event{Title: "Broken", StartAt: clk.Time.Add(2 * time.Hour), EndAt: clk.Time.Add(time.Hour)}
		_, err := svc.Propose(ctx, 2, event)
		assert.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("DeadlineAfterStart", func(t *testing.T) {
		deadline := clk.Time.Add(3 * time.Hour)
		event := &domain.Event{Title: "Broken", StartAt: clk.Time.Add(2 * time.Hour), EndAt: clk.Time.Add(4 * time.Hour), RegistrationDeadline: &deadline}
		_, err := svc.Propose(ctx, 2, event)
		assert.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("Valid", func(t *testing.T) {
		event := &domain.Event{Title: "Tournament", StartAt: clk.Time.Add(2 * time.Hour), EndAt: clk.Time.Add(4 * time.Hour)}
		store.events.On("Create", ctx, mock.MatchedBy(func(e *domain.Event) bool {
			return e.Status == domain.EventStatusPendingApproval && e.ClubID == 77 && e.CreatedByManagerID == 2
		})).Return(nil)

		created, err := svc.Propose(ctx, 2, event)
		require.NoError(t, err)
		assert.Equal(t, domain.EventStatusPendingApproval, created.Status)
	})
}

func TestRegister_Success(t *testing.T) {
	store, clk, svc := newEventFixture()
	ctx := context.Background()

	store.events.On("GetByIDForUpdate", ctx, int32(20)).Return(approvedEvent(clk), nil)
	store.eventRegistrations.On("CountRegistered", ctx, int32(20)).Return(int32(1), nil)
	store.eventRegistrations.On("Get", ctx, int32(20), int32(5)).Return(nil, sql.ErrNoRows)
	store.eventRegistrations.On("Create", ctx, mock.MatchedBy(func(r *domain.EventRegistration) bool {
		return r.EventID == 20 && r.AccountID == 5 && r.Status == domain.EventRegistrationStatusRegistered
	})).Return(nil)

	reg, err := svc.Register(ctx, 5, 20)
	require.NoError(t, err)
	assert.Equal(t, domain.EventRegistrationStatusRegistered, reg.Status)
}

func TestRegister_NotApprovedIsNotFound(t *testing.T) {
	store, clk, svc := newEventFixture()
	ctx := context.Background()

	event := approvedEvent(clk)
	event.Status = domain.EventStatusPendingApproval
	store.events.On("GetByIDForUpdate", ctx, int32(20)).Return(event, nil)

	_, err := svc.Register(ctx, 5, 20)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRegister_DeadlinePassed(t *testing.T) {
	store, clk, svc := newEventFixture()
	ctx := context.Background()

	store.events.On("GetByIDForUpdate", ctx, int32(20)).Return(approvedEvent(clk), nil)
	clk.Advance(25 * time.Hour)

	_, err := svc.Register(ctx, 5, 20)
	assert.ErrorIs(t, err, ErrConflict)
	store.eventRegistrations.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_EventStarted(t *testing.T) {
	store, clk, svc := newEventFixture()
	ctx := context.Background()

	event := approvedEvent(clk)
	event.RegistrationDeadline = nil
	store.events.On("GetByIDForUpdate", ctx, int32(20)).Return(event, nil)
	clk.Advance(49 * time.Hour)

	_, err := svc.Register(ctx, 5, 20)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestRegister_CapacityFull(t *testing.T) {
	store, clk, svc := newEventFixture()
	ctx := context.Background()

	store.events.On("GetByIDForUpdate", ctx, int32(20)).Return(approvedEvent(clk), nil)
	store.eventRegistrations.On("CountRegistered", ctx, int32(20)).Return(int32(2), nil)

	_, err := svc.Register(ctx, 5, 20)
	assert.ErrorIs(t, err, ErrConflict)
	store.eventRegistrations.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
}

func TestRegister_AlreadyRegistered(t *testing.T) {
	store, clk, svc := newEventFixture()
	ctx := context.Background()

	store.events.On("GetByIDForUpdate", ctx, int32(20)).Return(approvedEvent(clk), nil)
	store.eventRegistrations.On("CountRegistered", ctx, int32(20)).Return(int32(1), nil)
	existing := &domain.EventRegistration{ID: 3, EventID: 20, AccountID: 5, Status: domain.EventRegistrationStatusRegistered}
	store.eventRegistrations.On("Get", ctx, int32(20), int32(5)).Return(existing, nil)

	_, err := svc.Register(ctx, 5, 20)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestRegister_ReusesCancelledRow(t *testing.T) {
	store, clk, svc := newEventFixture()
	ctx := context.Background()

	cancelledAt := clk.Time.Add(-time.Hour)
	existing := &domain.EventRegistration{
		ID:          3,
		EventID:     20,
		AccountID:   5,
		Status:      domain.EventRegistrationStatusCancelled,
		CancelledAt: &cancelledAt,
	}
	store.events.On("GetByIDForUpdate", ctx, int32(20)).Return(approvedEvent(clk), nil)
	store.eventRegistrations.On("CountRegistered", ctx, int32(20)).Return(int32(0), nil)
	store.eventRegistrations.On("Get", ctx, int32(20), int32(5)).Return(existing, nil)
	store.eventRegistrations.On("Update", ctx, mock.MatchedBy(func(r *domain.EventRegistration) bool {
		return r.ID == 3 && r.Status == domain.EventRegistrationStatusRegistered && r.CancelledAt == nil
	})).Return(nil)

	reg, err := svc.Register(ctx, 5, 20)
	require.NoError(t, err)
	assert.Equal(t, int32(3), reg.ID)
	store.eventRegistrations.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCancelRegistration(t *testing.T) {
	store, clk, svc := newEventFixture()
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		reg := &domain.EventRegistration{ID: 3, EventID: 20, AccountID: 5, Status: domain.EventRegistrationStatusRegistered}
		store.eventRegistrations.On("Get", ctx, int32(20), int32(5)).Return(reg, nil).Once()
		store.eventRegistrations.On("Update", ctx, mock.MatchedBy(func(r *domain.EventRegistration) bool {
			return r.Status == domain.EventRegistrationStatusCancelled && r.CancelledAt != nil && r.CancelledAt.Equal(clk.Time)
		})).Return(nil).Once()

		assert.NoError(t, svc.CancelRegistration(ctx, 5, 20))
	})

	t.Run("AlreadyCancelled", func(t *testing.T) {
		reg := &domain.EventRegistration{ID: 3, EventID: 20, AccountID: 5, Status: domain.EventRegistrationStatusCancelled}
		store.eventRegistrations.On("Get", ctx, int32(20), int32(5)).Return(reg, nil).Once()

		assert.ErrorIs(t, svc.CancelRegistration(ctx, 5, 20), ErrConflict)
	})

	t.Run("Missing", func(t *testing.T) {
		store.eventRegistrations.On("Get", ctx, int32(20), int32(5)).Return(nil, sql.ErrNoRows).Once()

		assert.ErrorIs(t, svc.CancelRegistration(ctx, 5, 20), ErrNotFound)
	})
}

func TestRegister_StorageErrorIsNotMaskedAsNotFound(t *testing.T) {
	store, _, svc := newEventFixture()
	ctx := context.Background()

	store.events.On("GetByIDForUpdate", ctx, int32(20)).Return(nil, assert.AnError)

	_, err := svc.Register(ctx, 5, 20)
	assert.ErrorIs(t, err, assert.AnError)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestRegister_AtDeadlineInstant(t *testing.T) {
	store, clk, svc := newEventFixture()
	ctx := context.Background()

	store.events.On("GetByIDForUpdate", ctx, int32(20)).Return(approvedEvent(clk), nil)
	store.eventRegistrations.On("CountRegistered", ctx, int32(20)).Return(int32(0), nil)
	store.eventRegistrations.On("Get", ctx, int32(20), int32(5)).Return(nil, sql.ErrNoRows)
	store.eventRegistrations.On("Create", ctx, mock.Anything).Return(nil)

	// The deadline itself is still a valid registration instant.
	clk.Advance(24 * time.Hour)

	_, err := svc.Register(ctx, 5, 20)
	require.NoError(t, err)
}

// registerRaceStore serializes WithinTx the way the postgres row lock does,
// so concurrent Register calls contend for the remaining capacity one at a
// time.
type registerRaceStore struct {
	mu    sync.Mutex
	event domain.Event
	regs  map[int32]domain.EventRegistration
	next  int32
}

func newRegisterRaceStore(event domain.Event) *registerRaceStore {
	return &registerRaceStore{event: event, regs: make(map[int32]domain.EventRegistration)}
}

func (s *registerRaceStore) Accounts() repository.AccountRepository         { return nil }
func (s *registerRaceStore) ClubManagers() repository.ClubManagerRepository { return nil }
func (s *registerRaceStore) Clubs() repository.ClubRepository               { return nil }
func (s *registerRaceStore) ClubApplications() repository.ClubApplicationRepository {
	return nil
}
func (s *registerRaceStore) FounderInvitations() repository.FounderInvitationRepository {
	return nil
}
func (s *registerRaceStore) Memberships() repository.MembershipRepository { return nil }
func (s *registerRaceStore) MembershipApplications() repository.MembershipApplicationRepository {
	return nil
}
func (s *registerRaceStore) Announcements() repository.AnnouncementRepository { return nil }
func (s *registerRaceStore) Events() repository.EventRepository               { return raceEventRepo{s} }
func (s *registerRaceStore) EventRegistrations() repository.EventRegistrationRepository {
	return raceRegistrationRepo{s}
}
func (s *registerRaceStore) Notifications() repository.NotificationRepository { return nil }
func (s *registerRaceStore) AuditLogs() repository.AuditLogRepository         { return nil }

func (s *registerRaceStore) WithinTx(ctx context.Context, fn func(tx repository.Store) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s)
}

func (s *registerRaceStore) registeredCount() int32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int32
	for _, reg := range s.regs {
		if reg.Status == domain.EventRegistrationStatusRegistered {
			count++
		}
	}
	return count
}

type raceEventRepo struct{ s *registerRaceStore }

func (r raceEventRepo) Create(ctx context.Context, e *domain.Event) error { return nil }
func (r raceEventRepo) GetByID(ctx context.Context, id int32) (*domain.Event, error) {
	event := r.s.event
	return &event, nil
}
func (r raceEventRepo) GetByIDForUpdate(ctx context.Context, id int32) (*domain.Event, error) {
	event := r.s.event
	return &event, nil
}
func (r raceEventRepo) Update(ctx context.Context, e *domain.Event) error { return nil }
func (r raceEventRepo) ListApproved(ctx context.Context, clubID, limit, offset int32) ([]domain.Event, int32, error) {
	return nil, 0, nil
}
func (r raceEventRepo) ListByClub(ctx context.Context, clubID int32) ([]domain.Event, error) {
	return nil, nil
}
func (r raceEventRepo) ListByStatus(ctx context.Context, status domain.EventStatus) ([]domain.Event, error) {
	return nil, nil
}
func (r raceEventRepo) ListApprovedStartingBetween(ctx context.Context, from, to time.Time) ([]domain.Event, error) {
	return nil, nil
}

type raceRegistrationRepo struct{ s *registerRaceStore }

func (r raceRegistrationRepo) Create(ctx context.Context, reg *domain.EventRegistration) error {
	r.s.next++
	reg.ID = r.s.next
	r.s.regs[reg.AccountID] = *reg
	return nil
}
func (r raceRegistrationRepo) Update(ctx context.Context, reg *domain.EventRegistration) error {
	r.s.regs[reg.AccountID] = *reg
	return nil
}
func (r raceRegistrationRepo) Get(ctx context.Context, eventID, accountID int32) (*domain.EventRegistration, error) {
	reg, ok := r.s.regs[accountID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &reg, nil
}
func (r raceRegistrationRepo) CountRegistered(ctx context.Context, eventID int32) (int32, error) {
	var count int32
	for _, reg := range r.s.regs {
		if reg.Status == domain.EventRegistrationStatusRegistered {
			count++
		}
	}
	return count, nil
}
func (r raceRegistrationRepo) ListByEvent(ctx context.Context, eventID int32) ([]domain.EventRegistration, error) {
	return nil, nil
}

func TestRegister_ConcurrentWritersNeverExceedCapacity(t *testing.T) {
	clk := &clock.Fixed{Time: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	capacity := int32(1)
	store := newRegisterRaceStore(domain.Event{
		ID:       20,
		ClubID:   77,
		Title:    "Open Tournament",
		StartAt:  clk.Time.Add(48 * time.Hour),
		EndAt:    clk.Time.Add(50 * time.Hour),
		Capacity: &capacity,
		Status:   domain.EventStatusApproved,
	})
	svc := NewEventService(store, clk)

	const writers = 8
	errs := make(chan error, writers)
	var wg sync.WaitGroup
	for i := 1; i <= writers; i++ {
		wg.Add(1)
		go func(accountID int32) {
			defer wg.Done()
			_, err := svc.Register(context.Background(), accountID, 20)
			errs <- err
		}(int32(i))
	}
	wg.Wait()
	close(errs)

	winners := 0
	for err := range errs {
		if err == nil {
			winners++
			continue
		}
		assert.ErrorIs(t, err, ErrConflict)
	}
	assert.Equal(t, 1, winners)
	assert.Equal(t, capacity, store.registeredCount())
}
