package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/SokolovG/DevEvents/internal/domain"
	"github.com/SokolovG/DevEvents/internal/service/ports/mocks"
)

type registrationServiceMocks struct {
	registrations *mocks.MockRegistrationRepo
	events        *mocks.MockEventRepo
	users         *mocks.MockUserRepo
	notifier      *mocks.MockRegistrationNotifier
}

func newRegistrationService(t *testing.T) (*RegistrationService, registrationServiceMocks) {
	t.Helper()
	m := registrationServiceMocks{
		registrations: mocks.NewMockRegistrationRepo(t),
		events:        mocks.NewMockEventRepo(t),
		users:         mocks.NewMockUserRepo(t),
		notifier:      mocks.NewMockRegistrationNotifier(t),
	}
	svc := NewRegistrationService(m.registrations, m.events, m.users, m.notifier, newTestLogger(t))
	return svc, m
}

func openEvent() *domain.Event {
	start := time.Now().Add(48 * time.Hour).UTC()
	deadline := start.Add(-time.Hour)
	locationID := "loc-1"
	return &domain.Event{
		ID:                   "e1",
		Name:                 "GopherCon",
		LocationID:           &locationID,
		PubDate:              time.Now().Add(-time.Hour).UTC(),
		EventStartDate:       start,
		EventEndDate:         start.Add(4 * time.Hour),
		IsPublished:          true,
		MaxParticipants:      2,
		CurrentParticipants:  0,
		RegistrationDeadline: &deadline,
		Format:               domain.EventFormatOffline,
		Status:               domain.EventStatusPlanned,
	}
}

func TestRegistrationService_Register_Success(t *testing.T) {
	svc, m := newRegistrationService(t)

	event := openEvent()
	user := &domain.User{ID: "u1", Email: "alice@example.com"}

	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.registrations.EXPECT().GetActive(mock.Anything, "e1", "u1").Return(nil, domain.ErrRegistrationNotFound)
	m.registrations.EXPECT().Register(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	m.notifier.EXPECT().NotifyRegistrationConfirmed(mock.Anything, user, event).Return()

	reg, err := svc.Register(context.Background(), "e1", "u1")

	require.NoError(t, err)
	assert.Equal(t, domain.RegistrationStatusConfirmed, reg.Status)
	assert.Equal(t, "e1", reg.EventID)
	assert.Equal(t, "u1", reg.UserID)
	assert.NotEmpty(t, reg.ID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestRegistrationService_Register_EventNotFound(t *testing.T) {
	svc, m := newRegistrationService(t)

	m.events.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := svc.Register(context.Background(), "missing", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestRegistrationService_Register_UserNotFound(t *testing.T) {
	svc, m := newRegistrationService(t)

	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(openEvent(), nil)
	m.users.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrUserNotFound)

	_, err := svc.Register(context.Background(), "e1", "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestRegistrationService_Register_Unpublished(t *testing.T) {
	svc, m := newRegistrationService(t)

	event := openEvent()
	event.IsPublished = false
	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)

	_, err := svc.Register(context.Background(), "e1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotOpen)
}

func TestRegistrationService_Register_CompletedEvent(t *testing.T) {
	svc, m := newRegistrationService(t)

	event := openEvent()
	event.Status = domain.EventStatusCompleted
	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)

	_, err := svc.Register(context.Background(), "e1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotOpen)
}

func TestRegistrationService_Register_DeadlinePassed(t *testing.T) {
	svc, m := newRegistrationService(t)

	event := openEvent()
	passed := time.Now().Add(-time.Hour).UTC()
	event.RegistrationDeadline = &passed
	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)

	_, err := svc.Register(context.Background(), "e1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRegistrationClosed)
}

func TestRegistrationService_Register_EventFull(t *testing.T) {
	svc, m := newRegistrationService(t)

	event := openEvent()
	event.CurrentParticipants = event.MaxParticipants
	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)

	_, err := svc.Register(context.Background(), "e1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventFull)
}

func TestRegistrationService_Register_AlreadyRegistered(t *testing.T) {
	svc, m := newRegistrationService(t)

	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(openEvent(), nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.registrations.EXPECT().GetActive(mock.Anything, "e1", "u1").
		Return(&domain.Registration{ID: "r1", EventID: "e1", UserID: "u1"}, nil)

	_, err := svc.Register(context.Background(), "e1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyRegistered)
}

// The repo re-checks capacity inside its transaction; a concurrent admit
// between the advisory check and the write surfaces as ErrEventFull here.
func TestRegistrationService_Register_LostRace(t *testing.T) {
	svc, m := newRegistrationService(t)

	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(openEvent(), nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.registrations.EXPECT().GetActive(mock.Anything, "e1", "u1").Return(nil, domain.ErrRegistrationNotFound)
	m.registrations.EXPECT().Register(mock.Anything, mock.Anything, mock.Anything).Return(domain.ErrEventFull)

	_, err := svc.Register(context.Background(), "e1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventFull)
}

func TestRegistrationService_Cancel_Success(t *testing.T) {
	svc, m := newRegistrationService(t)

	event := openEvent()
	user := &domain.User{ID: "u1"}
	reg := &domain.Registration{ID: "r1", EventID: "e1", UserID: "u1"}

	m.registrations.EXPECT().GetActive(mock.Anything, "e1", "u1").Return(reg, nil)
	m.registrations.EXPECT().Cancel(mock.Anything, "e1", "u1").Return(nil)
	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.notifier.EXPECT().NotifyRegistrationCancelled(mock.Anything, user, event).Return()

	err := svc.Cancel(context.Background(), "e1", "u1")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestRegistrationService_Cancel_NotRegistered(t *testing.T) {
	svc, m := newRegistrationService(t)

	m.registrations.EXPECT().GetActive(mock.Anything, "e1", "u1").Return(nil, domain.ErrRegistrationNotFound)

	err := svc.Cancel(context.Background(), "e1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRegistrationNotFound)
}

// A failed notification lookup must not undo a committed cancellation.
func TestRegistrationService_Cancel_NotifyLookupFailure(t *testing.T) {
	svc, m := newRegistrationService(t)

	reg := &domain.Registration{ID: "r1", EventID: "e1", UserID: "u1"}
	m.registrations.EXPECT().GetActive(mock.Anything, "e1", "u1").Return(reg, nil)
	m.registrations.EXPECT().Cancel(mock.Anything, "e1", "u1").Return(nil)
	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(nil, errors.New("db error"))

	err := svc.Cancel(context.Background(), "e1", "u1")

	require.NoError(t, err)
}

// Full lifecycle against a capacity-2 event: duplicate attempts bounce,
// the third user only gets in after a spot frees up.
func TestRegistrationService_CapacityScenario(t *testing.T) {
	svc, m := newRegistrationService(t)

	store := newFakeAdmissionStore(2)

	m.events.EXPECT().GetByID(mock.Anything, "e1").RunAndReturn(
		func(_ context.Context, _ string) (*domain.Event, error) {
			return store.snapshot(), nil
		})
	m.users.EXPECT().GetByID(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, id string) (*domain.User, error) {
			return &domain.User{ID: id}, nil
		})
	m.registrations.EXPECT().GetActive(mock.Anything, "e1", mock.Anything).RunAndReturn(
		func(_ context.Context, eventID, userID string) (*domain.Registration, error) {
			return store.getActive(eventID, userID)
		})
	m.registrations.EXPECT().Register(mock.Anything, mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, r *domain.Registration, _ time.Time) error {
			return store.admit(r.UserID)
		})
	m.registrations.EXPECT().Cancel(mock.Anything, "e1", mock.Anything).RunAndReturn(
		func(_ context.Context, _, userID string) error {
			return store.release(userID)
		})
	m.notifier.EXPECT().NotifyRegistrationConfirmed(mock.Anything, mock.Anything, mock.Anything).Return()
	m.notifier.EXPECT().NotifyRegistrationCancelled(mock.Anything, mock.Anything, mock.Anything).Return()

	ctx := context.Background()

	_, err := svc.Register(ctx, "e1", "alice")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "e1", "alice")
	assert.ErrorIs(t, err, domain.ErrAlreadyRegistered)

	_, err = svc.Register(ctx, "e1", "bob")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "e1", "carol")
	assert.ErrorIs(t, err, domain.ErrEventFull)

	require.NoError(t, svc.Cancel(ctx, "e1", "alice"))

	_, err = svc.Register(ctx, "e1", "carol")
	require.NoError(t, err)

	time.Sleep(100 * time.Millisecond) // goroutine notify
}

// Eight concurrent attempts at the last remaining spot; exactly one wins.
func TestRegistrationService_Register_ConcurrentLastSpot(t *testing.T) {
	svc, m := newRegistrationService(t)

	store := newFakeAdmissionStore(1)

	m.events.EXPECT().GetByID(mock.Anything, "e1").RunAndReturn(
		func(_ context.Context, _ string) (*domain.Event, error) {
			event := openEvent()
			event.MaxParticipants = 1
			return event, nil
		})
	m.users.EXPECT().GetByID(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, id string) (*domain.User, error) {
			return &domain.User{ID: id}, nil
		})
	m.registrations.EXPECT().GetActive(mock.Anything, "e1", mock.Anything).
		Return(nil, domain.ErrRegistrationNotFound)
	m.registrations.EXPECT().Register(mock.Anything, mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, r *domain.Registration, _ time.Time) error {
			return store.admit(r.UserID)
		})
	m.notifier.EXPECT().NotifyRegistrationConfirmed(mock.Anything, mock.Anything, mock.Anything).Return()

	const attempts = 8
	results := make(chan error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := svc.Register(context.Background(), "e1", string(rune('a'+n)))
			results <- err
		}(i)
	}
	wg.Wait()
	close(results)

	var won, full int
	for err := range results {
		switch {
		case err == nil:
			won++
		case errors.Is(err, domain.ErrEventFull):
			full++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, won)
	assert.Equal(t, attempts-1, full)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestRegistrationService_ListByEvent_Passthrough(t *testing.T) {
	svc, m := newRegistrationService(t)

	regs := []*domain.Registration{{ID: "r1", EventID: "e1", UserID: "u1"}}
	m.registrations.EXPECT().ListByEvent(mock.Anything, "e1").Return(regs, nil)

	result, err := svc.ListByEvent(context.Background(), "e1")

	require.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestRegistrationService_ListByUser_Passthrough(t *testing.T) {
	svc, m := newRegistrationService(t)

	regs := []*domain.Registration{{ID: "r1", EventID: "e1", UserID: "u1"}}
	m.registrations.EXPECT().ListByUser(mock.Anything, "u1").Return(regs, nil)

	result, err := svc.ListByUser(context.Background(), "u1")

	require.NoError(t, err)
	assert.Len(t, result, 1)
}

// fakeAdmissionStore mimics the repository's transactional admit: capacity
// and uniqueness are rechecked under a single lock.
type fakeAdmissionStore struct {
	mu      sync.Mutex
	max     int
	current int
	active  map[string]bool
}

func newFakeAdmissionStore(max int) *fakeAdmissionStore {
	return &fakeAdmissionStore{max: max, active: make(map[string]bool)}
}

func (s *fakeAdmissionStore) snapshot() *domain.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	event := openEvent()
	event.MaxParticipants = s.max
	event.CurrentParticipants = s.current
	return event
}

func (s *fakeAdmissionStore) getActive(eventID, userID string) (*domain.Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active[userID] {
		return &domain.Registration{EventID: eventID, UserID: userID, Status: domain.RegistrationStatusConfirmed}, nil
	}
	return nil, domain.ErrRegistrationNotFound
}

func (s *fakeAdmissionStore) admit(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active[userID] {
		return domain.ErrAlreadyRegistered
	}
	if s.current >= s.max {
		return domain.ErrEventFull
	}
	s.current++
	s.active[userID] = true
	return nil
}

func (s *fakeAdmissionStore) release(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.active[userID] {
		return domain.ErrRegistrationNotFound
	}
	delete(s.active, userID)
	if s.current > 0 {
		s.current--
	}
	return nil
}
