package reconciler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domain "github.com/VioletaEstudio/salon-scheduler/internal/domain/booking"
	"github.com/VioletaEstudio/salon-scheduler/internal/models"
)

// ------------------------------------------------------
// Fake repository
// ------------------------------------------------------

type fakeRepo struct {
	bookings []models.Booking

	listErr    error
	failStatus map[uint]error // por reserva
	failMotive map[uint]error

	statusWrites []uint
	motives      map[uint]string
	notes        map[uint]string
}

func newFakeRepo(bookings ...models.Booking) *fakeRepo {
	return &fakeRepo{
		bookings:   bookings,
		failStatus: map[uint]error{},
		failMotive: map[uint]error{},
		motives:    map[uint]string{},
		notes:      map[uint]string{},
	}
}

func (f *fakeRepo) ListAllBookings(ctx context.Context) ([]models.Booking, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.Booking, len(f.bookings))
	copy(out, f.bookings)
	return out, nil
}

func (f *fakeRepo) UpdateBookingStatus(ctx context.Context, bookingID uint, status domain.Status) error {
	if err := f.failStatus[bookingID]; err != nil {
		return err
	}
	for i := range f.bookings {
		if f.bookings[i].ID == bookingID {
			f.bookings[i].Status = string(status)
		}
	}
	f.statusWrites = append(f.statusWrites, bookingID)
	return nil
}

func (f *fakeRepo) AppendBookingMotive(ctx context.Context, bookingID uint, text string) error {
	if err := f.failMotive[bookingID]; err != nil {
		return err
	}
	f.motives[bookingID] = text
	return nil
}

func (f *fakeRepo) AppendBookingInternalNote(ctx context.Context, bookingID uint, text string) error {
	f.notes[bookingID] = text
	return nil
}

// ------------------------------------------------------
// Helpers
// ------------------------------------------------------

var testNow = time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)

func testBooking(id uint, status domain.Status, startTime string, durationMin int) models.Booking {
	return models.Booking{
		ID:          id,
		SalonID:     1,
		Salon:       models.Salon{Timezone: "UTC"},
		Status:      string(status),
		Date:        time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		StartTime:   startTime,
		DurationMin: durationMin,
	}
}

func newTestReconciler(repo Repository) *Reconciler {
	r := New(repo, Config{}, zap.NewNop(), nil)
	r.nowFn = func() time.Time { return testNow }
	return r
}

// ------------------------------------------------------
// Tests
// ------------------------------------------------------

func TestRunPass_AppliesAutoTransitions(t *testing.T) {
	repo := newFakeRepo(
		// pending demasiado cerca del inicio (13:00, a 1h) → auto-reject
		testBooking(1, domain.StatusPending, "13:00", 30),
		// pending con margen (15:00, a 3h) → queda como está
		testBooking(2, domain.StatusPending, "15:00", 30),
		// confirmed ya terminada (10:00+60 = 11:00 < 12:00) → auto-complete
		testBooking(3, domain.StatusConfirmed, "10:00", 60),
		// confirmed en curso → queda como está
		testBooking(4, domain.StatusConfirmed, "11:30", 60),
		// terminal → intocable
		testBooking(5, domain.StatusCancelled, "08:00", 30),
	)

	rec := newTestReconciler(repo)
	outcomes := rec.RunPass(context.Background())

	require.Len(t, outcomes, 2)

	byID := map[uint]Outcome{}
	for _, o := range outcomes {
		byID[o.BookingID] = o
	}

	require.Contains(t, byID, uint(1))
	assert.Equal(t, ActionAutoReject, byID[1].Action)
	assert.NoError(t, byID[1].Err)
	assert.Equal(t, domain.AutoRejectMotive, repo.motives[1])

	require.Contains(t, byID, uint(3))
	assert.Equal(t, ActionAutoComplete, byID[3].Action)
	assert.NoError(t, byID[3].Err)
	assert.Equal(t, domain.AutoCompleteNote, repo.notes[3])

	assert.Equal(t, string(domain.StatusRejected), repo.bookings[0].Status)
	assert.Equal(t, string(domain.StatusPending), repo.bookings[1].Status)
	assert.Equal(t, string(domain.StatusCompleted), repo.bookings[2].Status)
	assert.Equal(t, string(domain.StatusConfirmed), repo.bookings[3].Status)
	assert.Equal(t, string(domain.StatusCancelled), repo.bookings[4].Status)
}

func TestRunPass_ListFailureAbortsPass(t *testing.T) {
	repo := newFakeRepo(testBooking(1, domain.StatusPending, "13:00", 30))
	repo.listErr = errors.New("db down")

	rec := newTestReconciler(repo)

	assert.Nil(t, rec.RunPass(context.Background()))
	assert.Empty(t, repo.statusWrites)
	assert.Equal(t, string(domain.StatusPending), repo.bookings[0].Status)
}

func TestRunPass_PerItemFailureIsIsolated(t *testing.T) {
	repo := newFakeRepo(
		testBooking(1, domain.StatusPending, "13:00", 30),
		testBooking(2, domain.StatusConfirmed, "10:00", 60),
	)
	repo.failStatus[1] = errors.New("write failed")

	rec := newTestReconciler(repo)
	outcomes := rec.RunPass(context.Background())

	require.Len(t, outcomes, 2)

	byID := map[uint]Outcome{}
	for _, o := range outcomes {
		byID[o.BookingID] = o
	}

	// la reserva 1 falló pero no detuvo la pasada
	assert.Error(t, byID[1].Err)
	assert.Equal(t, string(domain.StatusPending), repo.bookings[0].Status)
	assert.Empty(t, repo.motives[1])

	// la reserva 2 se procesó igualmente
	assert.NoError(t, byID[2].Err)
	assert.Equal(t, string(domain.StatusCompleted), repo.bookings[1].Status)
}

func TestRunPass_AnnotationFailureKeepsStatus(t *testing.T) {
	repo := newFakeRepo(testBooking(1, domain.StatusPending, "13:00", 30))
	repo.failMotive[1] = errors.New("annotation failed")

	rec := newTestReconciler(repo)
	outcomes := rec.RunPass(context.Background())

	require.Len(t, outcomes, 1)

	// el estado se escribió primero; perder la anotación no revierte nada
	assert.NoError(t, outcomes[0].Err)
	assert.Equal(t, string(domain.StatusRejected), repo.bookings[0].Status)
	assert.Empty(t, repo.motives[1])
}

func TestRunPass_Idempotent(t *testing.T) {
	repo := newFakeRepo(
		testBooking(1, domain.StatusPending, "13:00", 30),
		testBooking(2, domain.StatusConfirmed, "10:00", 60),
	)

	rec := newTestReconciler(repo)

	first := rec.RunPass(context.Background())
	require.Len(t, first, 2)

	// segunda pasada sobre el mismo estado: nada que hacer
	second := rec.RunPass(context.Background())
	assert.Empty(t, second)
	assert.Len(t, repo.statusWrites, 2)
}

func TestStatusSnapshot(t *testing.T) {
	repo := newFakeRepo(
		testBooking(1, domain.StatusPending, "15:00", 30),
		testBooking(2, domain.StatusPending, "16:00", 30),
		testBooking(3, domain.StatusConfirmed, "14:00", 30),
		testBooking(4, domain.StatusCompleted, "08:00", 30),
	)

	rec := newTestReconciler(repo)

	// antes de la primera pasada
	st := rec.Status()
	assert.Zero(t, st.Total)
	assert.True(t, st.LastRun.IsZero())
	assert.False(t, st.IsRunning)

	rec.RunPass(context.Background())

	st = rec.Status()
	assert.Equal(t, 4, st.Total)
	assert.Equal(t, testNow, st.LastRun)
	assert.Equal(t, map[string]int{
		"pending":   2,
		"confirmed": 1,
		"completed": 1,
	}, st.CountsByState)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	repo := newFakeRepo()
	rec := New(repo, Config{Warmup: time.Millisecond, Interval: time.Millisecond}, zap.NewNop(), nil)
	rec.nowFn = func() time.Time { return testNow }

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- rec.Run(ctx) }()

	time.Sleep(20 * time.Millisecond)
	assert.True(t, rec.Status().IsRunning)

	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("reconciler did not stop after cancel")
	}

	assert.False(t, rec.Status().IsRunning)
}
