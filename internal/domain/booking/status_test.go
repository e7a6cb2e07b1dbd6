package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VioletaEstudio/salon-scheduler/internal/httperr"
	"github.com/VioletaEstudio/salon-scheduler/internal/models"
)

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, StatusPendingAssignment.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusConfirmed.IsTerminal())

	assert.True(t, StatusRejected.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
}

func TestStatus_Blocks(t *testing.T) {
	assert.True(t, StatusPending.Blocks())
	assert.True(t, StatusConfirmed.Blocks())

	assert.False(t, StatusPendingAssignment.Blocks())
	assert.False(t, StatusRejected.Blocks())
	assert.False(t, StatusCancelled.Blocks())
	assert.False(t, StatusCompleted.Blocks())
}

func TestStatus_Valid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.False(t, Status("nonsense").Valid())
	assert.False(t, Status("").Valid())
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusPending, InitialStatus(true))
	assert.Equal(t, StatusPendingAssignment, InitialStatus(false))
}

func TestTransitionGuards(t *testing.T) {
	all := []Status{
		StatusPendingAssignment, StatusPending, StatusConfirmed,
		StatusRejected, StatusCancelled, StatusCompleted,
	}

	allowed := map[string]map[Status]bool{
		"assign":   {StatusPendingAssignment: true},
		"confirm":  {StatusPending: true},
		"reject":   {StatusPending: true, StatusConfirmed: true},
		"cancel":   {StatusConfirmed: true},
		"complete": {StatusConfirmed: true},
	}

	guards := map[string]func(Status) error{
		"assign":   CanAssign,
		"confirm":  CanConfirm,
		"reject":   CanReject,
		"cancel":   CanCancel,
		"complete": CanComplete,
	}

	for name, guard := range guards {
		for _, s := range all {
			err := guard(s)
			if allowed[name][s] {
				assert.NoError(t, err, "%s desde %s", name, s)
			} else {
				require.Error(t, err, "%s desde %s", name, s)
				assert.True(t, httperr.IsBusiness(err, "invalid_state"))
			}
		}
	}
}

func TestDomainActions(t *testing.T) {
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)

	t.Run("assign", func(t *testing.T) {
		b := &models.Booking{Status: string(StatusPendingAssignment)}
		require.NoError(t, Assign(b, 7))
		assert.Equal(t, string(StatusPending), b.Status)
		require.NotNil(t, b.WorkerID)
		assert.Equal(t, uint(7), *b.WorkerID)
	})

	t.Run("confirm", func(t *testing.T) {
		b := &models.Booking{Status: string(StatusPending)}
		require.NoError(t, Confirm(b, now))
		assert.Equal(t, string(StatusConfirmed), b.Status)
		require.NotNil(t, b.ConfirmedAt)
		assert.Equal(t, now, *b.ConfirmedAt)
	})

	t.Run("reject keeps previous motive", func(t *testing.T) {
		b := &models.Booking{Status: string(StatusPending), Motive: "nota previa"}
		require.NoError(t, Reject(b, "no hay hueco", now))
		assert.Equal(t, string(StatusRejected), b.Status)
		assert.Equal(t, "nota previa | no hay hueco", b.Motive)
		require.NotNil(t, b.RejectedAt)
	})

	t.Run("cancel", func(t *testing.T) {
		b := &models.Booking{Status: string(StatusConfirmed)}
		require.NoError(t, Cancel(b, now))
		assert.Equal(t, string(StatusCancelled), b.Status)
		require.NotNil(t, b.CancelledAt)
	})

	t.Run("complete", func(t *testing.T) {
		b := &models.Booking{Status: string(StatusConfirmed)}
		require.NoError(t, Complete(b, now))
		assert.Equal(t, string(StatusCompleted), b.Status)
		require.NotNil(t, b.CompletedAt)
	})

	t.Run("terminal absorbe", func(t *testing.T) {
		b := &models.Booking{Status: string(StatusCompleted)}
		assert.Error(t, Confirm(b, now))
		assert.Error(t, Cancel(b, now))
		assert.Error(t, Reject(b, "x", now))
		assert.Equal(t, string(StatusCompleted), b.Status)
	})
}

func TestAppendNote(t *testing.T) {
	assert.Equal(t, "a", AppendNote("", "a"))
	assert.Equal(t, "a | b", AppendNote("a", "b"))
	assert.Equal(t, "a", AppendNote("a", ""))
	assert.Equal(t, "a", AppendNote("a", "   "))
}

func TestScheduledStartEnd(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Madrid")
	require.NoError(t, err)

	b := &models.Booking{
		Date:        time.Date(2025, 1, 10, 0, 0, 0, 0, loc),
		StartTime:   "09:30",
		DurationMin: 45,
	}

	start, err := ScheduledStart(b, loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 10, 9, 30, 0, 0, loc), start)

	end, err := ScheduledEnd(b, loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 10, 10, 15, 0, 0, loc), end)

	b.StartTime = "mala"
	_, err = ScheduledStart(b, loc)
	assert.Error(t, err)
}
