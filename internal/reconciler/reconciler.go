package reconciler

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/VioletaEstudio/salon-scheduler/internal/audit"
	domain "github.com/VioletaEstudio/salon-scheduler/internal/domain/booking"
	"github.com/VioletaEstudio/salon-scheduler/internal/models"
	"github.com/VioletaEstudio/salon-scheduler/internal/timezone"
)

// Repository is the slice of persistence the reconciler consumes. Each
// booking write is atomic on its own, so an abandoned pass never corrupts
// state.
type Repository interface {
	ListAllBookings(ctx context.Context) ([]models.Booking, error)
	UpdateBookingStatus(ctx context.Context, bookingID uint, status domain.Status) error
	AppendBookingMotive(ctx context.Context, bookingID uint, text string) error
	AppendBookingInternalNote(ctx context.Context, bookingID uint, text string) error
}

type Config struct {
	// Interval between passes; Warmup delays the first pass after boot.
	Interval time.Duration
	Warmup   time.Duration

	// AutoRejectThreshold is how close to its start a pending booking may
	// get before it is rejected automatically.
	AutoRejectThreshold time.Duration

	// CallTimeout bounds each per-booking repository write. A timeout is a
	// skipped item, not a failed pass.
	CallTimeout time.Duration
}

func (c Config) withDefaults() Config {
	if c.Interval <= 0 {
		c.Interval = 2 * time.Minute
	}
	if c.Warmup <= 0 {
		c.Warmup = 15 * time.Second
	}
	if c.AutoRejectThreshold <= 0 {
		c.AutoRejectThreshold = domain.DefaultAutoRejectThreshold
	}
	if c.CallTimeout <= 0 {
		c.CallTimeout = 10 * time.Second
	}
	return c
}

// Acciones automáticas aplicadas por la pasada.
const (
	ActionAutoReject   = "auto_reject"
	ActionAutoComplete = "auto_complete"
)

// Outcome is the per-booking result of one pass. Collected instead of
// swallowed so a skipped booking stays observable.
type Outcome struct {
	BookingID uint
	Action    string
	Err       error
}

// Status is the monitoring snapshot exposed to external callers.
type Status struct {
	Total         int            `json:"total"`
	CountsByState map[string]int `json:"counts_by_state"`
	LastRun       time.Time      `json:"last_run"`
	IsRunning     bool           `json:"is_running"`
}

// Reconciler owns the recurring auto-transition scan: pending bookings too
// close to their start are rejected, confirmed bookings past their end are
// completed. It holds no booking state between passes; every pass re-reads
// everything, so staleness is bounded by one interval.
type Reconciler struct {
	repo   Repository
	cfg    Config
	logger *zap.Logger
	audit  *audit.Dispatcher

	// nowFn is swappable in tests.
	nowFn func() time.Time

	// passMu guarantees passes never overlap.
	passMu sync.Mutex

	mu      sync.Mutex
	total   int
	counts  map[string]int
	lastRun time.Time
	running bool
}

func New(repo Repository, cfg Config, logger *zap.Logger, auditDisp *audit.Dispatcher) *Reconciler {
	return &Reconciler{
		repo:   repo,
		cfg:    cfg.withDefaults(),
		logger: logger,
		audit:  auditDisp,
		nowFn:  time.Now,
		counts: map[string]int{},
	}
}

// Run owns the periodic timer: one warm-up pass shortly after boot, then
// one pass per interval, until ctx is cancelled. It is the single
// schedulable unit; start it once on boot and cancel it on shutdown.
func (r *Reconciler) Run(ctx context.Context) error {
	r.setRunning(true)
	defer r.setRunning(false)

	r.logger.Info("reconciler started",
		zap.Duration("interval", r.cfg.Interval),
		zap.Duration("warmup", r.cfg.Warmup),
		zap.Duration("auto_reject_threshold", r.cfg.AutoRejectThreshold),
	)

	warmup := time.NewTimer(r.cfg.Warmup)
	defer warmup.Stop()

	select {
	case <-ctx.Done():
		r.logger.Info("reconciler stopped before first pass")
		return ctx.Err()
	case <-warmup.C:
		r.RunPass(ctx)
	}

	ticker := time.NewTicker(r.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("reconciler stopped")
			return ctx.Err()
		case <-ticker.C:
			r.RunPass(ctx)
		}
	}
}

// RunPass executes one reconciliation pass and returns the per-booking
// outcomes. A systemic fetch failure aborts the pass; the next tick
// retries. Individual write failures are logged and skipped.
func (r *Reconciler) RunPass(ctx context.Context) []Outcome {
	r.passMu.Lock()
	defer r.passMu.Unlock()

	now := r.nowFn()

	bookings, err := r.repo.ListAllBookings(ctx)
	if err != nil {
		r.logger.Error("reconciler pass aborted: listing bookings failed", zap.Error(err))
		return nil
	}

	var outcomes []Outcome
	for i := range bookings {
		b := &bookings[i]
		loc := timezone.Location(b.Salon.Timezone)

		switch {
		case domain.EligibleForAutoReject(b, now, r.cfg.AutoRejectThreshold, loc):
			outcomes = append(outcomes, r.apply(ctx, b, ActionAutoReject))
		case domain.EligibleForAutoComplete(b, now, loc):
			outcomes = append(outcomes, r.apply(ctx, b, ActionAutoComplete))
		}
	}

	counts := make(map[string]int)
	for i := range bookings {
		counts[bookings[i].Status]++
	}

	r.mu.Lock()
	r.total = len(bookings)
	r.counts = counts
	r.lastRun = now
	r.mu.Unlock()

	var failed int
	for _, o := range outcomes {
		if o.Err != nil {
			failed++
		}
	}

	r.logger.Info("reconciler pass finished",
		zap.Int("total", len(bookings)),
		zap.Int("transitions", len(outcomes)-failed),
		zap.Int("failed", failed),
	)

	return outcomes
}

// apply persists one auto-transition. The in-memory state only changes
// after the status write succeeds; on failure the booking stays as it was
// and the next pass re-evaluates it.
func (r *Reconciler) apply(ctx context.Context, b *models.Booking, action string) Outcome {
	out := Outcome{BookingID: b.ID, Action: action}

	cctx, cancel := context.WithTimeout(ctx, r.cfg.CallTimeout)
	defer cancel()

	newStatus := domain.StatusRejected
	if action == ActionAutoComplete {
		newStatus = domain.StatusCompleted
	}

	if err := r.repo.UpdateBookingStatus(cctx, b.ID, newStatus); err != nil {
		out.Err = err
		r.logger.Warn("reconciler: booking skipped",
			zap.Uint("booking_id", b.ID),
			zap.String("action", action),
			zap.Error(err),
		)
		return out
	}

	b.Status = string(newStatus)

	var annErr error
	switch action {
	case ActionAutoReject:
		annErr = r.repo.AppendBookingMotive(cctx, b.ID, domain.AutoRejectMotive)
	case ActionAutoComplete:
		annErr = r.repo.AppendBookingInternalNote(cctx, b.ID, domain.AutoCompleteNote)
	}
	if annErr != nil {
		// el estado ya quedó persistido; sólo se pierde la anotación
		r.logger.Warn("reconciler: annotation failed",
			zap.Uint("booking_id", b.ID),
			zap.String("action", action),
			zap.Error(annErr),
		)
	}

	if r.audit != nil {
		r.audit.Dispatch(audit.Event{
			SalonID:  b.SalonID,
			Action:   "booking_" + action,
			Entity:   "booking",
			EntityID: &b.ID,
		})
	}

	return out
}

// Status returns the snapshot from the last finished pass.
func (r *Reconciler) Status() Status {
	r.mu.Lock()
	defer r.mu.Unlock()

	counts := make(map[string]int, len(r.counts))
	for k, v := range r.counts {
		counts[k] = v
	}

	return Status{
		Total:         r.total,
		CountsByState: counts,
		LastRun:       r.lastRun,
		IsRunning:     r.running,
	}
}

func (r *Reconciler) setRunning(v bool) {
	r.mu.Lock()
	r.running = v
	r.mu.Unlock()
}
