package audit

import "go.uber.org/zap"

type Event struct {
	SalonID  uint
	UserID   *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

type Dispatcher struct {
	writer *Writer
	logger *zap.Logger
	queue  chan Event
}

func NewDispatcher(writer *Writer, logger *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		writer: writer,
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.writer.Write(
			ev.SalonID,
			ev.UserID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			d.logger.Warn("audit write failed", zap.String("action", ev.Action), zap.Error(err))
		}
	}
}

// Dispatch encola el evento sin bloquear. Con dispatcher nil es un no-op:
// la auditoría es opcional para quien ejecuta los casos de uso.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	select {
	case d.queue <- ev:
		// encolado
	default:
		// cola llena → descartamos el evento; la auditoría nunca rompe la API
		d.logger.Warn("audit queue full, dropping event", zap.String("action", ev.Action))
	}
}
