package archive

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/gamers-hub/internal/models"
)

type Archiver interface {
	Archive(ctx context.Context, b models.Booking) error
}

// Queue archives bookings off the request path and drops them when full.
type Queue struct {
	archiver Archiver
	log      *zap.Logger
	timeout  time.Duration
	queue    chan models.Booking

	closeOnce sync.Once
	done      chan struct{}
}

func NewQueue(archiver Archiver, log *zap.Logger) *Queue {
	if log == nil {
		log = zap.NewNop()
	}

	q := &Queue{
		archiver: archiver,
		log:      log,
		timeout:  15 * time.Second,
		queue:    make(chan models.Booking, 100),
		done:     make(chan struct{}),
	}

	go q.worker()
	return q
}

func (q *Queue) worker() {
	defer close(q.done)

	for b := range q.queue {
		ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
		if err := q.archiver.Archive(ctx, b); err != nil {
			q.log.Warn("booking archive failed",
				zap.String("reference", b.Reference),
				zap.Error(err),
			)
		}
		cancel()
	}
}

func (q *Queue) Enqueue(b models.Booking) {
	if q == nil {
		return
	}

	select {
	case q.queue <- b:
	default:
		q.log.Warn("archive queue full, dropping booking", zap.String("reference", b.Reference))
	}
}

func (q *Queue) Close() {
	if q == nil {
		return
	}
	q.closeOnce.Do(func() {
		close(q.queue)
	})
	<-q.done
}
