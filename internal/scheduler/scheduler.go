package scheduler

import (
	"context"
	"time"

	"github.com/SokolovG/DevEvents/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type statusAdvancer interface {
	AdvanceSchedule(ctx context.Context, now time.Time) ([]*domain.Event, error)
}

// Scheduler periodically moves events along their lifecycle: planned events
// past their start become ongoing, open events past their end completed.
type Scheduler struct {
	eventService statusAdvancer
	interval     time.Duration
	logger       logger.Logger
}

func New(
	eventService statusAdvancer,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		eventService: eventService,
		interval:     interval,
		logger:       logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	changed, err := s.eventService.AdvanceSchedule(ctx, time.Now().UTC())
	if err != nil {
		s.logger.Error("failed to advance event statuses",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, e := range changed {
		s.logger.Info("event lifecycle advanced",
			logger.String("event_id", e.ID),
			logger.String("status", string(e.Status)),
		)
	}
}
