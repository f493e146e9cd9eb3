package ports

import (
	"context"
	"time"

	"github.com/SokolovG/DevEvents/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error)
	// Update writes the full merged row; it fails with InvalidEventError when
	// max_participants would drop below the stored participant count.
	Update(ctx context.Context, e *domain.Event) error
	// UpdateStatus is a conditional transition guarded by the current status.
	// Transitioning to cancelled also cancels all active registrations and
	// resets the participant counter within the same transaction.
	UpdateStatus(ctx context.Context, id string, from, to domain.EventStatus) error
	// AdvanceStatuses moves planned events past their start to ongoing and
	// open events past their end to completed, returning the changed events.
	AdvanceStatuses(ctx context.Context, now time.Time) ([]*domain.Event, error)
}
