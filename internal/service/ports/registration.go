package ports

import (
	"context"
	"time"

	"github.com/SokolovG/DevEvents/internal/domain"
)

type RegistrationRepo interface {
	// Register admits r atomically: the capacity check, the participant
	// increment and the registration insert happen in one transaction.
	Register(ctx context.Context, r *domain.Registration, now time.Time) error
	// Cancel marks the active registration cancelled and decrements the
	// participant counter in one transaction.
	Cancel(ctx context.Context, eventID, userID string) error
	GetActive(ctx context.Context, eventID, userID string) (*domain.Registration, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Registration, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Registration, error)
}
