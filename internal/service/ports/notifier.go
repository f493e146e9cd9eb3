package ports

import (
	"context"

	"github.com/SokolovG/DevEvents/internal/domain"
)

type RegistrationNotifier interface {
	NotifyRegistrationConfirmed(ctx context.Context, user *domain.User, event *domain.Event)
	NotifyRegistrationCancelled(ctx context.Context, user *domain.User, event *domain.Event)
	NotifyEventCancelled(ctx context.Context, user *domain.User, event *domain.Event)
}
