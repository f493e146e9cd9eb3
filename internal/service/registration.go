package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SokolovG/DevEvents/internal/domain"
	"github.com/SokolovG/DevEvents/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type RegistrationService struct {
	registrations ports.RegistrationRepo
	events        ports.EventRepo
	users         ports.UserRepo
	notifier      ports.RegistrationNotifier
	logger        logger.Logger
}

func NewRegistrationService(
	registrations ports.RegistrationRepo,
	events ports.EventRepo,
	users ports.UserRepo,
	notifier ports.RegistrationNotifier,
	logger logger.Logger,
) *RegistrationService {
	return &RegistrationService{
		registrations: registrations,
		events:        events,
		users:         users,
		notifier:      notifier,
		logger:        logger,
	}
}

// Register admits a user to an event. The checks here are advisory; the
// repository repeats the capacity and uniqueness checks inside a single
// transaction, so two concurrent calls can never both take the last spot.
func (s *RegistrationService) Register(ctx context.Context, eventID, userID string) (*domain.Registration, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	if !event.IsPublished ||
		(event.Status != domain.EventStatusPlanned && event.Status != domain.EventStatusOngoing) {
		return nil, domain.ErrEventNotOpen
	}

	now := time.Now().UTC()
	if event.RegistrationDeadline != nil && now.After(*event.RegistrationDeadline) {
		return nil, domain.ErrRegistrationClosed
	}

	if event.CurrentParticipants >= event.MaxParticipants {
		return nil, domain.ErrEventFull
	}

	if _, err = s.registrations.GetActive(ctx, eventID, userID); err == nil {
		return nil, domain.ErrAlreadyRegistered
	} else if !errors.Is(err, domain.ErrRegistrationNotFound) {
		return nil, fmt.Errorf("check registration: %w", err)
	}

	reg := &domain.Registration{
		ID:        uuid.New().String(),
		EventID:   eventID,
		UserID:    userID,
		Status:    domain.RegistrationStatusConfirmed,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err = s.registrations.Register(ctx, reg, now); err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	s.logger.Info("registration created",
		logger.String("registration_id", reg.ID),
		logger.String("event_id", eventID),
		logger.String("user_id", userID),
	)

	go s.notifier.NotifyRegistrationConfirmed(context.WithoutCancel(ctx), user, event)

	return reg, nil
}

// Cancel marks the user's active registration cancelled and frees the spot.
func (s *RegistrationService) Cancel(ctx context.Context, eventID, userID string) error {
	reg, err := s.registrations.GetActive(ctx, eventID, userID)
	if err != nil {
		return fmt.Errorf("get registration: %w", err)
	}

	if err = s.registrations.Cancel(ctx, eventID, userID); err != nil {
		return fmt.Errorf("cancel registration: %w", err)
	}

	s.logger.Info("registration cancelled",
		logger.String("registration_id", reg.ID),
		logger.String("event_id", eventID),
		logger.String("user_id", userID),
	)

	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		s.logger.Error("failed to get event for cancel notification",
			logger.String("event_id", eventID),
			logger.String("error", err.Error()),
		)
		return nil
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		s.logger.Error("failed to get user for cancel notification",
			logger.String("user_id", userID),
			logger.String("error", err.Error()),
		)
		return nil
	}

	go s.notifier.NotifyRegistrationCancelled(context.WithoutCancel(ctx), user, event)

	return nil
}

func (s *RegistrationService) ListByEvent(ctx context.Context, eventID string) ([]*domain.Registration, error) {
	return s.registrations.ListByEvent(ctx, eventID)
}

func (s *RegistrationService) ListByUser(ctx context.Context, userID string) ([]*domain.Registration, error) {
	return s.registrations.ListByUser(ctx, userID)
}
