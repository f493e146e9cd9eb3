package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SokolovG/DevEvents/internal/domain"
	"github.com/SokolovG/DevEvents/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type EventService struct {
	events        ports.EventRepo
	registrations ports.RegistrationRepo
	users         ports.UserRepo
	notifier      ports.RegistrationNotifier
	logger        logger.Logger
}

func NewEventService(
	events ports.EventRepo,
	registrations ports.RegistrationRepo,
	users ports.UserRepo,
	notifier ports.RegistrationNotifier,
	logger logger.Logger,
) *EventService {
	return &EventService{
		events:        events,
		registrations: registrations,
		users:         users,
		notifier:      notifier,
		logger:        logger,
	}
}

func (s *EventService) Create(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	now := time.Now().UTC()

	pubDate := now
	if input.PubDate != nil {
		pubDate = input.PubDate.UTC()
	}

	format := input.Format
	if format == "" {
		format = domain.EventFormatOffline
		if input.IsOnline {
			format = domain.EventFormatOnline
		}
	}

	event := &domain.Event{
		ID:                   uuid.New().String(),
		Name:                 input.Name,
		Description:          input.Description,
		AuthorID:             input.AuthorID,
		OrganizerID:          input.OrganizerID,
		CategoryID:           input.CategoryID,
		LocationID:           input.LocationID,
		PubDate:              pubDate,
		EventStartDate:       input.EventStartDate,
		EventEndDate:         input.EventEndDate,
		IsOnline:             input.IsOnline,
		MeetingLink:          input.MeetingLink,
		IsPublished:          input.IsPublished,
		MaxParticipants:      input.MaxParticipants,
		CurrentParticipants:  0,
		RegistrationDeadline: input.RegistrationDeadline,
		Format:               format,
		Status:               domain.EventStatusPlanned,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err := validateEvent(event); err != nil {
		return nil, err
	}

	if err := s.events.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.logger.Info("event created",
		logger.String("event_id", event.ID),
		logger.String("organizer_id", event.OrganizerID),
	)

	return event, nil
}

// Update merges the patch into the stored event and re-validates the result
// with the same rule set as Create. Capacity cannot drop below the current
// participant count; the repository re-checks that condition at write time.
func (s *EventService) Update(ctx context.Context, id string, patch domain.UpdateEventInput) (*domain.Event, error) {
	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	applyPatch(event, patch)
	event.UpdatedAt = time.Now().UTC()

	if err = validateEvent(event); err != nil {
		return nil, err
	}

	if err = s.events.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	s.logger.Info("event updated",
		logger.String("event_id", event.ID),
	)

	return event, nil
}

func (s *EventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return s.events.GetByID(ctx, id)
}

func (s *EventService) List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	return s.events.List(ctx, filter)
}

// TransitionStatus enforces the lifecycle state machine. Cancelling an event
// cascades to its active registrations and notifies the registrants.
func (s *EventService) TransitionStatus(ctx context.Context, id string, newStatus domain.EventStatus) (*domain.Event, error) {
	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	if !domain.CanTransition(event.Status, newStatus) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, event.Status, newStatus)
	}

	var active []*domain.Registration
	if newStatus == domain.EventStatusCancelled {
		active, err = s.registrations.ListByEvent(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("list registrations: %w", err)
		}
	}

	if err = s.events.UpdateStatus(ctx, id, event.Status, newStatus); err != nil {
		return nil, fmt.Errorf("transition status: %w", err)
	}

	s.logger.Info("event status changed",
		logger.String("event_id", id),
		logger.String("from", string(event.Status)),
		logger.String("to", string(newStatus)),
	)

	event.Status = newStatus
	if newStatus == domain.EventStatusCancelled {
		event.CurrentParticipants = 0
		go s.notifyEventCancelled(context.WithoutCancel(ctx), event, active)
	}

	return event, nil
}

// AdvanceSchedule moves events forward along the wall clock: planned events
// past their start become ongoing, open events past their end completed.
func (s *EventService) AdvanceSchedule(ctx context.Context, now time.Time) ([]*domain.Event, error) {
	changed, err := s.events.AdvanceStatuses(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("advance statuses: %w", err)
	}

	for _, e := range changed {
		s.logger.Info("event status advanced",
			logger.String("event_id", e.ID),
			logger.String("status", string(e.Status)),
		)
	}

	return changed, nil
}

func (s *EventService) notifyEventCancelled(ctx context.Context, event *domain.Event, regs []*domain.Registration) {
	for _, r := range regs {
		user, err := s.users.GetByID(ctx, r.UserID)
		if err != nil {
			s.logger.Error("failed to get user for cancel notification",
				logger.String("user_id", r.UserID),
			)
			continue
		}

		s.notifier.NotifyEventCancelled(ctx, user, event)
	}
}

// validateEvent checks the cross-field invariants in a fixed order and stops
// at the first violation: dates, online/location consistency, capacity,
// registration deadline.
func validateEvent(e *domain.Event) error {
	if e.Name == "" {
		return &domain.InvalidEventError{Field: "name", Reason: "is required"}
	}

	if e.EventEndDate.Before(e.EventStartDate) {
		return &domain.InvalidEventError{Field: "event_end_date", Reason: "must not be before event_start_date"}
	}
	if e.PubDate.After(e.EventStartDate) {
		return &domain.InvalidEventError{Field: "pub_date", Reason: "must not be after event_start_date"}
	}

	if e.IsOnline && e.MeetingLink == "" {
		return &domain.InvalidEventError{Field: "meeting_link", Reason: "is required for online events"}
	}
	if !e.IsOnline && e.MeetingLink != "" {
		return &domain.InvalidEventError{Field: "meeting_link", Reason: "must be empty for offline events"}
	}
	if !e.IsOnline && e.LocationID == nil {
		return &domain.InvalidEventError{Field: "location_id", Reason: "is required for offline events"}
	}

	if e.MaxParticipants <= 0 {
		return &domain.InvalidEventError{Field: "max_participants", Reason: "must be positive"}
	}
	if e.CurrentParticipants < 0 {
		return &domain.InvalidEventError{Field: "current_participants", Reason: "must not be negative"}
	}
	if e.CurrentParticipants > e.MaxParticipants {
		return &domain.InvalidEventError{Field: "max_participants", Reason: "cannot be lower than current_participants"}
	}

	if e.RegistrationDeadline != nil {
		if e.RegistrationDeadline.After(e.EventStartDate) {
			return &domain.InvalidEventError{Field: "registration_deadline", Reason: "must not be after event_start_date"}
		}
		if e.RegistrationDeadline.Before(e.PubDate) {
			return &domain.InvalidEventError{Field: "registration_deadline", Reason: "must not be before pub_date"}
		}
	}

	return nil
}

func applyPatch(e *domain.Event, patch domain.UpdateEventInput) {
	if patch.Name != nil {
		e.Name = *patch.Name
	}
	if patch.Description != nil {
		e.Description = *patch.Description
	}
	if patch.CategoryID != nil {
		e.CategoryID = *patch.CategoryID
	}
	if patch.LocationID != nil {
		e.LocationID = patch.LocationID
	}
	if patch.EventStartDate != nil {
		e.EventStartDate = *patch.EventStartDate
	}
	if patch.EventEndDate != nil {
		e.EventEndDate = *patch.EventEndDate
	}
	if patch.IsOnline != nil {
		e.IsOnline = *patch.IsOnline
	}
	if patch.MeetingLink != nil {
		e.MeetingLink = *patch.MeetingLink
	}
	if patch.IsPublished != nil {
		e.IsPublished = *patch.IsPublished
	}
	if patch.MaxParticipants != nil {
		e.MaxParticipants = *patch.MaxParticipants
	}
	if patch.RegistrationDeadline != nil {
		e.RegistrationDeadline = patch.RegistrationDeadline
	}
	if patch.Format != nil {
		e.Format = *patch.Format
	}
}
