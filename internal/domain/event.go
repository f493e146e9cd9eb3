package domain

import "time"

type EventStatus string

const (
	EventStatusPlanned   EventStatus = "planned"
	EventStatusOngoing   EventStatus = "ongoing"
	EventStatusCompleted EventStatus = "completed"
	EventStatusCancelled EventStatus = "cancelled"
)

type EventFormat string

const (
	EventFormatOffline EventFormat = "offline"
	EventFormatOnline  EventFormat = "online"
	EventFormatHybrid  EventFormat = "hybrid"
)

// statusTransitions holds the allowed lifecycle moves. Completed and
// cancelled are terminal.
var statusTransitions = map[EventStatus][]EventStatus{
	EventStatusPlanned: {EventStatusOngoing, EventStatusCancelled},
	EventStatusOngoing: {EventStatusCompleted, EventStatusCancelled},
}

func CanTransition(from, to EventStatus) bool {
	for _, s := range statusTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

type Event struct {
	ID                   string      `json:"id"`
	Name                 string      `json:"name"`
	Description          string      `json:"description"`
	AuthorID             string      `json:"author_id"`
	OrganizerID          string      `json:"organizer_id"`
	CategoryID           string      `json:"category_id"`
	LocationID           *string     `json:"location_id,omitempty"`
	PubDate              time.Time   `json:"pub_date"`
	EventStartDate       time.Time   `json:"event_start_date"`
	EventEndDate         time.Time   `json:"event_end_date"`
	IsOnline             bool        `json:"is_online"`
	MeetingLink          string      `json:"meeting_link,omitempty"`
	IsPublished          bool        `json:"is_published"`
	MaxParticipants      int         `json:"max_participants"`
	CurrentParticipants  int         `json:"current_participants"`
	RegistrationDeadline *time.Time  `json:"registration_deadline,omitempty"`
	Format               EventFormat `json:"format"`
	Status               EventStatus `json:"status"`
	CreatedAt            time.Time   `json:"created_at"`
	UpdatedAt            time.Time   `json:"updated_at"`
}

type CreateEventInput struct {
	Name                 string
	Description          string
	AuthorID             string
	OrganizerID          string
	CategoryID           string
	LocationID           *string
	PubDate              *time.Time
	EventStartDate       time.Time
	EventEndDate         time.Time
	IsOnline             bool
	MeetingLink          string
	IsPublished          bool
	MaxParticipants      int
	RegistrationDeadline *time.Time
	Format               EventFormat
}

// UpdateEventInput is a partial patch; nil fields keep the stored value.
type UpdateEventInput struct {
	Name                 *string
	Description          *string
	CategoryID           *string
	LocationID           *string
	EventStartDate       *time.Time
	EventEndDate         *time.Time
	IsOnline             *bool
	MeetingLink          *string
	IsPublished          *bool
	MaxParticipants      *int
	RegistrationDeadline *time.Time
	Format               *EventFormat
}

type EventFilter struct {
	CategoryID *string
	Online     *bool
	From       *time.Time
	To         *time.Time
}
