package dto

import (
	"time"

	"github.com/SokolovG/DevEvents/internal/domain"
)

type UserResponse struct {
	ID         string  `json:"id"`
	Email      string  `json:"email"`
	Username   *string `json:"username,omitempty"`
	IsActive   bool    `json:"is_active"`
	IsVerified bool    `json:"is_verified"`
	CreatedAt  string  `json:"created_at"`
}

type EventResponse struct {
	ID                   string  `json:"id"`
	Name                 string  `json:"name"`
	Description          string  `json:"description"`
	AuthorID             string  `json:"author_id"`
	OrganizerID          string  `json:"organizer_id"`
	CategoryID           string  `json:"category_id"`
	LocationID           *string `json:"location_id,omitempty"`
	PubDate              string  `json:"pub_date"`
	EventStartDate       string  `json:"event_start_date"`
	EventEndDate         string  `json:"event_end_date"`
	IsOnline             bool    `json:"is_online"`
	MeetingLink          string  `json:"meeting_link,omitempty"`
	IsPublished          bool    `json:"is_published"`
	MaxParticipants      int     `json:"max_participants"`
	CurrentParticipants  int     `json:"current_participants"`
	RegistrationDeadline *string `json:"registration_deadline,omitempty"`
	Format               string  `json:"format"`
	Status               string  `json:"status"`
	CreatedAt            string  `json:"created_at"`
}

type RegistrationResponse struct {
	ID        string `json:"id"`
	EventID   string `json:"event_id"`
	UserID    string `json:"user_id"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

type CommentResponse struct {
	ID        string `json:"id"`
	EventID   string `json:"event_id"`
	AuthorID  string `json:"author_id"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
}

type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}

type LocationResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	City    string `json:"city"`
	Country string `json:"country"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		Username:   u.Username,
		IsActive:   u.IsActive,
		IsVerified: u.IsVerified,
		CreatedAt:  u.CreatedAt.Format(time.RFC3339),
	}
}

func ToEventResponse(e *domain.Event) EventResponse {
	var deadline *string
	if e.RegistrationDeadline != nil {
		d := e.RegistrationDeadline.Format(time.RFC3339)
		deadline = &d
	}

	return EventResponse{
		ID:                   e.ID,
		Name:                 e.Name,
		Description:          e.Description,
		AuthorID:             e.AuthorID,
		OrganizerID:          e.OrganizerID,
		CategoryID:           e.CategoryID,
		LocationID:           e.LocationID,
		PubDate:              e.PubDate.Format(time.RFC3339),
		EventStartDate:       e.EventStartDate.Format(time.RFC3339),
		EventEndDate:         e.EventEndDate.Format(time.RFC3339),
		IsOnline:             e.IsOnline,
		MeetingLink:          e.MeetingLink,
		IsPublished:          e.IsPublished,
		MaxParticipants:      e.MaxParticipants,
		CurrentParticipants:  e.CurrentParticipants,
		RegistrationDeadline: deadline,
		Format:               string(e.Format),
		Status:               string(e.Status),
		CreatedAt:            e.CreatedAt.Format(time.RFC3339),
	}
}

func ToRegistrationResponse(r *domain.Registration) RegistrationResponse {
	return RegistrationResponse{
		ID:        r.ID,
		EventID:   r.EventID,
		UserID:    r.UserID,
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
	}
}

func ToCommentResponse(c *domain.Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		EventID:   c.EventID,
		AuthorID:  c.AuthorID,
		Text:      c.Text,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}

func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
	}
}

func ToLocationResponse(l *domain.Location) LocationResponse {
	return LocationResponse{
		ID:      l.ID,
		Name:    l.Name,
		Address: l.Address,
		City:    l.City,
		Country: l.Country,
	}
}
