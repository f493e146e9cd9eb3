package dto

type RegisterUserRequest struct {
	Email          string  `json:"email" binding:"required,email"`
	Password       string  `json:"password" binding:"required,min=8"`
	Username       *string `json:"username"`
	TelegramChatID *int64  `json:"telegram_chat_id"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreateEventRequest struct {
	Name                 string  `json:"name" binding:"required"`
	Description          string  `json:"description"`
	AuthorID             string  `json:"author_id" binding:"required,uuid"`
	OrganizerID          string  `json:"organizer_id" binding:"required,uuid"`
	CategoryID           string  `json:"category_id" binding:"required,uuid"`
	LocationID           *string `json:"location_id" binding:"omitempty,uuid"`
	PubDate              *string `json:"pub_date"`
	EventStartDate       string  `json:"event_start_date" binding:"required"`
	EventEndDate         string  `json:"event_end_date" binding:"required"`
	IsOnline             bool    `json:"is_online"`
	MeetingLink          string  `json:"meeting_link"`
	IsPublished          bool    `json:"is_published"`
	MaxParticipants      int     `json:"max_participants" binding:"required,gt=0"`
	RegistrationDeadline *string `json:"registration_deadline"`
	Format               string  `json:"format" binding:"omitempty,oneof=offline online hybrid"`
}

type UpdateEventRequest struct {
	Name                 *string `json:"name"`
	Description          *string `json:"description"`
	CategoryID           *string `json:"category_id" binding:"omitempty,uuid"`
	LocationID           *string `json:"location_id" binding:"omitempty,uuid"`
	EventStartDate       *string `json:"event_start_date"`
	EventEndDate         *string `json:"event_end_date"`
	IsOnline             *bool   `json:"is_online"`
	MeetingLink          *string `json:"meeting_link"`
	IsPublished          *bool   `json:"is_published"`
	MaxParticipants      *int    `json:"max_participants" binding:"omitempty,gt=0"`
	RegistrationDeadline *string `json:"registration_deadline"`
	Format               *string `json:"format" binding:"omitempty,oneof=offline online hybrid"`
}

type TransitionStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=planned ongoing completed cancelled"`
}

type RegisterForEventRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

type CancelRegistrationRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

type AddCommentRequest struct {
	AuthorID string `json:"author_id" binding:"required,uuid"`
	Text     string `json:"text" binding:"required"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug" binding:"required"`
	Description string `json:"description"`
}

type CreateLocationRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	City    string `json:"city" binding:"required"`
	Country string `json:"country" binding:"required"`
}
