package domain

import "time"

type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	Username       *string   `json:"username,omitempty"`
	PasswordHash   string    `json:"-"`
	IsActive       bool      `json:"is_active"`
	IsVerified     bool      `json:"is_verified"`
	TelegramChatID *int64    `json:"telegram_chat_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type RegisterUserInput struct {
	Email          string
	PasswordHash   string
	Username       *string
	TelegramChatID *int64
}
