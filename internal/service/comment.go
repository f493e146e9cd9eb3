package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SokolovG/DevEvents/internal/domain"
	"github.com/SokolovG/DevEvents/internal/service/ports"
)

type CommentService struct {
	comments ports.CommentRepo
	events   ports.EventRepo
}

func NewCommentService(comments ports.CommentRepo, events ports.EventRepo) *CommentService {
	return &CommentService{comments: comments, events: events}
}

func (s *CommentService) Add(ctx context.Context, eventID, authorID, text string) (*domain.Comment, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: text is required", domain.ErrValidation)
	}

	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}

	comment := &domain.Comment{
		ID:        uuid.New().String(),
		EventID:   eventID,
		AuthorID:  authorID,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.comments.Append(ctx, comment); err != nil {
		return nil, fmt.Errorf("append comment: %w", err)
	}

	return comment, nil
}

func (s *CommentService) ListByEvent(ctx context.Context, eventID string) ([]*domain.Comment, error) {
	return s.comments.ListByEvent(ctx, eventID)
}
