package ports

import (
	"context"

	"github.com/SokolovG/DevEvents/internal/domain"
)

type CommentRepo interface {
	Append(ctx context.Context, c *domain.Comment) error
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Comment, error)
}
