package ports

import (
	"context"

	"github.com/SokolovG/DevEvents/internal/domain"
)

type ReferenceRepo interface {
	CreateCategory(ctx context.Context, c *domain.Category) error
	ListCategories(ctx context.Context) ([]*domain.Category, error)
	CreateLocation(ctx context.Context, l *domain.Location) error
	ListLocations(ctx context.Context) ([]*domain.Location, error)
}
