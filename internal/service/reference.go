package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SokolovG/DevEvents/internal/domain"
	"github.com/SokolovG/DevEvents/internal/service/ports"
)

type ReferenceService struct {
	repo ports.ReferenceRepo
}

func NewReferenceService(repo ports.ReferenceRepo) *ReferenceService {
	return &ReferenceService{repo: repo}
}

func (s *ReferenceService) CreateCategory(ctx context.Context, input domain.CreateCategoryInput) (*domain.Category, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Slug == "" {
		return nil, fmt.Errorf("%w: slug is required", domain.ErrValidation)
	}

	category := &domain.Category{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Slug:        input.Slug,
		Description: input.Description,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.CreateCategory(ctx, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}

	return category, nil
}

func (s *ReferenceService) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *ReferenceService) CreateLocation(ctx context.Context, input domain.CreateLocationInput) (*domain.Location, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.City == "" || input.Country == "" {
		return nil, fmt.Errorf("%w: city and country are required", domain.ErrValidation)
	}

	location := &domain.Location{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Address:   input.Address,
		City:      input.City,
		Country:   input.Country,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.CreateLocation(ctx, location); err != nil {
		return nil, fmt.Errorf("create location: %w", err)
	}

	return location, nil
}

func (s *ReferenceService) ListLocations(ctx context.Context) ([]*domain.Location, error) {
	return s.repo.ListLocations(ctx)
}
