package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/SokolovG/DevEvents/internal/domain"
	"github.com/SokolovG/DevEvents/internal/service/ports/mocks"
)

func TestReferenceService_CreateCategory_Success(t *testing.T) {
	repo := mocks.NewMockReferenceRepo(t)
	svc := NewReferenceService(repo)

	repo.EXPECT().CreateCategory(mock.Anything, mock.Anything).Return(nil)

	category, err := svc.CreateCategory(context.Background(), domain.CreateCategoryInput{
		Name: "Conferences",
		Slug: "conferences",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, category.ID)
	assert.Equal(t, "conferences", category.Slug)
}

func TestReferenceService_CreateCategory_MissingSlug(t *testing.T) {
	repo := mocks.NewMockReferenceRepo(t)
	svc := NewReferenceService(repo)

	_, err := svc.CreateCategory(context.Background(), domain.CreateCategoryInput{Name: "Conferences"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReferenceService_CreateCategory_SlugTaken(t *testing.T) {
	repo := mocks.NewMockReferenceRepo(t)
	svc := NewReferenceService(repo)

	repo.EXPECT().CreateCategory(mock.Anything, mock.Anything).Return(domain.ErrCategorySlugTaken)

	_, err := svc.CreateCategory(context.Background(), domain.CreateCategoryInput{
		Name: "Conferences",
		Slug: "conferences",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCategorySlugTaken)
}

func TestReferenceService_CreateLocation_Success(t *testing.T) {
	repo := mocks.NewMockReferenceRepo(t)
	svc := NewReferenceService(repo)

	repo.EXPECT().CreateLocation(mock.Anything, mock.Anything).Return(nil)

	location, err := svc.CreateLocation(context.Background(), domain.CreateLocationInput{
		Name:    "Tech Hub",
		City:    "Berlin",
		Country: "Germany",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, location.ID)
	assert.Equal(t, "Berlin", location.City)
}

func TestReferenceService_CreateLocation_MissingCity(t *testing.T) {
	repo := mocks.NewMockReferenceRepo(t)
	svc := NewReferenceService(repo)

	_, err := svc.CreateLocation(context.Background(), domain.CreateLocationInput{
		Name:    "Tech Hub",
		Country: "Germany",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReferenceService_ListCategories_Passthrough(t *testing.T) {
	repo := mocks.NewMockReferenceRepo(t)
	svc := NewReferenceService(repo)

	repo.EXPECT().ListCategories(mock.Anything).Return([]*domain.Category{{ID: "c1"}}, nil)

	categories, err := svc.ListCategories(context.Background())

	require.NoError(t, err)
	assert.Len(t, categories, 1)
}

func TestReferenceService_ListLocations_Passthrough(t *testing.T) {
	repo := mocks.NewMockReferenceRepo(t)
	svc := NewReferenceService(repo)

	repo.EXPECT().ListLocations(mock.Anything).Return([]*domain.Location{{ID: "l1"}}, nil)

	locations, err := svc.ListLocations(context.Background())

	require.NoError(t, err)
	assert.Len(t, locations, 1)
}
