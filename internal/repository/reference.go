package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/SokolovG/DevEvents/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ReferenceRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReferenceRepo(db *dbpg.DB) *ReferenceRepository {
	return &ReferenceRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ReferenceRepository) CreateCategory(ctx context.Context, c *domain.Category) error {
	query := `INSERT INTO categories (id, name, slug, description, created_at)
			  VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, c.ID, c.Name, c.Slug, c.Description, c.CreatedAt)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrCategorySlugTaken
		}
		return fmt.Errorf("%w: insert category: %v", domain.ErrStoreUnavailable, err)
	}

	return nil
}

func (r *ReferenceRepository) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	query := `SELECT id, name, slug, description, created_at
			  FROM categories
			  ORDER BY name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("%w: list categories: %v", domain.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var res []*domain.Category
	for rows.Next() {
		var c domain.Category
		if err = rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: scan category: %v", domain.ErrStoreUnavailable, err)
		}
		res = append(res, &c)
	}

	return res, rows.Err()
}

func (r *ReferenceRepository) CreateLocation(ctx context.Context, l *domain.Location) error {
	query := `INSERT INTO locations (id, name, address, city, country, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, l.ID, l.Name, l.Address, l.City, l.Country, l.CreatedAt)
	if err != nil {
		return fmt.Errorf("%w: insert location: %v", domain.ErrStoreUnavailable, err)
	}

	return nil
}

func (r *ReferenceRepository) ListLocations(ctx context.Context) ([]*domain.Location, error) {
	query := `SELECT id, name, address, city, country, created_at
			  FROM locations
			  ORDER BY name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("%w: list locations: %v", domain.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var res []*domain.Location
	for rows.Next() {
		var l domain.Location
		if err = rows.Scan(&l.ID, &l.Name, &l.Address, &l.City, &l.Country, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: scan location: %v", domain.ErrStoreUnavailable, err)
		}
		res = append(res, &l)
	}

	return res, rows.Err()
}
