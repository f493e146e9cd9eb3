package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/SokolovG/DevEvents/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type CommentRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCommentRepo(db *dbpg.DB) *CommentRepository {
	return &CommentRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *CommentRepository) Append(ctx context.Context, c *domain.Comment) error {
	query := `INSERT INTO comments (id, event_id, author_id, text, created_at)
			  VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, c.ID, c.EventID, c.AuthorID, c.Text, c.CreatedAt)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			if strings.Contains(pgErr.Constraint, "author") {
				return domain.ErrUserNotFound
			}
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("%w: insert comment: %v", domain.ErrStoreUnavailable, err)
	}

	return nil
}

func (r *CommentRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.Comment, error) {
	query := `SELECT id, event_id, author_id, text, created_at
			  FROM comments
			  WHERE event_id=$1
			  ORDER BY created_at, id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("%w: list comments: %v", domain.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var res []*domain.Comment
	for rows.Next() {
		var c domain.Comment
		if err = rows.Scan(&c.ID, &c.EventID, &c.AuthorID, &c.Text, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: scan comment: %v", domain.ErrStoreUnavailable, err)
		}
		res = append(res, &c)
	}

	return res, rows.Err()
}
