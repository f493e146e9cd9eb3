package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/SokolovG/DevEvents/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type RegistrationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRegistrationRepo(db *dbpg.DB) *RegistrationRepository {
	return &RegistrationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Register runs the admission as one transaction. The conditional UPDATE
// takes the spot only while the event is open, the deadline has not passed
// and there is capacity left; a failed INSERT (partial unique index on
// active registrations) rolls the increment back with the transaction.
func (r *RegistrationRepository) Register(ctx context.Context, reg *domain.Registration, now time.Time) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin tx: %v", domain.ErrStoreUnavailable, err)
	}
	defer tx.Rollback()

	admit := `UPDATE events
			  SET current_participants = current_participants + 1, updated_at=now()
			  WHERE id = $1
			    AND is_published
			    AND status = ANY(ARRAY[$2, $3])
			    AND (registration_deadline IS NULL OR registration_deadline >= $4)
			    AND current_participants < max_participants`
	res, err := tx.ExecContext(
		ctx, admit, reg.EventID,
		domain.EventStatusPlanned, domain.EventStatusOngoing, now,
	)
	if err != nil {
		return fmt.Errorf("%w: admit registration: %v", domain.ErrStoreUnavailable, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: admit rows affected: %v", domain.ErrStoreUnavailable, err)
	}
	if rows == 0 {
		return r.classifyRejection(ctx, tx, reg.EventID, now)
	}

	insert := `INSERT INTO event_registrations (id, event_id, user_id, status, created_at, updated_at)
			   VALUES ($1, $2, $3, $4, $5, $6)`
	_, err = tx.ExecContext(
		ctx, insert, reg.ID, reg.EventID,
		reg.UserID, reg.Status, reg.CreatedAt, reg.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrAlreadyRegistered
		}
		return fmt.Errorf("%w: insert registration: %v", domain.ErrStoreUnavailable, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %v", domain.ErrStoreUnavailable, err)
	}

	return nil
}

// classifyRejection determines why the conditional admit matched no row, in
// the same order the admission checks run.
func (r *RegistrationRepository) classifyRejection(ctx context.Context, tx *sql.Tx, eventID string, now time.Time) error {
	var (
		isPublished bool
		status      domain.EventStatus
		deadline    *time.Time
		current     int
		max         int
	)
	query := `SELECT is_published, status, registration_deadline, current_participants, max_participants
			  FROM events
			  WHERE id=$1`
	err := tx.QueryRowContext(ctx, query, eventID).Scan(&isPublished, &status, &deadline, &current, &max)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("%w: classify rejection: %v", domain.ErrStoreUnavailable, err)
	}

	if !isPublished || (status != domain.EventStatusPlanned && status != domain.EventStatusOngoing) {
		return domain.ErrEventNotOpen
	}
	if deadline != nil && now.After(*deadline) {
		return domain.ErrRegistrationClosed
	}
	if current >= max {
		return domain.ErrEventFull
	}

	return domain.ErrEventNotOpen
}

func (r *RegistrationRepository) Cancel(ctx context.Context, eventID, userID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin tx: %v", domain.ErrStoreUnavailable, err)
	}
	defer tx.Rollback()

	query := `UPDATE event_registrations
			  SET status=$3, updated_at=now()
			  WHERE event_id=$1 AND user_id=$2 AND status <> $3`
	res, err := tx.ExecContext(ctx, query, eventID, userID, domain.RegistrationStatusCancelled)
	if err != nil {
		return fmt.Errorf("%w: cancel registration: %v", domain.ErrStoreUnavailable, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: cancel rows affected: %v", domain.ErrStoreUnavailable, err)
	}
	if rows == 0 {
		return domain.ErrRegistrationNotFound
	}

	release := `UPDATE events
				SET current_participants = GREATEST(current_participants - 1, 0), updated_at=now()
				WHERE id=$1`
	if _, err = tx.ExecContext(ctx, release, eventID); err != nil {
		return fmt.Errorf("%w: release spot: %v", domain.ErrStoreUnavailable, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %v", domain.ErrStoreUnavailable, err)
	}

	return nil
}

func (r *RegistrationRepository) GetActive(ctx context.Context, eventID, userID string) (*domain.Registration, error) {
	query := `SELECT id, event_id, user_id, status, created_at, updated_at
			  FROM event_registrations
			  WHERE event_id=$1 AND user_id=$2 AND status = ANY($3)
			  ORDER BY created_at DESC
			  LIMIT 1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID, userID, pq.Array(domain.ActiveRegistrationStatuses))
	if err != nil {
		return nil, fmt.Errorf("%w: get registration: %v", domain.ErrStoreUnavailable, err)
	}

	var reg domain.Registration
	if err = row.Scan(&reg.ID, &reg.EventID, &reg.UserID, &reg.Status, &reg.CreatedAt, &reg.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("%w: scan registration: %v", domain.ErrStoreUnavailable, err)
	}

	return &reg, nil
}

func (r *RegistrationRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.Registration, error) {
	query := `SELECT id, event_id, user_id, status, created_at, updated_at
			  FROM event_registrations
			  WHERE event_id=$1 AND status = ANY($2)
			  ORDER BY created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID, pq.Array(domain.ActiveRegistrationStatuses))
	if err != nil {
		return nil, fmt.Errorf("%w: list registrations by event: %v", domain.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	return scanRegistrations(rows)
}

func (r *RegistrationRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Registration, error) {
	query := `SELECT id, event_id, user_id, status, created_at, updated_at
			  FROM event_registrations
			  WHERE user_id=$1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: list registrations by user: %v", domain.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	return scanRegistrations(rows)
}

func scanRegistrations(rows *sql.Rows) ([]*domain.Registration, error) {
	var res []*domain.Registration
	for rows.Next() {
		var reg domain.Registration
		if err := rows.Scan(&reg.ID, &reg.EventID, &reg.UserID, &reg.Status, &reg.CreatedAt, &reg.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: scan registration: %v", domain.ErrStoreUnavailable, err)
		}
		res = append(res, &reg)
	}

	return res, rows.Err()
}
