package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SokolovG/DevEvents/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const eventColumns = `id, name, description, author_id, organizer_id, category_id, location_id,
       pub_date, event_start_date, event_end_date, is_online, meeting_link, is_published,
       max_participants, current_participants, registration_deadline, format, status,
       created_at, updated_at`

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (` + eventColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Name, e.Description, e.AuthorID, e.OrganizerID, e.CategoryID, e.LocationID,
		e.PubDate, e.EventStartDate, e.EventEndDate, e.IsOnline, e.MeetingLink, e.IsPublished,
		e.MaxParticipants, e.CurrentParticipants, e.RegistrationDeadline, e.Format, e.Status,
		e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: insert event: %v", domain.ErrStoreUnavailable, err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("%w: get event: %v", domain.ErrStoreUnavailable, err)
	}

	var e domain.Event
	if err = scanEventRow(row, &e); err != nil {
		return nil, err
	}

	return &e, nil
}

func (r *EventRepository) List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	var (
		conds []string
		args  []any
	)

	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		conds = append(conds, "category_id = $"+strconv.Itoa(len(args)))
	}
	if filter.Online != nil {
		args = append(args, *filter.Online)
		conds = append(conds, "is_online = $"+strconv.Itoa(len(args)))
	}
	// Time-window filter: events whose [start, end] overlaps [from, to].
	if filter.From != nil {
		args = append(args, *filter.From)
		conds = append(conds, "event_end_date >= $"+strconv.Itoa(len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		conds = append(conds, "event_start_date <= $"+strconv.Itoa(len(args)))
	}

	query := `SELECT ` + eventColumns + ` FROM events`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY event_start_date, id"

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: list events: %v", domain.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		var e domain.Event
		if err = scanEventRow(rows, &e); err != nil {
			return nil, err
		}
		res = append(res, &e)
	}

	return res, rows.Err()
}

// Update writes the merged row. The capacity condition is re-checked at write
// time so a concurrent registration cannot slip under a lowered limit.
func (r *EventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `UPDATE events
			  SET name=$2, description=$3, category_id=$4, location_id=$5,
			      event_start_date=$6, event_end_date=$7, is_online=$8, meeting_link=$9,
			      is_published=$10, max_participants=$11, registration_deadline=$12,
			      format=$13, updated_at=$14
			  WHERE id=$1 AND current_participants <= $11`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Name, e.Description, e.CategoryID, e.LocationID,
		e.EventStartDate, e.EventEndDate, e.IsOnline, e.MeetingLink,
		e.IsPublished, e.MaxParticipants, e.RegistrationDeadline,
		e.Format, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: update event: %v", domain.ErrStoreUnavailable, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: update event rows affected: %v", domain.ErrStoreUnavailable, err)
	}
	if rows == 0 {
		if _, err = r.GetByID(ctx, e.ID); err != nil {
			return err
		}
		return &domain.InvalidEventError{Field: "max_participants", Reason: "cannot be lower than current_participants"}
	}

	return nil
}

// UpdateStatus applies a transition only if the event is still in the
// expected status. Cancelling cascades to active registrations and resets
// the participant counter, all in one transaction.
func (r *EventRepository) UpdateStatus(ctx context.Context, id string, from, to domain.EventStatus) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin tx: %v", domain.ErrStoreUnavailable, err)
	}
	defer tx.Rollback()

	query := `UPDATE events
			  SET status=$3, updated_at=now()
			  WHERE id=$1 AND status=$2`
	res, err := tx.ExecContext(ctx, query, id, from, to)
	if err != nil {
		return fmt.Errorf("%w: update status: %v", domain.ErrStoreUnavailable, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: status rows affected: %v", domain.ErrStoreUnavailable, err)
	}
	if rows == 0 {
		var current domain.EventStatus
		checkQuery := `SELECT status FROM events WHERE id=$1`
		if scanErr := tx.QueryRowContext(ctx, checkQuery, id).Scan(&current); scanErr != nil {
			if errors.Is(scanErr, sql.ErrNoRows) {
				return domain.ErrEventNotFound
			}
			return fmt.Errorf("%w: check status: %v", domain.ErrStoreUnavailable, scanErr)
		}
		return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, current, to)
	}

	if to == domain.EventStatusCancelled {
		cascade := `UPDATE event_registrations
					SET status=$2, updated_at=now()
					WHERE event_id=$1 AND status <> $2`
		if _, err = tx.ExecContext(ctx, cascade, id, domain.RegistrationStatusCancelled); err != nil {
			return fmt.Errorf("%w: cascade registrations: %v", domain.ErrStoreUnavailable, err)
		}

		reset := `UPDATE events SET current_participants=0 WHERE id=$1`
		if _, err = tx.ExecContext(ctx, reset, id); err != nil {
			return fmt.Errorf("%w: reset participants: %v", domain.ErrStoreUnavailable, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %v", domain.ErrStoreUnavailable, err)
	}

	return nil
}

func (r *EventRepository) AdvanceStatuses(ctx context.Context, now time.Time) ([]*domain.Event, error) {
	var changed []*domain.Event

	start := `UPDATE events
			  SET status=$2, updated_at=now()
			  WHERE status=$1 AND event_start_date <= $3 AND event_end_date > $3
			  RETURNING id, name, status`
	if err := r.collectTransitions(ctx, &changed, start,
		domain.EventStatusPlanned, domain.EventStatusOngoing, now); err != nil {
		return nil, err
	}

	finish := `UPDATE events
			   SET status=$3, updated_at=now()
			   WHERE status = ANY(ARRAY[$1, $2]) AND event_end_date <= $4
			   RETURNING id, name, status`
	if err := r.collectTransitions(ctx, &changed, finish,
		domain.EventStatusPlanned, domain.EventStatusOngoing, domain.EventStatusCompleted, now); err != nil {
		return nil, err
	}

	return changed, nil
}

func (r *EventRepository) collectTransitions(ctx context.Context, dst *[]*domain.Event, query string, args ...any) error {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return fmt.Errorf("%w: advance statuses: %v", domain.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	for rows.Next() {
		var e domain.Event
		if err = rows.Scan(&e.ID, &e.Name, &e.Status); err != nil {
			return fmt.Errorf("%w: scan transition: %v", domain.ErrStoreUnavailable, err)
		}
		*dst = append(*dst, &e)
	}

	return rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEventRow(row rowScanner, e *domain.Event) error {
	err := row.Scan(
		&e.ID, &e.Name, &e.Description, &e.AuthorID, &e.OrganizerID, &e.CategoryID, &e.LocationID,
		&e.PubDate, &e.EventStartDate, &e.EventEndDate, &e.IsOnline, &e.MeetingLink, &e.IsPublished,
		&e.MaxParticipants, &e.CurrentParticipants, &e.RegistrationDeadline, &e.Format, &e.Status,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("%w: scan event: %v", domain.ErrStoreUnavailable, err)
	}

	return nil
}
