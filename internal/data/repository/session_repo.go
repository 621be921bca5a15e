package repository

import (
	"context"
	"fmt"
	"time"

	"ticket-office/internal/data/entity"
	"ticket-office/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// SessionFilter narrows the info query. Nil fields are ignored.
type SessionFilter struct {
	HallID    *uuid.UUID
	StartFrom *time.Time
	StartTo   *time.Time
}

type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error)
	FindByDate(ctx context.Context, date time.Time, orderBy string) ([]*entity.Session, error)
	FindByDateFiltered(ctx context.Context, date time.Time, filter SessionFilter) ([]*entity.Session, error)
	ExistsOverlapping(ctx context.Context, hallID uuid.UUID, date, start, end time.Time) (bool, error)
	Update(ctx context.Context, session *entity.Session) error
}

type sessionRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSessionRepository(db database.PgxIface, log *zap.Logger) SessionRepository {
	return &sessionRepository{
		db:  db,
		log: log.With(zap.String("repository", "session")),
	}
}

// orderColumns whitelists the sortable columns for session listing.
var orderColumns = map[string]string{
	"start_time":   "start_time",
	"end_time":     "end_time",
	"ticket_price": "ticket_price",
	"date":         "date",
}

func (r *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	query := `
		INSERT INTO sessions (id, hall_id, ticket_price, date, start_time, end_time, available_seats, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		session.ID,
		session.HallID,
		session.TicketPrice,
		session.Date,
		session.StartTime,
		session.EndTime,
		session.AvailableSeats,
		session.CreatedAt,
		session.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create session",
			zap.Error(err),
			zap.String("hall_id", session.HallID.String()),
		)
		return fmt.Errorf("create session in hall %s: %w", session.HallID.String(), err)
	}

	return nil
}

func (r *sessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	query := `
		SELECT id, hall_id, ticket_price, date, start_time, end_time, available_seats, created_at, updated_at
		FROM sessions
		WHERE id = $1
	`

	var session entity.Session
	err := r.db.QueryRow(ctx, query, id).Scan(
		&session.ID,
		&session.HallID,
		&session.TicketPrice,
		&session.Date,
		&session.StartTime,
		&session.EndTime,
		&session.AvailableSeats,
		&session.CreatedAt,
		&session.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find session by ID",
			zap.Error(err),
			zap.String("session_id", id.String()),
		)
		return nil, fmt.Errorf("find session by ID %s: %w", id.String(), err)
	}

	return &session, nil
}

func (r *sessionRepository) FindByDate(ctx context.Context, date time.Time, orderBy string) ([]*entity.Session, error) {
	column, ok := orderColumns[orderBy]
	if !ok {
		column = "start_time"
	}

	query := fmt.Sprintf(`
		SELECT id, hall_id, ticket_price, date, start_time, end_time, available_seats, created_at, updated_at
		FROM sessions
		WHERE date = $1
		ORDER BY %s
	`, column)

	rows, err := r.db.Query(ctx, query, date)
	if err != nil {
		r.log.Error("Failed to find sessions by date",
			zap.Error(err),
			zap.Time("date", date),
		)
		return nil, fmt.Errorf("find sessions by date %s: %w", date.Format("2006-01-02"), err)
	}
	defer rows.Close()

	return scanSessions(rows)
}

func (r *sessionRepository) FindByDateFiltered(ctx context.Context, date time.Time, filter SessionFilter) ([]*entity.Session, error) {
	query := `
		SELECT id, hall_id, ticket_price, date, start_time, end_time, available_seats, created_at, updated_at
		FROM sessions
		WHERE date = $1
	`
	args := []any{date}

	if filter.HallID != nil {
		args = append(args, *filter.HallID)
		query += fmt.Sprintf(" AND hall_id = $%d", len(args))
	}
	if filter.StartFrom != nil && filter.StartTo != nil {
		args = append(args, *filter.StartFrom)
		query += fmt.Sprintf(" AND start_time >= $%d", len(args))
		args = append(args, *filter.StartTo)
		query += fmt.Sprintf(" AND start_time <= $%d", len(args))
	}

	query += " ORDER BY start_time"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find sessions by filter",
			zap.Error(err),
			zap.Time("date", date),
		)
		return nil, fmt.Errorf("find sessions by filter: %w", err)
	}
	defer rows.Close()

	return scanSessions(rows)
}

// ExistsOverlapping reports whether any session in the hall on the given date
// starts or ends inside the inclusive [start, end] window.
func (r *sessionRepository) ExistsOverlapping(ctx context.Context, hallID uuid.UUID, date, start, end time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM sessions
			WHERE hall_id = $1 AND date = $2
			AND (start_time BETWEEN $3 AND $4 OR end_time BETWEEN $3 AND $4)
		)
	`

	var exists bool
	err := r.db.QueryRow(ctx, query, hallID, date, start, end).Scan(&exists)
	if err != nil {
		r.log.Error("Failed to check overlapping sessions",
			zap.Error(err),
			zap.String("hall_id", hallID.String()),
			zap.Time("date", date),
		)
		return false, fmt.Errorf("check overlapping sessions in hall %s: %w", hallID.String(), err)
	}

	return exists, nil
}

func (r *sessionRepository) Update(ctx context.Context, session *entity.Session) error {
	query := `
		UPDATE sessions
		SET hall_id = $2, ticket_price = $3, date = $4, start_time = $5, end_time = $6, updated_at = $7
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		session.ID,
		session.HallID,
		session.TicketPrice,
		session.Date,
		session.StartTime,
		session.EndTime,
		session.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update session",
			zap.Error(err),
			zap.String("session_id", session.ID.String()),
		)
		return fmt.Errorf("update session %s: %w", session.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("session %s not found", session.ID.String())
	}

	return nil
}

func scanSessions(rows pgx.Rows) ([]*entity.Session, error) {
	var sessions []*entity.Session
	for rows.Next() {
		var session entity.Session
		err := rows.Scan(
			&session.ID,
			&session.HallID,
			&session.TicketPrice,
			&session.Date,
			&session.StartTime,
			&session.EndTime,
			&session.AvailableSeats,
			&session.CreatedAt,
			&session.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan session row: %w", err)
		}
		sessions = append(sessions, &session)
	}

	return sessions, nil
}
