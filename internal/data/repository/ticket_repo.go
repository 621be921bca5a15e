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

type TicketRepository interface {
	// Purchase runs the whole buy path in one transaction: lock the session
	// and customer rows, validate seats and funds, decrement both and insert
	// the ticket. Any failure rolls back with no partial mutation.
	Purchase(ctx context.Context, customerID, sessionID uuid.UUID, amount int, boughtAt time.Time) (*entity.Ticket, error)

	FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*entity.Ticket, error)
	TotalByCustomerID(ctx context.Context, customerID uuid.UUID) (int, error)
	ExistsBySessionID(ctx context.Context, sessionID uuid.UUID) (bool, error)
	ExistsForHallFrom(ctx context.Context, hallID uuid.UUID, fromDate time.Time) (bool, error)
}

type ticketRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTicketRepository(db database.PgxIface, log *zap.Logger) TicketRepository {
	return &ticketRepository{
		db:  db,
		log: log.With(zap.String("repository", "ticket")),
	}
}

func (r *ticketRepository) Purchase(ctx context.Context, customerID, sessionID uuid.UUID, amount int, boughtAt time.Time) (*entity.Ticket, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin purchase transaction", zap.Error(err))
		return nil, fmt.Errorf("begin purchase transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Lock the session and customer rows; concurrent purchases against the
	// same session or purse serialize here.
	var price, seats int
	err = tx.QueryRow(ctx,
		`SELECT ticket_price, available_seats FROM sessions WHERE id = $1 FOR UPDATE`,
		sessionID,
	).Scan(&price, &seats)
	if err == pgx.ErrNoRows {
		return nil, entity.ErrSessionNotFound
	}
	if err != nil {
		r.log.Error("Failed to lock session row",
			zap.Error(err),
			zap.String("session_id", sessionID.String()),
		)
		return nil, fmt.Errorf("lock session %s: %w", sessionID.String(), err)
	}

	var purse int
	err = tx.QueryRow(ctx,
		`SELECT purse FROM customers WHERE id = $1 FOR UPDATE`,
		customerID,
	).Scan(&purse)
	if err == pgx.ErrNoRows {
		return nil, entity.ErrCustomerNotFound
	}
	if err != nil {
		r.log.Error("Failed to lock customer row",
			zap.Error(err),
			zap.String("customer_id", customerID.String()),
		)
		return nil, fmt.Errorf("lock customer %s: %w", customerID.String(), err)
	}

	total := price * amount

	switch {
	case seats == 0:
		return nil, entity.ErrNoSeatsAvailable
	case amount > seats:
		return nil, fmt.Errorf("%w (amount: %d > available seats: %d)", entity.ErrInsufficientSeats, amount, seats)
	case purse < total:
		return nil, fmt.Errorf("%w (purchase: %d > purse: %d)", entity.ErrInsufficientFunds, total, purse)
	}

	// Guarded decrements; with the rows locked the guards can only fail if
	// an invariant is already broken, in which case the transaction aborts.
	result, err := tx.Exec(ctx,
		`UPDATE customers SET purse = purse - $2, updated_at = $3 WHERE id = $1 AND purse >= $2`,
		customerID, total, boughtAt,
	)
	if err != nil {
		return nil, fmt.Errorf("debit purse of customer %s: %w", customerID.String(), err)
	}
	if result.RowsAffected() == 0 {
		return nil, fmt.Errorf("%w (purchase: %d > purse: %d)", entity.ErrInsufficientFunds, total, purse)
	}

	result, err = tx.Exec(ctx,
		`UPDATE sessions SET available_seats = available_seats - $2, updated_at = $3 WHERE id = $1 AND available_seats >= $2`,
		sessionID, amount, boughtAt,
	)
	if err != nil {
		return nil, fmt.Errorf("decrement seats of session %s: %w", sessionID.String(), err)
	}
	if result.RowsAffected() == 0 {
		return nil, fmt.Errorf("%w (amount: %d > available seats: %d)", entity.ErrInsufficientSeats, amount, seats)
	}

	ticket := &entity.Ticket{
		ID:         uuid.New(),
		CustomerID: customerID,
		SessionID:  sessionID,
		Amount:     amount,
		BoughtAt:   boughtAt,
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO tickets (id, customer_id, session_id, amount, bought_at) VALUES ($1, $2, $3, $4, $5)`,
		ticket.ID, ticket.CustomerID, ticket.SessionID, ticket.Amount, ticket.BoughtAt,
	)
	if err != nil {
		r.log.Error("Failed to insert ticket",
			zap.Error(err),
			zap.String("session_id", sessionID.String()),
		)
		return nil, fmt.Errorf("insert ticket for session %s: %w", sessionID.String(), err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit purchase", zap.Error(err))
		return nil, fmt.Errorf("commit purchase: %w", err)
	}

	return ticket, nil
}

func (r *ticketRepository) FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*entity.Ticket, error) {
	query := `
		SELECT id, customer_id, session_id, amount, bought_at
		FROM tickets
		WHERE customer_id = $1
		ORDER BY bought_at DESC
	`

	rows, err := r.db.Query(ctx, query, customerID)
	if err != nil {
		r.log.Error("Failed to find tickets by customer ID",
			zap.Error(err),
			zap.String("customer_id", customerID.String()),
		)
		return nil, fmt.Errorf("find tickets by customer ID %s: %w", customerID.String(), err)
	}
	defer rows.Close()

	var tickets []*entity.Ticket
	for rows.Next() {
		var ticket entity.Ticket
		err := rows.Scan(
			&ticket.ID,
			&ticket.CustomerID,
			&ticket.SessionID,
			&ticket.Amount,
			&ticket.BoughtAt,
		)
		if err != nil {
			r.log.Error("Failed to scan ticket row", zap.Error(err))
			return nil, fmt.Errorf("scan ticket row: %w", err)
		}
		tickets = append(tickets, &ticket)
	}

	return tickets, nil
}

// TotalByCustomerID sums amount * ticket_price over the customer's tickets.
// The price is joined live from the session, not snapshotted per ticket.
func (r *ticketRepository) TotalByCustomerID(ctx context.Context, customerID uuid.UUID) (int, error) {
	query := `
		SELECT COALESCE(SUM(t.amount * s.ticket_price), 0)
		FROM tickets t
		JOIN sessions s ON s.id = t.session_id
		WHERE t.customer_id = $1
	`

	var total int
	err := r.db.QueryRow(ctx, query, customerID).Scan(&total)
	if err != nil {
		r.log.Error("Failed to sum purchases by customer ID",
			zap.Error(err),
			zap.String("customer_id", customerID.String()),
		)
		return 0, fmt.Errorf("sum purchases by customer ID %s: %w", customerID.String(), err)
	}

	return total, nil
}

func (r *ticketRepository) ExistsBySessionID(ctx context.Context, sessionID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM tickets WHERE session_id = $1)`

	var exists bool
	err := r.db.QueryRow(ctx, query, sessionID).Scan(&exists)
	if err != nil {
		r.log.Error("Failed to check tickets by session ID",
			zap.Error(err),
			zap.String("session_id", sessionID.String()),
		)
		return false, fmt.Errorf("check tickets by session ID %s: %w", sessionID.String(), err)
	}

	return exists, nil
}

// ExistsForHallFrom reports whether any ticket exists against a session of
// the hall scheduled on or after fromDate. Drives the hall activation lock.
func (r *ticketRepository) ExistsForHallFrom(ctx context.Context, hallID uuid.UUID, fromDate time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM tickets t
			JOIN sessions s ON s.id = t.session_id
			WHERE s.hall_id = $1 AND s.date >= $2
		)
	`

	var exists bool
	err := r.db.QueryRow(ctx, query, hallID, fromDate).Scan(&exists)
	if err != nil {
		r.log.Error("Failed to check tickets by hall ID",
			zap.Error(err),
			zap.String("hall_id", hallID.String()),
		)
		return false, fmt.Errorf("check tickets by hall ID %s: %w", hallID.String(), err)
	}

	return exists, nil
}
