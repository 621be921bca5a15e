package entity

import (
	"time"

	"github.com/google/uuid"
)

// Ticket rows are append-only; no update or delete path exists.
type Ticket struct {
	ID         uuid.UUID `db:"id"`
	CustomerID uuid.UUID `db:"customer_id"`
	SessionID  uuid.UUID `db:"session_id"`
	Amount     int       `db:"amount"`
	BoughtAt   time.Time `db:"bought_at"`
}
