package entity

import (
	"time"

	"github.com/google/uuid"
)

// Token is an opaque rotating credential. Created is touched forward on
// every successful use; once the rolling window elapses the row is replaced
// by a fresh one.
type Token struct {
	Key        uuid.UUID `db:"key"`
	CustomerID uuid.UUID `db:"customer_id"`
	Created    time.Time `db:"created"`
}
