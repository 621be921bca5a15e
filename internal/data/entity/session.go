package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is a scheduled screening inside a hall. Date carries the calendar
// day; StartTime/EndTime carry only the time of day. AvailableSeats is seeded
// from the hall size and only ever decreases through ticket purchases.
type Session struct {
	Base
	HallID         uuid.UUID `db:"hall_id"`
	TicketPrice    int       `db:"ticket_price"`
	Date           time.Time `db:"date"`
	StartTime      time.Time `db:"start_time"`
	EndTime        time.Time `db:"end_time"`
	AvailableSeats int       `db:"available_seats"`
}
