package entity

import "errors"

// Schedule conflicts.
var (
	ErrInvalidRange     = errors.New("end time can't be sooner than start time")
	ErrScheduleConflict = errors.New("time coincides with another session")
	ErrHallActivated    = errors.New("hall has already been activated")
	ErrSessionActivated = errors.New("session has already been activated")
)

// Purchase failures.
var (
	ErrNoSeatsAvailable  = errors.New("no seats are available")
	ErrInsufficientSeats = errors.New("amount is bigger than available seats")
	ErrInsufficientFunds = errors.New("not enough money on purse")
)

// Auth failures.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrInactiveCustomer   = errors.New("customer is not active")
	ErrTokenExpired       = errors.New("token is expired")
)

// Lookup failures.
var (
	ErrHallNotFound     = errors.New("hall not found")
	ErrSessionNotFound  = errors.New("session not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrUsernameTaken    = errors.New("username already taken")
	ErrHallNameTaken    = errors.New("hall name already taken")
)
