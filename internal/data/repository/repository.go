package repository

import (
	"ticket-office/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Customer CustomerRepository
	Hall     HallRepository
	Session  SessionRepository
	Ticket   TicketRepository
	Token    TokenRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Customer: NewCustomerRepository(db, log),
		Hall:     NewHallRepository(db, log),
		Session:  NewSessionRepository(db, log),
		Ticket:   NewTicketRepository(db, log),
		Token:    NewTokenRepository(db, log),
	}
}
