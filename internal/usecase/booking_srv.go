package usecase

import (
	"context"
	"fmt"

	"ticket-office/internal/data/repository"
	"ticket-office/internal/dto/request"
	"ticket-office/internal/dto/response"
	"ticket-office/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	Purchase(ctx context.Context, customerID string, req *request.PurchaseTicketRequest) (*response.TicketResponse, error)
	ListTickets(ctx context.Context, customerID string) ([]response.TicketResponse, error)
	PurchaseTotal(ctx context.Context, customerID string) (*response.PurchaseTotalResponse, error)
}

type bookingService struct {
	repo  *repository.Repository
	log   *zap.Logger
	clock Clock
}

func NewBookingService(repo *repository.Repository, log *zap.Logger, clock Clock) BookingService {
	return &bookingService{
		repo:  repo,
		log:   log.With(zap.String("service", "booking")),
		clock: clock,
	}
}

// Purchase debits the purse, decrements the seats and issues the ticket as
// one indivisible store transaction. The typed seat/fund errors from the
// store pass through untouched so the boundary can name the failed
// constraint.
func (s *bookingService) Purchase(ctx context.Context, customerID string, req *request.PurchaseTicketRequest) (*response.TicketResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Purchase validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	customerUUID, err := uuid.Parse(customerID)
	if err != nil {
		return nil, fmt.Errorf("invalid customer ID format %s: %w", customerID, err)
	}

	sessionID, err := uuid.Parse(req.SessionID)
	if err != nil {
		return nil, fmt.Errorf("invalid session ID format %s: %w", req.SessionID, err)
	}

	ticket, err := s.repo.Ticket.Purchase(ctx, customerUUID, sessionID, req.Amount, s.clock())
	if err != nil {
		s.log.Warn("Purchase rejected",
			zap.Error(err),
			zap.String("customer_id", customerID),
			zap.String("session_id", req.SessionID),
			zap.Int("amount", req.Amount),
		)
		return nil, err
	}

	s.log.Info("Ticket purchased",
		zap.String("ticket_id", ticket.ID.String()),
		zap.String("customer_id", customerID),
		zap.String("session_id", req.SessionID),
		zap.Int("amount", req.Amount),
	)

	resp := response.TicketToResponse(ticket)
	return &resp, nil
}

func (s *bookingService) ListTickets(ctx context.Context, customerID string) ([]response.TicketResponse, error) {
	customerUUID, err := uuid.Parse(customerID)
	if err != nil {
		return nil, fmt.Errorf("invalid customer ID format %s: %w", customerID, err)
	}

	tickets, err := s.repo.Ticket.FindByCustomerID(ctx, customerUUID)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}

	return response.TicketsToResponse(tickets), nil
}

// PurchaseTotal reports the customer's spend at the sessions' current
// prices; historical tickets reprice when a session price changes.
func (s *bookingService) PurchaseTotal(ctx context.Context, customerID string) (*response.PurchaseTotalResponse, error) {
	customerUUID, err := uuid.Parse(customerID)
	if err != nil {
		return nil, fmt.Errorf("invalid customer ID format %s: %w", customerID, err)
	}

	total, err := s.repo.Ticket.TotalByCustomerID(ctx, customerUUID)
	if err != nil {
		return nil, fmt.Errorf("purchase total: %w", err)
	}

	return &response.PurchaseTotalResponse{Total: total}, nil
}
