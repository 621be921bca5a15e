package response

import (
	"time"

	"ticket-office/internal/data/entity"
)

type TicketResponse struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Amount    int       `json:"amount"`
	BoughtAt  time.Time `json:"bought_at"`
}

type PurchaseTotalResponse struct {
	Total int `json:"total"`
}

func TicketToResponse(ticket *entity.Ticket) TicketResponse {
	return TicketResponse{
		ID:        ticket.ID.String(),
		SessionID: ticket.SessionID.String(),
		Amount:    ticket.Amount,
		BoughtAt:  ticket.BoughtAt,
	}
}

func TicketsToResponse(tickets []*entity.Ticket) []TicketResponse {
	responses := make([]TicketResponse, len(tickets))
	for i, ticket := range tickets {
		responses[i] = TicketToResponse(ticket)
	}
	return responses
}
