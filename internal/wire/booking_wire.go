package wire

import (
	"ticket-office/internal/adaptor"
	"ticket-office/internal/usecase"
	"ticket-office/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	authService usecase.AuthService,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(authService, log))

		// POST /api/tickets - Purchase seats for a session
		r.Post("/api/tickets", bookingHandler.Purchase)

		// GET /api/tickets - The customer's own tickets
		r.Get("/api/tickets", bookingHandler.ListTickets)

		// GET /api/tickets/total - Total spend across all tickets
		r.Get("/api/tickets/total", bookingHandler.PurchaseTotal)
	})
}
