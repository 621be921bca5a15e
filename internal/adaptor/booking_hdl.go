package adaptor

import (
	"encoding/json"
	"net/http"

	"ticket-office/internal/dto/request"
	"ticket-office/internal/usecase"
	"ticket-office/pkg/utils"

	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log,
	}
}

// Purchase handles POST /api/tickets
func (h *BookingHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	customerID, ok := utils.GetCustomerIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.PurchaseTicketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	response, err := h.service.Purchase(r.Context(), customerID.String(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "purchase ticket")
		return
	}

	utils.ResponseCreated(w, "Ticket purchased", response)
}

// ListTickets handles GET /api/tickets
func (h *BookingHandler) ListTickets(w http.ResponseWriter, r *http.Request) {
	customerID, ok := utils.GetCustomerIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	response, err := h.service.ListTickets(r.Context(), customerID.String())
	if err != nil {
		respondServiceError(w, h.log, err, "list tickets")
		return
	}

	utils.ResponseSuccess(w, "Tickets retrieved", response)
}

// PurchaseTotal handles GET /api/tickets/total
func (h *BookingHandler) PurchaseTotal(w http.ResponseWriter, r *http.Request) {
	customerID, ok := utils.GetCustomerIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	response, err := h.service.PurchaseTotal(r.Context(), customerID.String())
	if err != nil {
		respondServiceError(w, h.log, err, "purchase total")
		return
	}

	utils.ResponseSuccess(w, "Purchase total retrieved", response)
}
