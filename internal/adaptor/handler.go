package adaptor

import (
	"errors"
	"net/http"
	"strings"

	"ticket-office/internal/data/entity"
	"ticket-office/internal/usecase"
	"ticket-office/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	Schedule *ScheduleHandler
	Booking  *BookingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		Schedule: NewScheduleHandler(service.Schedule, log),
		Booking:  NewBookingHandler(service.Booking, log),
	}
}

// respondServiceError maps a service error to a response code. The
// kind-specific message is surfaced verbatim so the caller can tell which
// constraint failed.
func respondServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	errMsg := err.Error()

	switch {
	case errors.Is(err, entity.ErrInvalidRange),
		errors.Is(err, entity.ErrScheduleConflict),
		errors.Is(err, entity.ErrHallActivated),
		errors.Is(err, entity.ErrSessionActivated):
		log.Warn(operation+" failed - schedule conflict", zap.Error(err))
		utils.ResponseConflict(w, errMsg)

	case errors.Is(err, entity.ErrNoSeatsAvailable),
		errors.Is(err, entity.ErrInsufficientSeats),
		errors.Is(err, entity.ErrInsufficientFunds):
		log.Warn(operation+" failed - purchase rejected", zap.Error(err))
		utils.ResponseUnprocessable(w, errMsg)

	case errors.Is(err, entity.ErrInvalidCredentials),
		errors.Is(err, entity.ErrInvalidToken),
		errors.Is(err, entity.ErrTokenExpired):
		log.Warn(operation+" failed - unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, errMsg)

	case errors.Is(err, entity.ErrInactiveCustomer):
		log.Warn(operation+" failed - inactive customer", zap.Error(err))
		utils.ResponseForbidden(w, errMsg)

	case errors.Is(err, entity.ErrHallNotFound),
		errors.Is(err, entity.ErrSessionNotFound),
		errors.Is(err, entity.ErrCustomerNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case errors.Is(err, entity.ErrUsernameTaken),
		errors.Is(err, entity.ErrHallNameTaken),
		strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"):
		log.Warn(operation+" failed - bad request", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
