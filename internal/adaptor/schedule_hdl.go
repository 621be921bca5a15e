package adaptor

import (
	"encoding/json"
	"net/http"

	"ticket-office/internal/dto/request"
	"ticket-office/internal/usecase"
	"ticket-office/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ScheduleHandler struct {
	service usecase.ScheduleService
	log     *zap.Logger
}

func NewScheduleHandler(service usecase.ScheduleService, log *zap.Logger) *ScheduleHandler {
	return &ScheduleHandler{
		service: service,
		log:     log,
	}
}

// CreateHall handles POST /api/halls
func (h *ScheduleHandler) CreateHall(w http.ResponseWriter, r *http.Request) {
	var req request.CreateHallRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	response, err := h.service.CreateHall(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create hall")
		return
	}

	utils.ResponseCreated(w, "Hall created", response)
}

// UpdateHall handles PATCH /api/halls/{id}
func (h *ScheduleHandler) UpdateHall(w http.ResponseWriter, r *http.Request) {
	hallID := chi.URLParam(r, "id")

	var req request.UpdateHallRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	response, err := h.service.UpdateHall(r.Context(), hallID, &req)
	if err != nil {
		respondServiceError(w, h.log, err, "update hall")
		return
	}

	utils.ResponseSuccess(w, "Hall updated", response)
}

// ListHalls handles GET /api/halls
func (h *ScheduleHandler) ListHalls(w http.ResponseWriter, r *http.Request) {
	response, err := h.service.ListHalls(r.Context())
	if err != nil {
		respondServiceError(w, h.log, err, "list halls")
		return
	}

	utils.ResponseSuccess(w, "Halls retrieved", response)
}

// CreateSession handles POST /api/sessions
func (h *ScheduleHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req request.CreateSessionRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	response, err := h.service.CreateSession(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create session")
		return
	}

	utils.ResponseCreated(w, "Session created", response)
}

// UpdateSession handles PATCH /api/sessions/{id}
func (h *ScheduleHandler) UpdateSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")

	var req request.UpdateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	response, err := h.service.UpdateSession(r.Context(), sessionID, &req)
	if err != nil {
		respondServiceError(w, h.log, err, "update session")
		return
	}

	utils.ResponseSuccess(w, "Session updated", response)
}

// ListSessions handles GET /api/sessions
func (h *ScheduleHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	req := listSessionsRequestFromQuery(r)

	response, err := h.service.ListSessions(r.Context(), req)
	if err != nil {
		respondServiceError(w, h.log, err, "list sessions")
		return
	}

	utils.ResponseSuccess(w, "Sessions retrieved", response)
}

// SessionInfo handles GET /api/sessions/info
func (h *ScheduleHandler) SessionInfo(w http.ResponseWriter, r *http.Request) {
	req := listSessionsRequestFromQuery(r)

	response, err := h.service.SessionInfo(r.Context(), req)
	if err != nil {
		respondServiceError(w, h.log, err, "session info")
		return
	}

	if len(response) == 0 {
		utils.ResponseNotFound(w, "No sessions found")
		return
	}

	utils.ResponseSuccess(w, "Sessions retrieved", response)
}

func listSessionsRequestFromQuery(r *http.Request) *request.ListSessionsRequest {
	q := r.URL.Query()
	return &request.ListSessionsRequest{
		Filtration: q.Get("filtration"),
		Date:       q.Get("date"),
		Order:      q.Get("order"),
		HallID:     q.Get("hall_id"),
		StartFrom:  q.Get("start_from"),
		StartTo:    q.Get("start_to"),
	}
}
