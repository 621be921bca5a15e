package wire

import (
	"ticket-office/internal/adaptor"
	"ticket-office/internal/usecase"
	"ticket-office/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireSchedule(
	r chi.Router,
	scheduleHandler *adaptor.ScheduleHandler,
	authService usecase.AuthService,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// Browsing the schedule needs no account.
	r.Get("/api/sessions", scheduleHandler.ListSessions)
	r.Get("/api/sessions/info", scheduleHandler.SessionInfo)
	r.Get("/api/halls", scheduleHandler.ListHalls)

	// ==================== PROTECTED ROUTES ====================
	// Hall and session management requires a valid token.
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(authService, log))

		r.Post("/api/halls", scheduleHandler.CreateHall)
		r.Patch("/api/halls/{id}", scheduleHandler.UpdateHall)
		r.Post("/api/sessions", scheduleHandler.CreateSession)
		r.Patch("/api/sessions/{id}", scheduleHandler.UpdateSession)
	})
}
