package wire

import (
	"ticket-office/internal/adaptor"
	"ticket-office/internal/usecase"
	"ticket-office/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	authService usecase.AuthService,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/api/signup", authHandler.SignUp)
	r.Post("/api/signin", authHandler.SignIn)

	// ==================== PROTECTED ROUTES ====================
	r.With(middleware.Auth(authService, log)).Post("/api/signout", authHandler.SignOut)
}
