package adaptor

import (
	"encoding/json"
	"net/http"

	"ticket-office/internal/dto/request"
	"ticket-office/internal/usecase"
	"ticket-office/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log,
	}
}

// SignUp handles POST /api/signup
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req request.SignUpRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	response, err := h.service.SignUp(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "sign up")
		return
	}

	utils.ResponseCreated(w, "Sign up successful", response)
}

// SignIn handles POST /api/signin
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req request.SignInRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	response, err := h.service.SignIn(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "sign in")
		return
	}

	utils.ResponseSuccess(w, "Sign in successful", response)
}

// SignOut handles POST /api/signout
func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	token, ok := utils.GetTokenFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.SignOut(r.Context(), token); err != nil {
		respondServiceError(w, h.log, err, "sign out")
		return
	}

	utils.ResponseSuccess(w, "Sign out successful", nil)
}
