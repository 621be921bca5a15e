package middleware

import (
	"errors"
	"net/http"
	"strings"

	"ticket-office/internal/data/entity"
	"ticket-office/internal/usecase"
	"ticket-office/pkg/utils"

	"go.uber.org/zap"
)

// Auth validates the bearer token through the token lifecycle manager on
// every request. When the token turned out expired the rotation has already
// happened as a side effect, but the current request is still rejected; the
// fresh token only serves the next sign in.
func Auth(authService usecase.AuthService, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			token := parts[1]

			effective, wasExpired, err := authService.CheckAndRotate(r.Context(), token)
			if err != nil {
				switch {
				case errors.Is(err, entity.ErrInvalidToken):
					utils.ResponseUnauthorized(w, entity.ErrInvalidToken.Error())
				case errors.Is(err, entity.ErrInactiveCustomer):
					utils.ResponseForbidden(w, entity.ErrInactiveCustomer.Error())
				default:
					logger.Error("Failed to validate token", zap.Error(err))
					utils.ResponseInternalError(w, "Internal server error")
				}
				return
			}

			if wasExpired {
				logger.Warn("Expired token presented",
					zap.String("customer_id", effective.CustomerID.String()))
				utils.ResponseUnauthorized(w, entity.ErrTokenExpired.Error())
				return
			}

			ctx := utils.SetCustomerContext(r.Context(), effective.CustomerID)
			ctx = utils.SetTokenContext(ctx, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
