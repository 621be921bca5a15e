package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	CustomerIDKey contextKey = "customer_id"
	TokenKey      contextKey = "token"
)

func GetCustomerIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	val := ctx.Value(CustomerIDKey)
	if val == nil {
		return uuid.Nil, false
	}

	idStr, ok := val.(string)
	if !ok {
		return uuid.Nil, false
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}

func SetCustomerContext(ctx context.Context, customerID uuid.UUID) context.Context {
	return context.WithValue(ctx, CustomerIDKey, customerID.String())
}

func GetTokenFromContext(ctx context.Context) (string, bool) {
	val := ctx.Value(TokenKey)
	if val == nil {
		return "", false
	}

	token, ok := val.(string)
	return token, ok
}

func SetTokenContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, TokenKey, token)
}
