package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"ticket-office/internal/data/entity"
	"ticket-office/internal/dto/request"
	"ticket-office/internal/dto/response"
	"ticket-office/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockAuthService stubs the token lifecycle manager for middleware tests.
type mockAuthService struct {
	checkAndRotateFunc func(ctx context.Context, token string) (*entity.Token, bool, error)
}

func (m *mockAuthService) SignUp(ctx context.Context, req *request.SignUpRequest) (*response.CustomerResponse, error) {
	return nil, nil
}

func (m *mockAuthService) SignIn(ctx context.Context, req *request.SignInRequest) (*response.AuthResponse, error) {
	return nil, nil
}

func (m *mockAuthService) SignOut(ctx context.Context, token string) error {
	return nil
}

func (m *mockAuthService) CheckAndRotate(ctx context.Context, token string) (*entity.Token, bool, error) {
	return m.checkAndRotateFunc(ctx, token)
}

func runAuth(t *testing.T, svc *mockAuthService, authHeader string) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	reached := false
	handler := Auth(svc, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/tickets", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec, reached
}

func TestAuth_ValidTokenReachesHandler(t *testing.T) {
	customerID := uuid.New()
	key := uuid.New()

	var gotCustomerID uuid.UUID
	svc := &mockAuthService{
		checkAndRotateFunc: func(ctx context.Context, token string) (*entity.Token, bool, error) {
			return &entity.Token{Key: key, CustomerID: customerID}, false, nil
		},
	}

	handler := Auth(svc, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := utils.GetCustomerIDFromContext(r.Context())
		require.True(t, ok)
		gotCustomerID = id
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/tickets", nil)
	req.Header.Set("Authorization", "Bearer "+key.String())
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, customerID, gotCustomerID)
}

// A request with an expired token is rejected even though the token has
// already been rotated; the replacement only helps the next sign in.
func TestAuth_ExpiredTokenRejectedAfterRotation(t *testing.T) {
	replacement := &entity.Token{Key: uuid.New(), CustomerID: uuid.New()}
	svc := &mockAuthService{
		checkAndRotateFunc: func(ctx context.Context, token string) (*entity.Token, bool, error) {
			return replacement, true, nil
		},
	}

	rec, reached := runAuth(t, svc, "Bearer "+uuid.New().String())

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
	assert.Contains(t, rec.Body.String(), entity.ErrTokenExpired.Error())
}

func TestAuth_UnknownToken(t *testing.T) {
	svc := &mockAuthService{
		checkAndRotateFunc: func(ctx context.Context, token string) (*entity.Token, bool, error) {
			return nil, false, entity.ErrInvalidToken
		},
	}

	rec, reached := runAuth(t, svc, "Bearer "+uuid.New().String())

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestAuth_InactiveCustomer(t *testing.T) {
	svc := &mockAuthService{
		checkAndRotateFunc: func(ctx context.Context, token string) (*entity.Token, bool, error) {
			return nil, false, entity.ErrInactiveCustomer
		},
	}

	rec, reached := runAuth(t, svc, "Bearer "+uuid.New().String())

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, reached)
}

func TestAuth_MissingHeader(t *testing.T) {
	svc := &mockAuthService{
		checkAndRotateFunc: func(ctx context.Context, token string) (*entity.Token, bool, error) {
			t.Fatal("CheckAndRotate must not be called without a header")
			return nil, false, nil
		},
	}

	rec, reached := runAuth(t, svc, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestAuth_MalformedHeader(t *testing.T) {
	svc := &mockAuthService{
		checkAndRotateFunc: func(ctx context.Context, token string) (*entity.Token, bool, error) {
			t.Fatal("CheckAndRotate must not be called with a malformed header")
			return nil, false, nil
		},
	}

	rec, reached := runAuth(t, svc, "Token abc123")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}
