package usecase

import (
	"context"
	"fmt"

	"ticket-office/internal/data/entity"
	"ticket-office/internal/data/repository"
	"ticket-office/internal/dto/request"
	"ticket-office/internal/dto/response"
	"ticket-office/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	SignUp(ctx context.Context, req *request.SignUpRequest) (*response.CustomerResponse, error)
	SignIn(ctx context.Context, req *request.SignInRequest) (*response.AuthResponse, error)
	SignOut(ctx context.Context, token string) error

	// CheckAndRotate validates a presented token against the rolling-expiry
	// policy. On an unexpired token it slides the window forward and returns
	// it. On an expired one it atomically replaces the row and reports
	// wasExpired=true; the caller decides what to do with the current
	// request (the auth middleware rejects it).
	CheckAndRotate(ctx context.Context, token string) (*entity.Token, bool, error)
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
	clock  Clock
}

func NewAuthService(repo *repository.Repository, config *utils.Config, log *zap.Logger, clock Clock) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
		clock:  clock,
	}
}

func (s *authService) SignUp(ctx context.Context, req *request.SignUpRequest) (*response.CustomerResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Sign up validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.Customer.FindByUsername(ctx, req.Username)
	if err != nil {
		s.log.Error("Failed to check username", zap.Error(err), zap.String("username", req.Username))
		return nil, fmt.Errorf("check username: %w", err)
	}
	if existing != nil {
		return nil, entity.ErrUsernameTaken
	}

	hashedPassword, err := utils.HashPassword(req.Password1)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("process password: %w", err)
	}

	now := s.clock()
	customer := &entity.Customer{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:     req.Username,
		PasswordHash: hashedPassword,
		Purse:        entity.DefaultPurse,
		TokenPolicy:  entity.TokenPolicyRolling,
		IsActive:     true,
	}

	if err := s.repo.Customer.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}

	s.log.Info("Customer signed up",
		zap.String("customer_id", customer.ID.String()),
		zap.String("username", customer.Username),
	)

	resp := response.CustomerToResponse(customer)
	return &resp, nil
}

func (s *authService) SignIn(ctx context.Context, req *request.SignInRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Sign in validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	customer, err := s.repo.Customer.FindByUsername(ctx, req.Username)
	if err != nil {
		s.log.Error("Failed to find customer", zap.Error(err), zap.String("username", req.Username))
		return nil, fmt.Errorf("find customer: %w", err)
	}
	if customer == nil {
		s.log.Warn("Unknown username on sign in", zap.String("username", req.Username))
		return nil, entity.ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(req.Password, customer.PasswordHash) {
		s.log.Warn("Wrong password on sign in", zap.String("customer_id", customer.ID.String()))
		return nil, entity.ErrInvalidCredentials
	}

	if !customer.IsActive {
		s.log.Warn("Inactive customer tried to sign in", zap.String("customer_id", customer.ID.String()))
		return nil, entity.ErrInactiveCustomer
	}

	token, err := s.getOrCreateToken(ctx, customer)
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.String("customer_id", customer.ID.String()))
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.Info("Customer signed in",
		zap.String("customer_id", customer.ID.String()),
		zap.String("username", customer.Username),
	)

	return &response.AuthResponse{
		Customer: response.CustomerToResponse(customer),
		Token:    token.Key.String(),
	}, nil
}

func (s *authService) SignOut(ctx context.Context, token string) error {
	key, err := uuid.Parse(token)
	if err != nil {
		return entity.ErrInvalidToken
	}

	if err := s.repo.Token.DeleteByKey(ctx, key); err != nil {
		return err
	}

	s.log.Info("Customer signed out")
	return nil
}

func (s *authService) CheckAndRotate(ctx context.Context, token string) (*entity.Token, bool, error) {
	key, err := uuid.Parse(token)
	if err != nil {
		return nil, false, entity.ErrInvalidToken
	}

	current, err := s.repo.Token.FindByKey(ctx, key)
	if err != nil {
		return nil, false, fmt.Errorf("find token: %w", err)
	}
	if current == nil {
		return nil, false, entity.ErrInvalidToken
	}

	customer, err := s.repo.Customer.FindByID(ctx, current.CustomerID)
	if err != nil {
		return nil, false, fmt.Errorf("find token owner: %w", err)
	}
	if customer == nil || !customer.IsActive {
		return nil, false, entity.ErrInactiveCustomer
	}

	now := s.clock()

	// Non-expiring accounts still refresh on use.
	if customer.TokenPolicy == entity.TokenPolicyNever {
		if err := s.repo.Token.Touch(ctx, key, now); err != nil {
			return nil, false, err
		}
		current.Created = now
		return current, false, nil
	}

	if now.Sub(current.Created) > s.config.Token.ExpiryWindow {
		replacement := &entity.Token{
			Key:        uuid.New(),
			CustomerID: current.CustomerID,
			Created:    now,
		}
		if err := s.repo.Token.Rotate(ctx, key, replacement); err != nil {
			return nil, false, err
		}

		s.log.Info("Token rotated",
			zap.String("customer_id", current.CustomerID.String()),
			zap.Duration("elapsed", now.Sub(current.Created)),
		)
		return replacement, true, nil
	}

	if err := s.repo.Token.Touch(ctx, key, now); err != nil {
		return nil, false, err
	}
	current.Created = now
	return current, false, nil
}

// ==================== HELPER METHODS ====================

// getOrCreateToken returns a usable token on sign in: the existing one with
// its window refreshed, its rotated replacement when it had already expired,
// or a brand-new token when none exists.
func (s *authService) getOrCreateToken(ctx context.Context, customer *entity.Customer) (*entity.Token, error) {
	now := s.clock()

	token, err := s.repo.Token.FindByCustomerID(ctx, customer.ID)
	if err != nil {
		return nil, err
	}

	if token == nil {
		token = &entity.Token{
			Key:        uuid.New(),
			CustomerID: customer.ID,
			Created:    now,
		}
		if err := s.repo.Token.Create(ctx, token); err != nil {
			return nil, err
		}
		return token, nil
	}

	expired := customer.TokenPolicy != entity.TokenPolicyNever &&
		now.Sub(token.Created) > s.config.Token.ExpiryWindow

	if expired {
		replacement := &entity.Token{
			Key:        uuid.New(),
			CustomerID: customer.ID,
			Created:    now,
		}
		if err := s.repo.Token.Rotate(ctx, token.Key, replacement); err != nil {
			return nil, err
		}
		return replacement, nil
	}

	if err := s.repo.Token.Touch(ctx, token.Key, now); err != nil {
		return nil, err
	}
	token.Created = now
	return token, nil
}
