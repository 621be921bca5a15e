package repository

import (
	"context"
	"fmt"

	"ticket-office/internal/data/entity"
	"ticket-office/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	FindByUsername(ctx context.Context, username string) (*entity.Customer, error)
}

type customerRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCustomerRepository(db database.PgxIface, log *zap.Logger) CustomerRepository {
	return &customerRepository{
		db:  db,
		log: log.With(zap.String("repository", "customer")),
	}
}

func (r *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, username, password, purse, token_policy, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		customer.ID,
		customer.Username,
		customer.PasswordHash,
		customer.Purse,
		customer.TokenPolicy,
		customer.IsActive,
		customer.CreatedAt,
		customer.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create customer",
			zap.Error(err),
			zap.String("username", customer.Username),
		)
		return fmt.Errorf("create customer %s: %w", customer.Username, err)
	}

	return nil
}

func (r *customerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	query := `
		SELECT id, username, password, purse, token_policy, is_active, created_at, updated_at
		FROM customers
		WHERE id = $1
	`

	var customer entity.Customer
	err := r.db.QueryRow(ctx, query, id).Scan(
		&customer.ID,
		&customer.Username,
		&customer.PasswordHash,
		&customer.Purse,
		&customer.TokenPolicy,
		&customer.IsActive,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find customer by ID",
			zap.Error(err),
			zap.String("customer_id", id.String()),
		)
		return nil, fmt.Errorf("find customer by ID %s: %w", id.String(), err)
	}

	return &customer, nil
}

func (r *customerRepository) FindByUsername(ctx context.Context, username string) (*entity.Customer, error) {
	query := `
		SELECT id, username, password, purse, token_policy, is_active, created_at, updated_at
		FROM customers
		WHERE username = $1
	`

	var customer entity.Customer
	err := r.db.QueryRow(ctx, query, username).Scan(
		&customer.ID,
		&customer.Username,
		&customer.PasswordHash,
		&customer.Purse,
		&customer.TokenPolicy,
		&customer.IsActive,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find customer by username",
			zap.Error(err),
			zap.String("username", username),
		)
		return nil, fmt.Errorf("find customer by username %s: %w", username, err)
	}

	return &customer, nil
}
