package repository

import (
	"context"
	"fmt"
	"time"

	"ticket-office/internal/data/entity"
	"ticket-office/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TokenRepository interface {
	Create(ctx context.Context, token *entity.Token) error
	FindByKey(ctx context.Context, key uuid.UUID) (*entity.Token, error)
	FindByCustomerID(ctx context.Context, customerID uuid.UUID) (*entity.Token, error)
	// Touch slides the rolling-expiry window forward.
	Touch(ctx context.Context, key uuid.UUID, now time.Time) error
	// Rotate replaces an expired token in one transaction so no request can
	// observe a state where neither the old nor the new token is valid.
	Rotate(ctx context.Context, oldKey uuid.UUID, replacement *entity.Token) error
	DeleteByKey(ctx context.Context, key uuid.UUID) error
}

type tokenRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTokenRepository(db database.PgxIface, log *zap.Logger) TokenRepository {
	return &tokenRepository{
		db:  db,
		log: log.With(zap.String("repository", "token")),
	}
}

func (r *tokenRepository) Create(ctx context.Context, token *entity.Token) error {
	query := `INSERT INTO tokens (key, customer_id, created) VALUES ($1, $2, $3)`

	_, err := r.db.Exec(ctx, query, token.Key, token.CustomerID, token.Created)
	if err != nil {
		r.log.Error("Failed to create token",
			zap.Error(err),
			zap.String("customer_id", token.CustomerID.String()),
		)
		return fmt.Errorf("create token for customer %s: %w", token.CustomerID.String(), err)
	}

	return nil
}

func (r *tokenRepository) FindByKey(ctx context.Context, key uuid.UUID) (*entity.Token, error) {
	query := `SELECT key, customer_id, created FROM tokens WHERE key = $1`

	var token entity.Token
	err := r.db.QueryRow(ctx, query, key).Scan(&token.Key, &token.CustomerID, &token.Created)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find token by key", zap.Error(err))
		return nil, fmt.Errorf("find token by key: %w", err)
	}

	return &token, nil
}

func (r *tokenRepository) FindByCustomerID(ctx context.Context, customerID uuid.UUID) (*entity.Token, error) {
	query := `SELECT key, customer_id, created FROM tokens WHERE customer_id = $1`

	var token entity.Token
	err := r.db.QueryRow(ctx, query, customerID).Scan(&token.Key, &token.CustomerID, &token.Created)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find token by customer ID",
			zap.Error(err),
			zap.String("customer_id", customerID.String()),
		)
		return nil, fmt.Errorf("find token by customer ID %s: %w", customerID.String(), err)
	}

	return &token, nil
}

func (r *tokenRepository) Touch(ctx context.Context, key uuid.UUID, now time.Time) error {
	query := `UPDATE tokens SET created = $2 WHERE key = $1`

	result, err := r.db.Exec(ctx, query, key, now)
	if err != nil {
		r.log.Error("Failed to touch token", zap.Error(err))
		return fmt.Errorf("touch token: %w", err)
	}

	if result.RowsAffected() == 0 {
		return entity.ErrInvalidToken
	}

	return nil
}

func (r *tokenRepository) Rotate(ctx context.Context, oldKey uuid.UUID, replacement *entity.Token) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin token rotation", zap.Error(err))
		return fmt.Errorf("begin token rotation: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM tokens WHERE key = $1`, oldKey); err != nil {
		return fmt.Errorf("delete expired token: %w", err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO tokens (key, customer_id, created) VALUES ($1, $2, $3)`,
		replacement.Key, replacement.CustomerID, replacement.Created,
	)
	if err != nil {
		return fmt.Errorf("insert replacement token: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit token rotation", zap.Error(err))
		return fmt.Errorf("commit token rotation: %w", err)
	}

	return nil
}

func (r *tokenRepository) DeleteByKey(ctx context.Context, key uuid.UUID) error {
	query := `DELETE FROM tokens WHERE key = $1`

	result, err := r.db.Exec(ctx, query, key)
	if err != nil {
		r.log.Error("Failed to delete token", zap.Error(err))
		return fmt.Errorf("delete token: %w", err)
	}

	if result.RowsAffected() == 0 {
		return entity.ErrInvalidToken
	}

	return nil
}
