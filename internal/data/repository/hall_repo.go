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

type HallRepository interface {
	Create(ctx context.Context, hall *entity.Hall) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Hall, error)
	FindByName(ctx context.Context, name string) (*entity.Hall, error)
	FindAll(ctx context.Context) ([]*entity.Hall, error)
	Update(ctx context.Context, hall *entity.Hall) error
}

type hallRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewHallRepository(db database.PgxIface, log *zap.Logger) HallRepository {
	return &hallRepository{
		db:  db,
		log: log.With(zap.String("repository", "hall")),
	}
}

func (r *hallRepository) Create(ctx context.Context, hall *entity.Hall) error {
	query := `
		INSERT INTO halls (id, name, size, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		hall.ID,
		hall.Name,
		hall.Size,
		hall.CreatedAt,
		hall.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create hall",
			zap.Error(err),
			zap.String("name", hall.Name),
		)
		return fmt.Errorf("create hall %s: %w", hall.Name, err)
	}

	return nil
}

func (r *hallRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Hall, error) {
	query := `
		SELECT id, name, size, created_at, updated_at
		FROM halls
		WHERE id = $1
	`

	var hall entity.Hall
	err := r.db.QueryRow(ctx, query, id).Scan(
		&hall.ID,
		&hall.Name,
		&hall.Size,
		&hall.CreatedAt,
		&hall.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find hall by ID",
			zap.Error(err),
			zap.String("hall_id", id.String()),
		)
		return nil, fmt.Errorf("find hall by ID %s: %w", id.String(), err)
	}

	return &hall, nil
}

func (r *hallRepository) FindByName(ctx context.Context, name string) (*entity.Hall, error) {
	query := `
		SELECT id, name, size, created_at, updated_at
		FROM halls
		WHERE name = $1
	`

	var hall entity.Hall
	err := r.db.QueryRow(ctx, query, name).Scan(
		&hall.ID,
		&hall.Name,
		&hall.Size,
		&hall.CreatedAt,
		&hall.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find hall by name",
			zap.Error(err),
			zap.String("name", name),
		)
		return nil, fmt.Errorf("find hall by name %s: %w", name, err)
	}

	return &hall, nil
}

func (r *hallRepository) FindAll(ctx context.Context) ([]*entity.Hall, error) {
	query := `
		SELECT id, name, size, created_at, updated_at
		FROM halls
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find halls", zap.Error(err))
		return nil, fmt.Errorf("find halls: %w", err)
	}
	defer rows.Close()

	var halls []*entity.Hall
	for rows.Next() {
		var hall entity.Hall
		err := rows.Scan(
			&hall.ID,
			&hall.Name,
			&hall.Size,
			&hall.CreatedAt,
			&hall.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan hall row", zap.Error(err))
			return nil, fmt.Errorf("scan hall row: %w", err)
		}
		halls = append(halls, &hall)
	}

	return halls, nil
}

func (r *hallRepository) Update(ctx context.Context, hall *entity.Hall) error {
	query := `
		UPDATE halls
		SET name = $2, size = $3, updated_at = $4
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		hall.ID,
		hall.Name,
		hall.Size,
		hall.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update hall",
			zap.Error(err),
			zap.String("hall_id", hall.ID.String()),
		)
		return fmt.Errorf("update hall %s: %w", hall.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("hall %s not found", hall.ID.String())
	}

	return nil
}
