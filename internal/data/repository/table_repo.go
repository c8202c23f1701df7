package repository

import (
	"context"
	"errors"
	"fmt"

	"restaurant-ops/internal/data/entity"
	"restaurant-ops/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TableRepository interface {
	Create(ctx context.Context, table *entity.Table) error
	FindByID(ctx context.Context, id int64) (*entity.Table, error)
	FindByNumber(ctx context.Context, restaurantID int64, tableNumber string) (*entity.Table, error)
	FindByRestaurantID(ctx context.Context, restaurantID int64) ([]*entity.Table, error)
	Update(ctx context.Context, table *entity.Table) error
	Delete(ctx context.Context, id int64) error
}

type tableRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTableRepository(db database.PgxIface, log *zap.Logger) TableRepository {
	return &tableRepository{
		db:  db,
		log: log.With(zap.String("repository", "table")),
	}
}

const tableColumns = `id, restaurant_id, table_number, capacity, status, created_at, updated_at`

func scanTable(row rowScanner) (*entity.Table, error) {
	var table entity.Table
	err := row.Scan(
		&table.ID,
		&table.RestaurantID,
		&table.TableNumber,
		&table.Capacity,
		&table.Status,
		&table.CreatedAt,
		&table.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &table, nil
}

func (r *tableRepository) Create(ctx context.Context, table *entity.Table) error {
	query := `
		INSERT INTO tables (restaurant_id, table_number, capacity, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		table.RestaurantID,
		table.TableNumber,
		table.Capacity,
		table.Status,
	).Scan(&table.ID, &table.CreatedAt, &table.UpdatedAt)

	if err != nil {
		r.log.Error("Failed to create table",
			zap.Error(err),
			zap.Int64("restaurant_id", table.RestaurantID),
			zap.String("table_number", table.TableNumber),
		)
		return fmt.Errorf("create table %s: %w", table.TableNumber, err)
	}

	return nil
}

func (r *tableRepository) FindByID(ctx context.Context, id int64) (*entity.Table, error) {
	query := `SELECT ` + tableColumns + ` FROM tables WHERE id = $1`

	table, err := scanTable(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find table by ID",
			zap.Error(err),
			zap.Int64("table_id", id),
		)
		return nil, fmt.Errorf("find table by ID %d: %w", id, err)
	}

	return table, nil
}

func (r *tableRepository) FindByNumber(ctx context.Context, restaurantID int64, tableNumber string) (*entity.Table, error) {
	query := `SELECT ` + tableColumns + ` FROM tables WHERE restaurant_id = $1 AND table_number = $2`

	table, err := scanTable(r.db.QueryRow(ctx, query, restaurantID, tableNumber))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find table by number",
			zap.Error(err),
			zap.Int64("restaurant_id", restaurantID),
			zap.String("table_number", tableNumber),
		)
		return nil, fmt.Errorf("find table %s for restaurant %d: %w", tableNumber, restaurantID, err)
	}

	return table, nil
}

func (r *tableRepository) FindByRestaurantID(ctx context.Context, restaurantID int64) ([]*entity.Table, error) {
	query := `SELECT ` + tableColumns + ` FROM tables WHERE restaurant_id = $1 ORDER BY table_number, id`

	rows, err := r.db.Query(ctx, query, restaurantID)
	if err != nil {
		r.log.Error("Failed to find tables by restaurant",
			zap.Error(err),
			zap.Int64("restaurant_id", restaurantID),
		)
		return nil, fmt.Errorf("find tables for restaurant %d: %w", restaurantID, err)
	}
	defer rows.Close()

	tables := []*entity.Table{}
	for rows.Next() {
		table, err := scanTable(rows)
		if err != nil {
			r.log.Error("Failed to scan table row", zap.Error(err))
			return nil, fmt.Errorf("scan table row: %w", err)
		}
		tables = append(tables, table)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate table rows: %w", err)
	}

	return tables, nil
}

func (r *tableRepository) Update(ctx context.Context, table *entity.Table) error {
	query := `
		UPDATE tables
		SET table_number = $2, capacity = $3, status = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.db.QueryRow(ctx, query,
		table.ID,
		table.TableNumber,
		table.Capacity,
		table.Status,
	).Scan(&table.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("update table %d: %w", table.ID, ErrNotFound)
	}
	if err != nil {
		r.log.Error("Failed to update table",
			zap.Error(err),
			zap.Int64("table_id", table.ID),
		)
		return fmt.Errorf("update table %d: %w", table.ID, err)
	}

	return nil
}

func (r *tableRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM tables WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete table",
			zap.Error(err),
			zap.Int64("table_id", id),
		)
		return fmt.Errorf("delete table %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete table %d: %w", id, ErrNotFound)
	}

	r.log.Info("Table deleted", zap.Int64("table_id", id))
	return nil
}
