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

type ParkingSlotRepository interface {
	Create(ctx context.Context, slot *entity.ParkingSlot) error
	FindByID(ctx context.Context, id int64) (*entity.ParkingSlot, error)
	FindByNumber(ctx context.Context, restaurantID int64, slotNumber string) (*entity.ParkingSlot, error)
	FindByRestaurantID(ctx context.Context, restaurantID int64) ([]*entity.ParkingSlot, error)
	Update(ctx context.Context, slot *entity.ParkingSlot) error
	Delete(ctx context.Context, id int64) error
}

type parkingSlotRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewParkingSlotRepository(db database.PgxIface, log *zap.Logger) ParkingSlotRepository {
	return &parkingSlotRepository{
		db:  db,
		log: log.With(zap.String("repository", "parking_slot")),
	}
}

const parkingSlotColumns = `id, restaurant_id, slot_number, status, created_at, updated_at`

func scanParkingSlot(row rowScanner) (*entity.ParkingSlot, error) {
	var slot entity.ParkingSlot
	err := row.Scan(
		&slot.ID,
		&slot.RestaurantID,
		&slot.SlotNumber,
		&slot.Status,
		&slot.CreatedAt,
		&slot.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *parkingSlotRepository) Create(ctx context.Context, slot *entity.ParkingSlot) error {
	query := `
		INSERT INTO parking_slots (restaurant_id, slot_number, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		slot.RestaurantID,
		slot.SlotNumber,
		slot.Status,
	).Scan(&slot.ID, &slot.CreatedAt, &slot.UpdatedAt)

	if err != nil {
		r.log.Error("Failed to create parking slot",
			zap.Error(err),
			zap.Int64("restaurant_id", slot.RestaurantID),
			zap.String("slot_number", slot.SlotNumber),
		)
		return fmt.Errorf("create parking slot %s: %w", slot.SlotNumber, err)
	}

	return nil
}

func (r *parkingSlotRepository) FindByID(ctx context.Context, id int64) (*entity.ParkingSlot, error) {
	query := `SELECT ` + parkingSlotColumns + ` FROM parking_slots WHERE id = $1`

	slot, err := scanParkingSlot(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find parking slot by ID",
			zap.Error(err),
			zap.Int64("parking_slot_id", id),
		)
		return nil, fmt.Errorf("find parking slot by ID %d: %w", id, err)
	}

	return slot, nil
}

func (r *parkingSlotRepository) FindByNumber(ctx context.Context, restaurantID int64, slotNumber string) (*entity.ParkingSlot, error) {
	query := `SELECT ` + parkingSlotColumns + ` FROM parking_slots WHERE restaurant_id = $1 AND slot_number = $2`

	slot, err := scanParkingSlot(r.db.QueryRow(ctx, query, restaurantID, slotNumber))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find parking slot by number",
			zap.Error(err),
			zap.Int64("restaurant_id", restaurantID),
			zap.String("slot_number", slotNumber),
		)
		return nil, fmt.Errorf("find parking slot %s for restaurant %d: %w", slotNumber, restaurantID, err)
	}

	return slot, nil
}

func (r *parkingSlotRepository) FindByRestaurantID(ctx context.Context, restaurantID int64) ([]*entity.ParkingSlot, error) {
	query := `SELECT ` + parkingSlotColumns + ` FROM parking_slots WHERE restaurant_id = $1 ORDER BY slot_number, id`

	rows, err := r.db.Query(ctx, query, restaurantID)
	if err != nil {
		r.log.Error("Failed to find parking slots by restaurant",
			zap.Error(err),
			zap.Int64("restaurant_id", restaurantID),
		)
		return nil, fmt.Errorf("find parking slots for restaurant %d: %w", restaurantID, err)
	}
	defer rows.Close()

	slots := []*entity.ParkingSlot{}
	for rows.Next() {
		slot, err := scanParkingSlot(rows)
		if err != nil {
			r.log.Error("Failed to scan parking slot row", zap.Error(err))
			return nil, fmt.Errorf("scan parking slot row: %w", err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate parking slot rows: %w", err)
	}

	return slots, nil
}

func (r *parkingSlotRepository) Update(ctx context.Context, slot *entity.ParkingSlot) error {
	query := `
		UPDATE parking_slots
		SET slot_number = $2, status = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.db.QueryRow(ctx, query,
		slot.ID,
		slot.SlotNumber,
		slot.Status,
	).Scan(&slot.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("update parking slot %d: %w", slot.ID, ErrNotFound)
	}
	if err != nil {
		r.log.Error("Failed to update parking slot",
			zap.Error(err),
			zap.Int64("parking_slot_id", slot.ID),
		)
		return fmt.Errorf("update parking slot %d: %w", slot.ID, err)
	}

	return nil
}

func (r *parkingSlotRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM parking_slots WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete parking slot",
			zap.Error(err),
			zap.Int64("parking_slot_id", id),
		)
		return fmt.Errorf("delete parking slot %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete parking slot %d: %w", id, ErrNotFound)
	}

	r.log.Info("Parking slot deleted", zap.Int64("parking_slot_id", id))
	return nil
}
