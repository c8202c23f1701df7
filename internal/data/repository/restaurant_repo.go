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

type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *entity.Restaurant) error
	FindByID(ctx context.Context, id int64) (*entity.Restaurant, error)
	FindByEmail(ctx context.Context, email string) (*entity.Restaurant, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Restaurant, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, restaurant *entity.Restaurant) error
	Delete(ctx context.Context, id int64) error
}

type restaurantRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRestaurantRepository(db database.PgxIface, log *zap.Logger) RestaurantRepository {
	return &restaurantRepository{
		db:  db,
		log: log.With(zap.String("repository", "restaurant")),
	}
}

const restaurantColumns = `id, name, email, password, phone, address, description, logo, bg_image,
	status, created_at, updated_at`

func scanRestaurant(row rowScanner) (*entity.Restaurant, error) {
	var restaurant entity.Restaurant
	err := row.Scan(
		&restaurant.ID,
		&restaurant.Name,
		&restaurant.Email,
		&restaurant.PasswordHash,
		&restaurant.Phone,
		&restaurant.Address,
		&restaurant.Description,
		&restaurant.Logo,
		&restaurant.BgImage,
		&restaurant.Status,
		&restaurant.CreatedAt,
		&restaurant.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &restaurant, nil
}

// Create inserts the restaurant and fills in its generated id and timestamps.
func (r *restaurantRepository) Create(ctx context.Context, restaurant *entity.Restaurant) error {
	query := `
		INSERT INTO restaurants (name, email, password, phone, address, description, logo, bg_image, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		restaurant.Name,
		restaurant.Email,
		restaurant.PasswordHash,
		restaurant.Phone,
		restaurant.Address,
		restaurant.Description,
		restaurant.Logo,
		restaurant.BgImage,
		restaurant.Status,
	).Scan(&restaurant.ID, &restaurant.CreatedAt, &restaurant.UpdatedAt)

	if err != nil {
		r.log.Error("Failed to create restaurant",
			zap.Error(err),
			zap.String("email", restaurant.Email),
		)
		return fmt.Errorf("create restaurant %s: %w", restaurant.Email, err)
	}

	return nil
}

func (r *restaurantRepository) FindByID(ctx context.Context, id int64) (*entity.Restaurant, error) {
	query := `SELECT ` + restaurantColumns + ` FROM restaurants WHERE id = $1`

	restaurant, err := scanRestaurant(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find restaurant by ID",
			zap.Error(err),
			zap.Int64("restaurant_id", id),
		)
		return nil, fmt.Errorf("find restaurant by ID %d: %w", id, err)
	}

	return restaurant, nil
}

func (r *restaurantRepository) FindByEmail(ctx context.Context, email string) (*entity.Restaurant, error) {
	query := `SELECT ` + restaurantColumns + ` FROM restaurants WHERE email = $1`

	restaurant, err := scanRestaurant(r.db.QueryRow(ctx, query, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find restaurant by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find restaurant by email %s: %w", email, err)
	}

	return restaurant, nil
}

func (r *restaurantRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Restaurant, error) {
	query := `SELECT ` + restaurantColumns + ` FROM restaurants ORDER BY id LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find all restaurants",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find all restaurants limit %d offset %d: %w", limit, offset, err)
	}
	defer rows.Close()

	restaurants := []*entity.Restaurant{}
	for rows.Next() {
		restaurant, err := scanRestaurant(rows)
		if err != nil {
			r.log.Error("Failed to scan restaurant row", zap.Error(err))
			return nil, fmt.Errorf("scan restaurant row: %w", err)
		}
		restaurants = append(restaurants, restaurant)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate restaurant rows: %w", err)
	}

	return restaurants, nil
}

func (r *restaurantRepository) CountAll(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM restaurants`).Scan(&total); err != nil {
		r.log.Error("Failed to count restaurants", zap.Error(err))
		return 0, fmt.Errorf("count all restaurants: %w", err)
	}

	return total, nil
}

func (r *restaurantRepository) Update(ctx context.Context, restaurant *entity.Restaurant) error {
	query := `
		UPDATE restaurants
		SET name = $2, email = $3, phone = $4, address = $5, description = $6,
		    logo = $7, bg_image = $8, status = $9, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.db.QueryRow(ctx, query,
		restaurant.ID,
		restaurant.Name,
		restaurant.Email,
		restaurant.Phone,
		restaurant.Address,
		restaurant.Description,
		restaurant.Logo,
		restaurant.BgImage,
		restaurant.Status,
	).Scan(&restaurant.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("update restaurant %d: %w", restaurant.ID, ErrNotFound)
	}
	if err != nil {
		r.log.Error("Failed to update restaurant",
			zap.Error(err),
			zap.Int64("restaurant_id", restaurant.ID),
		)
		return fmt.Errorf("update restaurant %d: %w", restaurant.ID, err)
	}

	return nil
}

func (r *restaurantRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM restaurants WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete restaurant",
			zap.Error(err),
			zap.Int64("restaurant_id", id),
		)
		return fmt.Errorf("delete restaurant %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete restaurant %d: %w", id, ErrNotFound)
	}

	r.log.Info("Restaurant deleted", zap.Int64("restaurant_id", id))
	return nil
}
