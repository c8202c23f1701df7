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

type DishRepository interface {
	Create(ctx context.Context, dish *entity.Dish) error
	FindByID(ctx context.Context, id int64) (*entity.Dish, error)
	FindByRestaurantID(ctx context.Context, restaurantID int64) ([]*entity.Dish, error)
	FindByCategoryID(ctx context.Context, categoryID int64) ([]*entity.Dish, error)
	Update(ctx context.Context, dish *entity.Dish) error
	Delete(ctx context.Context, id int64) error
}

type dishRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewDishRepository(db database.PgxIface, log *zap.Logger) DishRepository {
	return &dishRepository{
		db:  db,
		log: log.With(zap.String("repository", "dish")),
	}
}

const dishSelect = `
	SELECT d.id, d.category_id, d.name, d.description, d.price, d.available, d.imgurl,
	       d.created_at, d.updated_at, c.name
	FROM dishes d
	JOIN categories c ON c.id = d.category_id
`

func scanDish(row rowScanner) (*entity.Dish, error) {
	var dish entity.Dish
	err := row.Scan(
		&dish.ID,
		&dish.CategoryID,
		&dish.Name,
		&dish.Description,
		&dish.Price,
		&dish.Available,
		&dish.ImgURL,
		&dish.CreatedAt,
		&dish.UpdatedAt,
		&dish.CategoryName,
	)
	if err != nil {
		return nil, err
	}
	return &dish, nil
}

func (r *dishRepository) Create(ctx context.Context, dish *entity.Dish) error {
	query := `
		INSERT INTO dishes (category_id, name, description, price, available, imgurl)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		dish.CategoryID,
		dish.Name,
		dish.Description,
		dish.Price,
		dish.Available,
		dish.ImgURL,
	).Scan(&dish.ID, &dish.CreatedAt, &dish.UpdatedAt)

	if err != nil {
		r.log.Error("Failed to create dish",
			zap.Error(err),
			zap.Int64("category_id", dish.CategoryID),
			zap.String("name", dish.Name),
		)
		return fmt.Errorf("create dish %s: %w", dish.Name, err)
	}

	return nil
}

func (r *dishRepository) FindByID(ctx context.Context, id int64) (*entity.Dish, error) {
	dish, err := scanDish(r.db.QueryRow(ctx, dishSelect+` WHERE d.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find dish by ID",
			zap.Error(err),
			zap.Int64("dish_id", id),
		)
		return nil, fmt.Errorf("find dish by ID %d: %w", id, err)
	}

	return dish, nil
}

func (r *dishRepository) FindByRestaurantID(ctx context.Context, restaurantID int64) ([]*entity.Dish, error) {
	return r.findMany(ctx, dishSelect+` WHERE c.restaurant_id = $1 ORDER BY c.name, d.name, d.id`, restaurantID, "restaurant_id")
}

func (r *dishRepository) FindByCategoryID(ctx context.Context, categoryID int64) ([]*entity.Dish, error) {
	return r.findMany(ctx, dishSelect+` WHERE d.category_id = $1 ORDER BY d.name, d.id`, categoryID, "category_id")
}

func (r *dishRepository) findMany(ctx context.Context, query string, parentID int64, parentField string) ([]*entity.Dish, error) {
	rows, err := r.db.Query(ctx, query, parentID)
	if err != nil {
		r.log.Error("Failed to find dishes",
			zap.Error(err),
			zap.Int64(parentField, parentID),
		)
		return nil, fmt.Errorf("find dishes by %s %d: %w", parentField, parentID, err)
	}
	defer rows.Close()

	dishes := []*entity.Dish{}
	for rows.Next() {
		dish, err := scanDish(rows)
		if err != nil {
			r.log.Error("Failed to scan dish row", zap.Error(err))
			return nil, fmt.Errorf("scan dish row: %w", err)
		}
		dishes = append(dishes, dish)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate dish rows: %w", err)
	}

	return dishes, nil
}

func (r *dishRepository) Update(ctx context.Context, dish *entity.Dish) error {
	query := `
		UPDATE dishes
		SET category_id = $2, name = $3, description = $4, price = $5,
		    available = $6, imgurl = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.db.QueryRow(ctx, query,
		dish.ID,
		dish.CategoryID,
		dish.Name,
		dish.Description,
		dish.Price,
		dish.Available,
		dish.ImgURL,
	).Scan(&dish.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("update dish %d: %w", dish.ID, ErrNotFound)
	}
	if err != nil {
		r.log.Error("Failed to update dish",
			zap.Error(err),
			zap.Int64("dish_id", dish.ID),
		)
		return fmt.Errorf("update dish %d: %w", dish.ID, err)
	}

	return nil
}

func (r *dishRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM dishes WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete dish",
			zap.Error(err),
			zap.Int64("dish_id", id),
		)
		return fmt.Errorf("delete dish %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete dish %d: %w", id, ErrNotFound)
	}

	r.log.Info("Dish deleted", zap.Int64("dish_id", id))
	return nil
}
