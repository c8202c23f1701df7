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

type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	FindByID(ctx context.Context, id int64) (*entity.Category, error)
	FindByRestaurantID(ctx context.Context, restaurantID int64) ([]*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id int64) error
}

type categoryRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCategoryRepository(db database.PgxIface, log *zap.Logger) CategoryRepository {
	return &categoryRepository{
		db:  db,
		log: log.With(zap.String("repository", "category")),
	}
}

const categoryColumns = `id, restaurant_id, name, imgurl, created_at, updated_at`

func scanCategory(row rowScanner) (*entity.Category, error) {
	var category entity.Category
	err := row.Scan(
		&category.ID,
		&category.RestaurantID,
		&category.Name,
		&category.ImgURL,
		&category.CreatedAt,
		&category.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	query := `
		INSERT INTO categories (restaurant_id, name, imgurl)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		category.RestaurantID,
		category.Name,
		category.ImgURL,
	).Scan(&category.ID, &category.CreatedAt, &category.UpdatedAt)

	if err != nil {
		r.log.Error("Failed to create category",
			zap.Error(err),
			zap.Int64("restaurant_id", category.RestaurantID),
			zap.String("name", category.Name),
		)
		return fmt.Errorf("create category %s: %w", category.Name, err)
	}

	return nil
}

func (r *categoryRepository) FindByID(ctx context.Context, id int64) (*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`

	category, err := scanCategory(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find category by ID",
			zap.Error(err),
			zap.Int64("category_id", id),
		)
		return nil, fmt.Errorf("find category by ID %d: %w", id, err)
	}

	return category, nil
}

func (r *categoryRepository) FindByRestaurantID(ctx context.Context, restaurantID int64) ([]*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE restaurant_id = $1 ORDER BY name, id`

	rows, err := r.db.Query(ctx, query, restaurantID)
	if err != nil {
		r.log.Error("Failed to find categories by restaurant",
			zap.Error(err),
			zap.Int64("restaurant_id", restaurantID),
		)
		return nil, fmt.Errorf("find categories for restaurant %d: %w", restaurantID, err)
	}
	defer rows.Close()

	categories := []*entity.Category{}
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			r.log.Error("Failed to scan category row", zap.Error(err))
			return nil, fmt.Errorf("scan category row: %w", err)
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate category rows: %w", err)
	}

	return categories, nil
}

func (r *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	query := `
		UPDATE categories
		SET name = $2, imgurl = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.db.QueryRow(ctx, query,
		category.ID,
		category.Name,
		category.ImgURL,
	).Scan(&category.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("update category %d: %w", category.ID, ErrNotFound)
	}
	if err != nil {
		r.log.Error("Failed to update category",
			zap.Error(err),
			zap.Int64("category_id", category.ID),
		)
		return fmt.Errorf("update category %d: %w", category.ID, err)
	}

	return nil
}

func (r *categoryRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete category",
			zap.Error(err),
			zap.Int64("category_id", id),
		)
		return fmt.Errorf("delete category %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete category %d: %w", id, ErrNotFound)
	}

	r.log.Info("Category deleted", zap.Int64("category_id", id))
	return nil
}
