package usecase

import (
	"context"
	"errors"
	"fmt"

	"restaurant-ops/internal/data/entity"
	"restaurant-ops/internal/data/repository"
	"restaurant-ops/pkg/database"
)

// Handlers map these to 404, 400 and 409.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("already exists")
)

func notFound(kind string, id int64) error {
	return fmt.Errorf("%s %d %w", kind, id, ErrNotFound)
}

func invalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// translateError turns repository and postgres failures into service errors.
func translateError(err error, kind string, id int64) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return notFound(kind, id)
	case database.IsUniqueViolation(err):
		return fmt.Errorf("%s %w", kind, ErrConflict)
	case database.IsForeignKeyViolation(err):
		return invalidInput("%s references a record that does not exist", kind)
	default:
		return err
	}
}

// isReferenced reports a delete blocked by rows that still point at the target.
func isReferenced(err error) bool {
	return database.IsForeignKeyViolation(err)
}

// requireRestaurant loads the parent restaurant of a list or create call.
func requireRestaurant(ctx context.Context, repo repository.RestaurantRepository, id int64) (*entity.Restaurant, error) {
	restaurant, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get restaurant %d: %w", id, err)
	}
	if restaurant == nil {
		return nil, notFound("restaurant", id)
	}
	return restaurant, nil
}
