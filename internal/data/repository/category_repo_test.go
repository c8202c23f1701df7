package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"restaurant-ops/internal/data/entity"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var categoryRowColumns = []string{"id", "restaurant_id", "name", "imgurl", "created_at", "updated_at"}

func TestCategoryRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`INSERT INTO categories`).
		WithArgs(int64(7), "Drinks", (*string)(nil)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(8), at, at))

	category := &entity.Category{RestaurantID: 7, Name: "Drinks"}
	repo := NewCategoryRepository(mock, zap.NewNop())
	err = repo.Create(context.Background(), category)

	require.NoError(t, err)
	assert.Equal(t, int64(8), category.ID)
	assert.Equal(t, at, category.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_Create_UnknownRestaurant(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`INSERT INTO categories`).
		WithArgs(int64(99), "Drinks", (*string)(nil)).
		WillReturnError(&pgconn.PgError{Code: "23503"})

	repo := NewCategoryRepository(mock, zap.NewNop())
	err = repo.Create(context.Background(), &entity.Category{RestaurantID: 99, Name: "Drinks"})

	var pgErr *pgconn.PgError
	require.True(t, errors.As(err, &pgErr))
	assert.Equal(t, "23503", pgErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_FindByRestaurantID(t *testing.T) {
	tests := []struct {
		name string
		rows *pgxmock.Rows
		want []string
	}{
		{
			name: "ordered rows",
			rows: pgxmock.NewRows(categoryRowColumns).
				AddRow(int64(2), int64(7), "Drinks", (*string)(nil), time.Time{}, time.Time{}).
				AddRow(int64(1), int64(7), "Mains", (*string)(nil), time.Time{}, time.Time{}),
			want: []string{"Drinks", "Mains"},
		},
		{
			name: "no categories",
			rows: pgxmock.NewRows(categoryRowColumns),
			want: []string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			mock.ExpectQuery(regexp.QuoteMeta(`FROM categories WHERE restaurant_id = $1 ORDER BY name, id`)).
				WithArgs(int64(7)).
				WillReturnRows(tc.rows)

			repo := NewCategoryRepository(mock, zap.NewNop())
			categories, err := repo.FindByRestaurantID(context.Background(), 7)

			require.NoError(t, err)
			require.NotNil(t, categories)
			names := make([]string, 0, len(categories))
			for _, c := range categories {
				names = append(names, c.Name)
			}
			assert.Equal(t, tc.want, names)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCategoryRepository_FindByID_NoRows(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`FROM categories WHERE id`).WithArgs(int64(8)).WillReturnRows(pgxmock.NewRows(categoryRowColumns))

	repo := NewCategoryRepository(mock, zap.NewNop())
	category, err := repo.FindByID(context.Background(), 8)

	assert.NoError(t, err)
	assert.Nil(t, category)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_Update_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`UPDATE categories`).
		WithArgs(int64(8), "Drinks", (*string)(nil)).
		WillReturnRows(pgxmock.NewRows([]string{"updated_at"}))

	repo := NewCategoryRepository(mock, zap.NewNop())
	err = repo.Update(context.Background(), &entity.Category{Base: entity.Base{ID: 8}, Name: "Drinks"})

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_Delete_Referenced(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`DELETE FROM categories`).WithArgs(int64(8)).
		WillReturnError(&pgconn.PgError{Code: "23503"})

	repo := NewCategoryRepository(mock, zap.NewNop())
	err = repo.Delete(context.Background(), 8)

	var pgErr *pgconn.PgError
	require.True(t, errors.As(err, &pgErr))
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
