package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"restaurant-ops/internal/data/entity"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var tableRowColumns = []string{"id", "restaurant_id", "table_number", "capacity", "status", "created_at", "updated_at"}

func TestTableRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`INSERT INTO tables`).
		WithArgs(int64(7), "A4", 4, entity.SpotStatusAvailable).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(4), at, at))

	table := &entity.Table{RestaurantID: 7, TableNumber: "A4", Capacity: 4, Status: entity.SpotStatusAvailable}
	repo := NewTableRepository(mock, zap.NewNop())
	err = repo.Create(context.Background(), table)

	require.NoError(t, err)
	assert.Equal(t, int64(4), table.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTableRepository_FindByNumber(t *testing.T) {
	tests := []struct {
		name      string
		rows      *pgxmock.Rows
		wantTable bool
	}{
		{
			name: "taken",
			rows: pgxmock.NewRows(tableRowColumns).
				AddRow(int64(4), int64(7), "A4", 4, entity.SpotStatusOccupied, time.Time{}, time.Time{}),
			wantTable: true,
		},
		{
			name: "free",
			rows: pgxmock.NewRows(tableRowColumns),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			mock.ExpectQuery(regexp.QuoteMeta(`WHERE restaurant_id = $1 AND table_number = $2`)).
				WithArgs(int64(7), "A4").
				WillReturnRows(tc.rows)

			repo := NewTableRepository(mock, zap.NewNop())
			table, err := repo.FindByNumber(context.Background(), 7, "A4")

			require.NoError(t, err)
			if tc.wantTable {
				require.NotNil(t, table)
				assert.Equal(t, entity.SpotStatusOccupied, table.Status)
			} else {
				assert.Nil(t, table)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTableRepository_FindByRestaurantID_Empty(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`FROM tables WHERE restaurant_id`).WithArgs(int64(7)).WillReturnRows(pgxmock.NewRows(tableRowColumns))

	repo := NewTableRepository(mock, zap.NewNop())
	tables, err := repo.FindByRestaurantID(context.Background(), 7)

	require.NoError(t, err)
	assert.NotNil(t, tables)
	assert.Empty(t, tables)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTableRepository_Update_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`UPDATE tables`).
		WithArgs(int64(4), "A4", 6, entity.SpotStatusReserved).
		WillReturnRows(pgxmock.NewRows([]string{"updated_at"}))

	repo := NewTableRepository(mock, zap.NewNop())
	err = repo.Update(context.Background(), &entity.Table{
		Base:        entity.Base{ID: 4},
		TableNumber: "A4",
		Capacity:    6,
		Status:      entity.SpotStatusReserved,
	})

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTableRepository_Delete(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{name: "row removed", affected: 1},
		{name: "no such table", affected: 0, wantErr: ErrNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			mock.ExpectExec(`DELETE FROM tables`).WithArgs(int64(4)).
				WillReturnResult(pgxmock.NewResult("DELETE", tc.affected))

			repo := NewTableRepository(mock, zap.NewNop())
			err = repo.Delete(context.Background(), 4)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
