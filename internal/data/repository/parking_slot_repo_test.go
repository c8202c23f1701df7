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

var parkingSlotRowColumns = []string{"id", "restaurant_id", "slot_number", "status", "created_at", "updated_at"}

func TestParkingSlotRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`INSERT INTO parking_slots`).
		WithArgs(int64(7), "P1", entity.SpotStatusAvailable).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(5), at, at))

	slot := &entity.ParkingSlot{RestaurantID: 7, SlotNumber: "P1", Status: entity.SpotStatusAvailable}
	repo := NewParkingSlotRepository(mock, zap.NewNop())
	err = repo.Create(context.Background(), slot)

	require.NoError(t, err)
	assert.Equal(t, int64(5), slot.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestParkingSlotRepository_FindByRestaurantID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	rows := pgxmock.NewRows(parkingSlotRowColumns).
		AddRow(int64(5), int64(7), "P1", entity.SpotStatusAvailable, time.Time{}, time.Time{}).
		AddRow(int64(6), int64(7), "P2", entity.SpotStatusReserved, time.Time{}, time.Time{})

	mock.ExpectQuery(regexp.QuoteMeta(`FROM parking_slots WHERE restaurant_id = $1 ORDER BY slot_number, id`)).
		WithArgs(int64(7)).
		WillReturnRows(rows)

	repo := NewParkingSlotRepository(mock, zap.NewNop())
	slots, err := repo.FindByRestaurantID(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, "P1", slots[0].SlotNumber)
	assert.Equal(t, entity.SpotStatusReserved, slots[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestParkingSlotRepository_FindByNumber_Free(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE restaurant_id = $1 AND slot_number = $2`)).
		WithArgs(int64(7), "P9").
		WillReturnRows(pgxmock.NewRows(parkingSlotRowColumns))

	repo := NewParkingSlotRepository(mock, zap.NewNop())
	slot, err := repo.FindByNumber(context.Background(), 7, "P9")

	assert.NoError(t, err)
	assert.Nil(t, slot)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestParkingSlotRepository_Update_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`UPDATE parking_slots`).
		WithArgs(int64(5), "P1", entity.SpotStatusOccupied).
		WillReturnRows(pgxmock.NewRows([]string{"updated_at"}))

	repo := NewParkingSlotRepository(mock, zap.NewNop())
	err = repo.Update(context.Background(), &entity.ParkingSlot{
		Base:       entity.Base{ID: 5},
		SlotNumber: "P1",
		Status:     entity.SpotStatusOccupied,
	})

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestParkingSlotRepository_Delete_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`DELETE FROM parking_slots`).WithArgs(int64(5)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	repo := NewParkingSlotRepository(mock, zap.NewNop())
	err = repo.Delete(context.Background(), 5)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
