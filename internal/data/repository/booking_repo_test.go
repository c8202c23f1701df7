package repository

import (
	"context"
	"testing"
	"time"

	"restaurant-ops/internal/data/entity"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBookingRepository_FindByRestaurantID_Joins(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	at := time.Date(2026, 4, 1, 19, 0, 0, 0, time.UTC)
	rows := pgxmock.NewRows([]string{
		"id", "user_id", "restaurant_id", "table_id", "booking_time", "status",
		"created_at", "updated_at", "email", "table_number",
	}).AddRow(int64(21), int64(5), int64(7), int64(4), at, entity.BookingStatusConfirmed, at, at, "guest@mail.id", "A4")

	mock.ExpectQuery(`LEFT JOIN tables t`).WithArgs(int64(7)).WillReturnRows(rows)

	repo := NewBookingRepository(mock, zap.NewNop())
	bookings, err := repo.FindByRestaurantID(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "guest@mail.id", bookings[0].UserEmail)
	assert.Equal(t, "A4", bookings[0].TableNumber)
	assert.Equal(t, entity.BookingStatusConfirmed, bookings[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
