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

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id int64) (*entity.Booking, error)
	FindByRestaurantID(ctx context.Context, restaurantID int64) ([]*entity.Booking, error)
	Update(ctx context.Context, booking *entity.Booking) error
	Delete(ctx context.Context, id int64) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

// bookingSelect carries the user email and table number shown on the dashboard.
const bookingSelect = `
	SELECT b.id, b.user_id, b.restaurant_id, b.table_id, b.booking_time, b.status,
	       b.created_at, b.updated_at, COALESCE(u.email, ''), COALESCE(t.table_number, '')
	FROM bookings b
	LEFT JOIN users u ON u.id = b.user_id
	LEFT JOIN tables t ON t.id = b.table_id
`

func scanBooking(row rowScanner) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.RestaurantID,
		&booking.TableID,
		&booking.BookingTime,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
		&booking.UserEmail,
		&booking.TableNumber,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (user_id, restaurant_id, table_id, booking_time, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		booking.UserID,
		booking.RestaurantID,
		booking.TableID,
		booking.BookingTime,
		booking.Status,
	).Scan(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.Int64("user_id", booking.UserID),
			zap.Int64("restaurant_id", booking.RestaurantID),
			zap.Int64("table_id", booking.TableID),
		)
		return fmt.Errorf("create booking for table %d: %w", booking.TableID, err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id int64) (*entity.Booking, error) {
	booking, err := scanBooking(r.db.QueryRow(ctx, bookingSelect+` WHERE b.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.Int64("booking_id", id),
		)
		return nil, fmt.Errorf("find booking by ID %d: %w", id, err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByRestaurantID(ctx context.Context, restaurantID int64) ([]*entity.Booking, error) {
	query := bookingSelect + ` WHERE b.restaurant_id = $1 ORDER BY b.booking_time DESC, b.id DESC`

	rows, err := r.db.Query(ctx, query, restaurantID)
	if err != nil {
		r.log.Error("Failed to find bookings by restaurant",
			zap.Error(err),
			zap.Int64("restaurant_id", restaurantID),
		)
		return nil, fmt.Errorf("find bookings for restaurant %d: %w", restaurantID, err)
	}
	defer rows.Close()

	bookings := []*entity.Booking{}
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate booking rows: %w", err)
	}

	return bookings, nil
}

func (r *bookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	query := `
		UPDATE bookings
		SET table_id = $2, booking_time = $3, status = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.db.QueryRow(ctx, query,
		booking.ID,
		booking.TableID,
		booking.BookingTime,
		booking.Status,
	).Scan(&booking.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("update booking %d: %w", booking.ID, ErrNotFound)
	}
	if err != nil {
		r.log.Error("Failed to update booking",
			zap.Error(err),
			zap.Int64("booking_id", booking.ID),
		)
		return fmt.Errorf("update booking %d: %w", booking.ID, err)
	}

	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.Int64("booking_id", id),
		)
		return fmt.Errorf("delete booking %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete booking %d: %w", id, ErrNotFound)
	}

	r.log.Info("Booking deleted", zap.Int64("booking_id", id))
	return nil
}
