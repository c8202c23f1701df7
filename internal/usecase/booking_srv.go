package usecase

import (
	"context"
	"fmt"

	"restaurant-ops/internal/data/entity"
	"restaurant-ops/internal/data/repository"
	"restaurant-ops/internal/dto/request"
	"restaurant-ops/internal/dto/response"

	"go.uber.org/zap"
)

type BookingService interface {
	GetBookingsByRestaurant(ctx context.Context, restaurantID int64) ([]response.BookingResponse, error)
	GetBookingByID(ctx context.Context, id int64) (*response.BookingResponse, error)
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)

	// UpdateBooking accepts any status from any status.
	UpdateBooking(ctx context.Context, id int64, req *request.UpdateBookingRequest) (*response.BookingResponse, error)
	DeleteBooking(ctx context.Context, id int64) (*response.BookingResponse, error)
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) GetBookingsByRestaurant(ctx context.Context, restaurantID int64) ([]response.BookingResponse, error) {
	if _, err := requireRestaurant(ctx, s.repo.Restaurant, restaurantID); err != nil {
		return nil, err
	}

	bookings, err := s.repo.Booking.FindByRestaurantID(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("get bookings for restaurant %d: %w", restaurantID, err)
	}

	return response.BookingsToResponse(bookings), nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, id int64) (*response.BookingResponse, error) {
	booking, err := s.findBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if _, err := requireRestaurant(ctx, s.repo.Restaurant, req.RestaurantID); err != nil {
		return nil, err
	}

	if err := s.checkTable(ctx, req.TableID, req.RestaurantID); err != nil {
		return nil, err
	}

	status := entity.BookingStatusPending
	if req.Status != "" {
		status = entity.BookingStatus(req.Status)
	}

	booking := &entity.Booking{
		UserID:       req.UserID,
		RestaurantID: req.RestaurantID,
		TableID:      req.TableID,
		BookingTime:  req.BookingTime,
		Status:       status,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		return nil, translateError(err, "booking", 0)
	}

	s.log.Info("Booking created",
		zap.Int64("booking_id", booking.ID),
		zap.Int64("restaurant_id", booking.RestaurantID),
		zap.Int64("table_id", booking.TableID),
		zap.Time("booking_time", booking.BookingTime),
	)

	return s.GetBookingByID(ctx, booking.ID)
}

func (s *bookingService) UpdateBooking(ctx context.Context, id int64, req *request.UpdateBookingRequest) (*response.BookingResponse, error) {
	booking, err := s.findBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.TableID != nil && *req.TableID != booking.TableID {
		if err := s.checkTable(ctx, *req.TableID, booking.RestaurantID); err != nil {
			return nil, err
		}
		booking.TableID = *req.TableID
	}
	if req.BookingTime != nil {
		booking.BookingTime = *req.BookingTime
	}

	previous := booking.Status
	booking.Status = entity.BookingStatus(req.Status)

	if err := s.repo.Booking.Update(ctx, booking); err != nil {
		return nil, translateError(err, "booking", id)
	}

	s.log.Info("Booking updated",
		zap.Int64("booking_id", id),
		zap.String("from_status", string(previous)),
		zap.String("to_status", string(booking.Status)),
	)

	return s.GetBookingByID(ctx, id)
}

func (s *bookingService) DeleteBooking(ctx context.Context, id int64) (*response.BookingResponse, error) {
	booking, err := s.findBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Booking.Delete(ctx, id); err != nil {
		return nil, translateError(err, "booking", id)
	}

	s.log.Info("Booking deleted", zap.Int64("booking_id", id))

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) findBooking(ctx context.Context, id int64) (*entity.Booking, error) {
	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking %d: %w", id, err)
	}
	if booking == nil {
		return nil, notFound("booking", id)
	}
	return booking, nil
}

// checkTable requires the table to exist and sit in the booked restaurant.
func (s *bookingService) checkTable(ctx context.Context, tableID, restaurantID int64) error {
	table, err := s.repo.Table.FindByID(ctx, tableID)
	if err != nil {
		return fmt.Errorf("get table %d: %w", tableID, err)
	}
	if table == nil {
		return notFound("table", tableID)
	}
	if table.RestaurantID != restaurantID {
		return invalidInput("table %d does not belong to restaurant %d", tableID, restaurantID)
	}
	return nil
}
