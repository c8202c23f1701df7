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

type ParkingSlotService interface {
	GetParkingSlotsByRestaurant(ctx context.Context, restaurantID int64) ([]response.ParkingSlotResponse, error)
	GetParkingSlotByID(ctx context.Context, id int64) (*response.ParkingSlotResponse, error)
	CreateParkingSlot(ctx context.Context, req *request.CreateParkingSlotRequest) (*response.ParkingSlotResponse, error)
	UpdateParkingSlot(ctx context.Context, id int64, req *request.UpdateParkingSlotRequest) (*response.ParkingSlotResponse, error)
	DeleteParkingSlot(ctx context.Context, id int64) (*response.ParkingSlotResponse, error)
}

type parkingSlotService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewParkingSlotService(repo *repository.Repository, log *zap.Logger) ParkingSlotService {
	return &parkingSlotService{
		repo: repo,
		log:  log.With(zap.String("service", "parking_slot")),
	}
}

func (s *parkingSlotService) GetParkingSlotsByRestaurant(ctx context.Context, restaurantID int64) ([]response.ParkingSlotResponse, error) {
	if _, err := requireRestaurant(ctx, s.repo.Restaurant, restaurantID); err != nil {
		return nil, err
	}

	slots, err := s.repo.ParkingSlot.FindByRestaurantID(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("get parking slots for restaurant %d: %w", restaurantID, err)
	}

	return response.ParkingSlotsToResponse(slots), nil
}

func (s *parkingSlotService) GetParkingSlotByID(ctx context.Context, id int64) (*response.ParkingSlotResponse, error) {
	slot, err := s.findSlot(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := response.ParkingSlotToResponse(slot)
	return &resp, nil
}

func (s *parkingSlotService) CreateParkingSlot(ctx context.Context, req *request.CreateParkingSlotRequest) (*response.ParkingSlotResponse, error) {
	if _, err := requireRestaurant(ctx, s.repo.Restaurant, req.RestaurantID); err != nil {
		return nil, err
	}

	if err := s.checkNumberFree(ctx, req.RestaurantID, req.SlotNumber, 0); err != nil {
		return nil, err
	}

	status := entity.SpotStatusAvailable
	if req.Status != "" {
		status = entity.SpotStatus(req.Status)
	}

	slot := &entity.ParkingSlot{
		RestaurantID: req.RestaurantID,
		SlotNumber:   req.SlotNumber,
		Status:       status,
	}

	if err := s.repo.ParkingSlot.Create(ctx, slot); err != nil {
		return nil, translateError(err, "parking slot "+req.SlotNumber, 0)
	}

	s.log.Info("Parking slot created",
		zap.Int64("slot_id", slot.ID),
		zap.Int64("restaurant_id", slot.RestaurantID),
		zap.String("slot_number", slot.SlotNumber),
	)

	resp := response.ParkingSlotToResponse(slot)
	return &resp, nil
}

func (s *parkingSlotService) UpdateParkingSlot(ctx context.Context, id int64, req *request.UpdateParkingSlotRequest) (*response.ParkingSlotResponse, error) {
	slot, err := s.findSlot(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.SlotNumber != nil && *req.SlotNumber != slot.SlotNumber {
		if err := s.checkNumberFree(ctx, slot.RestaurantID, *req.SlotNumber, id); err != nil {
			return nil, err
		}
		slot.SlotNumber = *req.SlotNumber
	}
	if req.Status != nil {
		slot.Status = entity.SpotStatus(*req.Status)
	}

	if err := s.repo.ParkingSlot.Update(ctx, slot); err != nil {
		return nil, translateError(err, "parking slot", id)
	}

	resp := response.ParkingSlotToResponse(slot)
	return &resp, nil
}

func (s *parkingSlotService) DeleteParkingSlot(ctx context.Context, id int64) (*response.ParkingSlotResponse, error) {
	slot, err := s.findSlot(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.ParkingSlot.Delete(ctx, id); err != nil {
		return nil, translateError(err, "parking slot", id)
	}

	s.log.Info("Parking slot deleted", zap.Int64("slot_id", id))

	resp := response.ParkingSlotToResponse(slot)
	return &resp, nil
}

func (s *parkingSlotService) findSlot(ctx context.Context, id int64) (*entity.ParkingSlot, error) {
	slot, err := s.repo.ParkingSlot.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get parking slot %d: %w", id, err)
	}
	if slot == nil {
		return nil, notFound("parking slot", id)
	}
	return slot, nil
}

func (s *parkingSlotService) checkNumberFree(ctx context.Context, restaurantID int64, number string, selfID int64) error {
	existing, err := s.repo.ParkingSlot.FindByNumber(ctx, restaurantID, number)
	if err != nil {
		return fmt.Errorf("check parking slot number: %w", err)
	}
	if existing != nil && existing.ID != selfID {
		return fmt.Errorf("parking slot %s in restaurant %d %w", number, restaurantID, ErrConflict)
	}
	return nil
}
