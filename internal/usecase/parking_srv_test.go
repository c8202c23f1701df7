package usecase

import (
	"context"
	"testing"

	"restaurant-ops/internal/data/entity"
	"restaurant-ops/internal/dto/request"
	"restaurant-ops/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParkingSlotService_CreateParkingSlot(t *testing.T) {
	t.Run("defaults to available", func(t *testing.T) {
		repos := mocks.NewRepositories()
		svc := NewParkingSlotService(repos.Repository(), zap.NewNop())

		repos.Restaurant.On("FindByID", mock.Anything, int64(7)).
			Return(&entity.Restaurant{Base: entity.Base{ID: 7}}, nil).Once()
		repos.ParkingSlot.On("FindByNumber", mock.Anything, int64(7), "P1").Return(nil, nil).Once()
		repos.ParkingSlot.On("Create", mock.Anything, mock.AnythingOfType("*entity.ParkingSlot")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*entity.ParkingSlot).ID = 5
			}).
			Return(nil).Once()

		resp, err := svc.CreateParkingSlot(context.Background(), &request.CreateParkingSlotRequest{
			RestaurantID: 7,
			SlotNumber:   "P1",
		})

		require.NoError(t, err)
		assert.Equal(t, int64(5), resp.ID)
		assert.Equal(t, entity.SpotStatusAvailable, resp.Status)
		repos.AssertExpectations(t)
	})

	t.Run("duplicate number", func(t *testing.T) {
		repos := mocks.NewRepositories()
		svc := NewParkingSlotService(repos.Repository(), zap.NewNop())

		repos.Restaurant.On("FindByID", mock.Anything, int64(7)).
			Return(&entity.Restaurant{Base: entity.Base{ID: 7}}, nil).Once()
		repos.ParkingSlot.On("FindByNumber", mock.Anything, int64(7), "P1").
			Return(&entity.ParkingSlot{Base: entity.Base{ID: 1}, RestaurantID: 7, SlotNumber: "P1"}, nil).Once()

		_, err := svc.CreateParkingSlot(context.Background(), &request.CreateParkingSlotRequest{
			RestaurantID: 7,
			SlotNumber:   "P1",
		})

		assert.ErrorIs(t, err, ErrConflict)
		repos.ParkingSlot.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestParkingSlotService_UpdateParkingSlot_RenumberToTakenSlot(t *testing.T) {
	repos := mocks.NewRepositories()
	svc := NewParkingSlotService(repos.Repository(), zap.NewNop())

	repos.ParkingSlot.On("FindByID", mock.Anything, int64(5)).
		Return(&entity.ParkingSlot{Base: entity.Base{ID: 5}, RestaurantID: 7, SlotNumber: "P1"}, nil).Once()
	repos.ParkingSlot.On("FindByNumber", mock.Anything, int64(7), "P2").
		Return(&entity.ParkingSlot{Base: entity.Base{ID: 6}, RestaurantID: 7, SlotNumber: "P2"}, nil).Once()

	number := "P2"
	_, err := svc.UpdateParkingSlot(context.Background(), 5, &request.UpdateParkingSlotRequest{SlotNumber: &number})

	assert.ErrorIs(t, err, ErrConflict)
	repos.ParkingSlot.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestParkingSlotService_DeleteParkingSlot_Missing(t *testing.T) {
	repos := mocks.NewRepositories()
	svc := NewParkingSlotService(repos.Repository(), zap.NewNop())

	repos.ParkingSlot.On("FindByID", mock.Anything, int64(5)).Return(nil, nil).Once()

	_, err := svc.DeleteParkingSlot(context.Background(), 5)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, "parking slot 5 not found")
}
