package usecase

import (
	"context"
	"testing"

	"restaurant-ops/internal/data/entity"
	"restaurant-ops/internal/dto/request"
	"restaurant-ops/internal/mocks"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func newSignupRequest() *request.CreateRestaurantRequest {
	return &request.CreateRestaurantRequest{
		Name:     "Warung Sate",
		Email:    "owner@sate.id",
		Password: "s3cret-pass",
		Phone:    "08123456789",
		Address:  "Jl. Melati 1",
	}
}

func TestRestaurantService_CreateRestaurant(t *testing.T) {
	tests := []struct {
		name      string
		existing  *entity.Restaurant
		createErr error
		wantErr   error
	}{
		{
			name: "new owner signs up",
		},
		{
			name:     "email already registered",
			existing: &entity.Restaurant{Base: entity.Base{ID: 3}, Email: "owner@sate.id"},
			wantErr:  ErrConflict,
		},
		{
			name:      "unique violation from a concurrent signup",
			createErr: &pgconn.PgError{Code: "23505"},
			wantErr:   ErrConflict,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(mocks.RestaurantRepository)
			svc := NewRestaurantService(repo, bcrypt.MinCost, zap.NewNop())
			req := newSignupRequest()

			repo.On("FindByEmail", mock.Anything, req.Email).Return(tc.existing, nil).Once()
			if tc.existing == nil {
				repo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Restaurant")).
					Run(func(args mock.Arguments) {
						args.Get(1).(*entity.Restaurant).ID = 11
					}).
					Return(tc.createErr).Once()
			}

			resp, err := svc.CreateRestaurant(context.Background(), req)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, resp)
			} else {
				require.NoError(t, err)
				assert.Equal(t, int64(11), resp.ID)
				assert.Equal(t, entity.RestaurantStatusDeActive, resp.Status)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestRestaurantService_CreateRestaurant_HashesPassword(t *testing.T) {
	repo := new(mocks.RestaurantRepository)
	svc := NewRestaurantService(repo, bcrypt.MinCost, zap.NewNop())
	req := newSignupRequest()

	var stored *entity.Restaurant
	repo.On("FindByEmail", mock.Anything, req.Email).Return(nil, nil).Once()
	repo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Restaurant")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*entity.Restaurant)
		}).
		Return(nil).Once()

	_, err := svc.CreateRestaurant(context.Background(), req)
	require.NoError(t, err)

	require.NotNil(t, stored)
	assert.NotEqual(t, req.Password, stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte(req.Password)))
}

func TestRestaurantService_GetRestaurantByID_NotFound(t *testing.T) {
	repo := new(mocks.RestaurantRepository)
	svc := NewRestaurantService(repo, bcrypt.MinCost, zap.NewNop())

	repo.On("FindByID", mock.Anything, int64(99)).Return(nil, nil).Once()

	resp, err := svc.GetRestaurantByID(context.Background(), 99)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, "restaurant 99 not found")
	assert.Nil(t, resp)
}

func TestRestaurantService_GetRestaurants_Paginates(t *testing.T) {
	repo := new(mocks.RestaurantRepository)
	svc := NewRestaurantService(repo, bcrypt.MinCost, zap.NewNop())

	restaurants := []*entity.Restaurant{
		{Base: entity.Base{ID: 11}, Name: "Warung Sate"},
		{Base: entity.Base{ID: 12}, Name: "Bakso Pak Kumis"},
	}
	repo.On("FindAll", mock.Anything, 10, 10).Return(restaurants, nil).Once()
	repo.On("CountAll", mock.Anything).Return(int64(22), nil).Once()

	resp, err := svc.GetRestaurants(context.Background(), &request.PaginatedRequest{Page: 2, PerPage: 10})

	require.NoError(t, err)
	assert.Len(t, resp.Data, 2)
	assert.Equal(t, int64(22), resp.Pagination.Total)
	assert.Equal(t, 3, resp.Pagination.TotalPages)
	assert.Equal(t, 2, resp.Pagination.Page)
	repo.AssertExpectations(t)
}

func TestRestaurantService_UpdateRestaurant_Partial(t *testing.T) {
	repo := new(mocks.RestaurantRepository)
	svc := NewRestaurantService(repo, bcrypt.MinCost, zap.NewNop())

	current := &entity.Restaurant{
		Base:    entity.Base{ID: 11},
		Name:    "Warung Sate",
		Email:   "owner@sate.id",
		Phone:   "0812",
		Address: "Jl. Melati 1",
		Status:  entity.RestaurantStatusDeActive,
	}
	repo.On("FindByID", mock.Anything, int64(11)).Return(current, nil).Once()
	repo.On("Update", mock.Anything, current).Return(nil).Once()

	name := "Warung Sate Madura"
	status := "ACTIVE"
	resp, err := svc.UpdateRestaurant(context.Background(), 11, &request.UpdateRestaurantRequest{
		Name:   &name,
		Status: &status,
	})

	require.NoError(t, err)
	assert.Equal(t, "Warung Sate Madura", resp.Name)
	assert.Equal(t, entity.RestaurantStatusActive, resp.Status)
	assert.Equal(t, "owner@sate.id", resp.Email)
	assert.Equal(t, "Jl. Melati 1", resp.Address)
	repo.AssertExpectations(t)
}

func TestRestaurantService_UpdateRestaurant_EmailTaken(t *testing.T) {
	repo := new(mocks.RestaurantRepository)
	svc := NewRestaurantService(repo, bcrypt.MinCost, zap.NewNop())

	repo.On("FindByID", mock.Anything, int64(11)).
		Return(&entity.Restaurant{Base: entity.Base{ID: 11}, Email: "owner@sate.id"}, nil).Once()
	repo.On("FindByEmail", mock.Anything, "other@bakso.id").
		Return(&entity.Restaurant{Base: entity.Base{ID: 12}, Email: "other@bakso.id"}, nil).Once()

	email := "other@bakso.id"
	_, err := svc.UpdateRestaurant(context.Background(), 11, &request.UpdateRestaurantRequest{Email: &email})

	assert.ErrorIs(t, err, ErrConflict)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestRestaurantService_DeleteRestaurant_EchoesRow(t *testing.T) {
	repo := new(mocks.RestaurantRepository)
	svc := NewRestaurantService(repo, bcrypt.MinCost, zap.NewNop())

	repo.On("FindByID", mock.Anything, int64(11)).
		Return(&entity.Restaurant{Base: entity.Base{ID: 11}, Name: "Warung Sate"}, nil).Once()
	repo.On("Delete", mock.Anything, int64(11)).Return(nil).Once()

	resp, err := svc.DeleteRestaurant(context.Background(), 11)

	require.NoError(t, err)
	assert.Equal(t, "Warung Sate", resp.Name)
	repo.AssertExpectations(t)
}
