package usecase

import (
	"context"
	"fmt"

	"restaurant-ops/internal/data/entity"
	"restaurant-ops/internal/data/repository"
	"restaurant-ops/internal/dto/request"
	"restaurant-ops/internal/dto/response"
	"restaurant-ops/pkg/utils"

	"go.uber.org/zap"
)

type TableService interface {
	GetTablesByRestaurant(ctx context.Context, restaurantID int64) ([]response.TableResponse, error)
	GetTableByID(ctx context.Context, id int64) (*response.TableResponse, error)
	CreateTable(ctx context.Context, req *request.CreateTableRequest) (*response.TableResponse, error)
	UpdateTable(ctx context.Context, id int64, req *request.UpdateTableRequest) (*response.TableResponse, error)
	DeleteTable(ctx context.Context, id int64) (*response.TableResponse, error)

	// GetTableQRCode renders a PNG linking to the restaurant's public menu for this table.
	GetTableQRCode(ctx context.Context, id int64) ([]byte, error)
}

type tableService struct {
	repo      *repository.Repository
	publicURL string
	log       *zap.Logger
}

func NewTableService(repo *repository.Repository, publicURL string, log *zap.Logger) TableService {
	return &tableService{
		repo:      repo,
		publicURL: publicURL,
		log:       log.With(zap.String("service", "table")),
	}
}

func (s *tableService) GetTablesByRestaurant(ctx context.Context, restaurantID int64) ([]response.TableResponse, error) {
	if _, err := requireRestaurant(ctx, s.repo.Restaurant, restaurantID); err != nil {
		return nil, err
	}

	tables, err := s.repo.Table.FindByRestaurantID(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("get tables for restaurant %d: %w", restaurantID, err)
	}

	return response.TablesToResponse(tables), nil
}

func (s *tableService) GetTableByID(ctx context.Context, id int64) (*response.TableResponse, error) {
	table, err := s.findTable(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := response.TableToResponse(table)
	return &resp, nil
}

func (s *tableService) CreateTable(ctx context.Context, req *request.CreateTableRequest) (*response.TableResponse, error) {
	if _, err := requireRestaurant(ctx, s.repo.Restaurant, req.RestaurantID); err != nil {
		return nil, err
	}

	if err := s.checkNumberFree(ctx, req.RestaurantID, req.TableNumber, 0); err != nil {
		return nil, err
	}

	status := entity.SpotStatusAvailable
	if req.Status != "" {
		status = entity.SpotStatus(req.Status)
	}

	table := &entity.Table{
		RestaurantID: req.RestaurantID,
		TableNumber:  req.TableNumber,
		Capacity:     req.Capacity,
		Status:       status,
	}

	if err := s.repo.Table.Create(ctx, table); err != nil {
		return nil, translateError(err, "table "+req.TableNumber, 0)
	}

	s.log.Info("Table created",
		zap.Int64("table_id", table.ID),
		zap.Int64("restaurant_id", table.RestaurantID),
		zap.String("table_number", table.TableNumber),
	)

	resp := response.TableToResponse(table)
	return &resp, nil
}

func (s *tableService) UpdateTable(ctx context.Context, id int64, req *request.UpdateTableRequest) (*response.TableResponse, error) {
	table, err := s.findTable(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.TableNumber != nil && *req.TableNumber != table.TableNumber {
		if err := s.checkNumberFree(ctx, table.RestaurantID, *req.TableNumber, id); err != nil {
			return nil, err
		}
		table.TableNumber = *req.TableNumber
	}
	if req.Capacity != nil {
		table.Capacity = *req.Capacity
	}
	if req.Status != nil {
		table.Status = entity.SpotStatus(*req.Status)
	}

	if err := s.repo.Table.Update(ctx, table); err != nil {
		return nil, translateError(err, "table", id)
	}

	s.log.Info("Table updated",
		zap.Int64("table_id", id),
		zap.String("status", string(table.Status)),
	)

	resp := response.TableToResponse(table)
	return &resp, nil
}

func (s *tableService) DeleteTable(ctx context.Context, id int64) (*response.TableResponse, error) {
	table, err := s.findTable(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Table.Delete(ctx, id); err != nil {
		return nil, translateError(err, "table", id)
	}

	s.log.Info("Table deleted", zap.Int64("table_id", id))

	resp := response.TableToResponse(table)
	return &resp, nil
}

func (s *tableService) GetTableQRCode(ctx context.Context, id int64) ([]byte, error) {
	table, err := s.findTable(ctx, id)
	if err != nil {
		return nil, err
	}

	link := utils.TableMenuURL(s.publicURL, table.RestaurantID, table.TableNumber)
	png, err := utils.EncodeQRCode(link)
	if err != nil {
		s.log.Error("Failed to encode table QR code",
			zap.Error(err),
			zap.Int64("table_id", id),
		)
		return nil, fmt.Errorf("encode QR code for table %d: %w", id, err)
	}

	return png, nil
}

func (s *tableService) findTable(ctx context.Context, id int64) (*entity.Table, error) {
	table, err := s.repo.Table.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get table %d: %w", id, err)
	}
	if table == nil {
		return nil, notFound("table", id)
	}
	return table, nil
}

// checkNumberFree rejects a table number already used in the restaurant by a table other than selfID.
func (s *tableService) checkNumberFree(ctx context.Context, restaurantID int64, number string, selfID int64) error {
	existing, err := s.repo.Table.FindByNumber(ctx, restaurantID, number)
	if err != nil {
		return fmt.Errorf("check table number: %w", err)
	}
	if existing != nil && existing.ID != selfID {
		return fmt.Errorf("table %s in restaurant %d %w", number, restaurantID, ErrConflict)
	}
	return nil
}
