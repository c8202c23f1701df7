package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"restaurant-ops/internal/data/entity"
	"restaurant-ops/internal/data/repository"
	"restaurant-ops/internal/dto/request"
	"restaurant-ops/internal/dto/response"
	"restaurant-ops/pkg/messaging"

	"go.uber.org/zap"
)

const (
	orderDateLayout = "2006-01-02"
	orderTimeLayout = "15:04"
)

// Order event types published to the order topic.
const (
	OrderEventCreated       = "order.created"
	OrderEventStatusChanged = "order.status_changed"
)

type OrderEvent struct {
	Type         string             `json:"type"`
	OrderID      int64              `json:"orderId"`
	RestaurantID int64              `json:"restaurantId"`
	Status       entity.OrderStatus `json:"status"`
	TotalAmount  float64            `json:"totalAmount"`
	OccurredAt   time.Time          `json:"occurredAt"`
}

type OrderService interface {
	GetOrdersByRestaurant(ctx context.Context, restaurantID int64) ([]response.OrderResponse, error)
	GetOrderByID(ctx context.Context, id int64) (*response.OrderResponse, error)

	// CreateOrder stores the order and its items atomically.
	CreateOrder(ctx context.Context, req *request.CreateOrderRequest) (*response.OrderCreatedResponse, error)
	UpdateOrder(ctx context.Context, id int64, req *request.UpdateOrderRequest) (*response.OrderResponse, error)
	DeleteOrder(ctx context.Context, id int64) (*response.OrderResponse, error)
}

type orderService struct {
	repo      *repository.Repository
	publisher messaging.Publisher
	now       func() time.Time
	log       *zap.Logger
}

func NewOrderService(repo *repository.Repository, publisher messaging.Publisher, log *zap.Logger) OrderService {
	if publisher == nil {
		publisher = messaging.NopPublisher{}
	}
	return &orderService{
		repo:      repo,
		publisher: publisher,
		now:       time.Now,
		log:       log.With(zap.String("service", "order")),
	}
}

func (s *orderService) GetOrdersByRestaurant(ctx context.Context, restaurantID int64) ([]response.OrderResponse, error) {
	if _, err := requireRestaurant(ctx, s.repo.Restaurant, restaurantID); err != nil {
		return nil, err
	}

	orders, err := s.repo.Order.FindByRestaurantID(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("get orders for restaurant %d: %w", restaurantID, err)
	}

	return response.OrdersToResponse(orders), nil
}

func (s *orderService) GetOrderByID(ctx context.Context, id int64) (*response.OrderResponse, error) {
	order, err := s.findOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.Order.FindItems(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get items for order %d: %w", id, err)
	}

	resp := response.OrderToResponse(order, items)
	return &resp, nil
}

func (s *orderService) CreateOrder(ctx context.Context, req *request.CreateOrderRequest) (*response.OrderCreatedResponse, error) {
	now := s.now()

	orderDate := now
	if req.OrderDate != "" {
		parsed, err := time.Parse(orderDateLayout, req.OrderDate)
		if err != nil {
			return nil, invalidInput("order_date %q is not YYYY-MM-DD", req.OrderDate)
		}
		orderDate = parsed
	}

	orderTime := req.OrderTime
	if orderTime == "" {
		orderTime = now.Format(orderTimeLayout)
	}

	order := &entity.Order{
		UserID:       req.UserID,
		RestaurantID: req.RestaurantID,
		TotalAmount:  *req.TotalAmount,
		OrderDate:    orderDate,
		OrderTime:    orderTime,
		ContactInfo:  req.ContactInfo,
		OrderType:    req.OrderType,
		TableNo:      req.TableNo,
		TrnxID:       req.TrnxID,
		TrnxReceipt:  req.TrnxReceipt,
		Status:       entity.OrderStatusPending,
	}

	items := make([]*entity.OrderItem, len(req.OrderItems))
	for i, item := range req.OrderItems {
		items[i] = &entity.OrderItem{
			DishID:   int64(item.DishID),
			UnitRate: float64(*item.UnitRate),
			Quantity: int(item.Quantity),
			Price:    float64(*item.Price),
		}
	}

	if err := s.repo.Order.CreateWithItems(ctx, order, items); err != nil {
		return nil, translateError(err, "order", 0)
	}

	s.log.Info("Order created",
		zap.Int64("order_id", order.ID),
		zap.Int64("restaurant_id", order.RestaurantID),
		zap.Int("item_count", len(items)),
		zap.Float64("total_amount", order.TotalAmount),
	)

	s.publish(ctx, OrderEventCreated, order)

	return &response.OrderCreatedResponse{OrderID: order.ID}, nil
}

func (s *orderService) UpdateOrder(ctx context.Context, id int64, req *request.UpdateOrderRequest) (*response.OrderResponse, error) {
	order, err := s.findOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	previous := order.Status
	order.Status = entity.OrderStatus(req.Status)

	if req.ContactInfo != nil {
		order.ContactInfo = req.ContactInfo
	}
	if req.TableNo != nil {
		order.TableNo = req.TableNo
	}
	if req.TrnxID != nil {
		order.TrnxID = req.TrnxID
	}
	if req.TrnxReceipt != nil {
		order.TrnxReceipt = req.TrnxReceipt
	}

	if err := s.repo.Order.Update(ctx, order); err != nil {
		return nil, translateError(err, "order", id)
	}

	s.log.Info("Order updated",
		zap.Int64("order_id", id),
		zap.String("from_status", string(previous)),
		zap.String("to_status", string(order.Status)),
	)

	if previous != order.Status {
		s.publish(ctx, OrderEventStatusChanged, order)
	}

	return s.GetOrderByID(ctx, id)
}

func (s *orderService) DeleteOrder(ctx context.Context, id int64) (*response.OrderResponse, error) {
	order, err := s.findOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.Order.FindItems(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get items for order %d: %w", id, err)
	}

	if err := s.repo.Order.Delete(ctx, id); err != nil {
		return nil, translateError(err, "order", id)
	}

	s.log.Info("Order deleted", zap.Int64("order_id", id))

	resp := response.OrderToResponse(order, items)
	return &resp, nil
}

func (s *orderService) findOrder(ctx context.Context, id int64) (*entity.Order, error) {
	order, err := s.repo.Order.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order %d: %w", id, err)
	}
	if order == nil {
		return nil, notFound("order", id)
	}
	return order, nil
}

// publish is best effort; the order is already committed.
func (s *orderService) publish(ctx context.Context, eventType string, order *entity.Order) {
	event := OrderEvent{
		Type:         eventType,
		OrderID:      order.ID,
		RestaurantID: order.RestaurantID,
		Status:       order.Status,
		TotalAmount:  order.TotalAmount,
		OccurredAt:   s.now().UTC(),
	}

	if err := s.publisher.Publish(ctx, strconv.FormatInt(order.RestaurantID, 10), event); err != nil {
		s.log.Warn("Failed to publish order event",
			zap.Error(err),
			zap.String("type", eventType),
			zap.Int64("order_id", order.ID),
		)
	}
}
