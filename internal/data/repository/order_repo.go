package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"restaurant-ops/internal/data/entity"
	"restaurant-ops/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type OrderRepository interface {
	// CreateWithItems inserts the order and all of its items in one transaction.
	CreateWithItems(ctx context.Context, order *entity.Order, items []*entity.OrderItem) error
	FindByID(ctx context.Context, id int64) (*entity.Order, error)
	FindByRestaurantID(ctx context.Context, restaurantID int64) ([]*entity.Order, error)
	FindItems(ctx context.Context, orderID int64) ([]*entity.OrderItem, error)
	Update(ctx context.Context, order *entity.Order) error
	Delete(ctx context.Context, id int64) error
}

type orderRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderRepository(db database.PgxIface, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log.With(zap.String("repository", "order")),
	}
}

const orderSelect = `
	SELECT o.id, o.user_id, o.restaurant_id, o.total_amount, o.order_date, o.order_time,
	       o.contact_info, o.order_type, o.table_no, o.trnx_id, o.trnx_receipt, o.status,
	       o.created_at, o.updated_at, COALESCE(u.email, '')
	FROM orders o
	LEFT JOIN users u ON u.id = o.user_id
`

const orderItemColumns = 5

func scanOrder(row rowScanner) (*entity.Order, error) {
	var order entity.Order
	err := row.Scan(
		&order.ID,
		&order.UserID,
		&order.RestaurantID,
		&order.TotalAmount,
		&order.OrderDate,
		&order.OrderTime,
		&order.ContactInfo,
		&order.OrderType,
		&order.TableNo,
		&order.TrnxID,
		&order.TrnxReceipt,
		&order.Status,
		&order.CreatedAt,
		&order.UpdatedAt,
		&order.UserEmail,
	)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) CreateWithItems(ctx context.Context, order *entity.Order, items []*entity.OrderItem) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin order transaction", zap.Error(err))
		return fmt.Errorf("begin order transaction: %w", err)
	}
	// no-op once committed
	defer tx.Rollback(ctx)

	orderQuery := `
		INSERT INTO orders (user_id, restaurant_id, total_amount, order_date, order_time, contact_info,
		                    order_type, table_no, trnx_id, trnx_receipt, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`

	err = tx.QueryRow(ctx, orderQuery,
		order.UserID,
		order.RestaurantID,
		order.TotalAmount,
		order.OrderDate,
		order.OrderTime,
		order.ContactInfo,
		order.OrderType,
		order.TableNo,
		order.TrnxID,
		order.TrnxReceipt,
		order.Status,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		r.log.Error("Failed to create order",
			zap.Error(err),
			zap.Int64("user_id", order.UserID),
			zap.Int64("restaurant_id", order.RestaurantID),
		)
		return fmt.Errorf("create order for restaurant %d: %w", order.RestaurantID, err)
	}

	if len(items) > 0 {
		query, args := buildOrderItemsInsert(order.ID, items)
		if _, err := tx.Exec(ctx, query, args...); err != nil {
			r.log.Error("Failed to create order items",
				zap.Error(err),
				zap.Int64("order_id", order.ID),
				zap.Int("item_count", len(items)),
			)
			return fmt.Errorf("create items for order %d: %w", order.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit order transaction",
			zap.Error(err),
			zap.Int64("order_id", order.ID),
		)
		return fmt.Errorf("commit order %d: %w", order.ID, err)
	}

	for _, item := range items {
		item.OrderID = order.ID
	}

	return nil
}

// buildOrderItemsInsert renders one multi-row INSERT for all items.
func buildOrderItemsInsert(orderID int64, items []*entity.OrderItem) (string, []any) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`INSERT INTO order_items (order_id, dish_id, unit_rate, quantity, price) VALUES `)

	args := make([]any, 0, len(items)*orderItemColumns)
	for i, item := range items {
		if i > 0 {
			queryBuilder.WriteString(", ")
		}
		n := i * orderItemColumns
		queryBuilder.WriteString(fmt.Sprintf("($%d, $%d, $%d, $%d, $%d)", n+1, n+2, n+3, n+4, n+5))
		args = append(args, orderID, item.DishID, item.UnitRate, item.Quantity, item.Price)
	}

	return queryBuilder.String(), args
}

func (r *orderRepository) FindByID(ctx context.Context, id int64) (*entity.Order, error) {
	order, err := scanOrder(r.db.QueryRow(ctx, orderSelect+` WHERE o.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find order by ID",
			zap.Error(err),
			zap.Int64("order_id", id),
		)
		return nil, fmt.Errorf("find order by ID %d: %w", id, err)
	}

	return order, nil
}

func (r *orderRepository) FindByRestaurantID(ctx context.Context, restaurantID int64) ([]*entity.Order, error) {
	query := orderSelect + ` WHERE o.restaurant_id = $1 ORDER BY o.created_at DESC, o.id DESC`

	rows, err := r.db.Query(ctx, query, restaurantID)
	if err != nil {
		r.log.Error("Failed to find orders by restaurant",
			zap.Error(err),
			zap.Int64("restaurant_id", restaurantID),
		)
		return nil, fmt.Errorf("find orders for restaurant %d: %w", restaurantID, err)
	}
	defer rows.Close()

	orders := []*entity.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			r.log.Error("Failed to scan order row", zap.Error(err))
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}

	return orders, nil
}

func (r *orderRepository) FindItems(ctx context.Context, orderID int64) ([]*entity.OrderItem, error) {
	query := `
		SELECT i.id, i.order_id, i.dish_id, i.unit_rate, i.quantity, i.price, COALESCE(d.name, '')
		FROM order_items i
		LEFT JOIN dishes d ON d.id = i.dish_id
		WHERE i.order_id = $1
		ORDER BY i.id
	`

	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		r.log.Error("Failed to find order items",
			zap.Error(err),
			zap.Int64("order_id", orderID),
		)
		return nil, fmt.Errorf("find items for order %d: %w", orderID, err)
	}
	defer rows.Close()

	items := []*entity.OrderItem{}
	for rows.Next() {
		var item entity.OrderItem
		if err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.DishID,
			&item.UnitRate,
			&item.Quantity,
			&item.Price,
			&item.DishName,
		); err != nil {
			r.log.Error("Failed to scan order item row", zap.Error(err))
			return nil, fmt.Errorf("scan order item row: %w", err)
		}
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate order item rows: %w", err)
	}

	return items, nil
}

func (r *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	query := `
		UPDATE orders
		SET status = $2, contact_info = $3, table_no = $4, trnx_id = $5, trnx_receipt = $6,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.db.QueryRow(ctx, query,
		order.ID,
		order.Status,
		order.ContactInfo,
		order.TableNo,
		order.TrnxID,
		order.TrnxReceipt,
	).Scan(&order.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("update order %d: %w", order.ID, ErrNotFound)
	}
	if err != nil {
		r.log.Error("Failed to update order",
			zap.Error(err),
			zap.Int64("order_id", order.ID),
		)
		return fmt.Errorf("update order %d: %w", order.ID, err)
	}

	return nil
}

// Delete removes the order; order_items go with it through ON DELETE CASCADE.
func (r *orderRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete order",
			zap.Error(err),
			zap.Int64("order_id", id),
		)
		return fmt.Errorf("delete order %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete order %d: %w", id, ErrNotFound)
	}

	r.log.Info("Order deleted", zap.Int64("order_id", id))
	return nil
}
