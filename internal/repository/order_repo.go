package repository

import (
	"context"
	"errors"
	"fmt"

	"cloudshop/internal/model"

	"github.com/jackc/pgx/v5"
)

// OrderRepository defines operations for order data
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	FindByOrderID(ctx context.Context, orderID string) (*model.Order, error)
	FindByUser(ctx context.Context, userID int) ([]model.Order, error)
	// FindAll returns every order with the owner's username joined in,
	// newest first. Admin listing only.
	FindAll(ctx context.Context) ([]model.Order, error)
	UpdateStatus(ctx context.Context, orderID, status string) error
}

type orderRepository struct {
	db DB
}

// NewOrderRepository creates a new OrderRepository
func NewOrderRepository(db DB) OrderRepository {
	return &orderRepository{db: db}
}

const orderColumns = `id, order_id, user_id, server_id, cpu, memory, disk, bandwidth, ports, months,
            monthly_cost, total_cost, customer_name, customer_phone, customer_email, status, created_at`

// Create inserts a new order
func (r *orderRepository) Create(ctx context.Context, o *model.Order) error {
	sql := `INSERT INTO orders (order_id, user_id, server_id, cpu, memory, disk, bandwidth, ports, months,
                monthly_cost, total_cost, customer_name, customer_phone, customer_email, status, created_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16) RETURNING id`
	err := r.db.QueryRow(ctx, sql,
		o.OrderID, o.UserID, o.ServerID,
		o.Config.CPU, o.Config.Memory, o.Config.Disk, o.Config.Bandwidth, o.Config.Ports,
		o.Months, o.MonthlyCost, o.TotalCost,
		o.Customer.Name, o.Customer.Phone, o.Customer.Email,
		o.Status, o.CreatedAt,
	).Scan(&o.ID)
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// FindByOrderID retrieves an order by its public order id
func (r *orderRepository) FindByOrderID(ctx context.Context, orderID string) (*model.Order, error) {
	o := &model.Order{}
	sql := `SELECT ` + orderColumns + ` FROM orders WHERE order_id = $1`
	err := r.db.QueryRow(ctx, sql, orderID).Scan(
		&o.ID, &o.OrderID, &o.UserID, &o.ServerID,
		&o.Config.CPU, &o.Config.Memory, &o.Config.Disk, &o.Config.Bandwidth, &o.Config.Ports,
		&o.Months, &o.MonthlyCost, &o.TotalCost,
		&o.Customer.Name, &o.Customer.Phone, &o.Customer.Email,
		&o.Status, &o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find order: %w", err)
	}
	return o, nil
}

// FindByUser retrieves a user's orders, newest first
func (r *orderRepository) FindByUser(ctx context.Context, userID int) ([]model.Order, error) {
	sql := `SELECT ` + orderColumns + ` FROM orders WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, sql, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders by user: %w", err)
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(
			&o.ID, &o.OrderID, &o.UserID, &o.ServerID,
			&o.Config.CPU, &o.Config.Memory, &o.Config.Disk, &o.Config.Bandwidth, &o.Config.Ports,
			&o.Months, &o.MonthlyCost, &o.TotalCost,
			&o.Customer.Name, &o.Customer.Phone, &o.Customer.Email,
			&o.Status, &o.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan order row: %w", err)
		}
		orders = append(orders, o)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating order rows: %w", err)
	}
	return orders, nil
}

// FindAll retrieves all orders joined with usernames for the admin panel
func (r *orderRepository) FindAll(ctx context.Context) ([]model.Order, error) {
	sql := `SELECT o.id, o.order_id, o.user_id, u.username, o.server_id,
                o.cpu, o.memory, o.disk, o.bandwidth, o.ports, o.months,
                o.monthly_cost, o.total_cost, o.customer_name, o.customer_phone, o.customer_email,
                o.status, o.created_at
            FROM orders o JOIN users u ON o.user_id = u.id
            ORDER BY o.created_at DESC`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query all orders: %w", err)
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(
			&o.ID, &o.OrderID, &o.UserID, &o.UserUsername, &o.ServerID,
			&o.Config.CPU, &o.Config.Memory, &o.Config.Disk, &o.Config.Bandwidth, &o.Config.Ports,
			&o.Months, &o.MonthlyCost, &o.TotalCost,
			&o.Customer.Name, &o.Customer.Phone, &o.Customer.Email,
			&o.Status, &o.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan admin order row: %w", err)
		}
		orders = append(orders, o)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating admin order rows: %w", err)
	}
	return orders, nil
}

// UpdateStatus sets the status of an order. Returns pgx.ErrNoRows when no
// order matched; status validity is the service layer's concern.
func (r *orderRepository) UpdateStatus(ctx context.Context, orderID, status string) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE orders SET status = $1 WHERE order_id = $2`, status, orderID)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
