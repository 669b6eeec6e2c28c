package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloudshop/internal/model"
	"cloudshop/internal/pricing"
	"cloudshop/internal/repository"

	"github.com/jackc/pgx/v5"
)

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrForbidden       = errors.New("forbidden: order does not belong to this user")
	ErrInvalidStatus   = errors.New("invalid order status")
	ErrMissingCustomer = errors.New("customer info is required")
)

// OrderService creates and queries rental orders. Prices always come from
// the pricing engine, never from the client.
type OrderService interface {
	Create(ctx context.Context, userID int, req model.CreateOrderRequest) (*model.Order, error)
	Get(ctx context.Context, orderID string, requesterID int) (*model.Order, error)
	ListByUser(ctx context.Context, userID int) ([]model.Order, error)
	ListAll(ctx context.Context) ([]model.Order, error)
	UpdateStatus(ctx context.Context, orderID, status string) error
}

type orderService struct {
	orderRepo repository.OrderRepository
	rates     pricing.Rates
}

// NewOrderService creates a new OrderService
func NewOrderService(orderRepo repository.OrderRepository, rates pricing.Rates) OrderService {
	return &orderService{orderRepo: orderRepo, rates: rates}
}

// Create prices the configuration and persists a pending order with a
// time-derived ORD id
func (s *orderService) Create(ctx context.Context, userID int, req model.CreateOrderRequest) (*model.Order, error) {
	if req.CustomerInfo.Name == "" || req.CustomerInfo.Phone == "" {
		return nil, ErrMissingCustomer
	}

	cfg := model.ServerConfig{
		CPU:       req.CPU,
		Memory:    req.Memory,
		Disk:      req.Disk,
		Bandwidth: req.Bandwidth,
		Ports:     req.Ports,
	}
	quote := pricing.Calculate(cfg, req.Months, s.rates)

	now := time.Now()
	order := &model.Order{
		OrderID:     fmt.Sprintf("ORD%d", now.UnixMilli()),
		UserID:      userID,
		ServerID:    req.ServerID,
		Config:      cfg,
		Months:      req.Months,
		MonthlyCost: quote.MonthlyCost,
		TotalCost:   quote.TotalCost,
		Customer:    req.CustomerInfo,
		Status:      model.OrderStatusPending,
		CreatedAt:   now,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	return order, nil
}

// Get returns an order only to its owner
func (s *orderService) Get(ctx context.Context, orderID string, requesterID int) (*model.Order, error) {
	order, err := s.orderRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to find order: %w", err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.UserID != requesterID {
		return nil, ErrForbidden
	}
	return order, nil
}

// ListByUser returns the orders of the authenticated user
func (s *orderService) ListByUser(ctx context.Context, userID int) ([]model.Order, error) {
	orders, err := s.orderRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// ListAll returns every order with usernames for the admin panel
func (s *orderService) ListAll(ctx context.Context) ([]model.Order, error) {
	orders, err := s.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list all orders: %w", err)
	}
	return orders, nil
}

// UpdateStatus sets an order's status to one of the four enumerated values.
// An invalid status fails before any state change.
func (s *orderService) UpdateStatus(ctx context.Context, orderID, status string) error {
	if !model.ValidOrderStatus(status) {
		return ErrInvalidStatus
	}
	if err := s.orderRepo.UpdateStatus(ctx, orderID, status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrOrderNotFound
		}
		return fmt.Errorf("failed to update order status: %w", err)
	}
	return nil
}
