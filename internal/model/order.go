package model

import "time"

const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusCancelled = "cancelled"
	OrderStatusCompleted = "completed"
)

// ValidOrderStatus reports whether s is one of the four order states
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusCancelled, OrderStatusCompleted:
		return true
	}
	return false
}

// ServerConfig is the rented resource configuration of an order
type ServerConfig struct {
	CPU       int `json:"cpu"`
	Memory    int `json:"memory"`
	Disk      int `json:"disk"`
	Bandwidth int `json:"bandwidth"`
	Ports     int `json:"ports"`
}

// CustomerInfo is the contact information attached to an order
type CustomerInfo struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// Order is a server rental order. Cost fields are derived by the pricing
// engine at creation time, never taken from the client.
type Order struct {
	ID           int64        `json:"id"`
	OrderID      string       `json:"order_id"`
	UserID       int          `json:"user_id"`
	ServerID     int          `json:"server_id"`
	Config       ServerConfig `json:"config"`
	Months       int          `json:"months"`
	MonthlyCost  float64      `json:"monthly_cost"`
	TotalCost    float64      `json:"total_cost"`
	Customer     CustomerInfo `json:"customer"`
	Status       string       `json:"status"`
	CreatedAt    time.Time    `json:"created_at"`
	UserUsername string       `json:"-"` // populated only by the admin listing join
}

// CreateOrderRequest is the payload for order creation. Costs are computed
// server-side; months and every configuration dimension must be positive.
type CreateOrderRequest struct {
	ServerID     int          `json:"serverId" binding:"required"`
	CPU          int          `json:"cpu" binding:"required,gt=0"`
	Memory       int          `json:"memory" binding:"required,gt=0"`
	Disk         int          `json:"disk" binding:"required,gt=0"`
	Bandwidth    int          `json:"bandwidth" binding:"required,gt=0"`
	Ports        int          `json:"ports" binding:"required,gt=0"`
	Months       int          `json:"months" binding:"required,gt=0"`
	CustomerInfo CustomerInfo `json:"customerInfo" binding:"required"`
}

// UpdateOrderStatusRequest is the admin status update payload
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// OrderPricing is the derived cost pair shown in order responses
type OrderPricing struct {
	MonthlyCost float64 `json:"monthlyCost"`
	TotalCost   float64 `json:"totalCost"`
}

// OrderView is the response shape for a single order, with nested
// configuration, pricing and customer sub-objects
type OrderView struct {
	ID            int64        `json:"id"`
	OrderID       string       `json:"orderId"`
	UserID        int          `json:"userId,omitempty"`
	UserUsername  string       `json:"userUsername,omitempty"`
	ServerID      int          `json:"serverId"`
	Configuration ServerConfig `json:"configuration"`
	Months        int          `json:"months"`
	Pricing       OrderPricing `json:"pricing"`
	CustomerInfo  CustomerInfo `json:"customerInfo"`
	Status        string       `json:"status"`
	CreatedAt     time.Time    `json:"createdAt"`
}

// View shapes an order for API responses. withOwner controls whether the
// owner columns (user id, username) are included, which only admin listings
// expose.
func (o *Order) View(withOwner bool) OrderView {
	v := OrderView{
		ID:            o.ID,
		OrderID:       o.OrderID,
		ServerID:      o.ServerID,
		Configuration: o.Config,
		Months:        o.Months,
		Pricing:       OrderPricing{MonthlyCost: o.MonthlyCost, TotalCost: o.TotalCost},
		CustomerInfo:  o.Customer,
		Status:        o.Status,
		CreatedAt:     o.CreatedAt,
	}
	if withOwner {
		v.UserID = o.UserID
		v.UserUsername = o.UserUsername
	}
	return v
}
