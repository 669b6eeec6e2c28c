// Package payment adapts the storefront to external payment providers.
// Providers are addressed by a parsed Method tag through a uniform capability
// interface, so adding a provider means adding a Provider implementation and
// a gateway entry, not another branch.
package payment

import (
	"context"
	"errors"
)

// Method is the tagged payment method variant
type Method string

const (
	MethodWechat Method = "wechat"
	MethodAlipay Method = "alipay"
)

var (
	// ErrUnsupportedMethod is returned for a method tag outside the variant set
	ErrUnsupportedMethod = errors.New("unsupported payment method")
	// ErrPaymentNotFound is returned when a queried payment does not exist
	ErrPaymentNotFound = errors.New("payment not found")
)

// ParseMethod validates a raw method tag
func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case MethodWechat, MethodAlipay:
		return Method(s), nil
	}
	return "", ErrUnsupportedMethod
}

// CreateRequest describes a payment to be created with a provider
type CreateRequest struct {
	OrderID     string
	Amount      float64
	Description string
}

// CreateResult is the provider's answer to a create call. PayURL carries the
// provider-specific payment entry point (code URL for wechat, page URL for
// alipay).
type CreateResult struct {
	PaymentID string  `json:"paymentId"`
	Method    Method  `json:"paymentMethod"`
	OrderID   string  `json:"orderId"`
	Amount    float64 `json:"amount"`
	PayURL    string  `json:"payUrl"`
}

// Status is the provider's answer to a query call
type Status struct {
	PaymentID string  `json:"paymentId"`
	Method    Method  `json:"paymentMethod"`
	OrderID   string  `json:"orderId"`
	Amount    float64 `json:"amount"`
	State     string  `json:"state"` // provider-reported: created, paid, closed
}

// Provider is the uniform capability interface every payment provider
// implements
type Provider interface {
	CreatePayment(ctx context.Context, req CreateRequest) (*CreateResult, error)
	QueryPayment(ctx context.Context, orderID string) (*Status, error)
}

// Gateway dispatches create/query calls to the provider registered for a
// method tag
type Gateway struct {
	providers map[Method]Provider
}

// NewGateway creates a gateway over the standard wechat and alipay clients
func NewGateway() *Gateway {
	return &Gateway{providers: map[Method]Provider{
		MethodWechat: newWechatClient(),
		MethodAlipay: newAlipayClient(),
	}}
}

// Create dispatches a payment creation to the provider for method
func (g *Gateway) Create(ctx context.Context, method Method, req CreateRequest) (*CreateResult, error) {
	p, ok := g.providers[method]
	if !ok {
		return nil, ErrUnsupportedMethod
	}
	return p.CreatePayment(ctx, req)
}

// Query dispatches a payment status query to the provider for method
func (g *Gateway) Query(ctx context.Context, method Method, orderID string) (*Status, error) {
	p, ok := g.providers[method]
	if !ok {
		return nil, ErrUnsupportedMethod
	}
	return p.QueryPayment(ctx, orderID)
}
