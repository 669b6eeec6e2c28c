package payment

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// alipayClient is a mock alipay sub-client, same contract as the wechat one
type alipayClient struct {
	mu      sync.Mutex
	byOrder map[string]*Status
}

func newAlipayClient() *alipayClient {
	return &alipayClient{byOrder: make(map[string]*Status)}
}

// CreatePayment registers a mock trade and returns its payment page URL
func (c *alipayClient) CreatePayment(_ context.Context, req CreateRequest) (*CreateResult, error) {
	paymentID := "ALI" + strings.ReplaceAll(uuid.NewString(), "-", "")

	c.mu.Lock()
	c.byOrder[req.OrderID] = &Status{
		PaymentID: paymentID,
		Method:    MethodAlipay,
		OrderID:   req.OrderID,
		Amount:    req.Amount,
		State:     "created",
	}
	c.mu.Unlock()

	return &CreateResult{
		PaymentID: paymentID,
		Method:    MethodAlipay,
		OrderID:   req.OrderID,
		Amount:    req.Amount,
		PayURL:    fmt.Sprintf("https://openapi.alipay.com/gateway.do?out_trade_no=%s", req.OrderID),
	}, nil
}

// QueryPayment returns the recorded status for an order
func (c *alipayClient) QueryPayment(_ context.Context, orderID string) (*Status, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	st, ok := c.byOrder[orderID]
	if !ok {
		return nil, ErrPaymentNotFound
	}
	cp := *st
	return &cp, nil
}
