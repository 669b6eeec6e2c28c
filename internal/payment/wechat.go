package payment

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// wechatClient is a mock wechat pay sub-client. It records created payments
// in memory so status queries reflect prior creates; the real provider is an
// external collaborator.
type wechatClient struct {
	mu      sync.Mutex
	byOrder map[string]*Status
}

func newWechatClient() *wechatClient {
	return &wechatClient{byOrder: make(map[string]*Status)}
}

// CreatePayment registers a mock prepay order and returns its code URL
func (c *wechatClient) CreatePayment(_ context.Context, req CreateRequest) (*CreateResult, error) {
	paymentID := "WX" + strings.ReplaceAll(uuid.NewString(), "-", "")

	c.mu.Lock()
	c.byOrder[req.OrderID] = &Status{
		PaymentID: paymentID,
		Method:    MethodWechat,
		OrderID:   req.OrderID,
		Amount:    req.Amount,
		State:     "created",
	}
	c.mu.Unlock()

	return &CreateResult{
		PaymentID: paymentID,
		Method:    MethodWechat,
		OrderID:   req.OrderID,
		Amount:    req.Amount,
		PayURL:    fmt.Sprintf("weixin://wxpay/bizpayurl?pr=%s", paymentID),
	}, nil
}

// QueryPayment returns the recorded status for an order
func (c *wechatClient) QueryPayment(_ context.Context, orderID string) (*Status, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	st, ok := c.byOrder[orderID]
	if !ok {
		return nil, ErrPaymentNotFound
	}
	cp := *st
	return &cp, nil
}
