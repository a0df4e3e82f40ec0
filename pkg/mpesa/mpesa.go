// Package mpesa drives M-Pesa STK push payments. The client records
// every attempt through the payments store; in sandbox mode no gateway
// traffic leaves the process, the push is acknowledged locally and the
// callback endpoint settles it later.
package mpesa

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/nyumbani/homemanager/pkg/model"
	"github.com/nyumbani/homemanager/pkg/server/store"
)

// Client initiates STK pushes and applies gateway callbacks.
type Client struct {
	payments  store.PaymentsStore
	shortcode string
	sandbox   bool
}

// NewClient creates an M-Pesa client. With sandbox set, STKPush never
// performs network I/O.
func NewClient(payments store.PaymentsStore, shortcode string, sandbox bool) *Client {
	return &Client{payments: payments, shortcode: shortcode, sandbox: sandbox}
}

// STKPushRequest describes one push prompt to a payer's phone.
type STKPushRequest struct {
	RentPaymentID  uint
	OrganizationID uint
	PhoneNumber    string
	Amount         float64
	Reference      string
}

// STKPushResponse mirrors the gateway acknowledgement fields callers
// correlate callbacks with.
type STKPushResponse struct {
	CheckoutRequestID string `json:"checkout_request_id"`
	MerchantRequestID string `json:"merchant_request_id"`
	ResponseCode      string `json:"response_code"`
	CustomerMessage   string `json:"customer_message"`
}

// STKPush initiates a payment prompt and records the attempt in
// initiated state.
func (c *Client) STKPush(ctx context.Context, req STKPushRequest) (*STKPushResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	phone, err := NormalizePhone(req.PhoneNumber)
	if err != nil {
		return nil, err
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("amount must be positive")
	}

	attempt := &model.MpesaPayment{
		RentPaymentID:     req.RentPaymentID,
		OrganizationID:    req.OrganizationID,
		PhoneNumber:       phone,
		Amount:            req.Amount,
		Reference:         req.Reference,
		CheckoutRequestID: "ws_CO_" + uuid.NewString(),
		MerchantRequestID: uuid.NewString(),
	}

	if !c.sandbox {
		// TODO: wire the Daraja API client once credentials management lands
		return nil, fmt.Errorf("live gateway mode is not configured")
	}

	if err := c.payments.CreateMpesa(attempt); err != nil {
		return nil, fmt.Errorf("failed to record stk push: %w", err)
	}

	return &STKPushResponse{
		CheckoutRequestID: attempt.CheckoutRequestID,
		MerchantRequestID: attempt.MerchantRequestID,
		ResponseCode:      "0",
		CustomerMessage:   "Success. Request accepted for processing",
	}, nil
}

// ProcessCallback applies a gateway result to the recorded attempt. A
// zero result code settles the underlying rent payment.
func (c *Client) ProcessCallback(ctx context.Context, result store.MpesaResult) (*model.MpesaPayment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if result.CheckoutRequestID == "" {
		return nil, fmt.Errorf("checkout request id is required")
	}

	attempt, err := c.payments.ApplyMpesaResult(result)
	if err != nil {
		return nil, fmt.Errorf("failed to apply gateway result: %w", err)
	}
	return attempt, nil
}

// NormalizePhone converts payer numbers to the 2547XXXXXXXX form the
// gateway expects.
func NormalizePhone(phone string) (string, error) {
	p := strings.TrimSpace(phone)
	p = strings.TrimPrefix(p, "+")
	switch {
	case strings.HasPrefix(p, "254") && len(p) == 12:
		return p, nil
	case strings.HasPrefix(p, "0") && len(p) == 10:
		return "254" + p[1:], nil
	case strings.HasPrefix(p, "7") && len(p) == 9:
		return "254" + p, nil
	}
	return "", fmt.Errorf("invalid phone number %q", phone)
}
