package api

import (
	"context"
	"fmt"
	"time"
)

// Payment is the record the service attaches to a paid reservation.
type Payment struct {
	ID            int64     `json:"id"`
	ReservationID int64     `json:"reservationId"`
	Amount        float64   `json:"amount"`
	Method        string    `json:"method"`
	PaidAt        time.Time `json:"paidAt"`
}

// PaymentRequest is the create payload, chained on a reservation id.
type PaymentRequest struct {
	ReservationID int64   `json:"reservationId"`
	Amount        float64 `json:"amount"`
	Method        string  `json:"method" validate:"required,oneof=card cash transfer"`
	CardNumber    string  `json:"cardNumber,omitempty" validate:"omitempty,len=16,numeric"`
}

// CreatePayment records a payment for a reservation.
func (c *Client) CreatePayment(ctx context.Context, req PaymentRequest) (*Payment, error) {
	var payment Payment
	if err := c.post(ctx, "/pagos", req, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

// ListPaymentsByUser returns the user's payment history.
func (c *Client) ListPaymentsByUser(ctx context.Context, userID int64) ([]Payment, error) {
	var payments []Payment
	if err := c.get(ctx, fmt.Sprintf("/pagos/usuario/%d", userID), nil, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}
