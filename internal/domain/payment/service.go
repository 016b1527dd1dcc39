// Package payment chains a payment onto a freshly created or existing
// reservation and exposes the user's payment history.
package payment

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/comunitur/comunitur/internal/api"
	"github.com/comunitur/comunitur/internal/domain/session"
	"github.com/comunitur/comunitur/internal/pkg/validator"
)

var (
	ErrNotAuthenticated   = errors.New("you must be logged in to pay")
	ErrNothingToPay       = errors.New("the reservation has no amount due")
	ErrAlreadyPaid        = errors.New("the reservation is already paid")
	ErrReservationMissing = errors.New("select a reservation to pay")
)

// Client is the slice of the service client this package needs.
type Client interface {
	CreatePayment(ctx context.Context, req api.PaymentRequest) (*api.Payment, error)
	ListPaymentsByUser(ctx context.Context, userID int64) ([]api.Payment, error)
}

// Service handles payment commands.
type Service struct {
	client   Client
	sessions *session.Store
}

// NewService creates the payment service.
func NewService(client Client, sessions *session.Store) *Service {
	return &Service{client: client, sessions: sessions}
}

// Pay records a payment for the reservation's total.
func (s *Service) Pay(ctx context.Context, reservation *api.Reservation, method, cardNumber string) (*api.Payment, error) {
	if !s.sessions.Authenticated() {
		return nil, ErrNotAuthenticated
	}
	if reservation == nil {
		return nil, ErrReservationMissing
	}
	if reservation.Payment != nil {
		return nil, ErrAlreadyPaid
	}
	if reservation.Total <= 0 {
		return nil, ErrNothingToPay
	}

	req := api.PaymentRequest{
		ReservationID: reservation.ID,
		Amount:        reservation.Total,
		Method:        method,
		CardNumber:    cardNumber,
	}
	if err := validator.Check(req); err != nil {
		return nil, err
	}

	paid, err := s.client.CreatePayment(ctx, req)
	if err != nil {
		return nil, err
	}
	log.Info().
		Int64("payment_id", paid.ID).
		Int64("reservation_id", paid.ReservationID).
		Float64("amount", paid.Amount).
		Msg("payment recorded")
	return paid, nil
}

// History returns the current user's payments.
func (s *Service) History(ctx context.Context) ([]api.Payment, error) {
	identity := s.sessions.Current()
	if identity == nil {
		return nil, ErrNotAuthenticated
	}
	return s.client.ListPaymentsByUser(ctx, identity.UserID)
}
