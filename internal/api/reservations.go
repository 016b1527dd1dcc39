package api

import (
	"context"
	"fmt"
	"time"
)

// Reservation is the persisted booking as the service returns it. The
// attendee list travels serialized, exactly as the form submitted it.
type Reservation struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"userId"`
	PlaceID       int64     `json:"placeId"`
	HeadCount     int       `json:"headCount"`
	HasDisability bool      `json:"hasDisability"`
	Pets          bool      `json:"pets"`
	StartTime     time.Time `json:"startTime"`
	EndTime       time.Time `json:"endTime"`
	Attendees     string    `json:"attendees"`
	Total         float64   `json:"total"`
	Payment       *Payment  `json:"payment,omitempty"`
}

// ReservationRequest is the create/update payload.
type ReservationRequest struct {
	PlaceID       int64     `json:"placeId"`
	HeadCount     int       `json:"headCount"`
	HasDisability bool      `json:"hasDisability"`
	Pets          bool      `json:"pets"`
	StartTime     time.Time `json:"startTime"`
	EndTime       time.Time `json:"endTime"`
	Attendees     string    `json:"attendees"`
	Total         float64   `json:"total"`
}

// ListReservationsByUser returns the user's reservations.
func (c *Client) ListReservationsByUser(ctx context.Context, userID int64) ([]Reservation, error) {
	var reservations []Reservation
	if err := c.get(ctx, fmt.Sprintf("/reservas/usuario/%d", userID), nil, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

// ListReservationsByPlace returns every reservation for a place. The
// reservation form uses these intervals for its advisory conflict check.
func (c *Client) ListReservationsByPlace(ctx context.Context, placeID int64) ([]Reservation, error) {
	var reservations []Reservation
	if err := c.get(ctx, fmt.Sprintf("/reservas/lugar/%d", placeID), nil, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

// CreateReservation submits a new reservation and returns the persisted copy.
func (c *Client) CreateReservation(ctx context.Context, req ReservationRequest) (*Reservation, error) {
	var reservation Reservation
	if err := c.post(ctx, "/reservas", req, &reservation); err != nil {
		return nil, err
	}
	return &reservation, nil
}

// UpdateReservation replaces an existing reservation.
func (c *Client) UpdateReservation(ctx context.Context, id int64, req ReservationRequest) (*Reservation, error) {
	var reservation Reservation
	if err := c.put(ctx, fmt.Sprintf("/reservas/%d", id), req, &reservation); err != nil {
		return nil, err
	}
	return &reservation, nil
}

// DeleteReservation cancels a reservation.
func (c *Client) DeleteReservation(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/reservas/%d", id))
}
