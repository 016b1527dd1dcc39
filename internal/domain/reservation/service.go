// Package reservation drives the reservation lifecycle: validating a draft
// against the calculator, dispatching exactly one create request, and
// handing the persisted id to the payment step.
package reservation

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/comunitur/comunitur/internal/api"
	"github.com/comunitur/comunitur/internal/domain/booking"
	"github.com/comunitur/comunitur/internal/domain/session"
)

// Client is the slice of the service client this package needs.
type Client interface {
	ListReservationsByUser(ctx context.Context, userID int64) ([]api.Reservation, error)
	ListReservationsByPlace(ctx context.Context, placeID int64) ([]api.Reservation, error)
	CreateReservation(ctx context.Context, req api.ReservationRequest) (*api.Reservation, error)
	UpdateReservation(ctx context.Context, id int64, req api.ReservationRequest) (*api.Reservation, error)
	DeleteReservation(ctx context.Context, id int64) error
}

// Service handles reservation commands for the screens.
type Service struct {
	client   Client
	sessions *session.Store
}

// NewService creates the reservation service.
func NewService(client Client, sessions *session.Store) *Service {
	return &Service{client: client, sessions: sessions}
}

// BookedIntervals returns the intervals already reserved for a place,
// excluding the reservation being edited (0 excludes nothing). The form
// feeds these to the calculator's advisory conflict check.
func (s *Service) BookedIntervals(ctx context.Context, placeID, excludeID int64) ([]booking.Interval, error) {
	reservations, err := s.client.ListReservationsByPlace(ctx, placeID)
	if err != nil {
		return nil, err
	}
	intervals := make([]booking.Interval, 0, len(reservations))
	for _, r := range reservations {
		if r.ID == excludeID {
			continue
		}
		intervals = append(intervals, booking.Interval{Start: r.StartTime, End: r.EndTime})
	}
	return intervals, nil
}

// Submit validates the draft and dispatches one create request. The
// conflict check runs against intervals fetched just before validation;
// the service remains the authority and its rejection is surfaced verbatim.
func (s *Service) Submit(ctx context.Context, draft *booking.Draft) (*api.Reservation, error) {
	return s.dispatch(ctx, draft, 0)
}

// Update revalidates an edited draft and replaces the reservation. The
// reservation's own interval is excluded from the conflict check.
func (s *Service) Update(ctx context.Context, id int64, draft *booking.Draft) (*api.Reservation, error) {
	if id == 0 {
		return nil, fmt.Errorf("reservation: update needs an id")
	}
	return s.dispatch(ctx, draft, id)
}

func (s *Service) dispatch(ctx context.Context, draft *booking.Draft, updateID int64) (*api.Reservation, error) {
	authenticated := s.sessions.Authenticated()

	var existing []booking.Interval
	if authenticated && draft.Place != nil {
		var err error
		existing, err = s.BookedIntervals(ctx, draft.Place.ID, updateID)
		if err != nil {
			return nil, err
		}
	}

	if err := booking.ValidateForSubmit(draft, existing, authenticated); err != nil {
		return nil, err
	}

	attendees, err := draft.SerializeAttendees()
	if err != nil {
		return nil, fmt.Errorf("reservation: serialize attendees: %w", err)
	}

	req := api.ReservationRequest{
		PlaceID:       draft.Place.ID,
		HeadCount:     draft.HeadCount,
		HasDisability: draft.HasDisability(),
		Pets:          draft.Pets,
		StartTime:     draft.Start,
		EndTime:       draft.End,
		Attendees:     attendees,
		Total:         draft.Total(),
	}

	var reservation *api.Reservation
	if updateID == 0 {
		reservation, err = s.client.CreateReservation(ctx, req)
	} else {
		reservation, err = s.client.UpdateReservation(ctx, updateID, req)
	}
	if err != nil {
		return nil, err
	}

	log.Info().
		Int64("reservation_id", reservation.ID).
		Int64("place_id", req.PlaceID).
		Int("head_count", req.HeadCount).
		Float64("total", req.Total).
		Msg("reservation dispatched")
	return reservation, nil
}

// ListMine returns the current user's reservations.
func (s *Service) ListMine(ctx context.Context) ([]api.Reservation, error) {
	identity := s.sessions.Current()
	if identity == nil {
		return nil, booking.ErrNotAuthenticated
	}
	return s.client.ListReservationsByUser(ctx, identity.UserID)
}

// Cancel deletes a reservation.
func (s *Service) Cancel(ctx context.Context, id int64) error {
	if !s.sessions.Authenticated() {
		return booking.ErrNotAuthenticated
	}
	return s.client.DeleteReservation(ctx, id)
}

// DraftFrom rebuilds an editable draft from a persisted reservation.
func DraftFrom(r *api.Reservation, place *api.Place) (*booking.Draft, error) {
	draft := booking.NewDraft()
	draft.Place = place
	draft.Start = r.StartTime
	draft.End = r.EndTime
	draft.Pets = r.Pets
	attendees, err := booking.ParseAttendees(r.Attendees)
	if err != nil {
		return nil, fmt.Errorf("reservation: decode attendees: %w", err)
	}
	draft.Attendees = attendees
	draft.HeadCount = len(attendees)
	if r.HeadCount > 0 && r.HeadCount != len(attendees) {
		draft.SetHeadCount(r.HeadCount)
	}
	return draft, nil
}
