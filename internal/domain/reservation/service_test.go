package reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comunitur/comunitur/internal/api"
	"github.com/comunitur/comunitur/internal/domain/booking"
	"github.com/comunitur/comunitur/internal/domain/session"
	"github.com/comunitur/comunitur/internal/pkg/localstore"
)

type fakeClient struct {
	byPlace     []api.Reservation
	byUser      []api.Reservation
	created     *api.Reservation
	updated     *api.Reservation
	err         error
	createCalls int
	updateCalls int
	deletedID   int64
	lastCreate  api.ReservationRequest
}

func (f *fakeClient) ListReservationsByUser(ctx context.Context, userID int64) ([]api.Reservation, error) {
	return f.byUser, f.err
}

func (f *fakeClient) ListReservationsByPlace(ctx context.Context, placeID int64) ([]api.Reservation, error) {
	return f.byPlace, f.err
}

func (f *fakeClient) CreateReservation(ctx context.Context, req api.ReservationRequest) (*api.Reservation, error) {
	f.createCalls++
	f.lastCreate = req
	return f.created, f.err
}

func (f *fakeClient) UpdateReservation(ctx context.Context, id int64, req api.ReservationRequest) (*api.Reservation, error) {
	f.updateCalls++
	return f.updated, f.err
}

func (f *fakeClient) DeleteReservation(ctx context.Context, id int64) error {
	f.deletedID = id
	return f.err
}

func loggedInSessions(t *testing.T) *session.Store {
	t.Helper()
	storage, err := localstore.New(t.TempDir())
	require.NoError(t, err)
	sessions := session.NewStore(storage)
	require.NoError(t, sessions.Login(session.Identity{
		Username: "ana", Token: "tok", UserID: 3, Role: session.RoleTourist,
	}))
	return sessions
}

func anonymousSessions(t *testing.T) *session.Store {
	t.Helper()
	storage, err := localstore.New(t.TempDir())
	require.NoError(t, err)
	return session.NewStore(storage)
}

func at(hour int) time.Time {
	return time.Date(2025, 6, 1, hour, 0, 0, 0, time.UTC)
}

func validDraft() *booking.Draft {
	d := booking.NewDraft()
	d.Place = &api.Place{ID: 5, PricePerPerson: 20, Occupancy: "1-10 personas"}
	d.Start = at(10)
	d.End = at(12)
	d.SetHeadCount(2)
	d.Attendees[0] = booking.Attendee{FirstName: "Ana", LastName: "Paz", Age: 34}
	d.Attendees[1] = booking.Attendee{FirstName: "Luis", LastName: "Paz", Age: 8}
	return d
}

func TestSubmitCreatesReservation(t *testing.T) {
	client := &fakeClient{created: &api.Reservation{ID: 77, PlaceID: 5}}
	svc := NewService(client, loggedInSessions(t))

	created, err := svc.Submit(context.Background(), validDraft())
	require.NoError(t, err)
	assert.Equal(t, int64(77), created.ID, "caller chains the payment step on this id")
	assert.Equal(t, 1, client.createCalls, "exactly one create request")

	req := client.lastCreate
	assert.Equal(t, int64(5), req.PlaceID)
	assert.Equal(t, 2, req.HeadCount)
	assert.Equal(t, 40.00, req.Total) // 20 × 2 heads × 1 day
	assert.Contains(t, req.Attendees, `"bracket":"Adult"`)
	assert.Contains(t, req.Attendees, `"bracket":"Child"`)
}

func TestSubmitRejectsWithoutSession(t *testing.T) {
	client := &fakeClient{}
	svc := NewService(client, anonymousSessions(t))

	_, err := svc.Submit(context.Background(), validDraft())
	assert.ErrorIs(t, err, booking.ErrNotAuthenticated)
	assert.Zero(t, client.createCalls, "request must never be sent")
}

func TestSubmitRejectsConflict(t *testing.T) {
	client := &fakeClient{byPlace: []api.Reservation{
		{ID: 1, PlaceID: 5, StartTime: at(11), EndTime: at(13)},
	}}
	svc := NewService(client, loggedInSessions(t))

	_, err := svc.Submit(context.Background(), validDraft())
	assert.ErrorIs(t, err, booking.ErrConflict)
	assert.Zero(t, client.createCalls)
}

func TestSubmitAcceptsTouchingReservation(t *testing.T) {
	client := &fakeClient{
		byPlace: []api.Reservation{
			{ID: 1, PlaceID: 5, StartTime: at(8), EndTime: at(10)},
		},
		created: &api.Reservation{ID: 78},
	}
	svc := NewService(client, loggedInSessions(t))

	_, err := svc.Submit(context.Background(), validDraft())
	require.NoError(t, err)
}

func TestUpdateExcludesOwnInterval(t *testing.T) {
	// The only "conflicting" interval is the reservation being edited.
	client := &fakeClient{
		byPlace: []api.Reservation{
			{ID: 42, PlaceID: 5, StartTime: at(10), EndTime: at(12)},
		},
		updated: &api.Reservation{ID: 42},
	}
	svc := NewService(client, loggedInSessions(t))

	_, err := svc.Update(context.Background(), 42, validDraft())
	require.NoError(t, err)
	assert.Equal(t, 1, client.updateCalls)
}

func TestServiceRejectionSurfacesMessage(t *testing.T) {
	client := &fakeClient{err: &api.APIError{StatusCode: 409, Message: "reserva duplicada"}}
	svc := NewService(client, loggedInSessions(t))

	_, err := svc.Submit(context.Background(), validDraft())
	var apiErr *api.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "reserva duplicada", apiErr.Message)
}

func TestListMineRequiresSession(t *testing.T) {
	svc := NewService(&fakeClient{}, anonymousSessions(t))
	_, err := svc.ListMine(context.Background())
	assert.ErrorIs(t, err, booking.ErrNotAuthenticated)
}

func TestCancel(t *testing.T) {
	client := &fakeClient{}
	svc := NewService(client, loggedInSessions(t))
	require.NoError(t, svc.Cancel(context.Background(), 9))
	assert.Equal(t, int64(9), client.deletedID)
}

func TestDraftFromRoundTrip(t *testing.T) {
	original := validDraft()
	serialized, err := original.SerializeAttendees()
	require.NoError(t, err)

	place := &api.Place{ID: 5, PricePerPerson: 20}
	persisted := &api.Reservation{
		ID:        42,
		PlaceID:   5,
		HeadCount: 2,
		StartTime: original.Start,
		EndTime:   original.End,
		Pets:      true,
		Attendees: serialized,
	}

	draft, err := DraftFrom(persisted, place)
	require.NoError(t, err)
	assert.Equal(t, 2, draft.HeadCount)
	assert.True(t, draft.Pets)
	assert.Equal(t, booking.BracketChild, draft.Attendees[1].Bracket)
	assert.Equal(t, 40.00, draft.Total())
}
