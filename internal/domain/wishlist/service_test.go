package wishlist

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comunitur/comunitur/internal/api"
	"github.com/comunitur/comunitur/internal/domain/catalog"
	"github.com/comunitur/comunitur/internal/domain/session"
	"github.com/comunitur/comunitur/internal/pkg/localstore"
)

type fakeClient struct {
	ids     []int64
	added   []int64
	removed []int64
	err     error
}

func (f *fakeClient) ListWishlist(ctx context.Context, userID int64) ([]int64, error) {
	return f.ids, f.err
}

func (f *fakeClient) AddToWishlist(ctx context.Context, userID, placeID int64) error {
	f.added = append(f.added, placeID)
	return f.err
}

func (f *fakeClient) RemoveFromWishlist(ctx context.Context, userID, placeID int64) error {
	f.removed = append(f.removed, placeID)
	return f.err
}

type fakeLister struct{ places []api.Place }

func (f *fakeLister) ListPlaces(ctx context.Context) ([]api.Place, error) {
	return f.places, nil
}

func newService(t *testing.T, client *fakeClient, loggedIn bool) *Service {
	t.Helper()
	storage, err := localstore.New(t.TempDir())
	require.NoError(t, err)
	sessions := session.NewStore(storage)
	if loggedIn {
		require.NoError(t, sessions.Login(session.Identity{Username: "ana", Token: "tok", UserID: 3, Role: session.RoleTourist}))
	}

	reader := catalog.NewReader(&fakeLister{places: []api.Place{
		{ID: 1, Name: "Cascada Azul"},
		{ID: 2, Name: "Mercado Artesanal"},
	}})
	require.NoError(t, reader.Refresh(context.Background()))

	return NewService(client, sessions, reader)
}

func TestToggleAddsWhenAbsent(t *testing.T) {
	client := &fakeClient{ids: []int64{2}}
	svc := newService(t, client, true)

	onList, err := svc.Toggle(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, onList)
	assert.Equal(t, []int64{1}, client.added)
	assert.Empty(t, client.removed)
}

func TestToggleRemovesWhenPresent(t *testing.T) {
	client := &fakeClient{ids: []int64{1, 2}}
	svc := newService(t, client, true)

	onList, err := svc.Toggle(context.Background(), 2)
	require.NoError(t, err)
	assert.False(t, onList)
	assert.Equal(t, []int64{2}, client.removed)
	assert.Empty(t, client.added)
}

func TestToggleRequiresSession(t *testing.T) {
	svc := newService(t, &fakeClient{}, false)
	_, err := svc.Toggle(context.Background(), 1)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestContains(t *testing.T) {
	svc := newService(t, &fakeClient{ids: []int64{1}}, true)

	got, err := svc.Contains(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, got)

	got, err = svc.Contains(context.Background(), 9)
	require.NoError(t, err)
	assert.False(t, got)
}

func TestPlacesSkipsUnknownIDs(t *testing.T) {
	// Id 99 has left the catalog; the wishlist still renders the rest.
	svc := newService(t, &fakeClient{ids: []int64{1, 99, 2}}, true)

	places, err := svc.Places(context.Background())
	require.NoError(t, err)
	require.Len(t, places, 2)
	assert.Equal(t, "Cascada Azul", places[0].Name)
	assert.Equal(t, "Mercado Artesanal", places[1].Name)
}
