// Package wishlist manages the user's saved places.
package wishlist

import (
	"context"
	"errors"

	"github.com/comunitur/comunitur/internal/api"
	"github.com/comunitur/comunitur/internal/domain/catalog"
	"github.com/comunitur/comunitur/internal/domain/session"
)

var ErrNotAuthenticated = errors.New("you must be logged in to use the wishlist")

// Client is the slice of the service client this package needs.
type Client interface {
	ListWishlist(ctx context.Context, userID int64) ([]int64, error)
	AddToWishlist(ctx context.Context, userID, placeID int64) error
	RemoveFromWishlist(ctx context.Context, userID, placeID int64) error
}

// Service handles wishlist commands.
type Service struct {
	client   Client
	sessions *session.Store
	catalog  *catalog.Reader
}

// NewService creates the wishlist service.
func NewService(client Client, sessions *session.Store, reader *catalog.Reader) *Service {
	return &Service{client: client, sessions: sessions, catalog: reader}
}

// IDs returns the place ids on the current user's wishlist.
func (s *Service) IDs(ctx context.Context) ([]int64, error) {
	identity := s.sessions.Current()
	if identity == nil {
		return nil, ErrNotAuthenticated
	}
	return s.client.ListWishlist(ctx, identity.UserID)
}

// Contains reports whether a place is on the wishlist.
func (s *Service) Contains(ctx context.Context, placeID int64) (bool, error) {
	ids, err := s.IDs(ctx)
	if err != nil {
		return false, err
	}
	for _, id := range ids {
		if id == placeID {
			return true, nil
		}
	}
	return false, nil
}

// Toggle flips a place's wishlist membership and reports the new state.
func (s *Service) Toggle(ctx context.Context, placeID int64) (onList bool, err error) {
	identity := s.sessions.Current()
	if identity == nil {
		return false, ErrNotAuthenticated
	}

	contains, err := s.Contains(ctx, placeID)
	if err != nil {
		return false, err
	}
	if contains {
		if err := s.client.RemoveFromWishlist(ctx, identity.UserID, placeID); err != nil {
			return true, err
		}
		return false, nil
	}
	if err := s.client.AddToWishlist(ctx, identity.UserID, placeID); err != nil {
		return false, err
	}
	return true, nil
}

// Places resolves the wishlist ids against the catalog snapshot. Ids whose
// place has left the catalog are skipped.
func (s *Service) Places(ctx context.Context) ([]api.Place, error) {
	ids, err := s.IDs(ctx)
	if err != nil {
		return nil, err
	}
	var out []api.Place
	for _, id := range ids {
		place, err := s.catalog.ByID(id)
		if err != nil {
			continue
		}
		out = append(out, *place)
	}
	return out, nil
}
