// Package profile reads and updates the user's own account record.
package profile

import (
	"context"
	"errors"

	"github.com/comunitur/comunitur/internal/api"
	"github.com/comunitur/comunitur/internal/domain/session"
	"github.com/comunitur/comunitur/internal/pkg/validator"
)

var ErrNotAuthenticated = errors.New("you must be logged in to view your profile")

// Client is the slice of the service client this package needs.
type Client interface {
	GetUser(ctx context.Context, id int64) (*api.User, error)
	UpdateUser(ctx context.Context, id int64, req api.ProfileUpdateRequest) (*api.User, error)
}

// Service handles profile commands.
type Service struct {
	client   Client
	sessions *session.Store
}

// NewService creates the profile service.
func NewService(client Client, sessions *session.Store) *Service {
	return &Service{client: client, sessions: sessions}
}

// Get fetches the current user's profile.
func (s *Service) Get(ctx context.Context) (*api.User, error) {
	identity := s.sessions.Current()
	if identity == nil {
		return nil, ErrNotAuthenticated
	}
	return s.client.GetUser(ctx, identity.UserID)
}

// Update validates and saves profile edits.
func (s *Service) Update(ctx context.Context, req api.ProfileUpdateRequest) (*api.User, error) {
	identity := s.sessions.Current()
	if identity == nil {
		return nil, ErrNotAuthenticated
	}
	if err := validator.Check(req); err != nil {
		return nil, err
	}
	return s.client.UpdateUser(ctx, identity.UserID, req)
}
