// Package auth orchestrates login, registration, and logout against the
// remote service, funneling the resulting identity into the session store.
package auth

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/comunitur/comunitur/internal/api"
	"github.com/comunitur/comunitur/internal/domain/session"
	"github.com/comunitur/comunitur/internal/pkg/token"
	"github.com/comunitur/comunitur/internal/pkg/validator"
)

// Client is the slice of the service client auth needs; an interface so
// tests can stand the service in.
type Client interface {
	Login(ctx context.Context, req api.LoginRequest) (*api.AuthResponse, error)
	Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResponse, error)
}

// Service handles authentication flows.
type Service struct {
	client   Client
	sessions *session.Store
}

// NewService creates the auth service.
func NewService(client Client, sessions *session.Store) *Service {
	return &Service{client: client, sessions: sessions}
}

// Login authenticates and activates the returned identity.
func (s *Service) Login(ctx context.Context, username, password string) (*session.Identity, error) {
	req := api.LoginRequest{Username: username, Password: password}
	if err := validator.Check(req); err != nil {
		return nil, err
	}

	resp, err := s.client.Login(ctx, req)
	if err != nil {
		return nil, err
	}

	identity := identityFrom(resp)
	if err := s.sessions.Login(identity); err != nil {
		return nil, err
	}
	log.Info().Str("username", identity.Username).Str("role", identity.Role).Msg("logged in")
	return &identity, nil
}

// Register creates an account; the service logs the new user straight in.
func (s *Service) Register(ctx context.Context, req api.RegisterRequest) (*session.Identity, error) {
	if err := validator.Check(req); err != nil {
		return nil, err
	}

	resp, err := s.client.Register(ctx, req)
	if err != nil {
		return nil, err
	}

	identity := identityFrom(resp)
	if err := s.sessions.Login(identity); err != nil {
		return nil, err
	}
	log.Info().Str("username", identity.Username).Msg("registered")
	return &identity, nil
}

// Logout clears the active identity and its persisted copy.
func (s *Service) Logout() error {
	log.Info().Msg("logged out")
	return s.sessions.Logout()
}

// identityFrom builds the session identity from the auth response, filling
// gaps from the token claims when the service omits user fields.
func identityFrom(resp *api.AuthResponse) session.Identity {
	identity := session.Identity{
		Username: resp.User.Username,
		Token:    resp.Token,
		UserID:   resp.User.ID,
		Role:     resp.User.Role,
	}
	if identity.UserID == 0 || identity.Role == "" {
		if claims, err := token.Parse(resp.Token); err == nil {
			if identity.UserID == 0 {
				identity.UserID = claims.UserID
			}
			if identity.Role == "" {
				identity.Role = claims.Role
			}
			if identity.Username == "" {
				identity.Username = claims.Username
			}
		}
	}
	return identity
}
