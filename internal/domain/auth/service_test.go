package auth

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comunitur/comunitur/internal/api"
	"github.com/comunitur/comunitur/internal/domain/session"
	"github.com/comunitur/comunitur/internal/pkg/localstore"
	"github.com/comunitur/comunitur/internal/pkg/token"
	"github.com/comunitur/comunitur/internal/pkg/validator"
)

func testToken(t *testing.T, userID int64, username, role string) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, token.Claims{
		UserID:   userID,
		Username: username,
		Role:     role,
	})
	raw, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return raw
}

type fakeClient struct {
	loginResp    *api.AuthResponse
	registerResp *api.AuthResponse
	err          error
	lastLogin    api.LoginRequest
}

func (f *fakeClient) Login(ctx context.Context, req api.LoginRequest) (*api.AuthResponse, error) {
	f.lastLogin = req
	return f.loginResp, f.err
}

func (f *fakeClient) Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResponse, error) {
	return f.registerResp, f.err
}

func newSessions(t *testing.T) *session.Store {
	t.Helper()
	storage, err := localstore.New(t.TempDir())
	require.NoError(t, err)
	return session.NewStore(storage)
}

func TestLoginActivatesSession(t *testing.T) {
	sessions := newSessions(t)
	client := &fakeClient{loginResp: &api.AuthResponse{
		Token: "tok-1",
		User:  api.User{ID: 3, Username: "ana", Role: session.RoleTourist},
	}}
	svc := NewService(client, sessions)

	identity, err := svc.Login(context.Background(), "ana", "secretpw")
	require.NoError(t, err)
	assert.Equal(t, int64(3), identity.UserID)
	assert.Equal(t, "ana", identity.Username)
	assert.True(t, sessions.Authenticated())
	assert.Equal(t, "tok-1", sessions.Token())
}

func TestLoginValidationBlocksRequest(t *testing.T) {
	sessions := newSessions(t)
	client := &fakeClient{}
	svc := NewService(client, sessions)

	_, err := svc.Login(context.Background(), "", "")
	var fields validator.FieldErrors
	require.ErrorAs(t, err, &fields)
	assert.Contains(t, fields, "username")
	assert.Contains(t, fields, "password")
	assert.Empty(t, client.lastLogin.Username, "request must never be sent")
	assert.False(t, sessions.Authenticated())
}

func TestLoginServiceErrorLeavesLoggedOut(t *testing.T) {
	sessions := newSessions(t)
	client := &fakeClient{err: &api.APIError{StatusCode: 401, Message: "credenciales inválidas"}}
	svc := NewService(client, sessions)

	_, err := svc.Login(context.Background(), "ana", "wrongpass")
	var apiErr *api.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "credenciales inválidas", apiErr.Message)
	assert.False(t, sessions.Authenticated())
}

func TestLoginFillsIdentityFromTokenClaims(t *testing.T) {
	sessions := newSessions(t)
	// Service returned only the token; id and role come from its claims.
	raw := testToken(t, 42, "ana", session.RoleGuide)
	client := &fakeClient{loginResp: &api.AuthResponse{Token: raw}}
	svc := NewService(client, sessions)

	identity, err := svc.Login(context.Background(), "ana", "secretpw")
	require.NoError(t, err)
	assert.Equal(t, int64(42), identity.UserID)
	assert.Equal(t, session.RoleGuide, identity.Role)
	assert.Equal(t, "ana", identity.Username)
}

func TestRegisterValidatesPayload(t *testing.T) {
	sessions := newSessions(t)
	svc := NewService(&fakeClient{}, sessions)

	_, err := svc.Register(context.Background(), api.RegisterRequest{
		Username: "ana",
		Email:    "not-an-email",
		Password: "short",
		FullName: "Ana Paz",
		Role:     "wizard",
	})
	var fields validator.FieldErrors
	require.ErrorAs(t, err, &fields)
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")
	assert.Contains(t, fields, "role")
}

func TestRegisterLogsIn(t *testing.T) {
	sessions := newSessions(t)
	client := &fakeClient{registerResp: &api.AuthResponse{
		Token: "tok-2",
		User:  api.User{ID: 7, Username: "luis", Role: session.RoleTourist},
	}}
	svc := NewService(client, sessions)

	_, err := svc.Register(context.Background(), api.RegisterRequest{
		Username: "luis",
		Email:    "luis@example.com",
		Password: "longenough",
		FullName: "Luis Paz",
		Role:     session.RoleTourist,
	})
	require.NoError(t, err)
	assert.True(t, sessions.Authenticated())
}

func TestLogout(t *testing.T) {
	sessions := newSessions(t)
	client := &fakeClient{loginResp: &api.AuthResponse{
		Token: "tok-1",
		User:  api.User{ID: 3, Username: "ana", Role: session.RoleTourist},
	}}
	svc := NewService(client, sessions)

	_, err := svc.Login(context.Background(), "ana", "secretpw")
	require.NoError(t, err)

	require.NoError(t, svc.Logout())
	assert.False(t, sessions.Authenticated())

	// Restoring from the same storage after logout stays anonymous.
	sessions.Restore()
	assert.False(t, sessions.Authenticated())
}
