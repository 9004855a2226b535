package application

import (
	"context"
	"testing"

	"github.com/bnema/skillconnect-cli/internal/domain"
	"github.com/bnema/skillconnect-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthServiceLoginEstablishesSession(t *testing.T) {
	t.Parallel()

	users := mocks.NewMockUserAPI(t)
	repo, secrets := sharedSessionStore(t)
	session := NewSessionState(repo, secrets)
	service := NewAuthService(users, session)

	credentials := domain.Credentials{Username: "ada", Password: "secret"}
	users.EXPECT().Login(mockAnyContext(), credentials).Return(domain.LoginResult{
		ID:              "user-1",
		Token:           "token-1",
		ProfileImageURL: "https://cdn.example/ada.png",
	}, nil).Once()

	got, err := service.Login(context.Background(), credentials)
	require.NoError(t, err)
	assert.Equal(t, domain.Session{UserID: "user-1", AuthToken: "token-1", CachedAvatarURL: "https://cdn.example/ada.png"}, got)

	token, err := secrets.Get(context.Background(), TokenRef("user-1"))
	require.NoError(t, err)
	assert.Equal(t, "token-1", token)
}

func TestAuthServiceLoginRejectsIncompleteResponse(t *testing.T) {
	t.Parallel()

	users := mocks.NewMockUserAPI(t)
	session := NewSessionState(mocks.NewMockSessionRepository(t), mocks.NewMockSecretStore(t))
	service := NewAuthService(users, session)

	users.EXPECT().Login(mockAnyContext(), domain.Credentials{Username: "ada"}).Return(domain.LoginResult{UserID: "user-1"}, nil).Once()

	_, err := service.Login(context.Background(), domain.Credentials{Username: "ada"})
	assert.ErrorIs(t, err, ErrIncompleteLogin)
	assert.False(t, session.Get().Active())
}

func TestAuthServiceLoginFailureKeepsServerMessage(t *testing.T) {
	t.Parallel()

	users := mocks.NewMockUserAPI(t)
	session := NewSessionState(mocks.NewMockSessionRepository(t), mocks.NewMockSecretStore(t))
	service := NewAuthService(users, session)

	remote := &domain.RemoteError{Kind: domain.RemoteUnauthorized, Status: 401, Message: "Invalid credentials"}
	users.EXPECT().Login(mockAnyContext(), domain.Credentials{Username: "ada", Password: "bad"}).Return(domain.LoginResult{}, remote).Once()

	_, err := service.Login(context.Background(), domain.Credentials{Username: "ada", Password: "bad"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, "Invalid credentials", domain.DisplayMessage(err))
}

func TestAuthServiceRegisterTrimsAndOmitsEmptyFields(t *testing.T) {
	t.Parallel()

	users := mocks.NewMockUserAPI(t)
	service := NewAuthService(users, nil)

	users.EXPECT().Register(mockAnyContext(), map[string]any{
		"username": "ada",
		"password": "secret",
		"email":    "ada@example.com",
	}).Return(domain.User{ID: "user-1", Username: "ada"}, nil).Once()

	user, err := service.Register(context.Background(), RegisterCommand{Username: " ada ", Password: "secret", Email: "ada@example.com", FirstName: "  "})
	require.NoError(t, err)
	assert.Equal(t, domain.UserID("user-1"), user.ID)
}

func TestAuthServiceDeleteAccountRequiresSession(t *testing.T) {
	t.Parallel()

	users := mocks.NewMockUserAPI(t)
	session := NewSessionState(mocks.NewMockSessionRepository(t), mocks.NewMockSecretStore(t))
	service := NewAuthService(users, session)

	assert.ErrorIs(t, service.DeleteAccount(context.Background()), domain.ErrNoSession)
}

func TestAuthServiceDeleteAccountClearsSession(t *testing.T) {
	t.Parallel()

	users := mocks.NewMockUserAPI(t)
	session := signedInState(t)
	service := NewAuthService(users, session)

	users.EXPECT().DeleteUser(mockAnyContext(), domain.UserID("user-1")).Return(nil).Once()

	require.NoError(t, service.DeleteAccount(context.Background()))
	assert.False(t, session.Get().Active())
}

func TestAuthServiceAcceptRedirectAndLogout(t *testing.T) {
	t.Parallel()

	repo, secrets := sharedSessionStore(t)
	session := NewSessionState(repo, secrets)
	service := NewAuthService(mocks.NewMockUserAPI(t), session)

	got, err := service.AcceptRedirect(context.Background(), "user-9", "token-9", "")
	require.NoError(t, err)
	assert.Equal(t, domain.UserID("user-9"), got.UserID)

	require.NoError(t, service.Logout(context.Background()))
	assert.False(t, session.Get().Active())

	stored, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stored.UserID)
	assert.Empty(t, stored.TokenRef)
}
