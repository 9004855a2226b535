package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/skillconnect-cli/internal/domain"
	"github.com/bnema/skillconnect-cli/internal/ports"
)

var ErrIncompleteLogin = errors.New("login response is missing the user id or token")

type AuthService struct {
	users   ports.UserAPI
	session *SessionState
}

func NewAuthService(users ports.UserAPI, session *SessionState) *AuthService {
	return &AuthService{users: users, session: session}
}

func (s *AuthService) Login(ctx context.Context, credentials domain.Credentials) (domain.Session, error) {
	result, err := s.users.Login(ctx, credentials)
	if err != nil {
		return domain.Session{}, fmt.Errorf("login: %w", err)
	}

	userID := result.ResolvedUserID()
	if userID == "" || strings.TrimSpace(result.Token) == "" {
		return domain.Session{}, ErrIncompleteLogin
	}

	if err := s.session.Establish(ctx, userID, result.Token, result.ProfileImageURL); err != nil {
		return domain.Session{}, err
	}

	return s.session.Get(), nil
}

// Register creates the account without signing in; the user logs in
// afterwards.
func (s *AuthService) Register(ctx context.Context, cmd RegisterCommand) (domain.User, error) {
	if strings.TrimSpace(cmd.Username) == "" || cmd.Password == "" {
		return domain.User{}, errors.New("username and password are required")
	}

	payload := map[string]any{
		"username": strings.TrimSpace(cmd.Username),
		"password": cmd.Password,
	}
	setIfNotEmpty(payload, "email", cmd.Email)
	setIfNotEmpty(payload, "firstName", cmd.FirstName)
	setIfNotEmpty(payload, "lastName", cmd.LastName)

	user, err := s.users.Register(ctx, payload)
	if err != nil {
		return domain.User{}, fmt.Errorf("register: %w", err)
	}

	return user, nil
}

// AcceptRedirect establishes the session handed back by the federated login
// redirect.
func (s *AuthService) AcceptRedirect(ctx context.Context, userID domain.UserID, token string, avatarURL string) (domain.Session, error) {
	if err := s.session.Establish(ctx, userID, token, avatarURL); err != nil {
		return domain.Session{}, err
	}

	return s.session.Get(), nil
}

func (s *AuthService) Logout(ctx context.Context) error {
	return s.session.Clear(ctx)
}

func (s *AuthService) DeleteAccount(ctx context.Context) error {
	current := s.session.Get()
	if !current.Active() {
		return domain.ErrNoSession
	}

	if err := s.users.DeleteUser(ctx, current.UserID); err != nil {
		return fmt.Errorf("delete account: %w", err)
	}

	return s.session.Clear(ctx)
}

func setIfNotEmpty(payload map[string]any, key string, value string) {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		payload[key] = trimmed
	}
}
