package services

import (
	"context"
	"strings"

	"github.com/danghq/shopdesk/app/models"
	"github.com/danghq/shopdesk/app/remote"
	"github.com/danghq/shopdesk/config"
	"github.com/danghq/shopdesk/pkg/logger"
	"github.com/danghq/shopdesk/pkg/session"
)

// AuthService signs the operator in and out of the dashboard and exposes
// the current user between runs via the session store.
//
// Login is a demo placeholder: the storefront API has no credential
// endpoint yet, so we fetch a fixed account (DEMO_USER_ID) and compare
// the identifier against its email or phone and the password against
// DEMO_PASSWORD. Replace with a real credential check once the API grows
// one.
type AuthService struct {
	users *UserService
	store *session.Store[models.User]
}

func NewAuthService() *AuthService {
	return NewAuthServiceWith(NewUserService(),
		session.New[models.User](session.DefaultBackend(), config.SessionKey()))
}

// NewAuthServiceWith wires explicit collaborators.
func NewAuthServiceWith(users *UserService, store *session.Store[models.User]) *AuthService {
	return &AuthService{users: users, store: store}
}

// Login verifies the identifier/password pair and persists the signed-in
// user. identifier may be the account's email or phone number. Any
// failure, including a transport error, reads as bad credentials.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (models.User, bool) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return models.User{}, false
	}

	record, ok := s.users.findRecord(ctx, config.DemoUserID())
	if !ok {
		return models.User{}, false
	}

	if identifier != record.Email && identifier != record.DienThoai {
		return models.User{}, false
	}
	if password != config.DemoPassword() {
		return models.User{}, false
	}

	user := remote.ToUser(record)
	if err := s.store.Put(user); err != nil {
		logger.Error("auth: persist session failed", "error", err)
		return models.User{}, false
	}
	return user, true
}

// Logout clears the persisted session.
func (s *AuthService) Logout() error {
	return s.store.Clear()
}

// Current returns the signed-in user, if any.
func (s *AuthService) Current() (models.User, bool) {
	return s.store.Current()
}
