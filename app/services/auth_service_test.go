package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danghq/shopdesk/app/models"
	"github.com/danghq/shopdesk/app/remote"
	"github.com/danghq/shopdesk/app/services"
	"github.com/danghq/shopdesk/config"
	"github.com/danghq/shopdesk/pkg/session"
	"github.com/danghq/shopdesk/pkg/storage"
	"github.com/danghq/shopdesk/pkg/testkit"
)

func newAuthService(t *testing.T) *services.AuthService {
	t.Helper()
	disk := storage.NewLocalDisk(t.TempDir(), "")
	store := session.New[models.User](session.DiskBackend{Disk: disk}, config.SessionKey())
	return services.NewAuthServiceWith(services.NewUserService(), store)
}

func demoUserStub() testkit.Stub {
	return testkit.Stub{
		Method: "GET",
		URL:    config.APIBaseURL() + "/users/1",
		JSON: remote.UserRecord{
			ID:        1,
			Email:     "admin@example.com",
			HoTen:     "Admin",
			DienThoai: "0901234567",
			VaiTro:    1,
		},
	}
}

func TestLoginWithEmail(t *testing.T) {
	testkit.Install(t, demoUserStub())
	auth := newAuthService(t)

	user, ok := auth.Login(context.Background(), "admin@example.com", config.DemoPassword())

	require.True(t, ok)
	assert.Equal(t, "Admin", user.Name)

	current, ok := auth.Current()
	require.True(t, ok)
	assert.Equal(t, user, current)
}

func TestLoginWithPhoneNumber(t *testing.T) {
	testkit.Install(t, demoUserStub())
	auth := newAuthService(t)

	user, ok := auth.Login(context.Background(), "0901234567", config.DemoPassword())

	require.True(t, ok)
	assert.Equal(t, "admin@example.com", user.Email)
}

func TestLoginWrongPasswordStaysAnonymous(t *testing.T) {
	testkit.Install(t, demoUserStub())
	auth := newAuthService(t)

	_, ok := auth.Login(context.Background(), "admin@example.com", "wrong")

	assert.False(t, ok)
	_, ok = auth.Current()
	assert.False(t, ok)
}

func TestLoginUnknownIdentifierFails(t *testing.T) {
	testkit.Install(t, demoUserStub())
	auth := newAuthService(t)

	_, ok := auth.Login(context.Background(), "someone@else.com", config.DemoPassword())

	assert.False(t, ok)
}

func TestLoginCollapsesTransportFailure(t *testing.T) {
	testkit.Install(t) // user endpoint 404s
	auth := newAuthService(t)

	_, ok := auth.Login(context.Background(), "admin@example.com", config.DemoPassword())

	assert.False(t, ok)
}

func TestLogoutClearsSession(t *testing.T) {
	testkit.Install(t, demoUserStub())
	auth := newAuthService(t)

	_, ok := auth.Login(context.Background(), "admin@example.com", config.DemoPassword())
	require.True(t, ok)

	require.NoError(t, auth.Logout())

	_, ok = auth.Current()
	assert.False(t, ok)
}
