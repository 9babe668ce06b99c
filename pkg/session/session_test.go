package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danghq/shopdesk/pkg/session"
	"github.com/danghq/shopdesk/pkg/storage"
)

type account struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
}

func newStore(t *testing.T, secret string) *session.Store[account] {
	t.Helper()
	disk := storage.NewLocalDisk(t.TempDir(), "")
	backend := session.DiskBackend{Disk: disk, Secret: secret}
	return session.New[account](backend, "shopdesk:current_user")
}

func TestCurrentIsAbsentInitially(t *testing.T) {
	store := newStore(t, "")

	_, ok := store.Current()
	assert.False(t, ok)
}

func TestPutThenCurrent(t *testing.T) {
	store := newStore(t, "")
	want := account{ID: 1, Email: "admin@example.com"}

	require.NoError(t, store.Put(want))

	got, ok := store.Current()
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestLastWriteWins(t *testing.T) {
	store := newStore(t, "")

	require.NoError(t, store.Put(account{ID: 1}))
	require.NoError(t, store.Put(account{ID: 2}))

	got, ok := store.Current()
	require.True(t, ok)
	assert.Equal(t, 2, got.ID)
}

func TestClearRemovesRecord(t *testing.T) {
	store := newStore(t, "")

	require.NoError(t, store.Put(account{ID: 1}))
	require.NoError(t, store.Clear())

	_, ok := store.Current()
	assert.False(t, ok)
}

func TestEncryptedRoundTrip(t *testing.T) {
	dir := t.TempDir()
	disk := storage.NewLocalDisk(dir, "")
	backend := session.DiskBackend{Disk: disk, Secret: "app-key"}
	store := session.New[account](backend, "shopdesk:current_user")

	want := account{ID: 7, Email: "ops@example.com"}
	require.NoError(t, store.Put(want))

	// The record on disk must not be readable as plain JSON.
	raw, err := disk.Get("shopdesk/current_user.json")
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "ops@example.com")

	got, ok := store.Current()
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestWrongSecretReadsAsAbsent(t *testing.T) {
	dir := t.TempDir()
	disk := storage.NewLocalDisk(dir, "")

	writer := session.New[account](session.DiskBackend{Disk: disk, Secret: "key-a"}, "k")
	require.NoError(t, writer.Put(account{ID: 1}))

	reader := session.New[account](session.DiskBackend{Disk: disk, Secret: "key-b"}, "k")
	_, ok := reader.Current()
	assert.False(t, ok)
}

func TestCorruptRecordReadsAsAbsent(t *testing.T) {
	disk := storage.NewLocalDisk(t.TempDir(), "")
	require.NoError(t, disk.Put("k.json", []byte("{not json")))

	store := session.New[account](session.DiskBackend{Disk: disk}, "k")
	_, ok := store.Current()
	assert.False(t, ok)
}
