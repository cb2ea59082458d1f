package session

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/secureapp/secureapp-cli/internal/common"
	"github.com/secureapp/secureapp-cli/internal/logging"
)

func newMemStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(NewMemoryStorage(), logging.NewNop())
}

func TestSave_RejectsEmptyValues(t *testing.T) {
	tests := []struct {
		name    string
		access  string
		refresh string
	}{
		{"empty access", "", "r"},
		{"empty refresh", "a", ""},
		{"both empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newMemStore(t)
			require.NoError(t, s.Save("prior-a", "prior-r"))

			err := s.Save(tt.access, tt.refresh)
			require.ErrorIs(t, err, common.ErrEmptyToken)

			// Prior state untouched: no partial write.
			assert.Equal(t, "prior-a", s.AccessToken())
			assert.Equal(t, "prior-r", s.RefreshToken())
		})
	}
}

func TestSave_RejectsEmptyOnFreshStore(t *testing.T) {
	s := newMemStore(t)
	require.Error(t, s.Save("", "r"))
	assert.Empty(t, s.AccessToken())
	assert.Empty(t, s.RefreshToken())
}

func TestSave_OverwritesPriorPair(t *testing.T) {
	s := newMemStore(t)
	require.NoError(t, s.Save("a1", "r1"))
	require.NoError(t, s.Save("a2", "r2"))
	assert.Equal(t, "a2", s.AccessToken())
	assert.Equal(t, "r2", s.RefreshToken())
}

func TestClear_IsIdempotent(t *testing.T) {
	s := newMemStore(t)
	require.NoError(t, s.Save("a", "r"))

	require.NoError(t, s.Clear())
	require.NoError(t, s.Clear())
	assert.Empty(t, s.AccessToken())
	assert.Empty(t, s.RefreshToken())
}

func TestNewStore_LoadsPersistedPair(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.json")
	storage := NewFileStorage(path)

	first := NewStore(storage, logging.NewNop())
	require.NoError(t, first.Save("a", "r"))

	// A second store over the same file sees the pair: survives "reload".
	second := NewStore(NewFileStorage(path), logging.NewNop())
	assert.Equal(t, "a", second.AccessToken())
	assert.Equal(t, "r", second.RefreshToken())
}

func TestFileStorage_MissingFileIsEmptySession(t *testing.T) {
	storage := NewFileStorage(filepath.Join(t.TempDir(), "nope.json"))
	access, refresh, err := storage.Load()
	require.NoError(t, err)
	assert.Empty(t, access)
	assert.Empty(t, refresh)
}

type failingStorage struct{ err error }

func (f *failingStorage) Load() (string, string, error) { return "", "", nil }
func (f *failingStorage) Store(_, _ string) error       { return f.err }

func TestSave_StorageFailureKeepsMemoryState(t *testing.T) {
	s := NewStore(&failingStorage{err: errors.New("disk full")}, logging.NewNop())
	err := s.Save("a", "r")
	require.Error(t, err)
	assert.Empty(t, s.AccessToken())
}
