package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/secureapp/secureapp-cli/internal/xdg"
)

// tokenFile is the on-disk JSON shape of the persisted pair.
type tokenFile struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// FileStorage keeps the token pair in a 0600 JSON file.
type FileStorage struct {
	path string
}

// NewFileStorage builds a FileStorage at path. An empty path defaults to
// tokens.json under the XDG state dir.
func NewFileStorage(path string) *FileStorage {
	if path == "" {
		path = filepath.Join(xdg.StateDir(), "tokens.json")
	}
	return &FileStorage{path: path}
}

func (s *FileStorage) Load() (string, string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", "", nil
		}
		return "", "", fmt.Errorf("reading token file: %w", err)
	}

	var tf tokenFile
	if err := json.Unmarshal(data, &tf); err != nil {
		// A corrupt state file is treated as no session rather than a fatal
		// condition; the user simply has to log in again.
		return "", "", nil
	}
	return tf.AccessToken, tf.RefreshToken, nil
}

func (s *FileStorage) Store(access, refresh string) error {
	if err := xdg.EnsureDir(filepath.Dir(s.path)); err != nil {
		return err
	}

	data, err := json.Marshal(tokenFile{AccessToken: access, RefreshToken: refresh})
	if err != nil {
		return err
	}

	// Write-then-rename keeps the file whole even if the process dies
	// mid-write.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("writing token file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing token file: %w", err)
	}
	return nil
}
