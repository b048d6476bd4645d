package google

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/gofrs/flock"
	"golang.org/x/oauth2"
)

const (
	// appCacheDirName is the directory under the user cache dir holding the token
	appCacheDirName = "gdrive-mcp"
	tokenFileName   = "google.token"

	lockRetryDelay = 50 * time.Millisecond
)

// ErrNoToken is returned when no token has been saved yet
var ErrNoToken = errors.New("no Google OAuth token found; run the auth command first")

// TokenStore persists a single OAuth token as JSON on disk.
// Reads take a shared file lock and writes an exclusive one, so several
// server processes can share a token file while refreshing it.
type TokenStore struct {
	path string
}

// NewTokenStore creates a store for the token file at path
func NewTokenStore(path string) *TokenStore {
	return &TokenStore{path: path}
}

// DefaultTokenStore returns the store in the user cache directory
func DefaultTokenStore() *TokenStore {
	return NewTokenStore(DefaultTokenPath())
}

// DefaultTokenPath returns the token file location in the user cache directory
func DefaultTokenPath() string {
	return filepath.Join(userCacheDir(), appCacheDirName, tokenFileName)
}

// Path returns the token file location
func (s *TokenStore) Path() string {
	return s.path
}

// Exists reports whether a token file is present
func (s *TokenStore) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Load reads the stored token
func (s *TokenStore) Load(ctx context.Context) (*oauth2.Token, error) {
	if !s.Exists() {
		return nil, ErrNoToken
	}

	fileLock := flock.New(s.lockPath())
	locked, err := fileLock.TryRLockContext(ctx, lockRetryDelay)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire read lock on token file: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("could not acquire read lock on token file")
	}
	defer func() { _ = fileLock.Unlock() }()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoToken
		}
		return nil, fmt.Errorf("failed to read token file: %w", err)
	}

	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("invalid token format: %w", err)
	}
	if token.AccessToken == "" && token.RefreshToken == "" {
		return nil, fmt.Errorf("invalid token format: token file has neither access nor refresh token")
	}

	return &token, nil
}

// Save writes the token, creating the cache directory if needed
func (s *TokenStore) Save(ctx context.Context, token *oauth2.Token) error {
	if token == nil {
		return fmt.Errorf("token is required")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	fileLock := flock.New(s.lockPath())
	locked, err := fileLock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return fmt.Errorf("failed to acquire write lock on token file: %w", err)
	}
	if !locked {
		return fmt.Errorf("could not acquire write lock on token file")
	}
	defer func() { _ = fileLock.Unlock() }()

	data, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("failed to encode token: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}

	return nil
}

func (s *TokenStore) lockPath() string {
	return s.path + ".lock"
}

func userCacheDir() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return dir
	}
	if runtime.GOOS == "windows" {
		return os.TempDir()
	}
	return filepath.Join(os.Getenv("HOME"), ".cache")
}
