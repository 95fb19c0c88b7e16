package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/viant/afs"
	"golang.org/x/oauth2"
)

// FileStore persists the session to a JSON document at any afs supported URL
// (a local path by default). Values are cached in memory, every write rewrites the document.
type FileStore struct {
	mu     sync.RWMutex
	URL    string
	fs     afs.Service
	values map[Key]string
}

// fileSnapshot keeps the token in oauth2.Token shape, the header format travels as the token type.
type fileSnapshot struct {
	Token *oauth2.Token `json:"token,omitempty"`
	Raw   string        `json:"raw,omitempty"`
}

// NewFileStore creates a Store persisted at URL, loading an existing snapshot if present.
func NewFileStore(ctx context.Context, URL string) (*FileStore, error) {
	ret := &FileStore{URL: URL, fs: afs.New(), values: map[Key]string{}}
	if err := ret.load(ctx); err != nil {
		return nil, err
	}
	return ret, nil
}

func (f *FileStore) Lookup(_ context.Context, key Key) (string, bool, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	value, ok := f.values[key]
	return value, ok, nil
}

func (f *FileStore) Put(ctx context.Context, key Key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = value
	return f.save(ctx)
}

func (f *FileStore) Remove(ctx context.Context, key Key) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.values[key]; !ok {
		return nil
	}
	delete(f.values, key)
	return f.save(ctx)
}

// ---- persistence ----

func (f *FileStore) save(ctx context.Context) error {
	snap := fileSnapshot{Raw: f.values[KeyRawToken]}
	token, hasToken := f.values[KeyToken]
	format, hasFormat := f.values[KeyFormat]
	if hasToken || hasFormat {
		snap.Token = &oauth2.Token{AccessToken: token, TokenType: format, Expiry: tokenExpiry(token)}
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	if err = f.fs.Upload(ctx, f.URL, 0o600, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to save session %v: %w", f.URL, err)
	}
	return nil
}

func (f *FileStore) load(ctx context.Context) error {
	exists, err := f.fs.Exists(ctx, f.URL)
	if err != nil || !exists {
		return nil
	}
	data, err := f.fs.DownloadWithURL(ctx, f.URL)
	if err != nil {
		return fmt.Errorf("failed to load session %v: %w", f.URL, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	var snap fileSnapshot
	if err = json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("invalid session %v: %w", f.URL, err)
	}
	if snap.Token != nil {
		if snap.Token.AccessToken != "" {
			f.values[KeyToken] = snap.Token.AccessToken
		}
		if snap.Token.TokenType != "" {
			f.values[KeyFormat] = snap.Token.TokenType
		}
	}
	if snap.Raw != "" {
		f.values[KeyRawToken] = snap.Raw
	}
	return nil
}

// tokenExpiry returns JWT exp claim, zero time for opaque tokens; it is informational only.
func tokenExpiry(token string) time.Time {
	if token == "" {
		return time.Time{}
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}
	expiry, err := claims.GetExpirationTime()
	if err != nil || expiry == nil {
		return time.Time{}
	}
	return expiry.Time
}
