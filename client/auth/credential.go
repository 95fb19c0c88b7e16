package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/viant/policyadmin/client/auth/store"
)

// Credential represents the authenticated session
type Credential struct {
	Token  string
	Raw    string
	Format Format
}

// NewCredential creates a credential for a token issued at login; the raw variant drops a "Bearer " prefix.
func NewCredential(token string) *Credential {
	return &Credential{
		Token:  token,
		Raw:    strings.TrimSpace(strings.Replace(token, "Bearer ", "", 1)),
		Format: FormatBearer,
	}
}

// Header renders the Authorization header with the remembered format
func (c *Credential) Header() string {
	return c.Format.Header(c)
}

// Masked returns the token prefix safe for logging
func (c *Credential) Masked() string {
	if len(c.Token) <= 10 {
		return "..."
	}
	return c.Token[:10] + "..."
}

// Claims decodes JWT claims without signature verification; the API is the only verifier.
func (c *Credential) Claims() (jwt.MapClaims, error) {
	token := c.Raw
	if token == "" {
		token = c.Token
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("token is not a JWT: %w", err)
	}
	return claims, nil
}

// Load reads the credential from the store, it returns nil when no token is stored.
func Load(ctx context.Context, aStore store.Store) (*Credential, error) {
	token, ok, err := aStore.Lookup(ctx, store.KeyToken)
	if err != nil || !ok || token == "" {
		return nil, err
	}
	ret := &Credential{Token: token}
	if ret.Raw, _, err = aStore.Lookup(ctx, store.KeyRawToken); err != nil {
		return nil, err
	}
	format, _, err := aStore.Lookup(ctx, store.KeyFormat)
	if err != nil {
		return nil, err
	}
	ret.Format = ParseFormat(format)
	return ret, nil
}

// Save writes token, raw token and format.
func Save(ctx context.Context, aStore store.Store, credential *Credential) error {
	if err := aStore.Put(ctx, store.KeyToken, credential.Token); err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}
	if err := aStore.Put(ctx, store.KeyRawToken, credential.Raw); err != nil {
		return fmt.Errorf("failed to store raw token: %w", err)
	}
	return SaveFormat(ctx, aStore, credential.Format)
}

// SaveFormat remembers the header format that the API accepted.
func SaveFormat(ctx context.Context, aStore store.Store, format Format) error {
	if err := aStore.Put(ctx, store.KeyFormat, string(format)); err != nil {
		return fmt.Errorf("failed to store auth format: %w", err)
	}
	return nil
}

// Clear removes every session key
func Clear(ctx context.Context, aStore store.Store) error {
	for _, key := range store.Keys {
		if err := aStore.Remove(ctx, key); err != nil {
			return fmt.Errorf("failed to remove %v: %w", key, err)
		}
	}
	return nil
}
