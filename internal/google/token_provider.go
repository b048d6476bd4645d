package google

import (
	"context"
	"fmt"
	"os"
	"sync"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// EnvCredentialsFile points at a service account key file
const EnvCredentialsFile = "GOOGLE_APPLICATION_CREDENTIALS"

// TokenProvider is an interface for providing OAuth tokens for Google APIs
// This abstraction allows different token sources (user token file, service account, static tokens in tests)
type TokenProvider interface {
	// TokenSource returns a source of valid access tokens
	TokenSource(ctx context.Context) (oauth2.TokenSource, error)

	// HasToken checks if credentials are available without contacting Google
	HasToken() bool
}

// FileTokenProvider provides user tokens from the on-disk token store
type FileTokenProvider struct {
	config OAuthConfig
	store  *TokenStore
}

// NewFileTokenProvider creates a new file-based token provider
func NewFileTokenProvider(config OAuthConfig, store *TokenStore) *FileTokenProvider {
	return &FileTokenProvider{config: config, store: store}
}

// TokenSource loads the stored token. Refreshed tokens are written back to the store.
func (p *FileTokenProvider) TokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	token, err := p.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	base := p.config.oauth2Config().TokenSource(ctx, token)
	return &persistingTokenSource{
		ctx:   ctx,
		base:  base,
		store: p.store,
		last:  token.AccessToken,
	}, nil
}

// HasToken checks if a token file exists
func (p *FileTokenProvider) HasToken() bool {
	return p.store.Exists()
}

// persistingTokenSource saves every newly issued access token to the store
type persistingTokenSource struct {
	ctx   context.Context
	base  oauth2.TokenSource
	store *TokenStore

	mu   sync.Mutex
	last string
}

func (s *persistingTokenSource) Token() (*oauth2.Token, error) {
	token, err := s.base.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to refresh Google OAuth token: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if token.AccessToken != s.last {
		if err := s.store.Save(s.ctx, token); err != nil {
			return nil, err
		}
		s.last = token.AccessToken
	}

	return token, nil
}

// ServiceAccountTokenProvider provides tokens from a service account key file
type ServiceAccountTokenProvider struct {
	credentialsFile string
	scopes          []string
}

// NewServiceAccountTokenProvider creates a provider for the key file at path
func NewServiceAccountTokenProvider(path string) *ServiceAccountTokenProvider {
	return &ServiceAccountTokenProvider{credentialsFile: path, scopes: DefaultOAuthScopes}
}

// TokenSource parses the key file and returns a self-refreshing token source
func (p *ServiceAccountTokenProvider) TokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	data, err := os.ReadFile(p.credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	creds, err := google.CredentialsFromJSON(ctx, data, p.scopes...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse credentials file: %w", err)
	}

	return creds.TokenSource, nil
}

// HasToken checks if the key file exists
func (p *ServiceAccountTokenProvider) HasToken() bool {
	_, err := os.Stat(p.credentialsFile)
	return err == nil
}

// StaticTokenProvider serves a fixed token source. It is used with pre-issued
// access tokens and in tests.
type StaticTokenProvider struct {
	source oauth2.TokenSource
}

// NewStaticTokenProvider wraps a token in a provider
func NewStaticTokenProvider(token *oauth2.Token) *StaticTokenProvider {
	return &StaticTokenProvider{source: oauth2.StaticTokenSource(token)}
}

// TokenSource returns the static source
func (p *StaticTokenProvider) TokenSource(_ context.Context) (oauth2.TokenSource, error) {
	return p.source, nil
}

// HasToken always reports true
func (p *StaticTokenProvider) HasToken() bool {
	return true
}

// NewTokenProviderFromEnv picks a service account provider when
// GOOGLE_APPLICATION_CREDENTIALS is set, otherwise the user token file.
func NewTokenProviderFromEnv(store *TokenStore) TokenProvider {
	if path := os.Getenv(EnvCredentialsFile); path != "" {
		return NewServiceAccountTokenProvider(path)
	}
	return NewFileTokenProvider(OAuthConfigFromEnv(), store)
}
