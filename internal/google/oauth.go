package google

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	// EnvClientID is the environment variable holding the OAuth client ID
	EnvClientID = "GOOGLE_CLIENT_ID"
	// EnvClientSecret is the environment variable holding the OAuth client secret
	EnvClientSecret = "GOOGLE_CLIENT_SECRET"
	// EnvRedirectURL overrides the OAuth redirect URL
	EnvRedirectURL = "GOOGLE_REDIRECT_URL"

	// oobRedirectURL makes Google display the authorization code for copy and paste
	oobRedirectURL = "urn:ietf:wg:oauth:2.0:oob"
)

// OAuthConfig holds the OAuth client registration used for user consent
type OAuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scopes       []string
}

// OAuthConfigFromEnv builds the OAuth client configuration from environment variables
func OAuthConfigFromEnv() OAuthConfig {
	cfg := OAuthConfig{
		ClientID:     os.Getenv(EnvClientID),
		ClientSecret: os.Getenv(EnvClientSecret),
		RedirectURL:  os.Getenv(EnvRedirectURL),
		Scopes:       DefaultOAuthScopes,
	}
	if cfg.RedirectURL == "" {
		cfg.RedirectURL = oobRedirectURL
	}
	return cfg
}

// Validate checks that the client registration is complete
func (c OAuthConfig) Validate() error {
	if c.ClientID == "" {
		return fmt.Errorf("%s is not set", EnvClientID)
	}
	if c.ClientSecret == "" {
		return fmt.Errorf("%s is not set", EnvClientSecret)
	}
	return nil
}

func (c OAuthConfig) oauth2Config() *oauth2.Config {
	scopes := c.Scopes
	if len(scopes) == 0 {
		scopes = DefaultOAuthScopes
	}
	return &oauth2.Config{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		Endpoint:     google.Endpoint,
		RedirectURL:  c.RedirectURL,
		Scopes:       scopes,
	}
}

// GetAuthURL returns the OAuth URL for user authorization.
// Offline access is requested so a refresh token is issued.
func GetAuthURL(cfg OAuthConfig) string {
	return cfg.oauth2Config().AuthCodeURL("state", oauth2.AccessTypeOffline, oauth2.ApprovalForce)
}

// SaveToken exchanges an authorization code for tokens and saves them in the store
func SaveToken(ctx context.Context, cfg OAuthConfig, store *TokenStore, authCode string) error {
	t, err := cfg.oauth2Config().Exchange(ctx, authCode)
	if err != nil {
		return fmt.Errorf("failed to exchange auth code: %w", err)
	}

	if err := store.Save(ctx, t); err != nil {
		return err
	}

	return nil
}

// NewHTTPClient returns an HTTP client authenticated with tokens from the provider.
// The client is configured to use HTTP/1.1 to avoid HTTP/2 protocol errors
func NewHTTPClient(ctx context.Context, provider TokenProvider) (*http.Client, error) {
	ts, err := provider.TokenSource(ctx)
	if err != nil {
		return nil, err
	}

	return &http.Client{
		Transport: &oauth2.Transport{
			Source: ts,
			Base: &http.Transport{
				Proxy:             http.ProxyFromEnvironment,
				ForceAttemptHTTP2: false,
			},
		},
	}, nil
}

// GetAuthenticationErrorMessage returns the hint shown to MCP clients when no
// usable Google credentials are configured
func GetAuthenticationErrorMessage() string {
	return fmt.Sprintf(`Google Drive access has not been authorized yet.

To authorize:
1. Set %s and %s for your OAuth client
2. Run: gdrive-mcp auth url
3. Open the printed URL, grant access and copy the code
4. Run: gdrive-mcp auth save-code <code>

Alternatively set %s to a service account key file.`, EnvClientID, EnvClientSecret, EnvCredentialsFile)
}
