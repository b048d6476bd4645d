package google

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/oauth2"
)

func TestOAuthConfigFromEnv(t *testing.T) {
	t.Setenv(EnvClientID, "client-id")
	t.Setenv(EnvClientSecret, "client-secret")
	t.Setenv(EnvRedirectURL, "")

	cfg := OAuthConfigFromEnv()

	if cfg.ClientID != "client-id" {
		t.Errorf("ClientID = %q, want client-id", cfg.ClientID)
	}
	if cfg.ClientSecret != "client-secret" {
		t.Errorf("ClientSecret = %q, want client-secret", cfg.ClientSecret)
	}
	if cfg.RedirectURL != oobRedirectURL {
		t.Errorf("RedirectURL = %q, want %q", cfg.RedirectURL, oobRedirectURL)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestOAuthConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     OAuthConfig
		wantErr string
	}{
		{"missing client id", OAuthConfig{ClientSecret: "s"}, EnvClientID},
		{"missing client secret", OAuthConfig{ClientID: "id"}, EnvClientSecret},
		{"complete", OAuthConfig{ClientID: "id", ClientSecret: "s"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want mention of %s", err, tt.wantErr)
			}
		})
	}
}

func TestGetAuthURL(t *testing.T) {
	url := GetAuthURL(OAuthConfig{ClientID: "my-client", ClientSecret: "s", RedirectURL: oobRedirectURL})

	for _, want := range []string{"client_id=my-client", "access_type=offline", "auth%2Fdrive", "auth%2Fspreadsheets"} {
		if !strings.Contains(url, want) {
			t.Errorf("GetAuthURL() = %q, missing %q", url, want)
		}
	}
}

func TestTokenStore_SaveAndLoad(t *testing.T) {
	store := NewTokenStore(filepath.Join(t.TempDir(), "nested", "google.token"))
	ctx := context.Background()

	if store.Exists() {
		t.Fatal("Expected no token before save")
	}

	expiry := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	if err := store.Save(ctx, &oauth2.Token{AccessToken: "access", RefreshToken: "refresh", Expiry: expiry}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if !store.Exists() {
		t.Fatal("Expected token after save")
	}

	info, err := os.Stat(store.Path())
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("token file mode = %v, want 0600", info.Mode().Perm())
	}

	token, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if token.AccessToken != "access" || token.RefreshToken != "refresh" || !token.Expiry.Equal(expiry) {
		t.Errorf("Load() = %+v", token)
	}
}

func TestTokenStore_LoadMissing(t *testing.T) {
	store := NewTokenStore(filepath.Join(t.TempDir(), "google.token"))

	if _, err := store.Load(context.Background()); !errors.Is(err, ErrNoToken) {
		t.Errorf("Load() error = %v, want ErrNoToken", err)
	}
}

func TestTokenStore_LoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "google.token")
	if err := os.WriteFile(path, []byte("access refresh"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := NewTokenStore(path).Load(context.Background()); err == nil {
		t.Error("Expected error for legacy plain-text token format")
	}

	if err := os.WriteFile(path, []byte(`{}`), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := NewTokenStore(path).Load(context.Background()); err == nil {
		t.Error("Expected error for empty token")
	}
}

func TestTokenStore_SaveNil(t *testing.T) {
	store := NewTokenStore(filepath.Join(t.TempDir(), "google.token"))
	if err := store.Save(context.Background(), nil); err == nil {
		t.Error("Expected error saving nil token")
	}
}

func TestDefaultTokenPath(t *testing.T) {
	path := DefaultTokenPath()
	if filepath.Base(path) != tokenFileName {
		t.Errorf("DefaultTokenPath() = %q, want base %q", path, tokenFileName)
	}
	if filepath.Base(filepath.Dir(path)) != appCacheDirName {
		t.Errorf("DefaultTokenPath() = %q, want parent %q", path, appCacheDirName)
	}
}

func TestNewHTTPClient_SetsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	provider := NewStaticTokenProvider(&oauth2.Token{AccessToken: "abc", TokenType: "Bearer"})
	client, err := NewHTTPClient(context.Background(), provider)
	if err != nil {
		t.Fatalf("NewHTTPClient() error = %v", err)
	}

	resp, err := client.Get(srv.URL)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	resp.Body.Close()

	if gotAuth != "Bearer abc" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer abc")
	}
}

func TestNewHTTPClient_NoToken(t *testing.T) {
	provider := NewFileTokenProvider(OAuthConfig{}, NewTokenStore(filepath.Join(t.TempDir(), "google.token")))

	if provider.HasToken() {
		t.Error("Expected HasToken() to be false without a token file")
	}
	if _, err := NewHTTPClient(context.Background(), provider); !errors.Is(err, ErrNoToken) {
		t.Errorf("NewHTTPClient() error = %v, want ErrNoToken", err)
	}
}

type sequenceTokenSource struct {
	tokens []*oauth2.Token
	i      int
}

func (s *sequenceTokenSource) Token() (*oauth2.Token, error) {
	t := s.tokens[s.i]
	if s.i < len(s.tokens)-1 {
		s.i++
	}
	return t, nil
}

func TestPersistingTokenSource_SavesRefreshedToken(t *testing.T) {
	store := NewTokenStore(filepath.Join(t.TempDir(), "google.token"))
	ctx := context.Background()

	ts := &persistingTokenSource{
		ctx: ctx,
		base: &sequenceTokenSource{tokens: []*oauth2.Token{
			{AccessToken: "old", RefreshToken: "r"},
			{AccessToken: "new", RefreshToken: "r"},
		}},
		store: store,
		last:  "old",
	}

	if _, err := ts.Token(); err != nil {
		t.Fatalf("Token() error = %v", err)
	}
	if store.Exists() {
		t.Error("Expected unchanged token not to be written")
	}

	if _, err := ts.Token(); err != nil {
		t.Fatalf("Token() error = %v", err)
	}
	saved, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if saved.AccessToken != "new" {
		t.Errorf("saved AccessToken = %q, want new", saved.AccessToken)
	}
}

func TestNewTokenProviderFromEnv(t *testing.T) {
	store := NewTokenStore(filepath.Join(t.TempDir(), "google.token"))

	t.Setenv(EnvCredentialsFile, "")
	if _, ok := NewTokenProviderFromEnv(store).(*FileTokenProvider); !ok {
		t.Error("Expected FileTokenProvider without credentials file")
	}

	t.Setenv(EnvCredentialsFile, filepath.Join(t.TempDir(), "sa.json"))
	provider := NewTokenProviderFromEnv(store)
	if _, ok := provider.(*ServiceAccountTokenProvider); !ok {
		t.Fatal("Expected ServiceAccountTokenProvider with credentials file")
	}
	if provider.HasToken() {
		t.Error("Expected HasToken() false for missing key file")
	}
	if _, err := provider.TokenSource(context.Background()); err == nil {
		t.Error("Expected error reading missing key file")
	}
}

func TestGetAuthenticationErrorMessage(t *testing.T) {
	msg := GetAuthenticationErrorMessage()

	for _, want := range []string{"gdrive-mcp auth url", "auth save-code", EnvClientID, EnvCredentialsFile} {
		if !strings.Contains(msg, want) {
			t.Errorf("message does not mention %q:\n%s", want, msg)
		}
	}
}
