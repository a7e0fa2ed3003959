package gcalendar_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/oauth2"

	"goal-planner/pkg/gcalendar"
)

func TestSaveAndLoadToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), gcalendar.TokenFile)
	expiry := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	if err := gcalendar.SaveToken(path, &oauth2.Token{AccessToken: "a", RefreshToken: "r", TokenType: "Bearer", Expiry: expiry}); err != nil {
		t.Fatalf("SaveToken: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("token file mode = %v, want 0600", info.Mode().Perm())
	}

	tok, err := gcalendar.LoadToken(path)
	if err != nil {
		t.Fatalf("LoadToken: %v", err)
	}
	if tok.AccessToken != "a" || tok.RefreshToken != "r" || !tok.Expiry.Equal(expiry) {
		t.Errorf("unexpected token %+v", tok)
	}

	if err := os.WriteFile(path, []byte(`{"access_token":`), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := gcalendar.LoadToken(path); err == nil {
		t.Error("expected error for truncated token")
	}
}

func TestInstalledAppConfig(t *testing.T) {
	creds := []byte(`{"installed": {"client_id": "id", "client_secret": "s", "auth_uri": "https://accounts.google.com/o/oauth2/auth", "token_uri": "https://oauth2.googleapis.com/token", "redirect_uris": ["http://localhost"]}}`)
	cfg, err := gcalendar.InstalledAppConfig(creds)
	if err != nil {
		t.Fatalf("InstalledAppConfig: %v", err)
	}
	if cfg.ClientID != "id" || len(cfg.Scopes) != 1 {
		t.Errorf("unexpected config %+v", cfg)
	}

	if _, err := gcalendar.InstalledAppConfig([]byte(`{"broken":true}`)); err == nil {
		t.Error("expected error for unknown credentials")
	}
}
