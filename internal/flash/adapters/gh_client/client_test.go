package ghclient

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestNew_TokenAuth(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"name":"firmware","default_branch":"main"}`)
	}))
	defer server.Close()

	client, err := New(Options{BaseURL: server.URL, Token: "secret-token"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	repo, _, err := client.Repositories.Get(context.Background(), "acme", "firmware")
	if err != nil {
		t.Fatalf("Repositories.Get() error = %v", err)
	}
	if repo.GetDefaultBranch() != "main" {
		t.Errorf("default branch = %q, want %q", repo.GetDefaultBranch(), "main")
	}
	if gotAuth != "Bearer secret-token" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer secret-token")
	}
}

func TestNew_Anonymous(t *testing.T) {
	client, err := New(Options{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if client.BaseURL.Host != "api.github.com" {
		t.Errorf("BaseURL host = %q, want api.github.com", client.BaseURL.Host)
	}
}

func TestNew_AppAuth(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generating key: %v", err)
	}
	keyPath := filepath.Join(t.TempDir(), "app.pem")
	pemBytes := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)})
	if err := os.WriteFile(keyPath, pemBytes, 0o600); err != nil {
		t.Fatalf("writing key: %v", err)
	}

	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{
			name: "valid app credentials",
			opts: Options{AppID: 1, InstallationID: 2, PrivateKeyPath: keyPath},
		},
		{
			name:    "missing installation id",
			opts:    Options{AppID: 1, PrivateKeyPath: keyPath},
			wantErr: true,
		},
		{
			name:    "missing key file",
			opts:    Options{AppID: 1, InstallationID: 2, PrivateKeyPath: filepath.Join(t.TempDir(), "nope.pem")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := New(tt.opts)
			if tt.wantErr {
				if err == nil {
					t.Fatal("New() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if client == nil {
				t.Fatal("New() returned nil client")
			}
		})
	}
}
