package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scatter-flash.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Config
		wantErr bool
	}{
		{
			name:    "empty file keeps defaults",
			content: "",
			want:    Default(),
		},
		{
			name: "partial file overlays defaults",
			content: `
log:
  level: debug
scan:
  adjacent: true
watch:
  debounce: 1s
`,
			want: Config{
				Log:   LogConfig{Level: "debug", Color: true},
				Scan:  ScanConfig{Adjacent: true},
				Watch: WatchConfig{Debounce: time.Second},
			},
		},
		{
			name: "github section",
			content: `
github:
  base_url: https://ghe.example.com/api/v3/
  app_id: 12
  installation_id: 34
  private_key_path: /etc/scatter-flash/app.pem
`,
			want: func() Config {
				c := Default()
				c.GitHub = GitHubConfig{
					BaseURL:        "https://ghe.example.com/api/v3/",
					AppID:          12,
					InstallationID: 34,
					PrivateKeyPath: "/etc/scatter-flash/app.pem",
				}
				return c
			}(),
		},
		{
			name:    "unknown key",
			content: "scan:\n  strict: true\n",
			wantErr: true,
		},
		{
			name:    "malformed yaml",
			content: "log: [",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(writeConfig(t, tt.content))
			if tt.wantErr {
				if err == nil {
					t.Fatal("Load() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Load() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("Load() error = %v, want fs.ErrNotExist", err)
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"GITHUB_TOKEN":           "tok",
		"GITHUB_APP_ID":          "7",
		"GITHUB_INSTALLATION_ID": "8",
	}
	cfg := Default()
	cfg.GitHub.PrivateKeyPath = "/from/file.pem"

	if err := cfg.ApplyEnv(func(k string) string { return env[k] }); err != nil {
		t.Fatalf("ApplyEnv() error = %v", err)
	}

	want := GitHubConfig{
		Token:          "tok",
		AppID:          7,
		InstallationID: 8,
		PrivateKeyPath: "/from/file.pem",
	}
	if diff := cmp.Diff(want, cfg.GitHub); diff != "" {
		t.Errorf("ApplyEnv() mismatch (-want +got):\n%s", diff)
	}

	bad := Default()
	err := bad.ApplyEnv(func(k string) string {
		if k == "GITHUB_APP_ID" {
			return "seven"
		}
		return ""
	})
	if err == nil {
		t.Error("ApplyEnv() expected error for non-numeric GITHUB_APP_ID")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "bad log level", mutate: func(c *Config) { c.Log.Level = "loud" }, wantErr: true},
		{name: "negative debounce", mutate: func(c *Config) { c.Watch.Debounce = -time.Second }, wantErr: true},
		{name: "token only", mutate: func(c *Config) { c.GitHub.Token = "tok" }},
		{
			name:    "partial app settings",
			mutate:  func(c *Config) { c.GitHub.AppID = 1 },
			wantErr: true,
		},
		{
			name: "complete app settings",
			mutate: func(c *Config) {
				c.GitHub.AppID = 1
				c.GitHub.InstallationID = 2
				c.GitHub.PrivateKeyPath = "key.pem"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
