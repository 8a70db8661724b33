// Package config loads scatter-flash settings from YAML and the environment.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/nathantilsley/scatter-flash/internal/logging"
)

// DefaultPath is read when no --config flag is given. It may be absent.
const DefaultPath = "scatter-flash.yaml"

// Config holds all scatter-flash configuration.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Scan   ScanConfig   `yaml:"scan"`
	GitHub GitHubConfig `yaml:"github"`
	Watch  WatchConfig  `yaml:"watch"`
}

// LogConfig configures the stderr logger.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	Color bool   `yaml:"color"`
}

// ScanConfig configures scatter file scanning.
type ScanConfig struct {
	Adjacent bool `yaml:"adjacent"`
}

// GitHubConfig configures access to scatter files hosted on GitHub.
type GitHubConfig struct {
	BaseURL        string `yaml:"base_url"`
	Token          string `yaml:"token"`
	AppID          int64  `yaml:"app_id"`
	InstallationID int64  `yaml:"installation_id"`
	PrivateKeyPath string `yaml:"private_key_path"`
}

// WatchConfig configures --watch.
type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level: "info",
			Color: true,
		},
		Watch: WatchConfig{
			Debounce: 300 * time.Millisecond,
		},
	}
}

// Load reads path over the defaults. Keys absent from the file keep their
// default value; unknown keys are an error. A missing file returns an error
// wrapping fs.ErrNotExist.
func Load(path string) (Config, error) {
	cfg := Default()

	//nolint:gosec // G304: Config path comes from the operator
	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("opening config: %w", err)
	}
	defer func() { _ = f.Close() }()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overlays GitHub settings from the environment. Unset or empty
// variables leave the file value alone.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv("GITHUB_TOKEN"); v != "" {
		c.GitHub.Token = v
	}
	if v := getenv("GITHUB_PRIVATE_KEY_PATH"); v != "" {
		c.GitHub.PrivateKeyPath = v
	}
	if v := getenv("GITHUB_API_URL"); v != "" {
		c.GitHub.BaseURL = v
	}

	ids := []struct {
		key string
		dst *int64
	}{
		{"GITHUB_APP_ID", &c.GitHub.AppID},
		{"GITHUB_INSTALLATION_ID", &c.GitHub.InstallationID},
	}
	for _, id := range ids {
		v := getenv(id.key)
		if v == "" {
			continue
		}
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", id.key, err)
		}
		*id.dst = n
	}
	return nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must not be negative, got %s", c.Watch.Debounce)
	}

	gh := c.GitHub
	appSet := gh.AppID != 0 || gh.InstallationID != 0 || gh.PrivateKeyPath != ""
	appComplete := gh.AppID != 0 && gh.InstallationID != 0 && gh.PrivateKeyPath != ""
	if appSet && !appComplete {
		return errors.New("github app auth needs app_id, installation_id and private_key_path together")
	}
	return nil
}
