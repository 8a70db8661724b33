// Package ghclient builds authenticated GitHub API clients.
package ghclient

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v68/github"
)

const requestTimeout = 30 * time.Second

// Options selects how the client authenticates.
// App credentials take precedence over Token; with neither the client is
// anonymous.
type Options struct {
	BaseURL        string // GitHub Enterprise API URL, empty for github.com
	Token          string
	AppID          int64
	InstallationID int64
	PrivateKeyPath string
}

// UsesApp reports whether GitHub App installation auth is configured.
func (o Options) UsesApp() bool {
	return o.AppID != 0
}

// New creates a GitHub client for opts.
func New(opts Options) (*github.Client, error) {
	httpClient := &http.Client{Timeout: requestTimeout}

	if opts.UsesApp() {
		if opts.InstallationID == 0 || opts.PrivateKeyPath == "" {
			return nil, errors.New("github app auth requires installation id and private key path")
		}
		itr, err := ghinstallation.NewKeyFromFile(
			http.DefaultTransport,
			opts.AppID,
			opts.InstallationID,
			opts.PrivateKeyPath,
		)
		if err != nil {
			return nil, fmt.Errorf("creating installation transport: %w", err)
		}
		if opts.BaseURL != "" {
			itr.BaseURL = strings.TrimSuffix(opts.BaseURL, "/")
		}
		httpClient.Transport = itr
	}

	client := github.NewClient(httpClient)
	if !opts.UsesApp() && opts.Token != "" {
		client = client.WithAuthToken(opts.Token)
	}

	if opts.BaseURL != "" {
		var err error
		client, err = client.WithEnterpriseURLs(opts.BaseURL, opts.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("setting enterprise URL: %w", err)
		}
	}
	return client, nil
}
