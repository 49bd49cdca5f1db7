// SPDX-License-Identifier: MIT

// Package scan implements the backup-file probe: candidate construction,
// sequential HTTP checks and status classification.
package scan

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"

	xglog "github.com/ManuGH/bakscan/internal/log"
)

// DefaultExtensions is the built-in suffix list, probed in this order.
// A user-supplied list replaces it entirely.
var DefaultExtensions = []string{".bak", ".swp", "~", ".old", ".tmp", ".backup", ".orig"}

// ValidateURL reports whether raw is usable as a scan target. A target needs
// both a scheme and a host; anything the parser rejects is invalid too.
func ValidateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("parse URL %q: %w", raw, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("URL %q must include a scheme and host", raw)
	}
	return nil
}

type Scanner struct {
	http   *http.Client
	logger zerolog.Logger
}

// New returns a Scanner using the given client. A nil client falls back to a
// default http.Client, which follows redirects and carries no extra timeout.
func New(client *http.Client, logger zerolog.Logger) *Scanner {
	if client == nil {
		client = &http.Client{}
	}
	return &Scanner{http: client, logger: logger}
}

// Run probes baseURL once per extension, in list order, and returns the
// candidates that answered with status 200. Candidates are built by raw
// concatenation; no separator is inserted. A failing candidate never aborts
// the scan.
func (s *Scanner) Run(ctx context.Context, baseURL string, extensions []string) []string {
	var found []string
	for _, ext := range extensions {
		candidate := baseURL + ext

		s.logger.Debug().
			Str(xglog.FieldURL, candidate).
			Str(xglog.FieldExtension, ext).
			Msg("checking candidate")

		status, err := s.probe(ctx, candidate)
		if err != nil {
			s.logger.Debug().
				Err(err).
				Str(xglog.FieldURL, candidate).
				Msg("candidate check failed")
			continue
		}

		if status == http.StatusOK {
			s.logger.Info().
				Str(xglog.FieldURL, candidate).
				Str(xglog.FieldEvent, "scan.hit").
				Msg("found backup file")
			found = append(found, candidate)
			continue
		}

		s.logger.Debug().
			Int(xglog.FieldStatus, status).
			Str(xglog.FieldURL, candidate).
			Msg("candidate not present")
	}
	return found
}

// probe issues a single GET and returns the final status code after
// redirects. The body is drained without inspection so the connection can be
// reused.
func (s *Scanner) probe(ctx context.Context, candidate string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, candidate, nil)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	res, err := s.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer func() { _ = res.Body.Close() }()
	_, _ = io.Copy(io.Discard, res.Body)
	return res.StatusCode, nil
}
