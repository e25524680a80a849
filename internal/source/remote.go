// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package source

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/bootcamp-webapi/internal/logger"
	"github.com/MKhiriev/bootcamp-webapi/internal/utils"
)

// Keys read by the remote source from the local view.
const (
	KeyRemoteURL           = "configSource.remote.url"
	KeyRemoteRequired      = "configSource.remote.required"
	KeyRemoteName          = "configSource.remote.name"
	KeyRemoteProfile       = "configSource.remote.profile"
	KeyRemoteLabel         = "configSource.remote.label"
	KeyRemoteUsername      = "configSource.remote.username"
	KeyRemotePassword      = "configSource.remote.password"
	KeyRemoteTimeoutMs     = "configSource.remote.timeoutMs"
	KeyRemoteMaxAttempts   = "configSource.remote.retry.maxAttempts"
	KeyRemoteBackoffBaseMs = "configSource.remote.retry.backoffBaseMs"
	KeyRemoteBackoffMaxMs  = "configSource.remote.retry.backoffMaxMs"

	keyAppName = "app.name"
)

var remoteSettingKeys = []string{
	KeyRemoteURL, KeyRemoteRequired, KeyRemoteName, KeyRemoteProfile, KeyRemoteLabel,
	KeyRemoteUsername, KeyRemotePassword, KeyRemoteTimeoutMs, KeyRemoteMaxAttempts,
	KeyRemoteBackoffBaseMs, KeyRemoteBackoffMaxMs, keyAppName,
}

// SettingsExpander substitutes placeholders in the given keys of values and
// returns their expanded values.
type SettingsExpander func(values map[string]string, keys ...string) (map[string]string, error)

// RemoteSettings configures the config server client.
type RemoteSettings struct {
	URL      string
	Required bool
	Name     string
	Profile  string
	Label    string
	Username string
	Password string

	Timeout     time.Duration
	MaxAttempts int
	BackoffBase time.Duration
	BackoffMax  time.Duration
}

// RemoteSettingsFrom reads [RemoteSettings] from the configSource.remote.*
// keys of local. Missing keys fall back to safe defaults: the source is
// required, five attempts are made, and backoff starts at 500ms.
func RemoteSettingsFrom(local Values) (RemoteSettings, error) {
	s := RemoteSettings{
		URL:      strings.TrimSpace(local.Get(KeyRemoteURL)),
		Required: true,
		Name:     local.Get(KeyRemoteName),
		Profile:  local.Get(KeyRemoteProfile),
		Label:    local.Get(KeyRemoteLabel),
		Username: local.Get(KeyRemoteUsername),
		Password: local.Get(KeyRemotePassword),
	}

	if s.Name == "" {
		s.Name = local.Get(keyAppName)
	}
	if s.Name == "" {
		s.Name = "application"
	}
	if s.Profile == "" {
		s.Profile = "default"
	}

	var errs []error
	if raw := local.Get(KeyRemoteRequired); raw != "" {
		required, err := strconv.ParseBool(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", KeyRemoteRequired, err))
		} else {
			s.Required = required
		}
	}

	s.Timeout = time.Duration(positiveInt(local, KeyRemoteTimeoutMs, 5000, &errs)) * time.Millisecond
	s.MaxAttempts = positiveInt(local, KeyRemoteMaxAttempts, 5, &errs)
	s.BackoffBase = time.Duration(positiveInt(local, KeyRemoteBackoffBaseMs, 500, &errs)) * time.Millisecond
	s.BackoffMax = time.Duration(positiveInt(local, KeyRemoteBackoffMaxMs, 10000, &errs)) * time.Millisecond

	if len(errs) > 0 {
		return s, fmt.Errorf("%w: %w", ErrInvalidRemoteSettings, errors.Join(errs...))
	}
	return s, nil
}

func positiveInt(local Values, key string, fallback int, errs *[]error) int {
	raw := strings.TrimSpace(local.Get(key))
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	if n < 1 {
		*errs = append(*errs, fmt.Errorf("%s: must be a positive integer, got %d", key, n))
		return fallback
	}
	return n
}

// environment is the document served by a Spring Cloud Config compatible
// server for GET /{name}/{profile}[/{label}].
type environment struct {
	Name            string           `json:"name"`
	Profiles        []string         `json:"profiles"`
	Label           string           `json:"label"`
	Version         string           `json:"version"`
	PropertySources []propertySource `json:"propertySources"`
}

type propertySource struct {
	Name   string         `json:"name"`
	Source map[string]any `json:"source"`
}

type remoteSource struct {
	logger *logger.Logger
	expand SettingsExpander
}

// RemoteOption customizes the source returned by [NewRemote].
type RemoteOption func(*remoteSource)

// WithSettingsExpander expands placeholders in the configSource.remote.*
// settings before they are parsed, so the URL may reference a key set by
// another local source, e.g. ${vcap.services.config.0.credentials.uri}.
func WithSettingsExpander(expand SettingsExpander) RemoteOption {
	return func(s *remoteSource) { s.expand = expand }
}

// NewRemote returns the config server source. It is [Deferred]: its settings
// are taken from the merged local view, so the server URL can come from any
// local source including the command line.
//
// Transient failures (transport errors, HTTP 408, 429 and 5xx) are retried
// with capped exponential backoff up to the configured attempt ceiling.
// Exhaustion, or any non-transient failure, is reported as a
// [ConfigSourceUnavailableError] carrying the configured Required flag.
func NewRemote(log *logger.Logger, opts ...RemoteOption) Source {
	s := &remoteSource{logger: log}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *remoteSource) Name() string    { return "remote" }
func (s *remoteSource) Precedence() int { return PrecedenceRemote }
func (s *remoteSource) Deferred() bool  { return true }

func (s *remoteSource) Load(ctx context.Context, local Values) ([]Entry, error) {
	if s.expand != nil {
		expanded, err := s.expand(local, remoteSettingKeys...)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidRemoteSettings, err)
		}
		local = local.Clone()
		for k, v := range expanded {
			local[NormalizeKey(k)] = v
		}
	}

	settings, err := RemoteSettingsFrom(local)
	if err != nil {
		return nil, err
	}

	if settings.URL == "" {
		s.logger.Debug().Msg("remote config source disabled: no url configured")
		return nil, nil
	}

	client := utils.NewHTTPClient(utils.HTTPClientConfig{
		BaseURL:  settings.URL,
		Timeout:  settings.Timeout,
		Username: settings.Username,
		Password: settings.Password,
	})
	path := documentPath(settings)

	backoff := retry.NewExponential(settings.BackoffBase)
	backoff = retry.WithCappedDuration(settings.BackoffMax, backoff)
	backoff = retry.WithMaxRetries(uint64(settings.MaxAttempts-1), backoff)

	var (
		attempts int
		doc      environment
	)
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempts++
		fetched, err := fetchEnvironment(ctx, client, path)
		if err != nil {
			if ctx.Err() == nil && isTransient(err) {
				s.logger.Warn().
					Err(err).
					Int("attempt", attempts).
					Int("max_attempts", settings.MaxAttempts).
					Str("url", settings.URL).
					Msg("config server request failed, retrying")
				return retry.RetryableError(err)
			}
			return err
		}
		doc = fetched
		return nil
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("fetching remote configuration: %w", ctxErr)
		}
		return nil, &ConfigSourceUnavailableError{
			Source:   s.Name(),
			Required: settings.Required,
			Attempts: attempts,
			Err:      err,
		}
	}

	entries, err := doc.entries()
	if err != nil {
		return nil, &ConfigSourceUnavailableError{
			Source:   s.Name(),
			Required: settings.Required,
			Attempts: attempts,
			Err:      err,
		}
	}

	s.logger.Info().
		Str("url", settings.URL).
		Str("name", doc.Name).
		Strs("profiles", doc.Profiles).
		Str("version", doc.Version).
		Int("property_sources", len(doc.PropertySources)).
		Msg("remote configuration fetched")

	return entries, nil
}

func documentPath(s RemoteSettings) string {
	path := "/" + url.PathEscape(s.Name) + "/" + url.PathEscape(s.Profile)
	if s.Label != "" {
		path += "/" + url.PathEscape(s.Label)
	}
	return path
}

func fetchEnvironment(ctx context.Context, client *utils.HTTPClient, path string) (environment, error) {
	resp, err := client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(path)
	if err != nil {
		return environment{}, fmt.Errorf("config server request: %w", err)
	}

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return environment{}, &statusError{code: resp.StatusCode(), body: strings.TrimSpace(string(resp.Body()))}
	}

	decoder := json.NewDecoder(bytes.NewReader(resp.Body()))
	decoder.UseNumber()

	var doc environment
	if err = decoder.Decode(&doc); err != nil {
		return environment{}, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}

	return doc, nil
}

// entries flattens the property sources. The server lists them
// highest-priority first, so they are emitted in reverse and the first
// source wins when folded.
func (e environment) entries() ([]Entry, error) {
	var entries []Entry
	for i := len(e.PropertySources) - 1; i >= 0; i-- {
		ps := e.PropertySources[i]
		if err := flatten("", ps.Source, &entries); err != nil {
			return nil, fmt.Errorf("property source %q: %w", ps.Name, err)
		}
	}
	return entries, nil
}

func isTransient(err error) bool {
	if errors.Is(err, ErrMalformedDocument) {
		return false
	}

	var se *statusError
	if errors.As(err, &se) {
		switch {
		case se.code == http.StatusRequestTimeout,
			se.code == http.StatusTooManyRequests,
			se.code >= http.StatusInternalServerError:
			return true
		default:
			return false
		}
	}

	// url.Error without a network cause, e.g. an unsupported scheme, fails
	// the same way on every attempt
	var ue *url.Error
	if errors.As(err, &ue) {
		if ue.Timeout() {
			return true
		}
		var ne net.Error
		return errors.As(ue.Err, &ne) || errors.Is(ue.Err, io.EOF) || errors.Is(ue.Err, io.ErrUnexpectedEOF)
	}

	// transport level: connection refused, reset, timeout
	return true
}
