/*
   Copyright 2026 The Mobile Shell Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package identity implements the OpenID Connect login and logout used by the
// shell, against a Keycloak-style provider: authorization code flow with PKCE,
// then a refresh-token logout on the end-session endpoint.
package identity

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/tiagolopescerillion/mobile-app-2.0/apis"
	"github.com/tiagolopescerillion/mobile-app-2.0/config"
)

// AuthorizeFunc drives the interactive step: it sends the user agent to
// authURL and returns the query parameters of the redirect back to the app.
// It must honour ctx cancellation.
type AuthorizeFunc func(ctx context.Context, authURL string) (url.Values, error)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client for token and logout calls.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithLogger sets the logger. Nil keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// Client implements apis.IdentityProvider.
type Client struct {
	cfg       config.IdentityConfig
	oauth     *oauth2.Config
	authorize AuthorizeFunc
	http      *http.Client
	logger    *slog.Logger
}

var _ apis.IdentityProvider = (*Client)(nil)

// New constructs a Client. authorize may be nil for logout-only use.
func New(cfg config.IdentityConfig, authorize AuthorizeFunc, opts ...Option) *Client {
	c := &Client{
		cfg:       cfg,
		authorize: authorize,
		http:      http.DefaultClient,
		logger:    slog.Default(),
		oauth: &oauth2.Config{
			ClientID:    cfg.ClientID,
			RedirectURL: cfg.RedirectURI,
			Scopes:      strings.Fields(cfg.Scope),
			Endpoint: oauth2.Endpoint{
				AuthURL:   cfg.AuthEndpoint,
				TokenURL:  cfg.TokenEndpoint,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With(slog.String("component", "identity"))
	return c
}

// withTimeout bounds a network call by cfg.Timeout when set.
func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.cfg.Timeout > 0 {
		return context.WithTimeout(ctx, c.cfg.Timeout)
	}
	return context.WithCancel(ctx)
}

// Login runs the authorization code flow with PKCE. Failures are reported in
// the result, never as a panic.
func (c *Client) Login(ctx context.Context) apis.LoginResult {
	if c.authorize == nil {
		return failLogin("Auth failed: no authorization handler configured")
	}
	if c.cfg.AuthEndpoint == "" || c.cfg.TokenEndpoint == "" {
		return failLogin("Auth failed: identity endpoints are not configured")
	}

	verifier := oauth2.GenerateVerifier()
	state := uuid.NewString()
	authURL := c.oauth.AuthCodeURL(state, oauth2.S256ChallengeOption(verifier))
	c.logger.Debug("Authorization URL", slog.String("url", authURL))

	params, err := c.authorize(ctx, authURL)
	if err != nil {
		return failLogin(fmt.Sprintf("Auth failed or was cancelled: %v", err))
	}
	if e := params.Get("error"); e != "" {
		msg := "Auth failed: " + e
		if d := params.Get("error_description"); d != "" {
			msg += ": " + d
		}
		return failLogin(msg)
	}
	if params.Get("state") != state {
		return failLogin("Auth failed: state mismatch")
	}
	code := params.Get("code")
	if code == "" {
		return failLogin("Auth failed or was cancelled: no authorization code")
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.http)

	tok, err := c.oauth.Exchange(ctx, code, oauth2.VerifierOption(verifier))
	if err != nil {
		c.logger.Warn("Token exchange failed", slog.String("error", err.Error()))
		return failLogin(fmt.Sprintf("Token exchange failed: %v", err))
	}

	idToken, _ := tok.Extra("id_token").(string)
	c.logger.Info("Login succeeded")
	return apis.LoginResult{
		OK:           true,
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		IDToken:      idToken,
	}
}

// Logout ends the provider session of refreshToken.
func (c *Client) Logout(ctx context.Context, refreshToken string) apis.LogoutResult {
	if c.cfg.LogoutEndpoint == "" {
		return failLogout("Logout failed: logout endpoint is not configured")
	}
	if refreshToken == "" {
		return failLogout("Logout failed: no refresh token")
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	form := url.Values{
		"client_id":     {c.cfg.ClientID},
		"refresh_token": {refreshToken},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.LogoutEndpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return failLogout(fmt.Sprintf("Logout failed: %v", err))
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return failLogout("Logout failed: timed out")
		}
		return failLogout(fmt.Sprintf("Logout failed: %v", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		msg := fmt.Sprintf("Logout failed: HTTP %d", resp.StatusCode)
		if b := strings.TrimSpace(string(body)); b != "" {
			msg += ": " + b
		}
		c.logger.Warn("Logout rejected", slog.Int("status", resp.StatusCode))
		return failLogout(msg)
	}

	c.logger.Info("Logout succeeded")
	return apis.LogoutResult{OK: true}
}

func failLogin(msg string) apis.LoginResult   { return apis.LoginResult{Error: msg} }
func failLogout(msg string) apis.LogoutResult { return apis.LogoutResult{Error: msg} }
