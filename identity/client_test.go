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

package identity_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiagolopescerillion/mobile-app-2.0/config"
	"github.com/tiagolopescerillion/mobile-app-2.0/identity"
)

// provider is a minimal Keycloak stand-in.
type provider struct {
	*httptest.Server
	tokenForm  url.Values
	logoutForm url.Values
	logoutCode int
}

func newProvider(t *testing.T) *provider {
	t.Helper()
	p := &provider{logoutCode: http.StatusNoContent}
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		p.tokenForm = r.PostForm
		if r.PostForm.Get("code") != "good-code" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token":  "access-1",
			"refresh_token": "refresh-1",
			"id_token":      "id-1",
			"token_type":    "Bearer",
			"expires_in":    300,
		})
	})
	mux.HandleFunc("/logout", func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		p.logoutForm = r.PostForm
		w.WriteHeader(p.logoutCode)
		if p.logoutCode >= 400 {
			_, _ = w.Write([]byte(`{"error":"invalid_token"}`))
		}
	})
	p.Server = httptest.NewServer(mux)
	t.Cleanup(p.Close)
	return p
}

func (p *provider) config() config.IdentityConfig {
	return config.IdentityConfig{
		AuthEndpoint:   p.URL + "/auth",
		TokenEndpoint:  p.URL + "/token",
		LogoutEndpoint: p.URL + "/logout",
		ClientID:       "mobile-app",
		RedirectURI:    "app://callback",
		Scope:          "openid profile email",
		Timeout:        5 * time.Second,
	}
}

// approve returns an AuthorizeFunc that checks the PKCE request and answers with code.
func approve(t *testing.T, code string) identity.AuthorizeFunc {
	return func(_ context.Context, authURL string) (url.Values, error) {
		u, err := url.Parse(authURL)
		require.NoError(t, err)
		q := u.Query()
		assert.Equal(t, "code", q.Get("response_type"))
		assert.Equal(t, "mobile-app", q.Get("client_id"))
		assert.Equal(t, "app://callback", q.Get("redirect_uri"))
		assert.Equal(t, "openid profile email", q.Get("scope"))
		assert.Equal(t, "S256", q.Get("code_challenge_method"))
		assert.NotEmpty(t, q.Get("code_challenge"))
		return url.Values{"code": {code}, "state": {q.Get("state")}}, nil
	}
}

func TestLogin_Success(t *testing.T) {
	p := newProvider(t)
	c := identity.New(p.config(), approve(t, "good-code"), identity.WithHTTPClient(p.Client()))

	res := c.Login(context.Background())
	require.True(t, res.OK, res.Error)
	assert.Equal(t, "access-1", res.AccessToken)
	assert.Equal(t, "refresh-1", res.RefreshToken)
	assert.Equal(t, "id-1", res.IDToken)
	assert.Empty(t, res.Error)

	assert.Equal(t, "authorization_code", p.tokenForm.Get("grant_type"))
	assert.Equal(t, "mobile-app", p.tokenForm.Get("client_id"))
	assert.NotEmpty(t, p.tokenForm.Get("code_verifier"))
}

func TestLogin_Failures(t *testing.T) {
	p := newProvider(t)

	tests := []struct {
		name      string
		authorize identity.AuthorizeFunc
		want      string
	}{
		{"cancelled", func(context.Context, string) (url.Values, error) {
			return nil, errors.New("user dismissed the browser")
		}, "Auth failed or was cancelled: user dismissed the browser"},
		{"provider error", func(context.Context, string) (url.Values, error) {
			return url.Values{"error": {"access_denied"}, "error_description": {"nope"}}, nil
		}, "Auth failed: access_denied: nope"},
		{"state mismatch", func(context.Context, string) (url.Values, error) {
			return url.Values{"code": {"good-code"}, "state": {"forged"}}, nil
		}, "Auth failed: state mismatch"},
		{"no code", func(_ context.Context, authURL string) (url.Values, error) {
			u, _ := url.Parse(authURL)
			return url.Values{"state": {u.Query().Get("state")}}, nil
		}, "Auth failed or was cancelled: no authorization code"},
		{"nil authorize", nil, "Auth failed: no authorization handler configured"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := identity.New(p.config(), tc.authorize, identity.WithHTTPClient(p.Client()))
			res := c.Login(context.Background())
			assert.False(t, res.OK)
			assert.Equal(t, tc.want, res.Error)
			assert.Empty(t, res.AccessToken)
		})
	}
}

func TestLogin_TokenExchangeRejected(t *testing.T) {
	p := newProvider(t)
	c := identity.New(p.config(), approve(t, "bad-code"), identity.WithHTTPClient(p.Client()))

	res := c.Login(context.Background())
	assert.False(t, res.OK)
	assert.Contains(t, res.Error, "Token exchange failed")
}

func TestLogin_NotConfigured(t *testing.T) {
	c := identity.New(config.IdentityConfig{}, approve(t, "x"))
	res := c.Login(context.Background())
	assert.False(t, res.OK)
	assert.Contains(t, res.Error, "not configured")
}

func TestLogout(t *testing.T) {
	p := newProvider(t)
	c := identity.New(p.config(), nil, identity.WithHTTPClient(p.Client()))

	res := c.Logout(context.Background(), "refresh-1")
	require.True(t, res.OK, res.Error)
	assert.Equal(t, "mobile-app", p.logoutForm.Get("client_id"))
	assert.Equal(t, "refresh-1", p.logoutForm.Get("refresh_token"))

	p.logoutCode = http.StatusBadRequest
	res = c.Logout(context.Background(), "refresh-1")
	assert.False(t, res.OK)
	assert.Equal(t, `Logout failed: HTTP 400: {"error":"invalid_token"}`, res.Error)

	res = c.Logout(context.Background(), "")
	assert.False(t, res.OK)
	assert.Equal(t, "Logout failed: no refresh token", res.Error)
}

func TestLogout_NotConfigured(t *testing.T) {
	c := identity.New(config.IdentityConfig{ClientID: "x"}, nil)
	res := c.Logout(context.Background(), "r")
	assert.False(t, res.OK)
	assert.Contains(t, res.Error, "not configured")
}
