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

package composer

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"

	"github.com/tiagolopescerillion/mobile-app-2.0/apis"
	"github.com/tiagolopescerillion/mobile-app-2.0/config"
	"github.com/tiagolopescerillion/mobile-app-2.0/registry"
	"github.com/tiagolopescerillion/mobile-app-2.0/resolver"
	"github.com/tiagolopescerillion/mobile-app-2.0/strategy"
	"github.com/tiagolopescerillion/mobile-app-2.0/utils/urls"
)

var (
	// ErrUnknownEndpoint is returned when no definition is registered under the key.
	ErrUnknownEndpoint = errors.New("shell(composer): unknown endpoint")
	// ErrNoRoute is returned when a definition has neither url, baseUrl nor baseKey.
	ErrNoRoute = resolver.ErrNoRoute
	// ErrUnresolvedPlaceholder is returned when a URL carries the account
	// placeholder and no account number was supplied.
	ErrUnresolvedPlaceholder = errors.New("shell(composer): unresolved placeholder")
)

// UnknownEndpointError reports a key with no registered definition, with the
// closest registered key when one is near enough.
type UnknownEndpointError struct {
	Key        string
	Suggestion string
}

func (e *UnknownEndpointError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%s: %q (did you mean %q?)", ErrUnknownEndpoint, e.Key, e.Suggestion)
	}
	return fmt.Sprintf("%s: %q", ErrUnknownEndpoint, e.Key)
}

// Is makes errors.Is(err, ErrUnknownEndpoint) hold.
func (e *UnknownEndpointError) Is(target error) bool { return target == ErrUnknownEndpoint }

// accountPlaceholder matches both accepted spellings of the account number
// placeholder, <account_no> and {account_no}, in any letter case.
var accountPlaceholder = regexp.MustCompile(`(?i)<account_no>|\{account_no\}`)

// DefaultRoutes returns the standard route chain over reg:
// url, then baseUrl+path, then baseKey+path.
func DefaultRoutes(reg apis.Registry) apis.RouteResolver {
	return resolver.Chain(
		strategy.NewDirectRoute(),
		strategy.NewBaseURLRoute(),
		strategy.NewBaseKeyRoute(reg),
	)
}

// New constructs an apis.Composer over reg. A nil routes uses DefaultRoutes(reg).
// A blank focus parameter name falls back to the config defaults.
// The composer keeps no mutable state of its own; it is as safe for concurrent
// use as reg and routes are.
func New(cfg apis.Config, reg apis.Registry, routes apis.RouteResolver) apis.Composer {
	if cfg.FocusParam == "" {
		cfg.FocusParam = config.DefaultFocusParam
		cfg.FocusValue = config.DefaultFocusValue
	}
	if cfg.FocusValue == "" {
		cfg.FocusValue = config.DefaultFocusValue
	}
	if reg == nil {
		reg = registry.New()
	}
	if routes == nil {
		routes = DefaultRoutes(reg)
	}
	return &composer{cfg: cfg, reg: reg, routes: routes}
}

type composer struct {
	cfg    apis.Config
	reg    apis.Registry
	routes apis.RouteResolver
}

// Compose resolves key into a concrete URL.
func (c *composer) Compose(key string, subs apis.Substitutions) (apis.ResolvedEndpoint, error) {
	def, ok := c.reg.Lookup(key)
	if !ok {
		hint, _ := registry.Suggest(c.reg, key)
		return apis.ResolvedEndpoint{}, &UnknownEndpointError{Key: key, Suggestion: hint}
	}

	raw, err := c.routes.RawURL(key, def)
	if err != nil {
		if errors.Is(err, ErrNoRoute) {
			return apis.ResolvedEndpoint{}, fmt.Errorf("%w: %q", err, key)
		}
		return apis.ResolvedEndpoint{}, err
	}

	if accountPlaceholder.MatchString(raw) {
		acct, ok := subs.Account()
		if !ok {
			return apis.ResolvedEndpoint{}, fmt.Errorf("%w: %q needs an account number", ErrUnresolvedPlaceholder, key)
		}
		raw = accountPlaceholder.ReplaceAllLiteralString(raw, url.PathEscape(acct))
	}

	raw = urls.WithQueryParam(raw, c.cfg.FocusParam, c.cfg.FocusValue)

	title := def.Title
	if title == "" {
		title = key
	}
	return apis.ResolvedEndpoint{Key: key, URL: raw, Title: title}, nil
}

// Endpoint is Compose with the failure reason dropped.
func (c *composer) Endpoint(key string, subs apis.Substitutions) (apis.ResolvedEndpoint, bool) {
	ep, err := c.Compose(key, subs)
	if err != nil {
		return apis.ResolvedEndpoint{}, false
	}
	return ep, true
}

// Endpoints composes every registered key in sorted order, omitting unavailable ones.
func (c *composer) Endpoints(subs apis.Substitutions) []apis.ResolvedEndpoint {
	keys := c.reg.Keys()
	out := make([]apis.ResolvedEndpoint, 0, len(keys))
	for _, key := range keys {
		if ep, ok := c.Endpoint(key, subs); ok {
			out = append(out, ep)
		}
	}
	return out
}
