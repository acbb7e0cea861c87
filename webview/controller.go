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

// Package webview drives the single shared embedded browser of the shell.
//
// One surface serves every endpoint. Opening a key swaps the page and shows
// the surface; closing hides it but keeps the page mounted so reopening is
// instant. Keys that do not resolve are ignored.
package webview

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tiagolopescerillion/mobile-app-2.0/apis"
)

// DefaultKey is the endpoint mounted before anything is opened.
const DefaultKey = "selfServiceBase"

// Endpoints resolves endpoint keys. *shell.Store and apis.Composer satisfy it.
type Endpoints interface {
	Endpoint(key string, subs apis.Substitutions) (apis.ResolvedEndpoint, bool)
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger. Nil keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithSubstitutions sets the source of placeholder values, typically
// (*account.Selection).Substitutions.
func WithSubstitutions(fn func() apis.Substitutions) Option {
	return func(c *Controller) {
		if fn != nil {
			c.subs = fn
		}
	}
}

// WithDefaultKey overrides DefaultKey. An empty key mounts nothing.
func WithDefaultKey(key string) Option {
	return func(c *Controller) { c.defaultKey = key }
}

// WithClock overrides time.Now for event timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		if now != nil {
			c.now = now
		}
	}
}

// Controller owns the shared surface.
type Controller struct {
	endpoints  Endpoints
	surface    apis.Surface
	logger     *slog.Logger
	subs       func() apis.Substitutions
	now        func() time.Time
	defaultKey string

	mu      sync.Mutex
	page    *apis.Page
	visible bool
}

// NewController mounts the default page when it resolves; otherwise the
// controller starts with nothing mounted.
func NewController(endpoints Endpoints, surface apis.Surface, opts ...Option) *Controller {
	c := &Controller{
		endpoints:  endpoints,
		surface:    surface,
		logger:     slog.Default(),
		subs:       func() apis.Substitutions { return apis.Substitutions{} },
		now:        time.Now,
		defaultKey: DefaultKey,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With(slog.String("component", "webview"))

	if c.defaultKey != "" {
		if page, ok := c.resolve(c.defaultKey); ok {
			c.page = &page
			c.logger.Debug("Default page mounted", slog.String("key", page.Key), slog.String("url", page.URL))
		} else {
			c.logger.Debug("Default page unavailable", slog.String("key", c.defaultKey))
		}
	}
	return c
}

func (c *Controller) resolve(key string) (apis.Page, bool) {
	if c.endpoints == nil {
		return apis.Page{}, false
	}
	ep, ok := c.endpoints.Endpoint(key, c.subs())
	if !ok {
		return apis.Page{}, false
	}
	return apis.Page{
		SessionID: uuid.NewString(),
		Key:       ep.Key,
		URL:       ep.URL,
		Title:     ep.Title,
	}, true
}

// Open shows the page of key. It reports false, and changes nothing, when
// the key is unavailable.
func (c *Controller) Open(key string) bool {
	page, ok := c.resolve(key)
	if !ok {
		c.logger.Info("Open ignored: endpoint unavailable", slog.String("key", key))
		return false
	}

	c.mu.Lock()
	c.page = &page
	c.visible = true
	c.mu.Unlock()

	c.logger.Info("Open",
		slog.String("key", page.Key),
		slog.String("session", page.SessionID),
		slog.String("url", page.URL))
	if c.surface != nil {
		c.surface.Present(page)
	}
	return true
}

// Close hides the surface. The page stays mounted.
func (c *Controller) Close() {
	c.mu.Lock()
	wasVisible := c.visible
	c.visible = false
	c.mu.Unlock()

	if !wasVisible {
		return
	}
	c.logger.Info("Close")
	if c.surface != nil {
		c.surface.Dismiss()
	}
}

// Current returns the mounted page, visible or not.
func (c *Controller) Current() (apis.Page, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.page == nil {
		return apis.Page{}, false
	}
	return *c.page, true
}

// Visible reports whether the surface is shown.
func (c *Controller) Visible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visible
}

// Notify records a lifecycle event reported by the surface. It never blocks
// on the surface. A close reported by the surface itself (e.g. the user
// dismissed it) hides the controller too.
func (c *Controller) Notify(ev apis.SurfaceEvent) {
	if ev.At.IsZero() {
		ev.At = c.now()
	}

	c.mu.Lock()
	stale := c.page == nil || (ev.SessionID != "" && ev.SessionID != c.page.SessionID)
	if ev.Kind == apis.SurfaceClosed && !stale {
		c.visible = false
	}
	c.mu.Unlock()

	attrs := []any{
		slog.String("event", ev.Kind.String()),
		slog.String("session", ev.SessionID),
		slog.Time("at", ev.At),
		slog.Int64("epochMs", ev.At.UnixMilli()),
	}
	if ev.URL != "" {
		attrs = append(attrs, slog.String("url", ev.URL))
	}
	if ev.Detail != "" {
		attrs = append(attrs, slog.String("detail", ev.Detail))
	}
	if stale {
		attrs = append(attrs, slog.Bool("stale", true))
	}

	if ev.Kind == apis.SurfaceLoadFailed {
		c.logger.Warn("Surface event", attrs...)
		return
	}
	c.logger.Info("Surface event", attrs...)
}
