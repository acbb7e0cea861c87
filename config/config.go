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

package config

import (
	"strings"

	"github.com/tiagolopescerillion/mobile-app-2.0/apis"
)

const (
	// DefaultSentinel marks a string as a reference.
	DefaultSentinel = "$"
	// DefaultPathSeparator splits reference paths into mapping keys.
	DefaultPathSeparator = "."
	// DefaultMaxDepth represents the default for MaxDepth.
	// A chain of 64 references is far beyond any real token document.
	DefaultMaxDepth = 64
	// DefaultMode is the mode used when neither the document nor the caller picks one.
	DefaultMode = apis.Light
	// DefaultFocusParam is the name of the query parameter marking focus mode.
	DefaultFocusParam = "mode"
	// DefaultFocusValue is the value of the focus query parameter.
	DefaultFocusValue = "focus"
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure the result is usable.
	if cfg.Sentinel == "" {
		cfg.Sentinel = DefaultSentinel
	}
	if cfg.PathSeparator == "" {
		cfg.PathSeparator = DefaultPathSeparator
	}
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = DefaultMaxDepth
	}
	if !cfg.DefaultMode.Valid() {
		cfg.DefaultMode = DefaultMode
	}
	if cfg.FocusParam == "" {
		cfg.FocusParam = DefaultFocusParam
		cfg.FocusValue = DefaultFocusValue
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		Sentinel:      DefaultSentinel,
		PathSeparator: DefaultPathSeparator,
		MaxDepth:      DefaultMaxDepth,
		DefaultMode:   DefaultMode,
		FocusParam:    DefaultFocusParam,
		FocusValue:    DefaultFocusValue,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithSentinel sets the reference prefix. Blank values are ignored.
func WithSentinel(s string) Option {
	return func(c *apis.Config) {
		if strings.TrimSpace(s) == "" {
			return
		}
		c.Sentinel = s
	}
}

// WithPathSeparator sets the reference path separator. Empty values are ignored.
func WithPathSeparator(sep string) Option {
	return func(c *apis.Config) {
		if sep == "" {
			return
		}
		c.PathSeparator = sep
	}
}

// WithMaxDepth sets the MaxDepth option.
// A non-positive value resets to the default.
func WithMaxDepth(max int) Option {
	return func(c *apis.Config) {
		if max <= 0 {
			c.MaxDepth = DefaultMaxDepth
			return
		}
		c.MaxDepth = max
	}
}

// WithDefaultMode sets the fallback mode.
func WithDefaultMode(m apis.Mode) Option {
	return func(c *apis.Config) {
		c.DefaultMode = m
	}
}

// WithFocusParam sets the query parameter appended to composed URLs.
func WithFocusParam(name, value string) Option {
	return func(c *apis.Config) {
		if name == "" {
			return
		}
		c.FocusParam = name
		c.FocusValue = value
	}
}
