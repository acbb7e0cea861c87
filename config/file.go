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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tiagolopescerillion/mobile-app-2.0/apis"
	"gopkg.in/yaml.v3"
)

// File is the application configuration of the shell tooling.
type File struct {
	Documents DocumentsConfig `yaml:"documents"`
	Engine    EngineConfig    `yaml:"engine"`
	Identity  IdentityConfig  `yaml:"identity"`
	Webview   WebviewConfig   `yaml:"webview"`
	Preview   PreviewConfig   `yaml:"preview"`
}

// DocumentsConfig locates the configuration documents (.json, .yaml or .yml).
type DocumentsConfig struct {
	// Tokens is the path of the design token document.
	Tokens string `yaml:"tokens"`
	// Endpoints is the path of the webview endpoint document.
	Endpoints string `yaml:"endpoints"`
}

// EngineConfig mirrors apis.Config in file form. Zero values fall back to defaults.
type EngineConfig struct {
	DefaultMode   string `yaml:"defaultMode"`
	Sentinel      string `yaml:"sentinel"`
	PathSeparator string `yaml:"pathSeparator"`
	MaxDepth      int    `yaml:"maxDepth"`
	FocusParam    string `yaml:"focusParam"`
	FocusValue    string `yaml:"focusValue"`
}

// IdentityConfig configures the OpenID Connect login client.
type IdentityConfig struct {
	// AuthEndpoint is the authorization endpoint (.../protocol/openid-connect/auth).
	AuthEndpoint string `yaml:"authEndpoint"`
	// TokenEndpoint is the token endpoint (.../protocol/openid-connect/token).
	TokenEndpoint string `yaml:"tokenEndpoint"`
	// LogoutEndpoint is the end-session endpoint (.../protocol/openid-connect/logout).
	LogoutEndpoint string `yaml:"logoutEndpoint"`
	// ClientID is the public client identifier.
	ClientID string `yaml:"clientId"`
	// RedirectURI must match the redirect registered for the client.
	RedirectURI string `yaml:"redirectUri"`
	// Scope is a space separated scope list.
	Scope string `yaml:"scope"`
	// Timeout bounds each token or logout call.
	Timeout time.Duration `yaml:"timeout"`
}

// Enabled reports whether any identity endpoint is configured.
func (c IdentityConfig) Enabled() bool {
	return c.AuthEndpoint != "" || c.TokenEndpoint != "" || c.LogoutEndpoint != ""
}

// WebviewConfig configures the shared webview.
type WebviewConfig struct {
	// DefaultKey is the endpoint preloaded into the shared webview.
	DefaultKey string `yaml:"defaultKey"`
}

// PreviewConfig configures the preview HTTP server.
type PreviewConfig struct {
	Addr string `yaml:"addr"`
}

// DefaultFile returns a File with sensible defaults.
func DefaultFile() *File {
	return &File{
		Documents: DocumentsConfig{
			Tokens:    filepath.Join("CONFIGURATIONS", "design-system.json"),
			Endpoints: filepath.Join("CONFIGURATIONS", "webviews.json"),
		},
		Engine: EngineConfig{
			DefaultMode:   DefaultMode.String(),
			Sentinel:      DefaultSentinel,
			PathSeparator: DefaultPathSeparator,
			MaxDepth:      DefaultMaxDepth,
			FocusParam:    DefaultFocusParam,
			FocusValue:    DefaultFocusValue,
		},
		Identity: IdentityConfig{
			Scope:   "openid profile email",
			Timeout: 30 * time.Second,
		},
		Webview: WebviewConfig{
			DefaultKey: "selfServiceBase",
		},
		Preview: PreviewConfig{
			Addr: "127.0.0.1:8087",
		},
	}
}

// Validate checks that the configuration is usable.
func (f *File) Validate() error {
	if f.Documents.Tokens == "" {
		return errors.New("documents.tokens is required")
	}
	if f.Documents.Endpoints == "" {
		return errors.New("documents.endpoints is required")
	}
	if f.Engine.DefaultMode != "" {
		if _, err := apis.ParseMode(f.Engine.DefaultMode); err != nil {
			return fmt.Errorf("engine.defaultMode: %w", err)
		}
	}
	if f.Engine.MaxDepth < 0 {
		return errors.New("engine.maxDepth must not be negative")
	}
	if f.Identity.Enabled() {
		if f.Identity.ClientID == "" {
			return errors.New("identity.clientId is required when identity endpoints are set")
		}
		if f.Identity.AuthEndpoint == "" || f.Identity.TokenEndpoint == "" {
			return errors.New("identity.authEndpoint and identity.tokenEndpoint are required together")
		}
	}
	if f.Identity.Timeout < 0 {
		return errors.New("identity.timeout must not be negative")
	}
	return nil
}

// EngineConfig converts the engine section into an apis.Config.
// Validate should be called first; an unparsable mode falls back to the default.
func (f *File) EngineConfig() apis.Config {
	opts := []Option{
		WithSentinel(f.Engine.Sentinel),
		WithPathSeparator(f.Engine.PathSeparator),
		WithMaxDepth(f.Engine.MaxDepth),
	}
	if m, err := apis.ParseMode(f.Engine.DefaultMode); err == nil {
		opts = append(opts, WithDefaultMode(m))
	}
	if f.Engine.FocusParam != "" {
		opts = append(opts, WithFocusParam(f.Engine.FocusParam, f.Engine.FocusValue))
	}
	return NewConfig(opts...)
}

// LoadFile loads a configuration file on top of DefaultFile.
func LoadFile(path string) (*File, error) {
	return decodeFile(path, DefaultFile())
}

// readLayer loads a configuration file without defaults, for merging.
func readLayer(path string) (*File, error) {
	return decodeFile(path, &File{})
}

func decodeFile(path string, into *File) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, into); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return into, nil
}

// SaveFile writes the configuration as YAML.
func (f *File) SaveFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges other into f; non-zero values of other take precedence.
func (f *File) Merge(other *File) {
	if other == nil {
		return
	}

	// Documents
	if other.Documents.Tokens != "" {
		f.Documents.Tokens = other.Documents.Tokens
	}
	if other.Documents.Endpoints != "" {
		f.Documents.Endpoints = other.Documents.Endpoints
	}

	// Engine
	if other.Engine.DefaultMode != "" {
		f.Engine.DefaultMode = other.Engine.DefaultMode
	}
	if other.Engine.Sentinel != "" {
		f.Engine.Sentinel = other.Engine.Sentinel
	}
	if other.Engine.PathSeparator != "" {
		f.Engine.PathSeparator = other.Engine.PathSeparator
	}
	if other.Engine.MaxDepth != 0 {
		f.Engine.MaxDepth = other.Engine.MaxDepth
	}
	if other.Engine.FocusParam != "" {
		f.Engine.FocusParam = other.Engine.FocusParam
		f.Engine.FocusValue = other.Engine.FocusValue
	}

	// Identity
	if other.Identity.AuthEndpoint != "" {
		f.Identity.AuthEndpoint = other.Identity.AuthEndpoint
	}
	if other.Identity.TokenEndpoint != "" {
		f.Identity.TokenEndpoint = other.Identity.TokenEndpoint
	}
	if other.Identity.LogoutEndpoint != "" {
		f.Identity.LogoutEndpoint = other.Identity.LogoutEndpoint
	}
	if other.Identity.ClientID != "" {
		f.Identity.ClientID = other.Identity.ClientID
	}
	if other.Identity.RedirectURI != "" {
		f.Identity.RedirectURI = other.Identity.RedirectURI
	}
	if other.Identity.Scope != "" {
		f.Identity.Scope = other.Identity.Scope
	}
	if other.Identity.Timeout != 0 {
		f.Identity.Timeout = other.Identity.Timeout
	}

	// Webview / Preview
	if other.Webview.DefaultKey != "" {
		f.Webview.DefaultKey = other.Webview.DefaultKey
	}
	if other.Preview.Addr != "" {
		f.Preview.Addr = other.Preview.Addr
	}
}
