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

// Package main provides the shellctl binary: it loads the design token and
// webview endpoint documents, resolves them and prints or serves the result.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	shell "github.com/tiagolopescerillion/mobile-app-2.0"
	"github.com/tiagolopescerillion/mobile-app-2.0/apis"
	"github.com/tiagolopescerillion/mobile-app-2.0/config"
	"github.com/tiagolopescerillion/mobile-app-2.0/document"
)

const (
	Version = "0.1.0"
	appName = "shellctl"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app carries the persistent flags and everything derived from them.
type app struct {
	configPath    string
	tokensPath    string
	endpointsPath string
	mode          string
	logLevel      string

	logger *slog.Logger
	file   *config.File
}

func rootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Resolve design tokens and webview endpoints",
		Long: `shellctl resolves the declarative configuration of the mobile shell.

It provides:
- Design tokens per mode (light, dark) with $ references resolved
- Webview endpoint URLs with account placeholders and the focus parameter
- A preview HTTP server and an OpenID Connect login check`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "Config file path (YAML)")
	pf.StringVar(&a.tokensPath, "tokens", "", "Design token document (overrides config)")
	pf.StringVar(&a.endpointsPath, "endpoints", "", "Webview endpoint document (overrides config)")
	pf.StringVar(&a.mode, "mode", "", "Initial mode (light, dark)")
	pf.StringVar(&a.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		tokensCmd(a),
		endpointsCmd(a),
		endpointCmd(a),
		openCmd(a),
		serveCmd(a),
		loginCmd(a),
		logoutCmd(a),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
			},
		},
	)

	return cmd
}

// setup configures logging and loads the layered config file.
func (a *app) setup(cmd *cobra.Command) error {
	level := slog.LevelWarn
	switch strings.ToLower(a.logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	file, err := config.NewLoader(a.logger).Load(a.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if a.tokensPath != "" {
		file.Documents.Tokens = a.tokensPath
	}
	if a.endpointsPath != "" {
		file.Documents.Endpoints = a.endpointsPath
	}
	a.file = file
	return nil
}

// store loads both documents and builds a Store in the requested mode.
func (a *app) store() (*shell.Store, error) {
	toks, err := document.LoadTokensFile(a.file.Documents.Tokens)
	if err != nil {
		return nil, err
	}
	eps, err := document.LoadEndpointsFile(a.file.Documents.Endpoints)
	if err != nil {
		return nil, err
	}

	s, err := shell.New(a.file.EngineConfig(), toks, eps, shell.WithLogger(a.logger))
	if err != nil {
		return nil, err
	}

	if a.mode != "" {
		mode, err := apis.ParseMode(a.mode)
		if err != nil {
			return nil, err
		}
		if err := s.SetMode(mode); err != nil {
			return nil, err
		}
	}
	return s, nil
}
