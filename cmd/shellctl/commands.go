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

package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/tiagolopescerillion/mobile-app-2.0/account"
	"github.com/tiagolopescerillion/mobile-app-2.0/apis"
	"github.com/tiagolopescerillion/mobile-app-2.0/document"
	"github.com/tiagolopescerillion/mobile-app-2.0/identity"
	"github.com/tiagolopescerillion/mobile-app-2.0/preview"
	"github.com/tiagolopescerillion/mobile-app-2.0/webview"
)

func tokensCmd(a *app) *cobra.Command {
	var (
		selector string
		indent   int
	)

	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "Print the resolved token tree of the current mode",
		Example: `  shellctl tokens --mode dark
  shellctl tokens --select '$.semantic.button.primary'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.store()
			if err != nil {
				return err
			}

			tree := preview.TokenTree(s.Tokens())
			if selector != "" {
				matches, err := document.Query(tree, selector)
				if err != nil {
					return err
				}
				tree = apis.Seq(matches...)
			}

			fmt.Fprintln(cmd.OutOrStdout(), document.Encode(tree, indent))
			return nil
		},
	}

	cmd.Flags().StringVar(&selector, "select", "", "JSONPath selector applied to {mode, primitives, semantic}")
	cmd.Flags().IntVar(&indent, "indent", 2, "JSON indentation (0 for compact)")
	return cmd
}

func endpointsCmd(a *app) *cobra.Command {
	var accountNo string

	cmd := &cobra.Command{
		Use:   "endpoints",
		Short: "List every endpoint that resolves",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.store()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "KEY\tTITLE\tURL")
			for _, ep := range s.Endpoints(apis.Substitutions{AccountNumber: accountNo}) {
				fmt.Fprintf(w, "%s\t%s\t%s\n", ep.Key, ep.Title, ep.URL)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&accountNo, "account", "", "Account number substituted into <account_no>")
	return cmd
}

func endpointCmd(a *app) *cobra.Command {
	var accountNo string

	cmd := &cobra.Command{
		Use:   "endpoint <key>",
		Short: "Print the URL of one endpoint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.store()
			if err != nil {
				return err
			}

			ep, err := s.Compose(args[0], apis.Substitutions{AccountNumber: accountNo})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ep.URL)
			return nil
		},
	}

	cmd.Flags().StringVar(&accountNo, "account", "", "Account number substituted into <account_no>")
	return cmd
}

// printSurface is a display surface that writes what it would show.
type printSurface struct {
	out io.Writer
}

func (p printSurface) Present(page apis.Page) {
	fmt.Fprintf(p.out, "%s\t%s\n", page.Title, page.URL)
}

func (p printSurface) Dismiss() {}

func openCmd(a *app) *cobra.Command {
	var accountNo string

	cmd := &cobra.Command{
		Use:   "open [key]",
		Short: "Open an endpoint in the shared webview (prints the page)",
		Long: `open drives the shared webview controller against a printing surface.
Without a key it opens the configured default page.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.store()
			if err != nil {
				return err
			}

			var sel account.Selection
			sel.Set(accountNo)

			key := a.file.Webview.DefaultKey
			if len(args) == 1 {
				key = args[0]
			}

			ctl := webview.NewController(s, printSurface{out: cmd.OutOrStdout()},
				webview.WithLogger(a.logger),
				webview.WithSubstitutions(sel.Substitutions),
				webview.WithDefaultKey(a.file.Webview.DefaultKey))
			if !ctl.Open(key) {
				return fmt.Errorf("endpoint %q is unavailable", key)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&accountNo, "account", "", "Selected account number")
	return cmd
}

func serveCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve resolved tokens and endpoints over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.store()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = a.file.Preview.Addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := &http.Server{
				Addr:              addr,
				Handler:           preview.NewServer(s, a.logger).Router(),
				ReadHeaderTimeout: 5 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				a.logger.Info("Preview server listening", slog.String("addr", addr))
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}

			a.logger.Info("Shutting down preview server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (defaults to preview.addr)")
	return cmd
}

// promptAuthorize prints the authorization URL and waits for the user to
// paste the redirect URL the browser ended on.
func promptAuthorize(in io.Reader, out io.Writer) identity.AuthorizeFunc {
	return func(ctx context.Context, authURL string) (url.Values, error) {
		fmt.Fprintf(out, "Open this URL in a browser:\n\n  %s\n\nPaste the redirect URL: ", authURL)

		lines := make(chan string, 1)
		errs := make(chan error, 1)
		go func() {
			line, err := bufio.NewReader(in).ReadString('\n')
			if err != nil && line == "" {
				errs <- err
				return
			}
			lines <- strings.TrimSpace(line)
		}()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case err := <-errs:
			return nil, err
		case line := <-lines:
			u, err := url.Parse(line)
			if err != nil {
				return nil, err
			}
			return u.Query(), nil
		}
	}
}

func loginCmd(a *app) *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Run the OpenID Connect login and print the tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := identity.New(a.file.Identity,
				promptAuthorize(cmd.InOrStdin(), cmd.ErrOrStderr()),
				identity.WithLogger(a.logger))

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			res := client.Login(ctx)
			if err := printJSON(cmd.OutOrStdout(), res); err != nil {
				return err
			}
			if !res.OK {
				return errors.New(res.Error)
			}
			return nil
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Minute, "How long to wait for the login to complete")
	return cmd
}

func logoutCmd(a *app) *cobra.Command {
	var refreshToken string

	cmd := &cobra.Command{
		Use:   "logout",
		Short: "End the session of a refresh token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := identity.New(a.file.Identity, nil, identity.WithLogger(a.logger))

			res := client.Logout(cmd.Context(), refreshToken)
			if err := printJSON(cmd.OutOrStdout(), res); err != nil {
				return err
			}
			if !res.OK {
				return errors.New(res.Error)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&refreshToken, "refresh-token", "", "Refresh token to revoke")
	return cmd
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
