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

// Package shell resolves the declarative configuration of the mobile client
// shell: design tokens and webview endpoints.
//
// Two documents drive it. The token document holds primitive tokens
// partitioned by mode ("light", "dark") and a mode-independent semantic tree;
// any string starting with "$" is a reference to another value. The endpoint
// document holds named webview destinations, given as a literal url, as a
// baseUrl plus a path, or as another entry (baseKey) plus a path. URLs may
// carry an account number placeholder that must be substituted before the URL
// is handed out.
//
// # Design
//
// The core of the package is Store, an injectable object holding a
// read-mostly snapshot (state). The snapshot holds:
//
//   - Config: resolution knobs (reference sentinel, path separator, depth
//     limit, default mode, focus query parameter).
//
//   - the active Mode and its resolved Tokens. Resolution runs in two
//     explicit passes: the primitive partition of the mode against itself,
//     then the semantic tree against the resolved primitives with the raw
//     semantic entries on top.
//
//   - Registry and Composer: the endpoint definitions by key and the
//     component turning a key into a URL. The composer tries routes in
//     priority order:
//     1. a literal url;
//     2. baseUrl joined with path;
//     3. the url (or baseUrl) of the entry named by baseKey, joined with path.
//     The account placeholder (<account_no> or {account_no}, any case) is
//     then substituted and mode=focus is set on the query.
//
//   - Builder: the factory of the three handles above. Swapping it lets a
//     binary replace resolution logic without touching the Store.
//
// Readers load the snapshot pointer atomically and never take locks, so a
// reader can never see the tree of one mode next to another mode:
//
//	snap := store.Snapshot()
//	bg, _ := snap.Tokens.Semantic.Get("screen")
//
// Writers (SetMode, ToggleMode, SetConfig, SetBuilder) take a short build
// mutex, assemble a brand-new state and publish it with one atomic swap.
// A failed build leaves the previous snapshot in place. Subscribers are
// called after each publish.
//
// # Errors
//
// A reference that finds nothing becomes an absent leaf; partial trees are a
// valid input for rendering. Reference cycles fail with
// resolver.ErrCyclicReference. A mode without a primitive partition fails with
// apis.ErrUnknownMode. Unavailable endpoints are reported as (zero, false) by
// Endpoint and omitted by Endpoints; Compose returns the reason.
//
// # Scope
//
// The package never performs I/O. Loading documents lives in package
// document, login in package identity, and the embedded browser in package
// webview.
package shell
