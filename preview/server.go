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

// Package preview serves the resolved tokens and endpoints of a shell.Store
// over HTTP so designers can inspect a configuration while editing it.
package preview

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tiagolopescerillion/mobile-app-2.0/apis"
	"github.com/tiagolopescerillion/mobile-app-2.0/composer"
	"github.com/tiagolopescerillion/mobile-app-2.0/document"
)

// Store is the part of shell.Store the preview server reads and drives.
type Store interface {
	Mode() apis.Mode
	Tokens() apis.Tokens
	TokensFor(mode apis.Mode) (apis.Tokens, error)
	SetMode(mode apis.Mode) error
	ToggleMode() (apis.Mode, error)
	Compose(key string, subs apis.Substitutions) (apis.ResolvedEndpoint, error)
	Endpoints(subs apis.Substitutions) []apis.ResolvedEndpoint
}

// Server exposes a Store through a gorilla/mux router.
type Server struct {
	store  Store
	logger *slog.Logger
}

// NewServer returns a Server over store. A nil logger falls back to slog.Default.
func NewServer(store Store, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{store: store, logger: logger.With(slog.String("component", "preview"))}
}

// Router builds the route table.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	}).Methods("GET")

	r.HandleFunc("/mode", s.getMode).Methods("GET")
	r.HandleFunc("/mode/toggle", s.toggleMode).Methods("POST")
	r.HandleFunc("/mode/{mode}", s.setMode).Methods("PUT", "POST")

	r.HandleFunc("/tokens", s.getTokens).Methods("GET")
	r.HandleFunc("/tokens/{mode}", s.getTokensFor).Methods("GET")

	r.HandleFunc("/endpoints", s.getEndpoints).Methods("GET")
	r.HandleFunc("/endpoints/{key}", s.getEndpoint).Methods("GET")

	return r
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error      string `json:"error"`
	Suggestion string `json:"suggestion,omitempty"`
}

type modeResponse struct {
	Mode apis.Mode `json:"mode"`
}

func (s *Server) getMode(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, modeResponse{Mode: s.store.Mode()})
}

func (s *Server) setMode(w http.ResponseWriter, r *http.Request) {
	mode, err := apis.ParseMode(mux.Vars(r)["mode"])
	if err != nil {
		writeError(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if err := s.store.SetMode(mode); err != nil {
		s.logger.Warn("Mode change rejected", slog.String("mode", mode.String()), slog.String("error", err.Error()))
		writeError(w, http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, modeResponse{Mode: s.store.Mode()})
}

func (s *Server) toggleMode(w http.ResponseWriter, r *http.Request) {
	mode, err := s.store.ToggleMode()
	if err != nil {
		s.logger.Warn("Mode toggle rejected", slog.String("error", err.Error()))
		writeError(w, http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, modeResponse{Mode: mode})
}

func (s *Server) getTokens(w http.ResponseWriter, r *http.Request) {
	s.writeTokens(w, r, s.store.Tokens())
}

func (s *Server) getTokensFor(w http.ResponseWriter, r *http.Request) {
	mode, err := apis.ParseMode(mux.Vars(r)["mode"])
	if err != nil {
		writeError(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	toks, err := s.store.TokensFor(mode)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
		return
	}
	s.writeTokens(w, r, toks)
}

// writeTokens renders toks, narrowed by the optional ?select= JSONPath.
func (s *Server) writeTokens(w http.ResponseWriter, r *http.Request, toks apis.Tokens) {
	tree := TokenTree(toks)

	if sel := r.URL.Query().Get("select"); sel != "" {
		matches, err := document.Query(tree, sel)
		if err != nil {
			writeError(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		tree = apis.Seq(matches...)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(document.Encode(tree, 2)))
}

func (s *Server) getEndpoints(w http.ResponseWriter, r *http.Request) {
	eps := s.store.Endpoints(substitutions(r))
	if eps == nil {
		eps = []apis.ResolvedEndpoint{}
	}
	writeJSON(w, http.StatusOK, eps)
}

func (s *Server) getEndpoint(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	ep, err := s.store.Compose(key, substitutions(r))
	if err != nil {
		resp := ErrorResponse{Error: err.Error()}
		var unknown *composer.UnknownEndpointError
		if errors.As(err, &unknown) {
			resp.Suggestion = unknown.Suggestion
		}
		s.logger.Debug("Endpoint unavailable", slog.String("key", key), slog.String("error", err.Error()))
		writeError(w, http.StatusNotFound, resp)
		return
	}
	writeJSON(w, http.StatusOK, ep)
}

// TokenTree packs a resolved token set into one mapping
// {mode, primitives, semantic} for querying and encoding.
func TokenTree(toks apis.Tokens) apis.Value {
	return apis.Map(map[string]apis.Value{
		"mode":       apis.String(toks.Mode.String()),
		"primitives": toks.Primitives,
		"semantic":   toks.Semantic,
	})
}

func substitutions(r *http.Request) apis.Substitutions {
	return apis.Substitutions{AccountNumber: r.URL.Query().Get("account")}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func writeError(w http.ResponseWriter, status int, resp ErrorResponse) {
	writeJSON(w, status, resp)
}
