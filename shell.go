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

package shell

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/tiagolopescerillion/mobile-app-2.0/apis"
	"github.com/tiagolopescerillion/mobile-app-2.0/builder"
	"github.com/tiagolopescerillion/mobile-app-2.0/tokens"
)

var (
	// ErrNilRegistry is returned when a builder returns a nil registry.
	ErrNilRegistry = errors.New("shell: builder returned nil registry")
	// ErrNilComposer is returned when a builder returns a nil composer.
	ErrNilComposer = errors.New("shell: builder returned nil composer")
)

// Snapshot is one published (mode, tokens) pair. Readers always get both
// halves from the same publish.
type Snapshot struct {
	Mode   apis.Mode
	Tokens apis.Tokens
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the store logger. Nil keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithBuilder sets the builder used for the initial build. Nil keeps builder.New().
func WithBuilder(b apis.Builder) Option {
	return func(s *Store) {
		if b != nil {
			s.initBld = b
		}
	}
}

// Store holds the process state of the engine: the active mode, its resolved
// token tree and the composer of the endpoint document.
//
// Reads load one immutable state through an atomic pointer and never block.
// Writes serialize on buildMu, build the next state completely, then publish
// it with a single atomic store. A failed build publishes nothing.
type Store struct {
	st      atomic.Pointer[state]
	buildMu sync.Mutex

	logger  *slog.Logger
	initBld apis.Builder

	// subMu guards the subscriber set and the delivery cursor below.
	subMu       sync.Mutex
	subs        map[uint64]func(Snapshot)
	nextID      uint64
	delivered   uint64
	dispatching bool
	pending     bool
}

// state is the immutable snapshot published by a Store.
type state struct {
	cfg     apis.Config
	tokSpec apis.TokenSpec
	epSpec  apis.EndpointSpec
	mode    apis.Mode
	tokens  apis.Tokens
	reg     apis.Registry
	cmp     apis.Composer
	bld     apis.Builder

	// seq numbers publishes; it only grows.
	seq uint64
	// trees memoizes resolved trees per mode for this cfg, document and builder.
	trees *treeCache
}

// treeCache holds the resolved tree of every mode built so far. It is shared
// by states that differ only in the active mode.
type treeCache struct {
	mu    sync.Mutex
	trees map[apis.Mode]apis.Tokens
}

func newTreeCache(mode apis.Mode, toks apis.Tokens) *treeCache {
	return &treeCache{trees: map[apis.Mode]apis.Tokens{mode: toks}}
}

func (c *treeCache) get(mode apis.Mode) (apis.Tokens, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	t, ok := c.trees[mode]
	return t, ok
}

func (c *treeCache) put(mode apis.Mode, toks apis.Tokens) {
	c.mu.Lock()
	c.trees[mode] = toks
	c.mu.Unlock()
}

// tokensFor serves mode from the cache, resolving and memoizing it on a miss.
func (st *state) tokensFor(mode apis.Mode) (apis.Tokens, error) {
	if t, ok := st.trees.get(mode); ok {
		return t, nil
	}
	t, err := st.bld.BuildTokens(st.cfg, st.tokSpec, mode)
	if err != nil {
		return apis.Tokens{}, err
	}
	st.trees.put(mode, t)
	return t, nil
}

// New builds a Store eagerly. The initial mode is the document's currentMode
// when set, else cfg.DefaultMode.
func New(cfg apis.Config, tokSpec apis.TokenSpec, epSpec apis.EndpointSpec, opts ...Option) (*Store, error) {
	s := &Store{
		logger:  slog.Default(),
		initBld: builder.New(),
		subs:    map[uint64]func(Snapshot){},
	}
	for _, opt := range opts {
		opt(s)
	}

	mode, err := tokens.InitialMode(tokSpec, cfg.DefaultMode)
	if err != nil {
		return nil, fmt.Errorf("currentMode: %w", err)
	}

	next, err := build(s.initBld, cfg, tokSpec, epSpec, mode, nil)
	if err != nil {
		return nil, err
	}
	s.st.Store(next)

	s.logger.Debug("Store ready",
		slog.String("mode", mode.String()),
		slog.Int("endpoints", next.reg.Count()))
	return s, nil
}

// build assembles a complete state. prev, when non-nil, is handed to the
// builder so it can carry registry entries over.
func build(b apis.Builder, cfg apis.Config, tokSpec apis.TokenSpec, epSpec apis.EndpointSpec, mode apis.Mode, prev apis.Registry) (*state, error) {
	toks, err := b.BuildTokens(cfg, tokSpec, mode)
	if err != nil {
		return nil, err
	}
	reg, err := b.BuildRegistry(cfg, epSpec, prev)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		return nil, ErrNilRegistry
	}
	cmp := b.BuildComposer(cfg, reg)
	if cmp == nil {
		return nil, ErrNilComposer
	}
	return &state{
		cfg:     cfg,
		tokSpec: tokSpec,
		epSpec:  epSpec,
		mode:    mode,
		tokens:  toks,
		reg:     reg,
		cmp:     cmp,
		bld:     b,
		trees:   newTreeCache(mode, toks),
	}, nil
}

// Mode returns the active mode.
func (s *Store) Mode() apis.Mode {
	return s.st.Load().mode
}

// Tokens returns the resolved token tree of the active mode.
func (s *Store) Tokens() apis.Tokens {
	return s.st.Load().tokens
}

// Snapshot returns the active mode and its tree from a single publish.
func (s *Store) Snapshot() Snapshot {
	cur := s.st.Load()
	return Snapshot{Mode: cur.mode, Tokens: cur.tokens}
}

// Config returns the engine configuration in effect.
func (s *Store) Config() apis.Config {
	return s.st.Load().cfg
}

// Registry returns the endpoint registry in effect.
func (s *Store) Registry() apis.Registry {
	return s.st.Load().reg
}

// TokensFor returns the tree for mode. The active mode is served from the
// published snapshot; any other mode is resolved once, memoized until the
// next SetConfig or SetBuilder, and not published.
func (s *Store) TokensFor(mode apis.Mode) (apis.Tokens, error) {
	cur := s.st.Load()
	if mode == cur.mode {
		return cur.tokens, nil
	}
	if !mode.Valid() {
		return apis.Tokens{}, fmt.Errorf("%w: %s", apis.ErrUnknownMode, mode)
	}
	return cur.tokensFor(mode)
}

// SetMode makes mode active. Setting the active mode is a no-op. On failure
// the previous snapshot stays published.
func (s *Store) SetMode(mode apis.Mode) error {
	_, err := s.switchMode(func(apis.Mode) apis.Mode { return mode })
	return err
}

// ToggleMode switches between light and dark and returns the new mode.
func (s *Store) ToggleMode() (apis.Mode, error) {
	return s.switchMode(apis.Mode.Toggle)
}

// switchMode picks the target under the build lock so concurrent toggles
// never lose an update.
func (s *Store) switchMode(pick func(apis.Mode) apis.Mode) (apis.Mode, error) {
	s.buildMu.Lock()

	old := s.st.Load()
	mode := pick(old.mode)
	if !mode.Valid() {
		s.buildMu.Unlock()
		return old.mode, fmt.Errorf("%w: %s", apis.ErrUnknownMode, mode)
	}
	if mode == old.mode {
		s.buildMu.Unlock()
		return mode, nil
	}

	toks, err := old.tokensFor(mode)
	if err != nil {
		s.buildMu.Unlock()
		s.logger.Warn("Mode change failed",
			slog.String("from", old.mode.String()),
			slog.String("to", mode.String()),
			slog.String("error", err.Error()))
		return old.mode, err
	}

	next := *old
	next.mode = mode
	next.tokens = toks
	next.seq = old.seq + 1
	s.st.Store(&next)
	s.buildMu.Unlock()

	s.logger.Info("Mode changed",
		slog.String("from", old.mode.String()),
		slog.String("to", mode.String()))
	s.notify()
	return mode, nil
}

// SetConfig rebuilds every layer under cfg, keeping the active mode.
func (s *Store) SetConfig(cfg apis.Config) error {
	return s.rebuild(func(st *state) { st.cfg = cfg })
}

// SetBuilder swaps the builder and rebuilds every layer with it.
// A nil builder is ignored.
func (s *Store) SetBuilder(b apis.Builder) error {
	if b == nil {
		return nil
	}
	return s.rebuild(func(st *state) { st.bld = b })
}

// rebuild applies change to a copy of the current state and rebuilds from it.
func (s *Store) rebuild(change func(*state)) error {
	s.buildMu.Lock()

	old := s.st.Load()
	want := *old
	change(&want)

	next, err := build(want.bld, want.cfg, want.tokSpec, want.epSpec, want.mode, old.reg)
	if err != nil {
		s.buildMu.Unlock()
		s.logger.Warn("Rebuild failed", slog.String("error", err.Error()))
		return err
	}
	next.seq = old.seq + 1
	s.st.Store(next)
	s.buildMu.Unlock()

	s.notify()
	return nil
}

// Compose resolves an endpoint and reports why it is unavailable on failure.
func (s *Store) Compose(key string, subs apis.Substitutions) (apis.ResolvedEndpoint, error) {
	return s.st.Load().cmp.Compose(key, subs)
}

// Endpoint resolves an endpoint; unavailable keys return false.
func (s *Store) Endpoint(key string, subs apis.Substitutions) (apis.ResolvedEndpoint, bool) {
	return s.st.Load().cmp.Endpoint(key, subs)
}

// Endpoints resolves every available endpoint in key order.
func (s *Store) Endpoints(subs apis.Substitutions) []apis.ResolvedEndpoint {
	return s.st.Load().cmp.Endpoints(subs)
}

// Subscribe registers fn to be called after publishes, outside the build lock.
//
// Subscribers run one at a time and see snapshots in publish order. When
// writers publish faster than subscribers return, the intermediate snapshots
// are skipped and only the newest one is delivered. A subscriber may call
// back into the Store, writers included. The returned cancel func is
// idempotent.
func (s *Store) Subscribe(fn func(Snapshot)) (cancel func()) {
	if fn == nil {
		return func() {}
	}

	s.subMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subMu.Lock()
			delete(s.subs, id)
			s.subMu.Unlock()
		})
	}
}

// notify delivers the newest published snapshot to every subscriber. Only
// one goroutine delivers at a time; a writer that publishes meanwhile marks
// the delivery pending and returns, and the delivering goroutine loops until
// it has handed out the latest publish.
func (s *Store) notify() {
	s.subMu.Lock()
	if s.dispatching {
		s.pending = true
		s.subMu.Unlock()
		return
	}
	s.dispatching = true

	for {
		s.pending = false
		cur := s.st.Load()
		if cur.seq <= s.delivered {
			break
		}
		s.delivered = cur.seq

		fns := make([]func(Snapshot), 0, len(s.subs))
		for _, fn := range s.subs {
			fns = append(fns, fn)
		}
		s.subMu.Unlock()

		s.deliver(fns, Snapshot{Mode: cur.mode, Tokens: cur.tokens})

		s.subMu.Lock()
		if !s.pending {
			break
		}
	}
	s.dispatching = false
	s.subMu.Unlock()
}

// deliver runs fns outside subMu. A panicking subscriber releases the
// delivery role before the panic propagates.
func (s *Store) deliver(fns []func(Snapshot), snap Snapshot) {
	done := false
	defer func() {
		if !done {
			s.subMu.Lock()
			s.dispatching = false
			s.subMu.Unlock()
		}
	}()
	for _, fn := range fns {
		fn(snap)
	}
	done = true
}
