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

package resolver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tiagolopescerillion/mobile-app-2.0/apis"
	"github.com/tiagolopescerillion/mobile-app-2.0/config"
	upath "github.com/tiagolopescerillion/mobile-app-2.0/utils/path"
)

var (
	// ErrCyclicReference is returned when a reference chain re-enters itself.
	ErrCyclicReference = errors.New("shell(resolver): cyclic reference")
	// ErrDepthExceeded is returned when a reference chain is longer than Config.MaxDepth.
	ErrDepthExceeded = errors.New("shell(resolver): reference depth exceeded")
)

// CycleError reports the reference chain that closed a cycle.
type CycleError struct {
	// Chain lists the reference paths in visiting order; the last element
	// repeats an earlier one.
	Chain []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("%s: %s", ErrCyclicReference.Error(), strings.Join(e.Chain, " -> "))
}

// Is makes errors.Is(err, ErrCyclicReference) hold for any *CycleError.
func (e *CycleError) Is(target error) bool { return target == ErrCyclicReference }

// New constructs an apis.Resolver expanding references according to cfg.
// Zero knobs in cfg fall back to the config package defaults. The returned
// resolver holds no mutable state and is safe for concurrent use.
func New(cfg apis.Config) apis.Resolver {
	if cfg.Sentinel == "" {
		cfg.Sentinel = config.DefaultSentinel
	}
	if cfg.PathSeparator == "" {
		cfg.PathSeparator = config.DefaultPathSeparator
	}
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = config.DefaultMaxDepth
	}
	return refResolver{cfg: cfg}
}

// refResolver is the immutable reference expander.
type refResolver struct {
	cfg apis.Config
}

// Resolve returns v with every reference replaced by its target in scope.
func (r refResolver) Resolve(v apis.Value, scope apis.Value) (apis.Value, error) {
	w := walk{cfg: r.cfg, scope: scope, active: map[string]struct{}{}}
	return w.value(v)
}

// walk carries the per-call state of one Resolve: the chain of references
// currently being expanded. Nothing outlives the call.
type walk struct {
	cfg    apis.Config
	scope  apis.Value
	active map[string]struct{}
	chain  []string
}

func (w *walk) value(v apis.Value) (apis.Value, error) {
	switch v.Kind() {
	case apis.KindString:
		s, _ := v.Str()
		if !strings.HasPrefix(s, w.cfg.Sentinel) {
			return v, nil
		}
		return w.reference(strings.TrimPrefix(s, w.cfg.Sentinel))

	case apis.KindSequence:
		items, _ := v.Seq()
		for i, item := range items {
			rv, err := w.value(item)
			if err != nil {
				return apis.Value{}, err
			}
			items[i] = rv
		}
		return apis.Seq(items...), nil

	case apis.KindMapping:
		entries, _ := v.Map()
		for k, e := range entries {
			rv, err := w.value(e)
			if err != nil {
				return apis.Value{}, err
			}
			entries[k] = rv
		}
		return apis.Map(entries), nil

	default:
		return v, nil
	}
}

// reference expands one reference path. An unknown path yields an absent leaf.
func (w *walk) reference(path string) (apis.Value, error) {
	if _, busy := w.active[path]; busy {
		chain := make([]string, 0, len(w.chain)+1)
		chain = append(chain, w.chain...)
		chain = append(chain, path)
		return apis.Value{}, &CycleError{Chain: chain}
	}
	if len(w.chain) >= w.cfg.MaxDepth {
		return apis.Value{}, fmt.Errorf("%w: %d at %q", ErrDepthExceeded, w.cfg.MaxDepth, path)
	}

	target, ok := upath.Lookup(w.scope, path, w.cfg.PathSeparator)
	if !ok {
		return apis.Absent(), nil
	}

	w.active[path] = struct{}{}
	w.chain = append(w.chain, path)
	out, err := w.value(target)
	w.chain = w.chain[:len(w.chain)-1]
	delete(w.active, path)
	return out, err
}
