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

package registry

import (
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/tiagolopescerillion/mobile-app-2.0/apis"
)

var (
	// ErrEmptyKey is returned when an empty endpoint key is provided.
	ErrEmptyKey = errors.New("shell(registry): empty endpoint key provided")
	// ErrConflictingRegistration indicates an attempt to re-register
	// a key with a different definition.
	ErrConflictingRegistration = errors.New("shell(registry): conflicting endpoint registration")
)

// New constructs an empty Registry.
func New() apis.Registry {
	return &registry{}
}

// FromSpec constructs a Registry holding every entry of spec.
func FromSpec(spec apis.EndpointSpec) (apis.Registry, error) {
	reg := New()
	for key, def := range spec {
		if err := reg.Register(key, def); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// registry is a simple Registry implementation backed by sync.Map.
type registry struct {
	// mu guards write-side consistency and counter
	mu sync.Mutex
	// m maps endpoint keys to definitions.
	m sync.Map // map[string]apis.EndpointDefinition
	// count tracks the number of registered entries.
	count int
}

// Register associates key with def.
// It is idempotent for the same (key,definition) pair.
func (r *registry) Register(key string, def apis.EndpointDefinition) error {
	if strings.TrimSpace(key) == "" {
		return ErrEmptyKey
	}

	// Fast read path: idempotency / conflict check without locking.
	if old, ok := r.m.Load(key); ok {
		if old.(apis.EndpointDefinition) == def {
			return nil
		}
		return ErrConflictingRegistration
	}

	// Write path: guard with a mutex to keep counter consistent and avoid ABA.
	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if old, ok := r.m.Load(key); ok {
		if old.(apis.EndpointDefinition) == def {
			return nil
		}
		return ErrConflictingRegistration
	}

	r.m.Store(key, def)
	r.count++
	return nil
}

// Lookup returns the definition registered under key.
func (r *registry) Lookup(key string) (apis.EndpointDefinition, bool) {
	if key == "" {
		return apis.EndpointDefinition{}, false
	}
	if v, ok := r.m.Load(key); ok {
		return v.(apis.EndpointDefinition), true
	}
	return apis.EndpointDefinition{}, false
}

// Keys returns the registered keys in sorted order.
func (r *registry) Keys() []string {
	keys := make([]string, 0, r.Count())
	r.m.Range(func(key, _ any) bool {
		keys = append(keys, key.(string))
		return true
	})
	sort.Strings(keys)
	return keys
}

// Entries returns a snapshot for diagnostics/docs (order is unspecified).
func (r *registry) Entries() []apis.Entry {
	entries := make([]apis.Entry, 0, r.Count())
	r.m.Range(func(key, value any) bool {
		entries = append(entries, apis.Entry{
			Key:        key.(string),
			Definition: value.(apis.EndpointDefinition),
		})
		return true
	})
	return entries
}

// Count returns the number of registered entries.
func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Reset clears all registered entries.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m.Clear()
	r.count = 0
}
