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

package registry_test

import (
	"fmt"
	"runtime"
	"sync"
	"testing"

	"github.com/tiagolopescerillion/mobile-app-2.0/apis"
	"github.com/tiagolopescerillion/mobile-app-2.0/registry"
)

// TestConcurrentRegisterAndLookup verifies that Register/Lookup/Entries/Count
// are race-free and consistent under concurrent use.
func TestConcurrentRegisterAndLookup(t *testing.T) {
	reg := registry.New()

	const n = 10
	keys := make([]string, n)
	defs := make([]apis.EndpointDefinition, n)
	for i := range keys {
		keys[i] = fmt.Sprintf("endpoint%d", i)
		defs[i] = apis.EndpointDefinition{BaseURL: "https://h", Path: fmt.Sprintf("p%d", i)}
	}

	// Register once (sequential) to establish baseline.
	for i, k := range keys {
		if err := reg.Register(k, defs[i]); err != nil {
			t.Fatalf("register %s: %v", k, err)
		}
	}

	// Hammer with concurrent lookups and idempotent re-registrations.
	wg := sync.WaitGroup{}
	workers := runtime.GOMAXPROCS(0) * 4

	// Readers
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 5000; i++ {
				k := keys[i%n]
				if got, ok := reg.Lookup(k); !ok || got != defs[i%n] {
					t.Errorf("lookup failed for %s: ok=%v got=%+v", k, ok, got)
					return
				}
				_ = reg.Count()
				_ = reg.Entries()
			}
		}()
	}

	// Writers (idempotent re-register)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				j := (i + id) % n
				_ = reg.Register(keys[j], defs[j]) // must be safe & idempotent
			}
		}(w)
	}

	wg.Wait()

	// Final consistency checks.
	if reg.Count() != n {
		t.Fatalf("count mismatch: got %d want %d", reg.Count(), n)
	}
	got := map[string]apis.EndpointDefinition{}
	for _, e := range reg.Entries() {
		got[e.Key] = e.Definition
	}
	for i, k := range keys {
		if got[k] != defs[i] {
			t.Fatalf("entry mismatch for %s: got %+v want %+v", k, got[k], defs[i])
		}
	}
}

// TestResetSnapshot ensures Reset is safe and Entries returns a stable snapshot.
func TestResetSnapshot(t *testing.T) {
	reg := registry.New()

	_ = reg.Register("a", apis.EndpointDefinition{URL: "https://a"})
	_ = reg.Register("b", apis.EndpointDefinition{URL: "https://b"})

	snap := reg.Entries() // snapshot copy expected
	reg.Reset()

	if reg.Count() != 0 {
		t.Fatalf("count after reset: got %d want 0", reg.Count())
	}
	if len(snap) != 2 {
		t.Fatalf("snapshot length changed unexpectedly: %d", len(snap))
	}
	if snap[0].Key == "" || snap[1].Key == "" {
		t.Fatalf("snapshot contents invalid after reset")
	}
}

// This ensures the interface is satisfied; not a test but a compile-time check.
var _ apis.Registry = registry.New()
