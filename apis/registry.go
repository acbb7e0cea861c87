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

package apis

// Registry holds endpoint definitions by key.
// Keep it minimal so implementations can be lock-free or sync.Map-backed.
type Registry interface {
	// Register associates key with def. Implementations should be idempotent;
	// conflicting re-registrations return an error.
	Register(key string, def EndpointDefinition) error
	// Lookup returns the definition registered under key.
	Lookup(key string) (def EndpointDefinition, ok bool)
	// Keys returns the registered keys in sorted order.
	Keys() []string
	// Entries returns a snapshot for diagnostics/docs (order is unspecified).
	Entries() []Entry
	// Count returns the number of registered entries.
	Count() int
	// Reset clears all registered entries.
	Reset()
}

// Entry is a single (key, definition) association in a Registry snapshot.
type Entry struct {
	Key        string
	Definition EndpointDefinition
}
