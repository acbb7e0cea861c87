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

	"github.com/tiagolopescerillion/mobile-app-2.0/apis"
)

// ErrNoRoute is returned when no route handles an endpoint definition.
var ErrNoRoute = errors.New("shell(resolver): no route matches the endpoint definition")

// Chain constructs an apis.RouteResolver that tries the given routes in order.
// Nil routes are ignored. The returned resolver is safe for concurrent use
// provided routes themselves are safe for concurrent TryRoute calls.
func Chain(routes ...apis.Route) apis.RouteResolver {
	// Filter out nils to avoid nil-interface panics on call sites.
	out := make([]apis.Route, 0, len(routes))
	for _, r := range routes {
		if r != nil {
			out = append(out, r)
		}
	}
	return chain{routes: out}
}

// chain is an immutable, order-preserving resolver over a set of routes.
type chain struct {
	routes []apis.Route
}

// RawURL runs routes in order until one handles the definition.
// A handled route's error stops the chain.
func (c chain) RawURL(key string, def apis.EndpointDefinition) (string, error) {
	for _, r := range c.routes {
		raw, ok, err := r.TryRoute(key, def)
		if !ok {
			continue
		}
		if err != nil {
			return "", err
		}
		return raw, nil
	}
	return "", ErrNoRoute
}
