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

package strategy

import (
	"fmt"

	"github.com/tiagolopescerillion/mobile-app-2.0/apis"
	"github.com/tiagolopescerillion/mobile-app-2.0/utils/urls"
)

// NewBaseKeyRoute creates an apis.Route that takes the base of {baseKey, path}
// definitions from another entry of reg.
func NewBaseKeyRoute(reg apis.Registry) apis.Route {
	return &baseKeyRoute{reg: reg}
}

// baseKeyRoute consults a provided apis.Registry for the base entry.
// Only one level is followed: the base entry's own baseKey is never chased.
type baseKeyRoute struct {
	reg apis.Registry
}

// Ensure baseKeyRoute implements apis.Route.
var _ apis.Route = (*baseKeyRoute)(nil)

// TryRoute resolves the base entry's url, else its baseUrl, and appends path.
func (s *baseKeyRoute) TryRoute(key string, def apis.EndpointDefinition) (string, bool, error) {
	if def.BaseKey == "" {
		return "", false, nil
	}
	if def.Path == "" {
		return "", true, fmt.Errorf("%w: %q", ErrMissingPath, key)
	}
	if s.reg == nil {
		return "", true, fmt.Errorf("%w: %q -> %q", ErrMissingBase, key, def.BaseKey)
	}

	base, ok := s.reg.Lookup(def.BaseKey)
	if !ok {
		return "", true, fmt.Errorf("%w: %q -> %q", ErrMissingBase, key, def.BaseKey)
	}
	raw := base.URL
	if raw == "" {
		raw = base.BaseURL
	}
	if raw == "" {
		return "", true, fmt.Errorf("%w: %q -> %q", ErrMissingBase, key, def.BaseKey)
	}
	return urls.Join(raw, def.Path), true, nil
}
