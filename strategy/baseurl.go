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

// NewBaseURLRoute creates an apis.Route for {baseUrl, path} definitions.
func NewBaseURLRoute() apis.Route {
	return &baseURLRoute{}
}

// baseURLRoute joins a literal base with the definition's path.
type baseURLRoute struct{}

// Ensure baseURLRoute implements apis.Route.
var _ apis.Route = (*baseURLRoute)(nil)

// TryRoute handles any definition with baseUrl; a missing path is an error.
func (*baseURLRoute) TryRoute(key string, def apis.EndpointDefinition) (string, bool, error) {
	if def.BaseURL == "" {
		return "", false, nil
	}
	if def.Path == "" {
		return "", true, fmt.Errorf("%w: %q", ErrMissingPath, key)
	}
	return urls.Join(def.BaseURL, def.Path), true, nil
}
