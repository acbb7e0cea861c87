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
	"github.com/tiagolopescerillion/mobile-app-2.0/apis"
)

// NewDirectRoute creates an apis.Route for definitions carrying a literal url.
func NewDirectRoute() apis.Route {
	return &directRoute{}
}

// directRoute is the fast path: a definition with url is used verbatim and
// stops the chain, whatever else it declares.
type directRoute struct{}

// Ensure directRoute implements apis.Route.
var _ apis.Route = (*directRoute)(nil)

// TryRoute returns def.URL when it is set.
func (*directRoute) TryRoute(_ string, def apis.EndpointDefinition) (string, bool, error) {
	if def.URL == "" {
		return "", false, nil
	}
	return def.URL, true, nil
}
