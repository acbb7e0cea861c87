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

// Route is a pluggable endpoint resolution step. A RouteResolver chains
// routes in order (e.g., Direct -> BaseURL -> BaseKey).
type Route interface {
	// TryRoute returns the raw, pre-substitution URL of def. It returns
	// handled=false to fall through to the next route. A handled route that
	// cannot complete returns a non-nil error and stops the chain.
	TryRoute(key string, def EndpointDefinition) (raw string, handled bool, err error)
}

// RouteResolver coordinates routes to produce the raw URL of a definition.
type RouteResolver interface {
	RawURL(key string, def EndpointDefinition) (string, error)
}
