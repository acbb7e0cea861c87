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

// Composer turns endpoint keys into concrete URLs.
type Composer interface {
	// Compose resolves key and reports why it is unavailable when it fails.
	Compose(key string, subs Substitutions) (ResolvedEndpoint, error)
	// Endpoint is Compose without the reason: unavailable keys return false.
	Endpoint(key string, subs Substitutions) (ResolvedEndpoint, bool)
	// Endpoints resolves every registered key and omits unavailable ones.
	Endpoints(subs Substitutions) []ResolvedEndpoint
}
