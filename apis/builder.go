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

// Builder composes the runtime handles of the engine from Config and documents.
// Implementations may migrate state from previous instances (prev), or ignore it.
type Builder interface {
	// BuildRegistry constructs a Registry holding spec. Entries of prev that
	// spec does not redefine may be carried over.
	BuildRegistry(cfg Config, spec EndpointSpec, prev Registry) (Registry, error)
	// BuildComposer constructs a Composer over reg.
	BuildComposer(cfg Config, reg Registry) Composer
	// BuildTokens resolves spec for mode.
	BuildTokens(cfg Config, spec TokenSpec, mode Mode) (Tokens, error)
}
