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

// Resolver expands references inside a value tree against a scope.
type Resolver interface {
	// Resolve returns v with every reference replaced by the value found in
	// scope, recursively. Unknown references become absent leaves; cycles
	// are reported as errors.
	Resolve(v Value, scope Value) (Value, error)
}
