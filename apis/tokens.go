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

// TokenSpec is the raw token configuration document.
//
// Primitives is a mapping from mode name to namespace trees; Semantic is a
// single mode-independent tree whose leaves may reference primitives or other
// semantic entries. The document is loaded once and never mutated.
type TokenSpec struct {
	// CurrentMode optionally names the initial mode ("light", "dark").
	CurrentMode string
	// Primitives holds one partition per mode.
	Primitives Value
	// Semantic holds role-based tokens.
	Semantic Value
}

// Partition returns the raw primitive tree of mode m.
func (s TokenSpec) Partition(m Mode) (Value, bool) {
	p, ok := s.Primitives.Get(m.String())
	if !ok || p.Kind() != KindMapping {
		return Value{}, false
	}
	return p, true
}

// Tokens is a fully resolved token tree for one mode.
type Tokens struct {
	Mode       Mode  `json:"mode"`
	Primitives Value `json:"primitives"`
	Semantic   Value `json:"semantic"`
}
