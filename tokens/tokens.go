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

// Package tokens resolves design token documents in two passes: the primitive
// partition of one mode against itself, then the semantic tree against the
// resolved primitives layered under the raw semantic entries.
package tokens

import (
	"fmt"

	"github.com/tiagolopescerillion/mobile-app-2.0/apis"
	"github.com/tiagolopescerillion/mobile-app-2.0/resolver"
)

// ResolvePrimitives resolves the primitive partition of mode against itself.
// A mode without a partition fails with apis.ErrUnknownMode.
func ResolvePrimitives(cfg apis.Config, spec apis.TokenSpec, mode apis.Mode) (apis.Value, error) {
	if !mode.Valid() {
		return apis.Value{}, fmt.Errorf("%w: %s", apis.ErrUnknownMode, mode)
	}
	part, ok := spec.Partition(mode)
	if !ok {
		return apis.Value{}, fmt.Errorf("%w: no %q primitives", apis.ErrUnknownMode, mode.String())
	}

	out, err := resolver.New(cfg).Resolve(part, part)
	if err != nil {
		return apis.Value{}, fmt.Errorf("primitives[%s]: %w", mode, err)
	}
	return out, nil
}

// ResolveSemantic resolves the raw semantic tree against the resolved
// primitives overlaid with the raw semantic entries. On a top-level key
// collision the semantic entry wins. A document without a semantic tree
// yields an empty mapping.
func ResolveSemantic(cfg apis.Config, spec apis.TokenSpec, primitives apis.Value) (apis.Value, error) {
	if spec.Semantic.IsAbsent() {
		return apis.Map(nil), nil
	}

	scope, _ := primitives.Map()
	if scope == nil {
		scope = map[string]apis.Value{}
	}
	if sem, ok := spec.Semantic.Map(); ok {
		for k, v := range sem {
			scope[k] = v
		}
	}

	out, err := resolver.New(cfg).Resolve(spec.Semantic, apis.Map(scope))
	if err != nil {
		return apis.Value{}, fmt.Errorf("semantic: %w", err)
	}
	return out, nil
}

// Resolve runs both passes for mode.
func Resolve(cfg apis.Config, spec apis.TokenSpec, mode apis.Mode) (apis.Tokens, error) {
	prim, err := ResolvePrimitives(cfg, spec, mode)
	if err != nil {
		return apis.Tokens{}, err
	}
	sem, err := ResolveSemantic(cfg, spec, prim)
	if err != nil {
		return apis.Tokens{}, err
	}
	return apis.Tokens{Mode: mode, Primitives: prim, Semantic: sem}, nil
}

// InitialMode returns the mode named by the document, or fallback when the
// document names none. A name that does not parse is an error.
func InitialMode(spec apis.TokenSpec, fallback apis.Mode) (apis.Mode, error) {
	if spec.CurrentMode == "" {
		return fallback, nil
	}
	return apis.ParseMode(spec.CurrentMode)
}
