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

package builder

import (
	"github.com/tiagolopescerillion/mobile-app-2.0/apis"
	"github.com/tiagolopescerillion/mobile-app-2.0/composer"
	"github.com/tiagolopescerillion/mobile-app-2.0/registry"
	"github.com/tiagolopescerillion/mobile-app-2.0/tokens"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildRegistry builds and returns a new apis.Registry holding spec. If a
// pre-existing registry is provided, its entries that spec does not redefine
// are copied into the new registry.
func (b *builder) BuildRegistry(_ apis.Config, spec apis.EndpointSpec, preg apis.Registry) (apis.Registry, error) {
	nreg, err := registry.FromSpec(spec)
	if err != nil {
		return nil, err
	}
	if preg != nil {
		for _, e := range preg.Entries() {
			if _, ok := spec[e.Key]; ok {
				continue
			}
			if err := nreg.Register(e.Key, e.Definition); err != nil {
				return nil, err
			}
		}
	}
	return nreg, nil
}

// BuildComposer builds and returns a new apis.Composer over reg using the
// standard route chain: url, then baseUrl+path, then baseKey+path.
func (b *builder) BuildComposer(cfg apis.Config, reg apis.Registry) apis.Composer {
	return composer.New(cfg, reg, composer.DefaultRoutes(reg))
}

// BuildTokens resolves spec for mode.
func (b *builder) BuildTokens(cfg apis.Config, spec apis.TokenSpec, mode apis.Mode) (apis.Tokens, error) {
	return tokens.Resolve(cfg, spec, mode)
}
