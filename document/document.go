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

// Package document loads token and endpoint configuration documents.
//
// Documents are plain trees: JSON is parsed with ojg, YAML with yaml.v3, and
// both are converted into apis.Value before any shape checks, so the two
// formats accept exactly the same documents.
package document

import (
	"errors"
	"fmt"
	"os"

	"github.com/ohler55/ojg/oj"
	"gopkg.in/yaml.v3"

	"github.com/tiagolopescerillion/mobile-app-2.0/apis"
)

// ErrInvalidDocument is returned when a document parses but has the wrong shape.
var ErrInvalidDocument = errors.New("shell(document): invalid document")

// Token document keys.
const (
	keyCurrentMode = "currentMode"
	keyPrimitives  = "primitives"
	keySemantic    = "semantic"
)

// Parse decodes data in the given format into a Value.
func Parse(data []byte, format Format) (apis.Value, error) {
	var (
		raw any
		err error
	)
	switch format {
	case JSON:
		raw, err = oj.Parse(data)
	case YAML:
		err = yaml.Unmarshal(data, &raw)
	default:
		return apis.Value{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return apis.Value{}, fmt.Errorf("parse %s: %w", format, err)
	}
	return apis.FromAny(raw)
}

// ParseTokens decodes a token configuration document:
//
//	{ "currentMode": "light", "primitives": { "<mode>": {...} }, "semantic": {...} }
//
// currentMode and semantic are optional. Mode partitions are not validated
// here; a mode without a partition fails when it is resolved.
func ParseTokens(data []byte, format Format) (apis.TokenSpec, error) {
	root, err := Parse(data, format)
	if err != nil {
		return apis.TokenSpec{}, err
	}
	return TokensFromValue(root)
}

// TokensFromValue checks the shape of a decoded token document.
func TokensFromValue(root apis.Value) (apis.TokenSpec, error) {
	if root.Kind() != apis.KindMapping {
		return apis.TokenSpec{}, fmt.Errorf("%w: token document must be a mapping, got %s", ErrInvalidDocument, root.Kind())
	}

	var spec apis.TokenSpec
	if cm, ok := root.Get(keyCurrentMode); ok && cm.Kind() != apis.KindNull {
		s, ok := cm.Str()
		if !ok {
			return apis.TokenSpec{}, fmt.Errorf("%w: %s must be a string", ErrInvalidDocument, keyCurrentMode)
		}
		spec.CurrentMode = s
	}

	prim, ok := root.Get(keyPrimitives)
	if !ok || prim.Kind() != apis.KindMapping {
		return apis.TokenSpec{}, fmt.Errorf("%w: %s must be a mapping of modes", ErrInvalidDocument, keyPrimitives)
	}
	spec.Primitives = prim

	if sem, ok := root.Get(keySemantic); ok && sem.Kind() != apis.KindNull {
		if sem.Kind() != apis.KindMapping {
			return apis.TokenSpec{}, fmt.Errorf("%w: %s must be a mapping", ErrInvalidDocument, keySemantic)
		}
		spec.Semantic = sem
	}
	return spec, nil
}

// ParseEndpoints decodes an endpoint document: a mapping from
// endpoint key to {url, baseKey, baseUrl, path, title}. Unknown fields are
// ignored; incomplete definitions are kept and fail only when composed.
func ParseEndpoints(data []byte, format Format) (apis.EndpointSpec, error) {
	root, err := Parse(data, format)
	if err != nil {
		return nil, err
	}
	return EndpointsFromValue(root)
}

// EndpointsFromValue checks the shape of a decoded endpoint document.
func EndpointsFromValue(root apis.Value) (apis.EndpointSpec, error) {
	entries, ok := root.Map()
	if !ok {
		return nil, fmt.Errorf("%w: endpoint document must be a mapping, got %s", ErrInvalidDocument, root.Kind())
	}

	spec := make(apis.EndpointSpec, len(entries))
	for key, entry := range entries {
		if entry.Kind() != apis.KindMapping {
			return nil, fmt.Errorf("%w: endpoint %q must be a mapping", ErrInvalidDocument, key)
		}
		var def apis.EndpointDefinition
		fields := []struct {
			name string
			dst  *string
		}{
			{"url", &def.URL},
			{"baseKey", &def.BaseKey},
			{"baseUrl", &def.BaseURL},
			{"path", &def.Path},
			{"title", &def.Title},
		}
		for _, f := range fields {
			v, ok := entry.Get(f.name)
			if !ok || v.Kind() == apis.KindNull {
				continue
			}
			s, ok := v.Str()
			if !ok {
				return nil, fmt.Errorf("%w: %s.%s must be a string", ErrInvalidDocument, key, f.name)
			}
			*f.dst = s
		}
		spec[key] = def
	}
	return spec, nil
}

// LoadTokensFile reads a token document, picking the format from the extension.
func LoadTokensFile(path string) (apis.TokenSpec, error) {
	data, format, err := read(path)
	if err != nil {
		return apis.TokenSpec{}, err
	}
	spec, err := ParseTokens(data, format)
	if err != nil {
		return apis.TokenSpec{}, fmt.Errorf("%s: %w", path, err)
	}
	return spec, nil
}

// LoadEndpointsFile reads an endpoint document, picking the format from the extension.
func LoadEndpointsFile(path string) (apis.EndpointSpec, error) {
	data, format, err := read(path)
	if err != nil {
		return nil, err
	}
	spec, err := ParseEndpoints(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return spec, nil
}

func read(path string) ([]byte, Format, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, 0, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read document: %w", err)
	}
	return data, format, nil
}
