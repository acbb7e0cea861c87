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

package tokens_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiagolopescerillion/mobile-app-2.0/apis"
	"github.com/tiagolopescerillion/mobile-app-2.0/config"
	"github.com/tiagolopescerillion/mobile-app-2.0/resolver"
	"github.com/tiagolopescerillion/mobile-app-2.0/tokens"
)

func designSystem() apis.TokenSpec {
	return apis.TokenSpec{
		CurrentMode: "dark",
		Primitives: apis.MustFromAny(map[string]any{
			"light": map[string]any{
				"colors": map[string]any{
					"neutral": map[string]any{"0": "#FFFFFF", "900": "#111111"},
					"brand":   "#0057B8",
				},
				"palette": map[string]any{"background": "$colors.neutral.0", "text": "$colors.neutral.900"},
				"spacing": map[string]any{"sm": 8, "md": 16},
			},
			"dark": map[string]any{
				"colors": map[string]any{
					"neutral": map[string]any{"0": "#000000", "900": "#EEEEEE"},
					"brand":   "#4D9BFF",
				},
				"palette": map[string]any{"background": "$colors.neutral.0", "text": "$colors.neutral.900"},
				"spacing": map[string]any{"sm": 8, "md": 16},
			},
		}),
		Semantic: apis.MustFromAny(map[string]any{
			"surface": map[string]any{"default": "$palette.background"},
			"text":    map[string]any{"primary": "$palette.text", "link": "$button.primary.background"},
			"button": map[string]any{
				"primary": map[string]any{"background": "$colors.brand", "padding": "$spacing.md"},
			},
			"missing": "$colors.nope",
		}),
	}
}

func leaf(t *testing.T, v apis.Value, keys ...string) apis.Value {
	t.Helper()
	for _, k := range keys {
		next, ok := v.Get(k)
		require.True(t, ok, "missing key %q", k)
		v = next
	}
	return v
}

func TestResolvePrimitives_PerMode(t *testing.T) {
	cfg := config.DefaultConfig()
	spec := designSystem()

	light, err := tokens.ResolvePrimitives(cfg, spec, apis.Light)
	require.NoError(t, err)
	dark, err := tokens.ResolvePrimitives(cfg, spec, apis.Dark)
	require.NoError(t, err)

	assert.True(t, leaf(t, light, "palette", "background").Equal(apis.String("#FFFFFF")))
	assert.True(t, leaf(t, dark, "palette", "background").Equal(apis.String("#000000")))
}

func TestResolveSemantic_CrossLayer(t *testing.T) {
	got, err := tokens.Resolve(config.DefaultConfig(), designSystem(), apis.Light)
	require.NoError(t, err)

	assert.Equal(t, apis.Light, got.Mode)
	assert.True(t, leaf(t, got.Semantic, "surface", "default").Equal(apis.String("#FFFFFF")))
	assert.True(t, leaf(t, got.Semantic, "button", "primary", "padding").Equal(apis.Number(16)))
	// Semantic-to-semantic reference.
	assert.True(t, leaf(t, got.Semantic, "text", "link").Equal(apis.String("#0057B8")))
	// Absent reference stays a key with an absent leaf.
	assert.True(t, leaf(t, got.Semantic, "missing").IsAbsent())
}

func TestResolveSemantic_SemanticWinsOnCollision(t *testing.T) {
	spec := apis.TokenSpec{
		Primitives: apis.MustFromAny(map[string]any{
			"light": map[string]any{"accent": "from-primitives", "base": "p"},
		}),
		Semantic: apis.MustFromAny(map[string]any{
			"accent": "from-semantic",
			"use":    "$accent",
			"alsoP":  "$base",
		}),
	}
	got, err := tokens.Resolve(config.DefaultConfig(), spec, apis.Light)
	require.NoError(t, err)

	assert.True(t, leaf(t, got.Semantic, "use").Equal(apis.String("from-semantic")))
	assert.True(t, leaf(t, got.Semantic, "alsoP").Equal(apis.String("p")))
}

func TestResolve_ModeIsolation(t *testing.T) {
	cfg := config.DefaultConfig()
	spec := designSystem()

	lightBefore, err := tokens.Resolve(cfg, spec, apis.Light)
	require.NoError(t, err)
	_, err = tokens.Resolve(cfg, spec, apis.Dark)
	require.NoError(t, err)
	lightAfter, err := tokens.Resolve(cfg, spec, apis.Light)
	require.NoError(t, err)

	if !lightBefore.Primitives.Equal(lightAfter.Primitives) || !lightBefore.Semantic.Equal(lightAfter.Semantic) {
		t.Fatalf("resolving dark changed light output")
	}
	if diff := cmp.Diff(lightBefore.Semantic.Interface(), lightAfter.Semantic.Interface()); diff != "" {
		t.Fatalf("light semantic drifted (-before +after):\n%s", diff)
	}
}

func TestResolve_Idempotent(t *testing.T) {
	cfg := config.DefaultConfig()
	got, err := tokens.Resolve(cfg, designSystem(), apis.Dark)
	require.NoError(t, err)

	r := resolver.New(cfg)
	again, err := r.Resolve(got.Semantic, got.Semantic)
	require.NoError(t, err)
	assert.True(t, again.Equal(got.Semantic))
}

func TestResolve_UnknownMode(t *testing.T) {
	spec := apis.TokenSpec{Primitives: apis.MustFromAny(map[string]any{"light": map[string]any{}})}

	_, err := tokens.Resolve(config.DefaultConfig(), spec, apis.Dark)
	assert.ErrorIs(t, err, apis.ErrUnknownMode)

	_, err = tokens.Resolve(config.DefaultConfig(), spec, apis.Mode(7))
	assert.ErrorIs(t, err, apis.ErrUnknownMode)
}

func TestResolve_CycleInSemantic(t *testing.T) {
	spec := apis.TokenSpec{
		Primitives: apis.MustFromAny(map[string]any{"light": map[string]any{}}),
		Semantic:   apis.MustFromAny(map[string]any{"a": "$b", "b": "$a"}),
	}
	_, err := tokens.Resolve(config.DefaultConfig(), spec, apis.Light)
	assert.ErrorIs(t, err, resolver.ErrCyclicReference)
}

func TestResolveSemantic_NoSemanticTree(t *testing.T) {
	spec := apis.TokenSpec{Primitives: apis.MustFromAny(map[string]any{"light": map[string]any{"x": 1}})}
	got, err := tokens.Resolve(config.DefaultConfig(), spec, apis.Light)
	require.NoError(t, err)
	assert.Equal(t, apis.KindMapping, got.Semantic.Kind())
	assert.Equal(t, 0, got.Semantic.Len())
}

func TestInitialMode(t *testing.T) {
	m, err := tokens.InitialMode(designSystem(), apis.Light)
	require.NoError(t, err)
	assert.Equal(t, apis.Dark, m)

	m, err = tokens.InitialMode(apis.TokenSpec{}, apis.Dark)
	require.NoError(t, err)
	assert.Equal(t, apis.Dark, m)

	_, err = tokens.InitialMode(apis.TokenSpec{CurrentMode: "sepia"}, apis.Light)
	assert.ErrorIs(t, err, apis.ErrUnknownMode)
}
