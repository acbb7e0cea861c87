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

package composer_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiagolopescerillion/mobile-app-2.0/apis"
	"github.com/tiagolopescerillion/mobile-app-2.0/composer"
	"github.com/tiagolopescerillion/mobile-app-2.0/config"
	"github.com/tiagolopescerillion/mobile-app-2.0/registry"
	"github.com/tiagolopescerillion/mobile-app-2.0/strategy"
)

func newComposer(t *testing.T, spec apis.EndpointSpec, opts ...config.Option) apis.Composer {
	t.Helper()
	reg, err := registry.FromSpec(spec)
	require.NoError(t, err)
	return composer.New(config.NewConfig(opts...), reg, nil)
}

var fixture = apis.EndpointSpec{
	"selfServiceBase": {URL: "https://portal.example.com/self-service/", Title: "Self service"},
	"api":             {BaseURL: "https://h/api/", Path: "/users"},
	"bills":           {BaseKey: "selfServiceBase", Path: "/accounts/<account_no>/bills"},
	"usage":           {URL: "https://portal.example.com/usage/{ACCOUNT_NO}?view=chart"},
	"missingBase":     {BaseKey: "nowhere", Path: "x"},
	"missingPath":     {BaseURL: "https://h"},
	"empty":           {Title: "No route"},
	"relative":        {URL: "/local/page"},
}

func TestCompose_URLJoin(t *testing.T) {
	c := newComposer(t, fixture)

	ep, err := c.Compose("api", apis.Substitutions{})
	require.NoError(t, err)
	assert.Equal(t, "https://h/api/users?mode=focus", ep.URL)
}

func TestCompose_TitleDefaultsToKey(t *testing.T) {
	c := newComposer(t, fixture)

	ep, err := c.Compose("api", apis.Substitutions{})
	require.NoError(t, err)
	assert.Equal(t, "api", ep.Title)

	ep, err = c.Compose("selfServiceBase", apis.Substitutions{})
	require.NoError(t, err)
	assert.Equal(t, "Self service", ep.Title)
}

func TestCompose_PlaceholderGating(t *testing.T) {
	c := newComposer(t, fixture)

	_, err := c.Compose("bills", apis.Substitutions{})
	assert.ErrorIs(t, err, composer.ErrUnresolvedPlaceholder)

	_, ok := c.Endpoint("bills", apis.Substitutions{})
	assert.False(t, ok)

	ep, ok := c.Endpoint("bills", apis.Substitutions{AccountNumber: "123"})
	require.True(t, ok)
	assert.Equal(t, "https://portal.example.com/self-service/accounts/123/bills?mode=focus", ep.URL)
	assert.Equal(t, 1, strings.Count(ep.URL, "mode=focus"))
	assert.NotContains(t, strings.ToLower(ep.URL), "account_no")
}

func TestCompose_PlaceholderStylesAndCase(t *testing.T) {
	c := newComposer(t, apis.EndpointSpec{
		"mixed": {URL: "https://h/<Account_No>/x/{account_no}/<ACCOUNT_NO>"},
	})

	ep, err := c.Compose("mixed", apis.Substitutions{AccountNumber: "42"})
	require.NoError(t, err)
	assert.Equal(t, "https://h/42/x/42/42?mode=focus", ep.URL)
}

func TestCompose_PlaceholderValueIsEscaped(t *testing.T) {
	c := newComposer(t, fixture)

	ep, err := c.Compose("bills", apis.Substitutions{AccountNumber: "a/b c"})
	require.NoError(t, err)
	assert.Contains(t, ep.URL, "/accounts/a%2Fb%20c/bills")
}

func TestCompose_FocusParamMergesWithExistingQuery(t *testing.T) {
	c := newComposer(t, fixture)

	ep, err := c.Compose("usage", apis.Substitutions{AccountNumber: "9"})
	require.NoError(t, err)
	assert.Equal(t, "https://portal.example.com/usage/9?view=chart&mode=focus", ep.URL)
}

func TestCompose_RelativeURLFallback(t *testing.T) {
	c := newComposer(t, fixture)

	ep, err := c.Compose("relative", apis.Substitutions{})
	require.NoError(t, err)
	assert.Equal(t, "/local/page?mode=focus", ep.URL)
}

func TestCompose_CustomFocusParam(t *testing.T) {
	c := newComposer(t, fixture, config.WithFocusParam("view", "embedded"))

	ep, err := c.Compose("api", apis.Substitutions{})
	require.NoError(t, err)
	assert.Equal(t, "https://h/api/users?view=embedded", ep.URL)
}

func TestCompose_Unavailable(t *testing.T) {
	c := newComposer(t, fixture)

	tests := []struct {
		key  string
		want error
	}{
		{"nope", composer.ErrUnknownEndpoint},
		{"missingBase", strategy.ErrMissingBase},
		{"missingPath", strategy.ErrMissingPath},
		{"empty", composer.ErrNoRoute},
	}
	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			_, err := c.Compose(tc.key, apis.Substitutions{AccountNumber: "1"})
			assert.ErrorIs(t, err, tc.want)

			ep, ok := c.Endpoint(tc.key, apis.Substitutions{AccountNumber: "1"})
			assert.False(t, ok)
			assert.Equal(t, apis.ResolvedEndpoint{}, ep)
		})
	}
}

func TestCompose_UnknownKeySuggestsClosest(t *testing.T) {
	c := newComposer(t, fixture)

	_, err := c.Compose("selfservicebase", apis.Substitutions{})
	require.ErrorIs(t, err, composer.ErrUnknownEndpoint)
	assert.Contains(t, err.Error(), `did you mean "selfServiceBase"`)

	var unknown *composer.UnknownEndpointError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "selfservicebase", unknown.Key)
	assert.Equal(t, "selfServiceBase", unknown.Suggestion)

	_, err = c.Compose("zzz", apis.Substitutions{})
	require.ErrorAs(t, err, &unknown)
	assert.Empty(t, unknown.Suggestion)
	assert.NotContains(t, err.Error(), "did you mean")
}

func TestCompose_ZeroConfigStillAddsFocusParam(t *testing.T) {
	reg, err := registry.FromSpec(apis.EndpointSpec{
		"home":   {URL: "https://h/home"},
		"signed": {URL: "https://h/file?sig=a%2Bb%3D&exp=9&inline"},
	})
	require.NoError(t, err)
	c := composer.New(apis.Config{}, reg, nil)

	ep, err := c.Compose("home", apis.Substitutions{})
	require.NoError(t, err)
	assert.Equal(t, "https://h/home?mode=focus", ep.URL)

	ep, err = c.Compose("signed", apis.Substitutions{})
	require.NoError(t, err)
	assert.Equal(t, "https://h/file?sig=a%2Bb%3D&exp=9&inline&mode=focus", ep.URL)
}

func TestEndpoints_OmitsUnavailable(t *testing.T) {
	c := newComposer(t, fixture)

	withoutAccount := c.Endpoints(apis.Substitutions{})
	want := []apis.ResolvedEndpoint{
		{Key: "api", URL: "https://h/api/users?mode=focus", Title: "api"},
		{Key: "relative", URL: "/local/page?mode=focus", Title: "relative"},
		{Key: "selfServiceBase", URL: "https://portal.example.com/self-service/?mode=focus", Title: "Self service"},
	}
	if diff := cmp.Diff(want, withoutAccount); diff != "" {
		t.Fatalf("Endpoints() mismatch (-want +got):\n%s", diff)
	}

	withAccount := c.Endpoints(apis.Substitutions{AccountNumber: "7"})
	available := 0
	for key := range fixture {
		if _, ok := c.Endpoint(key, apis.Substitutions{AccountNumber: "7"}); ok {
			available++
		}
	}
	assert.Len(t, withAccount, available)
	assert.Len(t, withAccount, 5)
}

func TestNew_NilRegistry(t *testing.T) {
	c := composer.New(config.DefaultConfig(), nil, nil)
	assert.Empty(t, c.Endpoints(apis.Substitutions{}))
	_, err := c.Compose("x", apis.Substitutions{})
	assert.ErrorIs(t, err, composer.ErrUnknownEndpoint)
}
