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

package urls_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tiagolopescerillion/mobile-app-2.0/utils/urls"
)

func TestJoin_SlashVariations(t *testing.T) {
	want := "https://h/api/users"
	for _, tc := range []struct{ base, path string }{
		{"https://h/api", "/users"},
		{"https://h/api/", "/users"},
		{"https://h/api/", "users"},
		{"https://h/api", "users"},
		{"https://h/api//", "//users"},
	} {
		assert.Equal(t, want, urls.Join(tc.base, tc.path), "Join(%q, %q)", tc.base, tc.path)
	}
}

func TestWithQueryParam_Absolute(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no query", "https://h/a", "https://h/a?mode=focus"},
		{"existing query", "https://h/a?x=1", "https://h/a?x=1&mode=focus"},
		{"keeps parameter order", "https://h/a?z=1&a=2", "https://h/a?z=1&a=2&mode=focus"},
		{"replaces in place", "https://h/a?z=1&mode=full&a=2", "https://h/a?z=1&mode=focus&a=2"},
		{"drops duplicates", "https://h/a?mode=full&x=1&mode=other", "https://h/a?mode=focus&x=1"},
		{"trailing question mark", "https://h/a?", "https://h/a?mode=focus"},
		{"already set", "https://h/a?mode=focus", "https://h/a?mode=focus"},
		{"overrides other value", "https://h/a?mode=full", "https://h/a?mode=focus"},
		{"keeps fragment", "https://h/a#top", "https://h/a?mode=focus#top"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, urls.WithQueryParam(tc.in, "mode", "focus"))
		})
	}
}

func TestWithQueryParam_RawFallback(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"relative", "/self-service/home", "/self-service/home?mode=focus"},
		{"relative with query", "/a?x=1", "/a?x=1&mode=focus"},
		{"trailing question mark", "/a?", "/a?mode=focus"},
		{"already present", "/a?mode=focus", "/a?mode=focus"},
		{"fragment", "/a#frag", "/a?mode=focus#frag"},
		{"unparsable", "https://h/%zz", "https://h/%zz?mode=focus"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, urls.WithQueryParam(tc.in, "mode", "focus"))
		})
	}
}

func TestWithQueryParam_KeepsRawEncoding(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"percent space", "https://h/x?a=%20b", "https://h/x?a=%20b&mode=focus"},
		{"valueless flag", "https://h/x?flag", "https://h/x?flag&mode=focus"},
		{"mixed", "https://h/x?z=1&a=%20b&flag", "https://h/x?z=1&a=%20b&flag&mode=focus"},
		{"signed", "https://h/x?sig=a%2Bb%3D&exp=9", "https://h/x?sig=a%2Bb%3D&exp=9&mode=focus"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, urls.WithQueryParam(tc.in, "mode", "focus"))
		})
	}
}
