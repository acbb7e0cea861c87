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

package urls

import (
	"net/url"
	"strings"
)

// Join concatenates base and p with exactly one slash between them,
// whatever slashes either side already carries.
func Join(base, p string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(p, "/")
}

// WithQueryParam returns raw with name=value set exactly once.
//
// Absolute URLs are parsed with net/url, but only the matching pair of the
// raw query is touched: the order and encoding of every other parameter,
// valueless flags included, pass through as written. Anything net/url cannot
// treat as absolute falls back to raw concatenation with the right
// separator, and is left untouched when the parameter is already there.
func WithQueryParam(raw, name, value string) string {
	if u, err := url.Parse(raw); err == nil && u.Scheme != "" && u.Host != "" {
		u.RawQuery = setParam(u.RawQuery, name, value)
		return u.String()
	}

	if hasParam(raw, name) {
		return raw
	}
	frag := ""
	if i := strings.IndexByte(raw, '#'); i >= 0 {
		raw, frag = raw[:i], raw[i:]
	}
	sep := "?"
	if strings.Contains(raw, "?") {
		sep = "&"
		if strings.HasSuffix(raw, "?") || strings.HasSuffix(raw, "&") {
			sep = ""
		}
	}
	return raw + sep + url.QueryEscape(name) + "=" + url.QueryEscape(value) + frag
}

// setParam replaces the first name pair of query in place, drops any later
// duplicates, and appends the pair when query does not carry it.
func setParam(query, name, value string) string {
	pair := url.QueryEscape(name) + "=" + url.QueryEscape(value)
	if query == "" {
		return pair
	}

	parts := strings.Split(query, "&")
	out := make([]string, 0, len(parts)+1)
	found := false
	for _, p := range parts {
		if p == "" {
			continue
		}
		if queryKey(p) != name {
			out = append(out, p)
			continue
		}
		if !found {
			out = append(out, pair)
			found = true
		}
	}
	if !found {
		out = append(out, pair)
	}
	return strings.Join(out, "&")
}

// queryKey returns the decoded key of one raw query pair.
func queryKey(pair string) string {
	k, _, _ := strings.Cut(pair, "=")
	if dk, err := url.QueryUnescape(k); err == nil {
		return dk
	}
	return k
}

// hasParam reports whether the query part of raw already names the parameter.
func hasParam(raw, name string) bool {
	i := strings.IndexByte(raw, '?')
	if i < 0 {
		return false
	}
	query := raw[i+1:]
	if j := strings.IndexByte(query, '#'); j >= 0 {
		query = query[:j]
	}
	for _, pair := range strings.Split(query, "&") {
		if queryKey(pair) == name {
			return true
		}
	}
	return false
}
