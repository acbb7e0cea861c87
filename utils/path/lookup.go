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

package path

import (
	"strings"

	"github.com/tiagolopescerillion/mobile-app-2.0/apis"
	"github.com/tiagolopescerillion/mobile-app-2.0/config"
)

// Split breaks a reference path into mapping keys.
// An empty sep falls back to config.DefaultPathSeparator. An empty path has no segments.
func Split(path, sep string) []string {
	if path == "" {
		return nil
	}
	if sep == "" {
		sep = config.DefaultPathSeparator
	}
	return strings.Split(path, sep)
}

// Lookup walks scope along path and returns the value found there.
//
// Walking policy:
//   - every segment must name an entry of a mapping;
//   - descending into a scalar or a sequence misses (sequences are not indexable);
//   - an empty path misses.
//
// Lookup never panics; any miss returns (Absent, false).
func Lookup(scope apis.Value, path, sep string) (apis.Value, bool) {
	segs := Split(path, sep)
	if len(segs) == 0 {
		return apis.Absent(), false
	}

	cur := scope
	for _, seg := range segs {
		next, ok := cur.Get(seg)
		if !ok {
			return apis.Absent(), false
		}
		cur = next
	}
	if cur.IsAbsent() {
		return apis.Absent(), false
	}
	return cur, true
}
