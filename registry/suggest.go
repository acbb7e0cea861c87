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

package registry

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/tiagolopescerillion/mobile-app-2.0/apis"
)

// Suggest returns the registered key closest to key, for "did you mean"
// diagnostics. It matches case-insensitively in both directions: key as an
// abbreviation of a registered key, or a registered key contained in a
// longer, mistyped key. It returns false when nothing is close.
func Suggest(reg apis.Registry, key string) (string, bool) {
	if reg == nil || key == "" {
		return "", false
	}
	keys := reg.Keys()

	ranks := fuzzy.RankFindFold(key, keys)
	if len(ranks) == 0 {
		for _, k := range keys {
			if d := fuzzy.RankMatchFold(k, key); d >= 0 {
				ranks = append(ranks, fuzzy.Rank{Source: k, Target: k, Distance: d})
			}
		}
	}
	if len(ranks) == 0 {
		return "", false
	}

	sort.Stable(ranks)
	return ranks[0].Target, true
}
