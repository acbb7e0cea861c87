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

package document

import (
	"fmt"

	"github.com/ohler55/ojg"
	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"

	"github.com/tiagolopescerillion/mobile-app-2.0/apis"
)

// Query evaluates a JSONPath selector (e.g. "$.semantic.button.*") against v.
// Absent leaves come back as null.
func Query(v apis.Value, selector string) ([]apis.Value, error) {
	x, err := jp.ParseString(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid jsonpath '%s': %w", selector, err)
	}

	results := x.Get(v.Interface())

	out := make([]apis.Value, 0, len(results))
	for _, r := range results {
		rv, err := apis.FromAny(r)
		if err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, nil
}

// Encode renders v as JSON. Keys are sorted; indent > 0 pretty-prints.
func Encode(v apis.Value, indent int) string {
	return oj.JSON(v.Interface(), &ojg.Options{Indent: indent, Sort: true})
}
