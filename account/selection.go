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

// Package account holds the account number currently selected by the user.
package account

import (
	"strings"
	"sync/atomic"

	"github.com/tiagolopescerillion/mobile-app-2.0/apis"
)

// Selection is the nullable, concurrency-safe selected account number.
// The zero value has nothing selected.
type Selection struct {
	cur atomic.Pointer[string]
}

// Get returns the selected account number and whether one is selected.
func (s *Selection) Get() (string, bool) {
	p := s.cur.Load()
	if p == nil {
		return "", false
	}
	return *p, true
}

// Set selects number. A blank number clears the selection.
func (s *Selection) Set(number string) {
	number = strings.TrimSpace(number)
	if number == "" {
		s.cur.Store(nil)
		return
	}
	s.cur.Store(&number)
}

// Clear drops the selection.
func (s *Selection) Clear() { s.cur.Store(nil) }

// Substitutions returns the placeholder values for the current selection.
func (s *Selection) Substitutions() apis.Substitutions {
	n, _ := s.Get()
	return apis.Substitutions{AccountNumber: n}
}
