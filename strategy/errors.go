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

package strategy

import "errors"

var (
	// ErrMissingPath is returned when a base route has no path to append.
	ErrMissingPath = errors.New("shell(strategy): endpoint definition has a base but no path")
	// ErrMissingBase is returned when the entry named by baseKey is unknown
	// or carries neither url nor baseUrl.
	ErrMissingBase = errors.New("shell(strategy): base endpoint is missing or has no url")
)
