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

package apis

import "errors"

var (
	// ErrUnknownMode is returned when a mode is not part of the closed Mode set
	// or has no partition in the token document.
	ErrUnknownMode = errors.New("shell: unknown mode")
	// ErrUnsupportedValue is returned by FromAny for Go values that have no Value form.
	ErrUnsupportedValue = errors.New("shell: unsupported document value")
)
