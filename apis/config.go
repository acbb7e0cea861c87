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

// Config carries read-only resolution knobs shared by both resolver instances.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// Sentinel is the prefix that turns a string into a reference ("$").
	Sentinel string

	// PathSeparator splits a reference path into mapping keys (".").
	PathSeparator string

	// MaxDepth limits how many references a single chain may follow.
	// Acts as a safety guard on top of cycle detection.
	MaxDepth int

	// DefaultMode is the mode used when the token document does not name one.
	DefaultMode Mode

	// FocusParam and FocusValue form the query parameter appended to every
	// composed endpoint URL (mode=focus).
	FocusParam string
	FocusValue string
}
