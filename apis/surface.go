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

import (
	"fmt"
	"time"
)

// Page is what a display surface shows.
type Page struct {
	SessionID string `json:"sessionId"`
	Key       string `json:"key"`
	URL       string `json:"url"`
	Title     string `json:"title"`
}

// Surface is the embedded-browser display. Calls are fire-and-forget:
// implementations must not block on page loads.
type Surface interface {
	Present(p Page)
	Dismiss()
}

// SurfaceEventKind enumerates lifecycle notifications reported by a Surface.
type SurfaceEventKind int

const (
	// SurfaceOpened is reported when the surface becomes visible.
	SurfaceOpened SurfaceEventKind = iota
	// SurfaceClosed is reported when the surface is hidden.
	SurfaceClosed
	// SurfaceLoadStarted is reported when navigation starts.
	SurfaceLoadStarted
	// SurfaceLoadFinished is reported when navigation completes.
	SurfaceLoadFinished
	// SurfaceLoadFailed is reported when navigation fails.
	SurfaceLoadFailed
)

func (k SurfaceEventKind) String() string {
	switch k {
	case SurfaceOpened:
		return "opened"
	case SurfaceClosed:
		return "closed"
	case SurfaceLoadStarted:
		return "load_started"
	case SurfaceLoadFinished:
		return "load_finished"
	case SurfaceLoadFailed:
		return "load_failed"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// SurfaceEvent is one lifecycle notification.
type SurfaceEvent struct {
	Kind      SurfaceEventKind
	SessionID string
	URL       string
	Detail    string
	At        time.Time
}
