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

package config_test

import (
	"testing"

	"github.com/tiagolopescerillion/mobile-app-2.0/apis"
	"github.com/tiagolopescerillion/mobile-app-2.0/config"
)

func TestDefaultConfigValues(t *testing.T) {
	got := config.DefaultConfig()

	if got.Sentinel != config.DefaultSentinel {
		t.Fatalf("Sentinel = %q, want %q", got.Sentinel, config.DefaultSentinel)
	}
	if got.PathSeparator != config.DefaultPathSeparator {
		t.Fatalf("PathSeparator = %q, want %q", got.PathSeparator, config.DefaultPathSeparator)
	}
	if got.MaxDepth != config.DefaultMaxDepth {
		t.Fatalf("MaxDepth = %d, want %d", got.MaxDepth, config.DefaultMaxDepth)
	}
	if got.DefaultMode != apis.Light {
		t.Fatalf("DefaultMode = %v, want light", got.DefaultMode)
	}
	if got.FocusParam != "mode" || got.FocusValue != "focus" {
		t.Fatalf("focus = %s=%s, want mode=focus", got.FocusParam, got.FocusValue)
	}
}

func TestNewConfig_NoOptions_EqualsDefault(t *testing.T) {
	def := config.DefaultConfig()
	got := config.NewConfig()
	if got != def {
		t.Fatalf("NewConfig() = %+v, want default %+v", got, def)
	}
}

func TestWithSentinel(t *testing.T) {
	c := config.NewConfig(config.WithSentinel("@"))
	if c.Sentinel != "@" {
		t.Fatalf("Sentinel = %q, want @", c.Sentinel)
	}

	c2 := config.NewConfig(config.WithSentinel("  "))
	if c2.Sentinel != config.DefaultSentinel {
		t.Fatalf("blank Sentinel = %q, want default", c2.Sentinel)
	}
}

func TestWithPathSeparator(t *testing.T) {
	c := config.NewConfig(config.WithPathSeparator("/"))
	if c.PathSeparator != "/" {
		t.Fatalf("PathSeparator = %q, want /", c.PathSeparator)
	}
}

func TestWithMaxDepth_Positive(t *testing.T) {
	c := config.NewConfig(config.WithMaxDepth(3))
	if c.MaxDepth != 3 {
		t.Fatalf("MaxDepth = %d, want 3", c.MaxDepth)
	}
}

func TestWithMaxDepth_NonPositive_ResetsToDefault(t *testing.T) {
	for _, n := range []int{0, -1} {
		c := config.NewConfig(config.WithMaxDepth(n))
		if c.MaxDepth != config.DefaultMaxDepth {
			t.Fatalf("MaxDepth(%d) = %d, want default %d", n, c.MaxDepth, config.DefaultMaxDepth)
		}
	}
}

func TestWithDefaultMode(t *testing.T) {
	c := config.NewConfig(config.WithDefaultMode(apis.Dark))
	if c.DefaultMode != apis.Dark {
		t.Fatalf("DefaultMode = %v, want dark", c.DefaultMode)
	}

	// Out-of-range modes are clamped back to the default.
	c2 := config.NewConfig(config.WithDefaultMode(apis.Mode(9)))
	if c2.DefaultMode != config.DefaultMode {
		t.Fatalf("DefaultMode = %v, want default", c2.DefaultMode)
	}
}

func TestWithFocusParam(t *testing.T) {
	c := config.NewConfig(config.WithFocusParam("view", "embedded"))
	if c.FocusParam != "view" || c.FocusValue != "embedded" {
		t.Fatalf("focus = %s=%s, want view=embedded", c.FocusParam, c.FocusValue)
	}

	c2 := config.NewConfig(config.WithFocusParam("", "x"))
	if c2.FocusParam != config.DefaultFocusParam || c2.FocusValue != config.DefaultFocusValue {
		t.Fatalf("empty name: focus = %s=%s, want defaults", c2.FocusParam, c2.FocusValue)
	}
}

func TestOptionsOrder_LastWins(t *testing.T) {
	c := config.NewConfig(
		config.WithSentinel("@"),
		config.WithSentinel("$"),
		config.WithMaxDepth(2),
		config.WithMaxDepth(5),
		config.WithDefaultMode(apis.Light),
		config.WithDefaultMode(apis.Dark),
	)

	if c.Sentinel != "$" {
		t.Errorf("Sentinel = %q, want $ (last option wins)", c.Sentinel)
	}
	if c.MaxDepth != 5 {
		t.Errorf("MaxDepth = %d, want 5 (last option wins)", c.MaxDepth)
	}
	if c.DefaultMode != apis.Dark {
		t.Errorf("DefaultMode = %v, want dark (last option wins)", c.DefaultMode)
	}
}
