package ui

import (
	"os"
	"testing"
)

// TestInitTheme verifies the no-color switch and NO_COLOR handling.
func TestInitTheme(t *testing.T) {
	original := GetCurrentTheme()
	defer SetCurrentTheme(original)

	t.Run("flag disables colors", func(t *testing.T) {
		InitTheme(true)
		if GetCurrentTheme().Name != "none" {
			t.Errorf("theme = %q, want none", GetCurrentTheme().Name)
		}
		if ColorRed() != "" || ColorReset() != "" {
			t.Error("escape helpers should be empty without colors")
		}
	})

	t.Run("NO_COLOR disables colors", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		InitTheme(false)
		if GetCurrentTheme().Name != "none" {
			t.Errorf("theme = %q, want none", GetCurrentTheme().Name)
		}
	})

	t.Run("default is dark", func(t *testing.T) {
		InitTheme(false)
		if _, set := os.LookupEnv("NO_COLOR"); set {
			t.Skip("NO_COLOR set in the environment")
		}
		if GetCurrentTheme().Name != "dark" {
			t.Errorf("theme = %q, want dark", GetCurrentTheme().Name)
		}
	})
}

// TestSetTheme verifies name resolution.
func TestSetTheme(t *testing.T) {
	original := GetCurrentTheme()
	defer SetCurrentTheme(original)

	tests := []struct{ name, want string }{
		{"light", "light"},
		{"none", "none"},
		{"dark", "dark"},
		{"unknown", "dark"},
	}
	for _, tt := range tests {
		SetTheme(tt.name)
		if got := GetCurrentTheme().Name; got != tt.want {
			t.Errorf("SetTheme(%q) -> %q, want %q", tt.name, got, tt.want)
		}
	}
}

// TestStylesWithoutColor verifies cells pass through untouched.
func TestStylesWithoutColor(t *testing.T) {
	original := GetCurrentTheme()
	defer SetCurrentTheme(original)
	SetCurrentTheme(NoColorTheme)

	cells := map[string]string{
		"header":   StyleHeader("linear"),
		"estimate": StyleEstimate("   2ms", false),
		"infinite": StyleEstimate("   inf", true),
		"actual":   StyleActual("  10ms"),
		"dim":      StyleDim("|"),
	}
	want := map[string]string{
		"header":   "linear",
		"estimate": "   2ms",
		"infinite": "   inf",
		"actual":   "  10ms",
		"dim":      "|",
	}
	for k, got := range cells {
		if got != want[k] {
			t.Errorf("%s cell = %q, want %q", k, got, want[k])
		}
	}
}
