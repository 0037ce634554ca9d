package version

import (
	"testing"

	"github.com/fatih/color"
)

func TestPlain(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()

	tests := []struct {
		in, want string
	}{
		{"1.2.3", "1.2.3"},
		{" 0.1.0-dev\n", "0.1.0-dev"},
		{"", "dev"},
	}
	for _, tt := range tests {
		Version = tt.in
		if got := Plain(); got != tt.want {
			t.Errorf("Plain() with Version=%q = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestColoredWithoutColor(t *testing.T) {
	origVersion, origNoColor := Version, color.NoColor
	defer func() { Version, color.NoColor = origVersion, origNoColor }()
	color.NoColor = true

	tests := []struct {
		in, want string
	}{
		{"1.2.3", "1.2.3"},
		{"0.1.0-dev", "0.1.0-dev"},
		{"1.0.0-rc.1", "1.0.0-rc.1"},
		{"nightly", "nightly"},
	}
	for _, tt := range tests {
		Version = tt.in
		if got := Colored(); got != tt.want {
			t.Errorf("Colored() with Version=%q = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestVersion_CanBeOverridden(t *testing.T) {
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	defer func() { Version, GitCommit, BuildDate = origVersion, origCommit, origDate }()

	// как при сборке с -ldflags
	Version = "1.2.3"
	GitCommit = "abc123def456"
	BuildDate = "2024-01-15T10:30:00Z"

	if Plain() != "1.2.3" {
		t.Errorf("Plain() = %q, want %q", Plain(), "1.2.3")
	}
	if GitCommit != "abc123def456" || BuildDate != "2024-01-15T10:30:00Z" {
		t.Errorf("overrides lost: %q %q", GitCommit, BuildDate)
	}
}
