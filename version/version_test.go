package version

import "testing"

func TestGetFullVersion(t *testing.T) {
	if got := GetFullVersion(); got != "dev" {
		t.Errorf("expected dev, got %s", got)
	}

	Version, GitCommit, BuildDate = "1.2.0", "abc123", "2026-01-02"
	defer func() { Version, GitCommit, BuildDate = "dev", "unknown", "unknown" }()

	want := "1.2.0 (commit abc123, built 2026-01-02)"
	if got := GetFullVersion(); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
	if got := GetVersion(); got != "1.2.0" {
		t.Errorf("expected 1.2.0, got %s", got)
	}
}
