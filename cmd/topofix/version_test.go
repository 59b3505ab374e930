package main

import (
	"runtime"
	"strings"
	"testing"
)

func TestVersionDefaults(t *testing.T) {
	// Test that version variables can be set and retrieved
	origVersion := Version
	origGitCommit := GitCommit
	origBuildDate := BuildDate

	// Set test values
	Version = "0.1.0-test"
	GitCommit = "abc123"
	BuildDate = "2026-08-21"

	// Verify values
	if Version != "0.1.0-test" {
		t.Errorf("Version = %q, want %q", Version, "0.1.0-test")
	}
	if GitCommit != "abc123" {
		t.Errorf("GitCommit = %q, want %q", GitCommit, "abc123")
	}
	if BuildDate != "2026-08-21" {
		t.Errorf("BuildDate = %q, want %q", BuildDate, "2026-08-21")
	}

	// Restore original values
	Version = origVersion
	GitCommit = origGitCommit
	BuildDate = origBuildDate
}

func TestVersionCommandExists(t *testing.T) {
	// Test that the version command is properly initialized
	if versionCmd == nil {
		t.Fatal("versionCmd is nil")
	}

	if versionCmd.Use != "version" {
		t.Errorf("versionCmd.Use = %q, want %q", versionCmd.Use, "version")
	}

	if versionCmd.Short == "" {
		t.Error("versionCmd.Short should not be empty")
	}

	if versionCmd.RunE == nil {
		t.Error("versionCmd.RunE should not be nil")
	}
}

func TestVersionInfoString(t *testing.T) {
	info := versionInfo{
		Version:   "1.2.3",
		GitCommit: "deadbeef",
		BuildDate: "2026-08-21",
		GoVersion: runtime.Version(),
		Platform:  "linux/amd64",
	}

	text := info.String()

	for _, want := range []string{
		"Topofix 1.2.3",
		"Git Commit: deadbeef",
		"Build Date: 2026-08-21",
		"OS/Arch: linux/amd64",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("versionInfo.String() missing %q:\n%s", want, text)
		}
	}
}
