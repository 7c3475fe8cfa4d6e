package main

import (
	"testing"

	"liblog/cmd"
)

func TestVersion(t *testing.T) {
	// Test default version
	if version != "dev" {
		t.Errorf("Expected default version to be 'dev', got %s", version)
	}

	// Test setting version
	testVersion := "1.2.3"
	version = testVersion
	if version != testVersion {
		t.Errorf("Expected version to be %s, got %s", testVersion, version)
	}

	// Reset version
	version = "dev"
}

func TestSetVersionIntegration(t *testing.T) {
	// Save original version
	originalVersion := version
	defer func() { version = originalVersion }()

	// Test that SetVersion accepts the formats build tooling produces
	for _, v := range []string{"dev", "1.0.0", "v2.0.0-rc1"} {
		version = v
		cmd.SetVersion(version)
	}
}
