// Package testutil provides common test helpers for the durrrrrenv project.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TempEnvDir creates a temporary directory containing a .local_environment
// file with the given content and returns the directory path. Everything is
// cleaned up when the test finishes.
func TempEnvDir(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, ".local_environment")

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("TempEnvDir: write failed: %v", err)
	}

	return dir
}

// TempConfigFile creates a temporary config.toml with the given content
// and returns its path. The file is automatically cleaned up.
func TempConfigFile(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("TempConfigFile: write failed: %v", err)
	}

	return path
}

// TempStoreFile creates a temporary allowed.json with the given content
// and returns its path.
func TempStoreFile(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "allowed.json")

	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("TempStoreFile: write failed: %v", err)
	}

	return path
}

// TempVenv creates a <base>/<name>/bin/activate file so that a python_venv
// directive can compile. Returns the path of the activate script.
func TempVenv(t *testing.T, base, name string) string {
	t.Helper()

	binDir := filepath.Join(base, name, "bin")
	if err := os.MkdirAll(binDir, 0755); err != nil {
		t.Fatalf("TempVenv: mkdir failed: %v", err)
	}

	activate := filepath.Join(binDir, "activate")
	if err := os.WriteFile(activate, []byte("# venv activate\n"), 0644); err != nil {
		t.Fatalf("TempVenv: write failed: %v", err)
	}

	return activate
}
