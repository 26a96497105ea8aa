// Package testutil provides test helpers for CLI tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

// EnvVars are the environment variables the CLI reads. IsolateEnv clears them.
var EnvVars = []string{
	"ZERO_APP_CONFIG",
	"ZERO_APP_REGION",
	"ZERO_APP_PACKAGE_MANAGER",
	"ZERO_APP_TEMPLATE_DIR",
	"ZERO_APP_LOG_TIMESTAMPS",
}

// IsolateEnv unsets every CLI environment variable for the duration of the
// test and points the config file at a path that does not exist.
func IsolateEnv(t *testing.T) {
	t.Helper()
	for _, name := range EnvVars {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
	t.Setenv("ZERO_APP_CONFIG", filepath.Join(t.TempDir(), "missing-config.yaml"))
}

// WriteFile creates a file with the given content in the specified directory.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// WriteFiles writes every slash-separated path in files below dir.
func WriteFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		WriteFile(t, dir, filepath.FromSlash(name), content)
	}
}

// ReadTree returns every regular file below root keyed by slash-separated
// relative path.
func ReadTree(t *testing.T, fsys afero.Fs, root string) map[string]string {
	t.Helper()
	tree := make(map[string]string)
	err := afero.Walk(fsys, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		data, err := afero.ReadFile(fsys, path)
		if err != nil {
			return err
		}
		tree[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	if err != nil {
		t.Fatalf("failed to read tree %s: %v", root, err)
	}
	return tree
}
