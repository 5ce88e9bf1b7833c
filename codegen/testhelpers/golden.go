// Package testhelpers provides shared test utilities for codegen packages.
package testhelpers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// UpdateEnv is the environment variable that, when set to "1", rewrites golden
// files with the actual content instead of comparing.
const UpdateEnv = "UPDATE_GOLDEN"

// AssertGolden compares content with the golden file
// testdata/golden/<scenario>/<name>.
func AssertGolden(t *testing.T, scenario, name, content string) {
	t.Helper()
	AssertGoldenAbs(t, filepath.Join("testdata", "golden", scenario, name), content)
}

// AssertGoldenAbs compares content with the golden file at path.
func AssertGoldenAbs(t *testing.T, path, content string) {
	t.Helper()
	if os.Getenv(UpdateEnv) == "1" {
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		return
	}
	want, err := os.ReadFile(path) // #nosec G304 -- test helper reads golden files from testdata
	require.NoErrorf(t, err, "read golden %s (set %s=1 to create it)", path, UpdateEnv)
	require.Equal(t, string(want), content, "golden mismatch for %s", path)
}
