// SPDX-License-Identifier: MIT

package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleWithResults(t *testing.T) {
	var buf bytes.Buffer
	Console(&buf, []string{
		"http://example.com/app.bak",
		"http://example.com/app.old",
	})

	want := "Possible backup files found:\n" +
		"http://example.com/app.bak\n" +
		"http://example.com/app.old\n"
	require.Equal(t, want, buf.String())
}

func TestConsoleEmpty(t *testing.T) {
	var buf bytes.Buffer
	Console(&buf, nil)
	require.Equal(t, "No backup files found.\n", buf.String())
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.txt")

	err := WriteFile(path, []string{
		"http://example.com/app.bak",
		"http://example.com/app~",
	})
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/app.bak\nhttp://example.com/app~\n", string(content))
}

func TestWriteFileReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.txt")
	require.NoError(t, os.WriteFile(path, []byte("stale content\n"), 0o644))

	require.NoError(t, WriteFile(path, []string{"http://example.com/app.bak"}))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/app.bak\n", string(content))
}

func TestWriteFileFailsOnMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "results.txt")
	err := WriteFile(path, []string{"http://example.com/app.bak"})
	require.Error(t, err)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
