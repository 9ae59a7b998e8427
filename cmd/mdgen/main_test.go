package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "md", "foo"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "html"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "md", "foo", "foo.md"), []byte("# Hi"), 0644))
	return root
}

func TestRunGen(t *testing.T) {
	for _, flag := range []string{"--url", "-u"} {
		t.Run(flag, func(t *testing.T) {
			root := newRoot(t)
			var stdout, stderr bytes.Buffer

			code := run([]string{"gen", flag, root}, &stdout, &stderr)

			assert.Equal(t, 0, code, "stderr: %s", stderr.String())
			assert.FileExists(t, filepath.Join(root, "index.html"))
			assert.FileExists(t, filepath.Join(root, "html", "foo", "foo.html"))
			assert.Empty(t, stderr.String())
		})
	}
}

func TestRunGenMissingLayout(t *testing.T) {
	root := t.TempDir()
	var stdout, stderr bytes.Buffer

	code := run([]string{"gen", "--url", root}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stderr.String(), "md not found")
	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRunGenPageFailureStillSucceeds(t *testing.T) {
	root := newRoot(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, "md", "stray.txt"), []byte("x"), 0644))
	var stdout, stderr bytes.Buffer

	code := run([]string{"gen", "-u", root}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stderr.String(), "convert page failed")
	assert.FileExists(t, filepath.Join(root, "html", "foo", "foo.html"))
}

func TestRunGenIndexFailure(t *testing.T) {
	root := newRoot(t)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "index.html"), 0755))
	var stdout, stderr bytes.Buffer

	code := run([]string{"gen", "-u", root}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "error: gen: io: write index")
}

func TestRunArgumentErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no command", nil},
		{"missing url", []string{"gen"}},
		{"unknown command", []string{"serve", "--url", "."}},
		{"unknown flag", []string{"gen", "--url", ".", "--watch"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer

			code := run(tt.args, &stdout, &stderr)

			assert.Equal(t, 2, code)
			assert.Contains(t, stderr.String(), "error: argument: parse arguments")
		})
	}
}
