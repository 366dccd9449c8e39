package blight

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TraceMyers/Blight/internal/errs"
)

// TestRedirectOnceOnMismatchedExtension covers spec §8 scenario 6: a file
// named with a .bmp extension whose first bytes are actually PNG's magic
// number. The dispatcher's structural BMP decode fails, triggers its
// single content-based redirect, and lands on FormatPng — which this
// implementation always declines with FormatDisabled (the REDESIGN FLAG
// fix recorded in DESIGN.md), not a successful PNG decode.
func TestRedirectOnceOnMismatchedExtension(t *testing.T) {
	dir := t.TempDir()
	const name = "mislabeled.bmp"
	buf := append([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, make([]byte, 32)...)
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), buf, 0o644))

	_, err := Load(dir, name, Infer, Options{LocalPath: true})
	require.Error(t, err)
	berr, ok := err.(*errs.Error)
	require.True(t, ok, "expected *errs.Error, got %T", err)
	assert.Equal(t, errs.FormatDisabled, berr.Kind)
}

func TestLoadRejectsDisallowedInputFormat(t *testing.T) {
	dir := t.TempDir()
	const name = "picture.bmp"
	buf := append([]byte{'B', 'M'}, make([]byte, 32)...)
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), buf, 0o644))

	opts := Options{LocalPath: true, InputFormatAllowed: map[Format]bool{FormatTga: true}}
	_, err := Load(dir, name, Infer, opts)
	require.Error(t, err)
	berr, ok := err.(*errs.Error)
	require.True(t, ok, "expected *errs.Error, got %T", err)
	assert.Equal(t, errs.InputFormatDisallowed, berr.Kind)
}
