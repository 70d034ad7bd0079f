package cli

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "shotfix/internal/errors"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd("test")
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootConvertsPlain(t *testing.T) {
	src, dst := t.TempDir(), t.TempDir()
	writePNG(t, filepath.Join(src, "wide.png"), 40, 20)
	writePNG(t, filepath.Join(src, "square.png"), 20, 20)

	out, err := execute(t, "--plain", "-s", src, "-r", dst)
	require.NoError(t, err)

	assert.Contains(t, out, "Making copies of converted screenshots")
	assert.Contains(t, out, "Done. Converted 1 file.")
	assert.FileExists(t, filepath.Join(dst, "wide_fix.png"))
	assert.NoFileExists(t, filepath.Join(dst, "square_fix.png"))
}

func TestRootDryRunWritesNothing(t *testing.T) {
	src, dst := t.TempDir(), t.TempDir()
	writePNG(t, filepath.Join(src, "wide.png"), 40, 20)

	out, err := execute(t, "--dry-run", "-s", src, "-r", dst)
	require.NoError(t, err)

	assert.Contains(t, out, "Convert wide.png  40x20 -> 20x20")
	entries, err := os.ReadDir(dst)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRootDryRunVerboseShowsProgress(t *testing.T) {
	src, dst := t.TempDir(), t.TempDir()
	writePNG(t, filepath.Join(src, "a.png"), 40, 20)
	writePNG(t, filepath.Join(src, "b.png"), 40, 20)

	out, err := execute(t, "--dry-run", "-v", "-s", src, "-r", dst)
	require.NoError(t, err)
	assert.Contains(t, out, "Progress:  50%")
	assert.Contains(t, out, "Progress: 100%")
}

func TestRootRejectsInvalidText(t *testing.T) {
	src := t.TempDir()
	out, err := execute(t, "--plain", "-s", src, "-r", src, "--text", "bad text")
	require.Error(t, err)
	assert.Equal(t, appErrors.InvalidText, appErrors.KindOf(err))
	assert.Contains(t, out, "' ' is not allowed")
}

func TestRootRejectsMissingDirectory(t *testing.T) {
	src := t.TempDir()
	missing := filepath.Join(src, "missing")
	_, err := execute(t, "--plain", "-s", src, "-r", missing)
	require.Error(t, err)
	assert.Equal(t, appErrors.InvalidDirectory, appErrors.KindOf(err))
	assert.Equal(t, "Not an existing directory: "+missing, appErrors.UserMessage(err))
}

func TestDescribe(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "describe", "-s", dir, "-r", dir, "--rename-original", "--prefix", "--text", "old-")
	require.NoError(t, err)
	assert.Contains(t, out, "• Adding prefix \"old-\" to original image")
	assert.Contains(t, out, "• Ex: \"original.png\" -> \"old-original.png\"")

	out, err = execute(t, "describe", "-s", dir, "-r", dir, "--rename=false")
	require.NoError(t, err)
	assert.Contains(t, out, "• Replacing originals with converted screenshots")
}

func TestDescribeRejectsLongText(t *testing.T) {
	_, err := execute(t, "describe", "--text", "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	require.Error(t, err)
	assert.Equal(t, appErrors.InvalidText, appErrors.KindOf(err))
}
