package upload

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestSaveLogoResizesLargeImage(t *testing.T) {
	dir := t.TempDir()
	store := NewImageStore(dir, 512)

	url, err := store.SaveLogo(pngBytes(t, 1024, 512), "Company Logo.png")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/"))
	assert.True(t, strings.HasSuffix(url, ".jpg"))

	path := filepath.Join(dir, strings.TrimPrefix(url, "/uploads/"))
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 512, cfg.Width)
	assert.Equal(t, 256, cfg.Height)
}

func TestSaveLogoKeepsSmallImage(t *testing.T) {
	store := NewImageStore(t.TempDir(), 512)

	url, err := store.SaveLogo(pngBytes(t, 100, 80), "tiny.png")
	require.NoError(t, err)
	assert.NotEmpty(t, url)
}

func TestSaveLogoRejectsNonImage(t *testing.T) {
	store := NewImageStore(t.TempDir(), 512)

	_, err := store.SaveLogo([]byte("definitely not an image payload"), "a.txt")
	assert.Error(t, err)
}
