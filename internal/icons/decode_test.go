package icons

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func sampleImage() image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	img.Set(1, 1, color.NRGBA{R: 255, A: 255})
	return img
}

func TestDecode_PNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, sampleImage()))
	require.NoError(t, f.Close())

	img, err := Decode(path)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 3), img.Bounds())
}

func TestDecode_BMP(t *testing.T) {
	path := filepath.Join(t.TempDir(), "b.bmp")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, bmp.Encode(f, sampleImage()))
	require.NoError(t, f.Close())

	img, err := Decode(path)
	require.NoError(t, err)
	assert.Equal(t, 4, img.Bounds().Dx())
}

func TestDecode_Missing(t *testing.T) {
	_, err := Decode(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}

func TestDecode_NotAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0644))

	_, err := Decode(path)
	assert.ErrorContains(t, err, "c.png")
}

func TestDecode_BadICO(t *testing.T) {
	path := filepath.Join(t.TempDir(), "d.ico")
	require.NoError(t, os.WriteFile(path, []byte{0, 0, 1}, 0644))

	_, err := Decode(path)
	assert.Error(t, err)
}
