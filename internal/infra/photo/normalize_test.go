package photo

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func makeTestImage(t *testing.T, w, h int, encode func(*bytes.Buffer, image.Image) error) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x += 10 {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	assert.NoError(t, encode(&buf, img))
	return buf.Bytes()
}

func decodeDataURI(t *testing.T, uri string) image.Image {
	t.Helper()
	assert.True(t, strings.HasPrefix(uri, "data:image/jpeg;base64,"))
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:image/jpeg;base64,"))
	assert.NoError(t, err)
	img, err := jpeg.Decode(bytes.NewReader(raw))
	assert.NoError(t, err)
	return img
}

func TestNormalizeShrinksLargePhoto(t *testing.T) {
	data := makeTestImage(t, 1600, 1200, func(b *bytes.Buffer, img image.Image) error {
		return jpeg.Encode(b, img, nil)
	})

	uri, err := NewNormalizer().Normalize(data)
	assert.NoError(t, err)

	out := decodeDataURI(t, uri)
	assert.LessOrEqual(t, out.Bounds().Dx(), 800)
	assert.LessOrEqual(t, out.Bounds().Dy(), 800)
	// Aspect ratio preserved: 4:3 input stays 4:3.
	assert.Equal(t, 800, out.Bounds().Dx())
	assert.Equal(t, 600, out.Bounds().Dy())
}

func TestNormalizeKeepsSmallPhoto(t *testing.T) {
	data := makeTestImage(t, 320, 240, func(b *bytes.Buffer, img image.Image) error {
		return png.Encode(b, img)
	})

	uri, err := NewNormalizer().Normalize(data)
	assert.NoError(t, err)

	out := decodeDataURI(t, uri)
	assert.Equal(t, 320, out.Bounds().Dx())
	assert.Equal(t, 240, out.Bounds().Dy())
}

func TestNormalizeRejectsGarbage(t *testing.T) {
	_, err := NewNormalizer().Normalize([]byte("definitely not an image"))
	assert.Error(t, err)
}
