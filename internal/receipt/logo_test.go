package receipt

import (
	"bytes"
	"encoding/base64"
	"image/color"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLogo(t *testing.T, uri string) (int, int) {
	t.Helper()
	const prefix = "data:image/png;base64,"
	require.True(t, strings.HasPrefix(uri, prefix))

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, prefix))
	require.NoError(t, err)
	img, err := imaging.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	return img.Bounds().Dx(), img.Bounds().Dy()
}

func TestEncodeLogo(t *testing.T) {
	img := imaging.New(400, 100, color.NRGBA{R: 26, G: 45, B: 68, A: 255})

	uri, err := EncodeLogo(img, 200)
	require.NoError(t, err)

	w, h := decodeLogo(t, string(uri))
	assert.Equal(t, 200, w)
	assert.Equal(t, 50, h)
}

func TestLoadLogo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logo.png")
	require.NoError(t, imaging.Save(imaging.New(397, 100, color.White), path))

	uri, err := LoadLogo(path)
	require.NoError(t, err)

	w, h := decodeLogo(t, string(uri))
	assert.Equal(t, LogoWidthPx, w)
	assert.Equal(t, 200, h)
}

func TestLoadLogo_Missing(t *testing.T) {
	_, err := LoadLogo(filepath.Join(t.TempDir(), "nope.png"))
	assert.Error(t, err)
}
