package receipt

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
	"image"

	"github.com/disintegration/imaging"
)

// LogoWidthPx is the logo width at 96 DPI across an A4-wide page.
const LogoWidthPx = 794

// LoadLogo reads a PNG or JPEG logo, scales it to the page width and returns
// it as a data URI ready for the receipt header.
func LoadLogo(path string) (template.URL, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("failed to open logo: %w", err)
	}
	return EncodeLogo(img, LogoWidthPx)
}

// EncodeLogo resizes img to width pixels, keeping its aspect ratio, and
// encodes it as a PNG data URI.
func EncodeLogo(img image.Image, width int) (template.URL, error) {
	if img.Bounds().Dx() != width {
		img = imaging.Resize(img, width, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return "", fmt.Errorf("failed to encode logo: %w", err)
	}
	return template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())), nil
}
