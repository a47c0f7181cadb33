package skin

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"image/png"
)

// Format is the pixel encoding used to ship a front view.
type Format int

const (
	// FormatPNG encodes the image as a PNG file
	FormatPNG Format = iota
	// FormatRGB565 encodes a big-endian uint16 width and height followed by
	// one big-endian RGB565 value per pixel, row by row
	FormatRGB565
)

func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatRGB565:
		return "rgb565"
	default:
		return "unknown"
	}
}

// ParseFormat parses a format name. Valid formats are: png, rgb565.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "png":
		return FormatPNG, nil
	case "rgb565":
		return FormatRGB565, nil
	default:
		return FormatPNG, fmt.Errorf("unknown skin format: %s", s)
	}
}

// Encode serializes img in the given format.
func Encode(img image.Image, format Format) ([]byte, error) {
	switch format {
	case FormatPNG:
		return encodePNG(img)
	case FormatRGB565:
		return encodeRGB565(img)
	default:
		return nil, fmt.Errorf("unsupported skin format: %d", format)
	}
}

func encodePNG(img image.Image) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := png.Encode(buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode png: %v", err)
	}
	return buf.Bytes(), nil
}

func encodeRGB565(img image.Image) ([]byte, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width > 0xFFFF || height > 0xFFFF {
		return nil, fmt.Errorf("image too large for rgb565 header: %dx%d", width, height)
	}

	out := make([]byte, 4, 4+width*height*2)
	binary.BigEndian.PutUint16(out[0:2], uint16(width))
	binary.BigEndian.PutUint16(out[2:4], uint16(height))
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			out = binary.BigEndian.AppendUint16(out, RGB565(c))
		}
	}
	return out, nil
}

// RGB565 packs a color into 16 bits. Fully transparent pixels become black,
// the display's background; other pixels keep their color and lose alpha.
func RGB565(c color.NRGBA) uint16 {
	if c.A == 0 {
		return 0
	}
	return uint16(c.R>>3)<<11 | uint16(c.G>>2)<<5 | uint16(c.B>>3)
}
