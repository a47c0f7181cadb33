package skin

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_png(t *testing.T) {
	atlas := randomAtlas(t, ModernAtlasHeight, 11)
	front := ComposeFrontView(atlas)

	b, err := Encode(front, FormatPNG)
	require.NoError(t, err)

	decoded, err := png.Decode(bytes.NewReader(b))
	require.NoError(t, err)
	assert.Equal(t, front.Bounds(), decoded.Bounds())
	for y := 0; y < FrontViewHeight; y++ {
		for x := 0; x < FrontViewWidth; x++ {
			want := front.NRGBAAt(x, y)
			if want.A == 0 {
				// png does not keep the color of invisible pixels
				continue
			}
			got := color.NRGBAModel.Convert(decoded.At(x, y)).(color.NRGBA)
			require.Equal(t, want, got, "pixel (%d,%d)", x, y)
		}
	}
}

func TestEncode_rgb565(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{G: 255, A: 255})
	img.SetNRGBA(0, 1, color.NRGBA{B: 255, A: 128})
	img.SetNRGBA(1, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 0})

	b, err := Encode(img, FormatRGB565)
	require.NoError(t, err)
	require.Len(t, b, 4+2*2*2)

	assert.Equal(t, uint16(2), binary.BigEndian.Uint16(b[0:2]))
	assert.Equal(t, uint16(2), binary.BigEndian.Uint16(b[2:4]))
	assert.Equal(t, []byte{0xF8, 0x00}, b[4:6])
	assert.Equal(t, []byte{0x07, 0xE0}, b[6:8])
	assert.Equal(t, []byte{0x00, 0x1F}, b[8:10])
	assert.Equal(t, []byte{0x00, 0x00}, b[10:12])
}

func TestEncode_unknownFormat(t *testing.T) {
	_, err := Encode(image.NewNRGBA(image.Rect(0, 0, 1, 1)), Format(99))
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{input: "png", want: FormatPNG},
		{input: "rgb565", want: FormatRGB565},
		{input: "jpeg", want: FormatPNG, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			assert.Equal(t, tt.wantErr, err != nil)
			assert.Equal(t, tt.want, got)
			if !tt.wantErr {
				assert.Equal(t, tt.input, got.String())
			}
		})
	}
}
