package skin

import (
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// ErrInvalidAtlas is returned by ValidateAtlas for images that are not a
// 64x64 or 64x32 skin.
var ErrInvalidAtlas = errors.New("invalid skin atlas")

// ValidateAtlas checks the atlas dimensions. ComposeFrontView does not
// validate its input, so callers holding untrusted images should call this
// first.
func ValidateAtlas(atlas image.Image) error {
	if atlas == nil {
		return fmt.Errorf("%w: nil image", ErrInvalidAtlas)
	}
	size := atlas.Bounds().Size()
	if size.X != AtlasWidth || (size.Y != ModernAtlasHeight && size.Y != LegacyAtlasHeight) {
		return fmt.Errorf("%w: %dx%d", ErrInvalidAtlas, size.X, size.Y)
	}
	return nil
}

// ComposeFrontView builds the 16x32 front view of a skin atlas.
//
// Every region's base rectangle is copied unconditionally, transparent
// pixels included. When the atlas has a second layer, the overlay
// rectangle is then copied over it, skipping pixels whose alpha is 0 and
// replacing the destination outright otherwise.
//
// The returned image is newly allocated and the atlas is not retained.
func ComposeFrontView(atlas image.Image) *image.NRGBA {
	src := toNRGBA(atlas)
	front := image.NewNRGBA(image.Rect(0, 0, FrontViewWidth, FrontViewHeight))

	for _, region := range LayoutFor(atlas) {
		blit(src, region.Base, front, region.Dest)
		if region.HasOverlay() {
			blitAlpha(src, region.Overlay, front, region.Dest)
		}
	}

	return front
}

// toNRGBA returns img itself when it is already non-premultiplied, so
// decoded PNG skins are read in place without copying.
func toNRGBA(img image.Image) *image.NRGBA {
	if nrgba, ok := img.(*image.NRGBA); ok {
		return nrgba
	}
	bounds := img.Bounds()
	nrgba := image.NewNRGBA(bounds)
	draw.Draw(nrgba, bounds, img, bounds.Min, draw.Src)
	return nrgba
}

func blit(src *image.NRGBA, sr image.Rectangle, dst *image.NRGBA, dp image.Point) {
	copyRect(src, sr, dst, dp, false)
}

func blitAlpha(src *image.NRGBA, sr image.Rectangle, dst *image.NRGBA, dp image.Point) {
	copyRect(src, sr, dst, dp, true)
}

// copyRect copies sr, given in atlas-local coordinates, to dp in dst.
// Parts of sr that fall outside the atlas are skipped.
func copyRect(src *image.NRGBA, sr image.Rectangle, dst *image.NRGBA, dp image.Point, alphaTest bool) {
	sr = sr.Add(src.Rect.Min)
	clipped := sr.Intersect(src.Rect)
	if clipped.Empty() {
		return
	}
	dp = dp.Add(clipped.Min.Sub(sr.Min))

	for y := 0; y < clipped.Dy(); y++ {
		for x := 0; x < clipped.Dx(); x++ {
			si := src.PixOffset(clipped.Min.X+x, clipped.Min.Y+y)
			pixel := src.Pix[si : si+4 : si+4]
			if alphaTest && pixel[3] == 0 {
				continue
			}
			dpx := image.Pt(dp.X+x, dp.Y+y)
			if !dpx.In(dst.Rect) {
				continue
			}
			di := dst.PixOffset(dpx.X, dpx.Y)
			copy(dst.Pix[di:di+4], pixel)
		}
	}
}
