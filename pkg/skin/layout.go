package skin

import "image"

const (
	// FrontViewWidth is the width of a composed front view
	FrontViewWidth = 16
	// FrontViewHeight is the height of a composed front view
	FrontViewHeight = 32

	// AtlasWidth is the width of every supported skin atlas
	AtlasWidth = 64
	// ModernAtlasHeight is the height of an atlas carrying a second layer
	ModernAtlasHeight = 64
	// LegacyAtlasHeight is the height of a single-layer atlas
	LegacyAtlasHeight = 32
)

// Region maps one body part of the atlas onto the front view.
// Overlay is empty when the part has no second layer in the layout.
type Region struct {
	Name    string
	Base    image.Rectangle
	Overlay image.Rectangle
	Dest    image.Point
}

// HasOverlay reports whether the region carries an alpha-tested second layer.
func (r Region) HasOverlay() bool {
	return !r.Overlay.Empty()
}

// Layout is the ordered list of regions composed into a front view.
type Layout [6]Region

func rect(x, y, w, h int) image.Rectangle {
	return image.Rect(x, y, x+w, y+h)
}

var (
	headBase     = rect(8, 8, 8, 8)
	bodyBase     = rect(20, 20, 8, 12)
	rightArmBase = rect(44, 20, 4, 12)
	rightLegBase = rect(4, 20, 4, 12)

	headDest     = image.Pt(4, 0)
	bodyDest     = image.Pt(4, 8)
	rightArmDest = image.Pt(0, 8)
	leftArmDest  = image.Pt(12, 8)
	rightLegDest = image.Pt(4, 20)
	leftLegDest  = image.Pt(8, 20)
)

// ModernLayout is used for 64x64 atlases, which carry independent left
// limbs and a second layer for every part.
var ModernLayout = Layout{
	{Name: "head", Base: headBase, Overlay: rect(40, 8, 8, 8), Dest: headDest},
	{Name: "body", Base: bodyBase, Overlay: rect(20, 36, 8, 12), Dest: bodyDest},
	{Name: "right_arm", Base: rightArmBase, Overlay: rect(44, 36, 4, 12), Dest: rightArmDest},
	{Name: "left_arm", Base: rect(36, 52, 4, 12), Overlay: rect(52, 52, 4, 12), Dest: leftArmDest},
	{Name: "right_leg", Base: rightLegBase, Overlay: rect(4, 36, 4, 12), Dest: rightLegDest},
	{Name: "left_leg", Base: rect(20, 52, 4, 12), Overlay: rect(4, 52, 4, 12), Dest: leftLegDest},
}

// LegacyLayout is used for 64x32 atlases. They have no second layer and
// no left limbs, so the left arm and leg reuse the right side's base.
var LegacyLayout = Layout{
	{Name: "head", Base: headBase, Dest: headDest},
	{Name: "body", Base: bodyBase, Dest: bodyDest},
	{Name: "right_arm", Base: rightArmBase, Dest: rightArmDest},
	{Name: "left_arm", Base: rightArmBase, Dest: leftArmDest},
	{Name: "right_leg", Base: rightLegBase, Dest: rightLegDest},
	{Name: "left_leg", Base: rightLegBase, Dest: leftLegDest},
}

// HasOverlayLayer reports whether the atlas is large enough to carry the
// second layer.
func HasOverlayLayer(atlas image.Image) bool {
	size := atlas.Bounds().Size()
	return size.Y >= ModernAtlasHeight && size.X >= AtlasWidth
}

// LayoutFor selects the layout matching the atlas geometry.
func LayoutFor(atlas image.Image) Layout {
	if HasOverlayLayer(atlas) {
		return ModernLayout
	}
	return LegacyLayout
}
