package imagepkg

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// DefaultThreshold only counts clearly dark strokes as ink.
const DefaultThreshold = 200

// BoundingBox is half-open on the right and bottom edges.
type BoundingBox struct {
	Left, Top, Right, Bottom int
}

func (b BoundingBox) Width() int  { return b.Right - b.Left }
func (b BoundingBox) Height() int { return b.Bottom - b.Top }

func (b BoundingBox) Rect() image.Rectangle {
	return image.Rect(b.Left, b.Top, b.Right, b.Bottom)
}

func (b BoundingBox) String() string {
	return fmt.Sprintf("(%d,%d,%d,%d)", b.Left, b.Top, b.Right, b.Bottom)
}

// Luminance converts 8-bit RGB to a single channel using ITU-R 601-2 weights
// in 16.16 fixed point. Alpha is ignored.
func Luminance(r, g, b uint8) uint8 {
	return uint8((uint32(r)*19595 + uint32(g)*38470 + uint32(b)*7471 + 0x8000) >> 16)
}

// Locate returns the tightest box around every pixel whose luminance is
// strictly below threshold. ok is false when no pixel qualifies; that is a
// signal to skip the image, not an error. Coordinates are relative to the
// image's top-left corner.
func Locate(img image.Image, threshold int) (box BoundingBox, ok bool) {
	src := toNRGBA(img)
	w, h := src.Rect.Dx(), src.Rect.Dy()

	left, top, right, bottom := w, h, -1, -1
	for y := 0; y < h; y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+w*4]
		for x := 0; x < w; x++ {
			p := row[x*4 : x*4+3]
			if int(Luminance(p[0], p[1], p[2])) >= threshold {
				continue
			}
			if x < left {
				left = x
			}
			if x > right {
				right = x
			}
			if y < top {
				top = y
			}
			bottom = y
		}
	}
	if right < 0 {
		return BoundingBox{}, false
	}
	return BoundingBox{Left: left, Top: top, Right: right + 1, Bottom: bottom + 1}, true
}

// toNRGBA returns img as non-premultiplied RGBA with its origin at (0,0).
func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		return n
	}
	return imaging.Clone(img)
}
