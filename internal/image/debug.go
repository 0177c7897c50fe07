package imagepkg

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
)

// DebugStyle controls the outline drawn by Visualize.
type DebugStyle struct {
	Stroke int
	Color  color.Color
}

func DefaultDebugStyle() DebugStyle {
	return DebugStyle{Stroke: 5, Color: color.NRGBA{B: 0xff, A: 0xff}}
}

// Visualize draws the detected bounding box on an opaque copy of img.
// ok is false when nothing was detected; no image is produced then.
func Visualize(img image.Image, threshold int, style DebugStyle) (*image.NRGBA, BoundingBox, bool) {
	box, ok := Locate(img, threshold)
	if !ok {
		return nil, BoundingBox{}, false
	}

	out := opaque(imaging.Clone(img))
	stroke := max(style.Stroke, 1)
	ink := &image.Uniform{C: style.Color}

	// The outline covers the box edges inclusively and grows inward.
	outer := image.Rect(box.Left, box.Top, box.Right+1, box.Bottom+1)
	bands := []image.Rectangle{
		image.Rect(outer.Min.X, outer.Min.Y, outer.Max.X, outer.Min.Y+stroke),
		image.Rect(outer.Min.X, outer.Max.Y-stroke, outer.Max.X, outer.Max.Y),
		image.Rect(outer.Min.X, outer.Min.Y, outer.Min.X+stroke, outer.Max.Y),
		image.Rect(outer.Max.X-stroke, outer.Min.Y, outer.Max.X, outer.Max.Y),
	}
	for _, band := range bands {
		draw.Draw(out, band.Intersect(out.Rect), ink, image.Point{}, draw.Src)
	}
	return out, box, true
}
