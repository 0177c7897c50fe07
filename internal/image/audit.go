package imagepkg

import "image"

const (
	// DefaultAuditThreshold counts any pixel that is not pure white.
	DefaultAuditThreshold = 255
	// DefaultAcceptOccupancy is the occupancy below which a page is flagged.
	DefaultAcceptOccupancy = 0.85
	DefaultAuditCanvas     = 1024
)

// Occupancy reports how much of a canvas a subject spans.
type Occupancy struct {
	Found         bool
	Fraction      float64
	ContentWidth  int
	ContentHeight int
}

// Small reports whether the subject was found and spans less than accept.
func (o Occupancy) Small(accept float64) bool {
	return o.Found && o.Fraction < accept
}

// Audit measures the subject of img against a square canvas of canvasSize
// pixels. It never modifies img. A non-positive canvasSize reports nothing found.
func Audit(img image.Image, canvasSize, threshold int) Occupancy {
	box, ok := Locate(img, threshold)
	if !ok || canvasSize <= 0 {
		return Occupancy{}
	}
	w, h := box.Width(), box.Height()
	return Occupancy{
		Found:         true,
		Fraction:      float64(max(w, h)) / float64(canvasSize),
		ContentWidth:  w,
		ContentHeight: h,
	}
}
