package imagepkg

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// CanvasSpec describes the target geometry for a normalized page.
type CanvasSpec struct {
	Width      int
	Height     int
	Margin     int
	Background color.Color
	Threshold  int
}

// DefaultCanvasSpec returns the 1024x1024 white canvas with a 25px margin.
func DefaultCanvasSpec() CanvasSpec {
	return CanvasSpec{
		Width:      1024,
		Height:     1024,
		Margin:     25,
		Background: color.White,
		Threshold:  DefaultThreshold,
	}
}

func (s CanvasSpec) validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidCanvas, s.Width, s.Height)
	}
	if s.Margin < 0 || 2*s.Margin >= s.Width || 2*s.Margin >= s.Height {
		return fmt.Errorf("%w: margin %d on %dx%d", ErrInvalidCanvas, s.Margin, s.Width, s.Height)
	}
	return nil
}

// FitSize returns the largest content size with the aspect ratio of w x h that
// fits inside maxW x maxH. The limiting axis always lands exactly on its
// maximum; the other axis is floored.
func FitSize(w, h, maxW, maxH int) (int, int) {
	if maxW*h <= maxH*w {
		return maxW, max(1, h*maxW/w)
	}
	return max(1, w*maxH/h), maxH
}

// Normalize crops img to its subject and centers it on a fresh canvas of the
// configured size so the subject spans the full margin-respecting region
// along its limiting axis. The result is opaque.
func Normalize(img image.Image, spec CanvasSpec) (*image.NRGBA, error) {
	if err := spec.validate(); err != nil {
		return nil, err
	}
	box, ok := Locate(img, spec.Threshold)
	if !ok {
		return nil, fmt.Errorf("%w at threshold %d", ErrNoContentDetected, spec.Threshold)
	}

	cropped := opaque(imaging.Crop(toNRGBA(img), box.Rect()))
	w, h := FitSize(box.Width(), box.Height(), spec.Width-2*spec.Margin, spec.Height-2*spec.Margin)
	resized := imaging.Resize(cropped, w, h, imaging.Lanczos)

	bg := spec.Background
	if bg == nil {
		bg = color.White
	}
	canvas := imaging.New(spec.Width, spec.Height, bg)
	offset := image.Pt((spec.Width-w)/2, (spec.Height-h)/2)
	return imaging.Paste(canvas, resized, offset), nil
}

// opaque drops the alpha channel of img in place, keeping stored RGB values.
func opaque(img *image.NRGBA) *image.NRGBA {
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xff
	}
	return img
}
