package imagepkg

import (
	"image"
	"image/color"
)

var (
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	black = color.NRGBA{A: 255}
)

// solid returns a w x h image filled with c. Pixels are stored as given,
// so fully transparent colors keep their RGB values.
func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	fillRect(img, img.Rect, c)
	return img
}

// fillRect paints r on img with c.
func fillRect(img *image.NRGBA, r image.Rectangle, c color.NRGBA) {
	r = r.Intersect(img.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}

// page returns a white w x h page with a black rectangle at r.
func page(w, h int, r image.Rectangle) *image.NRGBA {
	img := solid(w, h, white)
	fillRect(img, r, black)
	return img
}
