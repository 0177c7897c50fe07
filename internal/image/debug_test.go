package imagepkg

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisualize(t *testing.T) {
	src := page(100, 100, image.Rect(40, 40, 60, 60))
	before := append([]uint8(nil), src.Pix...)
	style := DebugStyle{Stroke: 2, Color: blue}

	out, box, ok := Visualize(src, DefaultThreshold, style)
	require.True(t, ok)
	assert.Equal(t, BoundingBox{Left: 40, Top: 40, Right: 60, Bottom: 60}, box)
	assert.Equal(t, src.Bounds(), out.Bounds())

	tests := []struct {
		p    image.Point
		want color.NRGBA
	}{
		{image.Pt(40, 40), blue},
		{image.Pt(41, 41), blue},
		{image.Pt(60, 60), blue},
		{image.Pt(59, 50), blue},
		{image.Pt(50, 40), blue},
		{image.Pt(42, 42), black},
		{image.Pt(50, 50), black},
		{image.Pt(39, 39), white},
		{image.Pt(61, 61), white},
		{image.Pt(0, 0), white},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, out.NRGBAAt(tt.p.X, tt.p.Y), "pixel %v", tt.p)
	}

	assert.Equal(t, before, src.Pix, "source must not be modified")
}

func TestVisualizeEdgeAndTransparency(t *testing.T) {
	src := solid(50, 50, color.NRGBA{R: 255, G: 255, B: 255, A: 0})
	fillRect(src, image.Rect(45, 45, 50, 50), black)

	out, box, ok := Visualize(src, DefaultThreshold, DefaultDebugStyle())
	require.True(t, ok)
	assert.Equal(t, BoundingBox{Left: 45, Top: 45, Right: 50, Bottom: 50}, box)
	assert.Equal(t, DefaultDebugStyle().Color, color.Color(out.NRGBAAt(49, 49)))
	assert.Equal(t, white, out.NRGBAAt(0, 0), "copy is opaque")
}

func TestVisualizeNoContent(t *testing.T) {
	out, _, ok := Visualize(solid(20, 20, white), DefaultThreshold, DefaultDebugStyle())
	assert.False(t, ok)
	assert.Nil(t, out)
}
