package imagepkg

import (
	"fmt"
	"image"
	"image/color"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// Panel styles in their canonical order. Each is stored as <style>.png.
var Styles = []string{"outline", "pencil", "paint"}

// HeaderFile is the name of the composed output inside a subject folder.
const HeaderFile = "header.png"

// DefaultPanelSize yields a 1200x400 header.
var DefaultPanelSize = image.Pt(400, 400)

// Panel is one style variant of a subject.
type Panel struct {
	Style string
	Image image.Image
}

// PanelFiles returns the expected panel filenames in canonical order.
func PanelFiles() []string {
	files := make([]string, len(Styles))
	for i, s := range Styles {
		files[i] = s + ".png"
	}
	return files
}

// MissingPanels returns the panel filenames not present in folder.
func MissingPanels(folder string) []string {
	var missing []string
	for _, name := range PanelFiles() {
		if _, err := os.Stat(filepath.Join(folder, name)); err != nil {
			missing = append(missing, name)
		}
	}
	return missing
}

// ComposePanels lays panels side by side in an order drawn from rng, each
// resized to size, and alpha-composites template over the strip. The template
// is resized (never cropped) when its size differs from the strip; the
// template value itself is left untouched. The returned order lists the
// panel styles left to right.
func ComposePanels(panels []Panel, template image.Image, size image.Point, rng *rand.Rand) (*image.NRGBA, []string) {
	shuffled := make([]Panel, len(panels))
	copy(shuffled, panels)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	W, H := size.X*len(shuffled), size.Y
	canvas := imaging.New(W, H, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0})

	order := make([]string, len(shuffled))
	for i, p := range shuffled {
		resized := imaging.Resize(p.Image, size.X, size.Y, imaging.Lanczos)
		canvas = imaging.Paste(canvas, resized, image.Pt(i*size.X, 0))
		order[i] = p.Style
	}

	if template == nil {
		return canvas, order
	}
	overlay := template
	if template.Bounds().Size() != canvas.Bounds().Size() {
		overlay = imaging.Resize(template, W, H, imaging.Lanczos)
	}
	return imaging.Overlay(canvas, overlay, image.Pt(0, 0), 1.0), order
}

// ComposeHeader builds the header for one subject folder. All three panels
// must be present; otherwise a *MissingPanelError naming exactly the absent
// files is returned and nothing is composed. The template is read from disk
// on every call.
func ComposeHeader(folder, templatePath string, size image.Point, rng *rand.Rand) (*image.NRGBA, []string, error) {
	if missing := MissingPanels(folder); len(missing) > 0 {
		return nil, nil, &MissingPanelError{Folder: folder, Files: missing}
	}

	panels := make([]Panel, 0, len(Styles))
	for _, style := range Styles {
		img, err := Load(filepath.Join(folder, style+".png"))
		if err != nil {
			return nil, nil, err
		}
		panels = append(panels, Panel{Style: style, Image: imaging.Clone(img)})
	}

	template, err := LoadTemplate(templatePath)
	if err != nil {
		return nil, nil, err
	}

	out, order := ComposePanels(panels, template, size, rng)
	return out, order, nil
}

// LoadTemplate reads the overlay template. Failures wrap ErrTemplateLoad.
func LoadTemplate(path string) (*image.NRGBA, error) {
	img, err := Load(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateLoad, err)
	}
	return imaging.Clone(img), nil
}
