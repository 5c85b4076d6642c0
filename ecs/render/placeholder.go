package render

import (
	"image"
	"image/color"
	"image/draw"
)

// Placeholder builds count frames of size w x h, each with an opaque body
// rectangle on a transparent background. It stands in for decoded art in
// tests and the demo.
func Placeholder(w, h, count int, body image.Rectangle, c color.RGBA) *FrameSet {
	if count <= 0 {
		count = 1
	}
	images := make([]image.Image, count)
	for i := range images {
		img := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.Draw(img, body.Intersect(img.Bounds()), &image.Uniform{C: c}, image.Point{}, draw.Src)
		images[i] = img
	}
	return NewFrameSet(images...)
}

// FillLibrary registers a placeholder frame set for every status in counts
// that the library does not already have.
func FillLibrary(lib *Library, archetype string, w, h int, body image.Rectangle, c color.RGBA, counts map[string]int) {
	for status, n := range counts {
		if _, ok := lib.Lookup(archetype, status); ok {
			continue
		}
		lib.Register(archetype, status, Placeholder(w, h, n, body, c))
	}
}
