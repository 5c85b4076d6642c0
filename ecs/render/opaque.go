package render

import "image"

// OpaqueBounds returns the smallest rectangle containing every pixel with
// non-zero alpha, relative to the image's top-left corner. Fully
// transparent images yield an empty rectangle.
func OpaqueBounds(img image.Image) image.Rectangle {
	if img == nil {
		return image.Rectangle{}
	}
	b := img.Bounds()
	minX, minY := b.Max.X, b.Max.Y
	maxX, maxY := b.Min.X-1, b.Min.Y-1

	opaque := alphaFunc(img)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if !opaque(x, y) {
				continue
			}
			minX = min(minX, x)
			maxX = max(maxX, x)
			minY = min(minY, y)
			maxY = max(maxY, y)
		}
	}
	if maxX < minX || maxY < minY {
		return image.Rectangle{}
	}
	return image.Rect(minX-b.Min.X, minY-b.Min.Y, maxX+1-b.Min.X, maxY+1-b.Min.Y)
}

func alphaFunc(img image.Image) func(x, y int) bool {
	switch im := img.(type) {
	case *image.RGBA:
		return func(x, y int) bool { return im.Pix[im.PixOffset(x, y)+3] != 0 }
	case *image.NRGBA:
		return func(x, y int) bool { return im.Pix[im.PixOffset(x, y)+3] != 0 }
	case *image.Alpha:
		return func(x, y int) bool { return im.Pix[im.PixOffset(x, y)] != 0 }
	default:
		return func(x, y int) bool {
			_, _, _, a := img.At(x, y).RGBA()
			return a != 0
		}
	}
}
