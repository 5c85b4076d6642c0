package render

import "image"

// FrameSet is one decoded animation: an ordered image sequence plus the
// opaque-pixel bounds of every frame, relative to the frame's top-left.
type FrameSet struct {
	Images []image.Image
	Bounds []image.Rectangle
	Size   image.Point
}

// NewFrameSet scans every image for its opaque bounds. Size is taken from
// the first frame; frames are expected to share it.
func NewFrameSet(images ...image.Image) *FrameSet {
	fs := &FrameSet{
		Images: images,
		Bounds: make([]image.Rectangle, len(images)),
	}
	for i, img := range images {
		if img == nil {
			continue
		}
		if i == 0 {
			fs.Size = img.Bounds().Size()
		}
		fs.Bounds[i] = OpaqueBounds(img)
	}
	return fs
}

// Len returns the number of frames.
func (fs *FrameSet) Len() int {
	if fs == nil {
		return 0
	}
	return len(fs.Images)
}

// Frame returns the image at index i, clamped to the sequence.
func (fs *FrameSet) Frame(i int) image.Image {
	if fs.Len() == 0 {
		return nil
	}
	return fs.Images[clampIndex(i, len(fs.Images))]
}

// BoundsAt returns the opaque bounds at index i, optionally mirrored
// horizontally within the frame.
func (fs *FrameSet) BoundsAt(i int, flipped bool) image.Rectangle {
	if fs.Len() == 0 {
		return image.Rectangle{}
	}
	b := fs.Bounds[clampIndex(i, len(fs.Bounds))]
	if !flipped || b.Empty() {
		return b
	}
	return image.Rect(fs.Size.X-b.Max.X, b.Min.Y, fs.Size.X-b.Min.X, b.Max.Y)
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
