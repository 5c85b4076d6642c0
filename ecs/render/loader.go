package render

import (
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// LoadFrames decodes every PNG in dir, ordered by file name, into a frame
// set. Frame files are expected to be named so that lexical order is play
// order (0.png, 1.png, ...); numeric names sort numerically.
func LoadFrames(fsys fs.FS, dir string) (*FrameSet, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("render: read %s: %w", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(path.Ext(entry.Name()), ".png") {
			continue
		}
		names = append(names, entry.Name())
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: %s has no png frames", ErrMissingFrames, dir)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := strings.TrimSuffix(names[i], path.Ext(names[i])), strings.TrimSuffix(names[j], path.Ext(names[j]))
		if len(a) != len(b) {
			return len(a) < len(b)
		}
		return a < b
	})

	images := make([]image.Image, 0, len(names))
	for _, name := range names {
		img, err := decode(fsys, path.Join(dir, name))
		if err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return NewFrameSet(images...), nil
}

// LoadLibrary walks root/<archetype>/<status>/*.png and registers every
// status directory it finds.
func LoadLibrary(fsys fs.FS, root string) (*Library, error) {
	lib := NewLibrary()
	archetypes, err := fs.ReadDir(fsys, root)
	if err != nil {
		return nil, fmt.Errorf("render: read %s: %w", root, err)
	}
	for _, archetype := range archetypes {
		if !archetype.IsDir() {
			continue
		}
		dir := path.Join(root, archetype.Name())
		statuses, err := fs.ReadDir(fsys, dir)
		if err != nil {
			return nil, fmt.Errorf("render: read %s: %w", dir, err)
		}
		for _, status := range statuses {
			if !status.IsDir() {
				continue
			}
			frames, err := LoadFrames(fsys, path.Join(dir, status.Name()))
			if err != nil {
				return nil, err
			}
			lib.Register(archetype.Name(), status.Name(), frames)
		}
	}
	return lib, nil
}

func decode(fsys fs.FS, name string) (image.Image, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("render: open %s: %w", name, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("render: decode %s: %w", name, err)
	}
	return img, nil
}
