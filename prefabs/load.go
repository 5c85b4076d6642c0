package prefabs

import (
	"context"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/milk9111/treasurehunt/ecs/render"
	"golang.org/x/sync/errgroup"
)

// LoadArchetypes loads the named prefabs concurrently. The first failure
// cancels the rest and is returned.
func LoadArchetypes(ctx context.Context, names ...string) (map[string]*ArchetypeSpec, error) {
	if len(names) == 0 {
		names = DefaultArchetypes
	}
	var (
		mu    sync.Mutex
		specs = make(map[string]*ArchetypeSpec, len(names))
	)
	g, ctx := errgroup.WithContext(ctx)
	for _, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			spec, err := LoadArchetype(name)
			if err != nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			if _, dup := specs[spec.Name]; dup {
				return fmt.Errorf("%w: duplicate archetype %q", ErrInvalidSpec, spec.Name)
			}
			specs[spec.Name] = spec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return specs, nil
}

// Fingerprint hashes the current bytes of a prefab so callers can skip
// rebuilding when a watched file was touched without changing.
func Fingerprint(name string) (uint64, error) {
	data, err := Load(FileName(name))
	if err != nil {
		return 0, fmt.Errorf("prefabs: fingerprint %s: %w", name, err)
	}
	return xxhash.Sum64(data), nil
}

// Placeholders registers generated frames for every state of spec that
// lib does not already provide.
func Placeholders(lib *render.Library, spec *ArchetypeSpec) {
	if lib == nil || spec == nil {
		return
	}
	w, h := spec.Frame.Width, spec.Frame.Height
	if w <= 0 || h <= 0 {
		w, h = int(spec.Collider.Width), int(spec.Collider.Height)
	}
	counts := make(map[string]int, len(spec.States))
	for status, st := range spec.States {
		counts[status] = max(st.Frames, 1)
	}
	frame := spec.Frame
	frame.Width, frame.Height = w, h
	render.FillLibrary(lib, spec.Name, w, h, frame.FrameBody(), frame.RGBA(), counts)
}

// BuildLibrary decodes frames from dir when it is set, then fills every
// status the specs name but dir lacks with placeholders.
func BuildLibrary(specs map[string]*ArchetypeSpec, dir string) (*render.Library, error) {
	lib := render.NewLibrary()
	if dir != "" {
		var err error
		lib, err = render.LoadLibrary(os.DirFS(dir), ".")
		if err != nil {
			return nil, err
		}
	}
	for _, name := range sortedNames(specs) {
		Placeholders(lib, specs[name])
	}
	return lib, nil
}

func sortedNames(specs map[string]*ArchetypeSpec) []string {
	out := make([]string, 0, len(specs))
	for name := range specs {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
