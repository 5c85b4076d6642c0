package main

import (
	"context"
	"fmt"

	"github.com/milk9111/treasurehunt/prefabs"
)

type archetypeReport struct {
	Name     string         `yaml:"name"`
	Kind     string         `yaml:"kind"`
	Collider [2]float64     `yaml:"collider,flow"`
	Statuses []statusReport `yaml:"statuses"`
}

type statusReport struct {
	Status string   `yaml:"status"`
	Frames []string `yaml:"frames,flow"`
}

// build loads the named archetypes, or all of them when none are given,
// and collects per-frame opaque bounds as "x,y wxh". Frames with no opaque
// pixel report "empty".
func build(ctx context.Context, framesDir string, names ...string) ([]archetypeReport, error) {
	specs, err := prefabs.LoadArchetypes(ctx, names...)
	if err != nil {
		return nil, err
	}
	lib, err := prefabs.BuildLibrary(specs, framesDir)
	if err != nil {
		return nil, err
	}

	if len(names) == 0 {
		names = prefabs.DefaultArchetypes
	}
	out := make([]archetypeReport, 0, len(names))
	for _, name := range names {
		spec, ok := specs[prefabs.ArchetypeName(name)]
		if !ok {
			continue
		}
		a := archetypeReport{
			Name:     spec.Name,
			Kind:     spec.Kind,
			Collider: [2]float64{spec.Collider.Width, spec.Collider.Height},
		}
		for _, status := range spec.Statuses() {
			fs, ok := lib.Lookup(spec.Name, status)
			if !ok {
				return nil, fmt.Errorf("%s/%s: no frames", spec.Name, status)
			}
			s := statusReport{Status: status, Frames: make([]string, fs.Len())}
			for i := range s.Frames {
				b := fs.BoundsAt(i, false)
				if b.Empty() {
					s.Frames[i] = "empty"
					continue
				}
				s.Frames[i] = fmt.Sprintf("%d,%d %dx%d", b.Min.X, b.Min.Y, b.Dx(), b.Dy())
			}
			a.Statuses = append(a.Statuses, s)
		}
		out = append(out, a)
	}
	return out, nil
}
