package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/milk9111/treasurehunt/level"
)

//go:embed *.json
var LevelsFS embed.FS

// Load reads an embedded level by basename; the .json suffix is optional.
func Load(name string) (*level.Layout, error) {
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}
	layout, err := level.LoadLayoutFS(LevelsFS, name)
	if err != nil {
		return nil, err
	}
	if layout.Name == "" {
		layout.Name = strings.TrimSuffix(path.Base(name), ".json")
	}
	return layout, nil
}

// Names lists the embedded levels without their suffix.
func Names() ([]string, error) {
	entries, err := fs.ReadDir(LevelsFS, ".")
	if err != nil {
		return nil, fmt.Errorf("levels: list: %w", err)
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		out = append(out, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(out)
	return out, nil
}
