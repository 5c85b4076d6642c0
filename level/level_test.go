package level

import (
	"testing"
	"testing/fstest"

	"github.com/milk9111/treasurehunt/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGeometryMergesTiles(t *testing.T) {
	layout, err := FromRows([]string{
		"......",
		"..##..",
		"######",
		"######",
	}, nil)
	require.NoError(t, err)

	g := BuildGeometry(layout)
	solids := g.Solids()
	require.Len(t, solids, 3)
	assert.Equal(t, common.Rect{X: 128, Y: 64, Width: 128, Height: 192}, solids[0])
	assert.Equal(t, common.Rect{X: 0, Y: 128, Width: 128, Height: 128}, solids[1])
	assert.Equal(t, common.Rect{X: 256, Y: 128, Width: 128, Height: 128}, solids[2])
	assert.Equal(t, common.Rect{X: 0, Y: 64, Width: 384, Height: 192}, g.Bounds())
}

func TestBuildGeometryExtraSolids(t *testing.T) {
	layout, err := FromRows([]string{"..", "##"}, nil)
	require.NoError(t, err)

	block := common.Rect{X: 10, Y: 10, Width: 20, Height: 20}
	g := BuildGeometry(layout, block, common.Rect{})
	assert.Len(t, g.Solids(), 2)
	assert.True(t, g.Overlaps(common.Rect{X: 15, Y: 15, Width: 1, Height: 1}))
}

func TestGeometryQueries(t *testing.T) {
	layout, err := FromRows([]string{"...", "###"}, nil)
	require.NoError(t, err)
	g := BuildGeometry(layout)

	resting := common.Rect{X: 10, Y: 34, Width: 20, Height: 30}
	assert.False(t, g.Overlaps(resting), "touching the floor is not overlap")
	assert.Len(t, g.Overlapping(resting.Offset(0, 1)), 1)

	assert.True(t, g.CollidePoint(0, 64))
	assert.False(t, g.CollidePoint(0, 63.5))
	assert.False(t, g.CollidePoint(192, 100), "right edge is exclusive")
}

func TestFromRowsPlacements(t *testing.T) {
	layout, err := FromRows([]string{
		"P..T",
		"####",
	}, map[rune]string{'P': "player", 'T': "tooth:left"})
	require.NoError(t, err)

	require.Len(t, layout.Placements, 2)
	assert.Equal(t, Placement{Archetype: "player", Col: 0, Row: 0}, layout.Placements[0])
	assert.Equal(t, Placement{Archetype: "tooth", Col: 3, Row: 0, Facing: "left"}, layout.Placements[1])

	x, y := layout.Placements[1].Anchor()
	assert.Equal(t, 224.0, x)
	assert.Equal(t, 64.0, y)
}

func TestFromRowsUnknownRune(t *testing.T) {
	_, err := FromRows([]string{"X"}, nil)
	assert.ErrorIs(t, err, ErrInvalidLayout)
}

func TestParseLayout(t *testing.T) {
	cases := []struct {
		name    string
		json    string
		wantErr bool
	}{
		{"tiles", `{"width":2,"height":1,"tiles":[1,0],"placements":[{"archetype":"player","col":1,"row":0}]}`, false},
		{"rows", `{"rows":["P.","##"],"legend":{"P":"player"}}`, false},
		{"bad_dimensions", `{"width":0,"height":1}`, true},
		{"tile_count", `{"width":2,"height":2,"tiles":[1]}`, true},
		{"placement_outside", `{"width":1,"height":1,"tiles":[0],"placements":[{"archetype":"coin","col":3,"row":0}]}`, true},
		{"bad_json", `{`, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			layout, err := ParseLayout([]byte(c.json))
			if c.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, layout.Placements)
		})
	}
}

func TestLoadLayoutFS(t *testing.T) {
	fsys := fstest.MapFS{"demo.json": {Data: []byte(`{"rows":["..","##"]}`)}}
	layout, err := LoadLayoutFS(fsys, "demo.json")
	require.NoError(t, err)
	assert.Equal(t, 2, layout.Width)

	_, err = LoadLayoutFS(fsys, "missing.json")
	assert.Error(t, err)
}
