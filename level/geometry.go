package level

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/treasurehunt/common"
)

// Geometry is the immutable set of solid rectangles of a level.
type Geometry struct {
	solids []common.Rect
	bounds cp.BB
}

// BuildGeometry merges contiguous solid tiles into as few rectangles as
// possible and appends any extra solids, such as blocking entities.
func BuildGeometry(l *Layout, extra ...common.Rect) *Geometry {
	g := &Geometry{}
	if l != nil {
		for _, bb := range mergeTiles(l) {
			g.add(common.RectFromBB(bb))
		}
	}
	for _, r := range extra {
		if !r.Empty() {
			g.add(r)
		}
	}
	return g
}

func (g *Geometry) add(r common.Rect) {
	if len(g.solids) == 0 {
		g.bounds = r.BB()
	} else {
		g.bounds = g.bounds.Merge(r.BB())
	}
	g.solids = append(g.solids, r)
}

// mergeTiles greedily expands each unprocessed solid tile to the right, then
// downward while the whole span stays solid.
func mergeTiles(l *Layout) []cp.BB {
	var out []cp.BB
	processed := make([]bool, l.Width*l.Height)
	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			idx := y*l.Width + x
			if processed[idx] {
				continue
			}
			if !l.Solid(x, y) {
				processed[idx] = true
				continue
			}

			w := 1
			for x+w < l.Width && !processed[y*l.Width+x+w] && l.Solid(x+w, y) {
				w++
			}
			h := 1
		heightLoop:
			for y+h < l.Height {
				for xi := x; xi < x+w; xi++ {
					if processed[(y+h)*l.Width+xi] || !l.Solid(xi, y+h) {
						break heightLoop
					}
				}
				h++
			}

			for yy := y; yy < y+h; yy++ {
				for xx := x; xx < x+w; xx++ {
					processed[yy*l.Width+xx] = true
				}
			}

			x0 := float64(x * common.TileSize)
			y0 := float64(y * common.TileSize)
			out = append(out, cp.BB{
				L: x0,
				B: y0,
				R: x0 + float64(w*common.TileSize),
				T: y0 + float64(h*common.TileSize),
			})
		}
	}
	return out
}

// Solids returns a copy of the solid rectangles.
func (g *Geometry) Solids() []common.Rect {
	if g == nil {
		return nil
	}
	return append([]common.Rect(nil), g.solids...)
}

// Bounds returns the box enclosing every solid.
func (g *Geometry) Bounds() common.Rect {
	if g == nil || len(g.solids) == 0 {
		return common.Rect{}
	}
	return common.RectFromBB(g.bounds)
}

// Overlapping returns the solids that overlap r. Touching edges do not
// count.
func (g *Geometry) Overlapping(r common.Rect) []common.Rect {
	if g == nil {
		return nil
	}
	var out []common.Rect
	for _, s := range g.solids {
		if s.Intersects(r) {
			out = append(out, s)
		}
	}
	return out
}

// Overlaps reports whether any solid overlaps r.
func (g *Geometry) Overlaps(r common.Rect) bool {
	if g == nil {
		return false
	}
	for _, s := range g.solids {
		if s.Intersects(r) {
			return true
		}
	}
	return false
}

// CollidePoint reports whether the point lies inside any solid.
func (g *Geometry) CollidePoint(x, y float64) bool {
	if g == nil {
		return false
	}
	for _, s := range g.solids {
		if s.ContainsPoint(x, y) {
			return true
		}
	}
	return false
}
