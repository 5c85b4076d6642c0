package main

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/treasurehunt/common"
	"github.com/milk9111/treasurehunt/ecs/component"
)

var (
	backgroundColor = color.RGBA{R: 0x1d, G: 0x2b, B: 0x38, A: 0xff}
	solidColor      = color.RGBA{R: 0x5a, G: 0x4a, B: 0x3a, A: 0xff}
	boxColor        = color.RGBA{R: 0x00, G: 0xff, B: 0x00, A: 0xc8}
	hitboxColor     = color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xc8}

	hudFace ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
)

// imageCache uploads decoded frames to the GPU once.
type imageCache struct {
	images map[image.Image]*ebiten.Image
}

func newImageCache() *imageCache {
	return &imageCache{images: make(map[image.Image]*ebiten.Image)}
}

func (c *imageCache) get(img image.Image) *ebiten.Image {
	if img == nil {
		return nil
	}
	if e, ok := c.images[img]; ok {
		return e
	}
	e := ebiten.NewImageFromImage(img)
	c.images[img] = e
	return e
}

func (c *imageCache) reset() {
	for _, img := range c.images {
		img.Deallocate()
	}
	clear(c.images)
}

// camera centers the player, clamped to the level bounds.
func (g *Game) camera() (float64, float64) {
	bounds := common.Rect{
		Width:  float64(g.layout.Width * common.TileSize),
		Height: float64(g.layout.Height * common.TileSize),
	}
	var px, py float64
	for _, sp := range g.sim.Sprites() {
		if sp.Entity == g.sim.Player() {
			px, py = sp.Box.CenterX(), sp.Box.CenterY()
		}
	}
	camX := common.Clamp(px-baseWidth/2, 0, math.Max(0, bounds.Width-baseWidth))
	camY := common.Clamp(py-baseHeight/2, 0, math.Max(0, bounds.Height-baseHeight))
	return camX, camY
}

func (g *Game) drawLevel(screen *ebiten.Image, camX, camY float64) {
	screen.Fill(backgroundColor)
	for _, r := range g.sim.Solids() {
		vector.FillRect(screen, float32(r.X-camX), float32(r.Y-camY), float32(r.Width), float32(r.Height), solidColor, false)
	}
}

func (g *Game) drawSprites(screen *ebiten.Image, camX, camY float64) {
	for _, sp := range g.sim.Sprites() {
		if img := g.cache.get(sp.Image); img != nil {
			w := img.Bounds().Dx()
			op := &ebiten.DrawImageOptions{}
			if sp.Flip {
				op.GeoM.Scale(-1, 1)
				op.GeoM.Translate(float64(w), 0)
			}
			op.GeoM.Translate(math.Round(sp.X-camX), math.Round(sp.Y-camY))
			op.Filter = ebiten.FilterNearest
			if sp.Flash && g.frames%8 < 4 {
				op.ColorScale.Scale(1, 1, 1, 0.35)
			}
			screen.DrawImage(img, op)
		}

		if g.opts.Debug {
			strokeRect(screen, sp.Box, camX, camY, boxColor)
			strokeRect(screen, sp.Hitbox, camX, camY, hitboxColor)
		}
	}
}

func strokeRect(screen *ebiten.Image, r common.Rect, camX, camY float64, c color.Color) {
	if r.Empty() {
		return
	}
	vector.StrokeRect(screen, float32(r.X-camX), float32(r.Y-camY), float32(r.Width), float32(r.Height), 1.0, c, false)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	health, maxHealth := g.sim.PlayerHealth()
	lines := []string{
		fmt.Sprintf("coins: %d", g.sim.Coins()),
		fmt.Sprintf("health: %d/%d", health, maxHealth),
	}
	if g.opts.Debug {
		lines = append(lines, fmt.Sprintf("fps: %.1f  frame: %d", ebiten.ActualFPS(), g.frames))
	}
	switch g.sim.Outcome() {
	case component.OutcomeWin:
		lines = append(lines, "treasure secured! press R to play again")
	case component.OutcomeLose:
		lines = append(lines, "you were defeated. press R to retry")
	}

	for i, line := range lines {
		op := &ebtext.DrawOptions{}
		op.GeoM.Translate(12, 12+float64(i)*16)
		op.ColorScale.ScaleWithColor(color.White)
		ebtext.Draw(screen, line, hudFace, op)
	}
}
