package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"
)

const particleFrames = 24

var particleColors = map[string]color.RGBA{
	"jump_dust": {R: 0xdd, G: 0xdd, B: 0xcc, A: 0xff},
	"fall_dust": {R: 0xdd, G: 0xdd, B: 0xcc, A: 0xff},
	"coin":      {R: 0xf0, G: 0xc4, B: 0x19, A: 0xff},
	"death":     {R: 0xff, G: 0x66, B: 0x66, A: 0xff},
}

type particle struct {
	kind string
	x, y float64
	left int
}

// effects plays synthesized sounds and draws particles as fading squares.
type effects struct {
	log       *zap.Logger
	sounds    *sounds
	particles []particle
}

// newEffects builds the effects layer; s may be nil to mute sound.
func newEffects(log *zap.Logger, s *sounds) *effects {
	return &effects{log: log, sounds: s}
}

func (f *effects) PlaySound(name string) {
	f.log.Debug("sound", zap.String("name", name))
	if f.sounds != nil {
		f.sounds.play(name)
	}
}

func (f *effects) SpawnParticle(kind string, x, y float64) {
	f.particles = append(f.particles, particle{kind: kind, x: x, y: y, left: particleFrames})
}

func (f *effects) update() {
	live := f.particles[:0]
	for _, p := range f.particles {
		p.left--
		if p.left > 0 {
			live = append(live, p)
		}
	}
	f.particles = live
}

func (f *effects) reset() {
	f.particles = f.particles[:0]
}

func (f *effects) draw(screen *ebiten.Image, camX, camY float64) {
	for _, p := range f.particles {
		c, ok := particleColors[p.kind]
		if !ok {
			c = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
		}
		t := float64(p.left) / particleFrames
		c.A = uint8(float64(c.A) * t)
		size := float32(4 + 8*(1-t))
		vector.FillRect(screen, float32(p.x-camX)-size/2, float32(p.y-camY)-size, size, size, c, false)
	}
}
