// Command spsa previews an archetype's animation statuses. Left and right
// cycle through statuses, space restarts the current one.
package main

import (
	"context"
	"flag"
	"fmt"
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"github.com/milk9111/treasurehunt/ecs/component"
	"github.com/milk9111/treasurehunt/logging"
	"github.com/milk9111/treasurehunt/prefabs"
)

const (
	screenWidth  = 320
	screenHeight = 240
	scale        = 3
)

type preview struct {
	anim     *component.Animation
	statuses []string
	current  int
	facing   component.Facing
	cache    map[string][]*ebiten.Image
}

func newPreview(archetype, framesDir string) (*preview, error) {
	specs, err := prefabs.LoadArchetypes(context.Background(), archetype)
	if err != nil {
		return nil, err
	}
	lib, err := prefabs.BuildLibrary(specs, framesDir)
	if err != nil {
		return nil, err
	}
	spec := specs[archetype]
	if spec == nil {
		spec = specs[prefabs.ArchetypeName(archetype)]
	}
	if err := prefabs.Validate(spec, lib); err != nil {
		return nil, err
	}
	table, err := spec.StateTable()
	if err != nil {
		return nil, err
	}
	p := &preview{
		anim: &component.Animation{
			Archetype:    spec.Name,
			Status:       spec.DefaultStatus,
			Speed:        spec.AnimationSpeed,
			Table:        table,
			Frames:       lib.Archetype(spec.Name),
			NativeFacing: component.ParseFacing(spec.NativeFacing),
		},
		statuses: spec.Statuses(),
		facing:   component.FacingRight,
		cache:    make(map[string][]*ebiten.Image),
	}
	for i, s := range p.statuses {
		if s == spec.DefaultStatus {
			p.current = i
		}
	}
	return p, nil
}

func (p *preview) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		p.current = (p.current + 1) % len(p.statuses)
		p.restart()
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		p.current = (p.current + len(p.statuses) - 1) % len(p.statuses)
		p.restart()
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		p.restart()
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		p.facing = p.facing.Opposite()
	}
	p.anim.Advance(1.0 / float64(ebiten.TPS()))
	return nil
}

// restart enters the selected status from frame 0. Terminal statuses
// reject changes, so the machine is rebuilt from scratch.
func (p *preview) restart() {
	p.anim.Status = ""
	p.anim.Completed = false
	p.anim.ForceStatus(p.statuses[p.current])
}

func (p *preview) frameImages(status string) []*ebiten.Image {
	if imgs, ok := p.cache[status]; ok {
		return imgs
	}
	fs := p.anim.Frames[status]
	imgs := make([]*ebiten.Image, fs.Len())
	for i := range imgs {
		imgs[i] = ebiten.NewImageFromImage(fs.Frame(i))
	}
	p.cache[status] = imgs
	return imgs
}

func (p *preview) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x20, 0x24, 0x30, 0xff})
	imgs := p.frameImages(p.anim.Status)
	if len(imgs) > 0 {
		frame := p.anim.Frame()
		img := imgs[min(frame, len(imgs)-1)]
		flipped := p.anim.Flipped(p.facing)
		w, h := img.Bounds().Dx(), img.Bounds().Dy()
		x := float64(screenWidth*scale-w*scale) / 2
		y := float64(screenHeight*scale-h*scale) / 2

		op := &ebiten.DrawImageOptions{}
		if flipped {
			op.GeoM.Scale(-1, 1)
			op.GeoM.Translate(float64(w), 0)
		}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(x, y)
		screen.DrawImage(img, op)

		b := p.anim.CurrentFrames().BoundsAt(frame, flipped)
		if !b.Empty() {
			vector.StrokeRect(screen,
				float32(x+float64(b.Min.X*scale)), float32(y+float64(b.Min.Y*scale)),
				float32(b.Dx()*scale), float32(b.Dy()*scale),
				1, color.RGBA{0x00, 0xff, 0x00, 0xff}, false)
		}
	}

	spec := p.anim.Spec()
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"%s  %s  frame %d/%d\nrepeat=%s interruptible=%t next=%q terminal=%t\ncompleted=%t pending=%q\n<-/-> status  space restart  f flip",
		p.anim.Archetype, p.anim.Status, p.anim.Frame()+1, p.anim.FrameCount(),
		spec.Repeat, spec.Interruptible, spec.Next, spec.Terminal,
		p.anim.Completed, p.anim.Pending(),
	))
}

func (p *preview) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth * scale, screenHeight * scale
}

func main() {
	archetype := flag.String("archetype", "player", "archetype to preview")
	framesDir := flag.String("frames", "", "directory of decoded frames (<archetype>/<status>/*.png)")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	logger, err := logging.New(*debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	p, err := newPreview(*archetype, *framesDir)
	if err != nil {
		logger.Fatal("load archetype", zap.String("archetype", *archetype), zap.Error(err))
	}

	ebiten.SetWindowSize(screenWidth*scale, screenHeight*scale)
	ebiten.SetWindowTitle("spsa: " + p.anim.Archetype)
	if err := ebiten.RunGame(p); err != nil {
		logger.Fatal("run", zap.Error(err))
	}
}
