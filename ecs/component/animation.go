package component

import (
	"github.com/milk9111/treasurehunt/common"
	"github.com/milk9111/treasurehunt/ecs/render"
)

// Animation is the per-entity status machine: the active status, a
// fractional frame index and the completion bookkeeping for once statuses.
type Animation struct {
	Archetype  string
	Status     string
	FrameIndex float64
	// Speed is frames per second; zero means common.AnimationSpeed.
	Speed float64

	Table  StateTable
	Frames map[string]*render.FrameSet
	// NativeFacing is the direction the source art faces. Frames are drawn
	// mirrored when the entity faces the other way.
	NativeFacing Facing

	// Completed is set when a once status reached its last frame.
	Completed bool

	pending string
}

var AnimationComponent = NewComponent[Animation]("animation")

// Spec returns the table entry of the current status.
func (a *Animation) Spec() StateSpec {
	if a == nil {
		return StateSpec{}
	}
	return a.Table[a.Status]
}

// CurrentFrames returns the frame set of the current status.
func (a *Animation) CurrentFrames() *render.FrameSet {
	if a == nil {
		return nil
	}
	return a.Frames[a.Status]
}

// FrameCount returns the length of the current status's sequence.
func (a *Animation) FrameCount() int {
	return a.CurrentFrames().Len()
}

// Frame returns the integer frame index.
func (a *Animation) Frame() int {
	if a == nil {
		return 0
	}
	return int(a.FrameIndex)
}

// Flipped reports whether frames are mirrored for facing f.
func (a *Animation) Flipped(f Facing) bool {
	if a == nil {
		return false
	}
	native := a.NativeFacing
	if native == 0 {
		native = FacingRight
	}
	return f.Sign() != native.Sign()
}

// Terminal reports whether the current status accepts no transitions.
func (a *Animation) Terminal() bool {
	return a.Spec().Terminal
}

// Locked reports whether the current status is a once, non-interruptible
// status that has not completed yet.
func (a *Animation) Locked() bool {
	spec := a.Spec()
	return spec.Repeat == RepeatOnce && !spec.Interruptible && !a.Completed
}

// Pending returns the queued completion successor, if any.
func (a *Animation) Pending() string {
	if a == nil {
		return ""
	}
	return a.pending
}

// SetStatus switches to status unless the current status is terminal or
// locked, or already equal to status. It reports whether the switch
// happened. Any pending completion transition is discarded.
func (a *Animation) SetStatus(status string) bool {
	if a == nil || status == a.Status || a.Terminal() || a.Locked() {
		return false
	}
	a.enter(status)
	return true
}

// ForceStatus switches to status regardless of the interruptible flag and
// restarts it when it is already active. Terminal statuses still win.
func (a *Animation) ForceStatus(status string) bool {
	if a == nil || a.Terminal() {
		return false
	}
	a.enter(status)
	return true
}

func (a *Animation) enter(status string) {
	a.Status = status
	a.FrameIndex = 0
	a.Completed = false
	a.pending = ""
}

// Advance moves the frame index forward by dt seconds. A successor queued
// by the previous completion is applied first and returned so the caller
// can run enter hooks; it is empty otherwise.
//
// Cyclic statuses wrap to frame 0. Once statuses hold their last frame and
// set Completed; if the status names a successor it is queued for the next
// Advance, unless a status change happens in between.
func (a *Animation) Advance(dt float64) string {
	if a == nil {
		return ""
	}
	entered := ""
	if next := a.pending; next != "" {
		a.pending = ""
		if a.ForceStatus(next) {
			entered = next
		}
	}

	count := a.FrameCount()
	if count == 0 {
		a.FrameIndex = 0
		return entered
	}
	spec := a.Spec()
	if spec.Repeat == RepeatOnce && a.Completed {
		a.FrameIndex = float64(count - 1)
		return entered
	}

	speed := a.Speed
	if speed == 0 {
		speed = common.AnimationSpeed
	}
	a.FrameIndex += speed * dt
	if a.FrameIndex < float64(count) {
		return entered
	}
	if spec.Repeat == RepeatCyclic {
		a.FrameIndex = 0
		return entered
	}
	a.FrameIndex = float64(count - 1)
	a.Completed = true
	if spec.Next != "" && !spec.Terminal {
		a.pending = spec.Next
	}
	return entered
}
