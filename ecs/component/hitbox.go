package component

import "github.com/milk9111/treasurehunt/common"

// Hitbox is the tight world-space rectangle used for combat overlap. It is
// derived from the opaque pixels of the current animation frame; FromFrame
// is false when it fell back to the collision box.
type Hitbox struct {
	Rect      common.Rect
	FromFrame bool
}

var HitboxComponent = NewComponent[Hitbox]("hitbox")
