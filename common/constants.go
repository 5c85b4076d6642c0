package common

const (
	// TileSize is the edge length of one level grid cell in world units.
	TileSize = 64

	// AnimationSpeed is the default animation rate in frames per second.
	AnimationSpeed = 10.0
)
