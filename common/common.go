package common

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// TileSize is the side of one scene tile in pixels.
	TileSize = 32

	// Gravity in pixels per second squared, Y-down.
	Gravity = 900.0
)
