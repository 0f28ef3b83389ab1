package common

const (
	// TileSize is the edge length of one map tile in world pixels.
	TileSize = 16

	// BaseWidth and BaseHeight are the canvas size at a device pixel ratio of 1.
	BaseWidth  = 1024
	BaseHeight = 576

	// BaseScale is added to the device pixel ratio to get the scene zoom.
	BaseScale = 2
)
