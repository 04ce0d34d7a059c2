package component

// Input stores per-frame input state for the player.
type Input struct {
	MoveX float64
	MoveY float64
	// ToggleMap cycles small map, large map and no map.
	ToggleMap bool
	ZoomDelta float64
	// ToggleFullscreenPanel and ToggleLargePanel open and close the UI
	// panels that cover the map.
	ToggleFullscreenPanel bool
	ToggleLargePanel      bool
}

var InputComponent = NewComponent[Input]()
