package component

// Camera is the viewport the world view and the large map are derived from.
// X and Y are the grid position at the screen center.
type Camera struct {
	X       float64
	Y       float64
	Width   float64
	Height  float64
	Zoom    float64
	MapZoom float64
}

var CameraComponent = NewComponent[Camera]()

// MapMode is which minimap overlay the player has open.
type MapMode int

const (
	MapModeSmall MapMode = iota
	MapModeLarge
	MapModeOff
)

// MapUI is the state of the map overlays and the panels that can cover them.
type MapUI struct {
	Mode            MapMode
	SmallX, SmallY  float64
	SmallW, SmallH  float64
	ShiftX, ShiftY  float64
	FullscreenPanel bool
	LargePanel      bool
	InGame          bool
}

var MapUIComponent = NewComponent[MapUI]()
