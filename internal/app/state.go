package app

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/siili/climbingroutes/internal/scene"
)

// CameraState holds all camera-related state
type CameraState struct {
	camera        rl.Camera3D
	distance      float32
	angleX        float32
	angleY        float32
	target        rl.Vector3 // Current camera target (can be panned)
	defaultTarget rl.Vector3 // Default camera target (for reset)
	defaultDist   float32    // Default camera distance (for reset)
	defaultAngleX float32    // Default camera angle X (for reset)
	defaultAngleY float32    // Default camera angle Y (for reset)
}

// InteractionState holds mouse and interaction state
type InteractionState struct {
	mouseDownPos rl.Vector2
	mouseMoved   bool
	isPanning    bool
	dragging     *scene.Clip // Clip being moved, nil while orbiting
	hovered      *scene.Clip
	tracking     bool // Segments follow dragged clips only while tracking
}

// UIState holds UI-related state
type UIState struct {
	status     string
	statusTime time.Time
	showHelp   bool
}
