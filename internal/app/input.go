package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/siili/climbingroutes/pkg/grade"
)

// handleInput processes user input
func (app *App) handleInput() {
	in := &app.Interaction
	ray := rl.GetMouseRay(rl.GetMousePosition(), app.Camera.camera)
	in.hovered = app.scene.Pick(ray, clipRadius*1.5)

	app.handleKeys()

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		app.doZoom(wheel)
	}

	// Track mouse down for click vs drag detection
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		in.mouseDownPos = rl.GetMousePosition()
		in.mouseMoved = false
		// Pan if Shift is pressed
		in.isPanning = rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)

		if !in.isPanning && in.hovered != nil {
			in.dragging = in.hovered
			in.dragging.BeginDrag()
			if r := app.routeOf(in.dragging); r != nil && r != app.session.Active() {
				app.session.SelectRoute(r)
			}
		}
	}

	// Camera panning with Shift + mouse drag or middle mouse button drag
	if (rl.IsMouseButtonDown(rl.MouseLeftButton) && in.isPanning) || rl.IsMouseButtonDown(rl.MouseMiddleButton) {
		delta := rl.GetMouseDelta()
		if delta.X != 0 || delta.Y != 0 {
			in.mouseMoved = true
			app.doPan(delta)
		}
	} else if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		delta := rl.GetMouseDelta()
		// Only count as moved if delta is significant (threshold of 1.0 pixels)
		if math.Abs(float64(delta.X)) > 1.0 || math.Abs(float64(delta.Y)) > 1.0 {
			in.mouseMoved = true
		}
		if in.dragging != nil {
			app.scene.Drag(in.dragging, ray)
		} else if delta.X != 0 || delta.Y != 0 {
			app.doRotate(delta)
		}
	}

	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		dragDistance := rl.Vector2Distance(in.mouseDownPos, rl.GetMousePosition())

		if in.dragging != nil {
			in.dragging.EndDrag()
			in.dragging = nil
		} else if !in.mouseMoved && !in.isPanning && dragDistance < 5.0 { // Less than 5 pixels moved = click
			app.tap(ray)
		}
		in.isPanning = false
	}
}

// tap places a clip where the ray hits a plane
func (app *App) tap(ray rl.Ray) {
	hit, ok := app.scene.Cast(ray)
	if !ok {
		return
	}
	if app.session.Tap(hit) == nil {
		app.setStatus("Clips can only be placed on the floor and ledges")
	}
}

func (app *App) handleKeys() {
	// Camera view preset shortcuts
	if rl.IsKeyPressed(rl.KeyHome) {
		app.resetCameraView()
	}
	if rl.IsKeyPressed(rl.KeyF) {
		app.setCameraFrontView()
	}
	if rl.IsKeyPressed(rl.KeyG) {
		app.setCameraTopView()
	}

	// Route editing
	if rl.IsKeyPressed(rl.KeyN) {
		app.session.ClearSelection()
		app.scene.Deselect()
		app.setStatus("Tap to start a new route")
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		app.scene.Deselect()
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		app.cycleRoute()
	}
	if rl.IsKeyPressed(rl.KeyRightBracket) {
		app.adjustDifficulty(1)
	}
	if rl.IsKeyPressed(rl.KeyLeftBracket) {
		app.adjustDifficulty(-1)
	}
	if rl.IsKeyPressed(rl.KeyB) {
		app.setType(grade.Boulder)
	}
	if rl.IsKeyPressed(rl.KeyP) {
		app.setType(grade.Sport)
	}
	if rl.IsKeyPressed(rl.KeyT) {
		app.setType(grade.Trad)
	}
	if rl.IsKeyPressed(rl.KeyI) {
		app.toggleFlag(true)
	}
	if rl.IsKeyPressed(rl.KeyO) {
		app.toggleFlag(false)
	}
	if rl.IsKeyPressed(rl.KeyS) {
		app.saveActive()
	}

	// Losing tracking freezes the segments, like an AR camera that lost the scene
	if rl.IsKeyPressed(rl.KeySpace) {
		app.Interaction.tracking = !app.Interaction.tracking
		if app.Interaction.tracking {
			app.setStatus("Tracking")
		} else {
			app.setStatus("Tracking paused")
		}
	}
	if rl.IsKeyPressed(rl.KeyH) {
		app.UI.showHelp = !app.UI.showHelp
	}
}
