package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const defaultCameraAngleX, defaultCameraAngleY = 0.35, 0.3

// initCamera looks at the wall from the default angle
func (app *App) initCamera(target rl.Vector3, distance float32) {
	app.Camera.target = target
	app.Camera.defaultTarget = target
	app.Camera.distance = distance
	app.Camera.defaultDist = distance
	app.Camera.angleX = defaultCameraAngleX
	app.Camera.angleY = defaultCameraAngleY
	app.Camera.defaultAngleX = defaultCameraAngleX
	app.Camera.defaultAngleY = defaultCameraAngleY

	app.Camera.camera = rl.Camera3D{
		Position:   rl.Vector3{X: 0, Y: 0, Z: distance},
		Target:     target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       45.0,
		Projection: rl.CameraPerspective,
	}
	app.updateCamera()
}

// resetCameraView resets the camera to the default view
func (app *App) resetCameraView() {
	app.Camera.distance = app.Camera.defaultDist
	app.Camera.angleX = app.Camera.defaultAngleX
	app.Camera.angleY = app.Camera.defaultAngleY
	app.Camera.target = app.Camera.defaultTarget
}

// setCameraTopView looks straight down at the floor
func (app *App) setCameraTopView() {
	app.Camera.angleX = math.Pi/2 - 0.01
	app.Camera.angleY = 0
}

// setCameraFrontView looks straight at the wall
func (app *App) setCameraFrontView() {
	app.Camera.angleX = 0
	app.Camera.angleY = 0
}

// updateCamera updates camera position based on angles
func (app *App) updateCamera() {
	c := &app.Camera
	x := c.distance * float32(math.Cos(float64(c.angleX))) * float32(math.Sin(float64(c.angleY)))
	y := c.distance * float32(math.Sin(float64(c.angleX)))
	z := c.distance * float32(math.Cos(float64(c.angleX))) * float32(math.Cos(float64(c.angleY)))

	c.camera.Position = rl.Vector3{
		X: c.target.X + x,
		Y: c.target.Y + y,
		Z: c.target.Z + z,
	}
	c.camera.Target = c.target
}

// doRotate orbits the camera by the mouse delta
func (app *App) doRotate(delta rl.Vector2) {
	app.Camera.angleY -= delta.X * 0.01
	app.Camera.angleX += delta.Y * 0.01

	// Clamp vertical rotation
	if app.Camera.angleX > 1.5 {
		app.Camera.angleX = 1.5
	}
	if app.Camera.angleX < -0.2 {
		app.Camera.angleX = -0.2
	}
}

// doPan performs camera panning based on mouse delta
func (app *App) doPan(delta rl.Vector2) {
	c := &app.Camera
	// Calculate camera right and up vectors for panning
	forward := rl.Vector3Normalize(rl.Vector3Subtract(c.target, c.camera.Position))
	right := rl.Vector3Normalize(rl.Vector3CrossProduct(forward, c.camera.Up))
	up := rl.Vector3Normalize(rl.Vector3CrossProduct(right, forward))

	// Pan speed based on distance from target
	panSpeed := c.distance * 0.001

	// Move camera target based on mouse delta
	rightMove := rl.Vector3Scale(right, -delta.X*panSpeed)
	upMove := rl.Vector3Scale(up, delta.Y*panSpeed)

	c.target = rl.Vector3Add(c.target, rightMove)
	c.target = rl.Vector3Add(c.target, upMove)
}

// doZoom changes the camera distance by the mouse wheel
func (app *App) doZoom(wheel float32) {
	app.Camera.distance *= 1 - wheel*0.1
	if app.Camera.distance < 0.5 {
		app.Camera.distance = 0.5
	}
	if app.Camera.distance > 50 {
		app.Camera.distance = 50
	}
}
