package app

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/siili/climbingroutes/internal/scene"
	"github.com/siili/climbingroutes/internal/session"
	"github.com/siili/climbingroutes/pkg/route"
)

var (
	floorColor = rl.NewColor(45, 50, 60, 255)
	wallColor  = rl.NewColor(70, 62, 55, 255)
	ledgeColor = rl.NewColor(110, 95, 80, 255)
)

func toColor(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

// drawScene draws the detected planes
func (app *App) drawScene() {
	for _, p := range app.scene.Planes {
		center := scene.ToRaylib(p.Center)
		size := float32(p.HalfExtent * 2)

		switch p.Surface {
		case session.SurfaceHorizontalUp:
			if p.Center.Y == 0 {
				rl.DrawPlane(center, rl.Vector2{X: size, Y: size}, floorColor)
				rl.DrawGrid(int32(size), 1)
			} else {
				// Ledges are drawn as thin slabs just below their top
				rl.DrawCube(rl.Vector3{X: center.X, Y: center.Y - 0.02, Z: center.Z}, size, 0.04, size, ledgeColor)
			}
		case session.SurfaceVertical:
			rl.DrawCube(rl.Vector3{X: center.X, Y: center.Y, Z: center.Z - 0.02}, size, size, 0.04, wallColor)
		}
	}
}

// drawRoutes draws every route: segments as cylinders, clips as spheres
func (app *App) drawRoutes() {
	active := app.session.Active()

	for _, r := range app.session.Routes() {
		for _, w := range r.Waypoints() {
			seg, ok := w.Segment()
			if !ok || seg.Degenerate {
				continue
			}
			start := scene.ToRaylib(seg.Start())
			end := scene.ToRaylib(seg.End())
			rl.DrawCylinderEx(start, end, route.SegmentRadius, route.SegmentRadius, 8, toColor(seg.Color.RGBA))
		}

		for _, w := range r.Waypoints() {
			app.drawClip(w, r == active)
		}
	}
}

func (app *App) drawClip(w *route.Waypoint, active bool) {
	pos := scene.ToRaylib(w.Position())
	size := float32(clipRadius)
	if w.IsStart() {
		size *= 1.4
	}

	col := toColor(w.Color().RGBA)
	if !active {
		col = rl.ColorAlpha(col, 0.6)
	}
	rl.DrawSphere(pos, size, col)

	if w.IsSelected() {
		rl.DrawSphereWires(pos, size*1.5, 8, 8, rl.SkyBlue)
	} else if c, ok := w.Node().(*scene.Clip); ok && c == app.Interaction.hovered {
		rl.DrawSphere(pos, size*1.3, rl.NewColor(255, 255, 0, 120)) // Semi-transparent yellow
	}
}
