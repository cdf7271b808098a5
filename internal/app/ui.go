package app

import (
	"fmt"
	"strings"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/siili/climbingroutes/internal/scene"
	"github.com/siili/climbingroutes/pkg/analysis"
	"github.com/siili/climbingroutes/version"
)

// statusTimeout is how long a status message stays on screen
const statusTimeout = 4 * time.Second

var helpLines = []string{
	"Click floor/ledge: place clip",
	"Drag clip: move it",
	"Drag: rotate, Shift+drag: pan, wheel: zoom",
	"N: new route, Tab: next route, Esc: deselect",
	"[ ]: difficulty, B/P/T: boulder/sport/trad",
	"I: sit start, O: top out, S: save",
	"Space: toggle tracking",
	"Home/F/G: reset/front/top view",
}

// drawCards draws the info card next to the start clip of every route
func (app *App) drawCards() {
	for _, r := range app.session.Routes() {
		if r.Len() == 0 {
			continue
		}
		start := r.At(0).Position()
		pos := scene.ToRaylib(start)
		pos.Y += 0.25
		screen := rl.GetWorldToScreen(pos, app.Camera.camera)

		card := r.Info().Card()
		title := fmt.Sprintf("%s  %s", card.Name, card.Grade)
		width := rl.MeasureText(title, 16)
		x := int32(screen.X) - width/2
		y := int32(screen.Y)

		rl.DrawRectangle(x-6, y-4, width+12, 24, rl.NewColor(0, 0, 0, 180))
		rl.DrawRectangleLines(x-6, y-4, width+12, 24, toColor(r.Color().RGBA))
		rl.DrawText(title, x, y, 16, rl.White)
	}
}

// drawUI draws the user interface
func (app *App) drawUI() {
	y := int32(10)
	lineHeight := int32(20)

	mode := "Adding: tap to start a route"
	if app.session.Editing() {
		mode = "Editing"
	}
	rl.DrawText(mode, 10, y, 18, rl.Yellow)
	y += lineHeight + 4

	if r := app.session.Active(); r != nil {
		for _, line := range strings.Split(strings.TrimRight(r.Info().Card().String(), "\n"), "\n") {
			rl.DrawText(line, 10, y, 16, rl.White)
			y += lineHeight
		}

		stats := analysis.AnalyzeRoute(r)
		rl.DrawText(fmt.Sprintf("Clips: %d  Length: %s  Gain: %s",
			stats.WaypointCount,
			analysis.FormatMeasurement(stats.TotalLength, ""),
			analysis.FormatMeasurement(stats.HeightGain, "")), 10, y, 16, rl.LightGray)
		y += lineHeight

		if v := r.Info().Validate(); !v.OK() {
			rl.DrawText(v.Err.Error(), 10, y, 16, rl.Red)
			y += lineHeight
		}
	}

	if !app.Interaction.tracking {
		rl.DrawText("TRACKING PAUSED", 10, y, 16, rl.Orange)
		y += lineHeight
	}

	y += lineHeight
	if app.UI.showHelp {
		rl.DrawText("Controls:", 10, y, 16, rl.Yellow)
		y += lineHeight
		for _, line := range helpLines {
			rl.DrawText(line, 10, y, 14, rl.LightGray)
			y += lineHeight - 2
		}
	} else {
		rl.DrawText("H: help", 10, y, 14, rl.Gray)
	}

	screenHeight := int32(rl.GetScreenHeight())
	screenWidth := int32(rl.GetScreenWidth())

	if app.UI.status != "" && time.Since(app.UI.statusTime) < statusTimeout {
		rl.DrawText(app.UI.status, 10, screenHeight-30, 16, rl.Yellow)
	}

	v := version.GetVersion()
	rl.DrawText(v, screenWidth-rl.MeasureText(v, 12)-10, screenHeight-20, 12, rl.Gray)
	rl.DrawFPS(screenWidth-90, 10)
}
