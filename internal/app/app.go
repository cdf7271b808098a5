// Package app is the raylib route editor: tap the floor or a ledge to place clips,
// drag clips around and watch the segments follow.
package app

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/siili/climbingroutes/internal/scene"
	"github.com/siili/climbingroutes/internal/session"
	"github.com/siili/climbingroutes/internal/store"
	"github.com/siili/climbingroutes/pkg/grade"
	"github.com/siili/climbingroutes/pkg/route"
)

// clipRadius is the drawn and pickable size of a clip
const clipRadius = 0.06

// Options configures the editor
type Options struct {
	Width       int32
	Height      int32
	Palette     grade.Palette
	StoragePath string
	Log         zerolog.Logger
	// Routes are loaded from the store before the first frame
	Routes []uuid.UUID
}

type App struct {
	Camera      CameraState
	Interaction InteractionState
	UI          UIState

	scene   *scene.Scene
	session *session.Session
	store   *store.Store
	palette grade.Palette
	log     zerolog.Logger
}

// Run opens the editor window and blocks until it is closed
func Run(opts Options) error {
	st, err := store.Open(opts.StoragePath, opts.Log)
	if err != nil {
		return err
	}
	defer st.Close()

	sc := scene.Default(opts.Log)
	app := &App{
		Interaction: InteractionState{tracking: true},
		scene:       sc,
		session:     session.New(sc, opts.Palette, opts.Log),
		store:       st,
		palette:     opts.Palette,
		log:         opts.Log,
	}

	for _, id := range opts.Routes {
		chain, err := st.Load(id, sc.Adopt, route.WithPalette(opts.Palette), route.WithLogger(opts.Log))
		if err != nil {
			return err
		}
		app.session.Adopt(chain)
	}
	// Clips restored from the store are not being edited
	sc.Deselect()

	// Initialize window
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(opts.Width, opts.Height, "Climbing Routes")
	rl.SetTargetFPS(60)
	// Escape clears the selection instead of closing the window
	rl.SetExitKey(rl.KeyNull)

	app.initCamera(rl.Vector3{X: 0, Y: 1.2, Z: 0}, 6)

	// Renderables are ready once the window and GL context exist
	app.session.SetReady()
	app.setStatus(fmt.Sprintf("%d route(s) loaded", len(opts.Routes)))

	// Main loop
	for !rl.WindowShouldClose() {
		// Update
		app.handleInput()
		app.updateCamera()
		app.session.Tick(app.Interaction.tracking)

		// Draw
		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(15, 18, 25, 255))

		rl.BeginMode3D(app.Camera.camera)
		app.drawScene()
		app.drawRoutes()
		rl.EndMode3D()

		app.drawCards()
		app.drawUI()

		rl.EndDrawing()
	}

	// Cleanup
	rl.CloseWindow()
	return nil
}

func (app *App) setStatus(msg string) {
	app.UI.status = msg
	app.UI.statusTime = time.Now()
	app.log.Info().Msg(msg)
}

// routeOf returns the route a clip belongs to
func (app *App) routeOf(c *scene.Clip) *route.Chain {
	for _, r := range app.session.Routes() {
		for _, w := range r.Waypoints() {
			if w.Node() == route.Node(c) {
				return r
			}
		}
	}
	return nil
}

// adjustDifficulty changes the difficulty of the active route by delta
func (app *App) adjustDifficulty(delta int) {
	r := app.session.Active()
	if r == nil {
		return
	}
	v := r.Info().Values()
	v.Difficulty += delta
	if _, err := r.UpdateInfo(v); err != nil {
		app.setStatus(err.Error())
		return
	}
	app.setStatus(fmt.Sprintf("Grade %s", r.Info().Text()))
}

// setType changes the type of the active route
func (app *App) setType(t grade.RouteType) {
	r := app.session.Active()
	if r == nil {
		return
	}
	v := r.Info().Values()
	v.SetType(t)
	if _, err := r.UpdateInfo(v); err != nil {
		app.setStatus(err.Error())
	}
}

// toggleFlag flips the sit start or top out flag of the active route
func (app *App) toggleFlag(sitStart bool) {
	r := app.session.Active()
	if r == nil {
		return
	}
	v := r.Info().Values()
	if sitStart {
		v.SitStart = !v.SitStart
	} else {
		v.TopOut = !v.TopOut
	}
	if _, err := r.UpdateInfo(v); err != nil {
		app.setStatus(err.Error())
	}
}

func (app *App) saveActive() {
	r := app.session.Active()
	if r == nil {
		app.setStatus("No route to save")
		return
	}
	if v := r.Info().Validate(); !v.OK() {
		app.setStatus(fmt.Sprintf("Cannot save: %v", v.Err))
		return
	}
	if err := app.store.Save(r); err != nil {
		app.setStatus(err.Error())
		return
	}
	app.setStatus(fmt.Sprintf("Saved %s (%s)", r.Info().DisplayName(), r.ID()))
}

// cycleRoute makes the next route active
func (app *App) cycleRoute() {
	routes := app.session.Routes()
	if len(routes) == 0 {
		return
	}
	next := 0
	for i, r := range routes {
		if r == app.session.Active() {
			next = (i + 1) % len(routes)
		}
	}
	app.session.SelectRoute(routes[next])
	app.scene.Deselect()
}
