// Package session tracks the active route while the user places and edits clips.
package session

import (
	"github.com/rs/zerolog"
	"github.com/siili/climbingroutes/pkg/geometry"
	"github.com/siili/climbingroutes/pkg/grade"
	"github.com/siili/climbingroutes/pkg/route"
)

// Surface is the kind of surface a tap hit
type Surface int

const (
	SurfaceHorizontalUp Surface = iota
	SurfaceHorizontalDown
	SurfaceVertical
	SurfacePoint
)

func (s Surface) String() string {
	switch s {
	case SurfaceHorizontalUp:
		return "horizontal-up"
	case SurfaceHorizontalDown:
		return "horizontal-down"
	case SurfaceVertical:
		return "vertical"
	case SurfacePoint:
		return "point"
	default:
		return "unknown"
	}
}

// Hit is the result of hit-testing a tap against detected surfaces
type Hit interface {
	Position() geometry.Vector3
	Surface() Surface
}

// Anchorer creates the interaction node for a waypoint placed at a hit
type Anchorer interface {
	Anchor(hit Hit) route.Node
}

// Session owns the routes placed so far and the one being edited
type Session struct {
	anchorer Anchorer
	palette  grade.Palette
	log      zerolog.Logger

	routes  []*route.Chain
	active  *route.Chain
	editing bool
	ready   bool
}

// New creates a session. It ignores taps until SetReady is called.
func New(anchorer Anchorer, palette grade.Palette, log zerolog.Logger) *Session {
	if palette == nil {
		palette = grade.DefaultPalette
	}
	return &Session{
		anchorer: anchorer,
		palette:  palette,
		log:      log,
	}
}

// SetReady marks the renderables as loaded
func (s *Session) SetReady() {
	s.ready = true
	s.log.Debug().Msg("Session ready")
}

// Active returns the route being edited, or nil
func (s *Session) Active() *route.Chain { return s.active }

// Editing reports whether the active route is in edit mode
func (s *Session) Editing() bool { return s.editing }

// Routes returns every route placed in this session
func (s *Session) Routes() []*route.Chain { return s.routes }

// Tap handles a tap on a detected surface. Without an active route it starts a new
// one; otherwise it appends a clip to the active route. It returns the placed
// waypoint, or nil when the tap was ignored.
func (s *Session) Tap(hit Hit) *route.Waypoint {
	if !s.ready {
		s.log.Debug().Msg("Tap ignored, renderables not loaded")
		return nil
	}
	if hit.Surface() != SurfaceHorizontalUp {
		s.log.Debug().Stringer("surface", hit.Surface()).Msg("Tap ignored, unsupported surface")
		return nil
	}

	if s.active == nil {
		return s.placeNewRoute(hit)
	}
	return s.active.Append(s.anchorer.Anchor(hit))
}

func (s *Session) placeNewRoute(hit Hit) *route.Waypoint {
	r := route.New(route.WithPalette(s.palette), route.WithLogger(s.log))
	s.routes = append(s.routes, r)

	w := r.Append(s.anchorer.Anchor(hit))
	s.SelectRoute(r)

	s.log.Info().Str("route", r.ID().String()).Msg("New route placed")
	return w
}

// Adopt adds an existing route, e.g. one loaded from storage, and makes it active
func (s *Session) Adopt(r *route.Chain) {
	s.routes = append(s.routes, r)
	s.SelectRoute(r)
}

// SelectRoute makes r the active route and enters edit mode
func (s *Session) SelectRoute(r *route.Chain) {
	s.active = r
	s.editing = r != nil
}

// ClearSelection leaves edit mode; the next tap starts a new route
func (s *Session) ClearSelection() {
	s.active = nil
	s.editing = false
}

// Tick runs once per frame. Segments follow dragged clips only while the camera is
// tracking and a route is being edited. It returns the number of recomputed segments.
func (s *Session) Tick(tracking bool) int {
	if !tracking || s.active == nil || !s.editing {
		return 0
	}
	return s.active.UpdateIfNeeded()
}
