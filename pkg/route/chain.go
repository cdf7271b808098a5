// Package route keeps a climbing route as an ordered chain of waypoints connected by
// segments, and keeps the segments in step with waypoints the user drags around.
package route

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/siili/climbingroutes/pkg/geometry"
	"github.com/siili/climbingroutes/pkg/grade"
)

// noSelection marks an empty selection cache
const noSelection = -1

// Chain is a route: waypoints in placement order plus the route information that
// determines their color. Waypoints are only ever appended.
type Chain struct {
	id        uuid.UUID
	waypoints []*Waypoint
	selected  int
	info      *grade.Info
	palette   grade.Palette
	log       zerolog.Logger
}

// Option configures a chain
type Option func(*Chain)

// WithID sets the route ID, e.g. when restoring a stored route
func WithID(id uuid.UUID) Option {
	return func(c *Chain) { c.id = id }
}

// WithInfo sets the initial route information
func WithInfo(info *grade.Info) Option {
	return func(c *Chain) { c.info = info.Clone() }
}

// WithPalette sets the band colors
func WithPalette(p grade.Palette) Option {
	return func(c *Chain) { c.palette = p }
}

// WithLogger sets the logger
func WithLogger(log zerolog.Logger) Option {
	return func(c *Chain) { c.log = log }
}

// New creates an empty route with default information
func New(opts ...Option) *Chain {
	c := &Chain{
		id:       uuid.New(),
		selected: noSelection,
		info:     grade.NewInfo(),
		palette:  grade.DefaultPalette,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With().Str("route", c.id.String()).Logger()
	return c
}

// ID returns the route ID
func (c *Chain) ID() uuid.UUID { return c.id }

// Len returns the number of waypoints
func (c *Chain) Len() int { return len(c.waypoints) }

// At returns the waypoint at index i
func (c *Chain) At(i int) *Waypoint { return c.waypoints[i] }

// Waypoints returns the waypoints in placement order. The slice must not be modified.
func (c *Chain) Waypoints() []*Waypoint { return c.waypoints }

// Positions returns the current waypoint positions
func (c *Chain) Positions() []geometry.Vector3 {
	positions := make([]geometry.Vector3, len(c.waypoints))
	for i, w := range c.waypoints {
		positions[i] = w.Position()
	}
	return positions
}

// SelectedIndex returns the cached index of the selected waypoint
func (c *Chain) SelectedIndex() (int, bool) {
	return c.selected, c.selected != noSelection
}

// Info returns a copy of the route information
func (c *Chain) Info() *grade.Info { return c.info.Clone() }

// Palette returns the band colors used by the route
func (c *Chain) Palette() grade.Palette { return c.palette }

// Color returns the current route color, derived from the difficulty
func (c *Chain) Color() Color {
	band := c.info.Band()
	return Color{Band: band, RGBA: c.palette.Color(band)}
}

// Append adds a waypoint at the end of the route and selects it. The first waypoint
// becomes the start; every later one is connected to the current tail.
func (c *Chain) Append(node Node) *Waypoint {
	var w *Waypoint
	if len(c.waypoints) == 0 {
		w = newStartWaypoint(node, c.Color())
	} else {
		w = newChainedWaypoint(node, len(c.waypoints), c.waypoints[len(c.waypoints)-1], c.Color())
	}

	c.waypoints = append(c.waypoints, w)
	c.selected = w.index

	c.log.Debug().
		Int("index", w.index).
		Bool("start", w.start).
		Msg("Waypoint appended")

	return w
}

// RecolorAll applies the current route color to every waypoint and segment
func (c *Chain) RecolorAll() {
	color := c.Color()
	for _, w := range c.waypoints {
		w.SetColor(color)
	}
}

// UpdateIfNeeded is called once per frame. When the selected waypoint is being dragged
// it recomputes the segments touching it and returns how many were recomputed.
//
// If the selection moved to another waypoint since the last call, the chain is scanned
// once to find it. When no waypoint is selected nothing happens.
func (c *Chain) UpdateIfNeeded() int {
	if len(c.waypoints) == 0 {
		return 0
	}

	if c.selected == noSelection || !c.waypoints[c.selected].IsSelected() {
		i := c.findSelected()
		if i == noSelection {
			return 0
		}
		c.log.Debug().Int("from", c.selected).Int("to", i).Msg("Selection moved")
		c.selected = i
	}

	return c.updateAroundSelected()
}

func (c *Chain) findSelected() int {
	for i, w := range c.waypoints {
		if w.IsSelected() {
			return i
		}
	}
	return noSelection
}

func (c *Chain) updateAroundSelected() int {
	w := c.waypoints[c.selected]
	if !w.IsTransforming() {
		return 0
	}

	n := 0
	if c.selected > 0 {
		w.RecomputeSegment(c.waypoints[c.selected-1])
		n++
	}
	if c.selected < len(c.waypoints)-1 {
		c.waypoints[c.selected+1].RecomputeSegment(w)
		n++
	}
	return n
}

// UpdateInfo replaces the route information and recolors the route.
//
// An invalid difficulty is rejected and nothing changes. Otherwise the values are
// applied and the route recolored even when the returned validation failed.
func (c *Chain) UpdateInfo(v grade.Values) (grade.Validation, error) {
	res, err := c.info.Update(v)
	if err != nil {
		c.log.Warn().Err(err).Msg("Route info rejected")
		return res, err
	}

	c.RecolorAll()

	if !res.OK() {
		c.log.Info().Err(res.Err).Msg("Route info needs attention")
	}
	for _, w := range res.Warnings {
		c.log.Warn().Err(w).Msg("Route info warning")
	}

	return res, nil
}

// ApplyForm reads the route information from a form and applies it like UpdateInfo.
// A form that does not bind every field is rejected without any change.
func (c *Chain) ApplyForm(form grade.Form) (grade.Validation, error) {
	v, err := grade.ReadForm(form, c.info.Values())
	if err != nil {
		c.log.Warn().Err(err).Msg("Failed to read route info form")
		return grade.Validation{}, err
	}
	return c.UpdateInfo(v)
}

// FillForm writes the route information into a form
func (c *Chain) FillForm(form grade.Form) error {
	return grade.WriteForm(form, c.info.Values())
}
