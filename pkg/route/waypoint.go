package route

import "github.com/siili/climbingroutes/pkg/geometry"

// Waypoint is a clip placed on the route. The start waypoint carries the route's
// information card; every other waypoint owns the segment back to its predecessor.
type Waypoint struct {
	index   int
	node    Node
	start   bool
	segment *Segment
	color   Color
}

func newStartWaypoint(node Node, c Color) *Waypoint {
	w := &Waypoint{node: node, start: true, color: c}
	node.Select()
	return w
}

func newChainedWaypoint(node Node, index int, prev *Waypoint, c Color) *Waypoint {
	w := &Waypoint{index: index, node: node, color: c}
	w.RecomputeSegment(prev)
	node.Select()
	return w
}

// Index returns the position of the waypoint in its chain
func (w *Waypoint) Index() int { return w.index }

// Node returns the interaction handle of the waypoint
func (w *Waypoint) Node() Node { return w.node }

// Position returns the current world position
func (w *Waypoint) Position() geometry.Vector3 { return w.node.Position() }

// IsStart reports whether this is the first waypoint of the route
func (w *Waypoint) IsStart() bool { return w.start }

// IsSelected reports the selection state owned by the interaction layer
func (w *Waypoint) IsSelected() bool { return w.node.IsSelected() }

// IsTransforming reports whether the waypoint is being dragged right now
func (w *Waypoint) IsTransforming() bool { return w.node.IsTransforming() }

// Color returns the current look of the waypoint
func (w *Waypoint) Color() Color { return w.color }

// Segment returns the incoming segment. The start waypoint has none.
func (w *Waypoint) Segment() (Segment, bool) {
	if w.segment == nil {
		return Segment{}, false
	}
	return *w.segment, true
}

// RecomputeSegment rebuilds the incoming segment from the current positions of prev
// and this waypoint. It is a no-op for the start waypoint.
func (w *Waypoint) RecomputeSegment(prev *Waypoint) {
	if w.start || prev == nil {
		return
	}
	s := ComputeSegment(prev.Position(), w.Position(), w.color)
	s.From, s.To = prev.index, w.index
	w.segment = &s
}

// SetColor recolors the waypoint and its segment
func (w *Waypoint) SetColor(c Color) {
	w.color = c
	if w.segment != nil {
		w.segment.Color = c
	}
}
