package route

import "github.com/siili/climbingroutes/pkg/geometry"

// Node is the placed, user-manipulable handle of a waypoint. It is provided by the
// interaction layer (hit-test anchor plus gesture state); the chain only polls it.
type Node interface {
	Position() geometry.Vector3
	IsSelected() bool
	IsTransforming() bool
	// Select makes this node the selected one, deselecting any other
	Select()
}

// SelectionSystem creates in-memory nodes and keeps at most one of them selected
type SelectionSystem struct {
	selected *Handle
}

// NewSelectionSystem creates an empty selection system
func NewSelectionSystem() *SelectionSystem {
	return &SelectionSystem{}
}

// Place creates an unselected handle at pos
func (s *SelectionSystem) Place(pos geometry.Vector3) *Handle {
	return &Handle{sys: s, pos: pos}
}

// Selected returns the selected handle, or nil
func (s *SelectionSystem) Selected() *Handle {
	return s.selected
}

// Deselect clears the selection
func (s *SelectionSystem) Deselect() {
	if s.selected != nil {
		s.selected.transforming = false
	}
	s.selected = nil
}

// Handle is an in-memory Node
type Handle struct {
	sys          *SelectionSystem
	pos          geometry.Vector3
	transforming bool
}

func (h *Handle) Position() geometry.Vector3 {
	return h.pos
}

func (h *Handle) IsSelected() bool {
	return h.sys.selected == h
}

func (h *Handle) IsTransforming() bool {
	return h.transforming && h.IsSelected()
}

func (h *Handle) Select() {
	if h.sys.selected == h {
		return
	}
	h.sys.Deselect()
	h.sys.selected = h
}

// Move sets the position. It does not change the selection.
func (h *Handle) Move(pos geometry.Vector3) {
	h.pos = pos
}

// BeginTransform selects the handle and marks it as being dragged
func (h *Handle) BeginTransform() {
	h.Select()
	h.transforming = true
}

// EndTransform finishes a drag; the handle stays selected
func (h *Handle) EndTransform() {
	h.transforming = false
}
