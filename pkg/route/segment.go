package route

import (
	"image/color"

	"github.com/siili/climbingroutes/pkg/geometry"
	"github.com/siili/climbingroutes/pkg/grade"
)

// SegmentRadius is the radial scale of every segment
const SegmentRadius = 0.03

// Color is the look of a waypoint and its segment: the band selects the renderable,
// RGBA is the resolved display color.
type Color struct {
	Band grade.Band
	RGBA color.RGBA
}

// Segment is the line connecting a waypoint to its predecessor. It is derived from the
// two endpoint positions and never edited directly.
type Segment struct {
	From, To   int // chain indices of the predecessor and the owning waypoint
	Origin     geometry.Vector3
	Scale      geometry.Vector3 // (radius, radius, length)
	Rotation   geometry.Quaternion
	Length     float64
	Color      Color
	Degenerate bool // endpoints coincide: zero length, identity rotation
}

// ComputeSegment returns the transform of the segment from p to q. The segment sits at
// q and its local +Z axis points along q - p.
func ComputeSegment(p, q geometry.Vector3, c Color) Segment {
	d := geometry.Direction(p, q)
	length := d.Length()

	s := Segment{
		Origin:   q,
		Scale:    geometry.NewVector3(SegmentRadius, SegmentRadius, length),
		Rotation: geometry.LookRotation(d, geometry.Up),
		Length:   length,
		Color:    c,
	}
	if length == 0 {
		s.Degenerate = true
		s.Rotation = geometry.IdentityQuaternion()
	}

	return s
}

// Start returns the end of the segment at the predecessor
func (s Segment) Start() geometry.Vector3 {
	if s.Degenerate {
		return s.Origin
	}
	return s.Origin.Sub(s.Rotation.Rotate(geometry.Forward).Mul(s.Length))
}

// End returns the end of the segment at the owning waypoint
func (s Segment) End() geometry.Vector3 {
	return s.Origin
}
