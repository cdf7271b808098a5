package viewer

import (
	"math"

	"github.com/siili/climbingroutes/pkg/geometry"
)

const (
	// minViewSize keeps the camera usable for empty and single-clip routes
	minViewSize = 1.0
	// framePadding leaves room around the route when it is framed
	framePadding = 1.15
	minDistance  = 0.1
	maxPitch     = math.Pi/2 - 0.1
)

// Camera is a perspective camera orbiting a point on the wall. At zero yaw and pitch it
// looks along -Z, straight at the wall.
type Camera struct {
	Target   geometry.Vector3
	FOV      float64 // Vertical field of view in radians
	Distance float64
	Pitch    float64 // Positive looks down on the route
	Yaw      float64 // Positive walks around to the right

	homeTarget   geometry.Vector3
	homeDistance float64
}

// NewCamera creates a camera facing the wall that frames the bounding box and the floor
// below it in a square viewport
func NewCamera(bbox geometry.BoundingBox) *Camera {
	c := &Camera{FOV: math.Pi / 4}
	c.Frame(bbox, 1)
	return c
}

// Frame fits the route into a viewport with the given aspect ratio (width / height) and
// makes that the home view
func (c *Camera) Frame(bbox geometry.BoundingBox, aspect float64) {
	if aspect <= 0 || math.IsNaN(aspect) || math.IsInf(aspect, 0) {
		aspect = 1
	}
	if bbox.Empty() {
		bbox = geometry.NewBoundingBox()
		bbox.Extend(geometry.Vector3{})
	}
	bbox.Extend(geometry.NewVector3(bbox.Center().X, 0, bbox.Center().Z))

	size := bbox.Size()
	halfH := math.Max(minViewSize, size.Y) / 2
	halfW := math.Max(minViewSize, size.X) / 2
	tanV := math.Tan(c.FOV / 2)

	// The closer face of the box has to fit as well
	fit := math.Max(halfH/tanV, halfW/(tanV*aspect))
	c.homeDistance = fit*framePadding + size.Z/2
	c.homeTarget = bbox.Center()
	c.Reset()
}

// Reset returns to the home view
func (c *Camera) Reset() {
	c.Target = c.homeTarget
	c.Distance = c.homeDistance
	c.Pitch = 0
	c.Yaw = 0
}

func (c *Camera) orientation() geometry.Quaternion {
	return geometry.AxisAngle(geometry.Up, c.Yaw).Mul(geometry.AxisAngle(geometry.Right, -c.Pitch))
}

// Position is the eye position on the orbit around the target
func (c *Camera) Position() geometry.Vector3 {
	return c.Target.Add(c.orientation().Rotate(geometry.Forward).Mul(c.Distance))
}

// Rotate orbits the camera by the given pitch and yaw deltas
func (c *Camera) Rotate(deltaPitch, deltaYaw float64) {
	c.Pitch = math.Max(-maxPitch, math.Min(maxPitch, c.Pitch+deltaPitch))
	c.Yaw += deltaYaw
}

// Zoom changes the camera distance by a relative amount
func (c *Camera) Zoom(delta float64) {
	c.Distance = math.Max(minDistance, c.Distance*(1.0+delta))
}

// basis returns the view direction and the screen axes in world space
func (c *Camera) basis() (forward, right, up geometry.Vector3) {
	q := c.orientation()
	forward = q.Rotate(geometry.Forward).Mul(-1)
	right = q.Rotate(geometry.Right)
	up = q.Rotate(geometry.Up)
	return forward, right, up
}

// Project projects a 3D point to 2D screen coordinates. The third value is the depth
// in front of the camera.
func (c *Camera) Project(point geometry.Vector3, width, height float64) (float64, float64, float64) {
	forward, right, up := c.basis()

	relative := point.Sub(c.Position())
	x := relative.Dot(right)
	y := relative.Dot(up)
	z := relative.Dot(forward)

	if z <= 0.01 {
		z = 0.01
	}

	aspect := width / height
	fovScale := math.Tan(c.FOV / 2)

	screenX := (x/(z*fovScale*aspect))*(width/2) + (width / 2)
	screenY := (-y/(z*fovScale))*(height/2) + (height / 2)

	return screenX, screenY, z
}

// Unproject converts 2D screen coordinates back to a 3D ray
func (c *Camera) Unproject(screenX, screenY, width, height float64) (origin, direction geometry.Vector3) {
	ndcX := (2.0 * screenX / width) - 1.0
	ndcY := 1.0 - (2.0 * screenY / height)

	aspect := width / height
	fovScale := math.Tan(c.FOV / 2)

	forward, right, up := c.basis()

	rayDir := forward.Add(right.Mul(ndcX * fovScale * aspect)).Add(up.Mul(ndcY * fovScale))
	return c.Position(), rayDir.Normalize()
}

// PixelsPerUnit returns the on-screen size of one world unit at the target depth
func (c *Camera) PixelsPerUnit(height float64) float64 {
	return (height / 2) / (c.Distance * math.Tan(c.FOV/2))
}
