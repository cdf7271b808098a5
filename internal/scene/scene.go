// Package scene is a simulated climbing gym: detected planes to tap on and clip nodes
// that can be picked, selected and dragged with a raylib camera ray.
package scene

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
	"github.com/siili/climbingroutes/internal/session"
	"github.com/siili/climbingroutes/pkg/geometry"
	"github.com/siili/climbingroutes/pkg/route"
)

const parallelEpsilon = 1e-9

// Plane is a detected square surface
type Plane struct {
	Center     geometry.Vector3
	Normal     geometry.Vector3
	HalfExtent float64
	Surface    session.Surface
}

// Ground returns the floor plane at y=0
func Ground(halfExtent float64) Plane {
	return Plane{Normal: geometry.Up, HalfExtent: halfExtent, Surface: session.SurfaceHorizontalUp}
}

// Ledge returns an upward facing plane, e.g. a volume or a hold top
func Ledge(center geometry.Vector3, halfExtent float64) Plane {
	return Plane{Center: center, Normal: geometry.Up, HalfExtent: halfExtent, Surface: session.SurfaceHorizontalUp}
}

// Wall returns a vertical plane at depth z facing the viewer
func Wall(z, halfExtent float64) Plane {
	return Plane{
		Center:     geometry.NewVector3(0, halfExtent, z),
		Normal:     geometry.Forward,
		HalfExtent: halfExtent,
		Surface:    session.SurfaceVertical,
	}
}

// intersect returns the distance along the ray to the plane, or false when the ray
// misses it
func (p Plane) intersect(origin, dir geometry.Vector3) (float64, geometry.Vector3, bool) {
	denom := dir.Dot(p.Normal)
	if math.Abs(denom) < parallelEpsilon {
		return 0, geometry.Vector3{}, false
	}
	t := p.Center.Sub(origin).Dot(p.Normal) / denom
	if t < 0 {
		return 0, geometry.Vector3{}, false
	}

	point := origin.Add(dir.Mul(t))
	offset := point.Sub(p.Center)
	offset = offset.Sub(p.Normal.Mul(offset.Dot(p.Normal)))
	if math.Abs(offset.X) > p.HalfExtent || math.Abs(offset.Y) > p.HalfExtent || math.Abs(offset.Z) > p.HalfExtent {
		return 0, geometry.Vector3{}, false
	}
	return t, point, true
}

// Hit is a ray hit on a plane
type Hit struct {
	Point    geometry.Vector3
	Kind     session.Surface
	Plane    int
	Distance float64
}

func (h Hit) Position() geometry.Vector3 { return h.Point }

func (h Hit) Surface() session.Surface { return h.Kind }

// Scene holds the planes and every clip placed on them. Clips share one selection.
type Scene struct {
	Planes []Plane

	clips    []*Clip
	selected *Clip
	log      zerolog.Logger
}

// New creates a scene with the given planes
func New(log zerolog.Logger, planes ...Plane) *Scene {
	return &Scene{Planes: planes, log: log}
}

// Default returns a floor, a wall behind it and two ledges
func Default(log zerolog.Logger) *Scene {
	return New(log,
		Ground(5),
		Wall(-1, 5),
		Ledge(geometry.NewVector3(-1, 1.2, -0.7), 0.3),
		Ledge(geometry.NewVector3(0.8, 2.4, -0.7), 0.3),
	)
}

// FromRaylib converts a raylib vector
func FromRaylib(v rl.Vector3) geometry.Vector3 {
	return geometry.NewVector3(float64(v.X), float64(v.Y), float64(v.Z))
}

// ToRaylib converts to a raylib vector
func ToRaylib(v geometry.Vector3) rl.Vector3 {
	return rl.Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

// Cast returns the nearest plane hit of the ray
func (s *Scene) Cast(ray rl.Ray) (Hit, bool) {
	origin := FromRaylib(ray.Position)
	dir := FromRaylib(ray.Direction).Normalize()

	best := Hit{Distance: math.MaxFloat64}
	found := false
	for i, p := range s.Planes {
		t, point, ok := p.intersect(origin, dir)
		if ok && t < best.Distance {
			best = Hit{Point: point, Kind: p.Surface, Plane: i, Distance: t}
			found = true
		}
	}
	return best, found
}

// Anchor places a clip at the hit. It implements session.Anchorer.
func (s *Scene) Anchor(h session.Hit) route.Node {
	c := &Clip{scene: s, pos: ToRaylib(h.Position())}
	s.clips = append(s.clips, c)
	s.log.Debug().Float64("x", h.Position().X).Float64("y", h.Position().Y).Float64("z", h.Position().Z).Msg("Clip anchored")
	return c
}

// Adopt creates an unattached clip for a restored waypoint
func (s *Scene) Adopt(pos geometry.Vector3) route.Node {
	c := &Clip{scene: s, pos: ToRaylib(pos)}
	s.clips = append(s.clips, c)
	return c
}

// Clips returns all placed clips
func (s *Scene) Clips() []*Clip { return s.clips }

// Selected returns the selected clip, or nil
func (s *Scene) Selected() *Clip { return s.selected }

// Deselect clears the selection
func (s *Scene) Deselect() {
	if s.selected != nil {
		s.selected.transforming = false
	}
	s.selected = nil
}

// Pick returns the nearest clip whose sphere of the given radius the ray hits
func (s *Scene) Pick(ray rl.Ray, radius float32) *Clip {
	var picked *Clip
	nearest := float32(math.MaxFloat32)
	for _, c := range s.clips {
		col := rl.GetRayCollisionSphere(ray, c.pos, radius)
		if col.Hit && col.Distance < nearest {
			nearest = col.Distance
			picked = c
		}
	}
	return picked
}

// Drag moves the clip being transformed to where the ray hits an upward plane.
// It reports whether the clip moved.
func (s *Scene) Drag(c *Clip, ray rl.Ray) bool {
	if c == nil || !c.transforming {
		return false
	}

	origin := FromRaylib(ray.Position)
	dir := FromRaylib(ray.Direction).Normalize()

	nearest := math.MaxFloat64
	var target geometry.Vector3
	for _, p := range s.Planes {
		if p.Surface != session.SurfaceHorizontalUp {
			continue
		}
		t, point, ok := p.intersect(origin, dir)
		if ok && t < nearest {
			nearest = t
			target = point
		}
	}
	if nearest == math.MaxFloat64 {
		return false
	}

	c.pos = ToRaylib(target)
	return true
}

// Clip is a placed route node backed by a raylib position
type Clip struct {
	scene        *Scene
	pos          rl.Vector3
	transforming bool
}

func (c *Clip) Position() geometry.Vector3 { return FromRaylib(c.pos) }

// RaylibPosition returns the position for drawing
func (c *Clip) RaylibPosition() rl.Vector3 { return c.pos }

func (c *Clip) IsSelected() bool { return c.scene.selected == c }

func (c *Clip) IsTransforming() bool { return c.transforming }

func (c *Clip) Select() {
	if c.scene.selected == c {
		return
	}
	c.scene.Deselect()
	c.scene.selected = c
}

// BeginDrag selects the clip and starts moving it
func (c *Clip) BeginDrag() {
	c.Select()
	c.transforming = true
}

// EndDrag stops moving the clip; it stays selected
func (c *Clip) EndDrag() {
	c.transforming = false
}
