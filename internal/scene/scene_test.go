package scene

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
	"github.com/siili/climbingroutes/internal/session"
	"github.com/siili/climbingroutes/pkg/geometry"
	"github.com/siili/climbingroutes/pkg/grade"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func down(x, z float32) rl.Ray {
	return rl.Ray{Position: rl.Vector3{X: x, Y: 10, Z: z}, Direction: rl.Vector3{Y: -1}}
}

func TestCastGround(t *testing.T) {
	s := New(zerolog.Nop(), Ground(5))

	hit, ok := s.Cast(down(1, 2))
	require.True(t, ok)
	assert.Equal(t, session.SurfaceHorizontalUp, hit.Surface())
	assert.InDelta(t, 1, hit.Position().X, 1e-6)
	assert.InDelta(t, 0, hit.Position().Y, 1e-6)
	assert.InDelta(t, 2, hit.Position().Z, 1e-6)
}

func TestCastNearestPlaneWins(t *testing.T) {
	s := New(zerolog.Nop(), Ground(5), Ledge(geometry.NewVector3(0, 1, 0), 0.5))

	hit, ok := s.Cast(down(0.2, 0))
	require.True(t, ok)
	assert.Equal(t, 1, hit.Plane)
	assert.InDelta(t, 1, hit.Position().Y, 1e-6)
}

func TestCastWall(t *testing.T) {
	s := New(zerolog.Nop(), Wall(-1, 5))

	hit, ok := s.Cast(rl.Ray{Position: rl.Vector3{Y: 1, Z: 5}, Direction: rl.Vector3{Z: -1}})
	require.True(t, ok)
	assert.Equal(t, session.SurfaceVertical, hit.Surface())
}

func TestCastMisses(t *testing.T) {
	s := New(zerolog.Nop(), Ground(1))

	_, ok := s.Cast(down(3, 0))
	assert.False(t, ok, "outside the plane extent")

	_, ok = s.Cast(rl.Ray{Position: rl.Vector3{Y: 1}, Direction: rl.Vector3{X: 1}})
	assert.False(t, ok, "parallel to the plane")

	_, ok = s.Cast(rl.Ray{Position: rl.Vector3{Y: 1}, Direction: rl.Vector3{Y: 1}})
	assert.False(t, ok, "pointing away")
}

func TestClipSelectionIsExclusive(t *testing.T) {
	s := New(zerolog.Nop(), Ground(5))
	a := s.Adopt(geometry.NewVector3(0, 0, 0))
	b := s.Adopt(geometry.NewVector3(1, 0, 0))

	a.Select()
	assert.True(t, a.IsSelected())
	b.Select()
	assert.False(t, a.IsSelected())
	assert.True(t, b.IsSelected())

	s.Deselect()
	assert.Nil(t, s.Selected())
}

func TestPickAndDrag(t *testing.T) {
	s := New(zerolog.Nop(), Ground(5))
	hit, ok := s.Cast(down(0, 0))
	require.True(t, ok)
	node := s.Anchor(hit)

	c := s.Pick(down(0.05, 0), 0.1)
	require.NotNil(t, c)
	assert.Nil(t, s.Pick(down(1, 0), 0.1))

	assert.False(t, s.Drag(c, down(2, 0)), "not transforming")

	c.BeginDrag()
	assert.True(t, node.IsTransforming())
	assert.True(t, node.IsSelected())
	require.True(t, s.Drag(c, down(2, 1)))
	assert.InDelta(t, 2, node.Position().X, 1e-6)
	assert.InDelta(t, 1, node.Position().Z, 1e-6)

	c.EndDrag()
	assert.False(t, node.IsTransforming())
	assert.True(t, node.IsSelected())
}

func TestSessionWithScene(t *testing.T) {
	s := Default(zerolog.Nop())
	sess := session.New(s, grade.DefaultPalette, zerolog.Nop())
	sess.SetReady()

	hit, ok := s.Cast(down(0, 0))
	require.True(t, ok)
	require.NotNil(t, sess.Tap(hit))

	wall, ok := s.Cast(rl.Ray{Position: rl.Vector3{Y: 1, Z: 5}, Direction: rl.Vector3{Z: -1}})
	require.True(t, ok)
	assert.Nil(t, sess.Tap(wall), "vertical surfaces are ignored")

	hit, ok = s.Cast(down(0.3, 0.5))
	require.True(t, ok)
	require.NotNil(t, sess.Tap(hit))

	chain := sess.Active()
	require.Equal(t, 2, chain.Len())

	clip := s.Clips()[0]
	clip.BeginDrag()
	require.True(t, s.Drag(clip, down(-0.5, 0)))
	assert.Equal(t, 1, sess.Tick(true))

	seg, ok := chain.At(1).Segment()
	require.True(t, ok)
	assert.InDelta(t, -0.5, seg.Start().X, 1e-6)
}
