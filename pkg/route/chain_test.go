package route

import (
	"testing"

	"github.com/google/uuid"
	"github.com/siili/climbingroutes/pkg/geometry"
	"github.com/siili/climbingroutes/pkg/grade"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildChain(t *testing.T, n int) (*Chain, *SelectionSystem, []*Handle) {
	t.Helper()

	sys := NewSelectionSystem()
	c := New()
	handles := make([]*Handle, n)
	for i := 0; i < n; i++ {
		handles[i] = sys.Place(geometry.NewVector3(float64(i), float64(i)*2, 0))
		c.Append(handles[i])
	}
	return c, sys, handles
}

func segmentsOf(c *Chain) []Segment {
	segs := make([]Segment, c.Len())
	for i, w := range c.Waypoints() {
		segs[i], _ = w.Segment()
	}
	return segs
}

func TestAppendBuildsChain(t *testing.T) {
	c, _, _ := buildChain(t, 5)

	require.Equal(t, 5, c.Len())

	start := c.At(0)
	assert.True(t, start.IsStart())
	_, ok := start.Segment()
	assert.False(t, ok)

	for i := 1; i < c.Len(); i++ {
		w := c.At(i)
		assert.False(t, w.IsStart())
		assert.Equal(t, i, w.Index())

		s, ok := w.Segment()
		require.True(t, ok, "waypoint %d has no segment", i)
		assert.Equal(t, i-1, s.From)
		assert.Equal(t, i, s.To)
		assert.InDelta(t, c.At(i-1).Position().Distance(w.Position()), s.Length, 1e-10)
	}
}

func TestAppendSelectsNewWaypoint(t *testing.T) {
	c, sys, handles := buildChain(t, 3)

	idx, ok := c.SelectedIndex()
	require.True(t, ok)
	assert.Equal(t, 2, idx)
	assert.Same(t, handles[2], sys.Selected())
	assert.True(t, c.At(2).IsSelected())
	assert.False(t, c.At(0).IsSelected())
	assert.False(t, c.At(1).IsSelected())
}

func TestEmptyChainIsNoOp(t *testing.T) {
	c := New()

	assert.Equal(t, 0, c.UpdateIfNeeded())
	c.RecolorAll()
	assert.Equal(t, 0, c.Len())
	_, ok := c.SelectedIndex()
	assert.False(t, ok)
	assert.Empty(t, c.Positions())
}

func TestUpdateIfNeededIdleSelection(t *testing.T) {
	c, _, _ := buildChain(t, 4)
	before := segmentsOf(c)

	assert.Equal(t, 0, c.UpdateIfNeeded())
	assert.Equal(t, before, segmentsOf(c))
}

func TestUpdateIfNeededMovesAdjacentSegmentsOnly(t *testing.T) {
	c, _, handles := buildChain(t, 5)
	before := segmentsOf(c)

	handles[2].BeginTransform()
	handles[2].Move(geometry.NewVector3(10, 0, 5))

	assert.Equal(t, 2, c.UpdateIfNeeded())
	idx, _ := c.SelectedIndex()
	assert.Equal(t, 2, idx)

	after := segmentsOf(c)
	assert.Equal(t, before[1], after[1])
	assert.Equal(t, before[4], after[4])
	assert.NotEqual(t, before[2], after[2])
	assert.NotEqual(t, before[3], after[3])

	assert.InDelta(t, handles[1].Position().Distance(handles[2].Position()), after[2].Length, 1e-10)
	assert.InDelta(t, handles[2].Position().Distance(handles[3].Position()), after[3].Length, 1e-10)
}

func TestUpdateIfNeededEndpoints(t *testing.T) {
	c, _, handles := buildChain(t, 3)

	// start waypoint only has a successor segment
	handles[0].BeginTransform()
	handles[0].Move(geometry.NewVector3(-1, -1, -1))
	assert.Equal(t, 1, c.UpdateIfNeeded())
	s, _ := c.At(1).Segment()
	assert.InDelta(t, handles[0].Position().Distance(handles[1].Position()), s.Length, 1e-10)

	// tail only has its own segment
	handles[2].BeginTransform()
	handles[2].Move(geometry.NewVector3(4, 4, 4))
	assert.Equal(t, 1, c.UpdateIfNeeded())
	s, _ = c.At(2).Segment()
	assert.InDelta(t, handles[1].Position().Distance(handles[2].Position()), s.Length, 1e-10)
}

func TestUpdateIfNeededSingleWaypoint(t *testing.T) {
	c, _, handles := buildChain(t, 1)

	handles[0].BeginTransform()
	handles[0].Move(geometry.NewVector3(3, 3, 3))
	assert.Equal(t, 0, c.UpdateIfNeeded())
}

func TestUpdateIfNeededFollowsSelectionChange(t *testing.T) {
	c, _, handles := buildChain(t, 6)

	// selection moves from the tail to waypoint 1 without dragging
	handles[1].Select()
	assert.Equal(t, 0, c.UpdateIfNeeded())
	idx, ok := c.SelectedIndex()
	require.True(t, ok)
	assert.Equal(t, 1, idx)

	before := segmentsOf(c)
	handles[1].BeginTransform()
	handles[1].Move(geometry.NewVector3(0, 10, 0))
	assert.Equal(t, 2, c.UpdateIfNeeded())

	after := segmentsOf(c)
	assert.NotEqual(t, before[1], after[1])
	assert.NotEqual(t, before[2], after[2])
	for _, i := range []int{3, 4, 5} {
		assert.Equal(t, before[i], after[i], "segment %d should not change", i)
	}
}

func TestUpdateIfNeededSelectionChangeWhileDragging(t *testing.T) {
	c, _, handles := buildChain(t, 4)

	// the rescan and the update happen in the same tick
	handles[0].BeginTransform()
	handles[0].Move(geometry.NewVector3(0, -3, 0))
	assert.Equal(t, 1, c.UpdateIfNeeded())
	idx, _ := c.SelectedIndex()
	assert.Equal(t, 0, idx)
}

func TestUpdateIfNeededNothingSelected(t *testing.T) {
	c, sys, _ := buildChain(t, 3)

	sys.Deselect()
	assert.Equal(t, 0, c.UpdateIfNeeded())

	idx, ok := c.SelectedIndex()
	require.True(t, ok)
	assert.Equal(t, 2, idx, "selection cache is kept when nothing is selected")
}

func TestRecolorAllFollowsDifficulty(t *testing.T) {
	c, _, _ := buildChain(t, 3)
	assert.Equal(t, grade.Yellow, c.Color().Band)

	v := c.Info().Values()
	v.Difficulty = 30
	res, err := c.UpdateInfo(v)
	require.NoError(t, err)
	assert.True(t, res.OK())

	want := Color{Band: grade.Red, RGBA: grade.DefaultPalette.Color(grade.Red)}
	for _, w := range c.Waypoints() {
		assert.Equal(t, want, w.Color())
		if s, ok := w.Segment(); ok {
			assert.Equal(t, want, s.Color)
		}
	}
}

func TestUpdateInfoWithoutRouteTypeStillRecolors(t *testing.T) {
	c, _, _ := buildChain(t, 2)

	v := c.Info().Values()
	v.SetType(grade.TypeNone)
	v.Difficulty = 0

	res, err := c.UpdateInfo(v)
	require.NoError(t, err)
	assert.ErrorIs(t, res.Err, grade.ErrNoRouteTypeSelected)
	assert.Equal(t, grade.Green, c.At(0).Color().Band)
	assert.Equal(t, grade.Green, c.At(1).Color().Band)
}

func TestUpdateInfoInvalidDifficultyKeepsColors(t *testing.T) {
	c, _, _ := buildChain(t, 2)
	before := c.At(1).Color()

	v := c.Info().Values()
	v.Difficulty = 99
	_, err := c.UpdateInfo(v)
	require.ErrorIs(t, err, grade.ErrInvalidDifficulty)

	assert.Equal(t, before, c.At(1).Color())
	assert.Equal(t, 10, c.Info().Difficulty())
}

func TestApplyForm(t *testing.T) {
	c, _, _ := buildChain(t, 2)

	form := grade.NewMapForm(grade.Values{Name: "Arete", Difficulty: 20, Sport: true})
	res, err := c.ApplyForm(form)
	require.NoError(t, err)
	assert.True(t, res.OK())
	assert.Equal(t, "Arete", c.Info().Name())
	assert.Equal(t, grade.Orange, c.At(1).Color().Band)

	out := grade.NewMapForm(grade.Values{})
	require.NoError(t, c.FillForm(out))
	assert.Equal(t, "Arete", out[grade.FieldName])
	assert.Equal(t, 20, out[grade.FieldDifficulty])
}

func TestApplyFormIncomplete(t *testing.T) {
	c, _, _ := buildChain(t, 2)
	before := c.Info().Values()

	form := grade.NewMapForm(grade.Values{Name: "Arete", Difficulty: 30, Sport: true})
	delete(form, grade.FieldNotes)

	_, err := c.ApplyForm(form)
	require.ErrorIs(t, err, grade.ErrIncompleteFormBinding)
	assert.Equal(t, before, c.Info().Values())
	assert.Equal(t, grade.Yellow, c.At(0).Color().Band)
}

func TestInfoIsCopied(t *testing.T) {
	info := grade.NewInfo()
	c := New(WithInfo(info))

	v := info.Values()
	v.Difficulty = 0
	_, err := info.Update(v)
	require.NoError(t, err)

	assert.Equal(t, 10, c.Info().Difficulty())
}

func TestOptions(t *testing.T) {
	id := uuid.New()
	palette := grade.BandPalette{}
	palette[grade.Yellow].R = 1

	c := New(WithID(id), WithPalette(palette))
	assert.Equal(t, id, c.ID())
	assert.Equal(t, uint8(1), c.Color().RGBA.R)
}
