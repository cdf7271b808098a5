package infoform

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/siili/climbingroutes/pkg/geometry"
	"github.com/siili/climbingroutes/pkg/grade"
	"github.com/siili/climbingroutes/pkg/route"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteThenRead(t *testing.T) {
	test.NewTempApp(t)

	f := New(grade.DefaultPalette)
	v := grade.Values{
		Name:       "Slab Dance",
		Difficulty: 22,
		Trad:       true,
		SitStart:   true,
		StartHolds: 2,
		Notes:      "friction",
	}
	require.NoError(t, grade.WriteForm(f, v))
	assert.Equal(t, "7B", f.GradeText())

	got, err := grade.ReadForm(f, v)
	require.NoError(t, err)
	assert.Equal(t, v, got)
}

func TestUserEditsRecolorRoute(t *testing.T) {
	test.NewTempApp(t)

	sys := route.NewSelectionSystem()
	chain := route.New()
	chain.Append(sys.Place(geometry.NewVector3(0, 0, 0)))
	chain.Append(sys.Place(geometry.NewVector3(0, 1, 0)))

	f := New(grade.DefaultPalette)
	require.NoError(t, chain.FillForm(f))

	test.Type(f.name, "Roof")
	f.difficulty.SetValue(30)

	res, err := chain.ApplyForm(f)
	require.NoError(t, err)
	assert.True(t, res.OK())
	assert.Equal(t, "Roof", chain.Info().Name())
	assert.Equal(t, grade.Red, chain.At(1).Color().Band)
}

func TestUnboundFieldRejectsForm(t *testing.T) {
	test.NewTempApp(t)

	f := New(grade.DefaultPalette)
	f.Unbind(grade.FieldNotes)
	assert.False(t, f.Has(grade.FieldNotes))

	_, err := grade.ReadForm(f, grade.NewInfo().Values())
	assert.ErrorIs(t, err, grade.ErrIncompleteFormBinding)
	assert.ErrorIs(t, grade.WriteForm(f, grade.NewInfo().Values()), grade.ErrIncompleteFormBinding)
}

func TestNoTypeSelected(t *testing.T) {
	test.NewTempApp(t)

	chain := route.New()
	f := New(grade.DefaultPalette)
	require.NoError(t, chain.FillForm(f))
	f.SetChecked(grade.FieldBoulder, false)

	res, err := chain.ApplyForm(f)
	require.NoError(t, err)
	assert.ErrorIs(t, res.Err, grade.ErrNoRouteTypeSelected)
}
