package grade

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInfoDefaults(t *testing.T) {
	info := NewInfo()

	assert.Equal(t, "", info.Name())
	assert.Equal(t, PlaceholderName, info.DisplayName())
	assert.Equal(t, 10, info.Difficulty())
	assert.Equal(t, Boulder, info.Type())
	assert.Equal(t, 1, info.StartHolds())
	assert.Equal(t, Yellow, info.Band())
	assert.Equal(t, "6A", info.Text())
	assert.True(t, info.Validate().OK())
}

func TestUpdateAppliesAllValues(t *testing.T) {
	info := NewInfo()
	v := Values{
		Name:       "Crimp Street",
		Difficulty: 27,
		Sport:      true,
		SitStart:   true,
		StartHolds: 2,
		TopOut:     true,
		Notes:      "stay left",
	}

	res, err := info.Update(v)
	require.NoError(t, err)
	assert.True(t, res.OK())
	assert.Empty(t, res.Warnings)
	assert.Equal(t, v, info.Values())
	assert.Equal(t, Sport, info.Type())
	assert.Equal(t, Red, info.Band())
	assert.Equal(t, "8A-", info.Text())
}

func TestUpdateRejectsInvalidDifficulty(t *testing.T) {
	info := NewInfo()
	before := info.Values()

	v := before
	v.Name = "Too Hard"
	v.Difficulty = 36

	_, err := info.Update(v)
	require.ErrorIs(t, err, ErrInvalidDifficulty)
	assert.Equal(t, before, info.Values())
}

func TestUpdateWithoutRouteType(t *testing.T) {
	info := NewInfo()
	v := info.Values()
	v.SetType(TypeNone)
	v.Difficulty = 20

	res, err := info.Update(v)
	require.NoError(t, err)
	assert.False(t, res.OK())
	assert.ErrorIs(t, res.Err, ErrNoRouteTypeSelected)

	// Values are still applied so the route stays consistent with the form
	assert.Equal(t, 20, info.Difficulty())
	assert.Equal(t, TypeNone, info.Type())
}

// Too many start holds is accepted with a warning; saving is not blocked.
func TestValidateTooManyStartHoldsIsLenient(t *testing.T) {
	info := NewInfo()
	v := info.Values()
	v.StartHolds = 3

	res, err := info.Update(v)
	require.NoError(t, err)
	assert.True(t, res.OK())
	require.Len(t, res.Warnings, 1)
	assert.ErrorIs(t, res.Warnings[0], ErrTooManyStartHolds)
	assert.Equal(t, 3, info.StartHolds())
}

func TestValidateDefaultsEmptyName(t *testing.T) {
	info := NewInfo()

	res := info.Validate()
	assert.True(t, res.OK())
	assert.Equal(t, PlaceholderName, info.Name())
}

func TestUpdateRejectsNegativeStartHolds(t *testing.T) {
	info := NewInfo()
	v := info.Values()
	v.StartHolds = -1

	_, err := info.Update(v)
	assert.Error(t, err)
	assert.Equal(t, 1, info.StartHolds())
}

func TestTypeResolutionOrder(t *testing.T) {
	info, err := NewInfoFrom(Values{Difficulty: 0, Sport: true, Trad: true})
	require.NoError(t, err)
	assert.Equal(t, Sport, info.Type())

	rt, err := ParseRouteType("Trad")
	require.NoError(t, err)
	assert.Equal(t, Trad, rt)
	_, err = ParseRouteType("aid")
	assert.Error(t, err)
}

func TestCloneIsIndependent(t *testing.T) {
	info := NewInfo()
	clone := info.Clone()

	v := clone.Values()
	v.Difficulty = 30
	_, err := clone.Update(v)
	require.NoError(t, err)

	assert.Equal(t, 10, info.Difficulty())
	assert.Equal(t, 30, clone.Difficulty())
}

func TestCard(t *testing.T) {
	info, err := NewInfoFrom(Values{
		Difficulty: 17,
		Boulder:    true,
		SitStart:   true,
		StartHolds: 2,
		Notes:      "heel hook",
	})
	require.NoError(t, err)

	card := info.Card()
	assert.Equal(t, PlaceholderName, card.Name)
	assert.Equal(t, "6C+", card.Grade)
	assert.Equal(t, Yellow, card.Band)
	assert.Equal(t, "Boulder", card.Type)

	s := card.String()
	assert.Contains(t, s, "Nameless Route  6C+ (yellow)  Boulder")
	assert.Contains(t, s, "sit start, 2 start hold(s)")
	assert.Contains(t, s, "heel hook")
}
