package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/siili/climbingroutes/pkg/geometry"
	"github.com/siili/climbingroutes/pkg/grade"
	"github.com/siili/climbingroutes/pkg/route"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoClipRoute() *route.Chain {
	sys := route.NewSelectionSystem()
	chain := route.New()
	chain.Append(sys.Place(geometry.NewVector3(0, 0, 0)))
	chain.Append(sys.Place(geometry.NewVector3(0, 2, 0)))
	return chain
}

func testOptions() Options {
	return Options{Width: 200, Height: 400, Margin: 20, ClipRadius: 0.06}
}

func TestElevationDrawsSegmentInRouteColor(t *testing.T) {
	chain := twoClipRoute()

	img, err := Elevation(chain, testOptions())
	require.NoError(t, err)

	// Halfway up the segment, scale 160 px/m centered on (0, 1)
	assert.Equal(t, grade.DefaultPalette.Color(grade.Yellow), img.RGBAAt(100, 200))
	assert.Equal(t, background, img.RGBAAt(5, 5))
}

func TestElevationEmptyRoute(t *testing.T) {
	img, err := Elevation(route.New(), testOptions())
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 400, img.Bounds().Dy())
}

func TestElevationInvalidSize(t *testing.T) {
	_, err := Elevation(route.New(), Options{Width: 0, Height: 10})
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestElevationDegenerateSegmentIsSkipped(t *testing.T) {
	sys := route.NewSelectionSystem()
	chain := route.New()
	chain.Append(sys.Place(geometry.NewVector3(0, 1, 0)))
	chain.Append(sys.Place(geometry.NewVector3(0, 1, 0)))

	_, err := Elevation(chain, testOptions())
	assert.NoError(t, err)
}

func TestElevationSmallImageKeepsOrientation(t *testing.T) {
	sys := route.NewSelectionSystem()
	chain := route.New()
	chain.Append(sys.Place(geometry.NewVector3(-1, 0, 0)))
	chain.Append(sys.Place(geometry.NewVector3(1, 2, 0)))

	opts := DefaultOptions()
	opts.Width, opts.Height = 60, 60

	v := newView(geometry.BoundsOf(chain.Positions()), opts)
	require.Greater(t, v.scale, 0.0)

	leftX, bottomY := v.project(geometry.NewVector3(-1, 0, 0))
	rightX, topY := v.project(geometry.NewVector3(1, 2, 0))
	assert.Less(t, leftX, rightX)
	assert.Less(t, topY, bottomY)
	assert.InDelta(t, 15, leftX, 1e-3)
	assert.InDelta(t, 45, rightX, 1e-3)

	_, err := Elevation(chain, opts)
	assert.NoError(t, err)
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, twoClipRoute(), testOptions()))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
}
