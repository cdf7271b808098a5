// Package viewer draws a route in a fyne canvas: segments as lines, clips as circles.
package viewer

import (
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/siili/climbingroutes/pkg/geometry"
	"github.com/siili/climbingroutes/pkg/route"
)

// tapRadius is how close (in pixels) a tap must land to a clip to pick it
const tapRadius = 20

var (
	clipOutline     = color.RGBA{255, 255, 255, 255}
	selectedOutline = color.RGBA{30, 144, 255, 255}
	groundColor     = color.RGBA{90, 90, 90, 255}
)

// RouteView renders a route chain in 3D
type RouteView struct {
	widget.BaseWidget
	chain        *route.Chain
	camera       *Camera
	lines        []*canvas.Line
	clips        []*canvas.Circle
	dragStart    *fyne.Position
	isDragging   bool
	width        float64
	height       float64
	onClipTapped func(index int)
	// framed is set once the camera has been fitted to a real viewport
	framed bool
}

// NewRouteView creates a new view of the given route
func NewRouteView(chain *route.Chain) *RouteView {
	r := &RouteView{
		chain:  chain,
		camera: NewCamera(geometry.BoundsOf(chain.Positions())),
	}
	r.ExtendBaseWidget(r)
	return r
}

// SetOnClipTapped sets the callback for when a clip is tapped
func (r *RouteView) SetOnClipTapped(callback func(index int)) {
	r.onClipTapped = callback
}

// SetChain switches the view to another route and refits the camera
func (r *RouteView) SetChain(chain *route.Chain) {
	r.chain = chain
	r.framed = false
	r.Render(r.width, r.height)
}

// CreateRenderer creates the renderer for the widget
func (r *RouteView) CreateRenderer() fyne.WidgetRenderer {
	return &routeViewRenderer{
		view:    r,
		objects: []fyne.CanvasObject{},
	}
}

// Render updates the 3D view
func (r *RouteView) Render(width, height float64) {
	r.width = width
	r.height = height
	if width <= 0 || height <= 0 {
		return
	}
	if !r.framed {
		r.camera.Frame(geometry.BoundsOf(r.chain.Positions()), width/height)
		r.framed = true
	}

	r.lines = r.lines[:0]
	r.clips = r.clips[:0]

	r.lines = append(r.lines, r.groundLine())

	for _, w := range r.chain.Waypoints() {
		if s, ok := w.Segment(); ok {
			x1, y1, _ := r.camera.Project(s.Start(), width, height)
			x2, y2, _ := r.camera.Project(s.End(), width, height)

			line := canvas.NewLine(s.Color.RGBA)
			line.StrokeWidth = float32(math.Max(2, 2*route.SegmentRadius*r.camera.PixelsPerUnit(height)))
			line.Position1 = fyne.NewPos(float32(x1), float32(y1))
			line.Position2 = fyne.NewPos(float32(x2), float32(y2))
			r.lines = append(r.lines, line)
		}
	}

	for _, w := range r.chain.Waypoints() {
		r.clips = append(r.clips, r.clipMarker(w))
	}

	r.Refresh()
}

// groundLine draws the floor below the route as seen from the front
func (r *RouteView) groundLine() *canvas.Line {
	bbox := geometry.BoundsOf(r.chain.Positions())
	center := bbox.Center()
	half := math.Max(minViewSize, bbox.Size().X)

	x1, y1, _ := r.camera.Project(geometry.NewVector3(center.X-half, 0, center.Z), r.width, r.height)
	x2, y2, _ := r.camera.Project(geometry.NewVector3(center.X+half, 0, center.Z), r.width, r.height)

	line := canvas.NewLine(groundColor)
	line.StrokeWidth = 1
	line.Position1 = fyne.NewPos(float32(x1), float32(y1))
	line.Position2 = fyne.NewPos(float32(x2), float32(y2))
	return line
}

func (r *RouteView) clipMarker(w *route.Waypoint) *canvas.Circle {
	x, y, _ := r.camera.Project(w.Position(), r.width, r.height)

	marker := canvas.NewCircle(w.Color().RGBA)
	marker.StrokeColor = clipOutline
	marker.StrokeWidth = 2
	size := float32(10)
	if w.IsStart() {
		size = 14
	}
	if w.IsSelected() {
		marker.StrokeColor = selectedOutline
		marker.StrokeWidth = 3
	}
	marker.Resize(fyne.NewSize(size, size))
	marker.Move(fyne.NewPos(float32(x)-size/2, float32(y)-size/2))
	return marker
}

// Dragged handles mouse drag events for rotation
func (r *RouteView) Dragged(event *fyne.DragEvent) {
	if r.dragStart != nil {
		deltaX := event.Position.X - r.dragStart.X
		deltaY := event.Position.Y - r.dragStart.Y

		r.camera.Rotate(float64(-deltaY)*0.01, float64(deltaX)*0.01)
		r.Render(r.width, r.height)
	}
	r.dragStart = &event.Position
	r.isDragging = true
}

// DragEnd handles the end of a drag event
func (r *RouteView) DragEnd() {
	r.dragStart = nil
	r.isDragging = false
}

// DoubleTapped refits the route and returns to the front view
func (r *RouteView) DoubleTapped(_ *fyne.PointEvent) {
	r.framed = false
	r.Render(r.width, r.height)
}

// Tapped picks the clip nearest to the tap
func (r *RouteView) Tapped(event *fyne.PointEvent) {
	if r.isDragging {
		return
	}

	index, dist := r.NearestClip(float64(event.Position.X), float64(event.Position.Y))
	if index < 0 || dist >= tapRadius {
		return
	}

	r.chain.At(index).Node().Select()
	r.Render(r.width, r.height)

	if r.onClipTapped != nil {
		r.onClipTapped(index)
	}
}

// NearestClip returns the index of the clip closest to the screen coordinates and its
// distance in pixels, or -1 for an empty route
func (r *RouteView) NearestClip(screenX, screenY float64) (int, float64) {
	nearest := -1
	minDist := math.MaxFloat64

	for i, w := range r.chain.Waypoints() {
		x, y, z := r.camera.Project(w.Position(), r.width, r.height)
		if z <= 0 {
			continue
		}
		dist := math.Hypot(x-screenX, y-screenY)
		if dist < minDist {
			minDist = dist
			nearest = i
		}
	}

	return nearest, minDist
}

// Scrolled handles scroll events for zooming
func (r *RouteView) Scrolled(event *fyne.ScrollEvent) {
	delta := -float64(event.Scrolled.DY) * 0.001
	r.camera.Zoom(delta)
	r.Render(r.width, r.height)
}

// routeViewRenderer implements fyne.WidgetRenderer
type routeViewRenderer struct {
	view    *RouteView
	objects []fyne.CanvasObject
}

func (m *routeViewRenderer) Layout(size fyne.Size) {
	m.view.Render(float64(size.Width), float64(size.Height))
}

func (m *routeViewRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (m *routeViewRenderer) Refresh() {
	m.objects = make([]fyne.CanvasObject, 0, len(m.view.lines)+len(m.view.clips))
	for _, line := range m.view.lines {
		m.objects = append(m.objects, line)
	}
	for _, clip := range m.view.clips {
		m.objects = append(m.objects, clip)
	}
	canvas.Refresh(m.view)
}

func (m *routeViewRenderer) Objects() []fyne.CanvasObject {
	return m.objects
}

func (m *routeViewRenderer) Destroy() {}
