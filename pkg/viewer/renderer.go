// Package viewer renders the gem as a wireframe inside a fyne widget. It has
// no GPU dependency; facet edges are projected to canvas lines every frame.
// All interaction is forwarded to the shared input dispatcher, so the same
// controllers drive this widget and the raylib window alike.
package viewer

import (
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/cymmbal/demo-gems/pkg/gem"
	"github.com/cymmbal/demo-gems/pkg/geometry"
	"github.com/cymmbal/demo-gems/pkg/input"
	"github.com/cymmbal/demo-gems/pkg/view"
)

// Scroll deltas are scaled up so one notch clears the zoom noise filter
const scrollScale = 10.0

// Pose holds the stone's eased rotation for the software renderer
type Pose struct {
	rotation geometry.EulerRotation
}

// ApplyTransform receives the eased rotation from the view model
func (p *Pose) ApplyTransform(t view.Transform) {
	p.rotation = t.Rotation
}

// Rotation returns the current spin
func (p *Pose) Rotation() geometry.EulerRotation {
	return p.rotation
}

// GemRenderer renders the stone in 3D and forwards pointer and scroll input
// to the dispatcher
type GemRenderer struct {
	widget.BaseWidget
	model   *gem.Model
	camera  *Camera
	pose    *Pose
	surface *input.Dispatcher

	lines      []*canvas.Line
	width      float64
	height     float64
	isDragging bool
}

// NewGemRenderer creates a renderer for the given stone
func NewGemRenderer(model *gem.Model, camera *Camera, pose *Pose, surface *input.Dispatcher) *GemRenderer {
	r := &GemRenderer{
		model:   model,
		camera:  camera,
		pose:    pose,
		surface: surface,
		lines:   make([]*canvas.Line, 0),
	}
	r.ExtendBaseWidget(r)
	return r
}

// CreateRenderer creates the renderer for the widget
func (r *GemRenderer) CreateRenderer() fyne.WidgetRenderer {
	return &gemWidgetRenderer{
		renderer: r,
		objects:  []fyne.CanvasObject{},
	}
}

// Render projects the stone with its current rotation and rebuilds the lines
func (r *GemRenderer) Render(width, height float64) {
	r.width = width
	r.height = height

	r.lines = make([]*canvas.Line, 0)

	rotation := r.pose.Rotation()
	for _, triangle := range r.model.Triangles {
		vertices := []geometry.Vector3{
			rotation.Apply(triangle.V1),
			rotation.Apply(triangle.V2),
			rotation.Apply(triangle.V3),
		}

		for i := 0; i < 3; i++ {
			v1 := vertices[i]
			v2 := vertices[(i+1)%3]

			x1, y1, z1 := r.camera.Project(v1, width, height)
			x2, y2, z2 := r.camera.Project(v2, width, height)

			// Nearer edges render brighter
			avgZ := (z1 + z2) / 2
			brightness := uint8(math.Max(60, math.Min(255, 255-avgZ*25)))

			line := canvas.NewLine(color.RGBA{brightness / 2, brightness, 255, 255})
			line.StrokeWidth = 1
			line.Position1 = fyne.NewPos(float32(x1), float32(y1))
			line.Position2 = fyne.NewPos(float32(x2), float32(y2))

			r.lines = append(r.lines, line)
		}
	}

	r.Refresh()
}

// Dragged forwards drag gestures as pointer events. The first drag of a
// gesture synthesizes the press that fyne folds into the drag.
func (r *GemRenderer) Dragged(event *fyne.DragEvent) {
	if !r.isDragging {
		r.isDragging = true
		r.surface.EmitPointerDown(input.PointerEvent{
			X: float64(event.Position.X - event.Dragged.DX),
			Y: float64(event.Position.Y - event.Dragged.DY),
		})
	}
	r.surface.EmitPointerMove(input.PointerEvent{
		X: float64(event.Position.X),
		Y: float64(event.Position.Y),
	})
}

// DragEnd releases the synthesized pointer
func (r *GemRenderer) DragEnd() {
	if !r.isDragging {
		return
	}
	r.isDragging = false
	r.surface.EmitPointerUp(input.PointerEvent{})
}

// MouseIn implements desktop.Hoverable
func (r *GemRenderer) MouseIn(*desktop.MouseEvent) {}

// MouseMoved feeds hover drift on desktop
func (r *GemRenderer) MouseMoved(event *desktop.MouseEvent) {
	if r.isDragging {
		return
	}
	r.surface.EmitPointerMove(input.PointerEvent{
		X: float64(event.Position.X),
		Y: float64(event.Position.Y),
	})
}

// MouseOut implements desktop.Hoverable
func (r *GemRenderer) MouseOut() {}

// Scrolled forwards scroll gestures as wheel events; scroll up zooms in
func (r *GemRenderer) Scrolled(event *fyne.ScrollEvent) {
	r.surface.EmitWheel(input.WheelEvent{
		DeltaY: float64(-event.Scrolled.DY) * scrollScale,
	})
}

// gemWidgetRenderer implements fyne.WidgetRenderer
type gemWidgetRenderer struct {
	renderer *GemRenderer
	objects  []fyne.CanvasObject
}

func (g *gemWidgetRenderer) Layout(size fyne.Size) {
	g.renderer.surface.EmitResize(input.ResizeEvent{
		Width:  float64(size.Width),
		Height: float64(size.Height),
	})
	g.renderer.Render(float64(size.Width), float64(size.Height))
}

func (g *gemWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (g *gemWidgetRenderer) Refresh() {
	g.objects = make([]fyne.CanvasObject, 0)
	for _, line := range g.renderer.lines {
		g.objects = append(g.objects, line)
	}
	canvas.Refresh(g.renderer)
}

func (g *gemWidgetRenderer) Objects() []fyne.CanvasObject {
	return g.objects
}

func (g *gemWidgetRenderer) Destroy() {}
