package platform

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

var stripBackground = color.NRGBA{R: 50, G: 50, B: 50, A: 255}

// IconStrip draws icons left to right, one per iconSize slot, and reports
// the x coordinate of mouse presses.
type IconStrip struct {
	widget.BaseWidget
	iconSize float32
	images   []*canvas.Image
	OnPress  func(x int)
}

func NewIconStrip(iconSize int, images []*canvas.Image) *IconStrip {
	s := &IconStrip{
		iconSize: float32(iconSize),
		images:   images,
	}
	s.ExtendBaseWidget(s)
	return s
}

type iconStripRenderer struct {
	s  *IconStrip
	bg *canvas.Rectangle
}

// Layout scales each icon into its slot with a 1px inset
func (r *iconStripRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)

	inner := r.s.iconSize - 2
	if inner < 0 {
		inner = 0
	}
	for i, img := range r.s.images {
		img.Move(fyne.NewPos(float32(i)*r.s.iconSize+1, 1))
		img.Resize(fyne.NewSquareSize(inner))
	}
}

func (r *iconStripRenderer) MinSize() fyne.Size {
	return fyne.NewSize(r.s.iconSize*float32(len(r.s.images)), r.s.iconSize)
}

func (r *iconStripRenderer) Refresh() {
	r.bg.Refresh()
	for _, img := range r.s.images {
		img.Refresh()
	}
}

func (r *iconStripRenderer) Objects() []fyne.CanvasObject {
	objects := make([]fyne.CanvasObject, 0, len(r.s.images)+1)
	objects = append(objects, r.bg)
	for _, img := range r.s.images {
		objects = append(objects, img)
	}
	return objects
}

func (r *iconStripRenderer) Destroy() {}

func (s *IconStrip) CreateRenderer() fyne.WidgetRenderer {
	return &iconStripRenderer{s: s, bg: canvas.NewRectangle(stripBackground)}
}

func (s *IconStrip) MouseDown(ev *desktop.MouseEvent) {
	if s.OnPress != nil {
		s.OnPress(int(ev.Position.X))
	}
}

func (s *IconStrip) MouseUp(*desktop.MouseEvent) {}
