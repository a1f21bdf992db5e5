package geometry

import "math"

// Point is a position in screen coordinates
type Point struct {
	X, Y int
}

// Rect is a screen rectangle given by its min and max corners
type Rect struct {
	MinX, MinY int
	MaxX, MaxY int
}

func (r Rect) Width() int  { return r.MaxX - r.MinX }
func (r Rect) Height() int { return r.MaxY - r.MinY }

// Empty reports whether the rectangle covers no area
func (r Rect) Empty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// Placement is the computed window size and, when Positioned is set, its
// top-left corner. An unpositioned window is left to the OS.
type Placement struct {
	Width, Height int
	X, Y          int
	Positioned    bool
}

// Place sizes a row of count icons and floats it above the cursor, centred
// horizontally, clamped into the work area one axis at a time.
//
// A window larger than the work area ends up left of (or above) the minimum
// edge because the upper clamp runs last. An empty work area disables clamping.
func Place(iconSize uint32, count int, cursor Point, cursorKnown bool, area Rect) Placement {
	return PlaceScaled(iconSize, count, 1, cursor, cursorKnown, area)
}

// PlaceScaled is Place for a canvas drawn at scale device pixels per icon
// pixel. A scale of zero or less counts as 1.
func PlaceScaled(iconSize uint32, count int, scale float32, cursor Point, cursorKnown bool, area Rect) Placement {
	if scale <= 0 {
		scale = 1
	}
	p := Placement{
		Width:  int(math.Round(float64(iconSize) * float64(count) * float64(scale))),
		Height: int(math.Round(float64(iconSize) * float64(scale))),
	}
	if !cursorKnown {
		return p
	}

	p.X = cursor.X - p.Width/2
	p.Y = cursor.Y - p.Height
	p.Positioned = true

	if area.Empty() {
		return p
	}

	p.X = clampAxis(p.X, p.Width, area.MinX, area.MaxX)
	p.Y = clampAxis(p.Y, p.Height, area.MinY, area.MaxY)
	return p
}

func clampAxis(pos, size, lo, hi int) int {
	if pos < lo {
		pos = lo
	}
	if pos+size > hi {
		pos = hi - size
	}
	return pos
}
