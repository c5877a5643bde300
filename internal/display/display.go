// Package display models the renderable composition handed to the display
// sink. The physical panel driver lives behind the Sink interface; everything
// here is plain data.
package display

// Color is a 24-bit RGB value, e.g. 0xFFFF00 for yellow.
type Color uint32

// Anchor places an element relative to its own bounds: (0,0) anchors the top
// left corner at the position, (0.5,0.5) the center, (0.5,1) bottom center.
type Anchor struct {
	X, Y float64
}

// Point is an absolute panel coordinate.
type Point struct {
	X, Y int
}

// Element is one positioned item in a composition.
type Element interface {
	element()
}

// Text is a positioned, colored, anchored text label.
type Text struct {
	Value  string
	Color  Color
	Anchor Anchor
	Pos    Point
}

func (Text) element() {}

// Bitmap is a positioned team logo, resolved from a league-scoped namespace.
// Data may be nil when the lookup failed; the slot stays blank.
type Bitmap struct {
	Namespace string
	Team      string
	Pos       Point
	Data      []byte
}

func (Bitmap) element() {}

// Composition is one full screen. A sink shows it atomically, replacing
// whatever was previously visible.
type Composition struct {
	Elements []Element
}

// Sink makes a composition visible.
type Sink interface {
	Show(Composition)
}
