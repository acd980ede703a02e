package body

import "github.com/mcp-tool-shop-org/tablesim/vecmath"

// Kind discriminates a Shape's active payload. Shapes are a closed set —
// adding a new kind means adding a case everywhere Kind is switched on,
// not adding new optional fields to Shape.
type Kind int

const (
	// Circle shapes carry Radius.
	Circle Kind = iota
	// Rect shapes carry Width/Height (axis-aligned, no rotation).
	Rect
	// Polygon shapes carry Vertices. Stored but not collided by the core
	// narrowphase (see physics/collision).
	Polygon
)

// Shape is a tagged union over the body shapes the core understands.
// Only the field matching Kind is meaningful.
type Shape struct {
	Kind Kind

	Radius float32 // Circle

	Width  float32 // Rect
	Height float32 // Rect

	Vertices []vecmath.Vector2 // Polygon, in the body's local frame
}

// NewCircle returns a Circle shape with the given radius.
func NewCircle(radius float32) Shape {
	return Shape{Kind: Circle, Radius: radius}
}

// NewRect returns an axis-aligned Rect shape with the given full width and
// height.
func NewRect(width, height float32) Shape {
	return Shape{Kind: Rect, Width: width, Height: height}
}

// NewPolygon returns a Polygon shape over the given local-frame vertices.
// The slice is copied so the caller cannot alias the shape's vertex data.
func NewPolygon(vertices []vecmath.Vector2) Shape {
	cp := make([]vecmath.Vector2, len(vertices))
	copy(cp, vertices)
	return Shape{Kind: Polygon, Vertices: cp}
}

// HalfExtents returns the half-width/half-height of a Rect shape. It is
// only meaningful when Kind == Rect.
func (s Shape) HalfExtents() vecmath.Vector2 {
	return vecmath.NewVector2(s.Width/2, s.Height/2)
}
