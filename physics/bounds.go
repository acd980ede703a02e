package physics

import (
	"github.com/mcp-tool-shop-org/tablesim/body"
	"github.com/mcp-tool-shop-org/tablesim/vecmath"
)

// Bounds is an optional axis-aligned play area. A World with Bounds set
// reflects any body whose shape would otherwise cross an edge, clamping
// its position back inside and flipping the offending velocity component.
// Bounds has no teacher analogue; it is a board-game-specific addition (a
// scene is a bounded table, not an open world) kept as a plain data
// component rather than folded into World to stay independently testable.
type Bounds struct {
	Min, Max vecmath.Vector2
}

// Reflect clamps b's position inside bnds and flips the velocity component
// that drove it out, scaled by the body's own restitution, for every body
// whose shape protrudes past an edge. Static bodies are left untouched: a
// wall is allowed to sit outside its own bounds. Any reflection wakes b.
func Reflect(bnds Bounds, b *body.Body) {
	if b.IsStatic {
		return
	}

	half := extentOf(b.Shape)
	reflected := false

	if b.Position.X-half.X < bnds.Min.X {
		b.Position.X = bnds.Min.X + half.X
		if b.Velocity.X < 0 {
			b.Velocity.X = -b.Velocity.X * b.Restitution
			reflected = true
		}
	} else if b.Position.X+half.X > bnds.Max.X {
		b.Position.X = bnds.Max.X - half.X
		if b.Velocity.X > 0 {
			b.Velocity.X = -b.Velocity.X * b.Restitution
			reflected = true
		}
	}

	if b.Position.Y-half.Y < bnds.Min.Y {
		b.Position.Y = bnds.Min.Y + half.Y
		if b.Velocity.Y < 0 {
			b.Velocity.Y = -b.Velocity.Y * b.Restitution
			reflected = true
		}
	} else if b.Position.Y+half.Y > bnds.Max.Y {
		b.Position.Y = bnds.Max.Y - half.Y
		if b.Velocity.Y > 0 {
			b.Velocity.Y = -b.Velocity.Y * b.Restitution
			reflected = true
		}
	}

	if reflected {
		b.Wake()
	}
}

func extentOf(s body.Shape) vecmath.Vector2 {
	switch s.Kind {
	case body.Circle:
		return vecmath.NewVector2(s.Radius, s.Radius)
	case body.Rect:
		return s.HalfExtents()
	default:
		return vecmath.Vector2{}
	}
}
