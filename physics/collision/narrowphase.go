package collision

import (
	"github.com/mcp-tool-shop-org/tablesim/body"
	"github.com/mcp-tool-shop-org/tablesim/vecmath"
)

// Manifold describes a single overlapping contact between two bodies.
// Normal points from A toward B; Penetration is the overlap depth along
// Normal.
type Manifold struct {
	A, B        *body.Body
	Normal      vecmath.Vector2
	Penetration float32
}

// Test dispatches a candidate pair to the narrow-phase routine matching its
// shape kinds, returning ok=false when the shapes do not overlap.
func Test(a, b *body.Body) (Manifold, bool) {
	switch {
	case a.Shape.Kind == body.Circle && b.Shape.Kind == body.Circle:
		return circleCircle(a, b)
	case a.Shape.Kind == body.Circle && b.Shape.Kind == body.Rect:
		return circleRect(a, b)
	case a.Shape.Kind == body.Rect && b.Shape.Kind == body.Circle:
		m, ok := circleRect(b, a)
		if !ok {
			return Manifold{}, false
		}
		m.A, m.B = m.B, m.A
		m.Normal = m.Normal.Negated()
		return m, true
	case a.Shape.Kind == body.Rect && b.Shape.Kind == body.Rect:
		return rectRect(a, b)
	default:
		// Polygon pairs are accepted into the scene but not collided by
		// the core narrowphase.
		return Manifold{}, false
	}
}

// FindManifolds runs the broad phase then the narrow phase over bodies,
// returning every overlapping contact.
func FindManifolds(bodies []*body.Body) []Manifold {
	manifolds := make([]Manifold, 0)
	for _, pair := range FindPairs(bodies) {
		if m, ok := Test(pair.A, pair.B); ok {
			manifolds = append(manifolds, m)
		}
	}
	return manifolds
}

func circleCircle(a, b *body.Body) (Manifold, bool) {
	delta := b.Position.Sub(a.Position)
	distSq := delta.LengthSq()
	radiusSum := a.Shape.Radius + b.Shape.Radius

	if distSq >= radiusSum*radiusSum {
		return Manifold{}, false
	}

	dist := vecmath.Sqrt(distSq)
	var normal vecmath.Vector2
	if dist < vecmath.Epsilon {
		// Coincident centers: penetration is well-defined but direction is
		// not: pick an arbitrary axis rather than dividing by zero.
		normal = vecmath.NewVector2(1, 0)
		dist = 0
	} else {
		normal = delta.Scale(1 / dist)
	}

	return Manifold{A: a, B: b, Normal: normal, Penetration: radiusSum - dist}, true
}

func circleRect(circle, rect *body.Body) (Manifold, bool) {
	half := rect.Shape.HalfExtents()
	delta := circle.Position.Sub(rect.Position)

	closest := vecmath.NewVector2(
		vecmath.Clamp(delta.X, -half.X, half.X),
		vecmath.Clamp(delta.Y, -half.Y, half.Y),
	)

	inside := delta.Equals(closest)

	// toClosest points from the rect's surface toward the circle (B->A);
	// the manifold normal must point A->B (circle->rect), so every normal
	// derived below is the negation of the raw geometric direction.
	toClosest := delta.Sub(closest)
	distSq := toClosest.LengthSq()
	radius := circle.Shape.Radius

	if !inside {
		if distSq >= radius*radius {
			return Manifold{}, false
		}
		dist := vecmath.Sqrt(distSq)
		var normal vecmath.Vector2
		if dist < vecmath.Epsilon {
			normal = vecmath.NewVector2(-1, 0)
		} else {
			normal = toClosest.Scale(-1 / dist)
		}
		return Manifold{A: circle, B: rect, Normal: normal, Penetration: radius - dist}, true
	}

	// Circle center is inside the rect: push out along the axis of least
	// penetration rather than treating distance-to-edge as zero.
	overlapX := half.X - vecmath.Abs(delta.X)
	overlapY := half.Y - vecmath.Abs(delta.Y)

	var normal vecmath.Vector2
	var penetration float32
	if overlapX < overlapY {
		penetration = overlapX + radius
		if delta.X < 0 {
			normal = vecmath.NewVector2(1, 0)
		} else {
			normal = vecmath.NewVector2(-1, 0)
		}
	} else {
		penetration = overlapY + radius
		if delta.Y < 0 {
			normal = vecmath.NewVector2(0, 1)
		} else {
			normal = vecmath.NewVector2(0, -1)
		}
	}
	return Manifold{A: circle, B: rect, Normal: normal, Penetration: penetration}, true
}

func rectRect(a, b *body.Body) (Manifold, bool) {
	halfA := a.Shape.HalfExtents()
	halfB := b.Shape.HalfExtents()
	delta := b.Position.Sub(a.Position)

	overlapX := halfA.X + halfB.X - vecmath.Abs(delta.X)
	if overlapX <= 0 {
		return Manifold{}, false
	}
	overlapY := halfA.Y + halfB.Y - vecmath.Abs(delta.Y)
	if overlapY <= 0 {
		return Manifold{}, false
	}

	var normal vecmath.Vector2
	var penetration float32
	if overlapX < overlapY {
		penetration = overlapX
		if delta.X < 0 {
			normal = vecmath.NewVector2(-1, 0)
		} else {
			normal = vecmath.NewVector2(1, 0)
		}
	} else {
		penetration = overlapY
		if delta.Y < 0 {
			normal = vecmath.NewVector2(0, -1)
		} else {
			normal = vecmath.NewVector2(0, 1)
		}
	}
	return Manifold{A: a, B: b, Normal: normal, Penetration: penetration}, true
}
