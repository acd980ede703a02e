package forcefield

import (
	"github.com/mcp-tool-shop-org/tablesim/body"
	"github.com/mcp-tool-shop-org/tablesim/vecmath"
)

// Apply adds f's contribution to b's acceleration accumulator for one
// substep. Static and sleeping bodies are left untouched by the caller;
// Apply itself only guards against the zero-mass/zero-distance
// degeneracies each field kind is prone to.
func Apply(f ForceField, b *body.Body) {
	switch f.Kind {
	case Gravity:
		// Mass-independent: gravity is an acceleration, applied identically
		// to every body regardless of Mass.
		b.ApplyForce(f.Direction)

	case Drag:
		c := f.Coefficient
		if c == 0 {
			c = DefaultDragCoefficient
		}
		if b.Mass <= 0 {
			return
		}
		b.ApplyForce(b.Velocity.Scale(-c / b.Mass))

	case Wind:
		b.ApplyForce(f.Direction.Scale(f.Strength * b.InvMass))

	case Attraction:
		toSource := f.Position.Sub(b.Position)
		distSq := toSource.LengthSq()
		if distSq < MinDistSq {
			distSq = MinDistSq
		}
		dir := toSource.Normalize()

		var magnitude float32
		switch f.Falloff {
		case FalloffLinear:
			magnitude = f.Strength / vecmath.Sqrt(distSq)
		case FalloffQuadratic:
			magnitude = f.Strength / distSq
		default:
			magnitude = f.Strength
		}
		b.ApplyForce(dir.Scale(magnitude * b.InvMass))
	}
}

// ApplyAll applies every field in fields to b in order.
func ApplyAll(fields []ForceField, b *body.Body) {
	for _, f := range fields {
		Apply(f, b)
	}
}
