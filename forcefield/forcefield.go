// Package forcefield implements the environmental force fields a World can
// apply to bodies each substep: gravity, drag, wind and point attraction.
//
// Adapted from the ForceField variants in g3n-engine's physics package
// (Constant, PointAttractor), generalized from 3D to 2D and collapsed into a
// single tagged union per the closed set of field kinds the core
// understands, rather than an open interface every new field would have to
// implement.
package forcefield

import "github.com/mcp-tool-shop-org/tablesim/vecmath"

// Falloff selects how an Attraction field's strength scales with distance.
type Falloff int

const (
	FalloffNone Falloff = iota
	FalloffLinear
	FalloffQuadratic
)

// Kind discriminates a ForceField's active payload.
type Kind int

const (
	Gravity Kind = iota
	Drag
	Wind
	Attraction
)

// MinDistSq floors the squared distance used in Attraction's denominator,
// preventing the force from diverging as a body approaches the attractor.
const MinDistSq float32 = 100

// DefaultDragCoefficient is applied by Apply when a Drag field's
// Coefficient is left at its zero value.
const DefaultDragCoefficient float32 = 0.01

// ForceField is a tagged union over the field kinds the core understands.
// Only the fields matching Kind are meaningful.
type ForceField struct {
	Kind Kind

	// Gravity, Wind: constant direction, interpreted as an acceleration for
	// Gravity and as direction*Strength*invMass for Wind.
	Direction vecmath.Vector2

	// Drag: coefficient; Wind: strength; Attraction: field strength.
	Coefficient float32
	Strength    float32

	// Attraction: source point and falloff law.
	Position vecmath.Vector2
	Falloff  Falloff
}

// NewGravity returns a uniform Gravity field with the given downward
// acceleration (mass-independent: applied as acceleration, not a force).
func NewGravity(direction vecmath.Vector2) ForceField {
	return ForceField{Kind: Gravity, Direction: direction}
}

// NewDrag returns a Drag field with the given coefficient. A zero
// coefficient is replaced by DefaultDragCoefficient at apply time.
func NewDrag(coefficient float32) ForceField {
	return ForceField{Kind: Drag, Coefficient: coefficient}
}

// NewWind returns a Wind field blowing in direction (normalized internally)
// at the given strength.
func NewWind(direction vecmath.Vector2, strength float32) ForceField {
	return ForceField{Kind: Wind, Direction: direction.Normalize(), Strength: strength}
}

// NewAttraction returns a point Attraction field at position with the given
// strength and falloff law.
func NewAttraction(position vecmath.Vector2, strength float32, falloff Falloff) ForceField {
	return ForceField{Kind: Attraction, Position: position, Strength: strength, Falloff: falloff}
}
