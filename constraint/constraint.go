// Package constraint implements the spring, distance and pin constraints a
// World solves between pairs of bodies each step.
//
// Adapted from the bodyA/bodyB-pair shape of g3n-engine's
// physics/constraint.Constraint, collapsed from an equation-list/MLCP base
// struct into a flat tagged union: the direct per-type formulas in
// physics/solver replace the Jacobian/SPOOK equation machinery that base
// struct was built on, and constraints reference bodies by ID rather than
// holding a live IBody so a Constraint can be constructed before its bodies
// are inserted into a World.
package constraint

import (
	"github.com/google/uuid"

	"github.com/mcp-tool-shop-org/tablesim/vecmath"
)

// Kind discriminates a Constraint's active payload.
type Kind int

const (
	// Spring applies a Hooke's-law force plus damping between the two
	// anchors; it never hard-clamps body positions.
	Spring Kind = iota
	// Distance projects the two anchors back toward Length by
	// adjusting position, split by inverse mass.
	Distance
	// Pin pulls BodyA's anchor toward BodyB's anchor one-sidedly (BodyB
	// acts as a fixed target even when dynamic).
	Pin
	// Hinge is accepted for forward compatibility with scene data but is a
	// solver no-op; no angular state is modeled.
	Hinge
)

// Default tuning applied by New when a Def leaves the corresponding field
// at its zero value.
const (
	DefaultStiffness float32 = 0.5
	DefaultDamping   float32 = 0.1
)

// Constraint is a tagged union over the constraint kinds the solver
// understands. Only the fields matching Kind are meaningful.
type Constraint struct {
	ID   string
	Kind Kind

	BodyA, BodyB   string
	AnchorA, AnchorB vecmath.Vector2

	Stiffness float32 // Spring, Distance, Pin
	Damping   float32 // Spring, Pin

	// Length is the Distance/Spring rest length. A nil Length is captured
	// from the pair's current anchor distance the first time the solver
	// runs this constraint, rather than defaulting to zero and collapsing
	// the bodies toward coincidence.
	Length *float32
}

// Def is a partial constraint description consumed by New.
type Def struct {
	ID               string
	Kind             Kind
	BodyA, BodyB     string
	AnchorA, AnchorB vecmath.Vector2
	Stiffness        float32
	Damping          float32

	// Length is the Distance/Spring rest length. Leave nil to hold the pair
	// at whatever distance their anchors start at.
	Length *float32
}

// New produces a fully populated Constraint from a partial Def, applying
// the default stiffness/damping a Def leaves unset and generating an ID
// when none is given. BodyA and BodyB are
// required; New panics if either is empty since a constraint with no
// endpoints cannot be solved.
func New(def Def) Constraint {
	if def.BodyA == "" || def.BodyB == "" {
		panic("constraint: BodyA and BodyB are required")
	}

	c := Constraint{
		ID:      def.ID,
		Kind:    def.Kind,
		BodyA:   def.BodyA,
		BodyB:   def.BodyB,
		AnchorA: def.AnchorA,
		AnchorB: def.AnchorB,
		Length:  def.Length,
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}

	c.Stiffness = def.Stiffness
	if c.Stiffness == 0 {
		c.Stiffness = DefaultStiffness
	}
	c.Damping = def.Damping
	if c.Damping == 0 {
		c.Damping = DefaultDamping
	}

	return c
}
