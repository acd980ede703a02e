package body

import (
	"github.com/google/uuid"

	"github.com/mcp-tool-shop-org/tablesim/vecmath"
)

// Default values applied by New when a Def leaves the corresponding field
// unset.
const (
	DefaultRadius      float32 = 10
	DefaultRestitution float32 = 0.5
	DefaultFriction    float32 = 0.3
)

// Def is a partial body description. Pointer fields distinguish "not
// supplied" (nil, defaulted by New) from an explicit zero value.
type Def struct {
	ID       string
	Position vecmath.Vector2
	Velocity vecmath.Vector2
	Mass     float32
	IsStatic bool

	Restitution *float32
	Friction    *float32
	Shape       *Shape

	UserData any
}

// New produces a fully populated Body from a partial Def, deriving InvMass
// and the other invariants a Body must hold.
func New(def Def) *Body {
	b := &Body{
		ID:       def.ID,
		Position: def.Position,
		Velocity: def.Velocity,
		IsStatic: def.IsStatic,
		UserData: def.UserData,
	}
	if b.ID == "" {
		b.ID = uuid.NewString()
	}

	if def.IsStatic {
		b.Mass = 0
		b.InvMass = 0
	} else {
		b.Mass = def.Mass
		if b.Mass > 0 {
			b.InvMass = 1 / b.Mass
		} else {
			b.InvMass = 0
		}
	}

	b.PreviousPosition = b.Position

	if def.Restitution != nil {
		b.Restitution = *def.Restitution
	} else {
		b.Restitution = DefaultRestitution
	}
	if def.Friction != nil {
		b.Friction = *def.Friction
	} else {
		b.Friction = DefaultFriction
	}
	if def.Shape != nil {
		b.Shape = *def.Shape
	} else {
		b.Shape = NewCircle(DefaultRadius)
	}

	return b
}
