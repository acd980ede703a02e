package body

import "github.com/mcp-tool-shop-org/tablesim/vecmath"

// Default sleep parameters. A body whose speed stays below
// SleepVelocityThreshold for SleepFrameThreshold consecutive substeps is
// put to sleep.
const (
	SleepVelocityThreshold float32 = 0.5
	SleepFrameThreshold    int     = 30
)

// Body is a translational rigid body. Solvers must treat InvMass==0 as the
// canonical "immovable" marker and must never divide by Mass directly.
type Body struct {
	ID string

	Position         vecmath.Vector2
	PreviousPosition vecmath.Vector2 // set once per integration step; read only by interpolation
	Velocity         vecmath.Vector2
	Acceleration     vecmath.Vector2 // per-step accumulator, zeroed after each integration

	Mass    float32
	InvMass float32

	Restitution float32
	Friction    float32

	IsStatic bool

	IsSleeping bool
	SleepTimer int // consecutive substeps under SleepVelocityThreshold

	Shape Shape

	UserData any
}

// ApplyForce adds a force-derived contribution directly to the
// acceleration accumulator. Callers that already hold mass-independent
// acceleration (e.g. gravity) pass it straight through; callers with a
// true force should scale by InvMass first.
func (b *Body) ApplyForce(f vecmath.Vector2) {
	if b.IsStatic {
		return
	}
	b.Acceleration.AddInPlace(f)
}

// ClearAcceleration zeroes the per-step acceleration accumulator. Called by
// the world's substep right after it integrates the body.
func (b *Body) ClearAcceleration() {
	b.Acceleration = vecmath.Vector2{}
}

// Teleport overwrites Position and PreviousPosition atomically and wakes
// the body. Used by the engine facade's setPosition mutator.
func (b *Body) Teleport(p vecmath.Vector2) {
	b.Position = p
	b.PreviousPosition = p
	b.Wake()
}

// Wake unconditionally clears the sleep state.
func (b *Body) Wake() {
	b.IsSleeping = false
	b.SleepTimer = 0
}

// ApplyImpulse adds an impulse to the body's velocity, scaled by its
// inverse mass, and wakes it. A no-op on static bodies.
func (b *Body) ApplyImpulse(impulse vecmath.Vector2) {
	if b.IsStatic {
		return
	}
	b.Velocity.AddInPlace(impulse.Scale(b.InvMass))
	b.Wake()
}

// ApplyResolutionImpulse adds an impulse to the body's velocity, scaled by
// its inverse mass, without waking it. Collision resolution applies this
// every contact, including zero-magnitude ones on an already-settled pair;
// waking is decided separately, by the sleep/contact classifier that runs
// before resolution.
func (b *Body) ApplyResolutionImpulse(impulse vecmath.Vector2) {
	if b.IsStatic {
		return
	}
	b.Velocity.AddInPlace(impulse.Scale(b.InvMass))
}

// SetVelocity sets the body's velocity directly and wakes it. A no-op on
// static bodies.
func (b *Body) SetVelocity(v vecmath.Vector2) {
	if b.IsStatic {
		return
	}
	b.Velocity = v
	b.Wake()
}
