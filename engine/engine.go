// Package engine wraps a physics.World in a fixed-timestep accumulator,
// so callers can feed it a variable-length frame time and still have the
// simulation itself advance in fixed, deterministic increments.
//
// The accumulator and render-interpolation-alpha pattern is grounded on
// the commented-out StepPlus body in g3n-engine's physics/simulation.go,
// which cites http://gafferongames.com/game-physics/fix-your-timestep/ in
// its own comment; that path was left disabled there in favor of a single
// internalStep call per frame, but it is exactly what a board-game-scale
// simulation needs to stay deterministic across variable frame rates, so
// this package enables it.
package engine

import (
	"github.com/mcp-tool-shop-org/tablesim/body"
	"github.com/mcp-tool-shop-org/tablesim/constraint"
	"github.com/mcp-tool-shop-org/tablesim/forcefield"
	"github.com/mcp-tool-shop-org/tablesim/physics"
	"github.com/mcp-tool-shop-org/tablesim/vecmath"
)

// FixedDt is the timestep every physics.World.Step call advances by,
// regardless of the caller's actual frame time.
const FixedDt float32 = 1.0 / 60

// MaxFrameTime caps the frame time Update will accumulate in one call,
// preventing a long pause (a debugger breakpoint, a dropped frame) from
// forcing a burst of catch-up steps large enough to be indistinguishable
// from a hang.
const MaxFrameTime float32 = 0.25

// maxSubsteps bounds how many fixed steps a single Update call will drain
// the accumulator by, a second independent guard against runaway
// catch-up work even when MaxFrameTime alone would allow more.
const maxSubsteps = int(MaxFrameTime/FixedDt) + 1

// Engine drives a physics.World at a fixed timestep and exposes the
// render-interpolation alpha between the last two simulated states.
type Engine struct {
	World       *physics.World
	accumulator float32
	alpha       float32

	prevPositions map[string]vecmath.Vector2
}

// New wraps world in an Engine with an empty accumulator.
func New(world *physics.World) *Engine {
	return &Engine{World: world, prevPositions: make(map[string]vecmath.Vector2)}
}

// Update advances the accumulator by frameTime (clamped to MaxFrameTime),
// draining it in FixedDt steps up to maxSubsteps, and recomputes the
// render-interpolation alpha for whatever time remains.
//
// When the world's Probe reports Paused, Update holds the accumulator and
// takes no step at all, unless a single step was armed via
// Probe.RequestStepOnce, in which case it advances exactly one FixedDt and
// re-arms nothing further.
func (e *Engine) Update(frameTime float32) {
	if frameTime < 0 {
		frameTime = 0
	}
	if frameTime > MaxFrameTime {
		frameTime = MaxFrameTime
	}

	e.accumulator += frameTime

	if e.paused() {
		if e.World.Probe.ConsumeStepOnce() {
			e.snapshotPositions()
			e.World.Step(FixedDt)
			if e.accumulator >= FixedDt {
				e.accumulator -= FixedDt
			} else {
				e.accumulator = 0
			}
		}
		e.alpha = e.accumulator / FixedDt
		return
	}

	steps := 0
	for e.accumulator >= FixedDt && steps < maxSubsteps {
		e.snapshotPositions()
		e.World.Step(FixedDt)
		e.accumulator -= FixedDt
		steps++
	}

	e.alpha = e.accumulator / FixedDt
}

// paused reports whether the world's Probe has an active Pause request. A
// world with no Probe (e.g. one built without physics.NewWorld's defaults)
// is treated as never paused.
func (e *Engine) paused() bool {
	return e.World.Probe != nil && e.World.Probe.Paused()
}

// Alpha returns the interpolation fraction in [0,1) between the previous
// simulated state and the current one.
func (e *Engine) Alpha() float32 {
	return e.alpha
}

// GetInterpolatedPosition returns the render position of the body with the
// given ID: its previous-step position lerped toward its current position
// by Alpha. If the body is unknown, the zero vector is returned.
func (e *Engine) GetInterpolatedPosition(id string) vecmath.Vector2 {
	b := e.World.GetBody(id)
	if b == nil {
		return vecmath.Vector2{}
	}
	prev, ok := e.prevPositions[id]
	if !ok {
		prev = b.Position
	}
	return prev.Lerp(b.Position, e.alpha)
}

func (e *Engine) snapshotPositions() {
	for _, b := range e.World.Bodies() {
		e.prevPositions[b.ID] = b.Position
	}
}

// --- Mutation API: thin pass-throughs to World, kept here so callers only
// depend on one facade type. ---

// AddBody inserts b into the underlying world.
func (e *Engine) AddBody(b *body.Body) { e.World.AddBody(b) }

// RemoveBody removes the body with the given ID.
func (e *Engine) RemoveBody(id string) bool {
	delete(e.prevPositions, id)
	return e.World.RemoveBody(id)
}

// GetBody returns the body with the given ID, or nil if absent.
func (e *Engine) GetBody(id string) *body.Body { return e.World.GetBody(id) }

// GetBodies returns every body in insertion order.
func (e *Engine) GetBodies() []*body.Body { return e.World.Bodies() }

// AddConstraint inserts c into the underlying world.
func (e *Engine) AddConstraint(c constraint.Constraint) { e.World.AddConstraint(c) }

// RemoveConstraint removes the constraint with the given ID.
func (e *Engine) RemoveConstraint(id string) bool { return e.World.RemoveConstraint(id) }

// GetConstraints returns every constraint in insertion order.
func (e *Engine) GetConstraints() []constraint.Constraint { return e.World.Constraints() }

// AddForceField appends f to the world's active force fields.
func (e *Engine) AddForceField(f forcefield.ForceField) { e.World.AddForceField(f) }

// RemoveForceFields removes every registered force field of the given
// kind, reporting how many were removed.
func (e *Engine) RemoveForceFields(kind forcefield.Kind) int { return e.World.RemoveForceFields(kind) }

// ApplyImpulse applies impulse to the body with the given ID. Silently
// does nothing if the ID is unknown.
func (e *Engine) ApplyImpulse(id string, impulse vecmath.Vector2) {
	if b := e.World.GetBody(id); b != nil {
		b.ApplyImpulse(impulse)
	}
}

// SetPosition teleports the body with the given ID to p, waking it.
// Silently does nothing if the ID is unknown.
func (e *Engine) SetPosition(id string, p vecmath.Vector2) {
	if b := e.World.GetBody(id); b != nil {
		b.Teleport(p)
		e.prevPositions[id] = p
	}
}

// SetVelocity sets the velocity of the body with the given ID. Silently
// does nothing if the ID is unknown, and is itself a no-op on a static
// body (body.Body.SetVelocity already enforces this).
func (e *Engine) SetVelocity(id string, v vecmath.Vector2) {
	if b := e.World.GetBody(id); b != nil {
		b.SetVelocity(v)
	}
}
