// Package physics orchestrates one fixed simulation step: force
// application, integration, constraint solving, collision detection and
// resolution, bounds containment, and sleep classification, over an
// insertion-ordered set of bodies, constraints and force fields.
//
// World's shape — an ordered body/constraint list with
// AddBody/RemoveBody/AddForceField/Step methods — is grounded on the
// "simulation-world" World interface of the go-space-engine example, which
// lays out exactly this orchestration surface over a uuid-keyed body map,
// adapted here to a simpler direct-formula solver and brute-force collision
// pipeline in place of that example's pluggable integrator/collider/
// resolver strategy objects.
package physics

import (
	"github.com/mcp-tool-shop-org/tablesim/body"
	"github.com/mcp-tool-shop-org/tablesim/constraint"
	"github.com/mcp-tool-shop-org/tablesim/forcefield"
	"github.com/mcp-tool-shop-org/tablesim/logging"
	"github.com/mcp-tool-shop-org/tablesim/physics/collision"
	"github.com/mcp-tool-shop-org/tablesim/physics/solver"
	"github.com/mcp-tool-shop-org/tablesim/probe"
	"github.com/mcp-tool-shop-org/tablesim/vecmath"
)

// DefaultSubsteps and DefaultVelocityIterations are the per-step tuning a
// World uses when the caller never overrides them.
const (
	DefaultSubsteps           = 1
	DefaultVelocityIterations = solver.Iterations
)

// World holds one scene's bodies, constraints and force fields and
// advances them one fixed step at a time.
type World struct {
	bodies  map[string]*body.Body
	bodyIDs []string // insertion order; iteration must never use map order directly

	constraints   []constraint.Constraint
	constraintIdx map[string]int

	forceFields []forcefield.ForceField

	// Gravity is the world-level default applied only when no explicit
	// Gravity force field is registered, and Bounds is an optional
	// play-area rectangle bodies are reflected off.
	Gravity vecmath.Vector2
	Bounds  *Bounds

	// Substeps divides each Step(dt) call into that many fixed
	// sub-increments, and VelocityIterations is the number of
	// Gauss-Seidel passes solver.Solve runs per substep.
	Substeps           int
	VelocityIterations int

	Log       *logging.Logger
	Probe     *probe.Probe
	stepCount uint64
}

// NewWorld returns an empty World ready to accept bodies and constraints,
// with DefaultSubsteps and DefaultVelocityIterations. Log defaults to
// logging.Default and Probe to probe.Default, so a step always has
// somewhere to send its diagnostics even if the caller never assigns its
// own; either field can be overwritten or set to nil to silence it.
func NewWorld() *World {
	return &World{
		bodies:             make(map[string]*body.Body),
		constraintIdx:      make(map[string]int),
		Substeps:           DefaultSubsteps,
		VelocityIterations: DefaultVelocityIterations,
		Log:                logging.Default,
		Probe:              probe.Default,
	}
}

// AddBody inserts b, keyed by its ID. Re-adding an existing ID replaces
// the body in place without disturbing iteration order.
func (w *World) AddBody(b *body.Body) {
	if _, exists := w.bodies[b.ID]; !exists {
		w.bodyIDs = append(w.bodyIDs, b.ID)
	}
	w.bodies[b.ID] = b
}

// RemoveBody removes the body with the given ID, reporting whether it was
// present.
func (w *World) RemoveBody(id string) bool {
	if _, ok := w.bodies[id]; !ok {
		return false
	}
	delete(w.bodies, id)
	for i, bid := range w.bodyIDs {
		if bid == id {
			w.bodyIDs = append(w.bodyIDs[:i], w.bodyIDs[i+1:]...)
			break
		}
	}
	return true
}

// GetBody returns the body with the given ID, or nil if absent.
func (w *World) GetBody(id string) *body.Body {
	return w.bodies[id]
}

// Bodies returns every body in insertion order. The returned slice is a
// fresh copy safe for the caller to range over while the world steps.
func (w *World) Bodies() []*body.Body {
	out := make([]*body.Body, len(w.bodyIDs))
	for i, id := range w.bodyIDs {
		out[i] = w.bodies[id]
	}
	return out
}

// AddConstraint appends c. A constraint sharing an existing ID replaces it
// in place.
func (w *World) AddConstraint(c constraint.Constraint) {
	if idx, ok := w.constraintIdx[c.ID]; ok && c.ID != "" {
		w.constraints[idx] = c
		return
	}
	w.constraintIdx[c.ID] = len(w.constraints)
	w.constraints = append(w.constraints, c)
}

// RemoveConstraint removes the constraint with the given ID, reporting
// whether it was present.
func (w *World) RemoveConstraint(id string) bool {
	idx, ok := w.constraintIdx[id]
	if !ok {
		return false
	}
	w.constraints = append(w.constraints[:idx], w.constraints[idx+1:]...)
	delete(w.constraintIdx, id)
	for i := idx; i < len(w.constraints); i++ {
		w.constraintIdx[w.constraints[i].ID] = i
	}
	return true
}

// Constraints returns every constraint in insertion order.
func (w *World) Constraints() []constraint.Constraint {
	out := make([]constraint.Constraint, len(w.constraints))
	copy(out, w.constraints)
	return out
}

// AddForceField appends f to the set of fields applied every step.
func (w *World) AddForceField(f forcefield.ForceField) {
	w.forceFields = append(w.forceFields, f)
}

// RemoveForceFields removes every registered force field of the given
// kind, reporting how many were removed.
func (w *World) RemoveForceFields(kind forcefield.Kind) int {
	kept := w.forceFields[:0]
	removed := 0
	for _, f := range w.forceFields {
		if f.Kind == kind {
			removed++
			continue
		}
		kept = append(kept, f)
	}
	w.forceFields = kept
	return removed
}

// ForceFields returns every registered force field, in registration order.
func (w *World) ForceFields() []forcefield.ForceField {
	out := make([]forcefield.ForceField, len(w.forceFields))
	copy(out, w.forceFields)
	return out
}

// Step advances the world by one fixed timestep dt, split into Substeps
// equal sub-increments. Each substep applies force fields, integrates,
// solves constraints, detects and resolves collisions, reflects off
// Bounds, and updates sleep state, in that order.
func (w *World) Step(dt float32) {
	substeps := w.Substeps
	if substeps < 1 {
		substeps = 1
	}
	subDt := dt / float32(substeps)

	var manifolds []collision.Manifold
	for i := 0; i < substeps; i++ {
		manifolds = w.substep(subDt)
	}

	w.stepCount++
	bodies := w.Bodies()
	if w.Log != nil {
		w.Log.Debug("step %d: %d bodies, %d constraints, %d contacts", w.stepCount, len(bodies), len(w.constraints), len(manifolds))
	}
	if w.Probe != nil {
		bodyCopies := make([]body.Body, len(bodies))
		for i, b := range bodies {
			bodyCopies[i] = *b
		}
		w.Probe.Publish(probe.Snapshot{
			Step:        w.stepCount,
			Bodies:      bodyCopies,
			Constraints: w.Constraints(),
			Contacts:    len(manifolds),
		})
	}
}

func (w *World) substep(dt float32) []collision.Manifold {
	bodies := w.Bodies()
	fields := w.effectiveForceFields()

	for _, b := range bodies {
		if b.IsStatic || b.IsSleeping {
			continue
		}
		forcefield.ApplyAll(fields, b)
		Integrate(b, dt)
		b.ClearAcceleration()
	}

	if len(w.constraints) > 0 {
		iterations := w.VelocityIterations
		if iterations < 1 {
			iterations = DefaultVelocityIterations
		}
		solver.Solve(w.constraints, w.bodies, dt, iterations)
	}

	manifolds := collision.FindManifolds(bodies)
	for _, m := range manifolds {
		WakeOnCollision(m)
		Resolve(m)
	}

	if w.Bounds != nil {
		for _, b := range bodies {
			Reflect(*w.Bounds, b)
		}
	}

	for _, b := range bodies {
		UpdateSleep(b)
	}

	return manifolds
}

// effectiveForceFields returns the registered force fields, implicitly
// adding the world's default Gravity (if no explicit Gravity field is
// registered) and a built-in drag of forcefield.DefaultDragCoefficient (if
// no explicit Drag field is registered). A registered Gravity field left at
// the zero vector also falls back to the world's Gravity, the same way a
// zero-vector gravity entry defaults in scene authoring. This mirrors the
// "small built-in linear drag" the original simulation applied
// unconditionally.
func (w *World) effectiveForceFields() []forcefield.ForceField {
	hasGravity, hasDrag := false, false
	for _, f := range w.forceFields {
		switch f.Kind {
		case forcefield.Gravity:
			hasGravity = true
		case forcefield.Drag:
			hasDrag = true
		}
	}

	fields := make([]forcefield.ForceField, len(w.forceFields), len(w.forceFields)+2)
	copy(fields, w.forceFields)
	for i, f := range fields {
		if f.Kind == forcefield.Gravity && f.Direction == (vecmath.Vector2{}) {
			fields[i].Direction = w.Gravity
		}
	}
	if !hasGravity && w.Gravity != (vecmath.Vector2{}) {
		fields = append(fields, forcefield.NewGravity(w.Gravity))
	}
	if !hasDrag {
		fields = append(fields, forcefield.NewDrag(forcefield.DefaultDragCoefficient))
	}
	return fields
}
