// Package solver applies constraint.Constraint values to their bodies each
// step using direct per-type formulas, iterated Gauss-Seidel style.
//
// The outer K-pass loop is grounded on g3n-engine's
// physics/solver.GaussSeidel: repeated sweeps over the same constraint set
// so a chain of constraints converges toward a consistent solution within
// one step, without building and factoring a global matrix. That solver
// operates on Jacobian/SPOOK equations (physics/equation); this package
// replaces that machinery with the closed-form spring, distance and pin
// formulas, since board-game-scale scenes never need the generality of an
// MLCP solve.
package solver

import (
	"github.com/mcp-tool-shop-org/tablesim/body"
	"github.com/mcp-tool-shop-org/tablesim/constraint"
	"github.com/mcp-tool-shop-org/tablesim/vecmath"
)

// Iterations is the default number of Gauss-Seidel passes Solve runs over
// the constraint set in one step, used when a caller passes iterations<1.
const Iterations = 8

// Solve runs iterations passes of every constraint in constraints against
// bodies, looked up by ID. A constraint referencing a missing body is
// silently skipped rather than treated as an error: scene authoring may
// remove a body without cleaning up every constraint that named it.
func Solve(constraints []constraint.Constraint, bodies map[string]*body.Body, dt float32, iterations int) {
	if iterations < 1 {
		iterations = Iterations
	}
	for i := 0; i < iterations; i++ {
		for j := range constraints {
			c := &constraints[j]
			a, okA := bodies[c.BodyA]
			b, okB := bodies[c.BodyB]
			if !okA || !okB {
				continue
			}
			apply(c, a, b)
		}
	}
}

func apply(c *constraint.Constraint, a, b *body.Body) {
	switch c.Kind {
	case constraint.Spring:
		applySpring(c, a, b)
	case constraint.Distance:
		applyDistance(c, a, b)
	case constraint.Pin:
		applyPin(c, a, b)
	case constraint.Hinge:
		// No angular state is modeled; accepted for forward compatibility
		// with scene data only.
	}
}

func worldAnchorA(c *constraint.Constraint, a *body.Body) vecmath.Vector2 {
	return a.Position.Add(c.AnchorA)
}

func worldAnchorB(c *constraint.Constraint, b *body.Body) vecmath.Vector2 {
	return b.Position.Add(c.AnchorB)
}

// restLength returns c.Length, capturing it from dist the first time a
// spring or distance constraint with no author-specified length is solved.
func restLength(c *constraint.Constraint, dist float32) float32 {
	if c.Length == nil {
		l := dist
		c.Length = &l
	}
	return *c.Length
}

// applySpring accumulates a Hooke's-law force plus a velocity-damping term
// into both bodies' accelerations, pulling their anchors toward
// c.Length apart. Unlike Distance, a spring never directly edits position:
// it only ever contributes force, so it can overshoot and oscillate by
// design.
func applySpring(c *constraint.Constraint, a, b *body.Body) {
	if a.IsStatic && b.IsStatic {
		return
	}
	pa := worldAnchorA(c, a)
	pb := worldAnchorB(c, b)
	delta := pb.Sub(pa)
	dist := delta.Length()
	if dist < vecmath.Epsilon {
		return
	}
	dir := delta.Scale(1 / dist)

	stretch := dist - restLength(c, dist)
	springForce := dir.Scale(stretch * c.Stiffness)

	relVel := b.Velocity.Sub(a.Velocity)
	dampingForce := dir.Scale(relVel.Dot(dir) * c.Damping)

	total := springForce.Add(dampingForce)

	a.ApplyForce(total.Scale(a.InvMass))
	b.ApplyForce(total.Negated().Scale(b.InvMass))
}

// applyDistance directly projects both anchors back toward c.Length apart,
// splitting the correction by inverse mass so a heavier body moves less.
func applyDistance(c *constraint.Constraint, a, b *body.Body) {
	pa := worldAnchorA(c, a)
	pb := worldAnchorB(c, b)
	delta := pb.Sub(pa)
	dist := delta.Length()

	invMassSum := a.InvMass + b.InvMass
	if invMassSum < vecmath.Epsilon {
		return
	}

	var dir vecmath.Vector2
	if dist < vecmath.Epsilon {
		// Coincident anchors at non-zero rest length: correction direction
		// is undefined, so pick an arbitrary axis rather than dividing by
		// zero and exploding the bodies apart.
		dir = vecmath.NewVector2(1, 0)
	} else {
		dir = delta.Scale(1 / dist)
	}

	diff := (dist - restLength(c, dist)) / invMassSum

	if !a.IsStatic {
		a.Position.AddScaled(dir, diff*a.InvMass*c.Stiffness)
	}
	if !b.IsStatic {
		b.Position.AddScaled(dir, -diff*b.InvMass*c.Stiffness)
	}
}

// applyPin pulls BodyA's anchor toward BodyB's anchor one-sidedly: BodyB is
// treated as the fixed target regardless of whether it is itself dynamic,
// matching a "pinned to a point on another body" hinge rather than a
// mutual constraint.
func applyPin(c *constraint.Constraint, a, b *body.Body) {
	if a.IsStatic {
		return
	}
	pa := worldAnchorA(c, a)
	pb := worldAnchorB(c, b)
	delta := pb.Sub(pa)

	pull := delta.Scale(c.Stiffness)
	a.Position.AddInPlace(pull)
	a.Velocity.AddScaled(pull, c.Damping)
}
