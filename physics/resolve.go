package physics

import (
	"github.com/mcp-tool-shop-org/tablesim/physics/collision"
	"github.com/mcp-tool-shop-org/tablesim/vecmath"
)

// RestitutionSlop is the relative approach speed below which restitution is
// not applied, preventing a resting contact from buzzing as it repeatedly
// gains and loses a tiny bounce each step.
const RestitutionSlop float32 = 0.5

// PenetrationSlop is the penetration depth Baumgarte correction tolerates
// before pushing bodies apart; small overlaps are left alone so resting
// contacts don't jitter.
const PenetrationSlop float32 = 0.5

// BaumgarteFactor is the fraction of remaining penetration (beyond
// PenetrationSlop) corrected per step.
const BaumgarteFactor float32 = 0.4

// Resolve applies an impulse-based response to m: a normal impulse using
// the lower of the two bodies' restitution coefficients (clamped by
// RestitutionSlop), a Coulomb-clamped tangential friction impulse, and a
// Baumgarte positional correction split by inverse mass.
func Resolve(m collision.Manifold) {
	a, b := m.A, m.B
	invMassSum := a.InvMass + b.InvMass
	if invMassSum < vecmath.Epsilon {
		return
	}

	relVel := b.Velocity.Sub(a.Velocity)
	sepVel := relVel.Dot(m.Normal)
	if sepVel > 0 {
		// Already separating: nothing to resolve.
		return
	}

	restitution := vecmath.Min(a.Restitution, b.Restitution)
	if -sepVel < RestitutionSlop {
		restitution = 0
	}

	normalImpulseMag := -(1 + restitution) * sepVel / invMassSum
	normalImpulse := m.Normal.Scale(normalImpulseMag)

	a.ApplyResolutionImpulse(normalImpulse.Negated())
	b.ApplyResolutionImpulse(normalImpulse)

	applyFriction(m, relVel, normalImpulseMag, invMassSum)

	correctPenetration(m, invMassSum)
}

func applyFriction(m collision.Manifold, relVel vecmath.Vector2, normalImpulseMag, invMassSum float32) {
	a, b := m.A, m.B

	tangent := relVel.Sub(m.Normal.Scale(relVel.Dot(m.Normal)))
	tangent = tangent.Normalize()
	if tangent.LengthSq() < vecmath.Epsilon {
		return
	}

	relVelAfter := b.Velocity.Sub(a.Velocity)
	tangentVel := relVelAfter.Dot(tangent)
	frictionImpulseMag := -tangentVel / invMassSum

	friction := vecmath.Sqrt(a.Friction * b.Friction)
	maxFriction := normalImpulseMag * friction
	if frictionImpulseMag > maxFriction {
		frictionImpulseMag = maxFriction
	} else if frictionImpulseMag < -maxFriction {
		frictionImpulseMag = -maxFriction
	}

	frictionImpulse := tangent.Scale(frictionImpulseMag)
	a.ApplyResolutionImpulse(frictionImpulse.Negated())
	b.ApplyResolutionImpulse(frictionImpulse)
}

func correctPenetration(m collision.Manifold, invMassSum float32) {
	correction := vecmath.Max(m.Penetration-PenetrationSlop, 0) / invMassSum * BaumgarteFactor
	if correction <= 0 {
		return
	}
	shift := m.Normal.Scale(correction)

	if !m.A.IsStatic {
		m.A.Position.AddScaled(shift, -m.A.InvMass)
	}
	if !m.B.IsStatic {
		m.B.Position.AddScaled(shift, m.B.InvMass)
	}
}

// WakeOnCollision wakes the sleeping side of m only when exactly one body
// is sleeping and the other is dynamic and awake: a sleeper resting
// against a static floor stays asleep, and two already-awake bodies in
// persistent contact never touch each other's sleep state (so their
// sleep timers can still run out).
func WakeOnCollision(m collision.Manifold) {
	a, b := m.A, m.B
	if a.IsSleeping && !b.IsSleeping && !b.IsStatic {
		a.Wake()
	}
	if b.IsSleeping && !a.IsSleeping && !a.IsStatic {
		b.Wake()
	}
}
