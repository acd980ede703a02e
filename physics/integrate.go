package physics

import "github.com/mcp-tool-shop-org/tablesim/body"

// Integrate advances b by dt using semi-implicit (symplectic) Euler:
// velocity is updated from the current acceleration before position is
// updated from the new velocity, keeping orbit- and spring-like motion
// from gaining energy the way explicit Euler would. The pre-step Position is
// saved into PreviousPosition first.
//
// Integrate does not itself check b.IsStatic or b.IsSleeping: the caller
// (World.Step) is responsible for only integrating bodies eligible to
// move, since a static body's zero InvMass is not in itself a guarantee
// against a caller-supplied non-zero Velocity or Acceleration.
func Integrate(b *body.Body, dt float32) {
	b.PreviousPosition = b.Position
	b.Velocity.AddScaled(b.Acceleration, dt)
	b.Position.AddScaled(b.Velocity, dt)
}
