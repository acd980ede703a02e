package physics

import "github.com/mcp-tool-shop-org/tablesim/body"

// UpdateSleep advances b's sleep classifier by one substep: a body whose
// speed stays below body.SleepVelocityThreshold for
// body.SleepFrameThreshold consecutive substeps is put to sleep and its
// velocity zeroed; any faster substep resets the counter. Static bodies
// have no sleep state worth tracking and are left untouched.
func UpdateSleep(b *body.Body) {
	if b.IsStatic || b.IsSleeping {
		return
	}

	if b.Velocity.Length() < body.SleepVelocityThreshold {
		b.SleepTimer++
		if b.SleepTimer >= body.SleepFrameThreshold {
			b.IsSleeping = true
			b.Velocity = b.Velocity.Scale(0)
		}
	} else {
		b.SleepTimer = 0
	}
}
