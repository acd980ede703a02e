package body

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcp-tool-shop-org/tablesim/vecmath"
)

func TestNew_DynamicDerivesInvMass(t *testing.T) {
	b := New(Def{Mass: 2})
	assert.Equal(t, float32(2), b.Mass)
	assert.Equal(t, float32(0.5), b.InvMass)
	assert.NotEmpty(t, b.ID)
}

func TestNew_StaticForcesZeroMassRegardlessOfInput(t *testing.T) {
	b := New(Def{Mass: 50, IsStatic: true})
	assert.Equal(t, float32(0), b.Mass)
	assert.Equal(t, float32(0), b.InvMass)
	assert.True(t, b.IsStatic)
}

func TestNew_ZeroMassDynamicIsImmovable(t *testing.T) {
	b := New(Def{Mass: 0})
	assert.Equal(t, float32(0), b.InvMass)
}

func TestNew_Defaults(t *testing.T) {
	b := New(Def{})
	assert.Equal(t, Circle, b.Shape.Kind)
	assert.Equal(t, DefaultRadius, b.Shape.Radius)
	assert.Equal(t, DefaultRestitution, b.Restitution)
	assert.Equal(t, DefaultFriction, b.Friction)
}

func TestNew_OverridesRespected(t *testing.T) {
	r := float32(0.9)
	f := float32(0.1)
	shape := NewRect(4, 6)
	b := New(Def{ID: "ball-1", Restitution: &r, Friction: &f, Shape: &shape})
	assert.Equal(t, "ball-1", b.ID)
	assert.Equal(t, r, b.Restitution)
	assert.Equal(t, f, b.Friction)
	assert.Equal(t, Rect, b.Shape.Kind)
}

func TestNew_PreviousPositionMatchesPosition(t *testing.T) {
	p := vecmath.NewVector2(3, 4)
	b := New(Def{Position: p})
	assert.Equal(t, p, b.PreviousPosition)
}

func TestApplyForce_NoOpOnStatic(t *testing.T) {
	b := New(Def{IsStatic: true})
	b.ApplyForce(vecmath.NewVector2(1, 1))
	assert.Equal(t, vecmath.Vector2{}, b.Acceleration)
}

func TestApplyImpulse_WakesAndScalesByInvMass(t *testing.T) {
	b := New(Def{Mass: 2})
	b.IsSleeping = true
	b.ApplyImpulse(vecmath.NewVector2(4, 0))
	assert.Equal(t, float32(2), b.Velocity.X)
	assert.False(t, b.IsSleeping)
}

func TestApplyImpulse_NoOpOnStatic(t *testing.T) {
	b := New(Def{IsStatic: true})
	b.ApplyImpulse(vecmath.NewVector2(10, 10))
	assert.Equal(t, vecmath.Vector2{}, b.Velocity)
}

func TestApplyResolutionImpulse_ScalesByInvMassWithoutWaking(t *testing.T) {
	b := New(Def{Mass: 2})
	b.IsSleeping = true
	b.ApplyResolutionImpulse(vecmath.NewVector2(4, 0))
	assert.Equal(t, float32(2), b.Velocity.X)
	assert.True(t, b.IsSleeping)
}

func TestApplyResolutionImpulse_NoOpOnStatic(t *testing.T) {
	b := New(Def{IsStatic: true})
	b.ApplyResolutionImpulse(vecmath.NewVector2(10, 10))
	assert.Equal(t, vecmath.Vector2{}, b.Velocity)
}

func TestSetVelocity_NoOpOnStatic(t *testing.T) {
	b := New(Def{IsStatic: true})
	b.SetVelocity(vecmath.NewVector2(5, 5))
	assert.Equal(t, vecmath.Vector2{}, b.Velocity)
}

func TestTeleport_SyncsPreviousPositionAndWakes(t *testing.T) {
	b := New(Def{})
	b.IsSleeping = true
	b.SleepTimer = 12
	p := vecmath.NewVector2(9, 9)
	b.Teleport(p)
	assert.Equal(t, p, b.Position)
	assert.Equal(t, p, b.PreviousPosition)
	assert.False(t, b.IsSleeping)
	assert.Equal(t, 0, b.SleepTimer)
}

func TestClearAcceleration(t *testing.T) {
	b := New(Def{Mass: 1})
	b.ApplyForce(vecmath.NewVector2(1, 1))
	b.ClearAcceleration()
	assert.Equal(t, vecmath.Vector2{}, b.Acceleration)
}
