package forcefield

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcp-tool-shop-org/tablesim/body"
	"github.com/mcp-tool-shop-org/tablesim/vecmath"
)

func TestApply_GravityIsMassIndependent(t *testing.T) {
	light := body.New(body.Def{Mass: 1})
	heavy := body.New(body.Def{Mass: 100})
	g := NewGravity(vecmath.NewVector2(0, -9.8))

	Apply(g, light)
	Apply(g, heavy)

	assert.Equal(t, light.Acceleration, heavy.Acceleration)
}

func TestApply_DragOpposesVelocity(t *testing.T) {
	b := body.New(body.Def{Mass: 2})
	b.Velocity = vecmath.NewVector2(10, 0)
	Apply(NewDrag(0.1), b)
	assert.Less(t, b.Acceleration.X, float32(0))
}

func TestApply_DragDefaultsCoefficientWhenZero(t *testing.T) {
	b := body.New(body.Def{Mass: 1})
	b.Velocity = vecmath.NewVector2(10, 0)
	Apply(NewDrag(0), b)
	assert.InDelta(t, float32(-0.1), b.Acceleration.X, 1e-6)
}

func TestApply_WindScalesByInverseMass(t *testing.T) {
	light := body.New(body.Def{Mass: 1})
	heavy := body.New(body.Def{Mass: 10})
	w := NewWind(vecmath.NewVector2(1, 0), 5)

	Apply(w, light)
	Apply(w, heavy)

	assert.Greater(t, light.Acceleration.X, heavy.Acceleration.X)
}

func TestApply_AttractionPullsTowardSource(t *testing.T) {
	b := body.New(body.Def{Mass: 1, Position: vecmath.NewVector2(10, 0)})
	a := NewAttraction(vecmath.Zero2(), 100, FalloffQuadratic)
	Apply(a, b)
	assert.Less(t, b.Acceleration.X, float32(0))
}

func TestApply_AttractionClampsMinDistance(t *testing.T) {
	onTop := body.New(body.Def{Mass: 1, Position: vecmath.Zero2()})
	a := NewAttraction(vecmath.Zero2(), 100, FalloffQuadratic)
	assert.NotPanics(t, func() { Apply(a, onTop) })
	assert.False(t, isNaN(onTop.Acceleration.X))
}

func TestApply_StaticBodyUnaffected(t *testing.T) {
	b := body.New(body.Def{IsStatic: true})
	Apply(NewGravity(vecmath.NewVector2(0, -9.8)), b)
	assert.Equal(t, vecmath.Vector2{}, b.Acceleration)
}

func isNaN(f float32) bool {
	return f != f
}
