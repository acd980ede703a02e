package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcp-tool-shop-org/tablesim/body"
	"github.com/mcp-tool-shop-org/tablesim/constraint"
	"github.com/mcp-tool-shop-org/tablesim/forcefield"
	"github.com/mcp-tool-shop-org/tablesim/vecmath"
)

const fixedDt = float32(1.0 / 60)

func TestWorld_GravityAccelerationIsMassIndependent(t *testing.T) {
	w := NewWorld()
	light := body.New(body.Def{ID: "light", Mass: 1})
	heavy := body.New(body.Def{ID: "heavy", Mass: 50})
	w.AddBody(light)
	w.AddBody(heavy)
	w.AddForceField(forcefield.NewGravity(vecmath.NewVector2(0, -9.8)))

	w.Step(fixedDt)

	assert.Equal(t, light.Velocity, heavy.Velocity)
}

func TestWorld_GravityDropApproximatelyMatchesAfterOneSecond(t *testing.T) {
	w := NewWorld()
	b := body.New(body.Def{ID: "b", Mass: 1})
	w.AddBody(b)
	w.AddForceField(forcefield.NewGravity(vecmath.NewVector2(0, -980)))

	for i := 0; i < 60; i++ {
		w.Step(fixedDt)
	}

	assert.InDelta(t, float32(-490), b.Position.Y, 10)
}

func TestWorld_StaticBodyNeverMoves(t *testing.T) {
	w := NewWorld()
	wall := body.New(body.Def{ID: "wall", IsStatic: true, Position: vecmath.NewVector2(0, 0)})
	w.AddBody(wall)
	w.AddForceField(forcefield.NewGravity(vecmath.NewVector2(0, -9.8)))

	for i := 0; i < 10; i++ {
		w.Step(fixedDt)
	}

	assert.Equal(t, vecmath.Vector2{}, wall.Position)
}

func TestWorld_ElasticHeadOnCollisionSwapsVelocities(t *testing.T) {
	w := NewWorld()
	one := float32(1)
	a := body.New(body.Def{ID: "a", Mass: 1, Position: vecmath.NewVector2(-6, 0), Restitution: &one})
	b := body.New(body.Def{ID: "b", Mass: 1, Position: vecmath.NewVector2(6, 0), Restitution: &one})
	a.Velocity = vecmath.NewVector2(10, 0)
	b.Velocity = vecmath.NewVector2(-10, 0)
	w.AddBody(a)
	w.AddBody(b)

	for i := 0; i < 30; i++ {
		w.Step(fixedDt)
	}

	assert.Less(t, a.Velocity.X, float32(0))
	assert.Greater(t, b.Velocity.X, float32(0))
}

func TestWorld_DistanceChainDoesNotExplodeWithCoincidentAnchors(t *testing.T) {
	w := NewWorld()
	a := body.New(body.Def{ID: "a", Mass: 1, Position: vecmath.NewVector2(5, 5)})
	b := body.New(body.Def{ID: "b", Mass: 1, Position: vecmath.NewVector2(5, 5)})
	w.AddBody(a)
	w.AddBody(b)
	w.AddConstraint(constraint.New(constraint.Def{Kind: constraint.Distance, BodyA: "a", BodyB: "b", Stiffness: 0.5}))

	for i := 0; i < 120; i++ {
		w.Step(fixedDt)
		assert.False(t, isNaN(a.Position.X))
		assert.False(t, isNaN(b.Position.X))
	}
}

func TestWorld_RemoveBodyStopsSimulatingIt(t *testing.T) {
	w := NewWorld()
	b := body.New(body.Def{ID: "b", Mass: 1})
	w.AddBody(b)
	assert.True(t, w.RemoveBody("b"))
	assert.Nil(t, w.GetBody("b"))
	assert.False(t, w.RemoveBody("b"))
}

func TestWorld_BodiesPreservesInsertionOrder(t *testing.T) {
	w := NewWorld()
	w.AddBody(body.New(body.Def{ID: "c"}))
	w.AddBody(body.New(body.Def{ID: "a"}))
	w.AddBody(body.New(body.Def{ID: "b"}))

	ids := []string{}
	for _, b := range w.Bodies() {
		ids = append(ids, b.ID)
	}
	assert.Equal(t, []string{"c", "a", "b"}, ids)
}

func TestWorld_ImplicitWorldGravityAppliesWhenNoGravityFieldRegistered(t *testing.T) {
	w := NewWorld()
	b := body.New(body.Def{ID: "b", Mass: 1})
	w.AddBody(b)
	w.Gravity = vecmath.NewVector2(0, -9.8)

	w.Step(fixedDt)

	assert.Less(t, b.Velocity.Y, float32(0))
}

func TestWorld_ExplicitGravityFieldOverridesImplicitWorldGravity(t *testing.T) {
	w := NewWorld()
	b := body.New(body.Def{ID: "b", Mass: 1})
	w.AddBody(b)
	w.Gravity = vecmath.NewVector2(0, -9.8)
	w.AddForceField(forcefield.NewGravity(vecmath.NewVector2(0, -1)))

	w.Step(fixedDt)

	assert.InDelta(t, float32(-1*fixedDt), b.Velocity.Y, 1e-4)
}

func TestWorld_RemoveForceFieldsByKind(t *testing.T) {
	w := NewWorld()
	w.AddForceField(forcefield.NewGravity(vecmath.NewVector2(0, -1)))
	w.AddForceField(forcefield.NewWind(vecmath.NewVector2(1, 0), 1))

	removed := w.RemoveForceFields(forcefield.Gravity)

	assert.Equal(t, 1, removed)
	assert.Len(t, w.ForceFields(), 1)
	assert.Equal(t, forcefield.Wind, w.ForceFields()[0].Kind)
}

func TestWorld_SubstepsDivideFixedDt(t *testing.T) {
	w := NewWorld()
	w.Substeps = 4
	b := body.New(body.Def{ID: "b", Mass: 1})
	w.AddBody(b)
	w.AddForceField(forcefield.NewGravity(vecmath.NewVector2(0, -60)))

	w.Step(fixedDt)

	assert.False(t, isNaN(b.Velocity.Y))
}

func TestWorld_RectPyramidStackStaysOrderedAndInBounds(t *testing.T) {
	w := NewWorld()
	w.Bounds = &Bounds{Min: vecmath.NewVector2(0, 0), Max: vecmath.NewVector2(600, 600)}
	w.AddForceField(forcefield.NewGravity(vecmath.NewVector2(0, 980)))

	restitution := float32(0.1)
	friction := float32(0.8)
	ys := []float32{500, 470, 440, 410, 380}
	for i, y := range ys {
		shape := body.NewRect(30, 30)
		b := body.New(body.Def{
			Mass: 1, Position: vecmath.NewVector2(300, y),
			Shape: &shape, Restitution: &restitution, Friction: &friction,
		})
		b.ID = idFor(i)
		w.AddBody(b)
	}

	floor := body.New(body.Def{ID: "floor", IsStatic: true, Position: vecmath.NewVector2(300, 600)})
	floorShape := body.NewRect(600, 20)
	floor.Shape = floorShape
	w.AddBody(floor)

	for i := 0; i < 180; i++ {
		w.Step(fixedDt)
	}

	for i := 0; i < len(ys)-1; i++ {
		bottom := w.GetBody(idFor(i))
		top := w.GetBody(idFor(i + 1))
		assert.Less(t, top.Position.Y, bottom.Position.Y+1, "vertical ordering should survive settling")
	}
	for i := range ys {
		b := w.GetBody(idFor(i))
		assert.False(t, isNaN(b.Position.X))
		assert.GreaterOrEqual(t, b.Position.X, w.Bounds.Min.X)
		assert.LessOrEqual(t, b.Position.X, w.Bounds.Max.X)
	}
}

func idFor(i int) string {
	return "rect-" + string(rune('a'+i))
}

func TestWorld_SpringChainStaysFiniteOver100Steps(t *testing.T) {
	w := NewWorld()

	const n = 50
	for i := 0; i < n; i++ {
		b := body.New(body.Def{ID: idFor(i), Position: vecmath.NewVector2(float32(i)*16, 0), Mass: 1, IsStatic: i == 0})
		w.AddBody(b)
	}
	springLength := float32(16)
	for i := 0; i < n-1; i++ {
		w.AddConstraint(constraint.New(constraint.Def{
			Kind: constraint.Spring, BodyA: idFor(i), BodyB: idFor(i + 1),
			Stiffness: 0.8, Damping: 0.1, Length: &springLength,
		}))
	}

	for i := 0; i < 100; i++ {
		w.Step(fixedDt)
	}

	for i := 0; i < n; i++ {
		b := w.GetBody(idFor(i))
		assert.False(t, isNaN(b.Position.X))
		assert.False(t, isNaN(b.Position.Y))
	}
}

func isNaN(f float32) bool { return f != f }
