package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcp-tool-shop-org/tablesim/body"
	"github.com/mcp-tool-shop-org/tablesim/vecmath"
)

func TestUpdateSleep_FallsAsleepAfterThresholdFrames(t *testing.T) {
	b := body.New(body.Def{Mass: 1})
	b.Velocity = vecmath.NewVector2(0.01, 0)

	for i := 0; i < body.SleepFrameThreshold-1; i++ {
		UpdateSleep(b)
		assert.False(t, b.IsSleeping)
	}
	UpdateSleep(b)
	assert.True(t, b.IsSleeping)
	assert.Equal(t, vecmath.Vector2{}, b.Velocity)
}

func TestUpdateSleep_ResetsTimerOnFastSubstep(t *testing.T) {
	b := body.New(body.Def{Mass: 1})
	b.Velocity = vecmath.NewVector2(0.01, 0)
	for i := 0; i < 10; i++ {
		UpdateSleep(b)
	}
	b.Velocity = vecmath.NewVector2(5, 0)
	UpdateSleep(b)
	assert.Equal(t, 0, b.SleepTimer)
}

func TestUpdateSleep_StaticBodyNeverSleeps(t *testing.T) {
	b := body.New(body.Def{IsStatic: true})
	UpdateSleep(b)
	assert.False(t, b.IsSleeping)
	assert.Equal(t, 0, b.SleepTimer)
}
