package probe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublish_DeliversToSubscriber(t *testing.T) {
	p := New()
	var got Snapshot
	calls := 0
	p.Subscribe(func(s Snapshot) {
		calls++
		got = s
	})

	p.Publish(Snapshot{Step: 5, Contacts: 2})

	assert.Equal(t, 1, calls)
	assert.Equal(t, uint64(5), got.Step)
	assert.Equal(t, 2, got.Contacts)
}

func TestPublish_SafeWithNoSubscribers(t *testing.T) {
	p := New()
	assert.NotPanics(t, func() { p.Publish(Snapshot{Step: 1}) })
}

func TestPublish_DeliversToEverySubscriber(t *testing.T) {
	p := New()
	seenA, seenB := 0, 0
	p.Subscribe(func(Snapshot) { seenA++ })
	p.Subscribe(func(Snapshot) { seenB++ })

	p.Publish(Snapshot{})

	assert.Equal(t, 1, seenA)
	assert.Equal(t, 1, seenB)
}

func TestPauseResume_TogglesPaused(t *testing.T) {
	p := New()
	assert.False(t, p.Paused())
	p.Pause()
	assert.True(t, p.Paused())
	p.Resume()
	assert.False(t, p.Paused())
}

func TestConsumeStepOnce_ReportsAndClearsArmedState(t *testing.T) {
	p := New()
	assert.False(t, p.ConsumeStepOnce())

	p.RequestStepOnce()
	assert.True(t, p.ConsumeStepOnce())
	assert.False(t, p.ConsumeStepOnce())
}

func TestNew_StartsUnpaused(t *testing.T) {
	p := New()
	assert.False(t, p.Paused())
}

func TestDefault_IsUsableWithoutConfiguration(t *testing.T) {
	assert.NotPanics(t, func() { Default.Publish(Snapshot{Step: 1}) })
}
