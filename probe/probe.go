package probe

import (
	"sync"
)

// SnapshotEvent is the event name Publish dispatches under.
const SnapshotEvent = "probe.snapshot"

// Snapshot is a read-only view of one completed step, published for any
// devtools subscriber. Fields are concrete slices/values, not pointers the
// core keeps mutating, so a subscriber can safely hold one past the step
// that produced it.
type Snapshot struct {
	Step        uint64
	Bodies      any
	Constraints any
	Contacts    int
}

// Subscriber is called with each published Snapshot.
type Subscriber func(Snapshot)

// Default is the process-wide probe instance. The simulation core writes
// to it unconditionally; whether anything is listening is never its
// concern.
var Default = New()

// Probe is a one-way publish point: the simulation core calls Publish, and
// any number of external devtools subscribers call Subscribe to observe.
// It never reads back from its own subscribers.
type Probe struct {
	dispatcher *Dispatcher
	mu         sync.Mutex
	paused     bool
	stepOnce   bool
}

// New returns a Probe with no subscribers, unpaused.
func New() *Probe {
	return &Probe{dispatcher: NewDispatcher()}
}

// Subscribe registers cb to receive every future Snapshot.
func (p *Probe) Subscribe(cb Subscriber) {
	p.dispatcher.Subscribe(SnapshotEvent, func(_ string, ev interface{}) {
		cb(ev.(Snapshot))
	})
}

// Publish dispatches snap to every subscriber. Safe to call whether or not
// anything is subscribed.
func (p *Probe) Publish(snap Snapshot) {
	p.dispatcher.Dispatch(SnapshotEvent, snap)
}

// Pause requests that the caller's step loop stop advancing. Pause/Resume
// only set a flag the engine facade is expected to consult each frame; the
// Probe itself never stops a World from stepping on its own.
func (p *Probe) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.paused = true
}

// Resume clears a prior Pause.
func (p *Probe) Resume() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.paused = false
}

// Paused reports whether Pause has been called without a matching Resume.
func (p *Probe) Paused() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.paused
}

// RequestStepOnce arms a single-step override: the next time the engine
// facade observes Paused()==true, it should take exactly one fixed step
// and call ConsumeStepOnce to check whether it was armed.
func (p *Probe) RequestStepOnce() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stepOnce = true
}

// ConsumeStepOnce reports whether a step-once was armed and clears it.
func (p *Probe) ConsumeStepOnce() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	armed := p.stepOnce
	p.stepOnce = false
	return armed
}
