package sim

import "testing"

type fakeCore struct {
	deps      Deps
	applied   [][]Command
	steps     []float64
	snapshots int
}

func (c *fakeCore) Deps() Deps { return c.deps }

func (c *fakeCore) Apply(cmds []Command) error {
	c.applied = append(c.applied, cmds)
	return nil
}

func (c *fakeCore) Step(dt float64) {
	c.steps = append(c.steps, dt)
}

func (c *fakeCore) Snapshot() Snapshot {
	c.snapshots++
	return c.snapshots
}

func TestLoopEnqueueRejectsWhenBufferFull(t *testing.T) {
	t.Parallel()

	core := &fakeCore{}
	loop := NewLoop(core, LoopConfig{CommandCapacity: 1}, LoopHooks{})

	ok, reason := loop.Enqueue(Command{ActorID: "a"})
	if !ok || reason != "" {
		t.Fatalf("expected first command to be accepted, got ok=%v reason=%q", ok, reason)
	}
	ok, reason = loop.Enqueue(Command{ActorID: "b"})
	if ok || reason != CommandRejectQueueFull {
		t.Fatalf("expected second command to be rejected with %q, got ok=%v reason=%q", CommandRejectQueueFull, ok, reason)
	}
}

func TestLoopEnqueueRejectsBeyondPerActorLimit(t *testing.T) {
	t.Parallel()

	core := &fakeCore{}
	loop := NewLoop(core, LoopConfig{CommandCapacity: 10, PerActorLimit: 2}, LoopHooks{})

	for i := 0; i < 2; i++ {
		if ok, _ := loop.Enqueue(Command{ActorID: "actor"}); !ok {
			t.Fatalf("expected command %d within the per-actor limit to be accepted", i)
		}
	}
	ok, reason := loop.Enqueue(Command{ActorID: "actor"})
	if ok || reason != CommandRejectQueueLimit {
		t.Fatalf("expected a third command from the same actor to be throttled, got ok=%v reason=%q", ok, reason)
	}
	if ok, _ := loop.Enqueue(Command{ActorID: "other"}); !ok {
		t.Fatalf("expected a different actor to have its own independent budget")
	}
}

func TestLoopEnqueueCallsDropHook(t *testing.T) {
	t.Parallel()

	var gotReason string
	var gotCmd Command
	core := &fakeCore{}
	loop := NewLoop(core, LoopConfig{CommandCapacity: 1}, LoopHooks{
		OnCommandDrop: func(reason string, cmd Command) {
			gotReason = reason
			gotCmd = cmd
		},
	})

	loop.Enqueue(Command{ActorID: "first"})
	loop.Enqueue(Command{ActorID: "second"})

	if gotReason != CommandRejectQueueFull {
		t.Fatalf("expected drop hook to report %q, got %q", CommandRejectQueueFull, gotReason)
	}
	if gotCmd.ActorID != "second" {
		t.Fatalf("expected the dropped command to be the second one, got %+v", gotCmd)
	}
}

func TestLoopAdvanceDrainsQueueAndStepsCore(t *testing.T) {
	t.Parallel()

	core := &fakeCore{}
	loop := NewLoop(core, LoopConfig{CommandCapacity: 10}, LoopHooks{})

	loop.Enqueue(Command{ActorID: "a"})
	loop.Enqueue(Command{ActorID: "b"})

	if loop.Pending() != 2 {
		t.Fatalf("expected 2 pending commands before Advance, got %d", loop.Pending())
	}

	result := loop.Advance(LoopTickContext{Tick: 1, Delta: 1.0 / 60})

	if loop.Pending() != 0 {
		t.Fatalf("expected the queue to be drained after Advance, got %d pending", loop.Pending())
	}
	if len(result.Commands) != 2 {
		t.Fatalf("expected Advance to report the drained commands, got %d", len(result.Commands))
	}
	if len(core.applied) != 1 || len(core.applied[0]) != 2 {
		t.Fatalf("expected Apply to be called once with both commands, got %+v", core.applied)
	}
	if len(core.steps) != 1 || core.steps[0] != 1.0/60 {
		t.Fatalf("expected Step to be called with the tick's delta, got %+v", core.steps)
	}
	if result.Snapshot != 1 {
		t.Fatalf("expected Advance to capture a fresh snapshot, got %+v", result.Snapshot)
	}
}

func TestLoopAdvanceResetsPerActorThrottleEachTick(t *testing.T) {
	t.Parallel()

	core := &fakeCore{}
	loop := NewLoop(core, LoopConfig{CommandCapacity: 10, PerActorLimit: 1}, LoopHooks{})

	loop.Enqueue(Command{ActorID: "actor"})
	if ok, _ := loop.Enqueue(Command{ActorID: "actor"}); ok {
		t.Fatalf("expected the second command in the same tick to be throttled")
	}

	loop.Advance(LoopTickContext{Tick: 1, Delta: 1.0 / 60})

	if ok, _ := loop.Enqueue(Command{ActorID: "actor"}); !ok {
		t.Fatalf("expected the per-actor budget to reset after Advance drains the queue")
	}
}

func TestNewLoopReturnsNilForNilCore(t *testing.T) {
	t.Parallel()

	if loop := NewLoop(nil, LoopConfig{}, LoopHooks{}); loop != nil {
		t.Fatalf("expected a nil core to produce a nil loop")
	}
}
