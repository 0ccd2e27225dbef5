package sim

// Snapshot is the opaque per-tick world state produced by an engine core.
// The sim package never inspects it; room.Snapshot satisfies this by
// structural assignment.
type Snapshot any

// EngineCore is the minimal contract a simulation must satisfy to be driven
// by Loop: accept a dependency bundle, apply staged commands, advance one
// fixed timestep, and produce a snapshot.
type EngineCore interface {
	Deps() Deps
	Apply(cmds []Command) error
	Step(dt float64)
	Snapshot() Snapshot
}

// Engine is the contract Loop itself exposes to callers (cmd/server, the ws
// handler): everything an EngineCore does, plus the command-queue surface.
type Engine interface {
	EngineCore
	Enqueue(cmd Command) (bool, string)
	Pending() int
	Run(stop <-chan struct{})
}
