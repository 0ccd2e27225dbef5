package sim

import "time"

// Command is a single actor-originated instruction staged for the next
// tick: movement intent, fire/alt-fire/reload, or a utility deploy/config
// change. ActorID is the player id formatted as a string so the buffer's
// per-actor throttling can key on it uniformly.
type Command struct {
	ActorID string
	Type    string
	Tick    uint64
	At      time.Time
	Payload any
}
