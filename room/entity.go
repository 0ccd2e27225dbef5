package room

import "time"

// EntityKind tags the variant carried by a GameEntity. The source's
// abstract GameEntity hierarchy is modeled here as a small common record
// plus a tagged variant enum: each kind's data lives in its own dense
// arena inside EntityRegistry rather than embedding every field in one
// struct.
type EntityKind string

const (
	KindPlayer      EntityKind = "player"
	KindProjectile  EntityKind = "projectile"
	KindBeam        EntityKind = "beam"
	KindFieldEffect EntityKind = "field_effect"
	KindObstacle    EntityKind = "obstacle"
	KindTurret      EntityKind = "turret"
	KindTeleportPad EntityKind = "teleport_pad"
	KindNet         EntityKind = "net"
	KindKothZone    EntityKind = "koth_zone"
	KindWorkshop    EntityKind = "workshop"
	KindPowerUp     EntityKind = "power_up"
	KindHeadquarter EntityKind = "headquarters"
	KindFlag        EntityKind = "flag"
)

// Infinite is zero and is not consulted by IsIndestructible; indestructible
// health is marked with HealthInfinite.
const Infinite = 0

// HealthInfinite is the sentinel representing "+inf" health: the entity
// cannot be destroyed by damage accounting. Kept separate from the zero
// value of float64 so a freshly zeroed Entity defaults to destructible.
var HealthInfinite = func() float64 {
	var inf float64 = 1
	for i := 0; i < 2000; i++ {
		inf *= 2
	}
	return inf
}()

// Entity is the common record shared by every live simulation object:
// players, projectiles, beams, field effects, obstacles and deployed
// utilities. Health == HealthInfinite means indestructible. Active flips
// false exactly once in an entity's lifetime; once false it can never
// return to true and the entity is removed by cleanup.
type Entity struct {
	ID            uint32
	Kind          EntityKind
	BodyHandle    uint32
	Health        float64
	MaxHealth     float64
	Active        bool
	CreatedAt     time.Time
	LastUpdatedAt time.Time
}

// IsIndestructible reports whether the entity can never be destroyed by damage.
func (e *Entity) IsIndestructible() bool {
	return e.Health >= HealthInfinite
}

// Deactivate marks the entity inactive. It is a no-op if already inactive,
// enforcing the one-way active->inactive transition.
func (e *Entity) Deactivate() {
	if e == nil {
		return
	}
	e.Active = false
}

// ApplyDamage reduces health by amount (no-op if indestructible or already
// inactive) and deactivates the entity when health reaches zero. Returns
// true if this call caused the entity to become inactive.
func (e *Entity) ApplyDamage(amount float64) (killed bool) {
	if e == nil || !e.Active || amount <= 0 {
		return false
	}
	if e.IsIndestructible() {
		return false
	}
	e.Health -= amount
	if e.Health <= 0 {
		e.Health = 0
		e.Active = false
		return true
	}
	return false
}

// Heal increases health, clamped to MaxHealth, and is a no-op on inactive
// or indestructible entities.
func (e *Entity) Heal(amount float64) {
	if e == nil || !e.Active || amount <= 0 || e.IsIndestructible() {
		return
	}
	e.Health += amount
	if e.MaxHealth > 0 && e.Health > e.MaxHealth {
		e.Health = e.MaxHealth
	}
}
