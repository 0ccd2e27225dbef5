package room

import "time"

// UtilityWeaponName enumerates deployable utility kinds a player may carry
// in their utility slot.
type UtilityWeaponName string

const (
	UtilityTurret      UtilityWeaponName = "turret"
	UtilityBarrier     UtilityWeaponName = "barrier"
	UtilityMine        UtilityWeaponName = "mine"
	UtilityNet         UtilityWeaponName = "net"
	UtilityTeleportPad UtilityWeaponName = "teleport_pad"
	UtilityHealZone    UtilityWeaponName = "heal_zone"
)

// StatusEffect enumerates status conditions a player can carry, applied by
// field effects (freeze/slow/poison/burn) or utility interactions.
type StatusEffect string

const (
	StatusBurning StatusEffect = "burning"
	StatusFrozen  StatusEffect = "frozen"
	StatusSlowed  StatusEffect = "slowed"
	StatusPoison  StatusEffect = "poisoned"
)

// Player is a input-driven agent with a primary weapon and utility slot.
type Player struct {
	Entity

	Name   string
	Team   int // 0 = FFA, 1..4
	X, Y   float64
	AimX   float64
	AimY   float64

	Weapon        *WeaponInstance
	UtilitySlot   UtilityWeaponName
	UtilityCooldownRemain float64

	LastShotWallTime      time.Time
	LastUtilityUseWallTime time.Time

	Kills    int
	Deaths   int
	Captures int

	LivesRemaining int // -1 = unlimited
	Eliminated     bool

	RespawnPoint Vec2
	RespawnTimer float64

	MaxSpeed      float64
	StatusEffects map[StatusEffect]float64 // effect -> remaining seconds

	IsSpectator bool

	IsVIP bool

	// inputs drained at-most-latest-per-player each tick
	PendingMoveX, PendingMoveY float64
	PendingFire                bool
	PendingAltFire             bool
	PendingReload              bool
	PendingInputAt             time.Time
}

// AimUnitVector returns the normalized aim direction, defaulting to the
// identity direction on a degenerate aim point.
func (p *Player) AimUnitVector() Vec2 {
	return Vec2{X: p.AimX - p.X, Y: p.AimY - p.Y}.Normalized()
}

// HasStatus reports whether the player currently carries the given status.
func (p *Player) HasStatus(effect StatusEffect) bool {
	remaining, ok := p.StatusEffects[effect]
	return ok && remaining > 0
}

// ApplyStatus refreshes (or starts) a timed status effect on the player,
// taking the longer of the existing and new remaining duration.
func (p *Player) ApplyStatus(effect StatusEffect, duration float64) {
	if p.StatusEffects == nil {
		p.StatusEffects = make(map[StatusEffect]float64)
	}
	if existing := p.StatusEffects[effect]; existing > duration {
		return
	}
	p.StatusEffects[effect] = duration
}

// TickStatusEffects decrements every active status timer by dt and clears
// expired ones.
func (p *Player) TickStatusEffects(dt float64) {
	for effect, remaining := range p.StatusEffects {
		remaining -= dt
		if remaining <= 0 {
			delete(p.StatusEffects, effect)
			continue
		}
		p.StatusEffects[effect] = remaining
	}
}

// EffectiveSpeed returns MaxSpeed adjusted for slow/freeze statuses.
func (p *Player) EffectiveSpeed() float64 {
	if p.HasStatus(StatusFrozen) {
		return 0
	}
	if p.HasStatus(StatusSlowed) {
		return p.MaxSpeed * 0.5
	}
	return p.MaxSpeed
}

// Eliminate marks the player permanently out of the round.
func (p *Player) Eliminate() {
	p.Eliminated = true
	p.LivesRemaining = 0
	p.Active = false
	p.RespawnTimer = 0
}
