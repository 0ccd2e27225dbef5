package room

// FieldEffectType enumerates the area source kinds.
type FieldEffectType string

const (
	FieldExplosion    FieldEffectType = "EXPLOSION"
	FieldFire         FieldEffectType = "FIRE"
	FieldElectric     FieldEffectType = "ELECTRIC"
	FieldFreeze       FieldEffectType = "FREEZE"
	FieldPoison       FieldEffectType = "POISON"
	FieldFragmentation FieldEffectType = "FRAGMENTATION" // visual only
	FieldWarningZone  FieldEffectType = "WARNING_ZONE"
	FieldEarthquake   FieldEffectType = "EARTHQUAKE"
)

// continuousFieldEffects marks field effect types that apply damage every
// tick for their duration rather than once on spawn.
var continuousFieldEffects = map[FieldEffectType]bool{
	FieldFire:       true,
	FieldElectric:   true,
	FieldPoison:     true,
	FieldEarthquake: true,
}

// IsContinuous reports whether this effect type applies damage every tick
// (vs. once, instantaneously, on spawn).
func (t FieldEffectType) IsContinuous() bool {
	return continuousFieldEffects[t]
}

// FieldEffect is a spatial, timed area source of damage/heal/debuff.
type FieldEffect struct {
	Entity

	Type          FieldEffectType
	Center        Vec2
	Radius        float64
	DamagePerTick float64
	Duration      float64
	Remaining     float64

	OwnerID   uint32
	OwnerTeam int // 0 = FFA: hits everyone but owner

	applied bool // for instantaneous effects, whether damage has already fired
}

// NewFieldEffect constructs a field effect entity.
func NewFieldEffect(effectType FieldEffectType, center Vec2, radius, damagePerTick, duration float64, ownerID uint32, ownerTeam int) *FieldEffect {
	return &FieldEffect{
		Entity: Entity{
			ID:     NextID(),
			Kind:   KindFieldEffect,
			Health: HealthInfinite,
			Active: true,
		},
		Type:          effectType,
		Center:        center,
		Radius:        radius,
		DamagePerTick: damagePerTick,
		Duration:      duration,
		Remaining:     duration,
		OwnerID:       ownerID,
		OwnerTeam:     ownerTeam,
	}
}

// AffectsTeam reports whether this effect damages the given team, applying
// the owner_team filtering rule: team 0 means FFA and hits everyone but
// the owner.
func (fe *FieldEffect) AffectsTeam(team int, actorID uint32) bool {
	if actorID == fe.OwnerID {
		return false
	}
	if fe.OwnerTeam == 0 {
		return true
	}
	return team != fe.OwnerTeam
}

// Contains reports whether point p lies within the effect's radius.
func (fe *FieldEffect) Contains(p Vec2) bool {
	return fe.Center.Distance(p) <= fe.Radius
}

// Tick advances the field effect's duration timer by dt. Returns true once
// expired. Instantaneous effects expire after their single application.
func (fe *FieldEffect) Tick(dt float64) (expired bool) {
	if fe.Duration <= 0 {
		return fe.applied
	}
	fe.Remaining -= dt
	return fe.Remaining <= 0
}

// ShouldApplyOnce reports whether an instantaneous effect still needs to
// fire its one-shot damage application, and marks it applied.
func (fe *FieldEffect) ShouldApplyOnce() bool {
	if fe.Type.IsContinuous() {
		return false
	}
	if fe.applied {
		return false
	}
	fe.applied = true
	return true
}
