package room

import "math"

// fragmentingChildCount is how many child projectiles a FRAGMENTING hit
// spawns.
const fragmentingChildCount = 6

// BulletEffectProcessor expands a projectile's on-hit bullet effects into
// field effects and/or fragment projectiles at the moment of impact or
// dismissal.
type BulletEffectProcessor struct{}

// NewBulletEffectProcessor constructs a stateless bullet-effect processor.
func NewBulletEffectProcessor() *BulletEffectProcessor {
	return &BulletEffectProcessor{}
}

// Expand processes a dismissed/impacted projectile's bullet effects at
// position pos, registering any spawned field effects and fragment
// projectiles into reg. FRAGMENTING dominates every other expansion: if
// present, it is the only effect that fires.
func (bp *BulletEffectProcessor) Expand(reg *EntityRegistry, pr *Projectile, pos Vec2) {
	if pr.HasEffect(EffectFragmenting) {
		bp.spawnFragments(reg, pr, pos)
		return
	}
	bp.spawnPriorityFieldEffect(reg, pr, pos)
}

// spawnFragments scatters fragmentingChildCount child projectiles evenly
// around pos. Children never themselves carry FRAGMENTING, preventing
// infinite recursive fragmentation.
func (bp *BulletEffectProcessor) spawnFragments(reg *EntityRegistry, pr *Projectile, pos Vec2) {
	childEffects := stripFragmenting(pr.BulletEffects)
	attrs := WeaponAttributes{
		Damage:          pr.Damage * 0.4,
		Range:           200,
		ProjectileSpeed: 250,
		BulletsPerShot:  1,
		LinearDamping:   0.05,
	}
	for i := 0; i < fragmentingChildCount; i++ {
		angle := (2 * math.Pi / fragmentingChildCount) * float64(i)
		dir := FromAngle(angle)
		child := NewProjectile(pr.OwnerID, pr.OwnerTeam, pos.X, pos.Y, dir, attrs, OrdinanceBullet, childEffects)
		reg.AddProjectile(child)
	}
}

func stripFragmenting(effects map[BulletEffect]bool) []BulletEffect {
	out := make([]BulletEffect, 0, len(effects))
	for e := range effects {
		if e != EffectFragmenting {
			out = append(out, e)
		}
	}
	return out
}

// spawnPriorityFieldEffect fires at most one expansion field effect, chosen
// by bulletEffectExpansionOrder when more than one is present.
func (bp *BulletEffectProcessor) spawnPriorityFieldEffect(reg *EntityRegistry, pr *Projectile, pos Vec2) {
	for _, effect := range bulletEffectExpansionOrder {
		if !pr.HasEffect(effect) {
			continue
		}
		fieldType, ok := bulletEffectFieldType[effect]
		if !ok {
			continue
		}
		radius, damage := effect.ScaledRadiusAndDamage(pr.Damage, pr.Ordinance)
		fe := NewFieldEffect(fieldType, pos, radius, damage, effect.DefaultDuration(), pr.OwnerID, pr.OwnerTeam)
		reg.AddFieldEffect(fe)
		return
	}
}
