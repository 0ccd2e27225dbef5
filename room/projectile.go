package room

// Projectile is a kinetic weapon output: owner, damage, bullet effects and
// ordinance, plus dismissal bookkeeping.
type Projectile struct {
	Entity

	OwnerID   uint32
	OwnerTeam int

	X, Y         float64
	VelX, VelY   float64
	Damage       float64
	TTLSeconds   float64
	MinVelocity  float64
	LinearDamping float64

	BulletEffects map[BulletEffect]bool
	Ordinance     Ordinance

	Exploded bool
}

// NewProjectile constructs a projectile. ownerTeam is always required
// explicitly at the API boundary; there is no constructor overload that infers it.
func NewProjectile(ownerID uint32, ownerTeam int, x, y float64, direction Vec2, attrs WeaponAttributes, ordinance Ordinance, effects []BulletEffect) *Projectile {
	spec := OrdinanceCatalog[ordinance]
	speed := attrs.ProjectileSpeed
	dir := direction.Normalized()

	effectSet := make(map[BulletEffect]bool, len(effects))
	for _, e := range effects {
		effectSet[e] = true
	}

	ttl := 0.0
	if speed > 0 {
		ttl = attrs.Range / speed
	}

	minVelocity := spec.MinVelocity
	if minVelocity <= 0 {
		minVelocity = 20
	}

	return &Projectile{
		Entity: Entity{
			ID:     NextID(),
			Kind:   KindProjectile,
			Health: HealthInfinite,
			Active: true,
		},
		OwnerID:       ownerID,
		OwnerTeam:     ownerTeam,
		X:             x,
		Y:             y,
		VelX:          dir.X * speed,
		VelY:          dir.Y * speed,
		Damage:        attrs.Damage,
		TTLSeconds:    ttl,
		MinVelocity:   minVelocity,
		LinearDamping: attrs.LinearDamping,
		BulletEffects: effectSet,
		Ordinance:     ordinance,
	}
}

// Speed returns the current scalar velocity.
func (pr *Projectile) Speed() float64 {
	return Vec2{X: pr.VelX, Y: pr.VelY}.Length()
}

// HasEffect reports whether the projectile carries the given bullet effect.
func (pr *Projectile) HasEffect(effect BulletEffect) bool {
	return pr.BulletEffects[effect]
}

// DismissReason names why Advance reports a projectile for dismissal.
type DismissReason string

const (
	DismissNone       DismissReason = ""
	DismissExpiry     DismissReason = "ttl_expired"
	DismissLowVelocity DismissReason = "min_velocity"
)

// Advance integrates position, applies linear damping, and decrements TTL.
// It reports the reason dismissal should trigger, if any.
func (pr *Projectile) Advance(dt float64) DismissReason {
	if !pr.Active {
		return DismissNone
	}

	pr.X += pr.VelX * dt
	pr.Y += pr.VelY * dt

	if pr.LinearDamping > 0 {
		factor := 1 - pr.LinearDamping
		if factor < 0 {
			factor = 0
		}
		pr.VelX *= factor
		pr.VelY *= factor
	}

	pr.TTLSeconds -= dt
	if pr.TTLSeconds <= 0 {
		return DismissExpiry
	}
	if pr.Speed() < pr.MinVelocity {
		return DismissLowVelocity
	}
	return DismissNone
}

// effectsOnDismissalWarranted reports whether the ordinance/effect
// combination fires "effects on dismissal": rockets,
// grenades, and electrified plasma explode/detonate on TTL expiry or
// low-velocity stop, not only on direct hit.
func (pr *Projectile) effectsOnDismissalWarranted() bool {
	switch pr.Ordinance {
	case OrdinanceRocket, OrdinanceGrenade, OrdinancePlasmaBolt:
		return true
	}
	return pr.HasEffect(EffectExplosive) || pr.HasEffect(EffectFragmenting)
}
