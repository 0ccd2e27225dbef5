package room

import "testing"

func TestNewProjectileComputesTTLFromRangeAndSpeed(t *testing.T) {
	t.Parallel()

	attrs := WeaponAttributes{Damage: 10, Range: 500, ProjectileSpeed: 250}
	pr := NewProjectile(1, 1, 0, 0, Vec2{X: 1, Y: 0}, attrs, OrdinanceBullet, nil)

	if pr.TTLSeconds != 2 {
		t.Fatalf("expected TTL of range/speed = 2s, got %v", pr.TTLSeconds)
	}
	if pr.VelX != 250 || pr.VelY != 0 {
		t.Fatalf("expected velocity along the fire direction, got (%v, %v)", pr.VelX, pr.VelY)
	}
}

func TestProjectileAdvanceExpiresOnTTL(t *testing.T) {
	t.Parallel()

	attrs := WeaponAttributes{Damage: 10, Range: 10, ProjectileSpeed: 100}
	pr := NewProjectile(1, 1, 0, 0, Vec2{X: 1, Y: 0}, attrs, OrdinanceBullet, nil)

	reason := pr.Advance(1.0)
	if reason != DismissExpiry {
		t.Fatalf("expected dismissal reason %q, got %q", DismissExpiry, reason)
	}
}

func TestProjectileAdvanceDismissesOnLowVelocity(t *testing.T) {
	t.Parallel()

	attrs := WeaponAttributes{Damage: 10, Range: 10000, ProjectileSpeed: 100, LinearDamping: 0.9}
	pr := NewProjectile(1, 1, 0, 0, Vec2{X: 1, Y: 0}, attrs, OrdinanceBullet, nil)

	var reason DismissReason
	for i := 0; i < 50 && reason == DismissNone; i++ {
		reason = pr.Advance(0.1)
	}
	if reason != DismissLowVelocity {
		t.Fatalf("expected dismissal reason %q once damping decays velocity, got %q", DismissLowVelocity, reason)
	}
}

func TestProjectileAdvanceIsNoOpWhenInactive(t *testing.T) {
	t.Parallel()

	attrs := WeaponAttributes{Damage: 10, Range: 10, ProjectileSpeed: 100}
	pr := NewProjectile(1, 1, 5, 5, Vec2{X: 1, Y: 0}, attrs, OrdinanceBullet, nil)
	pr.Active = false

	if reason := pr.Advance(1.0); reason != DismissNone {
		t.Fatalf("expected no dismissal from an inactive projectile, got %q", reason)
	}
	if pr.X != 5 || pr.Y != 5 {
		t.Fatalf("expected an inactive projectile's position to be untouched, got (%v, %v)", pr.X, pr.Y)
	}
}

func TestProjectileHasEffectReflectsConstructorEffects(t *testing.T) {
	t.Parallel()

	attrs := WeaponAttributes{Damage: 10, Range: 100, ProjectileSpeed: 100}
	pr := NewProjectile(1, 1, 0, 0, Vec2{X: 1, Y: 0}, attrs, OrdinanceRocket, []BulletEffect{EffectExplosive, EffectFragmenting})

	if !pr.HasEffect(EffectExplosive) || !pr.HasEffect(EffectFragmenting) {
		t.Fatalf("expected both constructor-provided effects to be present, got %+v", pr.BulletEffects)
	}
	if pr.HasEffect(EffectPoison) {
		t.Fatalf("expected an effect never passed to the constructor to be absent")
	}
}
