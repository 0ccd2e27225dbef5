package room

import "testing"

func TestPlayerAimUnitVectorDefaultsOnDegenerateAim(t *testing.T) {
	t.Parallel()

	p := newTestPlayer(1, 1)
	p.X, p.Y = 10, 10
	p.AimX, p.AimY = 10, 10

	if v := p.AimUnitVector(); v != (Vec2{X: 1, Y: 0}) {
		t.Fatalf("expected a degenerate aim point to default to (1, 0), got %+v", v)
	}
}

func TestPlayerApplyStatusTakesLongerDuration(t *testing.T) {
	t.Parallel()

	p := newTestPlayer(1, 1)
	p.ApplyStatus(StatusSlowed, 5)
	p.ApplyStatus(StatusSlowed, 2)

	if p.StatusEffects[StatusSlowed] != 5 {
		t.Fatalf("expected the longer duration to win, got %v", p.StatusEffects[StatusSlowed])
	}

	p.ApplyStatus(StatusSlowed, 10)
	if p.StatusEffects[StatusSlowed] != 10 {
		t.Fatalf("expected a longer refresh to extend the status, got %v", p.StatusEffects[StatusSlowed])
	}
}

func TestPlayerTickStatusEffectsExpiresAtZero(t *testing.T) {
	t.Parallel()

	p := newTestPlayer(1, 1)
	p.ApplyStatus(StatusPoison, 1)

	p.TickStatusEffects(0.5)
	if !p.HasStatus(StatusPoison) {
		t.Fatalf("expected the status to still be active before its duration elapses")
	}

	p.TickStatusEffects(0.6)
	if p.HasStatus(StatusPoison) {
		t.Fatalf("expected the status to expire once its duration elapses")
	}
}

func TestPlayerEffectiveSpeedReflectsStatus(t *testing.T) {
	t.Parallel()

	p := newTestPlayer(1, 1)
	p.MaxSpeed = 200

	if p.EffectiveSpeed() != 200 {
		t.Fatalf("expected full speed with no status, got %v", p.EffectiveSpeed())
	}

	p.ApplyStatus(StatusSlowed, 5)
	if p.EffectiveSpeed() != 100 {
		t.Fatalf("expected half speed while slowed, got %v", p.EffectiveSpeed())
	}

	p.ApplyStatus(StatusFrozen, 5)
	if p.EffectiveSpeed() != 0 {
		t.Fatalf("expected zero speed while frozen, regardless of slow, got %v", p.EffectiveSpeed())
	}
}

func TestPlayerEliminateClearsActiveState(t *testing.T) {
	t.Parallel()

	p := newTestPlayer(1, 1)
	p.LivesRemaining = 2
	p.RespawnTimer = 3

	p.Eliminate()

	if !p.Eliminated || p.Active || p.LivesRemaining != 0 || p.RespawnTimer != 0 {
		t.Fatalf("expected elimination to clear active state, got %+v", p)
	}
}
