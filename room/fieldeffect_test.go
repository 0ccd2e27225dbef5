package room

import "testing"

func TestFieldEffectAffectsTeamExcludesOwner(t *testing.T) {
	t.Parallel()

	fe := NewFieldEffect(FieldFire, Vec2{}, 50, 5, 3, 7, 1)

	if fe.AffectsTeam(2, 7) {
		t.Fatalf("expected the owner's own actor id to never be affected")
	}
}

func TestFieldEffectAffectsTeamFFAHitsEveryoneButOwner(t *testing.T) {
	t.Parallel()

	fe := NewFieldEffect(FieldFire, Vec2{}, 50, 5, 3, 7, 0)

	if !fe.AffectsTeam(1, 99) {
		t.Fatalf("expected an FFA (team 0) effect to hit any non-owner actor")
	}
	if !fe.AffectsTeam(1, 1) {
		t.Fatalf("expected an FFA effect to hit actors on the owner's own team too")
	}
}

func TestFieldEffectAffectsTeamSpareFriendlyTeam(t *testing.T) {
	t.Parallel()

	fe := NewFieldEffect(FieldFire, Vec2{}, 50, 5, 3, 7, 1)

	if fe.AffectsTeam(1, 99) {
		t.Fatalf("expected a team-owned effect to spare the owner's own team")
	}
	if !fe.AffectsTeam(2, 99) {
		t.Fatalf("expected a team-owned effect to hit an enemy team")
	}
}

func TestFieldEffectContainsChecksRadius(t *testing.T) {
	t.Parallel()

	fe := NewFieldEffect(FieldFire, Vec2{X: 0, Y: 0}, 10, 5, 3, 1, 1)

	if !fe.Contains(Vec2{X: 5, Y: 0}) {
		t.Fatalf("expected a point within the radius to be contained")
	}
	if fe.Contains(Vec2{X: 50, Y: 0}) {
		t.Fatalf("expected a point outside the radius not to be contained")
	}
}

func TestFieldEffectTickExpiresAfterDuration(t *testing.T) {
	t.Parallel()

	fe := NewFieldEffect(FieldFire, Vec2{}, 10, 5, 2, 1, 1)

	if fe.Tick(1) {
		t.Fatalf("expected no expiry before the duration elapses")
	}
	if !fe.Tick(1) {
		t.Fatalf("expected expiry once the duration elapses")
	}
}

func TestFieldEffectShouldApplyOnceFiresExactlyOnceForInstantaneous(t *testing.T) {
	t.Parallel()

	fe := NewFieldEffect(FieldExplosion, Vec2{}, 10, 20, 0, 1, 1)

	if !fe.ShouldApplyOnce() {
		t.Fatalf("expected the first call to fire the one-shot application")
	}
	if fe.ShouldApplyOnce() {
		t.Fatalf("expected subsequent calls never to fire again")
	}
}

func TestFieldEffectShouldApplyOnceIsAlwaysFalseForContinuous(t *testing.T) {
	t.Parallel()

	fe := NewFieldEffect(FieldFire, Vec2{}, 10, 5, 3, 1, 1)

	if fe.ShouldApplyOnce() {
		t.Fatalf("expected a continuous effect never to use the one-shot path")
	}
}
