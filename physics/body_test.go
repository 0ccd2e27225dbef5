package physics

import "testing"

func TestBodyTranslateIntegratesVelocity(t *testing.T) {
	t.Parallel()

	b := Body{Position: Vec2{X: 0, Y: 0}, Velocity: Vec2{X: 10, Y: -5}}
	b.Translate(0.5)

	if b.Position.X != 5 || b.Position.Y != -2.5 {
		t.Fatalf("expected position (5, -2.5), got %+v", b.Position)
	}
}

func TestApplyImpulseScalesByInverseMass(t *testing.T) {
	t.Parallel()

	light := Body{Mass: 1}
	light.ApplyImpulse(Vec2{X: 10, Y: 0})
	if light.Velocity.X != 10 {
		t.Fatalf("expected unit-mass body to take the full impulse, got %v", light.Velocity.X)
	}

	heavy := Body{Mass: 5}
	heavy.ApplyImpulse(Vec2{X: 10, Y: 0})
	if heavy.Velocity.X != 2 {
		t.Fatalf("expected 5x mass body to take 1/5th the velocity change, got %v", heavy.Velocity.X)
	}
}

func TestApplyImpulseIsNoOpOnImmovableBody(t *testing.T) {
	t.Parallel()

	b := Body{Mass: 0}
	b.ApplyImpulse(Vec2{X: 100, Y: 100})

	if b.Velocity.X != 0 || b.Velocity.Y != 0 {
		t.Fatalf("expected zero-mass body to ignore impulses, got %+v", b.Velocity)
	}
}
