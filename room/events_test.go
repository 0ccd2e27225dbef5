package room

import "testing"

func TestEventSystemDisabledNeverSchedules(t *testing.T) {
	t.Parallel()

	cfg := Config{EnableRandomEvents: false, EnabledEvents: []EnvironmentalEventType{EventMeteorShower}}
	es := NewEventSystem(cfg, nil)
	reg := NewEntityRegistry()
	bounds := Bounds{Width: 1000, Height: 1000}

	for i := 0; i < 1000; i++ {
		es.Tick(reg, bounds, 1)
	}
	if len(reg.FieldEffects) != 0 {
		t.Fatalf("expected a disabled event system to never spawn hazards, got %d", len(reg.FieldEffects))
	}
}

func TestEventSystemActivatesAfterWarningPhase(t *testing.T) {
	t.Parallel()

	cfg := Config{
		EnableRandomEvents:   true,
		EnabledEvents:        []EnvironmentalEventType{EventMeteorShower},
		RandomEventInterval:  5,
		EventWarningDuration: 2,
		MeteorShowerDensity:  DensitySparse,
		MeteorRadius:         10,
		MeteorDamage:         20,
	}
	es := NewEventSystem(cfg, nil)
	reg := NewEntityRegistry()
	bounds := Bounds{Width: 1000, Height: 1000}

	es.Tick(reg, bounds, 5) // exhausts the interval, enters warning phase
	if _, pending := es.PendingWarning(); !pending {
		t.Fatalf("expected the scheduler to enter its warning phase")
	}
	if len(reg.FieldEffects) != 0 {
		t.Fatalf("expected no hazard during the warning phase, got %d", len(reg.FieldEffects))
	}

	es.Tick(reg, bounds, 2) // exhausts the warning, activates
	if len(reg.FieldEffects) == 0 {
		t.Fatalf("expected the hazard to spawn once the warning phase elapses")
	}
	if _, pending := es.PendingWarning(); pending {
		t.Fatalf("expected no pending warning once the event has activated")
	}
}

func TestEventSystemEarthquakeDamagesAllActivePlayers(t *testing.T) {
	t.Parallel()

	cfg := Config{
		EnableRandomEvents:   true,
		EnabledEvents:        []EnvironmentalEventType{EventEarthquake},
		RandomEventInterval:  1,
		EventWarningDuration: 0,
		EarthquakeDamage:     15,
	}
	es := NewEventSystem(cfg, nil)
	reg := NewEntityRegistry()
	bounds := Bounds{Width: 1000, Height: 1000}

	p := newTestPlayer(1, 1)
	p.Health = 100
	reg.AddPlayer(p)

	es.Tick(reg, bounds, 1)
	es.Tick(reg, bounds, 0)

	if p.Health != 85 {
		t.Fatalf("expected the earthquake to apply 15 damage to the active player, got health=%v", p.Health)
	}
}
