package room

import (
	"math/rand"

	"arena-server/logging"
)

// eventDensitySpawnRange maps a density band to the inclusive [min,max]
// spawn-count range drawn uniformly per activation.
var eventDensitySpawnRange = map[EventDensity][2]int{
	DensitySparse: {1, 2},
	DensityDense:  {4, 7},
	DensityChoked: {8, 14},
}

// EventSystem schedules environmental hazards with a warning phase
// followed by an activation phase.
type EventSystem struct {
	cfg Config
	rng *rand.Rand

	nextEventIn float64
	pending     *scheduledEvent

	pub  logging.Publisher
	tick uint64
}

type scheduledEvent struct {
	eventType    EnvironmentalEventType
	warningLeft  float64
	activated    bool
}

// NewEventSystem constructs an event scheduler and draws the first
// interval.
func NewEventSystem(cfg Config, rng *rand.Rand) *EventSystem {
	es := &EventSystem{cfg: cfg, rng: rng}
	es.nextEventIn = es.drawInterval()
	return es
}

// SetPublisher wires the telemetry sink used to report activated hazards.
func (es *EventSystem) SetPublisher(pub logging.Publisher) {
	es.pub = pub
}

// SetTick records the current simulation tick for telemetry timestamps.
func (es *EventSystem) SetTick(tick uint64) {
	es.tick = tick
}

func (es *EventSystem) drawInterval() float64 {
	base := es.cfg.RandomEventInterval
	variance := es.cfg.RandomEventIntervalVariance
	if es.rng == nil || variance <= 0 {
		return base
	}
	spread := base * variance
	return base + (es.rng.Float64()*2-1)*spread
}

// Tick advances the scheduler by dt and applies the hazard's effects once its
// warning period has elapsed. Nothing is spawned during the warning period
// itself; no warning-zone field effect is created.
func (es *EventSystem) Tick(reg *EntityRegistry, bounds Bounds, dt float64) {
	if !es.cfg.EnableRandomEvents || len(es.cfg.EnabledEvents) == 0 {
		return
	}

	if es.pending != nil {
		es.pending.warningLeft -= dt
		if !es.pending.activated && es.pending.warningLeft <= 0 {
			es.activate(reg, bounds, es.pending.eventType)
			es.pending.activated = true
			es.pending = nil
			es.nextEventIn = es.drawInterval()
		}
		return
	}

	es.nextEventIn -= dt
	if es.nextEventIn <= 0 {
		eventType := es.pickEventType()
		es.pending = &scheduledEvent{eventType: eventType, warningLeft: es.cfg.EventWarningDuration}
	}
}

func (es *EventSystem) pickEventType() EnvironmentalEventType {
	if es.rng == nil || len(es.cfg.EnabledEvents) == 1 {
		return es.cfg.EnabledEvents[0]
	}
	return es.cfg.EnabledEvents[es.rng.Intn(len(es.cfg.EnabledEvents))]
}

func (es *EventSystem) activate(reg *EntityRegistry, bounds Bounds, eventType EnvironmentalEventType) {
	publishEnvironmentalEvent(es.pub, es.tick, eventType)
	switch eventType {
	case EventMeteorShower:
		es.spawnDensityHazard(reg, bounds, es.cfg.MeteorShowerDensity, func(pos Vec2) {
			reg.AddFieldEffect(NewFieldEffect(FieldExplosion, pos, es.cfg.MeteorRadius, es.cfg.MeteorDamage, 0, 0, 0))
		})
	case EventSupplyDrop:
		es.spawnDensityHazard(reg, bounds, es.cfg.SupplyDropDensity, func(pos Vec2) {
			reg.AddPowerUp(NewPowerUp(PowerUpAmmoRefill, pos.X, pos.Y, 0, 0, 1))
		})
	case EventVolcanicErupt:
		es.spawnDensityHazard(reg, bounds, es.cfg.VolcanicEruptionDensity, func(pos Vec2) {
			reg.AddFieldEffect(NewFieldEffect(FieldFire, pos, es.cfg.EruptionRadius, es.cfg.EruptionDamage, 6, 0, 0))
		})
	case EventIonStorm:
		es.spawnDensityHazard(reg, bounds, es.cfg.IonStormDensity, func(pos Vec2) {
			reg.AddFieldEffect(NewFieldEffect(FieldElectric, pos, 50, es.cfg.IonStormDamage, 8, 0, 0))
		})
	case EventEarthquake:
		for _, p := range reg.ActivePlayers() {
			p.Entity.ApplyDamage(es.cfg.EarthquakeDamage)
		}
	}
}

func (es *EventSystem) spawnDensityHazard(reg *EntityRegistry, bounds Bounds, density EventDensity, spawn func(pos Vec2)) {
	lo, hi := 1, 1
	if r, ok := eventDensitySpawnRange[density]; ok {
		lo, hi = r[0], r[1]
	} else if density == DensityRandom && es.rng != nil {
		lo, hi = 1, 10
	}
	count := lo
	if hi > lo {
		if es.rng != nil {
			count = lo + es.rng.Intn(hi-lo+1)
		} else {
			count = hi
		}
	}
	for i := 0; i < count; i++ {
		spawn(es.randomPoint(bounds))
	}
}

func (es *EventSystem) randomPoint(bounds Bounds) Vec2 {
	if es.rng == nil {
		return Vec2{X: bounds.Width / 2, Y: bounds.Height / 2}
	}
	return Vec2{X: es.rng.Float64() * bounds.Width, Y: es.rng.Float64() * bounds.Height}
}

// PendingWarning reports the event type currently in its warning phase, if
// any, for snapshot broadcast to clients.
func (es *EventSystem) PendingWarning() (EnvironmentalEventType, bool) {
	if es.pending == nil || es.pending.activated {
		return "", false
	}
	return es.pending.eventType, true
}
