// Package room implements the arena-combat simulation core: entities,
// weapons, collision, rules, environmental events and the fixed-timestep
// tick pipeline that drives them all.
package room

import (
	"math/rand"
	"strconv"
	"time"

	"arena-server/internal/sim"
	"arena-server/internal/telemetry"
	"arena-server/logging"
)

// Room owns one live arena: its entity registry and every per-tick
// subsystem; the physics world used for blocking is rebuilt each tick. It implements sim.EngineCore so internal/sim.Loop can
// drive it without depending on the room package.
type Room struct {
	ID  string
	cfg Config

	registry *EntityRegistry

	collision *CollisionDispatcher
	weapons   *WeaponSystem
	bullets   *BulletEffectProcessor
	utilities *UtilitySystem
	rules     *RuleSystem
	events    *EventSystem
	bus       *EventBus

	rootRNG *rand.Rand

	tick uint64
	now  time.Time

	logger  telemetry.Logger
	metrics telemetry.Metrics
	clock   logging.Clock
	publisher logging.Publisher
}

// NewRoom constructs a room from a normalized config and dependency bundle.
func NewRoom(id string, cfg Config, logger telemetry.Logger, metrics telemetry.Metrics, clock logging.Clock, publisher logging.Publisher) *Room {
	cfg = cfg.Normalized()
	root := NewDeterministicRNG(cfg.Seed)

	r := &Room{
		ID:        id,
		cfg:       cfg,
		registry:  NewEntityRegistry(),
		collision: NewCollisionDispatcher(),
		weapons:   NewWeaponSystem(SubsystemRNG(cfg.Seed, "weapons")),
		bullets:   NewBulletEffectProcessor(),
		utilities: NewUtilitySystem(DefaultUtilityConfig(), Bounds{Width: cfg.Width, Height: cfg.Height}),
		rules:     NewRuleSystem(cfg, SubsystemRNG(cfg.Seed, "rules")),
		events:    NewEventSystem(cfg, SubsystemRNG(cfg.Seed, "events")),
		bus:       NewEventBus(),
		rootRNG:   root,
		logger:    logger,
		metrics:   metrics,
		clock:     clock,
		publisher: publisher,
	}

	r.collision.SetRules(r.rules)
	r.collision.SetPublisher(publisher)
	r.weapons.SetPublisher(publisher)
	r.rules.SetPublisher(publisher)
	r.events.SetPublisher(publisher)

	r.setupFixtures()
	return r
}

func (r *Room) setupFixtures() {
	if r.cfg.KothZones > 0 {
		spacing := r.cfg.Width / float64(r.cfg.KothZones+1)
		for i := 0; i < r.cfg.KothZones; i++ {
			zone := NewKothZone(i, spacing*float64(i+1), r.cfg.Height/2, 80)
			r.registry.AddKothZone(zone)
		}
	}
	if r.cfg.AddHeadquarters {
		r.registry.AddHeadquarters(NewHeadquarters(1, 60, r.cfg.Height/2, r.cfg.HeadquartersMaxHealth))
		r.registry.AddHeadquarters(NewHeadquarters(2, r.cfg.Width-60, r.cfg.Height/2, r.cfg.HeadquartersMaxHealth))
	}
	for i := 0; i < r.cfg.FlagsPerTeam; i++ {
		r.registry.AddFlag(NewFlag(1, Vec2{X: 40, Y: r.cfg.Height/2 + float64(i)*60}))
		r.registry.AddFlag(NewFlag(2, Vec2{X: r.cfg.Width - 40, Y: r.cfg.Height/2 + float64(i)*60}))
	}
}

// Deps implements sim.EngineCore.
func (r *Room) Deps() sim.Deps {
	return sim.Deps{Logger: r.logger, Metrics: r.metrics, Clock: r.clock}
}

// PlayerCount reports the number of active players currently in the room.
func (r *Room) PlayerCount() int {
	return r.registry.PlayerCount()
}

// Phase reports the room's current round phase.
func (r *Room) Phase() RoundPhase {
	return r.rules.Phase
}

// AddPlayer registers a new player with the given name/team and a starting
// weapon preset, returning the new player.
func (r *Room) AddPlayer(name string, team int, presetName string) *Player {
	preset, ok := PresetByName(presetName)
	if !ok {
		preset = Presets[0]
	}
	p := &Player{
		Entity:         Entity{ID: NextPlayerID(), Kind: KindPlayer, Health: 100, MaxHealth: 100, Active: true},
		Name:           name,
		Team:           team,
		Weapon:         NewWeaponInstance(preset),
		LivesRemaining: r.cfg.MaxLives,
		MaxSpeed:       220,
		StatusEffects:  make(map[StatusEffect]float64),
	}
	r.registry.AddPlayer(p)
	return p
}

// playerCmdID formats a player id as the ActorID string sim.Command uses.
func playerCmdID(id uint32) string {
	return strconv.FormatUint(uint64(id), 10)
}

// CommandActorID exposes playerCmdID to callers outside the package (the ws
// handler needs it to address Enqueue calls at a specific player).
func CommandActorID(id uint32) string {
	return playerCmdID(id)
}

func parsePlayerCmdID(actorID string) (uint32, bool) {
	v, err := strconv.ParseUint(actorID, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(v), true
}
