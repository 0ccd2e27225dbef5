package room

import (
	"context"
	"strconv"

	"arena-server/logging"
)

// Category labels used when publishing simulation telemetry. Subsystems
// each own one: weapon fire, rule/round bookkeeping, collision resolution,
// and scheduled environmental events.
const (
	categoryWeapon    logging.Category = "weapon"
	categoryRule      logging.Category = "rule"
	categoryCollision logging.Category = "collision"
	categoryEvent     logging.Category = "event"
)

func entityRef(kind string, id uint32) logging.EntityRef {
	return logging.EntityRef{ID: strconv.FormatUint(uint64(id), 10), Kind: logging.EntityKind(kind)}
}

// publishWeaponFired reports a completed trigger pull: the ordinance, how
// many projectiles/beams it produced, and the ammo left afterward.
func publishWeaponFired(pub logging.Publisher, tick uint64, p *Player, shots int) {
	if pub == nil {
		return
	}
	pub.Publish(context.Background(), logging.Event{
		Type:     "weapon.fire",
		Tick:     tick,
		Actor:    entityRef("player", p.ID),
		Severity: logging.SeverityInfo,
		Category: categoryWeapon,
		Payload: map[string]any{
			"ordinance":     string(p.Weapon.Config.Ordinance),
			"shots":         shots,
			"ammoRemaining": p.Weapon.CurrentAmmo,
		},
	})
}

// publishRoundPhase reports a round phase transition, carrying the decided
// winner (0 for none, e.g. a draw or a non-terminal transition).
func publishRoundPhase(pub logging.Publisher, tick uint64, phase RoundPhase, winningTeam int) {
	if pub == nil {
		return
	}
	pub.Publish(context.Background(), logging.Event{
		Type:     "rule.phase",
		Tick:     tick,
		Severity: logging.SeverityInfo,
		Category: categoryRule,
		Payload:  map[string]any{"phase": string(phase), "winningTeam": winningTeam},
	})
}

// publishKill reports a recorded kill; killer is the zero EntityRef when the
// death had no credited killer.
func publishKill(pub logging.Publisher, tick uint64, killer, victim *Player) {
	if pub == nil {
		return
	}
	evt := logging.Event{
		Type:     "rule.kill",
		Tick:     tick,
		Targets:  []logging.EntityRef{entityRef("player", victim.ID)},
		Severity: logging.SeverityInfo,
		Category: categoryRule,
	}
	if killer != nil {
		evt.Actor = entityRef("player", killer.ID)
	}
	pub.Publish(context.Background(), evt)
}

// publishHeadquartersDamage reports one damage instance landed against a
// headquarters, the points it awarded the attacking team, and whether it
// was the destroying blow.
func publishHeadquartersDamage(pub logging.Publisher, tick uint64, attackerTeam int, hqID uint32, damage, pointsAwarded float64, destroyed bool) {
	if pub == nil {
		return
	}
	pub.Publish(context.Background(), logging.Event{
		Type:     "collision.headquarters_damage",
		Tick:     tick,
		Targets:  []logging.EntityRef{entityRef("headquarters", hqID)},
		Severity: logging.SeverityInfo,
		Category: categoryCollision,
		Payload: map[string]any{
			"attackerTeam":  attackerTeam,
			"damage":        damage,
			"pointsAwarded": pointsAwarded,
			"destroyed":     destroyed,
		},
	})
}

// publishEnvironmentalEvent reports a scheduled hazard activating.
func publishEnvironmentalEvent(pub logging.Publisher, tick uint64, eventType EnvironmentalEventType) {
	if pub == nil {
		return
	}
	pub.Publish(context.Background(), logging.Event{
		Type:     "event.environmental",
		Tick:     tick,
		Severity: logging.SeverityInfo,
		Category: categoryEvent,
		Payload:  map[string]any{"eventType": string(eventType)},
	})
}
