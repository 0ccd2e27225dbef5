package room

import "time"

// UtilitySystem deploys turrets, barriers, mines, nets, teleport pads and
// healing zones from a player's utility slot.
type UtilitySystem struct {
	cfg   UtilityConfig
	world Bounds
}

// Bounds describes the placement extent utility deployment must stay
// within.
type Bounds struct {
	Width, Height float64
}

// NewUtilitySystem constructs a utility system with the given deployment
// tuning and arena bounds.
func NewUtilitySystem(cfg UtilityConfig, bounds Bounds) *UtilitySystem {
	return &UtilitySystem{cfg: cfg, world: bounds}
}

// CanDeploy reports whether the player's utility cooldown has elapsed.
func (us *UtilitySystem) CanDeploy(p *Player, now time.Time) bool {
	return now.Sub(p.LastUtilityUseWallTime).Seconds() >= p.UtilityCooldownRemain
}

// Deploy places the player's current utility slot item in front of them.
// On a placement failure (out of bounds, overlapping an existing opaque
// obstacle) the deploy aborts and the cooldown is refunded rather than
// consumed.
func (us *UtilitySystem) Deploy(reg *EntityRegistry, p *Player, now time.Time) error {
	if !us.CanDeploy(p, now) {
		return WrapRuleViolation("utility deploy", ErrRuleViolation)
	}
	aim := p.AimUnitVector()
	target := Vec2{X: p.X, Y: p.Y}.Add(aim.Scale(48))

	if !us.withinBounds(target) {
		return WrapPlacementFailed("utility deploy", ErrPlacementFailed)
	}
	if us.overlapsOpaqueObstacle(reg, target) {
		return WrapPlacementFailed("utility deploy", ErrPlacementFailed)
	}

	switch p.UtilitySlot {
	case UtilityTurret:
		expires := now.Add(timeDurationFromSeconds(us.cfg.TurretLifespan))
		t := NewTurret(p.ID, p.Team, target.X, target.Y, us.cfg, expires)
		reg.AddTurret(t, us.cfg.MaxTurretsPerOwner)
	case UtilityBarrier:
		o := NewPlayerBarrier(p.ID, target.X, target.Y, us.cfg.BarrierWidth, us.cfg.BarrierHeight, now, us.cfg.BarrierLifespan)
		o.MaxHealth = us.cfg.BarrierHealth
		o.Health = us.cfg.BarrierHealth
		reg.AddObstacleAsBarrier(o, us.cfg.MaxBarriersPerOwner)
	case UtilityMine:
		fe := NewFieldEffect(FieldExplosion, target, us.cfg.MineRadius, us.cfg.MineDamage, 0, p.ID, p.Team)
		reg.AddFieldEffect(fe)
	case UtilityNet:
		n := NewNetProjectile(p.ID, p.Team, target.X, target.Y, aim, us.cfg.NetSpeed, us.cfg)
		reg.AddNet(n)
	case UtilityTeleportPad:
		us.deployTeleportPad(reg, p, target)
	case UtilityHealZone:
		fe := NewFieldEffect(FieldWarningZone, target, 40, -15, 8, p.ID, p.Team)
		reg.AddFieldEffect(fe)
	}

	p.LastUtilityUseWallTime = now
	return nil
}

// deployTeleportPad places a new pad and links it to the player's most
// recent unlinked pad, if any, preserving the undirected-matching
// invariant.
func (us *UtilitySystem) deployTeleportPad(reg *EntityRegistry, p *Player, target Vec2) {
	pad := NewTeleportPad(p.ID, target.X, target.Y, us.cfg)
	var unlinkedOwned *TeleportPad
	for _, existing := range reg.TeleportPads {
		if existing.OwnerID == p.ID && existing.Active && !existing.Linked() {
			unlinkedOwned = existing
			break
		}
	}
	reg.AddTeleportPad(pad, us.cfg.MaxTeleportPadsPerOwner)
	if unlinkedOwned != nil {
		Link(unlinkedOwned, pad)
	}
}

func (us *UtilitySystem) withinBounds(p Vec2) bool {
	return p.X >= 0 && p.Y >= 0 && p.X <= us.world.Width && p.Y <= us.world.Height
}

func (us *UtilitySystem) overlapsOpaqueObstacle(reg *EntityRegistry, p Vec2) bool {
	for _, obs := range reg.Obstacles {
		if obs.Active && obs.Opaque && obs.CircleOverlap(p.X, p.Y, 16) {
			return true
		}
	}
	return false
}

func timeDurationFromSeconds(s float64) (d time.Duration) {
	return time.Duration(s * float64(time.Second))
}
