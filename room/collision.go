package room

import "arena-server/logging"

// CollisionHandler resolves one overlapping pair of entities, given their
// kind-correct lookups, and reports whether the physics world should skip
// its own separation response (sensors never push bodies apart). It
// receives the owning dispatcher so handlers needing cross-cutting access
// (scoring, telemetry) can reach it without a package-level singleton.
type CollisionHandler func(d *CollisionDispatcher, reg *EntityRegistry, idA, idB uint32) (skipResolution bool)

// pairKey orders two kinds into a single lookup key; the dispatcher is
// populated for both orderings so handler authors never worry about which
// side of a manifold carries which kind.
type pairKey struct {
	A, B EntityKind
}

// CollisionDispatcher is the static (KindA,KindB) -> handler table driving
// physics manifold resolution: a lookup, not virtual dispatch.
type CollisionDispatcher struct {
	handlers map[pairKey]CollisionHandler

	rules *RuleSystem
	pub   logging.Publisher
	tick  uint64
}

// NewCollisionDispatcher builds the dispatcher with every handled pair
// wired in both orderings.
func NewCollisionDispatcher() *CollisionDispatcher {
	d := &CollisionDispatcher{handlers: make(map[pairKey]CollisionHandler)}

	d.register(KindPlayer, KindProjectile, handlePlayerProjectile)
	d.register(KindProjectile, KindObstacle, handleProjectileObstacle)
	d.register(KindPlayer, KindKothZone, handlePlayerKothZoneSensor)
	d.register(KindPlayer, KindWorkshop, handlePlayerWorkshopSensor)
	d.register(KindPlayer, KindPowerUp, handlePlayerPowerUpSensor)
	d.register(KindPlayer, KindFlag, handlePlayerFlagSensor)
	d.register(KindProjectile, KindHeadquarter, handleProjectileHeadquarters)
	d.register(KindPlayer, KindNet, handlePlayerNet)
	d.register(KindPlayer, KindTeleportPad, handlePlayerTeleportPad)
	d.register(KindPlayer, KindFieldEffect, handlePlayerFieldEffectSensor)
	d.register(KindPlayer, KindTurret, handlePlayerTurretBlock)
	d.register(KindPlayer, KindObstacle, handlePlayerObstacleBlock)
	d.register(KindPlayer, KindPlayer, handlePlayerPlayerBlock)

	return d
}

// SetRules wires the rule system the dispatcher credits team scores and
// victory state (e.g. headquarters destruction) against.
func (d *CollisionDispatcher) SetRules(rules *RuleSystem) {
	d.rules = rules
}

// SetPublisher wires the telemetry sink used to report notable collisions.
func (d *CollisionDispatcher) SetPublisher(pub logging.Publisher) {
	d.pub = pub
}

// SetTick records the current simulation tick for telemetry timestamps.
func (d *CollisionDispatcher) SetTick(tick uint64) {
	d.tick = tick
}

func (d *CollisionDispatcher) register(a, b EntityKind, h CollisionHandler) {
	d.handlers[pairKey{a, b}] = h
	if a != b {
		d.handlers[pairKey{b, a}] = swapped(h)
	}
}

// swapped flips the argument order so a single handler body can be
// authored assuming a fixed (first kind, second kind) order regardless of
// which physics body arrived as A or B in the manifold.
func swapped(h CollisionHandler) CollisionHandler {
	return func(d *CollisionDispatcher, reg *EntityRegistry, idA, idB uint32) bool {
		return h(d, reg, idB, idA)
	}
}

// Dispatch looks up and invokes the handler for the given pair of entity
// ids. An id missing from the registry means never skip resolution: the
// pair is treated as a plain physical block. An unregistered kind pair gets
// the same default. Inactive entities are left to each handler: the sensor
// handlers (KOTH zone, workshop, power-up, flag, teleport pad, field effect)
// report skip for them, the other handlers report no skip.
func (d *CollisionDispatcher) Dispatch(reg *EntityRegistry, idA, idB uint32) (skipResolution bool) {
	kindA, okA := reg.KindOf(idA)
	kindB, okB := reg.KindOf(idB)
	if !okA || !okB {
		return false
	}
	handler, ok := d.handlers[pairKey{kindA, kindB}]
	if !ok {
		return false
	}
	return handler(d, reg, idA, idB)
}

func handlePlayerProjectile(d *CollisionDispatcher, reg *EntityRegistry, playerID, projectileID uint32) bool {
	p := reg.Players[playerID]
	pr := reg.Projectiles[projectileID]
	if p == nil || pr == nil || !p.Active || !pr.Active {
		return false
	}
	if pr.OwnerID == p.ID {
		return true // skip resolution: never collide with your own shot
	}
	if pr.OwnerTeam != 0 && pr.OwnerTeam == p.Team {
		return true // friendly fire filtered at the collision site too
	}
	p.Entity.ApplyDamage(pr.Damage)
	pr.Entity.Deactivate()
	return true // projectiles never physically bounce off players
}

func handleProjectileObstacle(d *CollisionDispatcher, reg *EntityRegistry, projectileID, obstacleID uint32) bool {
	pr := reg.Projectiles[projectileID]
	obs := reg.Obstacles[obstacleID]
	if pr == nil || obs == nil || !pr.Active || !obs.Active {
		return false
	}
	if pr.HasEffect(EffectPiercing) {
		return true // piercing rounds pass through obstacles untouched
	}
	if pr.HasEffect(EffectBouncy) {
		reflectOffObstacle(pr, obs)
		return true
	}
	pr.Entity.Deactivate()
	return true
}

// reflectOffObstacle mirrors the projectile's velocity across the nearer
// obstacle edge normal, used by the BOUNCY bullet effect.
func reflectOffObstacle(pr *Projectile, obs *Obstacle) {
	box := obs.AABB()
	center := Vec2{X: box.MinX + (box.MaxX-box.MinX)/2, Y: box.MinY + (box.MaxY-box.MinY)/2}
	pos := Vec2{X: pr.X, Y: pr.Y}
	normal := pos.Sub(center).Normalized()
	vel := Vec2{X: pr.VelX, Y: pr.VelY}
	reflected := vel.Sub(normal.Scale(2 * vel.Dot(normal)))
	pr.VelX, pr.VelY = reflected.X, reflected.Y
}

func handlePlayerKothZoneSensor(d *CollisionDispatcher, reg *EntityRegistry, playerID, zoneID uint32) bool {
	p := reg.Players[playerID]
	z := reg.KothZones[zoneID]
	if p == nil || z == nil || !p.Active || p.IsSpectator {
		return true
	}
	z.PlayersInZone[p.ID] = p.Team
	return true // zones are sensors: never block movement
}

func handlePlayerWorkshopSensor(d *CollisionDispatcher, reg *EntityRegistry, playerID, workshopID uint32) bool {
	p := reg.Players[playerID]
	w := reg.Workshops[workshopID]
	if p == nil || w == nil || !p.Active {
		return true
	}
	if w.AdvanceMember(p.ID, 1.0/60) {
		spawnWorkshopReward(reg, w)
	}
	return true
}

func spawnWorkshopReward(reg *EntityRegistry, w *Workshop) {
	pu := NewPowerUp(PowerUpDamageBoost, w.X, w.Y, w.ID, 15, 1.5)
	reg.AddPowerUp(pu)
}

func handlePlayerPowerUpSensor(d *CollisionDispatcher, reg *EntityRegistry, playerID, powerUpID uint32) bool {
	p := reg.Players[playerID]
	pu := reg.PowerUps[powerUpID]
	if p == nil || pu == nil || !p.Active || !pu.Active {
		return true
	}
	applyPowerUp(p, pu)
	pu.Entity.Deactivate()
	return true
}

func applyPowerUp(p *Player, pu *PowerUp) {
	switch pu.Type {
	case PowerUpSpeedBoost:
		delete(p.StatusEffects, StatusSlowed) // clears any active slow
		p.MaxSpeed *= pu.Strength
	case PowerUpShield:
		p.Entity.Heal(pu.Strength)
	case PowerUpAmmoRefill:
		if p.Weapon != nil {
			p.Weapon.CurrentAmmo = p.Weapon.Attributes.MagazineSize
		}
	}
}

func handlePlayerFlagSensor(d *CollisionDispatcher, reg *EntityRegistry, playerID, flagID uint32) bool {
	p := reg.Players[playerID]
	f := reg.Flags[flagID]
	if p == nil || f == nil || !p.Active {
		return true
	}
	switch f.State {
	case FlagAtHome, FlagDropped:
		if f.OwnerTeam != p.Team {
			f.Pickup(p.ID)
		}
	case FlagCarried:
		if f.CarriedBy == p.ID && p.Team != f.OwnerTeam {
			if isAtHomeFlagPresent(reg, p.Team) {
				f.ReturnHome()
				p.Captures++
			}
		}
	}
	return true
}

func isAtHomeFlagPresent(reg *EntityRegistry, team int) bool {
	for _, f := range reg.Flags {
		if f.OwnerTeam == team && f.State == FlagAtHome {
			return true
		}
	}
	return false
}

func handleProjectileHeadquarters(d *CollisionDispatcher, reg *EntityRegistry, projectileID, hqID uint32) bool {
	pr := reg.Projectiles[projectileID]
	hq := reg.Headquarters[hqID]
	if pr == nil || hq == nil || !pr.Active || !hq.Active {
		return false
	}
	if pr.OwnerTeam == hq.Team {
		return true // friendly fire never damages your own HQ
	}
	hq.TotalDamageTaken += pr.Damage
	destroyed := hq.Entity.ApplyDamage(pr.Damage)
	pr.Entity.Deactivate()

	if d.rules != nil {
		points := d.rules.cfg.HeadquartersPointsPerDamage * pr.Damage
		if destroyed {
			points += d.rules.cfg.HeadquartersDestructionBonus
			if d.rules.cfg.HeadquartersDestructionEndsGame {
				d.rules.WinningTeam = pr.OwnerTeam
			}
		}
		d.rules.addTeamScore(pr.OwnerTeam, points)
		publishHeadquartersDamage(d.pub, d.tick, pr.OwnerTeam, hq.ID, pr.Damage, points, destroyed)
	}
	return true
}

func handlePlayerNet(d *CollisionDispatcher, reg *EntityRegistry, playerID, netID uint32) bool {
	p := reg.Players[playerID]
	n := reg.Nets[netID]
	if p == nil || n == nil || !p.Active || !n.Active || n.Hit {
		return false
	}
	if n.OwnerID == p.ID || (n.OwnerTeam != 0 && n.OwnerTeam == p.Team) {
		return true
	}
	p.ApplyStatus(StatusSlowed, n.Duration)
	push := Vec2{X: n.VelX, Y: n.VelY}.Normalized().Scale(n.Pushback)
	p.X += push.X
	p.Y += push.Y
	n.Hit = true
	n.Entity.Deactivate()
	return true
}

func handlePlayerTeleportPad(d *CollisionDispatcher, reg *EntityRegistry, playerID, padID uint32) bool {
	p := reg.Players[playerID]
	pad := reg.TeleportPads[padID]
	if p == nil || pad == nil || !p.Active || !pad.Linked() {
		return true
	}
	if remain, cooling := pad.RecentlyTeleported[p.ID]; cooling && remain > 0 {
		return true
	}
	partner, ok := reg.TeleportPads[pad.PartnerID]
	if !ok || !partner.Active {
		return true
	}
	p.X, p.Y = partner.X, partner.Y
	pad.RecentlyTeleported[p.ID] = pad.Cooldown
	partner.RecentlyTeleported[p.ID] = pad.Cooldown
	return true
}

func handlePlayerFieldEffectSensor(d *CollisionDispatcher, reg *EntityRegistry, playerID, effectID uint32) bool {
	p := reg.Players[playerID]
	fe := reg.FieldEffects[effectID]
	if p == nil || fe == nil || !p.Active || !fe.Active {
		return true
	}
	if !fe.AffectsTeam(p.Team, p.ID) {
		return true
	}
	if fe.Type.IsContinuous() || fe.ShouldApplyOnce() {
		p.Entity.ApplyDamage(fe.DamagePerTick)
	}
	switch fe.Type {
	case FieldFire:
		p.ApplyStatus(StatusBurning, 1)
	case FieldFreeze:
		p.ApplyStatus(StatusFrozen, 1)
	case FieldPoison:
		p.ApplyStatus(StatusPoison, 1)
	}
	return true
}

func handlePlayerTurretBlock(d *CollisionDispatcher, reg *EntityRegistry, playerID, turretID uint32) bool {
	t := reg.Turrets[turretID]
	if t == nil || !t.Active {
		return false
	}
	return false // turrets physically block; resolution proceeds normally
}

func handlePlayerObstacleBlock(d *CollisionDispatcher, reg *EntityRegistry, playerID, obstacleID uint32) bool {
	obs := reg.Obstacles[obstacleID]
	if obs == nil || !obs.Active {
		return false
	}
	return false
}

func handlePlayerPlayerBlock(d *CollisionDispatcher, reg *EntityRegistry, idA, idB uint32) bool {
	a := reg.Players[idA]
	b := reg.Players[idB]
	if a == nil || b == nil || !a.Active || !b.Active {
		return false
	}
	return false
}
