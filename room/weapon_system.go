package room

import (
	"math"
	"math/rand"
	"time"

	"arena-server/logging"
)

// WeaponSystem gates fire-rate/ammo/reload and spawns projectiles or beams
// from a player's current weapon instance.
type WeaponSystem struct {
	rng *rand.Rand

	pub  logging.Publisher
	tick uint64
}

// NewWeaponSystem constructs a weapon system seeded from the room's
// deterministic RNG hierarchy.
func NewWeaponSystem(rng *rand.Rand) *WeaponSystem {
	return &WeaponSystem{rng: rng}
}

// SetPublisher wires the telemetry sink used to report fired shots.
func (ws *WeaponSystem) SetPublisher(pub logging.Publisher) {
	ws.pub = pub
}

// SetTick records the current simulation tick for telemetry timestamps.
func (ws *WeaponSystem) SetTick(tick uint64) {
	ws.tick = tick
}

// CanFire reports whether the player's weapon is neither reloading nor
// still within its fire-rate cooldown window, gated on wall-clock time.
func (ws *WeaponSystem) CanFire(p *Player, now time.Time) bool {
	if p.Weapon == nil || p.Weapon.Reloading || p.Weapon.CurrentAmmo <= 0 {
		return false
	}
	interval := time.Duration(float64(time.Second) / p.Weapon.Attributes.FireRate)
	return now.Sub(p.LastShotWallTime) >= interval
}

// Fire spawns the weapon's output (one or more projectiles, or a beam) from
// the player's current position/aim, consumes ammo, and records the shot
// time. Returns the spawned projectiles and beam (one of the two is always
// empty/nil depending on ordinance).
func (ws *WeaponSystem) Fire(p *Player, now time.Time) ([]*Projectile, *Beam) {
	if !ws.CanFire(p, now) {
		return nil, nil
	}
	w := p.Weapon
	spec := OrdinanceCatalog[w.Config.Ordinance]
	aim := p.AimUnitVector()
	origin := Vec2{X: p.X, Y: p.Y}

	p.LastShotWallTime = now

	if spec.IsBeam {
		w.CurrentAmmo--
		beam := NewBeam(p.ID, p.Team, origin, aim, w.Attributes, w.Config.Ordinance, w.Config.BulletEffects)
		publishWeaponFired(ws.pub, ws.tick, p, 1)
		return nil, beam
	}

	shots := w.Attributes.BulletsPerShot
	if shots > w.CurrentAmmo {
		shots = w.CurrentAmmo
	}
	w.CurrentAmmo -= shots

	projectiles := make([]*Projectile, 0, shots)
	for i := 0; i < shots; i++ {
		dir := jitterDirection(ws.rng, aim, w.Attributes.Accuracy)
		projectiles = append(projectiles, NewProjectile(p.ID, p.Team, origin.X, origin.Y, dir, w.Attributes, w.Config.Ordinance, w.Config.BulletEffects))
	}
	publishWeaponFired(ws.pub, ws.tick, p, shots)
	return projectiles, nil
}

// jitterDirection spreads a direction vector by an angle that shrinks
// linearly as accuracy rises (accuracy==1 means zero spread).
func jitterDirection(rng *rand.Rand, dir Vec2, accuracy float64) Vec2 {
	maxSpreadRadians := (1 - Clamp(accuracy, 0, 1)) * 0.35
	if maxSpreadRadians <= 0 || rng == nil {
		return dir
	}
	offset := (rng.Float64()*2 - 1) * maxSpreadRadians
	return dir.Rotated(offset)
}

// StartReload begins a reload if the weapon isn't already full or reloading.
func (ws *WeaponSystem) StartReload(p *Player) {
	w := p.Weapon
	if w == nil || w.Reloading || w.CurrentAmmo >= w.Attributes.MagazineSize {
		return
	}
	w.Reloading = true
	w.ReloadRemain = w.Attributes.ReloadTime
}

// TickReload advances a weapon's in-progress reload by dt and completes it
// once the timer elapses.
func (ws *WeaponSystem) TickReload(p *Player, dt float64) {
	w := p.Weapon
	if w == nil || !w.Reloading {
		return
	}
	w.ReloadRemain -= dt
	if w.ReloadRemain <= 0 {
		w.Reloading = false
		w.ReloadRemain = 0
		w.CurrentAmmo = w.Attributes.MagazineSize
	}
}

// AutoReload starts a reload automatically once the magazine empties,
// matching common arena-shooter conventions.
func (ws *WeaponSystem) AutoReload(p *Player) {
	if p.Weapon != nil && p.Weapon.CurrentAmmo <= 0 && !p.Weapon.Reloading {
		ws.StartReload(p)
	}
}

// homingSteerRadiansPerSecond bounds how fast a HOMING projectile can turn.
const homingSteerRadiansPerSecond = math.Pi

// SteerHoming rotates a homing projectile's velocity toward the nearest
// valid enemy target each tick.
func SteerHoming(pr *Projectile, target Vec2, dt float64) {
	current := Vec2{X: pr.VelX, Y: pr.VelY}
	speed := current.Length()
	if speed <= 1e-9 {
		return
	}
	desired := target.Sub(Vec2{X: pr.X, Y: pr.Y}).Normalized()
	currentAngle := current.Angle()
	desiredAngle := desired.Angle()
	delta := desiredAngle - currentAngle
	for delta > math.Pi {
		delta -= 2 * math.Pi
	}
	for delta < -math.Pi {
		delta += 2 * math.Pi
	}
	maxTurn := homingSteerRadiansPerSecond * dt
	if delta > maxTurn {
		delta = maxTurn
	} else if delta < -maxTurn {
		delta = -maxTurn
	}
	newDir := Vec2{X: 1, Y: 0}.Rotated(currentAngle + delta)
	pr.VelX, pr.VelY = newDir.X*speed, newDir.Y*speed
}
