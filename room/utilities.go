package room

import "time"

// Turret is a deployed automated defense.
type Turret struct {
	Entity

	OwnerID   uint32
	OwnerTeam int
	X, Y      float64

	DetectionRange float64
	FireRate       float64
	Damage         float64
	Target         uint32 // 0 = none
	Expires        time.Time

	lastShotAt time.Time
}

// NewTurret constructs a deployed turret owned by ownerID.
func NewTurret(ownerID uint32, ownerTeam int, x, y float64, cfg UtilityConfig, expiresAt time.Time) *Turret {
	return &Turret{
		Entity:         Entity{ID: NextID(), Kind: KindTurret, Health: cfg.Health, MaxHealth: cfg.Health, Active: true},
		OwnerID:        ownerID,
		OwnerTeam:      ownerTeam,
		X:              x,
		Y:              y,
		DetectionRange: cfg.TurretDetectionRange,
		FireRate:       cfg.TurretFireRate,
		Damage:         cfg.TurretDamage,
		Expires:        expiresAt,
	}
}

// CanFire reports whether enough wall-clock time has elapsed since the
// turret's last shot to fire again.
func (t *Turret) CanFire(now time.Time) bool {
	if t.FireRate <= 0 {
		return false
	}
	interval := time.Duration(1000/t.FireRate) * time.Millisecond
	return now.Sub(t.lastShotAt) >= interval
}

// RecordShot stamps the turret's last-fired wall-clock time.
func (t *Turret) RecordShot(now time.Time) {
	t.lastShotAt = now
}

// TeleportPad is a deployed teleporter; pads form an undirected matching:
// a pad's partner always links back to it.
type TeleportPad struct {
	Entity

	OwnerID         uint32
	X, Y            float64
	ActivationRadius float64
	Cooldown        float64
	PartnerID       uint32 // 0 = unlinked
	Charging        bool
	chargeRemain    float64
	RecentlyTeleported map[uint32]float64 // actor id -> cooldown remaining
}

// NewTeleportPad constructs an unlinked teleport pad.
func NewTeleportPad(ownerID uint32, x, y float64, cfg UtilityConfig) *TeleportPad {
	return &TeleportPad{
		Entity:              Entity{ID: NextID(), Kind: KindTeleportPad, Health: HealthInfinite, Active: true},
		OwnerID:             ownerID,
		X:                   x,
		Y:                   y,
		ActivationRadius:    cfg.TeleportPadRadius,
		Cooldown:            cfg.TeleportPadCooldown,
		RecentlyTeleported:  make(map[uint32]float64),
	}
}

// Link establishes the undirected partner relationship between a and b.
func Link(a, b *TeleportPad) {
	if a == nil || b == nil {
		return
	}
	a.PartnerID = b.ID
	b.PartnerID = a.ID
}

// Linked reports whether the pad currently has a live partner.
func (p *TeleportPad) Linked() bool {
	return p.PartnerID != 0
}

// Tick decays per-player recently-teleported cooldowns.
func (p *TeleportPad) Tick(dt float64) {
	for id, remain := range p.RecentlyTeleported {
		remain -= dt
		if remain <= 0 {
			delete(p.RecentlyTeleported, id)
			continue
		}
		p.RecentlyTeleported[id] = remain
	}
}

// NetProjectile is a deployed slowing projectile utility.
type NetProjectile struct {
	Entity

	OwnerID        uint32
	OwnerTeam      int
	X, Y           float64
	VelX, VelY     float64
	SlowMultiplier float64
	Duration       float64
	Pushback       float64
	Hit            bool
}

// NewNetProjectile constructs a deployed net shot from the player's utility slot.
func NewNetProjectile(ownerID uint32, ownerTeam int, x, y float64, direction Vec2, speed float64, cfg UtilityConfig) *NetProjectile {
	dir := direction.Normalized()
	return &NetProjectile{
		Entity:         Entity{ID: NextID(), Kind: KindNet, Health: HealthInfinite, Active: true},
		OwnerID:        ownerID,
		OwnerTeam:      ownerTeam,
		X:              x,
		Y:              y,
		VelX:           dir.X * speed,
		VelY:           dir.Y * speed,
		SlowMultiplier: cfg.NetSlowMultiplier,
		Duration:       cfg.NetSlowDuration,
		Pushback:       cfg.NetPushbackForce,
	}
}

// Advance moves the net projectile by its velocity for dt seconds.
func (n *NetProjectile) Advance(dt float64) {
	n.X += n.VelX * dt
	n.Y += n.VelY * dt
}

// KothZoneState enumerates the zone's control state machine.
type KothZoneState string

const (
	KothNeutral    KothZoneState = "NEUTRAL"
	KothCapturing  KothZoneState = "CAPTURING"
	KothControlled KothZoneState = "CONTROLLED"
	KothContested  KothZoneState = "CONTESTED"
)

// KothZone is a circular region scoring the team that dominates it.
type KothZone struct {
	Entity

	ZoneIndex  int
	X, Y       float64
	Radius     float64

	ControllingTeam int // -1 = none
	State           KothZoneState
	CaptureProgress float64 // [0,1]

	PlayersInZone map[uint32]int // player id -> team
	TeamScores    map[int]float64
}

// NewKothZone constructs a neutral KOTH zone.
func NewKothZone(index int, x, y, radius float64) *KothZone {
	return &KothZone{
		Entity:          Entity{ID: NextID(), Kind: KindKothZone, Health: HealthInfinite, Active: true},
		ZoneIndex:       index,
		X:               x,
		Y:               y,
		Radius:          radius,
		ControllingTeam: -1,
		State:           KothNeutral,
		PlayersInZone:   make(map[uint32]int),
		TeamScores:      make(map[int]float64),
	}
}

// Reset sets the zone back to its neutral default, rebuilding membership
// from the caller-supplied current sensor contacts.
func (z *KothZone) Reset(currentMembers map[uint32]int) {
	z.ControllingTeam = -1
	z.State = KothNeutral
	z.CaptureProgress = 0
	z.PlayersInZone = make(map[uint32]int, len(currentMembers))
	for id, team := range currentMembers {
		z.PlayersInZone[id] = team
	}
}

// Contains reports whether p lies within the zone's radius.
func (z *KothZone) Contains(p Vec2) bool {
	return Vec2{X: z.X, Y: z.Y}.Distance(p) <= z.Radius
}

// Workshop is a fixed area that awards a power-up after players remain
// within it long enough.
type Workshop struct {
	Entity

	X, Y           float64
	CraftRadius    float64
	CraftTime      float64
	ProgressPerPlayer float64

	membersProgress map[uint32]float64
}

// NewWorkshop constructs a crafting workshop.
func NewWorkshop(x, y float64, cfg UtilityConfig) *Workshop {
	return &Workshop{
		Entity:            Entity{ID: NextID(), Kind: KindWorkshop, Health: HealthInfinite, Active: true},
		X:                 x,
		Y:                 y,
		CraftRadius:       cfg.WorkshopRadius,
		CraftTime:         cfg.WorkshopCraftTime,
		ProgressPerPlayer: 1,
		membersProgress:   make(map[uint32]float64),
	}
}

// AdvanceMember accumulates craft progress for a player present in the
// workshop this tick and reports whether they finished crafting.
func (w *Workshop) AdvanceMember(playerID uint32, dt float64) (done bool) {
	if w.membersProgress == nil {
		w.membersProgress = make(map[uint32]float64)
	}
	progress := w.membersProgress[playerID] + dt*w.ProgressPerPlayer
	if w.CraftTime > 0 && progress >= w.CraftTime {
		delete(w.membersProgress, playerID)
		return true
	}
	w.membersProgress[playerID] = progress
	return false
}

// ClearMember removes a player's in-progress craft state (they left the zone).
func (w *Workshop) ClearMember(playerID uint32) {
	delete(w.membersProgress, playerID)
}

// PowerUpType enumerates the kinds of power-up a workshop or supply drop
// event can spawn.
type PowerUpType string

const (
	PowerUpDamageBoost PowerUpType = "damage_boost"
	PowerUpSpeedBoost  PowerUpType = "speed_boost"
	PowerUpShield      PowerUpType = "shield"
	PowerUpAmmoRefill  PowerUpType = "ammo_refill"
)

// PowerUp is a collectible spawned by a workshop or supply-drop event.
type PowerUp struct {
	Entity

	Type       PowerUpType
	X, Y       float64
	WorkshopID uint32
	Duration   float64
	Strength   float64
}

// NewPowerUp constructs a power-up pickup.
func NewPowerUp(powerType PowerUpType, x, y float64, workshopID uint32, duration, strength float64) *PowerUp {
	return &PowerUp{
		Entity:     Entity{ID: NextID(), Kind: KindPowerUp, Health: HealthInfinite, Active: true},
		Type:       powerType,
		X:          x,
		Y:          y,
		WorkshopID: workshopID,
		Duration:   duration,
		Strength:   strength,
	}
}

// Headquarters is a team-owned structure that can be damaged for
// objective scoring.
type Headquarters struct {
	Entity

	Team             int
	X, Y             float64
	TotalDamageTaken float64
}

// NewHeadquarters constructs a team headquarters with full health.
func NewHeadquarters(team int, x, y, maxHealth float64) *Headquarters {
	return &Headquarters{
		Entity:    Entity{ID: NextID(), Kind: KindHeadquarter, Health: maxHealth, MaxHealth: maxHealth, Active: true},
		Team:      team,
		X:         x,
		Y:         y,
	}
}

// FlagState enumerates a capture-the-flag flag's location state.
type FlagState string

const (
	FlagAtHome  FlagState = "AT_HOME"
	FlagCarried FlagState = "CARRIED"
	FlagDropped FlagState = "DROPPED"
)

// Flag is a capturable team objective.
type Flag struct {
	Entity

	OwnerTeam int
	Home      Vec2
	X, Y      float64
	CarriedBy uint32 // 0 = none
	State     FlagState
}

// NewFlag constructs a flag at its home position.
func NewFlag(ownerTeam int, home Vec2) *Flag {
	return &Flag{
		Entity:    Entity{ID: NextID(), Kind: KindFlag, Health: HealthInfinite, Active: true},
		OwnerTeam: ownerTeam,
		Home:      home,
		X:         home.X,
		Y:         home.Y,
		State:     FlagAtHome,
	}
}

// ReturnHome resets the flag's position and state.
func (f *Flag) ReturnHome() {
	f.X, f.Y = f.Home.X, f.Home.Y
	f.CarriedBy = 0
	f.State = FlagAtHome
}

// Pickup marks the flag as carried by the given player.
func (f *Flag) Pickup(playerID uint32) {
	f.CarriedBy = playerID
	f.State = FlagCarried
}

// Drop marks the flag dropped at the given position.
func (f *Flag) Drop(x, y float64) {
	f.X, f.Y = x, y
	f.CarriedBy = 0
	f.State = FlagDropped
}

// UtilityConfig bundles the tunable constants for every deployable utility
// kind.
type UtilityConfig struct {
	Health float64

	TurretDetectionRange float64
	TurretFireRate       float64
	TurretDamage         float64
	TurretLifespan       float64

	TeleportPadRadius   float64
	TeleportPadCooldown float64

	NetSlowMultiplier float64
	NetSlowDuration   float64
	NetPushbackForce  float64
	NetSpeed          float64

	WorkshopRadius    float64
	WorkshopCraftTime float64

	BarrierWidth    float64
	BarrierHeight   float64
	BarrierLifespan float64
	BarrierHealth   float64

	MineRadius float64
	MineDamage float64

	// Per-owner deployed-instance caps: cap=4 for
	// turrets, barriers, teleport pads.
	MaxTurretsPerOwner      int
	MaxBarriersPerOwner     int
	MaxTeleportPadsPerOwner int
}

// DefaultUtilityConfig returns the default tuning for deployable utilities.
func DefaultUtilityConfig() UtilityConfig {
	return UtilityConfig{
		Health:               150,
		TurretDetectionRange: 300,
		TurretFireRate:       1.5,
		TurretDamage:         8,
		TurretLifespan:       30,
		TeleportPadRadius:    24,
		TeleportPadCooldown:  3,
		NetSlowMultiplier:    0.5,
		NetSlowDuration:      3,
		NetPushbackForce:     200,
		NetSpeed:             350,
		WorkshopRadius:       50,
		WorkshopCraftTime:    5,
		BarrierWidth:         40,
		BarrierHeight:        10,
		BarrierLifespan:      20,
		BarrierHealth:        100,
		MineRadius:           40,
		MineDamage:           35,
		MaxTurretsPerOwner:      4,
		MaxBarriersPerOwner:     4,
		MaxTeleportPadsPerOwner: 4,
	}
}
