package room

import "math"

// Ordinance is the tagged enum driving projectile shape, minimum velocity
// before dismissal, and whether firing produces a projectile or a beam.
type Ordinance string

const (
	OrdinanceBullet     Ordinance = "BULLET"
	OrdinanceDart       Ordinance = "DART"
	OrdinanceRocket     Ordinance = "ROCKET"
	OrdinanceGrenade    Ordinance = "GRENADE"
	OrdinancePlasmaBolt Ordinance = "PLASMA_BOLT"
	OrdinanceCannonball Ordinance = "CANNONBALL"
	OrdinanceLaser      Ordinance = "LASER"
	OrdinanceRailgun    Ordinance = "RAILGUN"
	OrdinancePlasmaBeam Ordinance = "PLASMA_BEAM"
	OrdinanceHealBeam   Ordinance = "HEAL_BEAM"
)

// DamageApplication enumerates how an ordinance applies damage over its
// lifetime.
type DamageApplication string

const (
	DamageInstant DamageApplication = "instant"
	DamageDOT     DamageApplication = "dot"
	DamageBurst   DamageApplication = "burst"
)

// OrdinanceSpec describes the fixed, per-ordinance tuning values.
type OrdinanceSpec struct {
	Size             float64
	SpeedMultiplier  float64
	PointCost        int
	HasTrail         bool
	IsBeam           bool
	DamageApplication DamageApplication
	DamageInterval   float64
	BeamDuration     float64
	MinVelocity      float64
}

// OrdinanceCatalog is the fixed table of ordinance tuning values. Kinetic
// ordinance dismisses once its velocity decays below MinVelocity; beams
// never decay and instead persist for BeamDuration ticks.
var OrdinanceCatalog = map[Ordinance]OrdinanceSpec{
	OrdinanceBullet:     {Size: 4, SpeedMultiplier: 1.0, PointCost: 0, HasTrail: false, MinVelocity: 40},
	OrdinanceDart:       {Size: 3, SpeedMultiplier: 1.1, PointCost: 0, HasTrail: false, MinVelocity: 30},
	OrdinanceRocket:     {Size: 10, SpeedMultiplier: 0.6, PointCost: 8, HasTrail: true, MinVelocity: 25},
	OrdinanceGrenade:    {Size: 8, SpeedMultiplier: 0.5, PointCost: 6, HasTrail: false, MinVelocity: 15},
	OrdinancePlasmaBolt: {Size: 6, SpeedMultiplier: 0.9, PointCost: 5, HasTrail: true, MinVelocity: 35},
	OrdinanceCannonball: {Size: 14, SpeedMultiplier: 0.4, PointCost: 4, HasTrail: false, MinVelocity: 20},
	OrdinanceLaser:      {Size: 2, SpeedMultiplier: 0, PointCost: 6, IsBeam: true, DamageApplication: DamageInstant, BeamDuration: 6},
	OrdinanceRailgun:    {Size: 2, SpeedMultiplier: 0, PointCost: 10, IsBeam: true, DamageApplication: DamageInstant, BeamDuration: 3},
	OrdinancePlasmaBeam: {Size: 3, SpeedMultiplier: 0, PointCost: 8, IsBeam: true, DamageApplication: DamageDOT, BeamDuration: 30},
	OrdinanceHealBeam:   {Size: 3, SpeedMultiplier: 0, PointCost: 5, IsBeam: true, DamageApplication: DamageBurst, DamageInterval: 1, BeamDuration: 60},
}

// BulletEffect is the tagged enum of on-hit expansions. Only FRAGMENTING dominates: if present it replaces every other
// expansion.
type BulletEffect string

const (
	EffectExplosive   BulletEffect = "EXPLOSIVE"
	EffectIncendiary  BulletEffect = "INCENDIARY"
	EffectElectric    BulletEffect = "ELECTRIC"
	EffectFreezing    BulletEffect = "FREEZING"
	EffectPoison      BulletEffect = "POISON"
	EffectFragmenting BulletEffect = "FRAGMENTING"
	EffectPiercing    BulletEffect = "PIERCING"
	EffectHoming      BulletEffect = "HOMING"
	EffectBouncy      BulletEffect = "BOUNCY"
)

// bulletEffectExpansionOrder is the priority order used when more than one
// on-hit expansion effect is present and FRAGMENTING is absent.
var bulletEffectExpansionOrder = []BulletEffect{
	EffectExplosive, EffectIncendiary, EffectElectric, EffectFreezing, EffectPoison,
}

// bulletEffectFieldType maps an expansion effect to the FieldEffect type it spawns.
var bulletEffectFieldType = map[BulletEffect]FieldEffectType{
	EffectExplosive:  FieldExplosion,
	EffectIncendiary: FieldFire,
	EffectElectric:   FieldElectric,
	EffectFreezing:   FieldFreeze,
	EffectPoison:     FieldPoison,
}

// bulletEffectPointCost is the point budget consumed by each bullet effect.
var bulletEffectPointCost = map[BulletEffect]int{
	EffectExplosive:   8,
	EffectIncendiary:  6,
	EffectElectric:    6,
	EffectFreezing:    5,
	EffectPoison:      5,
	EffectFragmenting: 10,
	EffectPiercing:    7,
	EffectHoming:      9,
	EffectBouncy:      4,
}

// ScaledRadiusAndDamage returns the radius and damage of the field effect an
// on-hit expansion spawns, as a function of the parent projectile's base
// damage and ordinance.
func (effect BulletEffect) ScaledRadiusAndDamage(baseDamage float64, ordinance Ordinance) (radius, damage float64) {
	spec := OrdinanceCatalog[ordinance]
	sizeFactor := spec.Size
	if sizeFactor <= 0 {
		sizeFactor = 4
	}
	switch effect {
	case EffectExplosive:
		return 20 + sizeFactor*2, baseDamage * 0.8
	case EffectIncendiary:
		return 16 + sizeFactor, baseDamage * 0.3
	case EffectElectric:
		return 24 + sizeFactor, baseDamage * 0.4
	case EffectFreezing:
		return 18 + sizeFactor, baseDamage * 0.2
	case EffectPoison:
		return 14 + sizeFactor, baseDamage * 0.25
	default:
		return 0, 0
	}
}

// DefaultDuration returns the default lifetime, in seconds, of the field
// effect spawned by this bullet effect.
func (effect BulletEffect) DefaultDuration() float64 {
	switch effect {
	case EffectExplosive:
		return 0 // instantaneous
	case EffectIncendiary:
		return 5
	case EffectElectric:
		return 3
	case EffectFreezing:
		return 4
	case EffectPoison:
		return 6
	default:
		return 0
	}
}

// WeaponConfig is a point-allocation describing a weapon build; the sum of
// all point fields must not exceed 100.
type WeaponConfig struct {
	Name               string         `json:"name"`
	DamagePoints       int            `json:"damagePoints"`
	FireRatePoints     int            `json:"fireRatePoints"`
	RangePoints        int            `json:"rangePoints"`
	AccuracyPoints     int            `json:"accuracyPoints"`
	MagazinePoints     int            `json:"magazinePoints"`
	ReloadPoints       int            `json:"reloadPoints"`
	ProjectileSpeedPts int            `json:"projectileSpeedPoints"`
	BulletsPerShotPts  int            `json:"bulletsPerShotPoints"`
	Ordinance          Ordinance      `json:"ordinance"`
	BulletEffects      []BulletEffect `json:"bulletEffects"`
}

// TotalPoints sums the attribute points plus every bullet effect's and the
// ordinance's point cost.
func (wc WeaponConfig) TotalPoints() int {
	total := wc.DamagePoints + wc.FireRatePoints + wc.RangePoints + wc.AccuracyPoints +
		wc.MagazinePoints + wc.ReloadPoints + wc.ProjectileSpeedPts + wc.BulletsPerShotPts
	total += OrdinanceCatalog[wc.Ordinance].PointCost
	for _, effect := range wc.BulletEffects {
		total += bulletEffectPointCost[effect]
	}
	return total
}

// Valid reports whether the configuration's total point cost is within the
// sum <= 100 budget.
func (wc WeaponConfig) Valid() bool {
	return wc.TotalPoints() <= 100
}

// WeaponAttributes are the derived, continuous stats produced by the
// attribute curves.
type WeaponAttributes struct {
	Damage          float64
	FireRate        float64 // shots/s
	Range           float64
	Accuracy        float64
	MagazineSize    int
	ReloadTime      float64
	ProjectileSpeed float64
	BulletsPerShot  int
	LinearDamping   float64
}

// Derive applies the fixed attribute curves from the Glossary to the point
// allocation, then applies the ordinance's speed multiplier.
func (wc WeaponConfig) Derive() WeaponAttributes {
	p := func(points int) float64 { return float64(points) }

	accuracy := Clamp(1+0.02*p(wc.AccuracyPoints), 0, 1)
	magazine := 5 + wc.MagazinePoints
	if magazine < 1 {
		magazine = 1
	}
	bulletsPerShot := int(math.Round(1 + p(wc.BulletsPerShotPts)/3))
	if bulletsPerShot < 1 {
		bulletsPerShot = 1
	}
	reload := 4 - 0.14*p(wc.ReloadPoints)
	if reload < 0.5 {
		reload = 0.5
	}
	fireRate := 1 + 0.5*p(wc.FireRatePoints)
	if fireRate <= 0 {
		fireRate = 0.1
	}
	speedMul := OrdinanceCatalog[wc.Ordinance].SpeedMultiplier
	if speedMul == 0 {
		speedMul = 1
	}

	return WeaponAttributes{
		Damage:          10 + p(wc.DamagePoints),
		FireRate:        fireRate,
		Range:           1000 + 200*p(wc.RangePoints),
		Accuracy:        accuracy,
		MagazineSize:    magazine,
		ReloadTime:      reload,
		ProjectileSpeed: (200 + 50*p(wc.ProjectileSpeedPts)) * speedMul,
		BulletsPerShot:  bulletsPerShot,
		LinearDamping:   0.02,
	}
}

// IsHealing reports whether the weapon's ordinance is the heal-beam variant.
func (wc WeaponConfig) IsHealing() bool {
	return wc.Ordinance == OrdinanceHealBeam
}

// WeaponInstance is the live, per-player state for a weapon build: derived
// attributes plus mutable ammo/reload state.
type WeaponInstance struct {
	Config       WeaponConfig
	Attributes   WeaponAttributes
	CurrentAmmo  int
	Reloading    bool
	ReloadRemain float64
}

// NewWeaponInstance derives attributes from cfg and starts with a full magazine.
func NewWeaponInstance(cfg WeaponConfig) *WeaponInstance {
	attrs := cfg.Derive()
	return &WeaponInstance{
		Config:      cfg,
		Attributes:  attrs,
		CurrentAmmo: attrs.MagazineSize,
	}
}

// Presets is the fixed catalog of weapon presets with their point
// accounting, exposed through the REST weapon-customization endpoint and
// used by random weapon rotation.
var Presets = []WeaponConfig{
	{
		Name: "pistol", DamagePoints: 10, FireRatePoints: 6, RangePoints: 2,
		AccuracyPoints: 4, MagazinePoints: 10, ReloadPoints: 4, ProjectileSpeedPts: 4,
		BulletsPerShotPts: 0, Ordinance: OrdinanceBullet,
	},
	{
		Name: "rifle", DamagePoints: 14, FireRatePoints: 10, RangePoints: 8,
		AccuracyPoints: 6, MagazinePoints: 20, ReloadPoints: 6, ProjectileSpeedPts: 6,
		BulletsPerShotPts: 0, Ordinance: OrdinanceBullet,
	},
	{
		Name: "shotgun", DamagePoints: 8, FireRatePoints: 2, RangePoints: -4,
		AccuracyPoints: -10, MagazinePoints: 3, ReloadPoints: 2, ProjectileSpeedPts: 2,
		BulletsPerShotPts: 18, Ordinance: OrdinanceBullet,
	},
	{
		Name: "sniper", DamagePoints: 40, FireRatePoints: -1, RangePoints: 20,
		AccuracyPoints: 10, MagazinePoints: -3, ReloadPoints: -6, ProjectileSpeedPts: 10,
		BulletsPerShotPts: 0, Ordinance: OrdinanceDart, BulletEffects: []BulletEffect{EffectPiercing},
	},
	{
		Name: "rocket_launcher", DamagePoints: 30, FireRatePoints: -8, RangePoints: 4,
		AccuracyPoints: 0, MagazinePoints: -2, ReloadPoints: -4, ProjectileSpeedPts: -2,
		BulletsPerShotPts: 0, Ordinance: OrdinanceRocket,
		BulletEffects: []BulletEffect{EffectExplosive, EffectFragmenting},
	},
	{
		Name: "grenade_launcher", DamagePoints: 20, FireRatePoints: -6, RangePoints: -2,
		AccuracyPoints: -2, MagazinePoints: -1, ReloadPoints: -3, ProjectileSpeedPts: -4,
		BulletsPerShotPts: 0, Ordinance: OrdinanceGrenade, BulletEffects: []BulletEffect{EffectBouncy, EffectIncendiary},
	},
	{
		Name: "laser_rifle", DamagePoints: 16, FireRatePoints: 0, RangePoints: 6,
		AccuracyPoints: 0, MagazinePoints: 0, ReloadPoints: 0, ProjectileSpeedPts: 0,
		BulletsPerShotPts: 0, Ordinance: OrdinanceLaser, BulletEffects: []BulletEffect{EffectElectric},
	},
	{
		Name: "medic_beam", DamagePoints: -10, FireRatePoints: 0, RangePoints: 0,
		AccuracyPoints: 0, MagazinePoints: 0, ReloadPoints: 0, ProjectileSpeedPts: 0,
		BulletsPerShotPts: 0, Ordinance: OrdinanceHealBeam,
	},
}

// PresetByName looks up a preset weapon configuration by name.
func PresetByName(name string) (WeaponConfig, bool) {
	for _, preset := range Presets {
		if preset.Name == name {
			return preset, true
		}
	}
	return WeaponConfig{}, false
}
