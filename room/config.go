package room

import "strings"

// ScoreStyle enumerates the team scoring formulas.
type ScoreStyle string

const (
	ScoreTotalKills ScoreStyle = "TOTAL_KILLS"
	ScoreObjective  ScoreStyle = "OBJECTIVE"
	ScoreTotal      ScoreStyle = "TOTAL"
	ScoreCaptures   ScoreStyle = "CAPTURES"
)

// VictoryCondition enumerates the predicates checked during PLAYING.
type VictoryCondition string

const (
	VictoryScoreLimit VictoryCondition = "SCORE_LIMIT"
	VictoryTimeLimit  VictoryCondition = "TIME_LIMIT"
	VictoryElim       VictoryCondition = "ELIMINATION"
	VictoryEndless    VictoryCondition = "ENDLESS"
)

// RespawnMode enumerates the respawn policies.
type RespawnMode string

const (
	RespawnInstant RespawnMode = "INSTANT"
	RespawnWave    RespawnMode = "WAVE"
	RespawnLimited RespawnMode = "LIMITED"
	RespawnElim    RespawnMode = "ELIMINATION"
)

// EventDensity enumerates the density bands used by the environmental
// event scheduler.
type EventDensity string

const (
	DensitySparse EventDensity = "SPARSE"
	DensityDense  EventDensity = "DENSE"
	DensityChoked EventDensity = "CHOKED"
	DensityRandom EventDensity = "RANDOM"
)

// EnvironmentalEventType enumerates the hazards the EventSystem can schedule.
type EnvironmentalEventType string

const (
	EventMeteorShower    EnvironmentalEventType = "METEOR_SHOWER"
	EventSupplyDrop      EnvironmentalEventType = "SUPPLY_DROP"
	EventVolcanicErupt   EnvironmentalEventType = "VOLCANIC_ERUPTION"
	EventIonStorm        EnvironmentalEventType = "ION_STORM"
	EventEarthquake      EnvironmentalEventType = "EARTHQUAKE"
)

// Config captures every room-level rule toggle recognized over the wire.
// All fields have defaults; unknown JSON fields are ignored by the decoder
// by construction.
type Config struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Seed   string  `json:"seed"`

	RoundDuration float64 `json:"roundDuration"`
	RestDuration  float64 `json:"restDuration"`
	FlagsPerTeam  int     `json:"flagsPerTeam"`

	ScoreStyle       ScoreStyle       `json:"scoreStyle"`
	VictoryCondition VictoryCondition `json:"victoryCondition"`
	ScoreLimit       float64          `json:"scoreLimit"`
	TimeLimit        float64          `json:"timeLimit"`
	SuddenDeath      bool             `json:"suddenDeath"`

	RespawnMode          RespawnMode `json:"respawnMode"`
	RespawnDelay         float64     `json:"respawnDelay"`
	MaxLives             int         `json:"maxLives"`
	WaveRespawnInterval  float64     `json:"waveRespawnInterval"`

	KothZones          int     `json:"kothZones"`
	KothPointsPerSecond float64 `json:"kothPointsPerSecond"`

	AddHeadquarters               bool    `json:"addHeadquarters"`
	HeadquartersMaxHealth         float64 `json:"headquartersMaxHealth"`
	HeadquartersPointsPerDamage   float64 `json:"headquartersPointsPerDamage"`
	HeadquartersDestructionBonus  float64 `json:"headquartersDestructionBonus"`
	HeadquartersDestructionEndsGame bool  `json:"headquartersDestructionEndsGame"`

	EnableVip     bool    `json:"enableVip"`
	VipKillPoints float64 `json:"vipKillPoints"`

	EnableRandomWeapons  bool    `json:"enableRandomWeapons"`
	RandomWeaponInterval float64 `json:"randomWeaponInterval"`

	EnableRandomEvents          bool                      `json:"enableRandomEvents"`
	RandomEventInterval         float64                   `json:"randomEventInterval"`
	RandomEventIntervalVariance float64                   `json:"randomEventIntervalVariance"`
	EventWarningDuration        float64                   `json:"eventWarningDuration"`
	EnabledEvents               []EnvironmentalEventType  `json:"enabledEvents"`
	MeteorShowerDensity         EventDensity              `json:"meteorShowerDensity"`
	MeteorDamage                float64                   `json:"meteorDamage"`
	MeteorRadius                float64                   `json:"meteorRadius"`
	SupplyDropDensity           EventDensity              `json:"supplyDropDensity"`
	VolcanicEruptionDensity     EventDensity              `json:"volcanicEruptionDensity"`
	EruptionDamage              float64                   `json:"eruptionDamage"`
	EruptionRadius              float64                   `json:"eruptionRadius"`
	IonStormDensity             EventDensity              `json:"ionStormDensity"`
	IonStormDamage              float64                   `json:"ionStormDamage"`
	EarthquakeDamage            float64                   `json:"earthquakeDamage"`
}

// DefaultConfig returns a Config suitable for an FFA deathmatch room with
// every optional subsystem disabled.
func DefaultConfig() Config {
	return Config{
		Width:  1600,
		Height: 1200,
		Seed:   "arena",

		RoundDuration: 300,
		RestDuration:  15,
		FlagsPerTeam:  0,

		ScoreStyle:       ScoreTotalKills,
		VictoryCondition: VictoryScoreLimit,
		ScoreLimit:       25,
		TimeLimit:        600,

		RespawnMode:         RespawnInstant,
		RespawnDelay:        5,
		MaxLives:            5,
		WaveRespawnInterval: 5,

		KothZones:           0,
		KothPointsPerSecond: 1,

		HeadquartersMaxHealth:        1000,
		HeadquartersPointsPerDamage:  0.1,
		HeadquartersDestructionBonus: 100,

		VipKillPoints: 2,

		RandomWeaponInterval: 30,

		RandomEventInterval:         60,
		RandomEventIntervalVariance: 0.3,
		EventWarningDuration:        5,
		MeteorShowerDensity:         DensitySparse,
		MeteorDamage:                20,
		MeteorRadius:                60,
		SupplyDropDensity:           DensitySparse,
		VolcanicEruptionDensity:     DensitySparse,
		EruptionDamage:              15,
		EruptionRadius:              50,
		IonStormDensity:             DensitySparse,
		IonStormDamage:              10,
		EarthquakeDamage:            5,
	}
}

// normalized returns a copy of cfg with defaults applied and invalid values
// clamped.
func (cfg Config) normalized() Config {
	out := cfg
	out.Seed = strings.TrimSpace(out.Seed)
	if out.Seed == "" {
		out.Seed = "arena"
	}
	if out.Width <= 0 {
		out.Width = 1600
	}
	if out.Height <= 0 {
		out.Height = 1200
	}
	if out.RoundDuration <= 0 {
		out.RoundDuration = 300
	}
	if out.RestDuration < 0 {
		out.RestDuration = 0
	}
	if out.FlagsPerTeam < 0 {
		out.FlagsPerTeam = 0
	}
	if out.ScoreStyle == "" {
		out.ScoreStyle = ScoreTotalKills
	}
	if out.VictoryCondition == "" {
		out.VictoryCondition = VictoryScoreLimit
	}
	if out.RespawnMode == "" {
		out.RespawnMode = RespawnInstant
	}
	if out.RespawnDelay < 0 {
		out.RespawnDelay = 0
	}
	if out.MaxLives < 0 {
		out.MaxLives = 0
	}
	if out.WaveRespawnInterval <= 0 {
		out.WaveRespawnInterval = 5
	}
	if out.KothZones < 0 {
		out.KothZones = 0
	}
	if out.RandomWeaponInterval <= 0 {
		out.RandomWeaponInterval = 30
	}
	if out.RandomEventInterval <= 0 {
		out.RandomEventInterval = 60
	}
	if out.RandomEventIntervalVariance < 0 {
		out.RandomEventIntervalVariance = 0
	}
	if out.EventWarningDuration < 0 {
		out.EventWarningDuration = 0
	}
	return out
}

// Normalized exposes normalized() to external callers (config-change
// validation, tests).
func (cfg Config) Normalized() Config {
	return cfg.normalized()
}
