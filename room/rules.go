package room

import (
	"math"
	"math/rand"
	"time"

	"arena-server/logging"
)

// RoundPhase enumerates the round lifecycle state machine.
type RoundPhase string

const (
	PhasePlaying    RoundPhase = "PLAYING"
	PhaseRoundEnd   RoundPhase = "ROUND_END"
	PhaseRestPeriod RoundPhase = "REST_PERIOD"
	PhaseGameOver   RoundPhase = "GAME_OVER"
)

// RuleSystem owns round/rest timing, scoring, victory evaluation, respawn
// policy, KOTH scoring, VIP tracking and random weapon rotation.
type RuleSystem struct {
	cfg   Config
	rng   *rand.Rand
	Phase RoundPhase

	RoundElapsed float64
	RestElapsed  float64
	RoundNumber  int

	TeamScores map[int]float64

	// WinningTeam is the team credited with victory once Phase leaves
	// PLAYING via a decisive condition; 0 means no winner was decided (a
	// DRAW on tied scores, or victory not yet reached).
	WinningTeam int

	weaponRotationElapsed float64
	vipPlayerID           uint32

	pub  logging.Publisher
	tick uint64
}

// NewRuleSystem constructs a rule system in PLAYING phase for round 1.
func NewRuleSystem(cfg Config, rng *rand.Rand) *RuleSystem {
	return &RuleSystem{
		cfg:         cfg,
		rng:         rng,
		Phase:       PhasePlaying,
		RoundNumber: 1,
		TeamScores:  make(map[int]float64),
	}
}

// SetPublisher wires the telemetry sink used to report round/kill events.
func (rs *RuleSystem) SetPublisher(pub logging.Publisher) {
	rs.pub = pub
}

// SetTick records the current simulation tick for telemetry timestamps.
func (rs *RuleSystem) SetTick(tick uint64) {
	rs.tick = tick
}

// Tick advances the round/rest clocks, checks victory, and applies
// RuleSystem-owned continuous effects: KOTH accrual, random weapon
// rotation, VIP assignment.
func (rs *RuleSystem) Tick(reg *EntityRegistry, dt float64, now time.Time) {
	switch rs.Phase {
	case PhasePlaying:
		rs.RoundElapsed += dt
		rs.tickKoth(reg, dt)
		rs.tickRandomWeapons(reg, dt, now)
		rs.tickVip(reg)
		if rs.checkVictory(reg) {
			rs.Phase = PhaseRoundEnd
			publishRoundPhase(rs.pub, rs.tick, rs.Phase, rs.WinningTeam)
		}
	case PhaseRoundEnd:
		rs.Phase = PhaseRestPeriod
		rs.RestElapsed = 0
	case PhaseRestPeriod:
		rs.RestElapsed += dt
		if rs.RestElapsed >= rs.cfg.RestDuration {
			rs.startNextRound(reg)
		}
	case PhaseGameOver:
		// terminal; the owning room is responsible for teardown.
	}
}

func (rs *RuleSystem) startNextRound(reg *EntityRegistry) {
	rs.RoundNumber++
	rs.RoundElapsed = 0
	rs.RestElapsed = 0
	rs.Phase = PhasePlaying
	for _, zone := range reg.KothZones {
		zone.Reset(nil)
	}
}

// RecordKill applies scoring for a kill according to the configured
// ScoreStyle.
func (rs *RuleSystem) RecordKill(killer, victim *Player) {
	victim.Deaths++
	publishKill(rs.pub, rs.tick, killer, victim)
	if killer == nil || killer.ID == victim.ID {
		return
	}
	killer.Kills++
	switch rs.cfg.ScoreStyle {
	case ScoreTotalKills, ScoreTotal:
		rs.addTeamScore(killer.Team, 1)
	}
	if rs.cfg.EnableVip && victim.IsVIP {
		rs.addTeamScore(killer.Team, rs.cfg.VipKillPoints)
	}
}

// RecordCapture applies scoring for a flag capture (ScoreStyle CAPTURES).
func (rs *RuleSystem) RecordCapture(p *Player) {
	if rs.cfg.ScoreStyle == ScoreCaptures || rs.cfg.ScoreStyle == ScoreTotal {
		rs.addTeamScore(p.Team, 1)
	}
}

func (rs *RuleSystem) addTeamScore(team int, amount float64) {
	rs.TeamScores[team] += amount
}

func (rs *RuleSystem) tickKoth(reg *EntityRegistry, dt float64) {
	if rs.cfg.KothZones == 0 {
		return
	}
	for _, zone := range reg.KothZones {
		updateKothZone(zone, rs.cfg.KothPointsPerSecond, dt, rs.TeamScores)
		zone.PlayersInZone = make(map[uint32]int)
	}
}

// updateKothZone advances a single zone's capture/control state machine
// from its current PlayersInZone membership: empty -> NEUTRAL (a CONTROLLED
// zone stays CONTROLLED), one team present -> CAPTURING then
// CONTROLLED once progress reaches 1, mixed teams -> CONTESTED (progress
// frozen), team_scores accrue per second while CONTROLLED.
func updateKothZone(zone *KothZone, pointsPerSecond, dt float64, teamScores map[int]float64) {
	teams := map[int]bool{}
	for _, team := range zone.PlayersInZone {
		teams[team] = true
	}
	switch len(teams) {
	case 0:
		if zone.State != KothControlled {
			zone.State = KothNeutral
			zone.CaptureProgress = 0
		}
	case 1:
		var only int
		for t := range teams {
			only = t
		}
		if zone.ControllingTeam != only {
			zone.State = KothCapturing
			zone.CaptureProgress += dt * 0.5
			if zone.CaptureProgress >= 1 {
				zone.CaptureProgress = 1
				zone.ControllingTeam = only
				zone.State = KothControlled
			}
		} else {
			zone.State = KothControlled
		}
	default:
		zone.State = KothContested
	}

	if zone.State == KothControlled && zone.ControllingTeam >= 0 {
		zone.TeamScores[zone.ControllingTeam] += pointsPerSecond * dt
		teamScores[zone.ControllingTeam] += pointsPerSecond * dt
	}
}

func (rs *RuleSystem) tickRandomWeapons(reg *EntityRegistry, dt float64, now time.Time) {
	if !rs.cfg.EnableRandomWeapons {
		return
	}
	rs.weaponRotationElapsed += dt
	if rs.weaponRotationElapsed < rs.cfg.RandomWeaponInterval {
		return
	}
	rs.weaponRotationElapsed = 0
	for _, p := range reg.ActivePlayers() {
		p.Weapon = NewWeaponInstance(randomNonHealingPreset(rs.rng))
	}
}

// randomNonHealingPreset draws a weapon preset, excluding healing weapons
// from the rotation.
func randomNonHealingPreset(rng *rand.Rand) WeaponConfig {
	candidates := make([]WeaponConfig, 0, len(Presets))
	for _, preset := range Presets {
		if !preset.IsHealing() {
			candidates = append(candidates, preset)
		}
	}
	if len(candidates) == 0 {
		return Presets[0]
	}
	idx := 0
	if rng != nil {
		idx = rng.Intn(len(candidates))
	}
	return candidates[idx]
}

func (rs *RuleSystem) tickVip(reg *EntityRegistry) {
	if !rs.cfg.EnableVip {
		return
	}
	if rs.vipPlayerID != 0 {
		if p, ok := reg.Players[rs.vipPlayerID]; ok && p.Active {
			return
		}
	}
	players := reg.ActivePlayers()
	if len(players) == 0 {
		return
	}
	for _, p := range players {
		p.IsVIP = false
	}
	chosen := players[0]
	if rs.rng != nil {
		chosen = players[rs.rng.Intn(len(players))]
	}
	chosen.IsVIP = true
	rs.vipPlayerID = chosen.ID
}

// checkVictory evaluates the configured VictoryCondition against current
// state, setting WinningTeam when a condition decides the round.
func (rs *RuleSystem) checkVictory(reg *EntityRegistry) bool {
	switch rs.cfg.VictoryCondition {
	case VictoryScoreLimit:
		for _, score := range rs.TeamScores {
			if score >= rs.cfg.ScoreLimit {
				rs.WinningTeam = rs.highestScoringTeam()
				return true
			}
		}
		return false
	case VictoryTimeLimit:
		if rs.RoundElapsed >= rs.cfg.TimeLimit {
			rs.WinningTeam = rs.highestScoringTeam()
			return true
		}
		return false
	case VictoryElim:
		if rs.onlyOneTeamRemains(reg) {
			rs.WinningTeam = rs.soleRemainingTeam(reg)
			return true
		}
		return false
	case VictoryEndless:
		return false
	}
	if rs.cfg.AddHeadquarters && rs.cfg.HeadquartersDestructionEndsGame {
		for _, hq := range reg.Headquarters {
			if !hq.Active {
				// WinningTeam was already credited by the collision handler
				// that landed the destroying blow.
				return true
			}
		}
	}
	return false
}

// highestScoringTeam returns the team with the strictly highest score, or 0
// (no winner, a DRAW) when two or more teams are tied for the lead.
func (rs *RuleSystem) highestScoringTeam() int {
	best := 0
	bestScore := math.Inf(-1)
	tied := false
	for team, score := range rs.TeamScores {
		switch {
		case score > bestScore:
			best, bestScore, tied = team, score, false
		case score == bestScore:
			tied = true
		}
	}
	if tied {
		return 0
	}
	return best
}

func (rs *RuleSystem) activeTeams(reg *EntityRegistry) map[int]bool {
	teams := map[int]bool{}
	for _, p := range reg.Players {
		if p.Active && !p.Eliminated && !p.IsSpectator {
			teams[p.Team] = true
		}
	}
	return teams
}

func (rs *RuleSystem) onlyOneTeamRemains(reg *EntityRegistry) bool {
	return len(rs.activeTeams(reg)) <= 1
}

// soleRemainingTeam returns the last team standing, or 0 if none remain.
func (rs *RuleSystem) soleRemainingTeam(reg *EntityRegistry) int {
	for team := range rs.activeTeams(reg) {
		return team
	}
	return 0
}

// RespawnDecision describes whether and when a player should respawn under
// the configured RespawnMode.
type RespawnDecision struct {
	ShouldRespawn bool
	At            time.Time
}

// Respawn applies the configured respawn policy to a player who just died:
// it sets RespawnTimer to the delay before they reenter play, or eliminates
// them when the policy allows no further respawn.
func (rs *RuleSystem) Respawn(p *Player, now time.Time) {
	switch rs.cfg.RespawnMode {
	case RespawnInstant:
		p.RespawnTimer = rs.cfg.RespawnDelay
	case RespawnWave:
		p.RespawnTimer = rs.cfg.WaveRespawnInterval
	case RespawnLimited:
		if rs.cfg.MaxLives > 0 {
			p.LivesRemaining--
			if p.LivesRemaining <= 0 {
				p.Eliminate()
				return
			}
		}
		p.RespawnTimer = rs.cfg.RespawnDelay
	case RespawnElim:
		p.Eliminate()
		return
	default:
		p.RespawnTimer = rs.cfg.RespawnDelay
	}
}
