package room

// Snapshot is the per-tick wire representation of the room's full entity
// set, broadcast to every connected client.
type Snapshot struct {
	Tick  uint64        `json:"tick"`
	Phase RoundPhase    `json:"phase"`

	Players      []PlayerView       `json:"players"`
	Projectiles  []ProjectileView   `json:"projectiles"`
	Beams        []BeamView         `json:"beams"`
	FieldEffects []FieldEffectView  `json:"fieldEffects"`
	Obstacles    []ObstacleView     `json:"obstacles"`
	Turrets      []TurretView       `json:"turrets"`
	TeleportPads []TeleportPadView  `json:"teleportPads"`
	Nets         []NetView          `json:"nets"`
	Flags        []FlagView         `json:"flags"`
	KothZones    []KothZoneView     `json:"kothZones"`
	Workshops    []WorkshopView     `json:"workshops"`
	PowerUps     []PowerUpView      `json:"powerUps"`
	Headquarters []HeadquartersView `json:"headquarters"`

	TeamScores map[int]float64 `json:"teamScores"`
	Events     []GameEvent     `json:"events,omitempty"`
}

type PlayerView struct {
	ID       uint32  `json:"id"`
	Name     string  `json:"name"`
	Team     int     `json:"team"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	AimX     float64 `json:"aimX"`
	AimY     float64 `json:"aimY"`
	Health   float64 `json:"health"`
	Kills    int     `json:"kills"`
	Deaths   int     `json:"deaths"`
	IsVIP    bool    `json:"isVip"`
	Eliminated bool  `json:"eliminated"`
}

type ProjectileView struct {
	ID uint32  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

type BeamView struct {
	ID           uint32  `json:"id"`
	StartX       float64 `json:"startX"`
	StartY       float64 `json:"startY"`
	EndX         float64 `json:"endX"`
	EndY         float64 `json:"endY"`
}

type FieldEffectView struct {
	ID     uint32  `json:"id"`
	Type   string  `json:"type"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`
}

type ObstacleView struct {
	ID     uint32  `json:"id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type TurretView struct {
	ID uint32  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

type TeleportPadView struct {
	ID uint32  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

type NetView struct {
	ID uint32  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

type FlagView struct {
	ID        uint32 `json:"id"`
	OwnerTeam int    `json:"ownerTeam"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	State     string `json:"state"`
}

type KothZoneView struct {
	ID              uint32  `json:"id"`
	ZoneIndex       int     `json:"zoneIndex"`
	ControllingTeam int     `json:"controllingTeam"`
	State           string  `json:"state"`
	CaptureProgress float64 `json:"captureProgress"`
}

type WorkshopView struct {
	ID uint32  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

type PowerUpView struct {
	ID   uint32 `json:"id"`
	Type string `json:"type"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

type HeadquartersView struct {
	ID     uint32  `json:"id"`
	Team   int     `json:"team"`
	Health float64 `json:"health"`
}

// BuildSnapshot materializes the current registry state into a wire
// snapshot.
func BuildSnapshot(tick uint64, phase RoundPhase, reg *EntityRegistry, teamScores map[int]float64, events []GameEvent) Snapshot {
	snap := Snapshot{Tick: tick, Phase: phase, TeamScores: teamScores, Events: events}

	for _, p := range reg.Players {
		snap.Players = append(snap.Players, PlayerView{
			ID: p.ID, Name: p.Name, Team: p.Team, X: p.X, Y: p.Y,
			AimX: p.AimX, AimY: p.AimY, Health: p.Health,
			Kills: p.Kills, Deaths: p.Deaths, IsVIP: p.IsVIP, Eliminated: p.Eliminated,
		})
	}
	for _, pr := range reg.Projectiles {
		snap.Projectiles = append(snap.Projectiles, ProjectileView{ID: pr.ID, X: pr.X, Y: pr.Y})
	}
	for _, b := range reg.Beams {
		snap.Beams = append(snap.Beams, BeamView{
			ID: b.ID, StartX: b.Start.X, StartY: b.Start.Y,
			EndX: b.EffectiveEnd.X, EndY: b.EffectiveEnd.Y,
		})
	}
	for _, fe := range reg.FieldEffects {
		snap.FieldEffects = append(snap.FieldEffects, FieldEffectView{
			ID: fe.ID, Type: string(fe.Type), X: fe.Center.X, Y: fe.Center.Y, Radius: fe.Radius,
		})
	}
	for _, o := range reg.Obstacles {
		snap.Obstacles = append(snap.Obstacles, ObstacleView{ID: o.ID, X: o.X, Y: o.Y, Width: o.Width, Height: o.Height})
	}
	for _, t := range reg.Turrets {
		snap.Turrets = append(snap.Turrets, TurretView{ID: t.ID, X: t.X, Y: t.Y})
	}
	for _, tp := range reg.TeleportPads {
		snap.TeleportPads = append(snap.TeleportPads, TeleportPadView{ID: tp.ID, X: tp.X, Y: tp.Y})
	}
	for _, n := range reg.Nets {
		snap.Nets = append(snap.Nets, NetView{ID: n.ID, X: n.X, Y: n.Y})
	}
	for _, f := range reg.Flags {
		snap.Flags = append(snap.Flags, FlagView{ID: f.ID, OwnerTeam: f.OwnerTeam, X: f.X, Y: f.Y, State: string(f.State)})
	}
	for _, z := range reg.KothZones {
		snap.KothZones = append(snap.KothZones, KothZoneView{
			ID: z.ID, ZoneIndex: z.ZoneIndex, ControllingTeam: z.ControllingTeam,
			State: string(z.State), CaptureProgress: z.CaptureProgress,
		})
	}
	for _, w := range reg.Workshops {
		snap.Workshops = append(snap.Workshops, WorkshopView{ID: w.ID, X: w.X, Y: w.Y})
	}
	for _, pu := range reg.PowerUps {
		snap.PowerUps = append(snap.PowerUps, PowerUpView{ID: pu.ID, Type: string(pu.Type), X: pu.X, Y: pu.Y})
	}
	for _, hq := range reg.Headquarters {
		snap.Headquarters = append(snap.Headquarters, HeadquartersView{ID: hq.ID, Team: hq.Team, Health: hq.Health})
	}

	return snap
}
