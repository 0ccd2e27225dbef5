package room

import (
	"arena-server/internal/sim"
	"arena-server/physics"
)

// Apply drains staged commands into player intent fields. Each player's latest command of a given type this tick
// wins; commands for unknown or inactive players are dropped silently.
func (r *Room) Apply(cmds []sim.Command) error {
	for _, cmd := range cmds {
		playerID, ok := parsePlayerCmdID(cmd.ActorID)
		if !ok {
			continue
		}
		p, ok := r.registry.Players[playerID]
		if !ok || !p.Active {
			continue
		}
		p.PendingInputAt = cmd.At

		switch cmd.Type {
		case CmdMove:
			if payload, ok := cmd.Payload.(MovePayload); ok {
				p.PendingMoveX = Clamp(payload.X, -1, 1)
				p.PendingMoveY = Clamp(payload.Y, -1, 1)
			}
		case CmdAim:
			if payload, ok := cmd.Payload.(AimPayload); ok {
				p.AimX, p.AimY = payload.X, payload.Y
			}
		case CmdFire:
			if payload, ok := cmd.Payload.(FirePayload); ok {
				if payload.Alt {
					p.PendingAltFire = true
				} else {
					p.PendingFire = true
				}
			}
		case CmdReload:
			p.PendingReload = true
		case CmdSelectUtility:
			if payload, ok := cmd.Payload.(SelectUtilityPayload); ok {
				p.UtilitySlot = payload.Slot
			}
		case CmdConfigChange:
			if payload, ok := cmd.Payload.(ConfigChangePayload); ok {
				r.applyConfigChange(p, payload)
			}
		}
	}
	return nil
}

// applyConfigChange swaps a player's own weapon loadout and utility slot.
// Rejected silently (a rule violation, per the error taxonomy) for
// spectators and for point allocations over budget; applying the same
// payload twice yields the same weapon state, since NewWeaponInstance
// always starts at a full magazine.
func (r *Room) applyConfigChange(p *Player, payload ConfigChangePayload) {
	if p.IsSpectator {
		return
	}
	if !payload.Weapon.Valid() {
		return
	}
	p.Weapon = NewWeaponInstance(payload.Weapon)
	p.UtilitySlot = payload.Utility
}

// Step advances the simulation by one fixed timestep dt, running the full
// tick pipeline: intents -> physics -> deferred collision handlers ->
// timers -> rule system -> cleanup -> snapshot/event broadcast. The
// snapshot/event broadcast is produced lazily by Snapshot(), called by the
// loop immediately after Step.
func (r *Room) Step(dt float64) {
	r.now = r.now.Add(timeDurationFromSeconds(dt))
	r.tick++

	r.weapons.SetTick(r.tick)
	r.rules.SetTick(r.tick)
	r.collision.SetTick(r.tick)
	r.events.SetTick(r.tick)

	r.applyIntents(dt)
	r.stepPhysics(dt)
	r.runDeferredCollisionEffects()
	r.tickTimers(dt)
	r.rules.Tick(r.registry, dt, r.now)
	r.events.Tick(r.registry, Bounds{Width: r.cfg.Width, Height: r.cfg.Height}, dt)
	r.registry.SweepInactive()
}

// applyIntents turns each active player's pending input into an immediate
// effect: movement velocity, weapon fire, reload, utility deploy.
func (r *Room) applyIntents(dt float64) {
	for _, p := range r.registry.ActivePlayers() {
		speed := p.EffectiveSpeed()
		p.X += p.PendingMoveX * speed * dt
		p.Y += p.PendingMoveY * speed * dt
		p.X = Clamp(p.X, 0, r.cfg.Width)
		p.Y = Clamp(p.Y, 0, r.cfg.Height)

		p.TickStatusEffects(dt)
		r.weapons.TickReload(p, dt)
		r.weapons.AutoReload(p)

		if p.PendingReload {
			r.weapons.StartReload(p)
			p.PendingReload = false
		}
		if p.PendingFire {
			projectiles, beam := r.weapons.Fire(p, r.now)
			for _, pr := range projectiles {
				r.registry.AddProjectile(pr)
			}
			if beam != nil {
				beam.ClipAgainstObstacles(obstacleSlice(r.registry))
				r.registry.AddBeam(beam)
			}
			p.PendingFire = false
		}
		if p.PendingAltFire {
			_ = r.utilities.Deploy(r.registry, p, r.now)
			p.PendingAltFire = false
		}
	}
}

func obstacleSlice(reg *EntityRegistry) []*Obstacle {
	out := make([]*Obstacle, 0, len(reg.Obstacles))
	for _, o := range reg.Obstacles {
		out = append(out, o)
	}
	return out
}

// stepPhysics advances projectiles, nets, and beams, then runs the circle
// overlap sweep via the collision dispatcher.
func (r *Room) stepPhysics(dt float64) {
	var dismissed []*Projectile
	for _, pr := range r.registry.Projectiles {
		if !pr.Active {
			continue
		}
		if reason := pr.Advance(dt); reason != DismissNone {
			pr.Entity.Deactivate()
			dismissed = append(dismissed, pr)
		}
	}
	for _, pr := range dismissed {
		if pr.effectsOnDismissalWarranted() {
			r.bullets.Expand(r.registry, pr, Vec2{X: pr.X, Y: pr.Y})
		}
	}

	for _, n := range r.registry.Nets {
		if n.Active {
			n.Advance(dt)
		}
	}
	for _, b := range r.registry.Beams {
		if !b.Active {
			continue
		}
		b.ClipAgainstObstacles(obstacleSlice(r.registry))
		if expired := b.Tick(dt); expired {
			b.Entity.Deactivate()
		}
	}

	r.resolvePlayerObstacleBlocking(dt)
	r.sweepCircleOverlaps()
}

// resolvePlayerObstacleBlocking rebuilds a physics.World each tick from the
// currently active players and opaque obstacles and steps it, so players
// are physically separated from walls rather than merely flagged by the
// sensor-style dispatcher in sweepCircleOverlaps.
func (r *Room) resolvePlayerObstacleBlocking(dt float64) {
	world := physics.NewWorld(func(m physics.Manifold) bool {
		return false // walls always push players out; never a sensor
	})
	handleToPlayer := make(map[physics.BodyHandle]*Player)

	for _, p := range r.registry.ActivePlayers() {
		h := world.AddBody(physics.Body{
			Position: physics.Vec2{X: p.X, Y: p.Y},
			Radius:   16,
			Mass:     1,
		})
		handleToPlayer[h] = p
	}
	for _, o := range r.registry.Obstacles {
		if !o.Active || !o.Opaque {
			continue
		}
		box := o.AABB()
		world.AddBody(physics.Body{
			Position: physics.Vec2{X: (box.MinX + box.MaxX) / 2, Y: (box.MinY + box.MaxY) / 2},
			Radius:   o.BoundingRadius,
			Mass:     0, // immovable
		})
	}

	world.Step(0) // positions already advanced by applyIntents; resolve overlap only

	for h, p := range handleToPlayer {
		if body := world.Body(h); body != nil {
			p.X, p.Y = body.Position.X, body.Position.Y
		}
	}
}

// sweepCircleOverlaps runs a naive pairwise overlap test across every
// active player/projectile/net, delegating resolution to the collision
// dispatcher. This intentionally mirrors physics.World.Step's O(n^2) sweep
// rather than routing through a shared physics.World instance, since each
// kind's radius differs and the room's own registry is the single source
// of truth for "active" here.
func (r *Room) sweepCircleOverlaps() {
	type hit struct {
		id     uint32
		x, y, radius float64
	}
	var circles []hit
	for _, p := range r.registry.ActivePlayers() {
		circles = append(circles, hit{p.ID, p.X, p.Y, 16})
	}
	for _, pr := range r.registry.Projectiles {
		if pr.Active {
			circles = append(circles, hit{pr.ID, pr.X, pr.Y, 4})
		}
	}
	for _, n := range r.registry.Nets {
		if n.Active {
			circles = append(circles, hit{n.ID, n.X, n.Y, 8})
		}
	}
	for _, z := range r.registry.KothZones {
		circles = append(circles, hit{z.ID, z.X, z.Y, z.Radius})
	}
	for _, w := range r.registry.Workshops {
		circles = append(circles, hit{w.ID, w.X, w.Y, w.CraftRadius})
	}
	for _, pu := range r.registry.PowerUps {
		if pu.Active {
			circles = append(circles, hit{pu.ID, pu.X, pu.Y, 12})
		}
	}
	for _, f := range r.registry.Flags {
		circles = append(circles, hit{f.ID, f.X, f.Y, 14})
	}
	for _, tp := range r.registry.TeleportPads {
		if tp.Active {
			circles = append(circles, hit{tp.ID, tp.X, tp.Y, tp.ActivationRadius})
		}
	}
	for _, fe := range r.registry.FieldEffects {
		if fe.Active {
			circles = append(circles, hit{fe.ID, fe.Center.X, fe.Center.Y, fe.Radius})
		}
	}
	for _, hq := range r.registry.Headquarters {
		if hq.Active {
			circles = append(circles, hit{hq.ID, hq.X, hq.Y, 40})
		}
	}

	for i := 0; i < len(circles); i++ {
		for j := i + 1; j < len(circles); j++ {
			a, b := circles[i], circles[j]
			dx, dy := a.x-b.x, a.y-b.y
			distSq := dx*dx + dy*dy
			reach := a.radius + b.radius
			if distSq > reach*reach {
				continue
			}
			r.collision.Dispatch(r.registry, a.id, b.id)
		}
	}
}

// runDeferredCollisionEffects is a placeholder seam for handlers that must
// run after every pair has been dispatched this tick — for example HQ-destruction game-over
// checks that need the full set of this tick's damage applied first.
func (r *Room) runDeferredCollisionEffects() {
	for _, hq := range r.registry.Headquarters {
		if !hq.Active && r.cfg.HeadquartersDestructionEndsGame && r.rules.Phase == PhasePlaying {
			r.rules.Phase = PhaseRoundEnd
			publishRoundPhase(r.rules.pub, r.tick, r.rules.Phase, r.rules.WinningTeam)
		}
	}
	for _, p := range r.registry.Players {
		if p.Active && p.Health <= 0 && !p.Eliminated {
			p.Entity.Deactivate()
			r.rules.Respawn(p, r.now)
			r.bus.Kill(0, p.ID, "")
		}
	}
}

// tickTimers advances every entity-local lifespan/cooldown timer.
func (r *Room) tickTimers(dt float64) {
	for _, o := range r.registry.Obstacles {
		if o.Active && o.Tick(dt) {
			o.Entity.Deactivate()
		}
	}
	for _, t := range r.registry.Turrets {
		if t.Active && r.now.After(t.Expires) {
			t.Entity.Deactivate()
		}
	}
	for _, tp := range r.registry.TeleportPads {
		tp.Tick(dt)
	}
	for _, fe := range r.registry.FieldEffects {
		if fe.Active && fe.Tick(dt) {
			fe.Entity.Deactivate()
		}
	}
	for _, p := range r.registry.Players {
		if !p.Active && !p.Eliminated && p.RespawnTimer > 0 {
			p.RespawnTimer -= dt
			if p.RespawnTimer <= 0 {
				r.respawnPlayer(p)
			}
		}
	}
}

func (r *Room) respawnPlayer(p *Player) {
	p.Active = true
	p.Health = p.MaxHealth
	p.X, p.Y = p.RespawnPoint.X, p.RespawnPoint.Y
	if p.Weapon != nil {
		p.Weapon.CurrentAmmo = p.Weapon.Attributes.MagazineSize
		p.Weapon.Reloading = false
	}
}

// Snapshot implements sim.EngineCore: materializes the current registry
// into the wire Snapshot and drains this tick's event queue.
func (r *Room) Snapshot() sim.Snapshot {
	return BuildSnapshot(r.tick, r.rules.Phase, r.registry, r.rules.TeamScores, r.bus.Drain())
}
