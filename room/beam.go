package room

// Beam is a hitscan weapon output. EffectiveEnd is
// recomputed each tick by clipping against opaque obstacles unless the
// ordinance is marked "railgun".
type Beam struct {
	Entity

	Start, End    Vec2
	EffectiveEnd  Vec2
	Direction     Vec2
	Range         float64
	Damage        float64

	OwnerID   uint32
	OwnerTeam int

	Ordinance     Ordinance
	BulletEffects map[BulletEffect]bool

	ApplicationType DamageApplication
	DamageInterval  float64
	Duration        float64
	Remaining       float64

	AffectedPlayers        map[uint32]bool
	LastDamageTimePerPlayer map[uint32]float64 // seconds-of-life at last tick applied
	elapsed                float64
}

// NewBeam constructs a beam from firer state and weapon attributes.
func NewBeam(ownerID uint32, ownerTeam int, start Vec2, direction Vec2, attrs WeaponAttributes, ordinance Ordinance, effects []BulletEffect) *Beam {
	spec := OrdinanceCatalog[ordinance]
	dir := direction.Normalized()
	rng := attrs.Range * 0.6
	end := start.Add(dir.Scale(rng))

	effectSet := make(map[BulletEffect]bool, len(effects))
	for _, e := range effects {
		effectSet[e] = true
	}

	duration := spec.BeamDuration
	if duration <= 0 {
		duration = 1
	}

	return &Beam{
		Entity: Entity{
			ID:     NextID(),
			Kind:   KindBeam,
			Health: HealthInfinite,
			Active: true,
		},
		Start:                   start,
		End:                     end,
		EffectiveEnd:            end,
		Direction:               dir,
		Range:                   rng,
		Damage:                  attrs.Damage,
		OwnerID:                 ownerID,
		OwnerTeam:               ownerTeam,
		Ordinance:               ordinance,
		BulletEffects:           effectSet,
		ApplicationType:         spec.DamageApplication,
		DamageInterval:          spec.DamageInterval,
		Duration:                duration,
		Remaining:               duration,
		AffectedPlayers:         make(map[uint32]bool),
		LastDamageTimePerPlayer: make(map[uint32]float64),
	}
}

// PiercesObstacles reports whether this beam's ordinance skips clipping
// against obstacles entirely (railgun).
func (b *Beam) PiercesObstacles() bool {
	return b.Ordinance == OrdinanceRailgun
}

// IsHealing reports whether this beam negates damage into healing for
// allies.
func (b *Beam) IsHealing() bool {
	return b.Ordinance == OrdinanceHealBeam
}

// ClipAgainstObstacles recomputes EffectiveEnd by finding the nearest
// opaque obstacle intersection along [Start, End]. Railgun beams are
// never clipped.
func (b *Beam) ClipAgainstObstacles(obstacles []*Obstacle) {
	if b.PiercesObstacles() {
		b.EffectiveEnd = b.End
		return
	}
	nearest := b.End
	nearestDist := b.Start.Distance(b.End)
	for _, obs := range obstacles {
		if obs == nil || !obs.Active || !obs.Opaque {
			continue
		}
		if hit, dist, ok := segmentAABBIntersection(b.Start, b.End, obs.AABB()); ok {
			if dist < nearestDist {
				nearestDist = dist
				nearest = hit
			}
		}
	}
	b.EffectiveEnd = nearest
}

// Tick advances the beam's internal lifetime clock by dt and decrements
// Remaining. Returns true once the beam has expired.
func (b *Beam) Tick(dt float64) (expired bool) {
	b.elapsed += dt
	b.Remaining -= dt
	return b.Remaining <= 0
}

// Elapsed reports the total seconds the beam has been alive.
func (b *Beam) Elapsed() float64 {
	return b.elapsed
}

// segmentAABBIntersection returns the nearest intersection point of segment
// [a,b] with the given AABB rectangle, and the distance from a to that
// point, using a slab-based ray/AABB test.
func segmentAABBIntersection(a, b Vec2, box AABB) (Vec2, float64, bool) {
	dir := b.Sub(a)
	tmin, tmax := 0.0, 1.0

	clip := func(p, d, lo, hi float64) bool {
		if d == 0 {
			return p >= lo && p <= hi
		}
		t1 := (lo - p) / d
		t2 := (hi - p) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
		return tmin <= tmax
	}

	if !clip(a.X, dir.X, box.MinX, box.MaxX) {
		return Vec2{}, 0, false
	}
	if !clip(a.Y, dir.Y, box.MinY, box.MaxY) {
		return Vec2{}, 0, false
	}
	if tmin < 0 || tmin > 1 {
		return Vec2{}, 0, false
	}
	hit := Vec2{X: a.X + dir.X*tmin, Y: a.Y + dir.Y*tmin}
	return hit, a.Distance(hit), true
}
