package room

import "time"

// AABB is an axis-aligned bounding box used for obstacle shapes and beam
// clipping.
type AABB struct {
	MinX, MinY, MaxX, MaxY float64
}

// Contains reports whether point p lies within the box.
func (b AABB) Contains(p Vec2) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// Overlaps reports whether two AABBs intersect.
func (b AABB) Overlaps(other AABB) bool {
	return b.MinX < other.MaxX && b.MaxX > other.MinX && b.MinY < other.MaxY && b.MaxY > other.MinY
}

// ClosestPoint returns the closest point within the box to p, used for
// circle/rect overlap tests.
func (b AABB) ClosestPoint(p Vec2) Vec2 {
	return Vec2{X: Clamp(p.X, b.MinX, b.MaxX), Y: Clamp(p.Y, b.MinY, b.MaxY)}
}

// Obstacle is a static convex shape with optional ownership and lifespan
// for player-placed barriers.
type Obstacle struct {
	Entity

	X, Y, Width, Height float64
	Opaque              bool // blocks line-of-sight for beams

	OwnerID      uint32 // 0 if map-authored
	PlacedAt     time.Time
	LifespanSecs float64 // 0 = permanent
	RemainingSecs float64

	// BoundingRadius and ShapeDescriptor are cached for client rendering.
	BoundingRadius float64
	ShapeDescriptor string
}

// NewObstacle constructs a permanent, map-authored obstacle.
func NewObstacle(x, y, width, height float64, opaque bool) *Obstacle {
	return &Obstacle{
		Entity: Entity{ID: NextID(), Kind: KindObstacle, Health: HealthInfinite, Active: true},
		X: x, Y: y, Width: width, Height: height, Opaque: opaque,
		BoundingRadius:  Vec2{X: width, Y: height}.Length() / 2,
		ShapeDescriptor: "rect",
	}
}

// NewPlayerBarrier constructs a temporary, player-placed obstacle that expires after lifespanSecs.
func NewPlayerBarrier(ownerID uint32, x, y, width, height float64, placedAt time.Time, lifespanSecs float64) *Obstacle {
	obs := NewObstacle(x, y, width, height, true)
	obs.OwnerID = ownerID
	obs.PlacedAt = placedAt
	obs.LifespanSecs = lifespanSecs
	obs.RemainingSecs = lifespanSecs
	return obs
}

// AABB returns the obstacle's bounding box.
func (o *Obstacle) AABB() AABB {
	return AABB{MinX: o.X, MinY: o.Y, MaxX: o.X + o.Width, MaxY: o.Y + o.Height}
}

// CircleOverlap reports whether a circle at (cx,cy) with the given radius
// intersects the obstacle's rectangle.
func (o *Obstacle) CircleOverlap(cx, cy, radius float64) bool {
	closest := o.AABB().ClosestPoint(Vec2{X: cx, Y: cy})
	return Vec2{X: cx, Y: cy}.Distance(closest) < radius
}

// Tick decrements the obstacle's remaining lifespan for temporary barriers.
// Returns true once expired; permanent obstacles (LifespanSecs == 0) never expire.
func (o *Obstacle) Tick(dt float64) (expired bool) {
	if o.LifespanSecs <= 0 {
		return false
	}
	o.RemainingSecs -= dt
	return o.RemainingSecs <= 0
}
