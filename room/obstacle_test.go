package room

import (
	"testing"
	"time"
)

func TestAABBContainsAndOverlaps(t *testing.T) {
	t.Parallel()

	box := AABB{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}
	if !box.Contains(Vec2{X: 5, Y: 5}) {
		t.Fatalf("expected a point inside the box to be contained")
	}
	if box.Contains(Vec2{X: 20, Y: 20}) {
		t.Fatalf("expected a point outside the box not to be contained")
	}

	other := AABB{MinX: 5, MinY: 5, MaxX: 15, MaxY: 15}
	if !box.Overlaps(other) {
		t.Fatalf("expected overlapping boxes to report true")
	}
	far := AABB{MinX: 100, MinY: 100, MaxX: 110, MaxY: 110}
	if box.Overlaps(far) {
		t.Fatalf("expected distant boxes not to overlap")
	}
}

func TestObstaclePermanentNeverExpires(t *testing.T) {
	t.Parallel()

	o := NewObstacle(0, 0, 10, 10, true)
	if expired := o.Tick(1000); expired {
		t.Fatalf("expected a permanent obstacle (zero lifespan) never to expire")
	}
}

func TestPlayerBarrierExpiresAfterLifespan(t *testing.T) {
	t.Parallel()

	o := NewPlayerBarrier(1, 0, 0, 10, 10, time.Now(), 5)

	if expired := o.Tick(4); expired {
		t.Fatalf("expected the barrier to still be alive before its lifespan elapses")
	}
	if expired := o.Tick(1); !expired {
		t.Fatalf("expected the barrier to expire once its lifespan elapses")
	}
}

func TestObstacleCircleOverlapDetectsIntersection(t *testing.T) {
	t.Parallel()

	o := NewObstacle(0, 0, 10, 10, true)

	if !o.CircleOverlap(5, 5, 1) {
		t.Fatalf("expected a circle centered inside the obstacle to overlap")
	}
	if o.CircleOverlap(100, 100, 1) {
		t.Fatalf("expected a distant circle not to overlap")
	}
}
