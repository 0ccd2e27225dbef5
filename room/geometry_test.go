package room

import (
	"math"
	"testing"
)

func TestVec2NormalizedUnitVector(t *testing.T) {
	t.Parallel()

	v := Vec2{X: 3, Y: 4}.Normalized()
	if math.Abs(v.Length()-1) > 1e-9 {
		t.Fatalf("expected a unit-length vector, got length=%v", v.Length())
	}
}

func TestVec2NormalizedZeroVectorDefaultsToPositiveX(t *testing.T) {
	t.Parallel()

	v := Vec2{}.Normalized()
	if v != (Vec2{X: 1, Y: 0}) {
		t.Fatalf("expected the zero vector to normalize to (1, 0), got %+v", v)
	}
}

func TestVec2DotAndCross(t *testing.T) {
	t.Parallel()

	a := Vec2{X: 1, Y: 0}
	b := Vec2{X: 0, Y: 1}
	if a.Dot(b) != 0 {
		t.Fatalf("expected perpendicular vectors to have zero dot product, got %v", a.Dot(b))
	}
	if a.Cross(b) != 1 {
		t.Fatalf("expected cross product of orthonormal basis vectors to be 1, got %v", a.Cross(b))
	}
}

func TestVec2DistanceMatchesLengthOfDifference(t *testing.T) {
	t.Parallel()

	a := Vec2{X: 0, Y: 0}
	b := Vec2{X: 3, Y: 4}
	if dist := a.Distance(b); dist != 5 {
		t.Fatalf("expected distance 5 for a 3-4-5 triangle, got %v", dist)
	}
}

func TestVec2PerpendicularRotatesCounterClockwise(t *testing.T) {
	t.Parallel()

	v := Vec2{X: 1, Y: 0}.Perpendicular()
	if v != (Vec2{X: 0, Y: 1}) {
		t.Fatalf("expected (1,0) perpendicular to be (0,1), got %+v", v)
	}
}

func TestVec2RotatedByHalfPi(t *testing.T) {
	t.Parallel()

	v := Vec2{X: 1, Y: 0}.Rotated(math.Pi / 2)
	if math.Abs(v.X) > 1e-9 || math.Abs(v.Y-1) > 1e-9 {
		t.Fatalf("expected (1,0) rotated by pi/2 to be close to (0,1), got %+v", v)
	}
}

func TestFromAngleMatchesRotatedUnitX(t *testing.T) {
	t.Parallel()

	angle := math.Pi / 3
	fromAngle := FromAngle(angle)
	rotated := Vec2{X: 1, Y: 0}.Rotated(angle)
	if math.Abs(fromAngle.X-rotated.X) > 1e-9 || math.Abs(fromAngle.Y-rotated.Y) > 1e-9 {
		t.Fatalf("expected FromAngle to match rotating the unit X vector, got %+v vs %+v", fromAngle, rotated)
	}
}

func TestClampLimitsToRange(t *testing.T) {
	t.Parallel()

	if Clamp(-5, 0, 10) != 0 {
		t.Fatalf("expected a value below the range to clamp to the minimum")
	}
	if Clamp(15, 0, 10) != 10 {
		t.Fatalf("expected a value above the range to clamp to the maximum")
	}
	if Clamp(5, 0, 10) != 5 {
		t.Fatalf("expected a value within the range to pass through unchanged")
	}
}
