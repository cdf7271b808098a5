package geometry

import (
	"math"
	"testing"
)

func vectorsClose(a, b Vector3) bool {
	return a.Distance(b) < 1e-9
}

func hasNaN(q Quaternion) bool {
	return math.IsNaN(q.X) || math.IsNaN(q.Y) || math.IsNaN(q.Z) || math.IsNaN(q.W)
}

func TestLookRotationForwardIsIdentity(t *testing.T) {
	q := LookRotation(Forward, Up)

	if !q.IsIdentity() {
		t.Errorf("expected identity, got %v", q)
	}
}

func TestLookRotationMapsForwardOntoDirection(t *testing.T) {
	directions := []Vector3{
		NewVector3(1, 0, 0),
		NewVector3(0, 0, -1),
		NewVector3(1, 2, 3),
		NewVector3(-4, 0.5, -2),
		NewVector3(0.1, -5, 0.2),
	}

	for _, d := range directions {
		q := LookRotation(d, Up)
		got := q.Rotate(Forward)
		if !vectorsClose(got, d.Normalize()) {
			t.Errorf("LookRotation(%v): forward rotated to %v, expected %v", d, got, d.Normalize())
		}
		if math.Abs(q.Length()-1) > 1e-10 {
			t.Errorf("LookRotation(%v) is not a unit quaternion: %v", d, q.Length())
		}
	}
}

func TestLookRotationKeepsUpVertical(t *testing.T) {
	q := LookRotation(NewVector3(3, 0, 4), Up)
	up := q.Rotate(Up)

	if !vectorsClose(up, Up) {
		t.Errorf("rotated up should stay vertical for a horizontal direction, got %v", up)
	}
}

func TestLookRotationZeroDirection(t *testing.T) {
	q := LookRotation(Vector3{}, Up)

	if hasNaN(q) {
		t.Fatalf("zero direction produced NaN: %v", q)
	}
	if !q.IsIdentity() {
		t.Errorf("zero direction should give identity, got %v", q)
	}
}

func TestLookRotationParallelToUp(t *testing.T) {
	for _, d := range []Vector3{Up, Up.Mul(-3)} {
		q := LookRotation(d, Up)
		if hasNaN(q) {
			t.Fatalf("direction %v parallel to up produced NaN: %v", d, q)
		}
		if got := q.Rotate(Forward); !vectorsClose(got, d.Normalize()) {
			t.Errorf("direction %v: forward rotated to %v", d, got)
		}
		if again := LookRotation(d, Up); again != q {
			t.Errorf("direction %v: rotation is not deterministic: %v vs %v", d, q, again)
		}
	}
}

func TestFromToOpposite(t *testing.T) {
	q := FromTo(Forward, Forward.Mul(-1))

	if got := q.Rotate(Forward); !vectorsClose(got, Forward.Mul(-1)) {
		t.Errorf("expected forward to flip, got %v", got)
	}
}

func TestQuaternionMulComposes(t *testing.T) {
	a := AxisAngle(Up, math.Pi/2)
	b := AxisAngle(Right, math.Pi/2)
	v := NewVector3(0, 0, 1)

	composed := a.Mul(b).Rotate(v)
	sequential := a.Rotate(b.Rotate(v))

	if !vectorsClose(composed, sequential) {
		t.Errorf("Mul failed: expected %v, got %v", sequential, composed)
	}
}
