package geometry

import (
	"math"
	"testing"
)

func TestBoundingBoxExtend(t *testing.T) {
	bbox := NewBoundingBox()

	bbox.Extend(NewVector3(1, 2, 3))
	bbox.Extend(NewVector3(4, 5, 6))
	bbox.Extend(NewVector3(-1, 0, 2))

	expectedMin := NewVector3(-1, 0, 2)
	expectedMax := NewVector3(4, 5, 6)

	if bbox.Min != expectedMin {
		t.Errorf("Min failed: expected %v, got %v", expectedMin, bbox.Min)
	}
	if bbox.Max != expectedMax {
		t.Errorf("Max failed: expected %v, got %v", expectedMax, bbox.Max)
	}
}

func TestBoundsOf(t *testing.T) {
	bbox := BoundsOf([]Vector3{
		NewVector3(0, 0, 0),
		NewVector3(10, 20, 30),
	})

	if size := bbox.Size(); size != NewVector3(10, 20, 30) {
		t.Errorf("Size failed: expected %v, got %v", NewVector3(10, 20, 30), size)
	}
	if center := bbox.Center(); center != NewVector3(5, 10, 15) {
		t.Errorf("Center failed: expected %v, got %v", NewVector3(5, 10, 15), center)
	}
}

func TestBoundingBoxEmpty(t *testing.T) {
	bbox := BoundsOf(nil)

	if !bbox.Empty() {
		t.Errorf("expected empty bounding box")
	}
	if bbox.Size() != (Vector3{}) {
		t.Errorf("Size of empty box should be zero, got %v", bbox.Size())
	}
	if bbox.Diagonal() != 0 {
		t.Errorf("Diagonal of empty box should be zero, got %v", bbox.Diagonal())
	}
}

func TestBoundingBoxDiagonal(t *testing.T) {
	bbox := BoundsOf([]Vector3{NewVector3(0, 0, 0), NewVector3(3, 4, 0)})

	if math.Abs(bbox.Diagonal()-5.0) > 1e-10 {
		t.Errorf("Diagonal failed: expected 5.0, got %v", bbox.Diagonal())
	}
}
