package mino

import (
	"testing"
)

type rotationTestData struct {
	Shape   string
	Rotated string
}

var rotationTests = []*rotationTestData{
	{ShapeBar, "X/X/X/X"},
	{ShapeSquare, ShapeSquare},
	{ShapeT, "X./XX/X."},
	{"X./XX/X.", "XXX/.X."},
	{"XX./..X", ".X/.X/X."},
}

func TestRotateCW(t *testing.T) {
	for _, d := range rotationTests {
		s, err := ParseShape(d.Shape)
		if err != nil {
			t.Fatalf("failed to parse shape %s: %s", d.Shape, err)
		}

		r := s.RotateCW()
		if r.String() != d.Rotated {
			t.Errorf("failed to rotate %s: expected %s, got %s", d.Shape, d.Rotated, r)
		}

		if r.Width() != s.Height() || r.Height() != s.Width() {
			t.Errorf("failed to rotate %s: expected %dx%d, got %dx%d", d.Shape, s.Height(), s.Width(), r.Width(), r.Height())
		}

		if s.String() != d.Shape {
			t.Errorf("rotation of %s modified the original shape: %s", d.Shape, s)
		}
	}
}

func TestRotateRoundTrip(t *testing.T) {
	for i, s := range Catalog() {
		r := s
		for j := 0; j < RotationStates; j++ {
			r = RotateCW(r)
		}

		if !r.Equal(s) {
			t.Errorf("failed to round trip %s: expected\n%sgot\n%s", ShapeType(i), s.Render(), r.Render())
		}
	}
}

func TestParseShape(t *testing.T) {
	if _, err := ParseShape("XX/X"); err == nil {
		t.Error("failed to reject ragged shape")
	}

	if _, err := ParseShape("XO"); err == nil {
		t.Error("failed to reject unknown cell marker")
	}

	s, err := ParseShape("")
	if err != nil {
		t.Errorf("failed to parse empty shape: %s", err)
	}
	if w, h := s.Size(); w != 0 || h != 0 {
		t.Errorf("failed to parse empty shape: expected 0x0, got %dx%d", w, h)
	}
}

func TestShapePoints(t *testing.T) {
	points := T.Points()
	expected := []Point{{1, 0}, {0, 1}, {1, 1}, {2, 1}}

	if len(points) != len(expected) {
		t.Fatalf("unexpected number of points: expected %d, got %d", len(expected), len(points))
	}

	for i := range expected {
		if points[i] != expected[i] {
			t.Errorf("unexpected point %d: expected %s, got %s", i, expected[i], points[i])
		}
	}

	if T.Occupied(0, 0) || !T.Occupied(1, 0) || T.Occupied(5, 5) || T.Occupied(-1, 0) {
		t.Error("unexpected occupancy for T shape")
	}
}

func TestShapeRowsCopy(t *testing.T) {
	rows := Square.Rows()
	rows[0][0] = false

	if !Square.Occupied(0, 0) {
		t.Error("modifying Rows() changed the catalog shape")
	}
}

func BenchmarkRotateCW(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	s := T
	for n := 0; n < b.N; n++ {
		s = s.RotateCW()
	}
}
