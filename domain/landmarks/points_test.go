package landmarks

import (
	"strings"
	"testing"
)

const validPTS = `version: 1
n_points: 3
{
10.5 20.25
30 40
50.75 60
}
`

func TestParseShape_Valid(t *testing.T) {
	shape, err := ParseShape(strings.NewReader(validPTS))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(shape) != 3 {
		t.Fatalf("expected 3 points, got %d", len(shape))
	}
	if shape[0] != (Point{X: 10.5, Y: 20.25}) {
		t.Fatalf("unexpected first point %+v", shape[0])
	}
	if shape[2] != (Point{X: 50.75, Y: 60}) {
		t.Fatalf("unexpected last point %+v", shape[2])
	}
}

func TestParseShape_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing version", "n_points: 1\n{\n1 2\n}\n"},
		{"missing n_points", "version: 1\n{\n1 2\n}\n"},
		{"bad n_points", "version: 1\nn_points: zero\n{\n}\n"},
		{"zero n_points", "version: 1\nn_points: 0\n{\n}\n"},
		{"missing brace", "version: 1\nn_points: 1\n1 2\n}\n"},
		{"declared more than found", "version: 1\nn_points: 2\n{\n1 2\n}\n"},
		{"declared fewer than found", "version: 1\nn_points: 1\n{\n1 2\n3 4\n}\n"},
		{"malformed row", "version: 1\nn_points: 1\n{\none two\n}\n"},
		{"single column row", "version: 1\nn_points: 1\n{\n42\n}\n"},
		{"truncated file", "version: 1\nn_points: 2\n{\n1 2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseShape(strings.NewReader(tt.input)); err == nil {
				t.Fatalf("expected error for %s", tt.name)
			}
		})
	}
}

func TestParseShape_ToleratesPadding(t *testing.T) {
	// Annotation tools pad headers and rows with extra whitespace.
	input := "version: 1\nn_points:   2\n{\n  1.0   2.0  \n\n 3.0 4.0\n}\n"
	shape, err := ParseShape(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(shape) != 2 || shape[1] != (Point{X: 3, Y: 4}) {
		t.Fatalf("unexpected shape %+v", shape)
	}
}

func TestReadShape_MissingFile(t *testing.T) {
	if _, err := ReadShape("testdata/does-not-exist.pts"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestScaled(t *testing.T) {
	s := Shape{{X: 2, Y: 4}, {X: 10, Y: 0}}
	got := s.Scaled(0.5)
	if got[0] != (Point{X: 1, Y: 2}) || got[1] != (Point{X: 5, Y: 0}) {
		t.Fatalf("unexpected scaled shape %+v", got)
	}
	if len(Shape(nil).Scaled(2)) != 0 {
		t.Fatal("scaling an empty shape should yield an empty shape")
	}
}
