package landmarks

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Point is a single 2-D landmark position in image pixel coordinates.
type Point struct {
	X float64
	Y float64
}

// Shape is the ordered sequence of landmark points annotating one frame.
type Shape []Point

// Scaled returns a copy of the shape with every coordinate multiplied by
// ratio. Used when the frame is resized for display so the overlay keeps
// tracking the image.
func (s Shape) Scaled(ratio float64) Shape {
	if len(s) == 0 {
		return nil
	}
	out := make(Shape, len(s))
	for i, p := range s {
		out[i] = Point{X: p.X * ratio, Y: p.Y * ratio}
	}
	return out
}

// ReadShape loads a PTS landmark file from disk.
func ReadShape(path string) (Shape, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := ParseShape(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// ParseShape decodes the PTS point format:
//
//	version: 1
//	n_points: 68
//	{
//	x1 y1
//	...
//	}
//
// The declared point count must match the number of coordinate rows; any
// malformed row fails the whole shape.
func ParseShape(r io.Reader) (Shape, error) {
	sc := bufio.NewScanner(r)
	line, ok := nextLine(sc)
	if !ok || !strings.HasPrefix(line, "version:") {
		return nil, fmt.Errorf("pts: missing version header")
	}
	line, ok = nextLine(sc)
	if !ok || !strings.HasPrefix(line, "n_points:") {
		return nil, fmt.Errorf("pts: missing n_points header")
	}
	n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, "n_points:")))
	if err != nil || n <= 0 {
		return nil, fmt.Errorf("pts: invalid n_points %q", line)
	}
	if line, ok = nextLine(sc); !ok || line != "{" {
		return nil, fmt.Errorf("pts: missing opening brace")
	}

	shape := make(Shape, 0, n)
	for {
		line, ok = nextLine(sc)
		if !ok {
			return nil, fmt.Errorf("pts: unexpected end of file after %d of %d points", len(shape), n)
		}
		if line == "}" {
			break
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("pts: malformed point row %q", line)
		}
		x, errX := strconv.ParseFloat(fields[0], 64)
		y, errY := strconv.ParseFloat(fields[1], 64)
		if errX != nil || errY != nil {
			return nil, fmt.Errorf("pts: malformed point row %q", line)
		}
		shape = append(shape, Point{X: x, Y: y})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("pts: %w", err)
	}
	if len(shape) != n {
		return nil, fmt.Errorf("pts: declared %d points, found %d", n, len(shape))
	}
	return shape, nil
}

// nextLine returns the next non-blank, trimmed line.
func nextLine(sc *bufio.Scanner) (string, bool) {
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line != "" {
			return line, true
		}
	}
	return "", false
}
