// Package loaders reads external model files into scene geometry.
package loaders

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/regexPattern/raytracer/pkg/core"
	"github.com/regexPattern/raytracer/pkg/geometry"
)

// Parse failure kinds reported inside a ParseError.
var (
	ErrMissingValue         = errors.New("missing value")
	ErrInvalidValue         = errors.New("invalid value")
	ErrInvalidPolygon       = errors.New("polygon is degenerate")
	ErrInsufficientVertices = errors.New("face references vertices before enough are defined")
)

// ParseError reports a malformed line in an OBJ file
type ParseError struct {
	Line int
	Data string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("obj: line %d (%q): %v", e.Line, e.Data, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// objParser accumulates vertex and normal definitions while faces are
// emitted into named groups. OBJ indices are 1-based and refer to the
// running definition lists.
type objParser struct {
	vertices []core.Vec3
	normals  []core.Vec3
	root     *geometry.Group
	current  *geometry.Group
	// Named subgroups are attached to the root only after parsing
	// finishes, so the root's bounding box sees their full contents.
	pending []*geometry.Group
}

// LoadOBJ parses a Wavefront OBJ file into a group of triangles. Polygonal
// faces are fan-triangulated; faces that reference vertex normals become
// smooth triangles. Named groups (g lines) become subgroups of the returned
// group. Unrecognized lines are skipped.
func LoadOBJ(filename string) (*geometry.Group, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open OBJ file: %w", err)
	}
	defer file.Close()

	return ParseOBJ(file)
}

// ParseOBJ parses OBJ data from a reader. See LoadOBJ.
func ParseOBJ(r io.Reader) (*geometry.Group, error) {
	root := geometry.NewGroup(core.Identity())
	p := &objParser{root: root, current: root}

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		var err error
		switch fields[0] {
		case "v":
			err = p.parseVertex(fields[1:])
		case "vn":
			err = p.parseNormal(fields[1:])
		case "f":
			err = p.parseFace(fields[1:])
		case "g":
			err = p.parseGroup(fields[1:])
		}
		if err != nil {
			return nil, &ParseError{Line: lineNum, Data: line, Err: err}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read OBJ data: %w", err)
	}

	for _, sub := range p.pending {
		root.AddChild(sub)
	}

	return root, nil
}

func parseFloat(field string) (float64, error) {
	v, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidValue, field)
	}
	return v, nil
}

func parseVec3(fields []string) (core.Vec3, error) {
	if len(fields) < 3 {
		return core.Vec3{}, ErrMissingValue
	}
	x, err := parseFloat(fields[0])
	if err != nil {
		return core.Vec3{}, err
	}
	y, err := parseFloat(fields[1])
	if err != nil {
		return core.Vec3{}, err
	}
	z, err := parseFloat(fields[2])
	if err != nil {
		return core.Vec3{}, err
	}
	return core.Vec3{X: x, Y: y, Z: z}, nil
}

func (p *objParser) parseVertex(fields []string) error {
	v, err := parseVec3(fields)
	if err != nil {
		return err
	}
	p.vertices = append(p.vertices, v)
	return nil
}

func (p *objParser) parseNormal(fields []string) error {
	n, err := parseVec3(fields)
	if err != nil {
		return err
	}
	p.normals = append(p.normals, n)
	return nil
}

func (p *objParser) parseGroup(fields []string) error {
	if len(fields) == 0 {
		return ErrMissingValue
	}
	sub := geometry.NewGroup(core.Identity())
	p.pending = append(p.pending, sub)
	p.current = sub
	return nil
}

// faceRef is one vertex reference in a face line: a vertex index plus an
// optional normal index (0 when absent). Texture coordinates are parsed but
// ignored.
type faceRef struct {
	vertex int
	normal int
}

// parseFaceRef parses a "v", "v/t", "v//n" or "v/t/n" face field. Indices
// are returned 1-based as written.
func parseFaceRef(field string) (faceRef, error) {
	parts := strings.Split(field, "/")

	vertex, err := strconv.Atoi(parts[0])
	if err != nil || vertex < 1 {
		return faceRef{}, fmt.Errorf("%w: %q", ErrInvalidValue, field)
	}

	ref := faceRef{vertex: vertex}
	if len(parts) == 3 && parts[2] != "" {
		normal, err := strconv.Atoi(parts[2])
		if err != nil || normal < 1 {
			return faceRef{}, fmt.Errorf("%w: %q", ErrInvalidValue, field)
		}
		ref.normal = normal
	}
	return ref, nil
}

func (p *objParser) parseFace(fields []string) error {
	if len(p.vertices) < 3 {
		return ErrInsufficientVertices
	}
	if len(fields) < 3 {
		return ErrMissingValue
	}

	refs := make([]faceRef, 0, len(fields))
	for _, field := range fields {
		ref, err := parseFaceRef(field)
		if err != nil {
			return err
		}
		if ref.vertex > len(p.vertices) {
			return fmt.Errorf("%w: vertex %d", ErrInvalidValue, ref.vertex)
		}
		if ref.normal > len(p.normals) {
			return fmt.Errorf("%w: normal %d", ErrInvalidValue, ref.normal)
		}
		refs = append(refs, ref)
	}

	// Fan triangulation: every polygon vertex after the second closes a
	// triangle with the first vertex.
	for i := 2; i < len(refs); i++ {
		tri, err := p.makeTriangle(refs[0], refs[i-1], refs[i])
		if err != nil {
			return err
		}
		p.current.AddChild(tri)
	}
	return nil
}

func (p *objParser) makeTriangle(a, b, c faceRef) (geometry.Shape, error) {
	v0 := p.vertices[a.vertex-1]
	v1 := p.vertices[b.vertex-1]
	v2 := p.vertices[c.vertex-1]

	if a.normal > 0 && b.normal > 0 && c.normal > 0 {
		tri, err := geometry.NewSmoothTriangle(
			v0, v1, v2,
			p.normals[a.normal-1], p.normals[b.normal-1], p.normals[c.normal-1],
		)
		if err != nil {
			return nil, ErrInvalidPolygon
		}
		return tri, nil
	}

	tri, err := geometry.NewTriangle(v0, v1, v2)
	if err != nil {
		return nil, ErrInvalidPolygon
	}
	return tri, nil
}
