package gio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/Parranoh/ldrawing/internal/drawing"
	"github.com/Parranoh/ldrawing/internal/embed"
)

// ErrParse is the sentinel any malformed input wraps (spec.md §7
// ParseError: `"Error reading input on line <N>"`).
var ErrParse = errors.New("gio: error reading input")

// ParseError carries the 1-based input line a parse failure occurred on, so
// the CLI can print spec.md §7's exact "Error reading input on line <N>"
// message without re-parsing the wrapped error text.
type ParseError struct {
	Line  int
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("gio: error reading input on line %d: %v", e.Line, e.Cause)
}

func (e *ParseError) Unwrap() error { return e.Cause }

// Is reports ParseError as matching ErrParse, so errors.Is(err, ErrParse)
// keeps working for callers that only care about the error category.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// lineReader tracks the 1-based line number of a scanner for ParseError
// messages.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func newLineReader(r io.Reader) *lineReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	return &lineReader{sc: sc}
}

func (lr *lineReader) next() (string, error) {
	if !lr.sc.Scan() {
		if err := lr.sc.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	lr.line++
	return lr.sc.Text(), nil
}

func (lr *lineReader) fail(cause error) error {
	return &ParseError{Line: lr.line, Cause: cause}
}

// ReadGraph parses spec.md §6's plain-text graph format: a header, the
// outer face, per-vertex labels, the edge list, then per-vertex clockwise
// rotations, all 1-based in the input.
func ReadGraph(r io.Reader) (*embed.EmbeddedGraph, error) {
	return readGraph(newLineReader(r))
}

// ReadGraphAndDrawing parses a graph immediately followed by a raw
// L-drawing (spec.md §6's raw-L-drawing format), the Tester CLI's input
// contract. Both sections are read off one shared lineReader so the
// drawing's lines are read from wherever the graph's lines left off,
// rather than re-scanning r from the start.
func ReadGraphAndDrawing(r io.Reader) (*embed.EmbeddedGraph, *drawing.LDrawing, error) {
	lr := newLineReader(r)
	g, err := readGraph(lr)
	if err != nil {
		return nil, nil, err
	}
	d, err := readDrawing(lr, g.NumVertices())
	if err != nil {
		return nil, nil, err
	}
	return g, d, nil
}

func readDrawing(lr *lineReader, n int) (*drawing.LDrawing, error) {
	coords := make([]drawing.Point, n)
	for v := 0; v < n; v++ {
		line, err := lr.next()
		if err != nil {
			return nil, lr.fail(err)
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, lr.fail(fmt.Errorf("expected 'x y', got %q", line))
		}
		x, e1 := strconv.Atoi(fields[0])
		y, e2 := strconv.Atoi(fields[1])
		if e1 != nil || e2 != nil {
			return nil, lr.fail(fmt.Errorf("non-integer coordinate in %q", line))
		}
		coords[v] = drawing.Point{X: x, Y: y}
	}
	return &drawing.LDrawing{Coords: coords}, nil
}

func readGraph(lr *lineReader) (*embed.EmbeddedGraph, error) {
	header, err := lr.next()
	if err != nil {
		return nil, lr.fail(err)
	}
	fields := strings.Fields(header)
	if len(fields) != 3 {
		return nil, lr.fail(fmt.Errorf("expected 3 header fields, got %d", len(fields)))
	}
	numVertices, e1 := strconv.Atoi(fields[0])
	numEdges, e2 := strconv.Atoi(fields[1])
	outerDeg, e3 := strconv.Atoi(fields[2])
	if e1 != nil || e2 != nil || e3 != nil {
		return nil, lr.fail(fmt.Errorf("non-integer header field in %q", header))
	}

	outerLine, err := lr.next()
	if err != nil {
		return nil, lr.fail(err)
	}
	outerFields := strings.Fields(outerLine)
	if len(outerFields) != outerDeg {
		return nil, lr.fail(fmt.Errorf("expected %d outer-face vertices, got %d", outerDeg, len(outerFields)))
	}
	outerFace := make([]embed.VertexID, outerDeg)
	for i, f := range outerFields {
		id, err := strconv.Atoi(f)
		if err != nil {
			return nil, lr.fail(err)
		}
		outerFace[i] = embed.VertexID(id - 1)
	}

	b := embed.NewBuilder(numVertices)
	for v := 0; v < numVertices; v++ {
		label, err := lr.next()
		if err != nil {
			return nil, lr.fail(err)
		}
		b.SetLabel(embed.VertexID(v), label)
	}

	for e := 0; e < numEdges; e++ {
		line, err := lr.next()
		if err != nil {
			return nil, lr.fail(err)
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, lr.fail(fmt.Errorf("expected 'tail head', got %q", line))
		}
		tail, e1 := strconv.Atoi(fields[0])
		head, e2 := strconv.Atoi(fields[1])
		if e1 != nil || e2 != nil {
			return nil, lr.fail(fmt.Errorf("non-integer edge endpoint in %q", line))
		}
		b.AddEdge(embed.VertexID(tail-1), embed.VertexID(head-1))
	}

	for v := 0; v < numVertices; v++ {
		line, err := lr.next()
		if err != nil {
			return nil, lr.fail(err)
		}
		fields := strings.Fields(line)
		rotation := make([]embed.EdgeID, len(fields))
		for i, f := range fields {
			id, err := strconv.Atoi(f)
			if err != nil {
				return nil, lr.fail(err)
			}
			rotation[i] = embed.EdgeID(id - 1)
		}
		b.SetRotation(embed.VertexID(v), rotation)
	}

	g, err := b.Build(outerFace)
	if err != nil {
		return nil, lr.fail(err)
	}
	return g, nil
}
