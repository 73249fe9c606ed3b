package tetris

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

//go:embed rotations.txt
var defaultRotations string

var defaultPieces = sync.OnceValue(func() *PieceSet {
	set, err := ParsePieceSet(strings.NewReader(defaultRotations))
	if err != nil {
		panic(fmt.Sprintf("tetris: embedded rotation table is invalid: %v", err))
	}
	return set
})

// DefaultPieces returns the built-in rotation catalog. The embedded
// table is parsed once on first use; since it ships with the package, a
// parse failure is a build defect and panics.
func DefaultPieces() *PieceSet {
	return defaultPieces()
}

// LoadPieceSet reads a rotation catalog from a file. See ParsePieceSet
// for the format.
func LoadPieceSet(path string) (*PieceSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tetris: open rotation table: %w", err)
	}
	defer f.Close()

	set, err := ParsePieceSet(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

// ParsePieceSet parses a rotation catalog from its text form. The format
// is line-oriented: a kind's single-letter name on its own line, followed
// by four 4x4 grids (rotation states in clockwise order) whose rows hold
// four tokens each, "0" for an occupied cell and "." for an empty one.
// Blank lines are ignored and "#" starts a comment. All seven kinds must
// appear exactly once; anything else is an error and no partial catalog
// is returned.
func ParsePieceSet(r io.Reader) (*PieceSet, error) {
	p := &rotationParser{scanner: bufio.NewScanner(r)}

	var (
		set  PieceSet
		seen [KindCount]bool
	)
	for n := range KindCount {
		line, err := p.next()
		if err == io.EOF {
			return nil, fmt.Errorf("tetris: rotation table ends after %d of %d pieces", n, KindCount)
		}
		if err != nil {
			return nil, err
		}
		kind, ok := kindFromName(line)
		if !ok {
			return nil, fmt.Errorf("tetris: line %d: unknown piece name %q", p.lineNo, line)
		}
		if seen[kind] {
			return nil, fmt.Errorf("tetris: line %d: duplicate piece %s", p.lineNo, kind)
		}
		seen[kind] = true

		for rot := range RotationCount {
			for row := range MaskSize {
				line, err := p.next()
				if err == io.EOF {
					return nil, fmt.Errorf("tetris: piece %s rotation %d: table ends mid-mask", kind, rot)
				}
				if err != nil {
					return nil, err
				}
				cells := strings.Fields(line)
				if len(cells) != MaskSize {
					return nil, fmt.Errorf("tetris: line %d: piece %s rotation %d: want %d cells per row, got %d",
						p.lineNo, kind, rot, MaskSize, len(cells))
				}
				for col, c := range cells {
					switch c {
					case "0":
						set[kind][rot][row][col] = true
					case ".":
					default:
						return nil, fmt.Errorf("tetris: line %d: piece %s rotation %d: unexpected cell %q",
							p.lineNo, kind, rot, c)
					}
				}
			}
		}
	}

	if line, err := p.next(); err == nil {
		return nil, fmt.Errorf("tetris: line %d: trailing content %q after all pieces", p.lineNo, line)
	} else if err != io.EOF {
		return nil, err
	}
	return &set, nil
}

// rotationParser walks a catalog line by line, dropping comments and
// blank lines and keeping count for error reporting.
type rotationParser struct {
	scanner *bufio.Scanner
	lineNo  int
}

// next returns the following meaningful line, or io.EOF.
func (p *rotationParser) next() (string, error) {
	for p.scanner.Scan() {
		p.lineNo++
		line := p.scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line != "" {
			return line, nil
		}
	}
	if err := p.scanner.Err(); err != nil {
		return "", fmt.Errorf("tetris: read rotation table: %w", err)
	}
	return "", io.EOF
}

func kindFromName(name string) (PieceKind, bool) {
	for k, n := range kindNames {
		if n == name {
			return PieceKind(k), true
		}
	}
	return 0, false
}
