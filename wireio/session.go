package wireio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/lvlath/wire"
)

// Session is the parsed contents of an input session file: the grid
// dimensions the reference reads as "dim_y dim_x" followed by num_wires
// endpoint quadruples.
type Session struct {
	DimX, DimY int
	Wires      []*wire.Wire
}

// tokenReader pulls whitespace-delimited integer tokens off an underlying
// reader, mirroring fscanf("%d")'s tolerance for arbitrary runs of
// whitespace (including newlines) between fields.
type tokenReader struct {
	sc *bufio.Scanner
}

func newTokenReader(r io.Reader) *tokenReader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &tokenReader{sc: sc}
}

func (t *tokenReader) nextInt() (int, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return 0, err
		}
		return 0, ErrTruncated
	}
	v, err := strconv.Atoi(t.sc.Text())
	if err != nil {
		return 0, fmt.Errorf("wireio: %w: %q", ErrBadWireLine, t.sc.Text())
	}
	return v, nil
}

// ReadSession parses an input session file at path: a "dim_y dim_x"
// header, a num_wires line, then num_wires lines of "sx sy ex ey"
// endpoint quadruples — exactly the format
// original_source/code/wireroute.cpp reads with fscanf.
//
// Complexity: O(num_wires).
func ReadSession(path string) (*Session, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ParseSession(f)
}

// ParseSession parses the same format as ReadSession from an arbitrary
// reader, letting callers feed in-memory buffers (tests, embedded
// fixtures) without touching the filesystem.
func ParseSession(r io.Reader) (*Session, error) {
	tr := newTokenReader(r)

	dimY, err := tr.nextInt()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadHeader, err)
	}
	dimX, err := tr.nextInt()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadHeader, err)
	}
	if dimX <= 0 || dimY <= 0 {
		return nil, ErrBadHeader
	}

	numWires, err := tr.nextInt()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadWireCount, err)
	}
	if numWires < 0 {
		return nil, ErrBadWireCount
	}

	wires := make([]*wire.Wire, 0, numWires)
	for i := 0; i < numWires; i++ {
		sx, err := tr.nextInt()
		if err != nil {
			return nil, fmt.Errorf("%w: wire %d: %v", ErrBadWireLine, i, err)
		}
		sy, err := tr.nextInt()
		if err != nil {
			return nil, fmt.Errorf("%w: wire %d: %v", ErrBadWireLine, i, err)
		}
		ex, err := tr.nextInt()
		if err != nil {
			return nil, fmt.Errorf("%w: wire %d: %v", ErrBadWireLine, i, err)
		}
		ey, err := tr.nextInt()
		if err != nil {
			return nil, fmt.Errorf("%w: wire %d: %v", ErrBadWireLine, i, err)
		}
		wires = append(wires, wire.NewWire(
			wire.Cell{X: sx, Y: sy},
			wire.Cell{X: ex, Y: ey},
		))
	}

	return &Session{DimX: dimX, DimY: dimY, Wires: wires}, nil
}
