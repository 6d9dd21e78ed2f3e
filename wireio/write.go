package wireio

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/lvlath/grid"
	"github.com/katalvlaran/lvlath/wire"
)

// WriteCostFile writes g's snapshot to path in the reference's cost-file
// format: a "dim_y dim_x" header, then dim_y rows of dim_x space-separated
// integers, each row ending with a trailing space before its newline.
//
// Complexity: O(dim_x*dim_y).
func WriteCostFile(path string, g *grid.CostGrid) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := EncodeCostFile(w, g); err != nil {
		return err
	}
	return w.Flush()
}

// EncodeCostFile writes the same format as WriteCostFile to an arbitrary
// writer, letting callers capture the output in memory (tests) without
// touching the filesystem.
func EncodeCostFile(w io.Writer, g *grid.CostGrid) error {
	if _, err := fmt.Fprintf(w, "%d %d\n", g.DimY, g.DimX); err != nil {
		return err
	}

	for _, row := range g.Snapshot() {
		for _, v := range row {
			if _, err := fmt.Fprintf(w, "%d ", v); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// WriteWiresFile writes wires to path in the reference's wires-file format:
// a "dim_y dim_x" header, a "num_wires " line, then one line per wire of
// space-separated "x y" pairs walking its committed path from Start to End,
// each line ending with a trailing space before its newline.
//
// Complexity: O(sum of wire path lengths).
func WriteWiresFile(path string, dimX, dimY int, wires []*wire.Wire) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := EncodeWiresFile(w, dimX, dimY, wires); err != nil {
		return err
	}
	return w.Flush()
}

// EncodeWiresFile writes the same format as WriteWiresFile to an arbitrary
// writer.
func EncodeWiresFile(w io.Writer, dimX, dimY int, wires []*wire.Wire) error {
	if _, err := fmt.Fprintf(w, "%d %d\n", dimY, dimX); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%d \n", len(wires)); err != nil {
		return err
	}

	for _, wr := range wires {
		cells, err := wire.Cells(wr)
		if err != nil {
			return err
		}
		for _, c := range cells {
			if _, err := fmt.Fprintf(w, "%d %d ", c.X, c.Y); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
