package extract

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"cse_insight/pkg/core/pdftext"
)

// Grid is a raw table: rows of cell strings, labels in column 0.
type Grid [][]string

// Outcome is the tagged result of one grid-extraction attempt. An attempt
// either succeeds with a usable grid, comes back empty, or errors; the caller
// chains backends and takes the first success.
type Outcome struct {
	Grid Grid
	Err  error
}

// OK reports whether the attempt produced a usable grid.
func (o Outcome) OK() bool {
	return o.Err == nil && usableGrid(o.Grid)
}

// A grid needs at least a header row plus two data rows, and a label column
// plus one value column, to be worth scanning.
func usableGrid(g Grid) bool {
	if len(g) < 3 {
		return false
	}
	for _, row := range g {
		if len(row) >= 2 {
			return true
		}
	}
	return false
}

// GridBackend recovers a cell grid from a page's positioned words.
type GridBackend interface {
	Name() string
	Extract(page pdftext.Page) Outcome
}

// FirstGrid runs backends in order and returns the first usable grid along
// with the winning backend's name. Empty and failed attempts fall through;
// results are never merged across backends.
func FirstGrid(page pdftext.Page, backends ...GridBackend) (Grid, string, error) {
	var lastErr error
	for _, b := range backends {
		out := b.Extract(page)
		if out.OK() {
			return out.Grid, b.Name(), nil
		}
		if out.Err != nil {
			lastErr = fmt.Errorf("%s backend: %w", b.Name(), out.Err)
		}
	}
	if lastErr != nil {
		return nil, "", lastErr
	}
	return nil, "", fmt.Errorf("no backend produced a table")
}

// DefaultBackends is the standard chain: column clustering first, word-gap
// splitting as the looser fallback.
func DefaultBackends() []GridBackend {
	return []GridBackend{NewColumnClusterBackend(), NewWordGapBackend()}
}

// =============================================================================
// COLUMN CLUSTER BACKEND
// =============================================================================

// ColumnClusterBackend reconstructs a grid from text alignment: word start
// positions that repeat across enough lines become column edges, and every
// word is binned into the nearest column. This mirrors a stream/whitespace
// table strategy and needs no ruled lines in the PDF.
type ColumnClusterBackend struct {
	SnapTolerance float64 // bin width for clustering word starts
	MinLines      int     // lines that must share a position to call it a column
}

func NewColumnClusterBackend() *ColumnClusterBackend {
	return &ColumnClusterBackend{SnapTolerance: 6.0, MinLines: 4}
}

func (b *ColumnClusterBackend) Name() string { return "column-cluster" }

func (b *ColumnClusterBackend) Extract(page pdftext.Page) Outcome {
	if len(page.Lines) == 0 {
		return Outcome{}
	}

	// Count snapped word-start positions across all lines. Column 0 (labels)
	// is excluded: label text starts ragged and would fragment the bins.
	counts := make(map[float64]int)
	for _, line := range page.Lines {
		seen := make(map[float64]bool)
		for i, w := range line.Words {
			if i == 0 {
				continue
			}
			pos := math.Round(w.X/b.SnapTolerance) * b.SnapTolerance
			if !seen[pos] {
				counts[pos]++
				seen[pos] = true
			}
		}
	}

	var edges []float64
	for pos, n := range counts {
		if n >= b.MinLines {
			edges = append(edges, pos)
		}
	}
	if len(edges) == 0 {
		return Outcome{}
	}
	sort.Float64s(edges)

	var grid Grid
	for _, line := range page.Lines {
		if len(line.Words) == 0 {
			continue
		}
		row := make([]string, len(edges)+1)
		for _, w := range line.Words {
			col := b.columnFor(w.X, edges)
			if row[col] != "" {
				row[col] += " "
			}
			row[col] += strings.TrimSpace(w.Text)
		}
		grid = append(grid, row)
	}
	return Outcome{Grid: grid}
}

// columnFor bins a word start into the label column (0) or the value column
// whose edge is the rightmost one at or left of the word, with half a bin of
// slack for jitter.
func (b *ColumnClusterBackend) columnFor(x float64, edges []float64) int {
	col := 0
	for i, edge := range edges {
		if x >= edge-b.SnapTolerance/2 {
			col = i + 1
		}
	}
	return col
}

// =============================================================================
// WORD GAP BACKEND
// =============================================================================

// WordGapBackend splits each line into cells wherever the horizontal gap
// between consecutive words exceeds a threshold. Rows come out ragged, so it
// runs after the cluster backend, but it survives pages whose columns do not
// align between the header and the body.
type WordGapBackend struct {
	GapThreshold float64 // points of whitespace that end a cell
}

func NewWordGapBackend() *WordGapBackend {
	return &WordGapBackend{GapThreshold: 14.0}
}

func (b *WordGapBackend) Name() string { return "word-gap" }

func (b *WordGapBackend) Extract(page pdftext.Page) Outcome {
	var grid Grid
	for _, line := range page.Lines {
		if len(line.Words) == 0 {
			continue
		}
		var row []string
		cell := strings.TrimSpace(line.Words[0].Text)
		prevEnd := line.Words[0].X + line.Words[0].W
		for _, w := range line.Words[1:] {
			if w.X-prevEnd > b.GapThreshold {
				row = append(row, cell)
				cell = strings.TrimSpace(w.Text)
			} else {
				cell += " " + strings.TrimSpace(w.Text)
			}
			prevEnd = w.X + w.W
		}
		row = append(row, cell)
		grid = append(grid, row)
	}
	return Outcome{Grid: grid}
}
