// Package pdftext reads text out of PDF files page by page, preserving the
// horizontal position of each text fragment so callers can reconstruct both
// plain lines and column layouts.
package pdftext

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Word is a positioned text fragment on a page.
type Word struct {
	Text string
	X    float64 // left edge, PDF points
	Y    float64 // baseline, PDF points (origin bottom-left)
	W    float64 // rendered width, PDF points
}

// Line is one visual row of text, left to right.
type Line struct {
	Words []Word
	Y     float64
}

// Text joins the line's fragments with single spaces.
func (l Line) Text() string {
	parts := make([]string, 0, len(l.Words))
	for _, w := range l.Words {
		if s := strings.TrimSpace(w.Text); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// Page holds the ordered lines of a single PDF page.
type Page struct {
	Number int // 1-based page number
	Lines  []Line
}

// LineStrings returns the page's lines as plain text, top to bottom.
func (p Page) LineStrings() []string {
	out := make([]string, len(p.Lines))
	for i, l := range p.Lines {
		out[i] = l.Text()
	}
	return out
}

// Text returns the whole page as newline-joined text.
func (p Page) Text() string {
	return strings.Join(p.LineStrings(), "\n")
}

// Document is the extracted text of a whole PDF.
type Document struct {
	Path  string
	Pages []Page
}

// Load opens a PDF and extracts positioned text from every page. Pages whose
// content cannot be decoded come back empty rather than failing the whole
// document; malformed single pages are a routine hazard in scraped filings.
func Load(path string) (*Document, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pdf %s: %w", path, err)
	}
	defer f.Close()

	doc := &Document{Path: path}
	for num := 1; num <= reader.NumPage(); num++ {
		page := reader.Page(num)
		if page.V.IsNull() {
			doc.Pages = append(doc.Pages, Page{Number: num})
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			doc.Pages = append(doc.Pages, Page{Number: num})
			continue
		}

		p := Page{Number: num}
		for _, row := range rows {
			line := Line{Y: float64(row.Position)}
			for _, text := range row.Content {
				if text.S == "" {
					continue
				}
				line.Words = append(line.Words, Word{Text: text.S, X: text.X, Y: text.Y, W: text.W})
			}
			if len(line.Words) == 0 {
				continue
			}
			sort.SliceStable(line.Words, func(i, j int) bool {
				return line.Words[i].X < line.Words[j].X
			})
			p.Lines = append(p.Lines, line)
		}
		// GetTextByRow yields rows keyed by baseline position; order them
		// top of page first (PDF Y grows upward).
		sort.SliceStable(p.Lines, func(i, j int) bool {
			return p.Lines[i].Y > p.Lines[j].Y
		})
		doc.Pages = append(doc.Pages, p)
	}
	return doc, nil
}
