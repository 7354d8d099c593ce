package scraper

import (
	"errors"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/obsidianstack/wlxstat/internal/device"
)

var (
	// ErrSectionNotFound means no heading contains the section label.
	ErrSectionNotFound = errors.New("section not found")

	// ErrRowNotFound means no table cell in the section contains the row label.
	ErrRowNotFound = errors.New("row not found")

	// ErrValueNotFound means the label cell has no following cell.
	ErrValueNotFound = errors.New("value cell not found")
)

// Locator finds the text of the value cell for a section/row label pair.
// New device models only need new FieldRules as long as their pages share
// this heading + table layout.
type Locator interface {
	LocateFieldValue(doc *goquery.Document, section, row string) (string, error)
}

// TableLocator finds values laid out as
//
//	<h3>section</h3>
//	<table><tr><td>row</td><td>value</td></tr></table>
//
// All matches are by text containment and the first match in document order
// wins.
type TableLocator struct {
	// Heading is the selector for section headings. Defaults to h3.
	Heading string
}

// LocateFieldValue returns the trimmed text of the cell following the row
// label cell inside the first section whose heading contains section.
//
// The section block is the heading's following siblings up to the next
// heading. If the row is not found there and the heading's parent holds no
// other heading, the parent element is searched instead, which covers
// firmware that nests the title one level deeper than the table. A parent
// shared with other sections is never searched.
func (l TableLocator) LocateFieldValue(doc *goquery.Document, section, row string) (string, error) {
	heading := l.Heading
	if heading == "" {
		heading = device.DefaultHeading
	}

	h := doc.Find(heading).FilterFunction(func(_ int, s *goquery.Selection) bool {
		return strings.Contains(s.Text(), section)
	}).First()
	if h.Length() == 0 {
		return "", ErrSectionNotFound
	}

	label := findLabelCell(h.NextUntil(heading), row)
	if label.Length() == 0 {
		if parent := h.Parent(); parent.Find(heading).Length() == 1 {
			label = findLabelCell(parent, row)
		}
	}
	if label.Length() == 0 {
		return "", ErrRowNotFound
	}

	value := label.NextFiltered("td")
	if value.Length() == 0 {
		return "", ErrValueNotFound
	}
	return strings.TrimSpace(value.Text()), nil
}

// findLabelCell returns the first innermost td under block whose text contains
// label. Outer layout cells that merely wrap the matching cell are skipped.
func findLabelCell(block *goquery.Selection, label string) *goquery.Selection {
	contains := func(_ int, s *goquery.Selection) bool {
		return strings.Contains(s.Text(), label)
	}
	return block.Find("td").FilterFunction(func(i int, s *goquery.Selection) bool {
		return contains(i, s) && s.Find("td").FilterFunction(contains).Length() == 0
	}).First()
}
