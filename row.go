package statement

import "strings"

// RawRow is a table row as produced by the table extractor: an ordered list of
// optional cells. A nil cell is a cell the extractor could not fill.
type RawRow []*string

// Table is a sequence of rows, in extraction order.
type Table []RawRow

// Page is the sequence of tables found on a single page.
type Page []Table

// Document is the sequence of pages of a statement.
type Document []Page

// Row builds a RawRow where every cell is present.
func Row(cells ...string) RawRow {
	r := make(RawRow, len(cells))
	for i := range cells {
		r[i] = &cells[i]
	}
	return r
}

// Cell returns a pointer to c, to build rows with absent cells.
func Cell(c string) *string { return &c }

// Tokenize joins the row's present cells with a space and splits the result on
// whitespace. The extractor often splits or merges cells inconsistently, tokens
// are the stable view of a row.
func Tokenize(r RawRow) []string {
	parts := make([]string, 0, len(r))
	for _, c := range r {
		if c != nil {
			parts = append(parts, *c)
		}
	}
	return strings.Fields(strings.Join(parts, " "))
}

// leadless reports whether the row has no leading cell. Such rows are
// discarded before tokenization.
func (r RawRow) leadless() bool {
	return len(r) == 0 || r[0] == nil || *r[0] == ""
}
