// Package source decodes statement documents produced by external table
// extractors.
//
// A JSON table dump is an array of pages, each an array of tables, each an
// array of rows, each an array of cells. A cell is a string or null, the way
// pdfplumber's extract_tables reports it. Dumps wrapped in a larger object
// are supported with a JSONPath selector that must yield the pages array.
//
// A CSV file is a single table, on its own page.
package source

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/statement"
)

// DecodeJSON reads a JSON table dump. selector is a JSONPath expression
// applied to the decoded value; "" and "$" select the whole value.
func DecodeJSON(r io.Reader, selector string) (statement.Document, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("cannot decode table dump: %w", err)
	}
	if selector != "" && selector != "$" {
		var err error
		v, err = jsonpath.Get(selector, v)
		if err != nil {
			return nil, fmt.Errorf("cannot select %q in table dump: %w", selector, err)
		}
	}
	return toDocument(v)
}

// DecodeCSV reads each reader as a table on its own page.
func DecodeCSV(readers ...io.Reader) (statement.Document, error) {
	doc := make(statement.Document, 0, len(readers))
	for i, r := range readers {
		cr := csv.NewReader(r)
		cr.FieldsPerRecord = -1
		cr.LazyQuotes = true
		records, err := cr.ReadAll()
		if err != nil {
			return nil, fmt.Errorf("cannot read CSV table %d: %w", i, err)
		}
		table := make(statement.Table, 0, len(records))
		for _, rec := range records {
			row := make(statement.RawRow, len(rec))
			for j, c := range rec {
				if c != "" {
					row[j] = statement.Cell(c)
				}
			}
			table = append(table, row)
		}
		doc = append(doc, statement.Page{table})
	}
	return doc, nil
}

// DecodeFile reads a document from a file, choosing the decoder from the file
// extension: ".json" for table dumps, ".csv" for single tables. name "-"
// reads a JSON table dump from stdin.
func DecodeFile(name, selector string) (statement.Document, error) {
	if name == "-" {
		return DecodeJSON(os.Stdin, selector)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".json":
		return DecodeJSON(f, selector)
	case ".csv":
		return DecodeCSV(f)
	default:
		return nil, fmt.Errorf("unsupported document format %q", ext)
	}
}

func toDocument(v any) (statement.Document, error) {
	pages, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("table dump: expected an array of pages, got %T", v)
	}
	doc := make(statement.Document, 0, len(pages))
	for i, p := range pages {
		tables, ok := p.([]any)
		if !ok {
			return nil, fmt.Errorf("table dump: page %d: expected an array of tables, got %T", i, p)
		}
		page := make(statement.Page, 0, len(tables))
		for j, t := range tables {
			rows, ok := t.([]any)
			if !ok {
				return nil, fmt.Errorf("table dump: page %d table %d: expected an array of rows, got %T", i, j, t)
			}
			table := make(statement.Table, 0, len(rows))
			for k, r := range rows {
				row, err := toRow(r)
				if err != nil {
					return nil, fmt.Errorf("table dump: page %d table %d row %d: %w", i, j, k, err)
				}
				table = append(table, row)
			}
			page = append(page, table)
		}
		doc = append(doc, page)
	}
	return doc, nil
}

func toRow(v any) (statement.RawRow, error) {
	cells, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("expected an array of cells, got %T", v)
	}
	row := make(statement.RawRow, len(cells))
	for i, c := range cells {
		switch c := c.(type) {
		case nil:
		case string:
			row[i] = statement.Cell(c)
		case json.Number:
			row[i] = statement.Cell(c.String())
		case bool:
			row[i] = statement.Cell(fmt.Sprint(c))
		default:
			return nil, fmt.Errorf("cell %d: unexpected %T", i, c)
		}
	}
	return row, nil
}
