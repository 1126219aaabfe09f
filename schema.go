package statement

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// ErrTooShort is returned for candidate rows with fewer tokens than their schema requires.
	ErrTooShort = errors.New("row too short")
	// ErrNotNumeric is returned for a numeric field holding something else.
	ErrNotNumeric = errors.New("not a number")
)

// FieldError reports a required field that could not be parsed.
type FieldError struct {
	Field string // field name, as in the column list
	Value string // offending token
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %s: cannot parse %q: %v", e.Field, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// field describes how a single token of a row is stored into a record R.
type field[R any] struct {
	index int
	name  string
	set   func(r *R, token string) error
}

// schema is the fixed-width layout of a record kind.
type schema[R any] []field[R]

// width returns the number of tokens required by the schema.
func (s schema[R]) width() int {
	w := 0
	for _, f := range s {
		w = max(w, f.index+1)
	}
	return w
}

// parse fills a new R from tokens. Parsing is all or nothing: the first field
// in error is returned and the record discarded.
func (s schema[R]) parse(tokens []string) (r R, err error) {
	if w := s.width(); len(tokens) < w {
		return r, fmt.Errorf("%w: %d tokens, need %d", ErrTooShort, len(tokens), w)
	}
	for _, f := range s {
		token := tokens[f.index]
		if err := f.set(&r, token); err != nil {
			var zero R
			return zero, &FieldError{Field: f.name, Value: token, Err: err}
		}
	}
	return r, nil
}

func textField[R any](index int, name string, dst func(*R) *string) field[R] {
	return field[R]{index: index, name: name, set: func(r *R, token string) error {
		*dst(r) = token
		return nil
	}}
}

func decimalField[R any](index int, name string, dst func(*R) *decimal.Decimal) field[R] {
	return field[R]{index: index, name: name, set: func(r *R, token string) (err error) {
		*dst(r), err = parseDecimal(token)
		return
	}}
}

func integerField[R any](index int, name string, dst func(*R) *int64) field[R] {
	return field[R]{index: index, name: name, set: func(r *R, token string) (err error) {
		*dst(r), err = parseInteger(token)
		return
	}}
}

// parseDecimal parses a locale formatted number, like "1,234.5".
func parseDecimal(token string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.ReplaceAll(token, ",", ""))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrNotNumeric, err)
	}
	return d, nil
}

// parseInteger parses a locale formatted number and truncates it toward zero.
// Values beyond the int64 range are rejected.
func parseInteger(token string) (int64, error) {
	d, err := parseDecimal(token)
	if err != nil {
		return 0, err
	}
	i := d.BigInt()
	if !i.IsInt64() {
		return 0, fmt.Errorf("%w: %s overflows int64", ErrNotNumeric, i)
	}
	return i.Int64(), nil
}
