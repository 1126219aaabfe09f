package statement

import (
	"slices"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		row  RawRow
		want []string
	}{
		{"empty", RawRow{}, []string{}},
		{"only absent cells", RawRow{nil, nil}, []string{}},
		{"only blank cells", Row("", "  "), []string{}},
		{"one token per cell", Row("a", "b", "c"), []string{"a", "b", "c"}},
		{"merged cells are split", Row("現股 2330", "台積電"), []string{"現股", "2330", "台積電"}},
		{"absent cells are skipped", RawRow{Cell("a"), nil, Cell("b")}, []string{"a", "b"}},
		{"whitespace runs collapse", Row(" a\t\tb ", "\nc"), []string{"a", "b", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.row)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Tokenize() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRawRow_leadless(t *testing.T) {
	tests := []struct {
		row  RawRow
		want bool
	}{
		{RawRow{}, true},
		{RawRow{nil, Cell("a")}, true},
		{Row("", "a"), true},
		{Row("a"), false},
		{Row(" ", "a"), false},
	}
	for _, tt := range tests {
		if got := tt.row.leadless(); got != tt.want {
			t.Errorf("%q.leadless() = %v, want %v", Tokenize(tt.row), got, tt.want)
		}
	}
}
