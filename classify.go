package statement

import (
	"regexp"
	"slices"
	"strings"
)

// Shape is the kind of record a row looks like.
type Shape int

const (
	Ignore Shape = iota
	PositionCandidate
	TransactionCandidate
)

func (s Shape) String() string {
	switch s {
	case PositionCandidate:
		return "position"
	case TransactionCandidate:
		return "transaction"
	default:
		return "ignore"
	}
}

// shortRow is the largest token count of a row that cannot hold a record.
const shortRow = 5

var tradeDate = regexp.MustCompile(`^\d{4}/\d{2}/\d{2}$`)

// Classify decides what kind of record tokens may hold.
//
// Headers, subtotals and separators are the common case in extracted tables,
// they are classified as Ignore.
func (v Vocabulary) Classify(tokens []string) Shape {
	if len(tokens) <= shortRow {
		return Ignore
	}
	lead := tokens[0]
	if slices.Contains(v.PositionLabels, lead) && !strings.Contains(lead, "/") {
		return PositionCandidate
	}
	if tradeDate.MatchString(lead) {
		return TransactionCandidate
	}
	return Ignore
}
