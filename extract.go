package statement

// Outcome is the result of parsing a single candidate row.
//
// Exactly one of Position or Transaction is set when Err is nil.
type Outcome struct {
	Page, Table, Row int // location of the row in the document, 0 based
	Shape            Shape
	Tokens           []string
	Position         *Position
	Transaction      *Transaction
	Err              error
}

// Dropped reports whether the row was a candidate that failed to parse.
func (o Outcome) Dropped() bool { return o.Err != nil }

// ParseRow tokenizes, classifies and parses a single row. The returned Shape
// is Ignore for rows that are not records; no parsing is attempted for them.
func (v Vocabulary) ParseRow(row RawRow) Outcome {
	if row.leadless() {
		return Outcome{Shape: Ignore}
	}
	tokens := Tokenize(row)
	o := Outcome{Shape: v.Classify(tokens), Tokens: tokens}
	switch o.Shape {
	case PositionCandidate:
		p, err := ParsePosition(tokens)
		if err != nil {
			o.Err = err
			break
		}
		o.Position = &p
	case TransactionCandidate:
		t, err := v.ParseTransaction(tokens)
		if err != nil {
			o.Err = err
			break
		}
		o.Transaction = &t
	}
	return o
}

// Statement holds the records extracted from a Document.
type Statement struct {
	Positions    []Position
	Transactions []Transaction
	// Outcomes has one entry per candidate row, including dropped ones.
	Outcomes []Outcome

	otherLabel string
}

// Extract parses every row of doc, in page, table and row order.
//
// Extraction is best effort: rows that do not parse are recorded as dropped
// outcomes and never stop the extraction.
func Extract(doc Document, voc Vocabulary) *Statement {
	s := &Statement{otherLabel: voc.OtherLabel}
	for i, page := range doc {
		for j, table := range page {
			for k, row := range table {
				o := voc.ParseRow(row)
				if o.Shape == Ignore {
					continue
				}
				o.Page, o.Table, o.Row = i, j, k
				s.Outcomes = append(s.Outcomes, o)
				switch {
				case o.Position != nil:
					s.Positions = append(s.Positions, *o.Position)
				case o.Transaction != nil:
					s.Transactions = append(s.Transactions, *o.Transaction)
				}
			}
		}
	}
	return s
}

// Dropped returns the outcomes of candidate rows that failed to parse.
func (s *Statement) Dropped() []Outcome {
	var dropped []Outcome
	for _, o := range s.Outcomes {
		if o.Dropped() {
			dropped = append(dropped, o)
		}
	}
	return dropped
}

// PositionSummary returns the roll-up of the positions.
func (s *Statement) PositionSummary() PositionSummary { return SummarizePositions(s.Positions) }

// TransactionSummary returns the roll-up of the transactions.
func (s *Statement) TransactionSummary() TransactionSummary {
	return SummarizeTransactions(s.Transactions)
}

// Distribution returns the positions market value distribution, grouping
// positions below OtherThreshold.
func (s *Statement) Distribution() []Bucket {
	label := s.otherLabel
	if label == "" {
		label = DefaultVocabulary().OtherLabel
	}
	return Distribute(s.Positions, OtherThreshold, label)
}
