package statement

import (
	"encoding/json"
	"fmt"
	"io"
)

// EncodePositions writes positions to w in JSONL format, one position per line.
func EncodePositions(w io.Writer, positions []Position) error {
	return encodeLines(w, "position", positions)
}

// EncodeTransactions writes transactions to w in JSONL format, one transaction per line.
func EncodeTransactions(w io.Writer, transactions []Transaction) error {
	return encodeLines(w, "transaction", transactions)
}

// EncodeDistribution writes buckets to w in JSONL format, one bucket per line.
func EncodeDistribution(w io.Writer, buckets []Bucket) error {
	return encodeLines(w, "bucket", buckets)
}

func encodeLines[T any](w io.Writer, kind string, records []T) error {
	for _, r := range records {
		jsonData, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("failed to marshal %s: %w", kind, err)
		}
		if _, err := w.Write(append(jsonData, '\n')); err != nil {
			return fmt.Errorf("failed to write %s: %w", kind, err)
		}
	}
	return nil
}
