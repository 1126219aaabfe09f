package statement

// OtherThreshold is the share of the total market value under which a
// position is grouped into the long tail bucket.
const OtherThreshold = 0.02

// Bucket is a labeled value of a chart ready distribution.
type Bucket struct {
	Label string
	Value int64
}

func (b Bucket) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("label", b.Label)
	w.Append("value", b.Value)
	return w.MarshalJSON()
}

// Distribute returns one bucket per position whose market value share is at
// least threshold, in input order, followed by a single bucket labeled other
// summing the remaining positions, if any.
//
// The distribution of positions with no total market value is empty.
func Distribute(positions []Position, threshold float64, other string) []Bucket {
	var total int64
	for _, p := range positions {
		total += p.MarketValue
	}
	if total == 0 {
		return nil
	}

	var (
		buckets []Bucket
		tail    int64
		small   bool
	)
	for _, p := range positions {
		if float64(p.MarketValue)/float64(total) >= threshold {
			buckets = append(buckets, Bucket{Label: p.Name, Value: p.MarketValue})
			continue
		}
		small = true
		tail += p.MarketValue
	}
	if small {
		buckets = append(buckets, Bucket{Label: other, Value: tail})
	}
	return buckets
}
