package statement

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Vocabulary holds the literal labels a brokerage prints in its statements.
//
// Position rows start with one of the PositionLabels. Transaction rows carry a
// type marker that contains a buy or a sell marker, possibly surrounded by
// annotations.
type Vocabulary struct {
	PositionLabels []string `yaml:"position_labels"`
	BuyMarkers     []string `yaml:"buy_markers"`
	SellMarkers    []string `yaml:"sell_markers"`
	OtherLabel     string   `yaml:"other_label"` // label of the long tail bucket
}

// DefaultVocabulary returns the labels of the SinoPac monthly statement.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		PositionLabels: []string{"現股", "融資", "融券"}, // cash holding, margin buy, margin sell
		BuyMarkers:     []string{"買"},
		SellMarkers:    []string{"賣"},
		OtherLabel:     "Other",
	}
}

// DecodeVocabulary reads a YAML vocabulary. Keys missing in r keep their
// default value.
func DecodeVocabulary(r io.Reader) (Vocabulary, error) {
	v := DefaultVocabulary()
	if err := yaml.NewDecoder(r).Decode(&v); err != nil && !errors.Is(err, io.EOF) {
		return Vocabulary{}, fmt.Errorf("cannot decode vocabulary: %w", err)
	}
	if err := v.Validate(); err != nil {
		return Vocabulary{}, err
	}
	return v, nil
}

// Validate checks that every label set is usable.
func (v Vocabulary) Validate() error {
	switch {
	case len(v.PositionLabels) == 0:
		return errors.New("vocabulary: no position labels")
	case len(v.BuyMarkers) == 0:
		return errors.New("vocabulary: no buy markers")
	case len(v.SellMarkers) == 0:
		return errors.New("vocabulary: no sell markers")
	case v.OtherLabel == "":
		return errors.New("vocabulary: empty other label")
	}
	for _, m := range slices.Concat(v.BuyMarkers, v.SellMarkers) {
		if m == "" {
			// an empty marker is a substring of everything.
			return errors.New("vocabulary: empty trade marker")
		}
	}
	return nil
}

// TradeKind infers the kind of trade from a type marker token.
// Buy markers win over sell markers.
func (v Vocabulary) TradeKind(marker string) TradeKind {
	if containsAny(marker, v.BuyMarkers) {
		return Buy
	}
	if containsAny(marker, v.SellMarkers) {
		return Sell
	}
	return Other
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
