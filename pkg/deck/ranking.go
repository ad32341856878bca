package deck

import "fmt"

// SuitRanking breaks ties between cards of the same rank
// The zero value behaves like StandardRanking()
type SuitRanking struct {
	// highest first
	order [len(suits)]Suit
}

var standardRanking = mustSuitRanking(Hearts, Diamonds, Spades, Clubs)

// StandardRanking returns heart > diamond > spade > club
func StandardRanking() SuitRanking {
	return standardRanking
}

// NewSuitRanking builds a ranking from the suits listed highest to lowest
// Every suit must be listed exactly once
func NewSuitRanking(highToLow ...Suit) (SuitRanking, error) {
	var r SuitRanking
	if len(highToLow) != len(r.order) {
		return SuitRanking{}, fmt.Errorf("%w: expected %d suits, got %d", ErrInvalidRanking, len(r.order), len(highToLow))
	}

	seen := make(map[Suit]bool, len(highToLow))
	for i, suit := range highToLow {
		if !suit.IsValid() {
			return SuitRanking{}, fmt.Errorf("%w: unknown suit %q", ErrInvalidRanking, string(suit))
		}

		if seen[suit] {
			return SuitRanking{}, fmt.Errorf("%w: %s listed twice", ErrInvalidRanking, suit)
		}

		seen[suit] = true
		r.order[i] = suit
	}

	return r, nil
}

func mustSuitRanking(highToLow ...Suit) SuitRanking {
	r, err := NewSuitRanking(highToLow...)
	if err != nil {
		panic(err)
	}

	return r
}

// Value returns the numeric rank of the suit, 0 for the lowest suit
// NoSuit (jokers) returns -1
func (r SuitRanking) Value(s Suit) int {
	if r == (SuitRanking{}) {
		r = standardRanking
	}

	for i, suit := range r.order {
		if suit == s {
			return len(r.order) - 1 - i
		}
	}

	return -1
}

// Compare returns -1, 0 or 1 comparing suit a to suit b
func (r SuitRanking) Compare(a, b Suit) int {
	va, vb := r.Value(a), r.Value(b)
	switch {
	case va > vb:
		return 1
	case va < vb:
		return -1
	}

	return 0
}
