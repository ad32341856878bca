package deck

import (
	"fmt"
	"strconv"
)

// Suit represents a card suit
type Suit string

// suit constants
const (
	Hearts   Suit = "heart"
	Spades   Suit = "spade"
	Clubs    Suit = "club"
	Diamonds Suit = "diamond"

	// NoSuit is the suit of a joker
	NoSuit Suit = ""
)

// suits in the order a deck is built
var suits = [...]Suit{Hearts, Spades, Clubs, Diamonds}

// Suits returns the four suits in construction order
func Suits() []Suit {
	s := suits
	return s[:]
}

// IsValid returns true if the suit is one of the four standard suits
func (s Suit) IsValid() bool {
	for _, suit := range suits {
		if s == suit {
			return true
		}
	}

	return false
}

// ranks
const (
	Ace   = 1
	Jack  = 11
	Queen = 12
	King  = 13
	Joker = 14
)

// Mode determines which ranks are valid
type Mode int

// mode constants
const (
	ModeStandard Mode = iota
	ModeJokers
)

func (m Mode) String() string {
	switch m {
	case ModeStandard:
		return "standard"
	case ModeJokers:
		return "jokers"
	}

	return fmt.Sprintf("Mode(%d)", int(m))
}

func (m Mode) maxRank() int {
	if m == ModeJokers {
		return Joker
	}

	return King
}

// NewCard returns a card that is valid in the mode
func (m Mode) NewCard(rank int, suit Suit) (Card, error) {
	if rank < Ace || rank > m.maxRank() {
		return Card{}, fmt.Errorf("%w: %d is not valid in %s mode", ErrInvalidRank, rank, m)
	}

	if rank == Joker {
		if suit != NoSuit {
			return Card{}, fmt.Errorf("%w: a joker cannot be a %s", ErrInvalidSuit, suit)
		}

		return NewJoker(), nil
	}

	if !suit.IsValid() {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidSuit, string(suit))
	}

	return Card{rank: rank, suit: suit}, nil
}

// Card is an individual playing card
// A card never changes after it's built. Cards can be compared with ==
type Card struct {
	rank int
	suit Suit
}

// NewCard returns a standard (non-joker) card
func NewCard(rank int, suit Suit) (Card, error) {
	return ModeStandard.NewCard(rank, suit)
}

// NewJoker returns a joker
func NewJoker() Card {
	return Card{rank: Joker, suit: NoSuit}
}

// Rank returns the rank of the card
func (c Card) Rank() int {
	return c.rank
}

// Suit returns the suit of the card, NoSuit for jokers
func (c Card) Suit() Suit {
	return c.suit
}

// IsJoker returns true if the card is a joker
func (c Card) IsJoker() bool {
	return c.rank == Joker
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c Card) Equal(card Card) bool {
	return c == card
}

// Compare orders cards by rank, then by the standard suit ranking
// Returns -1 if c is lower than other, 0 if identical and 1 if higher
func (c Card) Compare(other Card) int {
	return c.CompareWith(other, StandardRanking())
}

// CompareWith is Compare with a substituted suit ranking
func (c Card) CompareWith(other Card, ranking SuitRanking) int {
	switch {
	case c.rank > other.rank:
		return 1
	case c.rank < other.rank:
		return -1
	}

	return ranking.Compare(c.suit, other.suit)
}

func (c Card) String() string {
	var rank string
	switch c.rank {
	case Ace:
		rank = "A"
	case Jack:
		rank = "J"
	case Queen:
		rank = "Q"
	case King:
		rank = "K"
	case Joker:
		return "JKR"
	default:
		rank = strconv.Itoa(c.rank)
	}

	var suit string
	switch c.suit {
	case Clubs:
		suit = "♣"
	case Diamonds:
		suit = "♢"
	case Hearts:
		suit = "♡"
	case Spades:
		suit = "♠"
	default:
		suit = "?"
	}

	return rank + suit
}
