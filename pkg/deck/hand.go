package deck

import (
	"fmt"
	"slices"
)

// Pile is where a hand draws from and discards to
// *Deck is a Pile
type Pile interface {
	Draw() (Card, error)
	AddToDiscard(card Card)
}

// Hand represents the cards held by one player, in the order they were drawn
// A Hand is not safe for concurrent use
type Hand struct {
	cards []Card
}

// NewHand returns an empty hand
func NewHand() *Hand {
	return &Hand{
		cards: make([]Card, 0),
	}
}

// Draw draws a card from the pile and adds it to the end of the hand
// Errors from the pile are returned as is and the hand is not changed
func (h *Hand) Draw(p Pile) error {
	card, err := p.Draw()
	if err != nil {
		return err
	}

	h.cards = append(h.cards, card)
	return nil
}

// Discard removes the card at index and places it on the pile's discard pile
func (h *Hand) Discard(p Pile, index int) (Card, error) {
	if index < 0 || index >= len(h.cards) {
		return Card{}, fmt.Errorf("%w: %d, hand has %d cards", ErrIndexOutOfRange, index, len(h.cards))
	}

	card := h.cards[index]
	h.cards = slices.Delete(h.cards, index, index+1)
	p.AddToDiscard(card)

	return card, nil
}

// DiscardAll moves every card in the hand to the pile's discard pile
// Returns the number of cards discarded
func (h *Hand) DiscardAll(p Pile) int {
	n := len(h.cards)
	for _, card := range h.cards {
		p.AddToDiscard(card)
	}

	h.cards = h.cards[:0]
	return n
}

// Len returns the number of cards in the hand
func (h *Hand) Len() int {
	return len(h.cards)
}

// Cards returns a copy of the cards in draw order
func (h *Hand) Cards() []Card {
	return slices.Clone(h.cards)
}

// HasCard returns true if the hand contains the specified card
func (h *Hand) HasCard(card Card) bool {
	return slices.Contains(h.cards, card)
}

// Sorted returns a copy of the cards, lowest first
func (h *Hand) Sorted() []Card {
	cards := slices.Clone(h.cards)
	slices.SortStableFunc(cards, Card.Compare)
	return cards
}

func (h *Hand) String() string {
	return CardsToString(h.cards)
}

// Criteria selects cards in Search. Zero-valued fields are ignored
type Criteria struct {
	Card *Card
	Rank int
	Suit Suit
}

func (c Criteria) matches(card Card) bool {
	if c.Card != nil && *c.Card != card {
		return false
	}

	if c.Rank != 0 && c.Rank != card.rank {
		return false
	}

	if c.Suit != NoSuit && c.Suit != card.suit {
		return false
	}

	return true
}

// Match is a card found by Search and its position in the hand
type Match struct {
	Card  Card
	Index int
}

// Search returns every card that matches all of the criteria that were set
// An empty Criteria matches every card. If nothing matches, an empty slice is returned
func (h *Hand) Search(c Criteria) []Match {
	matches := make([]Match, 0)
	for i, card := range h.cards {
		if c.matches(card) {
			matches = append(matches, Match{Card: card, Index: i})
		}
	}

	return matches
}
