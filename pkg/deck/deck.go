package deck

import (
	"carddeck/pkg/rng"
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	standardSize  = 52
	jokersPerDeck = 2
)

// Deck represents a playing deck: a draw pile and a discard pile
// A Deck is not safe for concurrent use
type Deck struct {
	id          string
	mode        Mode
	drawPile    []Card
	discardPile []Card
	rng         rng.Generator
	logger      logrus.FieldLogger
}

// Option configures a Deck
type Option func(d *Deck)

// WithGenerator sets the random number generator used by Shuffle()
func WithGenerator(g rng.Generator) Option {
	return func(d *Deck) {
		d.rng = g
	}
}

// WithSeed makes Shuffle() reproducible
// This should only be used by tests and demos
func WithSeed(seed int64) Option {
	return WithGenerator(rng.NewSeeded(seed))
}

// WithLogger sets the logger. A nil logger is ignored
func WithLogger(logger logrus.FieldLogger) Option {
	return func(d *Deck) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// New returns a new deck made of deckCount standard 52-card sets.
// If useJokers is true, two jokers are added per set.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New(deckCount int, useJokers bool, opts ...Option) (*Deck, error) {
	if deckCount < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDeckCount, deckCount)
	}

	mode := ModeStandard
	if useJokers {
		mode = ModeJokers
	}

	d := &Deck{
		id:     uuid.New().String(),
		mode:   mode,
		rng:    rng.Crypto{},
		logger: logrus.StandardLogger(),
	}

	for _, opt := range opts {
		opt(d)
	}

	d.buildDeck(deckCount)
	d.log().WithFields(logrus.Fields{
		"sets":  deckCount,
		"cards": len(d.drawPile),
		"mode":  d.mode.String(),
	}).Debug("built deck")

	return d, nil
}

func (d *Deck) buildDeck(deckCount int) {
	perDeck := standardSize
	if d.mode == ModeJokers {
		perDeck += jokersPerDeck
	}

	cards := make([]Card, 0, deckCount*perDeck)
	for i := 0; i < deckCount; i++ {
		for _, suit := range suits {
			for rank := Ace; rank <= King; rank++ {
				cards = append(cards, Card{rank: rank, suit: suit})
			}
		}

		if d.mode == ModeJokers {
			for j := 0; j < jokersPerDeck; j++ {
				cards = append(cards, NewJoker())
			}
		}
	}

	d.drawPile = cards
	d.discardPile = make([]Card, 0, len(cards))
}

func (d *Deck) log() logrus.FieldLogger {
	return d.logger.WithField("deck", d.id)
}

// ID returns a unique identifier for the deck
func (d *Deck) ID() string {
	return d.id
}

// Mode returns the mode the deck was built with
func (d *Deck) Mode() Mode {
	return d.mode
}

// Shuffle moves the discard pile back into the draw pile and shuffles the draw pile
func (d *Deck) Shuffle() {
	discards := len(d.discardPile)
	d.drawPile = append(d.drawPile, d.discardPile...)
	d.discardPile = d.discardPile[:0]

	for j := len(d.drawPile) - 1; j > 0; j-- {
		i := d.rng.Intn(j + 1)

		d.drawPile[i], d.drawPile[j] = d.drawPile[j], d.drawPile[i]
	}

	d.log().WithFields(logrus.Fields{
		"cards":    len(d.drawPile),
		"discards": discards,
	}).Debug("shuffled deck")
}

// Draw will draw the next card from the front of the draw pile
// If there are no more cards, ErrDeckExhausted is returned. The deck is never reshuffled automatically
func (d *Deck) Draw() (Card, error) {
	if len(d.drawPile) == 0 {
		d.log().WithField("discards", len(d.discardPile)).Debug("draw attempted on exhausted deck")
		return Card{}, ErrDeckExhausted
	}

	card := d.drawPile[0]
	d.drawPile = d.drawPile[1:]

	return card, nil
}

// AddToDiscard places the card on the discard pile
// The card is not checked against the cards this deck was built with
func (d *Deck) AddToDiscard(card Card) {
	d.discardPile = append(d.discardPile, card)
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.drawPile) >= want
}

// CardsLeft returns the number of cards left in the draw pile
func (d *Deck) CardsLeft() int {
	return len(d.drawPile)
}

// DiscardCount returns the number of cards in the discard pile
func (d *Deck) DiscardCount() int {
	return len(d.discardPile)
}

// DrawPile returns a copy of the draw pile, next card first
func (d *Deck) DrawPile() []Card {
	cards := make([]Card, len(d.drawPile))
	copy(cards, d.drawPile)
	return cards
}

// DiscardPile returns a copy of the discard pile in the order cards were discarded
func (d *Deck) DiscardPile() []Card {
	cards := make([]Card, len(d.discardPile))
	copy(cards, d.discardPile)
	return cards
}

// HashCode returns a SHA1 hash code of the draw pile.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.drawPile {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil))
}
