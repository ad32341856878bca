// Package table deals hands from a single deck to a fixed set of seats
// It has no game rules: no betting, scoring or turn order beyond round-robin dealing
package table

import (
	"carddeck/internal/util"
	"carddeck/pkg/deck"
	"carddeck/pkg/rng"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Options configure a table
type Options struct {
	Decks    int
	Jokers   bool
	Seats    int
	HandSize int

	// Seed makes names and shuffles reproducible when non-zero
	Seed      int64
	// Generator overrides Seed
	Generator rng.Generator
}

// DefaultOptions returns a single deck, four seats and five card hands
func DefaultOptions() Options {
	return Options{
		Decks:    1,
		Seats:    4,
		HandSize: 5,
	}
}

// Seat is a named hand at the table
type Seat struct {
	Name string
	Hand *deck.Hand
}

// Table owns a deck and the seats drawing from it
// A Table is not safe for concurrent use
type Table struct {
	options Options
	deck    *deck.Deck
	seats   []*Seat
	logger  logrus.FieldLogger
	rounds  []*Round
}

// New returns a table with an unshuffled deck and empty hands
func New(logger logrus.FieldLogger, options Options) (*Table, error) {
	if options.Seats < 1 {
		return nil, errors.New("table requires at least one seat")
	}

	if options.HandSize < 0 {
		return nil, errors.New("hand size must be >= 0")
	}

	g := options.Generator
	if g == nil {
		if options.Seed != 0 {
			g = rng.NewSeeded(options.Seed)
		} else {
			g = rng.Crypto{}
		}
	}

	d, err := deck.New(options.Decks, options.Jokers, deck.WithGenerator(g), deck.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	names := util.GetRandomNames(g, options.Seats)
	seats := make([]*Seat, len(names))
	for i, name := range names {
		seats[i] = &Seat{
			Name: name,
			Hand: deck.NewHand(),
		}
	}

	return &Table{
		options: options,
		deck:    d,
		seats:   seats,
		logger:  logger.WithField("deck", d.ID()),
	}, nil
}

// Deck returns the table's deck
func (t *Table) Deck() *deck.Deck {
	return t.deck
}

// Seats returns the seats in dealing order
func (t *Table) Seats() []*Seat {
	seats := make([]*Seat, len(t.seats))
	copy(seats, t.seats)
	return seats
}

// Rounds returns every round played so far
func (t *Table) Rounds() []*Round {
	rounds := make([]*Round, len(t.rounds))
	copy(rounds, t.rounds)
	return rounds
}

// Deal deals HandSize cards to each seat, one card at a time
// If the deck runs out, deck.ErrDeckExhausted is returned and the cards already dealt stay in the hands
func (t *Table) Deal() error {
	for i := 0; i < t.options.HandSize; i++ {
		for _, seat := range t.seats {
			if err := seat.Hand.Draw(t.deck); err != nil {
				t.logger.WithFields(logrus.Fields{
					"seat": seat.Name,
					"card": i + 1,
				}).Warn("deck ran out while dealing")

				return err
			}
		}
	}

	return nil
}

// DiscardAll returns every seat's cards to the deck's discard pile
func (t *Table) DiscardAll() int {
	n := 0
	for _, seat := range t.seats {
		n += seat.Hand.DiscardAll(t.deck)
	}

	return n
}

// Total returns the number of cards in the draw pile, the discard pile and all hands
func (t *Table) Total() int {
	n := t.deck.CardsLeft() + t.deck.DiscardCount()
	for _, seat := range t.seats {
		n += seat.Hand.Len()
	}

	return n
}

// Play runs the rounds. Each round shuffles, deals, records the hands and discards them
func (t *Table) Play(rounds int) ([]*Round, error) {
	played := make([]*Round, 0, rounds)
	for i := 0; i < rounds; i++ {
		round, err := t.playRound()
		if err != nil {
			return played, err
		}

		played = append(played, round)
	}

	return played, nil
}

func (t *Table) playRound() (*Round, error) {
	number := len(t.rounds) + 1
	log := t.logger.WithField("round", number)

	t.deck.Shuffle()
	if err := t.Deal(); err != nil {
		t.DiscardAll()
		return nil, fmt.Errorf("round %d: %w", number, err)
	}

	round := newRound(number, t.seats, t.deck)
	t.rounds = append(t.rounds, round)

	discarded := t.DiscardAll()
	log.WithFields(logrus.Fields{
		"cardsLeft": round.CardsLeft,
		"discarded": discarded,
	}).Info("played round")

	return round, nil
}
