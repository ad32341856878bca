package table

import "carddeck/pkg/deck"

// Round is the record of a single deal
type Round struct {
	Number    int         `json:"number"`
	Hands     []RoundHand `json:"hands"`
	CardsLeft int         `json:"cardsLeft"`
}

// RoundHand is what one seat was dealt, lowest card first
type RoundHand struct {
	Seat  string `json:"seat"`
	Cards string `json:"cards"`
}

func newRound(number int, seats []*Seat, d *deck.Deck) *Round {
	hands := make([]RoundHand, len(seats))
	for i, seat := range seats {
		hands[i] = RoundHand{
			Seat:  seat.Name,
			Cards: deck.CardsToString(seat.Hand.Sorted()),
		}
	}

	return &Round{
		Number:    number,
		Hands:     hands,
		CardsLeft: d.CardsLeft(),
	}
}
