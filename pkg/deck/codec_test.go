package deck

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestParseCard(t *testing.T) {
	a := assert.New(t)

	card, err := ParseCard("13S")
	a.NoError(err)
	a.Equal(King, card.Rank())
	a.Equal(Spades, card.Suit())

	card, err = ParseCard(" JK ")
	a.NoError(err)
	a.True(card.IsJoker())

	for _, s := range []string{"", "0h", "14h", "5x", "h5", "5hh", "jkh"} {
		_, err := ParseCard(s)
		a.Error(err, s)
	}

	a.Panics(func() {
		CardFromString("bad")
	})
}

func TestCardsToString(t *testing.T) {
	a := assert.New(t)

	cards := CardsFromString("1h,13s,10d,2c,jk")
	a.Len(cards, 5)
	a.Equal("1h,13s,10d,2c,jk", CardsToString(cards))

	a.Equal([]Card{}, CardsFromString(""))
	a.Equal("", CardsToString(nil))
}
