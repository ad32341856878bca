package main

import (
	"carddeck/pkg/deck"
	"strings"

	"github.com/fatih/color"
)

var (
	redSuit   = color.New(color.FgRed, color.Bold)
	blackSuit = color.New(color.Bold)
	jokerCard = color.New(color.FgMagenta, color.Bold)
)

// formatCard renders the card with red hearts and diamonds
func formatCard(c deck.Card) string {
	switch {
	case c.IsJoker():
		return jokerCard.Sprint(c.String())
	case c.Suit() == deck.Hearts || c.Suit() == deck.Diamonds:
		return redSuit.Sprint(c.String())
	}

	return blackSuit.Sprint(c.String())
}

func formatCards(cards []deck.Card) string {
	s := make([]string, len(cards))
	for i, c := range cards {
		s[i] = formatCard(c)
	}

	return strings.Join(s, " ")
}
