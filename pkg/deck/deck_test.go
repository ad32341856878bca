package deck

import (
	"carddeck/pkg/rng"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"testing"
)

// fixedGenerator always returns the same offset from the top of the range
type fixedGenerator int

func (f fixedGenerator) Intn(n int) int {
	if int(f) >= n {
		return n - 1
	}

	return int(f)
}

func TestNewDeck(t *testing.T) {
	a := assert.New(t)
	deck, err := New(1, false)
	a.NoError(err)

	a.Equal(52, deck.CardsLeft())
	a.Equal(0, deck.DiscardCount())
	a.Equal(ModeStandard, deck.Mode())
	a.NotEmpty(deck.ID())

	cards := deck.DrawPile()
	a.Equal(CardFromString("1h"), cards[0])
	a.Equal(CardFromString("13h"), cards[12])
	a.Equal(CardFromString("1s"), cards[13])
	a.Equal(CardFromString("1c"), cards[26])
	a.Equal(CardFromString("13d"), cards[51])

	a.Equal("f23850d6025b77f9f4f53d1114acce763d3fb7fe", deck.HashCode())

	seen := make(map[Card]int)
	for _, card := range cards {
		seen[card]++
	}

	a.Len(seen, 52)
	for card, count := range seen {
		a.Equal(1, count, card.String())
	}
}

func TestNewDeck_multiple(t *testing.T) {
	a := assert.New(t)
	deck, err := New(2, false)
	a.NoError(err)
	a.Equal(104, deck.CardsLeft())

	seen := make(map[Card]int)
	for _, card := range deck.DrawPile() {
		seen[card]++
	}

	a.Len(seen, 52)
	for card, count := range seen {
		a.Equal(2, count, card.String())
	}

	cards := deck.DrawPile()
	a.Equal(cards[:52], cards[52:])
}

func TestNewDeck_jokers(t *testing.T) {
	a := assert.New(t)
	deck, err := New(2, true)
	a.NoError(err)
	a.Equal(108, deck.CardsLeft())
	a.Equal(ModeJokers, deck.Mode())

	cards := deck.DrawPile()
	a.Equal(NewJoker(), cards[52])
	a.Equal(NewJoker(), cards[53])
	a.Equal(CardFromString("1h"), cards[54])
	a.Equal(NewJoker(), cards[106])
	a.Equal(NewJoker(), cards[107])

	one, _ := New(1, true)
	a.Equal("1ec1fea858001904db6244bcce08865714a532d2", one.HashCode())
}

func TestNewDeck_invalidCount(t *testing.T) {
	a := assert.New(t)

	for _, n := range []int{0, -1} {
		deck, err := New(n, false)
		a.Nil(deck)
		a.ErrorIs(err, ErrInvalidDeckCount)
	}
}

func TestDeck_Draw(t *testing.T) {
	a := assert.New(t)
	deck, _ := New(1, false)

	a.True(deck.CanDraw(52))
	a.False(deck.CanDraw(53))

	first, err := deck.Draw()
	a.NoError(err)
	a.Equal(CardFromString("1h"), first)

	second, err := deck.Draw()
	a.NoError(err)
	a.Equal(CardFromString("2h"), second)

	for i := 0; i < 50; i++ {
		card, err := deck.Draw()
		a.NoError(err)
		a.NotEqual(Card{}, card)
	}

	a.False(deck.CanDraw(1))

	card, err := deck.Draw()
	a.Equal(Card{}, card)
	a.Equal(ErrDeckExhausted, err)
	a.Equal(0, deck.CardsLeft())
	a.Equal(0, deck.DiscardCount())

	// no automatic reshuffle
	_, err = deck.Draw()
	a.Equal(ErrDeckExhausted, err)
}

func TestDeck_AddToDiscard(t *testing.T) {
	a := assert.New(t)
	deck, _ := New(1, false)

	card, err := deck.Draw()
	a.NoError(err)
	deck.AddToDiscard(card)
	a.Equal([]Card{card}, deck.DiscardPile())

	// foreign cards are accepted
	deck.AddToDiscard(NewJoker())
	deck.AddToDiscard(card)
	a.Equal(3, deck.DiscardCount())
	a.Equal("1h,jk,1h", CardsToString(deck.DiscardPile()))
	a.Equal(51, deck.CardsLeft())
}

func TestDeck_Shuffle(t *testing.T) {
	a := assert.New(t)
	deck, _ := New(1, false)

	before := make(map[Card]int)
	for _, card := range deck.DrawPile() {
		before[card]++
	}

	for i := 0; i < 10; i++ {
		card, _ := deck.Draw()
		deck.AddToDiscard(card)
	}

	a.Equal(42, deck.CardsLeft())
	a.Equal(10, deck.DiscardCount())

	deck.Shuffle()
	a.Equal(52, deck.CardsLeft())
	a.Equal(0, deck.DiscardCount())

	after := make(map[Card]int)
	for _, card := range deck.DrawPile() {
		after[card]++
	}

	a.Equal(before, after)
}

func TestDeck_Shuffle_generator(t *testing.T) {
	a := assert.New(t)

	deck, _ := New(1, false, WithGenerator(fixedGenerator(0)))
	for i := 0; i < 48; i++ {
		_, _ = deck.Draw()
	}

	a.Equal("10d,11d,12d,13d", CardsToString(deck.DrawPile()))

	// always picking index 0 rotates the pile by one
	deck.Shuffle()
	a.Equal("11d,12d,13d,10d", CardsToString(deck.DrawPile()))

	// always picking the last index leaves the pile as is
	deck, _ = New(1, false, WithGenerator(fixedGenerator(52)))
	deck.Shuffle()
	a.Equal("f23850d6025b77f9f4f53d1114acce763d3fb7fe", deck.HashCode())
}

func TestDeck_Shuffle_discardsOnly(t *testing.T) {
	a := assert.New(t)
	deck, _ := New(1, false, WithGenerator(fixedGenerator(0)))

	cards := make([]Card, 0, 52)
	for deck.CanDraw(1) {
		card, _ := deck.Draw()
		cards = append(cards, card)
	}

	_, err := deck.Draw()
	a.ErrorIs(err, ErrDeckExhausted)

	deck.AddToDiscard(cards[0])
	deck.AddToDiscard(cards[1])
	deck.AddToDiscard(cards[2])
	deck.Shuffle()

	a.Equal("2h,3h,1h", CardsToString(deck.DrawPile()))
	a.Equal(0, deck.DiscardCount())
}

func TestDeck_Shuffle_seed(t *testing.T) {
	a := assert.New(t)

	d1, _ := New(1, false, WithSeed(1))
	d2, _ := New(1, false, WithSeed(1))
	d3, _ := New(1, false, WithSeed(2))

	d1.Shuffle()
	d2.Shuffle()
	d3.Shuffle()

	a.Equal(d1.HashCode(), d2.HashCode())
	a.NotEqual(d1.HashCode(), d3.HashCode())
	a.NotEqual("f23850d6025b77f9f4f53d1114acce763d3fb7fe", d1.HashCode())

	d1.Shuffle()
	a.NotEqual(d1.HashCode(), d2.HashCode())
}

func TestDeck_Shuffle_uniform(t *testing.T) {
	deck, _ := New(1, false, WithGenerator(rng.Crypto{}))
	for i := 0; i < 49; i++ {
		_, _ = deck.Draw()
	}

	const trials = 6000
	counts := make(map[string]int)
	for i := 0; i < trials; i++ {
		deck.Shuffle()
		counts[CardsToString(deck.DrawPile())]++

		for deck.CanDraw(1) {
			card, _ := deck.Draw()
			deck.AddToDiscard(card)
		}
	}

	// it's possible this could fail, but not likely
	assert.Len(t, counts, 6)
	for perm, count := range counts {
		assert.InDelta(t, trials/6, count, 200, perm)
	}
}

func TestDeck_DrawPile_isACopy(t *testing.T) {
	deck, _ := New(1, false)
	cards := deck.DrawPile()
	cards[0] = NewJoker()

	first, _ := deck.Draw()
	assert.Equal(t, CardFromString("1h"), first)
}

func TestDeck_logging(t *testing.T) {
	a := assert.New(t)
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	deck, _ := New(1, false, WithLogger(logger))
	a.Equal("built deck", hook.LastEntry().Message)
	a.Equal(deck.ID(), hook.LastEntry().Data["deck"])
	a.Equal(52, hook.LastEntry().Data["cards"])

	deck.Shuffle()
	a.Equal("shuffled deck", hook.LastEntry().Message)

	for deck.CanDraw(1) {
		_, _ = deck.Draw()
	}

	_, _ = deck.Draw()
	a.Equal("draw attempted on exhausted deck", hook.LastEntry().Message)
	a.Len(hook.AllEntries(), 3)
}
