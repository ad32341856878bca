package deck

import "errors"

// ErrInvalidRank is returned when a card is built with a rank outside the mode's rank set
var ErrInvalidRank = errors.New("invalid rank")

// ErrInvalidSuit is returned when a card is built with an unknown suit, or a joker is given a suit
var ErrInvalidSuit = errors.New("invalid suit")

// ErrDeckExhausted is an error when Draw() is attempted and there are no more cards
var ErrDeckExhausted = errors.New("deck exhausted")

// ErrIndexOutOfRange is returned when a hand position does not exist
var ErrIndexOutOfRange = errors.New("index out of range")

// ErrInvalidDeckCount is returned when a deck is built from less than one set of cards
var ErrInvalidDeckCount = errors.New("deck count must be >= 1")

// ErrInvalidRanking is returned when a suit ranking does not order each suit exactly once
var ErrInvalidRanking = errors.New("invalid suit ranking")
