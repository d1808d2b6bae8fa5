// Package deck implements random playing-card draws over the dice roller.
package deck

import (
	"fmt"

	"github.com/louisbranch/dicecast/internal/dice"
)

// Suit is a playing-card suit.
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "clubs"
	case Diamonds:
		return "diamonds"
	case Hearts:
		return "hearts"
	case Spades:
		return "spades"
	default:
		return "unknown"
	}
}

// Rank is a playing-card rank. Numbered cards use their face value; Jack
// through Ace follow.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

func (r Rank) String() string {
	switch {
	case r >= Two && r <= Ten:
		return fmt.Sprintf("%d", int(r))
	case r == Jack:
		return "jack"
	case r == Queen:
		return "queen"
	case r == King:
		return "king"
	case r == Ace:
		return "ace"
	default:
		return "unknown"
	}
}

// Card is a playing card.
type Card struct {
	Rank Rank
	Suit Suit
}

func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}

// Draw draws n independent cards with replacement. Each draw rolls a d13
// for the rank and a d4 for the suit, in that order, so a seeded roller
// reproduces the same hand.
func Draw(roller dice.Roller, n int) []Card {
	cards := make([]Card, n)
	for i := range cards {
		rank := Rank(roller.Roll(13) + 1)
		suit := Suit(roller.Roll(4) - 1)
		cards[i] = Card{Rank: rank, Suit: suit}
	}
	return cards
}
