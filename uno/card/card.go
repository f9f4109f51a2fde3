package card

import (
	"fmt"

	"github.com/unoplusplus/uno/uno/card/color"
)

// WildRank is the rank of cards that can never match on rank, not even
// against another WildRank card.
const WildRank = -1

// Kind tags the variant of a Card.
type Kind int

const (
	KindPlain Kind = iota
	KindSkip
	KindReverse
	KindPickupTwo
	KindPickupFour
)

func (k Kind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindSkip:
		return "skip"
	case KindReverse:
		return "reverse"
	case KindPickupTwo:
		return "pickup two"
	case KindPickupFour:
		return "pickup four"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Card is one of the five variants declared in this package. The set is
// closed: only types in this package can implement it.
type Card interface {
	Kind() Kind
	Rank() int
	Color() color.Color
	SetRank(rank int)
	SetColor(c color.Color)

	// Matches reports whether the card may be placed on top of other.
	Matches(other Card) bool
	// PickupAmount is how many cards the next player is forced to draw.
	PickupAmount() int
	// Play applies the card's effect. It is called before the card is
	// moved onto the discard pile.
	Play(player Receiver, table Table)

	Equal(other Card) bool
	String() string

	sealed()
}

type face struct {
	rank  int
	color color.Color
}

func (f *face) Rank() int {
	return f.rank
}

func (f *face) Color() color.Color {
	return f.color
}

func (f *face) SetRank(rank int) {
	f.rank = rank
}

func (f *face) SetColor(c color.Color) {
	f.color = c
}

func (f *face) sealed() {}

// matches is the default rule shared by plain and pickup cards. A pickup four
// on either side always matches.
func matches(candidate Card, top Card) bool {
	if top == nil {
		return false
	}
	if candidate.Kind() == KindPickupFour || top.Kind() == KindPickupFour {
		return true
	}
	if candidate.Rank() == top.Rank() && candidate.Rank() != WildRank {
		return true
	}
	return candidate.Color() == top.Color()
}

// matchesColor is the rule for action cards that only follow color.
func matchesColor(candidate Card, top Card) bool {
	return top != nil && candidate.Color() == top.Color()
}

func equal(c Card, other Card) bool {
	return other != nil &&
		c.Kind() == other.Kind() &&
		c.Rank() == other.Rank() &&
		c.Color() == other.Color()
}

func pickup(table Table, amount int) {
	table.NextPlayer().AddCards(table.DrawPile().Pick(amount))
}

// New builds a card of the given kind.
func New(kind Kind, rank int, c color.Color) Card {
	switch kind {
	case KindPlain:
		return NewPlainCard(rank, c)
	case KindSkip:
		return NewSkipCard(rank, c)
	case KindReverse:
		return NewReverseCard(rank, c)
	case KindPickupTwo:
		return NewPickupTwoCard(rank, c)
	case KindPickupFour:
		return NewPickupFourCard(rank, c)
	default:
		panic(fmt.Sprintf("unknown card kind: %d", kind))
	}
}
