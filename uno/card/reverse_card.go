package card

import (
	"github.com/unoplusplus/uno/uno/card/color"
)

type ReverseCard struct {
	face
}

func NewReverseCard(rank int, color color.Color) *ReverseCard {
	return &ReverseCard{face: face{rank: rank, color: color}}
}

func (c *ReverseCard) Kind() Kind {
	return KindReverse
}

// Matches only follows color; rank equality is not enough.
func (c *ReverseCard) Matches(other Card) bool {
	return matchesColor(c, other)
}

func (c *ReverseCard) PickupAmount() int {
	return 0
}

func (c *ReverseCard) Play(player Receiver, table Table) {
	table.Reverse()
}

func (c *ReverseCard) Equal(other Card) bool {
	return equal(c, other)
}

func (c *ReverseCard) String() string {
	return c.color.Paint("<=>")
}
