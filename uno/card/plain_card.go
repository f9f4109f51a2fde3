package card

import (
	"github.com/unoplusplus/uno/uno/card/color"
)

type PlainCard struct {
	face
}

func NewPlainCard(rank int, color color.Color) *PlainCard {
	return &PlainCard{face: face{rank: rank, color: color}}
}

func (c *PlainCard) Kind() Kind {
	return KindPlain
}

func (c *PlainCard) Matches(other Card) bool {
	return matches(c, other)
}

func (c *PlainCard) PickupAmount() int {
	return 0
}

func (c *PlainCard) Play(player Receiver, table Table) {}

func (c *PlainCard) Equal(other Card) bool {
	return equal(c, other)
}

func (c *PlainCard) String() string {
	return c.color.Paintf("[%d]", c.rank)
}
