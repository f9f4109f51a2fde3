package card

import (
	"github.com/unoplusplus/uno/uno/card/color"
)

type PickupTwoCard struct {
	face
}

func NewPickupTwoCard(rank int, color color.Color) *PickupTwoCard {
	return &PickupTwoCard{face: face{rank: rank, color: color}}
}

func (c *PickupTwoCard) Kind() Kind {
	return KindPickupTwo
}

func (c *PickupTwoCard) Matches(other Card) bool {
	return matches(c, other)
}

func (c *PickupTwoCard) PickupAmount() int {
	return 2
}

func (c *PickupTwoCard) Play(player Receiver, table Table) {
	pickup(table, c.PickupAmount())
}

func (c *PickupTwoCard) Equal(other Card) bool {
	return equal(c, other)
}

func (c *PickupTwoCard) String() string {
	return c.color.Paint("+2!")
}
