package card

import (
	"github.com/unoplusplus/uno/uno/card/color"
)

// PickupFourCard matches, and is matched by, every card.
type PickupFourCard struct {
	face
}

func NewPickupFourCard(rank int, color color.Color) *PickupFourCard {
	return &PickupFourCard{face: face{rank: rank, color: color}}
}

func (c *PickupFourCard) Kind() Kind {
	return KindPickupFour
}

func (c *PickupFourCard) Matches(other Card) bool {
	return matches(c, other)
}

func (c *PickupFourCard) PickupAmount() int {
	return 4
}

func (c *PickupFourCard) Play(player Receiver, table Table) {
	pickup(table, c.PickupAmount())
}

func (c *PickupFourCard) Equal(other Card) bool {
	return equal(c, other)
}

func (c *PickupFourCard) String() string {
	return c.color.Paint("+4!")
}
