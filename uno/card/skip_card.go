package card

import (
	"github.com/unoplusplus/uno/uno/card/color"
)

type SkipCard struct {
	face
}

func NewSkipCard(rank int, color color.Color) *SkipCard {
	return &SkipCard{face: face{rank: rank, color: color}}
}

func (c *SkipCard) Kind() Kind {
	return KindSkip
}

// Matches only follows color; rank equality is not enough.
func (c *SkipCard) Matches(other Card) bool {
	return matchesColor(c, other)
}

func (c *SkipCard) PickupAmount() int {
	return 0
}

func (c *SkipCard) Play(player Receiver, table Table) {
	table.Skip()
}

func (c *SkipCard) Equal(other Card) bool {
	return equal(c, other)
}

func (c *SkipCard) String() string {
	return c.color.Paint("(/)")
}
