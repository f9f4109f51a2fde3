package card_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/unoplusplus/uno/uno/card"
	"github.com/unoplusplus/uno/uno/card/color"
)

type fakeHand struct {
	cards []card.Card
}

func (h *fakeHand) AddCards(cards []card.Card) {
	h.cards = append(h.cards, cards...)
}

type fakePile struct {
	cards []card.Card
}

func (p *fakePile) Pick(amount int) []card.Card {
	if amount > len(p.cards) {
		amount = len(p.cards)
	}
	picked := p.cards[len(p.cards)-amount:]
	p.cards = p.cards[:len(p.cards)-amount]
	return picked
}

type fakeTable struct {
	skips    int
	reverses int
	next     *fakeHand
	drawPile *fakePile
}

func newFakeTable(drawPileSize int) *fakeTable {
	pile := &fakePile{}
	for i := 0; i < drawPileSize; i++ {
		pile.cards = append(pile.cards, card.NewPlainCard(i%10, color.Blue))
	}
	return &fakeTable{next: &fakeHand{}, drawPile: pile}
}

func (t *fakeTable) Skip()                     { t.skips++ }
func (t *fakeTable) Reverse()                  { t.reverses++ }
func (t *fakeTable) NextPlayer() card.Receiver { return t.next }
func (t *fakeTable) DrawPile() card.Source     { return t.drawPile }

func TestPlay(t *testing.T) {
	current := &fakeHand{}

	t.Run("plain_has_no_effect", func(t *testing.T) {
		table := newFakeTable(10)
		card.NewPlainCard(3, color.Red).Play(current, table)
		assert.Equal(t, 0, table.skips)
		assert.Equal(t, 0, table.reverses)
		assert.Empty(t, table.next.cards)
		assert.Len(t, table.drawPile.cards, 10)
	})

	t.Run("skip_skips", func(t *testing.T) {
		table := newFakeTable(10)
		card.NewSkipCard(card.WildRank, color.Red).Play(current, table)
		assert.Equal(t, 1, table.skips)
		assert.Equal(t, 0, table.reverses)
	})

	t.Run("reverse_reverses", func(t *testing.T) {
		table := newFakeTable(10)
		card.NewReverseCard(card.WildRank, color.Red).Play(current, table)
		assert.Equal(t, 0, table.skips)
		assert.Equal(t, 1, table.reverses)
	})

	t.Run("pickup_two_deals_to_next_player", func(t *testing.T) {
		table := newFakeTable(10)
		card.NewPickupTwoCard(card.WildRank, color.Red).Play(current, table)
		assert.Len(t, table.next.cards, 2)
		assert.Len(t, table.drawPile.cards, 8)
		assert.Empty(t, current.cards)
	})

	t.Run("pickup_four_deals_to_next_player", func(t *testing.T) {
		table := newFakeTable(4)
		card.NewPickupFourCard(card.WildRank, color.Wild).Play(current, table)
		assert.Len(t, table.next.cards, 4)
		assert.Empty(t, table.drawPile.cards)
		assert.Empty(t, current.cards)
	})

	t.Run("pickup_four_with_short_draw_pile", func(t *testing.T) {
		table := newFakeTable(3)
		card.NewPickupFourCard(card.WildRank, color.Wild).Play(current, table)
		assert.Len(t, table.next.cards, 3)
		assert.Empty(t, table.drawPile.cards)
	})
}
