package player

import (
	"github.com/unoplusplus/uno/uno/card"
	"github.com/unoplusplus/uno/uno/game"
)

type basicPlayer struct {
	name string
	deck *game.Deck
}

func newBasicPlayer(name string) basicPlayer {
	return basicPlayer{name: name, deck: game.NewDeck()}
}

func (p *basicPlayer) Name() string {
	return p.name
}

func (p *basicPlayer) Deck() *game.Deck {
	return p.deck
}

func (p *basicPlayer) AddCards(cards []card.Card) {
	p.deck.AddCards(cards)
}

func (p *basicPlayer) HasWon() bool {
	return p.deck.Size() == 0
}
