package player

import (
	"github.com/unoplusplus/uno/uno/card"
	"github.com/unoplusplus/uno/uno/game"
)

type humanPlayer struct {
	basicPlayer
}

// NewHumanPlayer returns a player whose cards are chosen through the
// presentation layer.
func NewHumanPlayer(name string) game.Player {
	return &humanPlayer{basicPlayer: newBasicPlayer(name)}
}

func (p *humanPlayer) IsPlayable() bool {
	return true
}

func (p *humanPlayer) PickCard(discard *game.Deck) (card.Card, error) {
	return nil, game.ErrSelectionDeferred
}
