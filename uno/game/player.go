package game

import (
	"github.com/unoplusplus/uno/uno/card"
)

// Player owns a hand for its whole lifetime and chooses what to play.
type Player interface {
	Name() string
	// Deck is the player's hand.
	Deck() *Deck
	// AddCards deals cards into the hand.
	AddCards(cards []card.Card)
	// IsPlayable is true when moves come from a person rather than being
	// computed.
	IsPlayable() bool
	// PickCard selects a card to play on top of discard. A nil card with a
	// nil error means nothing in the hand matches. Players whose moves are
	// chosen elsewhere return ErrSelectionDeferred.
	PickCard(discard *Deck) (card.Card, error)
	// HasWon is true once the hand is empty.
	HasWon() bool
}
