package game

import (
	"errors"
	"fmt"
)

// ErrSelectionDeferred is returned by players whose card has to be chosen
// through the presentation layer.
var ErrSelectionDeferred = errors.New("card selection is deferred to the player")

var ErrCardNotInHand = errors.New("card is not in the player's hand")

var ErrCardNotPlayable = errors.New("card does not match the discard pile")

var ErrGameOver = errors.New("game is over")

var ErrGameNotStarted = errors.New("first card has not been played")

var ErrDuplicatePlayerName = errors.New("player names must be unique")

const (
	MinPlayers = 2
	MaxPlayers = 10
)

// PlayerCountError is an error on the number of players at the table
type PlayerCountError int

func (p PlayerCountError) Error() string {
	return fmt.Sprintf("expected %d-%d players, got %d", MinPlayers, MaxPlayers, int(p))
}

// DealError is returned when dealing hands would leave no card to start the
// discard pile with.
type DealError struct {
	Players   int
	HandSize  int
	Available int
}

func (e DealError) Error() string {
	return fmt.Sprintf("cannot deal %d cards to %d players from %d cards and keep one for the discard pile",
		e.HandSize, e.Players, e.Available)
}
