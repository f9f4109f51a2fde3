package event

import "github.com/unoplusplus/uno/uno/card"

var (
	FirstCardPlayed = &Emitter[FirstCardPlayedPayload]{}
	CardPlayed      = &Emitter[CardPlayedPayload]{}
	PlayerPassed    = &Emitter[PlayerPassedPayload]{}
	CardsPickedUp   = &Emitter[CardsPickedUpPayload]{}
	PlayerWon       = &Emitter[PlayerWonPayload]{}
)

// FirstCardPlayedPayload carries the card turned over to start the discard
// pile. Card is nil when the draw pile was empty.
type FirstCardPlayedPayload struct {
	Card card.Card
}

type CardPlayedPayload struct {
	PlayerName string
	Card       card.Card
}

// PlayerPassedPayload is sent when a player draws instead of playing. Drawn
// is 0 when both piles were exhausted.
type PlayerPassedPayload struct {
	PlayerName string
	Drawn      int
}

// CardsPickedUpPayload is sent when a pickup card forces cards onto a player.
type CardsPickedUpPayload struct {
	PlayerName string
	Cards      []card.Card
}

type PlayerWonPayload struct {
	PlayerName string
}
