package ui

import (
	"github.com/unoplusplus/uno/uno/event"
)

// narrator prints every game event as it happens.
type narrator struct{}

// Narrate subscribes the console to all game events.
func Narrate() {
	n := narrator{}
	event.FirstCardPlayed.AddListener(n.onFirstCardPlayed)
	event.CardPlayed.AddListener(n.onCardPlayed)
	event.PlayerPassed.AddListener(n.onPlayerPassed)
	event.CardsPickedUp.AddListener(n.onCardsPickedUp)
	event.PlayerWon.AddListener(n.onPlayerWon)
}

func (n narrator) onFirstCardPlayed(payload event.FirstCardPlayedPayload) {
	Message.FirstCardPlayed(payload.Card)
}

func (n narrator) onCardPlayed(payload event.CardPlayedPayload) {
	Message.PlayerPlayedCard(payload.PlayerName, payload.Card)
}

func (n narrator) onPlayerPassed(payload event.PlayerPassedPayload) {
	Message.PlayerDrewCards(payload.PlayerName, payload.Drawn)
}

func (n narrator) onCardsPickedUp(payload event.CardsPickedUpPayload) {
	Message.PlayerPickedUpCards(payload.PlayerName, payload.Cards)
}

func (n narrator) onPlayerWon(payload event.PlayerWonPayload) {
	Message.WinnerFound(payload.PlayerName)
}
