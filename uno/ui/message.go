package ui

import (
	"github.com/unoplusplus/uno/uno/card"
	"github.com/unoplusplus/uno/uno/card/color"
	"github.com/unoplusplus/uno/uno/game"
)

var Message = MessageWriter{}

type MessageWriter struct{}

func (m MessageWriter) FirstCardPlayed(c card.Card) {
	if c == nil {
		Println("The draw pile is empty, there is no first card!")
		return
	}
	Printfln("First card is %s", c)
}

func (m MessageWriter) HumanPlayerTurnStarted(playerName string, state game.State) {
	Printfln("It's your turn, %s!", playerName)
	Println(state)
}

func (m MessageWriter) HumanPlayerHasNoMatchingCardsInHand(playerName string, lastPlayedCard card.Card) {
	Printfln("%s, none of your cards match %s!", playerName, lastPlayedCard)
}

func (m MessageWriter) InvalidSelection(err error) {
	Printfln("You can't play that: %s", err)
}

func (m MessageWriter) PlayerDrewCards(playerName string, amount int) {
	switch amount {
	case 0:
		Printfln("%s passed, there was nothing left to draw!", playerName)
	case 1:
		Printfln("%s drew a card!", playerName)
	default:
		Printfln("%s drew %d cards!", playerName, amount)
	}
}

func (m MessageWriter) PlayerPickedUpCards(playerName string, cards []card.Card) {
	Printfln("%s has to pick up %d cards!", playerName, len(cards))
}

func (m MessageWriter) PlayerPlayedCard(playerName string, c card.Card) {
	Printfln("%s played %s!", playerName, c)
	switch c.Kind() {
	case card.KindSkip:
		Println("Next player's turn skipped!")
	case card.KindReverse:
		Println("Turn order has been reversed!")
	}
}

func (m MessageWriter) Welcome() {
	Printfln(
		"WELCOME TO %s%s%s%s%s",
		color.Red.Paint("U"),
		color.Yellow.Paint("N"),
		color.Blue.Paint("O"),
		color.Green.Paint("+"),
		color.Wild.Paint("+"),
	)
}

func (m MessageWriter) WinnerFound(playerName string) {
	Printfln("%s wins!", playerName)
}
