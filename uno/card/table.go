package card

// Receiver is a hand that cards can be dealt into.
type Receiver interface {
	AddCards(cards []Card)
}

// Source is a pile that cards can be drawn from.
type Source interface {
	Pick(amount int) []Card
}

// Table is everything a card effect is allowed to touch. The game loop
// implements it and hands it to Card.Play.
type Table interface {
	// Skip moves the turn past the next player.
	Skip()
	// Reverse inverts the turn direction.
	Reverse()
	// NextPlayer is the player who would act after the current one.
	NextPlayer() Receiver
	// DrawPile is the shared pile forced draws come from.
	DrawPile() Source
}
