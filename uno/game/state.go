package game

import (
	"fmt"
	"strings"

	"github.com/unoplusplus/uno/uno/card"
)

// Seat is what everyone at the table can see about one player.
type Seat struct {
	Name     string
	HandSize int
	Current  bool
}

// State is one player's view of the table.
type State struct {
	LastPlayedCard card.Card
	DrawPileSize   int
	Hand           []card.Card
	Seats          []Seat
}

func (s State) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Last played card: %s\n", s.LastPlayedCard)
	fmt.Fprintf(&b, "Draw pile: %d card(s)\n", s.DrawPileSize)

	b.WriteString("Table:")
	for _, seat := range s.Seats {
		marker := " "
		if seat.Current {
			marker = "*"
		}
		fmt.Fprintf(&b, " %s%s (%d)", marker, seat.Name, seat.HandSize)
	}
	b.WriteString("\n")

	hand := make([]string, len(s.Hand))
	for i, c := range s.Hand {
		hand[i] = c.String()
	}
	fmt.Fprintf(&b, "Your hand: %s", strings.Join(hand, " "))
	return b.String()
}
