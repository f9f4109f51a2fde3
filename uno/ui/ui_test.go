package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/unoplusplus/uno/uno/card"
	"github.com/unoplusplus/uno/uno/card/color"
	"github.com/unoplusplus/uno/uno/event"
)

func capture(t *testing.T, input string) *bytes.Buffer {
	out := &bytes.Buffer{}
	origStdout, origStdin, origDelay := Stdout, Stdin, Delay
	Stdout, Stdin, Delay = out, strings.NewReader(input), 0
	t.Cleanup(func() {
		Stdout, Stdin, Delay = origStdout, origStdin, origDelay
	})
	return out
}

func TestOptionLabel(t *testing.T) {
	require.Equal(t, "A", optionLabel(0))
	require.Equal(t, "B", optionLabel(1))
	require.Equal(t, "Z", optionLabel(25))
	require.Equal(t, "AA", optionLabel(26))
	require.Equal(t, "AZ", optionLabel(51))
	require.Equal(t, "BA", optionLabel(52))
}

func TestPromptCardSelection(t *testing.T) {
	cards := []card.Card{
		card.NewPlainCard(3, color.Red),
		card.NewSkipCard(card.WildRank, color.Blue),
	}

	t.Run("selects_by_label", func(t *testing.T) {
		out := capture(t, "b\n")
		selectedCard, err := PromptCardSelection(cards)
		require.NoError(t, err)
		require.Equal(t, cards[1], selectedCard)
		require.Contains(t, out.String(), "(enter A)")
		require.Contains(t, out.String(), "(enter B)")
	})

	t.Run("retries_unknown_labels", func(t *testing.T) {
		out := capture(t, "z\n\na\n")
		selectedCard, err := PromptCardSelection(cards)
		require.NoError(t, err)
		require.Equal(t, cards[0], selectedCard)
		require.Contains(t, out.String(), "No card assigned to 'Z'")
		require.Contains(t, out.String(), "Invalid text input")
	})

	t.Run("draws_instead", func(t *testing.T) {
		capture(t, "0\n")
		selectedCard, err := PromptCardSelection(cards)
		require.NoError(t, err)
		require.Nil(t, selectedCard)
	})

	t.Run("draws_with_nothing_to_play", func(t *testing.T) {
		capture(t, "0\n")
		selectedCard, err := PromptCardSelection(nil)
		require.NoError(t, err)
		require.Nil(t, selectedCard)
	})

	t.Run("stops_when_input_closes", func(t *testing.T) {
		out := capture(t, "z\n")
		selectedCard, err := PromptCardSelection(cards)
		require.Equal(t, ErrInputClosed, err)
		require.Nil(t, selectedCard)
		require.NotContains(t, out.String(), "Invalid text input")
	})
}

func TestPromptStringAtEndOfInput(t *testing.T) {
	capture(t, "")
	input, err := PromptString("name?")
	require.Equal(t, ErrInputClosed, err)
	require.Empty(t, input)
}

func TestMessages(t *testing.T) {
	out := capture(t, "")

	Message.PlayerDrewCards("Ada", 0)
	Message.PlayerDrewCards("Ada", 1)
	Message.PlayerDrewCards("Ada", 3)
	Message.PlayerPlayedCard("Bo", card.NewReverseCard(card.WildRank, color.Green))
	Message.WinnerFound("Bo")

	require.Equal(t, strings.Join([]string{
		"Ada passed, there was nothing left to draw!",
		"Ada drew a card!",
		"Ada drew 3 cards!",
		"Bo played " + card.NewReverseCard(card.WildRank, color.Green).String() + "!",
		"Turn order has been reversed!",
		"Bo wins!",
		"",
	}, "\n"), out.String())
}

func TestNarrate(t *testing.T) {
	out := capture(t, "")
	Narrate()

	event.FirstCardPlayed.Emit(event.FirstCardPlayedPayload{Card: nil})
	event.CardsPickedUp.Emit(event.CardsPickedUpPayload{
		PlayerName: "Cy",
		Cards:      []card.Card{card.NewPlainCard(1, color.Red), card.NewPlainCard(2, color.Red)},
	})
	event.PlayerWon.Emit(event.PlayerWonPayload{PlayerName: "Cy"})

	require.Equal(t, strings.Join([]string{
		"The draw pile is empty, there is no first card!",
		"Cy has to pick up 2 cards!",
		"Cy wins!",
		"",
	}, "\n"), out.String())
}
