package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/unoplusplus/uno/uno/card"
)

// drawLabel is what the player enters to draw instead of playing.
const drawLabel = "0"

// ErrInputClosed is returned by prompts once Stdin has nothing left to read.
var ErrInputClosed = errors.New("input closed")

func PromptString(message string) (string, error) {
	for {
		Println(message)
		var input string
		_, err := fmt.Fscanln(Stdin, &input)
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		if err != nil {
			Println("Invalid text input")
			continue
		}
		return input, nil
	}
}

func promptUppercaseString(message string) (string, error) {
	input, err := PromptString(message)
	return strings.ToUpper(input), err
}

// PromptCardSelection asks which of cards to play. It returns a nil card when
// the player chooses to draw a card instead.
func PromptCardSelection(cards []card.Card) (card.Card, error) {
	cardOptions := make(map[string]card.Card)

	cardSelectionLines := []string{"Select a card to play:"}
	for i, c := range cards {
		label := optionLabel(i)
		cardOptions[label] = c
		cardSelectionLines = append(cardSelectionLines, fmt.Sprintf("%s (enter %s)", c, label))
	}
	cardSelectionLines = append(cardSelectionLines, fmt.Sprintf("draw a card (enter %s)", drawLabel))
	cardSelectionMessage := strings.Join(cardSelectionLines, "\n")

	for {
		selectedLabel, err := promptUppercaseString(cardSelectionMessage)
		if err != nil {
			return nil, err
		}
		if selectedLabel == drawLabel {
			return nil, nil
		}
		selectedCard, found := cardOptions[selectedLabel]
		if !found {
			Printfln("No card assigned to '%s'", selectedLabel)
			continue
		}
		return selectedCard, nil
	}
}

// optionLabel names the i-th option A, B, ... Z, AA, AB, ...
func optionLabel(i int) string {
	label := ""
	for i++; i > 0; i = (i - 1) / 26 {
		label = string(rune('A'+(i-1)%26)) + label
	}
	return label
}
