package player

import (
	"fmt"

	"github.com/unoplusplus/uno/uno/card"
	"github.com/unoplusplus/uno/uno/game"
)

// Strategy decides how a computer player chooses among matching cards.
type Strategy int

const (
	// StrategyLastMatch scans the whole hand and takes every matching card
	// out of it, but only plays the last one found. The earlier matches are
	// lost.
	StrategyLastMatch Strategy = iota
	// StrategyFirstMatch plays the first matching card and keeps the rest.
	StrategyFirstMatch
	// StrategyMostFollowUps plays the matching card that leaves the most
	// cards in hand able to follow it.
	StrategyMostFollowUps
)

var strategyNames = map[Strategy]string{
	StrategyLastMatch:     "last-match",
	StrategyFirstMatch:    "first-match",
	StrategyMostFollowUps: "most-follow-ups",
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("strategy(%d)", int(s))
}

func ParseStrategy(name string) (Strategy, error) {
	for strategy, strategyName := range strategyNames {
		if strategyName == name {
			return strategy, nil
		}
	}
	return 0, fmt.Errorf("unknown strategy '%s'", name)
}

type computerPlayer struct {
	basicPlayer
	strategy Strategy
}

func NewComputerPlayer(name string, strategy Strategy) game.Player {
	return &computerPlayer{basicPlayer: newBasicPlayer(name), strategy: strategy}
}

func (p *computerPlayer) IsPlayable() bool {
	return false
}

func (p *computerPlayer) PickCard(discard *game.Deck) (card.Card, error) {
	top := discard.Top()
	switch p.strategy {
	case StrategyFirstMatch:
		return p.pickFirstMatch(top), nil
	case StrategyMostFollowUps:
		return p.pickMostFollowUps(top), nil
	default:
		return p.pickLastMatch(top), nil
	}
}

func (p *computerPlayer) pickLastMatch(top card.Card) card.Card {
	var selectedCard card.Card
	for _, candidateCard := range p.deck.Cards() {
		if candidateCard.Matches(top) {
			p.deck.Remove(candidateCard)
			selectedCard = candidateCard
		}
	}
	return selectedCard
}

func (p *computerPlayer) pickFirstMatch(top card.Card) card.Card {
	for _, candidateCard := range p.deck.Cards() {
		if candidateCard.Matches(top) {
			p.deck.Remove(candidateCard)
			return candidateCard
		}
	}
	return nil
}

func (p *computerPlayer) pickMostFollowUps(top card.Card) card.Card {
	hand := p.deck.Cards()

	var selectedCard card.Card
	maxFollowUps := -1
	for _, candidateCard := range hand {
		if !candidateCard.Matches(top) {
			continue
		}

		followUps := 0
		for _, handCard := range hand {
			if handCard != candidateCard && handCard.Matches(candidateCard) {
				followUps++
			}
		}
		if followUps > maxFollowUps {
			maxFollowUps = followUps
			selectedCard = candidateCard
		}
	}

	if selectedCard != nil {
		p.deck.Remove(selectedCard)
	}
	return selectedCard
}
