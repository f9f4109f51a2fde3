package game

import (
	"math/rand"
	"sync"

	"github.com/unoplusplus/uno/uno/card"
	"github.com/unoplusplus/uno/uno/card/color"
)

// Deck is an ordered stack of cards. The last card added is the top. It
// serves as a player's hand as well as the draw and discard piles.
type Deck struct {
	sync.Mutex
	cards []card.Card
	rng   *rand.Rand
}

func NewDeck(cards ...card.Card) *Deck {
	deck := &Deck{cards: make([]card.Card, 0, len(cards))}
	deck.cards = append(deck.cards, cards...)
	return deck
}

// StandardDeckSize is the number of cards in NewStandardDeck.
const StandardDeckSize = 104

// NewStandardDeck returns the full, unshuffled standard card set.
func NewStandardDeck() *Deck {
	cards := make([]card.Card, 0, StandardDeckSize)
	for _, cardColor := range color.All {
		cards = append(cards, createColorCards(cardColor)...)
	}
	cards = append(cards, createWildCards()...)
	return NewDeck(cards...)
}

func createColorCards(cardColor color.Color) []card.Card {
	cards := []card.Card{card.NewPlainCard(0, cardColor)}

	for number := 1; number <= 9; number++ {
		cards = append(cards, card.NewPlainCard(number, cardColor), card.NewPlainCard(number, cardColor))
	}

	for _, kind := range []card.Kind{card.KindSkip, card.KindReverse, card.KindPickupTwo} {
		cards = append(cards, card.New(kind, card.WildRank, cardColor), card.New(kind, card.WildRank, cardColor))
	}

	return cards
}

func createWildCards() []card.Card {
	cards := make([]card.Card, 0, 4)
	for i := 0; i < 4; i++ {
		cards = append(cards, card.NewPickupFourCard(card.WildRank, color.Wild))
	}
	return cards
}

// SetSeed makes Shuffle and Recycle reproducible.
func (d *Deck) SetSeed(seed int64) {
	d.Mutex.Lock()
	defer d.Mutex.Unlock()
	d.rng = rand.New(rand.NewSource(seed))
}

func (d *Deck) Shuffle() {
	d.Mutex.Lock()
	defer d.Mutex.Unlock()
	d.shuffleCards(d.cards)
}

func (d *Deck) shuffleCards(cards []card.Card) {
	swap := func(i, j int) { cards[i], cards[j] = cards[j], cards[i] }
	if d.rng != nil {
		d.rng.Shuffle(len(cards), swap)
		return
	}
	rand.Shuffle(len(cards), swap)
}

// Recycle shuffles cards and slides them underneath the current cards.
func (d *Deck) Recycle(cards []card.Card) {
	d.Mutex.Lock()
	defer d.Mutex.Unlock()
	recycled := make([]card.Card, len(cards), len(cards)+len(d.cards))
	copy(recycled, cards)
	d.shuffleCards(recycled)
	d.cards = append(recycled, d.cards...)
}

// Pick removes and returns the top amount cards, bottom-most first. When
// amount is not less than the size of the deck, every card is returned.
func (d *Deck) Pick(amount int) []card.Card {
	d.Mutex.Lock()
	defer d.Mutex.Unlock()
	if amount <= 0 {
		return []card.Card{}
	}

	var picked []card.Card
	if amount < len(d.cards) {
		split := len(d.cards) - amount
		picked = make([]card.Card, amount)
		copy(picked, d.cards[split:])
		d.cards = d.cards[:split]
	} else {
		picked = d.cards
		d.cards = make([]card.Card, 0)
	}
	return picked
}

// PickOne returns nil when the deck is empty.
func (d *Deck) PickOne() card.Card {
	picked := d.Pick(1)
	if len(picked) == 0 {
		return nil
	}
	return picked[0]
}

func (d *Deck) Add(c card.Card) {
	d.Mutex.Lock()
	defer d.Mutex.Unlock()
	d.cards = append(d.cards, c)
}

func (d *Deck) AddCards(cards []card.Card) {
	if len(cards) == 0 {
		return
	}
	d.Mutex.Lock()
	defer d.Mutex.Unlock()
	d.cards = append(d.cards, cards...)
}

// Top returns nil when the deck is empty.
func (d *Deck) Top() card.Card {
	d.Mutex.Lock()
	defer d.Mutex.Unlock()
	size := len(d.cards)
	if size == 0 {
		return nil
	}
	return d.cards[size-1]
}

func (d *Deck) Cards() []card.Card {
	d.Mutex.Lock()
	defer d.Mutex.Unlock()
	cards := make([]card.Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

func (d *Deck) Contains(searched card.Card) bool {
	d.Mutex.Lock()
	defer d.Mutex.Unlock()
	for _, c := range d.cards {
		if c.Equal(searched) {
			return true
		}
	}
	return false
}

// Remove takes out the first card equal to searched, keeping the order of
// the rest. It reports whether a card was removed.
func (d *Deck) Remove(searched card.Card) bool {
	d.Mutex.Lock()
	defer d.Mutex.Unlock()
	for index, c := range d.cards {
		if c.Equal(searched) {
			d.cards = append(d.cards[:index:index], d.cards[index+1:]...)
			return true
		}
	}
	return false
}

func (d *Deck) Size() int {
	d.Mutex.Lock()
	defer d.Mutex.Unlock()
	return len(d.cards)
}

func (d *Deck) Empty() bool {
	return d.Size() == 0
}
