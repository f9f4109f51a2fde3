package game

import (
	"time"

	"github.com/google/uuid"
	"github.com/ratel-online/core/log"
	"github.com/unoplusplus/uno/uno/card"
	"github.com/unoplusplus/uno/uno/event"
)

// maxPickup is the most cards a single effect can force onto a player.
const maxPickup = 4

// Game owns turn order, the draw pile and the discard pile. It is the Table
// that played cards act on.
type Game struct {
	id       string
	players  *PlayerIterator
	drawPile *Deck
	discard  *Deck
	winner   Player
	started  bool
}

// New seats the players in the given order and shuffles a standard deck.
// A zero seed shuffles from the clock.
func New(players []Player, seed int64) (*Game, error) {
	if len(players) < MinPlayers || len(players) > MaxPlayers {
		return nil, PlayerCountError(len(players))
	}

	iterator, err := newPlayerIterator(players)
	if err != nil {
		return nil, err
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	drawPile := NewStandardDeck()
	drawPile.SetSeed(seed)
	drawPile.Shuffle()

	g := &Game{
		id:       uuid.New().String(),
		players:  iterator,
		drawPile: drawPile,
		discard:  NewDeck(),
	}
	log.Infof("game %s created with %d players, seed %d\n", g.id, len(players), seed)
	return g, nil
}

func (g *Game) ID() string {
	return g.id
}

func (g *Game) Players() *PlayerIterator {
	return g.players
}

func (g *Game) Discard() *Deck {
	return g.discard
}

func (g *Game) Current() Player {
	return g.players.Current()
}

func (g *Game) Winner() Player {
	return g.winner
}

func (g *Game) Over() bool {
	return g.winner != nil
}

func (g *Game) GetPlayerCards(name string) []card.Card {
	player := g.players.Get(name)
	if player == nil {
		return nil
	}
	return player.Deck().Cards()
}

// DealStartingCards deals amount cards to every player. It refuses a deal
// that would leave the draw pile without a first card.
func (g *Game) DealStartingCards(amount int) error {
	available := g.drawPile.Size()
	if amount*g.players.Len() >= available {
		return DealError{Players: g.players.Len(), HandSize: amount, Available: available}
	}

	g.players.ForEach(func(player Player) {
		player.AddCards(g.drawPile.Pick(amount))
	})
	return nil
}

// PlayFirstCard turns over the first discard, without applying its effect,
// and hands the turn to the first seated player.
func (g *Game) PlayFirstCard() {
	firstCard := g.drawPile.PickOne()
	if firstCard != nil {
		g.discard.Add(firstCard)
	}
	g.started = true
	event.FirstCardPlayed.Emit(event.FirstCardPlayedPayload{
		Card: firstCard,
	})
	g.players.Next()
}

func (g *Game) Skip() {
	g.players.Skip()
}

func (g *Game) Reverse() {
	g.players.Reverse()
}

func (g *Game) NextPlayer() card.Receiver {
	return pickupReceiver{player: g.players.Peek()}
}

// DrawPile tops the draw pile up from the discards when it runs low.
func (g *Game) DrawPile() card.Source {
	g.replenish(maxPickup)
	return g.drawPile
}

// PlayTurn lets the current player choose a card. Players that defer their
// choice get ErrSelectionDeferred back and must go through PlayCard or Pass.
func (g *Game) PlayTurn() error {
	if err := g.checkInProgress(); err != nil {
		return err
	}

	player := g.players.Current()
	selectedCard, err := player.PickCard(g.discard)
	if err != nil {
		return err
	}

	if selectedCard == nil {
		g.pass(player)
		return nil
	}

	g.commit(player, selectedCard)
	return nil
}

// PlayCard plays a card chosen from outside for the current player.
func (g *Game) PlayCard(selectedCard card.Card) error {
	if err := g.checkInProgress(); err != nil {
		return err
	}

	player := g.players.Current()
	if !player.Deck().Contains(selectedCard) {
		return ErrCardNotInHand
	}

	if !selectedCard.Matches(g.discard.Top()) {
		return ErrCardNotPlayable
	}

	player.Deck().Remove(selectedCard)
	g.commit(player, selectedCard)
	return nil
}

// Pass makes the current player draw a card and ends their turn.
func (g *Game) Pass() error {
	if err := g.checkInProgress(); err != nil {
		return err
	}

	g.pass(g.players.Current())
	return nil
}

func (g *Game) PlayableCards(player Player) []card.Card {
	var playableCards []card.Card
	top := g.discard.Top()
	for _, candidateCard := range player.Deck().Cards() {
		if candidateCard.Matches(top) {
			playableCards = append(playableCards, candidateCard)
		}
	}
	return playableCards
}

// ExtractState is the table as player sees it: their own hand and every
// seat's hand size.
func (g *Game) ExtractState(player Player) State {
	current := g.players.Current()
	var seats []Seat
	g.players.ForEach(func(seated Player) {
		seats = append(seats, Seat{
			Name:     seated.Name(),
			HandSize: seated.Deck().Size(),
			Current:  seated == current,
		})
	})

	return State{
		LastPlayedCard: g.discard.Top(),
		DrawPileSize:   g.drawPile.Size(),
		Hand:           player.Deck().Cards(),
		Seats:          seats,
	}
}

func (g *Game) checkInProgress() error {
	if g.Over() {
		return ErrGameOver
	}
	if !g.started {
		return ErrGameNotStarted
	}
	return nil
}

func (g *Game) pass(player Player) {
	g.replenish(1)
	drawn := g.drawPile.Pick(1)
	player.AddCards(drawn)
	event.PlayerPassed.Emit(event.PlayerPassedPayload{
		PlayerName: player.Name(),
		Drawn:      len(drawn),
	})
	g.players.Next()
}

// commit places playedCard, which has already left the player's hand. A
// winning card ends the game without applying its effect, so the turn stays
// with the winner.
func (g *Game) commit(player Player, playedCard card.Card) {
	won := player.HasWon()
	if !won {
		playedCard.Play(player, g)
	}
	g.discard.Add(playedCard)
	event.CardPlayed.Emit(event.CardPlayedPayload{
		PlayerName: player.Name(),
		Card:       playedCard,
	})

	if won {
		g.winner = player
		log.Infof("game %s won by %s\n", g.id, player.Name())
		event.PlayerWon.Emit(event.PlayerWonPayload{
			PlayerName: player.Name(),
		})
		return
	}

	g.players.Next()
}

// replenish moves every discard but the top one back under the draw pile
// once it holds fewer than minimum cards.
func (g *Game) replenish(minimum int) {
	if g.drawPile.Size() >= minimum || g.discard.Size() <= 1 {
		return
	}

	top := g.discard.PickOne()
	recycled := g.discard.Pick(g.discard.Size())
	g.discard.Add(top)
	g.drawPile.Recycle(recycled)
	log.Infof("game %s recycled %d discards into the draw pile\n", g.id, len(recycled))
}

// pickupReceiver reports forced draws as they land in a hand.
type pickupReceiver struct {
	player Player
}

func (r pickupReceiver) AddCards(cards []card.Card) {
	r.player.AddCards(cards)
	event.CardsPickedUp.Emit(event.CardsPickedUpPayload{
		PlayerName: r.player.Name(),
		Cards:      cards,
	})
}
