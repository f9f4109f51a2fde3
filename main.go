package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/unoplusplus/uno/config"
	"github.com/unoplusplus/uno/uno/game"
	"github.com/unoplusplus/uno/uno/player"
	"github.com/unoplusplus/uno/uno/ui"
	"golang.org/x/term"
)

// maxTurns stops a table where nobody can play and nothing is left to draw.
const maxTurns = 5000

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}

	flag.IntVar(&cfg.Players, "players", cfg.Players, "number of players at the table")
	flag.IntVar(&cfg.HandSize, "hand", cfg.HandSize, "cards dealt to each player")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "shuffle seed, 0 for the clock")
	flag.StringVar(&cfg.HumanName, "name", cfg.HumanName, "your name, empty to watch computers play")
	flag.StringVar(&cfg.Strategy, "strategy", cfg.Strategy, "computer strategy: last-match, first-match or most-follow-ups")
	flag.IntVar(&cfg.DelayMs, "delay", cfg.DelayMs, "pause between messages in milliseconds")
	flag.Parse()

	if err := run(cfg); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	strategy, err := player.ParseStrategy(cfg.Strategy)
	if err != nil {
		return err
	}

	humanName := cfg.HumanName
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		humanName = ""
	}

	g, err := game.New(player.CreatePlayers(cfg.Players, humanName, strategy), cfg.Seed)
	if err != nil {
		return err
	}
	game.Register(g)
	defer game.Remove(g.ID())
	reportOnInterrupt()

	ui.Delay = time.Duration(cfg.DelayMs) * time.Millisecond
	ui.Narrate()
	ui.Message.Welcome()

	return play(g.ID(), cfg.HandSize)
}

// reportOnInterrupt logs the games still running when the process is
// interrupted, then exits.
func reportOnInterrupt() {
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	go func() {
		<-interrupts
		for _, g := range game.Games() {
			log.Infof("game %s interrupted with %d cards on the discard pile\n", g.ID(), g.Discard().Size())
		}
		os.Exit(130)
	}()
}

// play deals and runs the registered game to completion.
func play(id string, handSize int) error {
	g := game.Find(id)
	if g == nil {
		return fmt.Errorf("game %s is not registered", id)
	}

	if err := g.DealStartingCards(handSize); err != nil {
		return err
	}
	g.PlayFirstCard()

	for turn := 0; !g.Over(); turn++ {
		if turn == maxTurns {
			log.Infof("game %s abandoned after %d turns\n", g.ID(), maxTurns)
			return nil
		}

		err := g.PlayTurn()
		if errors.Is(err, game.ErrSelectionDeferred) {
			err = playHumanTurn(g)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func playHumanTurn(g *game.Game) error {
	current := g.Current()
	ui.Message.HumanPlayerTurnStarted(current.Name(), g.ExtractState(current))

	playableCards := g.PlayableCards(current)
	if len(playableCards) == 0 {
		ui.Message.HumanPlayerHasNoMatchingCardsInHand(current.Name(), g.Discard().Top())
		return g.Pass()
	}

	for {
		selectedCard, err := ui.PromptCardSelection(playableCards)
		if err != nil {
			return err
		}
		if selectedCard == nil {
			return g.Pass()
		}

		err = g.PlayCard(selectedCard)
		if errors.Is(err, game.ErrCardNotInHand) || errors.Is(err, game.ErrCardNotPlayable) {
			ui.Message.InvalidSelection(err)
			continue
		}
		return err
	}
}
