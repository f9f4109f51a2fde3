package player

import (
	"math/rand"

	"github.com/unoplusplus/uno/uno/game"
)

var botNames = []string{
	"Ada", "Basil", "Clover", "Dorian",
	"Esme", "Felix", "Greta", "Hugo",
	"Iris", "Jasper", "Kit", "Luna",
	"Milo", "Nell", "Otto", "Pip",
	"Quinn", "Rosa", "Sol", "Tess",
	"Umber", "Vera", "Wren", "Xavi",
	"Yara", "Zeno",
}

// CreatePlayers seats a human first, when humanPlayerName is not empty, and
// fills the rest of the table with computer players.
func CreatePlayers(numberOfPlayers int, humanPlayerName string, strategy Strategy) []game.Player {
	players := make([]game.Player, 0, numberOfPlayers)
	if humanPlayerName != "" {
		players = append(players, NewHumanPlayer(humanPlayerName))
	}
	players = append(players, generateBots(numberOfPlayers-len(players), humanPlayerName, strategy)...)
	return players
}

func generateBots(amount int, takenName string, strategy Strategy) []game.Player {
	names := make([]string, 0, len(botNames))
	for _, name := range botNames {
		if name != takenName {
			names = append(names, name)
		}
	}
	rand.Shuffle(len(names), func(i int, j int) { names[i], names[j] = names[j], names[i] })

	if amount > len(names) {
		amount = len(names)
	}
	if amount < 0 {
		amount = 0
	}
	bots := make([]game.Player, 0, amount)
	for _, botName := range names[:amount] {
		bots = append(bots, NewComputerPlayer(botName, strategy))
	}
	return bots
}
