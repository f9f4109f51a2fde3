package game

import (
	"sort"

	"github.com/awesome-cap/hashmap"
)

var games = hashmap.New()

// Register makes a running game reachable by its ID.
func Register(g *Game) {
	games.Set(g.ID(), g)
}

func Find(id string) *Game {
	if v, ok := games.Get(id); ok {
		return v.(*Game)
	}
	return nil
}

func Remove(id string) {
	games.Del(id)
}

// Games lists the registered games ordered by ID.
func Games() []*Game {
	list := make([]*Game, 0)
	games.Foreach(func(e *hashmap.Entry) {
		list = append(list, e.Value().(*Game))
	})
	sort.Slice(list, func(i, j int) bool {
		return list[i].ID() < list[j].ID()
	})
	return list
}
