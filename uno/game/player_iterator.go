package game

// PlayerIterator is the turn order of a table, with lookup by name.
type PlayerIterator struct {
	byName map[string]Player
	seats  *Cycler[Player]
}

func newPlayerIterator(players []Player) (*PlayerIterator, error) {
	byName := make(map[string]Player, len(players))
	for _, player := range players {
		if _, found := byName[player.Name()]; found {
			return nil, ErrDuplicatePlayerName
		}
		byName[player.Name()] = player
	}
	seats := make([]Player, len(players))
	copy(seats, players)
	return &PlayerIterator{
		byName: byName,
		seats:  NewCycler(seats),
	}, nil
}

func (i *PlayerIterator) Get(name string) Player {
	return i.byName[name]
}

func (i *PlayerIterator) Current() Player {
	return i.seats.Current()
}

// Peek is the player who acts after the current one.
func (i *PlayerIterator) Peek() Player {
	return i.seats.Peek()
}

// ForEach visits players in seating order, leaving the turn untouched.
func (i *PlayerIterator) ForEach(function func(player Player)) {
	i.seats.ForEach(function)
}

func (i *PlayerIterator) Next() Player {
	return i.seats.Next()
}

func (i *PlayerIterator) Reverse() {
	i.seats.Reverse()
}

// Skip advances past the next player. The player after them is not yet
// current; the committing turn's Next lands on them.
func (i *PlayerIterator) Skip() Player {
	return i.seats.Next()
}

func (i *PlayerIterator) Len() int {
	return i.seats.Len()
}
