package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unoplusplus/uno/uno/game"
)

func TestCyclerStartsBeforeTheFirstSeat(t *testing.T) {
	seats := game.NewCycler([]int{10, 20, 30})
	assert.Equal(t, 30, seats.Current())
	assert.Equal(t, 10, seats.Peek())
	assert.Equal(t, 10, seats.Next())
	assert.Equal(t, 3, seats.Len())
}

func TestCyclerWrapsClockwise(t *testing.T) {
	seats := game.NewCycler([]int{10, 20, 30})
	var visited []int
	for i := 0; i < 7; i++ {
		visited = append(visited, seats.Next())
	}
	require.Equal(t, []int{10, 20, 30, 10, 20, 30, 10}, visited)
}

func TestCyclerReverseWrapsCounterClockwise(t *testing.T) {
	seats := game.NewCycler([]int{10, 20, 30, 40, 50})
	seats.Next()
	seats.Reverse()

	var visited []int
	for i := 0; i < 6; i++ {
		visited = append(visited, seats.Next())
	}
	require.Equal(t, []int{50, 40, 30, 20, 10, 50}, visited)

	seats.Reverse()
	assert.Equal(t, 10, seats.Next(), "reversing twice restores the direction")
}

func TestCyclerPeekFollowsDirection(t *testing.T) {
	seats := game.NewCycler([]int{10, 20, 30})
	seats.Next()
	seats.Next()
	assert.Equal(t, 30, seats.Peek())

	seats.Reverse()
	assert.Equal(t, 10, seats.Peek())
	assert.Equal(t, 20, seats.Current(), "peek does not move")
}

func TestCyclerForEachIgnoresDirection(t *testing.T) {
	seats := game.NewCycler([]int{10, 20, 30})
	seats.Next()
	seats.Reverse()

	var visited []int
	seats.ForEach(func(seat int) {
		visited = append(visited, seat)
	})
	require.Equal(t, []int{10, 20, 30}, visited)
	assert.Equal(t, 10, seats.Current())
}

func TestCyclerSingleSeat(t *testing.T) {
	seats := game.NewCycler([]int{7})
	assert.Equal(t, 7, seats.Next())
	assert.Equal(t, 7, seats.Peek())
	seats.Reverse()
	assert.Equal(t, 7, seats.Next())
}

func TestCyclerTwoSeatsReverse(t *testing.T) {
	seats := game.NewCycler([]int{1, 2})
	assert.Equal(t, 1, seats.Next())
	seats.Reverse()
	assert.Equal(t, 2, seats.Next(), "reversing with two seats still passes the turn")
	assert.Equal(t, 1, seats.Next())
}
