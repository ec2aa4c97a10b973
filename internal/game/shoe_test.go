package game

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShoeComposition(t *testing.T) {
	const decks = 6
	s := NewShoe(decks, rand.New(rand.NewSource(1)))
	require.Equal(t, decks*52, s.Remaining())

	seen := make(map[string]int)
	for i := 0; i < decks*52; i++ {
		c := s.Draw()
		seen[fmt.Sprintf("%s#%d", c, c.Deck)]++
	}

	assert.Len(t, seen, decks*52)
	for key, n := range seen {
		assert.Equal(t, 1, n, "card %s drawn %d times", key, n)
	}
}

func TestShoeDeterministicOrder(t *testing.T) {
	a := NewShoe(2, rand.New(rand.NewSource(42)))
	b := NewShoe(2, rand.New(rand.NewSource(42)))

	for i := 0; i < 30; i++ {
		ca, cb := a.Draw(), b.Draw()
		require.Equal(t, ca.String(), cb.String(), "position %d", i)
		require.Equal(t, ca.Deck, cb.Deck, "position %d", i)
	}

	c := NewShoe(2, rand.New(rand.NewSource(43)))
	diff := false
	for i := 0; i < 30; i++ {
		if a.Draw().String() != c.Draw().String() {
			diff = true
			break
		}
	}
	assert.True(t, diff, "different seeds produced identical order")
}

func TestShoeDrawOnEmptyRefills(t *testing.T) {
	s := NewShoe(1, rand.New(rand.NewSource(7)))
	for i := 0; i < 52; i++ {
		s.Draw()
	}
	require.Equal(t, 0, s.Remaining())

	c := s.Draw()
	assert.NotEmpty(t, c.Rank)
	assert.Equal(t, 51, s.Remaining())
}

func TestShoeLowOnCards(t *testing.T) {
	s := NewShoe(1, rand.New(rand.NewSource(7)))

	for s.Remaining() > 13 {
		s.Draw()
	}
	assert.False(t, s.LowOnCards(), "exactly a quarter left is not low yet")

	s.Draw()
	assert.True(t, s.LowOnCards())

	s.Refill()
	assert.False(t, s.LowOnCards())
	assert.Equal(t, 52, s.Remaining())
}

func TestShoeDefaults(t *testing.T) {
	s := NewShoe(0, nil)
	assert.Equal(t, DefaultDecks*52, s.Remaining())
}
