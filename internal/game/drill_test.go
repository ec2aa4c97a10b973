package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScenarioFilters(t *testing.T) {
	shoe := NewShoe(2, rand.New(rand.NewSource(11)))

	for _, kind := range []HandKind{KindPair, KindSoft, KindHard} {
		t.Run(string(kind), func(t *testing.T) {
			sc, err := NewScenario(shoe, kind)
			require.NoError(t, err)

			require.Len(t, sc.Player, 2)
			assert.NotEmpty(t, sc.Dealer.Rank)
			assert.Equal(t, kind, sc.Kind)

			got, err := Classify(sc.Player)
			require.NoError(t, err)
			assert.Equal(t, kind, got)
		})
	}
}

func TestNewScenarioAdviceMatchesTable(t *testing.T) {
	shoe := NewShoe(2, rand.New(rand.NewSource(3)))

	for i := 0; i < 50; i++ {
		sc, err := NewScenario(shoe, "")
		require.NoError(t, err)

		want, err := Recommend(sc.Player, sc.Dealer, Options{CanDouble: true, CanSplit: true})
		require.NoError(t, err)
		assert.Equal(t, want, sc.Advice)
		assert.NotEmpty(t, sc.Advice.Reason)
	}
}

func TestNewScenarioDeterministic(t *testing.T) {
	a, err := NewScenario(NewShoe(1, rand.New(rand.NewSource(5))), KindHard)
	require.NoError(t, err)
	b, err := NewScenario(NewShoe(1, rand.New(rand.NewSource(5))), KindHard)
	require.NoError(t, err)

	assert.Equal(t, ranksOf(a.Player), ranksOf(b.Player))
	assert.Equal(t, a.Dealer.Rank, b.Dealer.Rank)
	assert.Equal(t, a.Advice, b.Advice)
}

func TestScenarioGrade(t *testing.T) {
	sc := &Scenario{
		Player: hand("8", "8"),
		Dealer: Card{Rank: "6", Suit: "♦"},
		Kind:   KindPair,
		Advice: Advice{Action: ActionSplit, Reason: "пару восьмёрок делим против любой карты"},
	}

	assert.True(t, sc.Grade(ActionSplit))
	assert.False(t, sc.Grade(ActionHit))
}

func TestGradeAction(t *testing.T) {
	h := &Hand{Cards: hand("6", "5"), Bet: 100}
	up := Card{Rank: "9", Suit: "♣"}

	correct, adv, err := GradeAction(h, up, ActionDouble)
	require.NoError(t, err)
	assert.True(t, correct)
	assert.Equal(t, ActionDouble, adv.Action)

	correct, adv, err = GradeAction(h, up, ActionHit)
	require.NoError(t, err)
	assert.False(t, correct)
	assert.Equal(t, ActionDouble, adv.Action)
}

func TestGradeActionRespectsHandOptions(t *testing.T) {
	// три карты: удвоение уже недоступно, совет понижается до добора
	h := &Hand{Cards: hand("2", "4", "5"), Bet: 100}
	up := Card{Rank: "9", Suit: "♣"}

	correct, adv, err := GradeAction(h, up, ActionHit)
	require.NoError(t, err)
	assert.True(t, correct)
	assert.Equal(t, ActionHit, adv.Action)
}

func TestGradeActionErrors(t *testing.T) {
	h := &Hand{Cards: hand("6", "5"), Bet: 100}
	_, _, err := GradeAction(h, Card{}, ActionHit)
	assert.ErrorIs(t, err, ErrNoDealerCard)
}
