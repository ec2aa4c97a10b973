package game

import (
	"errors"
	"fmt"
)

var ErrNegativeWager = errors.New("wager is negative")

type Outcome int

const (
	OutcomeBlackjack Outcome = iota
	OutcomePush
	OutcomeBust
	OutcomeDealerBust
	OutcomeWin
	OutcomeLose
)

func (o Outcome) String() string {
	switch o {
	case OutcomeBlackjack:
		return "blackjack"
	case OutcomePush:
		return "push"
	case OutcomeBust:
		return "bust"
	case OutcomeDealerBust:
		return "dealer_bust"
	case OutcomeWin:
		return "win"
	case OutcomeLose:
		return "lose"
	default:
		return "unknown"
	}
}

// Settlement: сколько денег вернулось игроку по одной руке.
// Delta это полный возврат: 0 проигрыш, wager пуш, 2x выигрыш,
// floor(2.5x) блэкджек.
type Settlement struct {
	Delta   int
	Outcome Outcome
}

// Settle сравнивает завершённые руки в фиксированном порядке:
// блэкджек игрока, обоюдный блэкджек, перебор игрока, перебор дилера,
// потом сравнение очков. Перебор игрока проверяется раньше дилерского,
// обоюдный перебор остаётся проигрышем.
//
// Натуральные и обычные 21 после первых двух правил не различаются:
// блэкджек дилера против трёхкарточных 21 игрока даёт пуш. В игре до
// такого не доходит, раунд заканчивается раньше, но калькулятор ведёт
// себя именно так.
func Settle(player, dealer []Card, wager int) (Settlement, error) {
	if wager < 0 {
		return Settlement{}, ErrNegativeWager
	}
	pev, err := Evaluate(player)
	if err != nil {
		return Settlement{}, fmt.Errorf("player hand: %w", err)
	}
	dev, err := Evaluate(dealer)
	if err != nil {
		return Settlement{}, fmt.Errorf("dealer hand: %w", err)
	}

	playerBJ := IsBlackjack(player)
	dealerBJ := IsBlackjack(dealer)

	switch {
	case playerBJ && !dealerBJ:
		// выплата 3:2, дробная часть отбрасывается
		return Settlement{Delta: wager * 5 / 2, Outcome: OutcomeBlackjack}, nil
	case playerBJ && dealerBJ:
		return Settlement{Delta: wager, Outcome: OutcomePush}, nil
	case pev.Total > 21:
		return Settlement{Delta: 0, Outcome: OutcomeBust}, nil
	case dev.Total > 21:
		return Settlement{Delta: 2 * wager, Outcome: OutcomeDealerBust}, nil
	case pev.Total > dev.Total:
		return Settlement{Delta: 2 * wager, Outcome: OutcomeWin}, nil
	case pev.Total < dev.Total:
		return Settlement{Delta: 0, Outcome: OutcomeLose}, nil
	default:
		return Settlement{Delta: wager, Outcome: OutcomePush}, nil
	}
}

// HandWager: завершённая рука вместе со своей ставкой.
type HandWager struct {
	Cards []Card
	Wager int
}

// RoundSettlement: итог раунда по всем рукам после сплита.
type RoundSettlement struct {
	Hands  []Settlement
	Delta  int
	Staked int
}

// Net возвращает изменение баланса за раунд.
func (r RoundSettlement) Net() int {
	return r.Delta - r.Staked
}

// SettleAll считает каждую руку независимо по тем же правилам
// и складывает возвраты.
func SettleAll(hands []HandWager, dealer []Card) (RoundSettlement, error) {
	var round RoundSettlement
	for i, hw := range hands {
		s, err := Settle(hw.Cards, dealer, hw.Wager)
		if err != nil {
			return RoundSettlement{}, fmt.Errorf("hand %d: %w", i+1, err)
		}
		round.Hands = append(round.Hands, s)
		round.Delta += s.Delta
		round.Staked += hw.Wager
	}
	return round, nil
}
