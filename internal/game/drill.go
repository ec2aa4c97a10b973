package game

import "errors"

var ErrNoScenario = errors.New("could not deal a matching scenario")

const maxDealAttempts = 1000

// Scenario: сданная для тренировки рука и правильный ход по таблице.
// Советы считаются с полным набором действий, как на первом решении раунда.
type Scenario struct {
	Player []Card
	Dealer Card
	Kind   HandKind
	Advice Advice
}

// NewScenario сдаёт из шуза руку нужного раздела таблицы.
// Пустой kind принимает любую руку. Неподошедшие раздачи уходят в сброс,
// шуз при исчерпании пересобирается сам.
func NewScenario(shoe *Shoe, kind HandKind) (*Scenario, error) {
	for i := 0; i < maxDealAttempts; i++ {
		player := []Card{shoe.Draw(), shoe.Draw()}
		dealer := shoe.Draw()

		got, err := Classify(player)
		if err != nil {
			return nil, err
		}
		if kind != "" && got != kind {
			continue
		}

		adv, err := Recommend(player, dealer, Options{CanDouble: true, CanSplit: true})
		if err != nil {
			return nil, err
		}
		return &Scenario{Player: player, Dealer: dealer, Kind: got, Advice: adv}, nil
	}
	return nil, ErrNoScenario
}

// Grade сверяет ответ игрока с таблицей.
func (sc *Scenario) Grade(answer Action) bool {
	return answer == sc.Advice.Action
}

// GradeAction оценивает ход, сделанный в живой игре.
// Вызывается до применения хода, пока рука не изменилась.
func GradeAction(hand *Hand, dealer Card, action Action) (bool, Advice, error) {
	adv, err := Recommend(hand.Cards, dealer, hand.Options())
	if err != nil {
		return false, Advice{}, err
	}
	return action == adv.Action, adv, nil
}
