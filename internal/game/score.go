package game

import "errors"

var ErrNoCards = errors.New("hand has no cards")

// Evaluation: сколько очков в руке и считается ли хотя бы один туз за 11.
type Evaluation struct {
	Total int
	Soft  bool
}

// Evaluate подсчитывает очки руки. Тузы сначала идут по 11,
// потом по одному переводятся в 1, пока есть перебор.
func Evaluate(cards []Card) (Evaluation, error) {
	if len(cards) == 0 {
		return Evaluation{}, ErrNoCards
	}

	total := 0
	aces := 0
	for _, c := range cards {
		total += c.Value()
		if c.Rank == "A" {
			aces++
		}
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}

	return Evaluation{Total: total, Soft: aces > 0}, nil
}

// IsBlackjack проверяет блэкджек: ровно две карты на 21.
// Три карты на 21 блэкджеком уже не считаются.
func IsBlackjack(cards []Card) bool {
	if len(cards) != 2 {
		return false
	}
	hasAce := cards[0].Rank == "A" || cards[1].Rank == "A"
	hasTen := cards[0].IsTenValue() || cards[1].IsTenValue()
	return hasAce && hasTen
}

// IsBust проверяет перебор.
func IsBust(cards []Card) bool {
	ev, err := Evaluate(cards)
	return err == nil && ev.Total > 21
}

// IsPair: две карты одного достоинства, десятка с картинкой тоже пара.
func IsPair(cards []Card) bool {
	return len(cards) == 2 && cards[0].Value() == cards[1].Value()
}

type HandKind string

const (
	KindPair    HandKind = "pair"
	KindSoft    HandKind = "soft"
	KindHard    HandKind = "hard"
	KindUnknown HandKind = "unknown"
)

// Classify относит стартовую руку к разделу стратегии: пары, мягкие
// или жёсткие руки. Разделы определены только для двух карт, любая
// другая рука получает unknown.
func Classify(cards []Card) (HandKind, error) {
	ev, err := Evaluate(cards)
	if err != nil {
		return KindUnknown, err
	}
	if len(cards) != 2 {
		return KindUnknown, nil
	}
	switch {
	case IsPair(cards):
		return KindPair, nil
	case ev.Soft:
		return KindSoft, nil
	default:
		return KindHard, nil
	}
}
