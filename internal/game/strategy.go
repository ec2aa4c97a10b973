package game

import "errors"

var ErrNoDealerCard = errors.New("dealer up-card is missing")

type Action string

const (
	ActionHit    Action = "hit"
	ActionStand  Action = "stand"
	ActionDouble Action = "double"
	ActionSplit  Action = "split"
)

// Options: какие действия доступны игроку в момент решения.
// Оба поля обязательные, дефолтов нет.
type Options struct {
	CanDouble bool
	CanSplit  bool
}

// Advice: рекомендованное действие и короткое объяснение для игрока.
type Advice struct {
	Action Action
	Reason string
}

// Recommend возвращает ход по базовой стратегии.
// Порядок разделов фиксированный: пары (только при доступном сплите),
// затем мягкие руки, затем жёсткие. Если таблица просит удвоение,
// а оно недоступно, совет понижается до добора, никогда до стенда.
func Recommend(player []Card, dealer Card, opts Options) (Advice, error) {
	if dealer.Rank == "" {
		return Advice{}, ErrNoDealerCard
	}
	ev, err := Evaluate(player)
	if err != nil {
		return Advice{}, err
	}

	d := dealer.Value()

	if opts.CanSplit && IsPair(player) {
		return pairAdvice(player[0], d), nil
	}
	if ev.Soft {
		return softAdvice(ev.Total, d, opts), nil
	}
	return hardAdvice(ev.Total, d, opts), nil
}

func pairAdvice(c Card, d int) Advice {
	switch {
	case c.Rank == "A":
		return Advice{ActionSplit, "пару тузов делим против любой карты"}
	case c.Rank == "8":
		return Advice{ActionSplit, "пару восьмёрок делим против любой карты"}
	case c.IsTenValue():
		return Advice{ActionStand, "двадцать очков: стоим, пару не трогаем"}
	case c.Rank == "9":
		if d <= 9 && d != 7 {
			return Advice{ActionSplit, "девятки делим против 2-9, кроме семёрки"}
		}
		return Advice{ActionStand, "против 7, десятки и туза на 18 стоим"}
	case c.Rank == "7":
		if d <= 7 {
			return Advice{ActionSplit, "семёрки делим против 2-7"}
		}
		return Advice{ActionHit, "против сильной карты дилера добираем"}
	case c.Rank == "6":
		if d <= 6 {
			return Advice{ActionSplit, "шестёрки делим против 2-6"}
		}
		return Advice{ActionHit, "против сильной карты дилера добираем"}
	case c.Rank == "4":
		if d == 5 || d == 6 {
			return Advice{ActionSplit, "четвёрки делим только против 5 и 6"}
		}
		return Advice{ActionHit, "пару четвёрок обычно добираем"}
	case c.Rank == "3", c.Rank == "2":
		if d <= 7 {
			return Advice{ActionSplit, "мелкие пары делим против 2-7"}
		}
		return Advice{ActionHit, "против сильной карты дилера добираем"}
	default:
		// пара пятёрок: в этой таблице добор, а не удвоение жёсткой десятки
		return Advice{ActionHit, "пару пятёрок не делим, добираем карту"}
	}
}

func softAdvice(total, d int, opts Options) Advice {
	switch {
	case total >= 19:
		return Advice{ActionStand, "мягкие 19 и больше: всегда стоим"}
	case total == 18:
		switch {
		case d >= 3 && d <= 6:
			return doubleOrHit(opts, "мягкие 18 удваиваем против 3-6")
		case d == 2 || d == 7 || d == 8:
			return Advice{ActionStand, "мягкие 18 против 2, 7 и 8: стоим"}
		default:
			return Advice{ActionHit, "мягкие 18 против 9, 10 и туза: добираем"}
		}
	case total == 17:
		if d >= 3 && d <= 6 {
			return doubleOrHit(opts, "мягкие 17 удваиваем против 3-6")
		}
		return Advice{ActionHit, "мягкой руке перебор не грозит: добираем"}
	case total >= 15:
		if d >= 4 && d <= 6 {
			return doubleOrHit(opts, "мягкие 15-16 удваиваем против 4-6")
		}
		return Advice{ActionHit, "мягкой руке перебор не грозит: добираем"}
	case total >= 13:
		if d == 5 || d == 6 {
			return doubleOrHit(opts, "мягкие 13-14 удваиваем против 5 и 6")
		}
		return Advice{ActionHit, "мягкой руке перебор не грозит: добираем"}
	default:
		// мягкие 12 бывают только из пары тузов без сплита
		return Advice{ActionHit, "мягкой руке перебор не грозит: добираем"}
	}
}

func hardAdvice(total, d int, opts Options) Advice {
	switch {
	case total >= 17:
		return Advice{ActionStand, "жёсткие 17 и больше: всегда стоим"}
	case total >= 13:
		if d <= 6 {
			return Advice{ActionStand, "против слабой карты дилера стоим: пусть перебирает"}
		}
		return Advice{ActionHit, "против сильной карты дилера добираем"}
	case total == 12:
		if d >= 4 && d <= 6 {
			return Advice{ActionStand, "12 очков стоим только против 4-6"}
		}
		return Advice{ActionHit, "против сильной карты дилера добираем"}
	case total == 11:
		return doubleOrHit(opts, "11 очков: лучшая рука для удвоения")
	case total == 10:
		if d <= 9 {
			return doubleOrHit(opts, "10 очков удваиваем против 2-9")
		}
		return Advice{ActionHit, "против десятки и туза просто добираем"}
	case total == 9:
		if d >= 3 && d <= 6 {
			return doubleOrHit(opts, "9 очков удваиваем против 3-6")
		}
		return Advice{ActionHit, "против сильной карты дилера добираем"}
	default:
		return Advice{ActionHit, "8 и меньше: всегда добираем"}
	}
}

// doubleOrHit понижает удвоение до добора, когда удвоение недоступно.
func doubleOrHit(opts Options, reason string) Advice {
	if opts.CanDouble {
		return Advice{ActionDouble, reason}
	}
	return Advice{ActionHit, "удвоение недоступно, просто берём карту"}
}
