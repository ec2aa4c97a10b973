package game

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"time"
)

const DefaultDecks = 6

// Shoe хранит decks копий стандартной колоды и выдаёт карты по одной.
// Генератор передаётся снаружи: с фиксированным seed раздачи
// воспроизводятся один в один.
type Shoe struct {
	decks int
	cards []Card
	rng   *rand.Rand
}

func NewShoe(decks int, rng *rand.Rand) *Shoe {
	if decks <= 0 {
		decks = DefaultDecks
	}
	if rng == nil {
		seed, err := NewSeed()
		if err != nil {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}
	s := &Shoe{decks: decks, rng: rng}
	s.Refill()
	return s
}

// Refill собирает шуз заново и перемешивает.
func (s *Shoe) Refill() {
	s.cards = make([]Card, 0, s.decks*52)
	for d := 0; d < s.decks; d++ {
		for _, suit := range Suits {
			for _, rank := range Ranks {
				s.cards = append(s.cards, newCard(rank, suit, d))
			}
		}
	}
	s.rng.Shuffle(len(s.cards), func(i, j int) {
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	})
}

// Draw снимает верхнюю карту. Пустой шуз пересобирается на месте,
// поэтому раздача не может остановиться из-за нехватки карт.
func (s *Shoe) Draw() Card {
	if len(s.cards) == 0 {
		s.Refill()
	}
	card := s.cards[0]
	s.cards = s.cards[1:]
	return card
}

func (s *Shoe) Remaining() int {
	return len(s.cards)
}

// LowOnCards сообщает, что осталось меньше четверти шуза.
// Проверяем между раундами, внутри раунда шуз не трогаем.
func (s *Shoe) LowOnCards() bool {
	return len(s.cards) < s.decks*52/4
}

// NewSeed возвращает криптослучайный seed для перемешивания.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
