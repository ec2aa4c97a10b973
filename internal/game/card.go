package game

import "github.com/google/uuid"

type Rank string

type Suit string

var Ranks = []Rank{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}

var Suits = []Suit{"♠", "♥", "♦", "♣"}

var cardValues = map[Rank]int{
	"2": 2, "3": 3, "4": 4, "5": 5, "6": 6, "7": 7, "8": 8, "9": 9, "10": 10,
	"J": 10, "Q": 10, "K": 10, "A": 11,
}

// Card хранит номинал, масть и номер копии колоды внутри шуза.
// ID уникален у каждого экземпляра (ключ анимации в интерфейсе),
// на очки влияет только Rank.
type Card struct {
	Rank Rank
	Suit Suit
	Deck int
	ID   string
}

func newCard(rank Rank, suit Suit, deck int) Card {
	return Card{Rank: rank, Suit: suit, Deck: deck, ID: uuid.NewString()}
}

// Value возвращает старшее значение карты (туз как 11).
func (c Card) Value() int {
	return cardValues[c.Rank]
}

func (c Card) IsTenValue() bool {
	return cardValues[c.Rank] == 10
}

func (c Card) String() string {
	return string(c.Rank) + string(c.Suit)
}
