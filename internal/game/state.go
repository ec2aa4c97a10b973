package game

// рука для сплита
type Hand struct {
	Cards     []Card
	Bet       int
	IsStand   bool
	IsDouble  bool
	IsBust    bool
	FromSplit bool
	SplitAces bool
}

func NewHand(bet int) *Hand {
	return &Hand{
		Cards: make([]Card, 0, 10),
		Bet:   bet,
	}
}

// total для рук внутри раунда, они всегда не пустые
func total(cards []Card) int {
	ev, _ := Evaluate(cards)
	return ev.Total
}

func (h *Hand) Score() int {
	return total(h.Cards)
}

func (h *Hand) CanSplit() bool {
	if len(h.Cards) != 2 || h.FromSplit {
		return false
	}
	// проверка карт на одинаковость, десятка и картинка тоже пара
	return h.Cards[0].Value() == h.Cards[1].Value()
}

func (h *Hand) CanDouble() bool {
	return len(h.Cards) == 2 && !h.IsDouble && !h.SplitAces
}

// Options собирает доступные действия для совета по этой руке.
func (h *Hand) Options() Options {
	return Options{CanDouble: h.CanDouble(), CanSplit: h.CanSplit()}
}

// Храним состояние раунда
type State struct {
	Hands       []*Hand
	DealerCards []Card
	CurrentHand int
	IsActive    bool
	InitialBet  int
	shoe        *Shoe
}

// NewState раздаёт начальные руки из общего шуза сессии.
func NewState(bet int, shoe *Shoe) *State {
	s := &State{
		shoe:        shoe,
		Hands:       make([]*Hand, 0, 4),
		DealerCards: make([]Card, 0, 10),
		CurrentHand: 0,
		IsActive:    true,
		InitialBet:  bet,
	}

	hand := NewHand(bet)
	hand.Cards = append(hand.Cards, shoe.Draw(), shoe.Draw())
	s.Hands = append(s.Hands, hand)

	s.DealerCards = append(s.DealerCards, shoe.Draw(), shoe.Draw())

	return s
}

// текущая рука
func (s *State) Current() *Hand {
	if s.CurrentHand >= len(s.Hands) {
		return nil
	}
	return s.Hands[s.CurrentHand]
}

// Общая ставка всех рук
func (s *State) TotalBet() int {
	total := 0
	for _, h := range s.Hands {
		total += h.Bet
	}
	return total
}

// Открытая карта дилера.
func (s *State) DealerUp() Card {
	if len(s.DealerCards) == 0 {
		return Card{}
	}
	return s.DealerCards[0]
}

// hit для текущей руки
func (s *State) Hit() (Card, bool) {
	hand := s.Current()
	if hand == nil {
		return Card{}, false
	}

	card := s.shoe.Draw()
	hand.Cards = append(hand.Cards, card)

	if hand.Score() > 21 {
		hand.IsBust = true
		hand.IsStand = true
	}
	return card, true
}

// stand останавливает текущую руку
func (s *State) Stand() {
	hand := s.Current()
	if hand != nil {
		hand.IsStand = true
	}
}

// double: удвоенная ставка, одна карта и рука закрыта
func (s *State) Double() (Card, bool) {
	hand := s.Current()
	if hand == nil || !hand.CanDouble() {
		return Card{}, false
	}

	hand.Bet *= 2
	hand.IsDouble = true

	card := s.shoe.Draw()
	hand.Cards = append(hand.Cards, card)

	if hand.Score() > 21 {
		hand.IsBust = true
	}
	hand.IsStand = true

	return card, true
}

// Split раскладывает пару на две руки с той же ставкой.
// Повторный сплит не разрешён. Разделённые тузы получают
// по одной карте и сразу закрываются.
func (s *State) Split() bool {
	hand := s.Current()
	if hand == nil || !hand.CanSplit() {
		return false
	}

	secondCard := hand.Cards[1]
	isAces := hand.Cards[0].Rank == "A"

	hand.Cards = []Card{hand.Cards[0]}
	hand.FromSplit = true
	hand.SplitAces = isAces

	newHand := NewHand(hand.Bet)
	newHand.Cards = []Card{secondCard}
	newHand.FromSplit = true
	newHand.SplitAces = isAces

	// добираем по карте в каждую руку
	hand.Cards = append(hand.Cards, s.shoe.Draw())
	newHand.Cards = append(newHand.Cards, s.shoe.Draw())

	s.Hands = append(s.Hands[:s.CurrentHand+1], append([]*Hand{newHand}, s.Hands[s.CurrentHand+1:]...)...)

	if isAces {
		hand.IsStand = true
		newHand.IsStand = true
	}

	return true
}

// переход на следующую незакрытую руку
func (s *State) NextHand() bool {
	s.CurrentHand++

	for s.CurrentHand < len(s.Hands) && s.Hands[s.CurrentHand].IsStand {
		s.CurrentHand++
	}
	return s.CurrentHand < len(s.Hands)
}

// проверка что все руки завершены
func (s *State) AllHandsComplete() bool {
	for _, h := range s.Hands {
		if !h.IsStand {
			return false
		}
	}
	return true
}

// DealerPlay добирает дилеру до 17, на любых 17 дилер стоит.
// Если все руки игрока перебрали, дилер не играет.
func (s *State) DealerPlay() {
	allBust := true
	for _, h := range s.Hands {
		if !h.IsBust {
			allBust = false
			break
		}
	}
	if allBust {
		return
	}

	for total(s.DealerCards) < 17 {
		s.DealerCards = append(s.DealerCards, s.shoe.Draw())
	}
}

func (s *State) DealerScore() int {
	return total(s.DealerCards)
}

func (s *State) Finish() {
	s.IsActive = false
	s.DealerPlay()
}

// Settle подводит итог раунда по всем рукам.
func (s *State) Settle() (RoundSettlement, error) {
	hands := make([]HandWager, 0, len(s.Hands))
	for _, h := range s.Hands {
		hands = append(hands, HandWager{Cards: h.Cards, Wager: h.Bet})
	}
	return SettleAll(hands, s.DealerCards)
}

func (s *State) CanSplit() bool {
	hand := s.Current()
	return hand != nil && hand.CanSplit()
}

func (s *State) CanDouble() bool {
	hand := s.Current()
	return hand != nil && hand.CanDouble()
}

func (s *State) HasMultipleHands() bool {
	return len(s.Hands) > 1
}
