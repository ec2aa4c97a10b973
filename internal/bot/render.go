package bot

import (
	"fmt"
	"strings"

	"github.com/carltonnorthern/soft-splits-blackjack/internal/game"
)

func cardsLine(cards []game.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// formatStatus показывает все руки игрока, стрелка стоит на активной.
// Вторая карта дилера закрыта, пока раунд не доигран.
func formatStatus(st *game.State, showDealer bool) string {
	var sb strings.Builder

	if st.HasMultipleHands() {
		for i, h := range st.Hands {
			if i == st.CurrentHand && st.IsActive {
				sb.WriteString("➤ ")
			}
			sb.WriteString(fmt.Sprintf("🎴 Рука %d: %s (%d), ставка %d", i+1, cardsLine(h.Cards), h.Score(), h.Bet))
			if h.IsBust {
				sb.WriteString(" 💥")
			}
			sb.WriteString("\n")
		}
	} else {
		h := st.Hands[0]
		sb.WriteString(fmt.Sprintf("🎴 Вы: %s (%d)\n", cardsLine(h.Cards), h.Score()))
	}

	if showDealer {
		sb.WriteString(fmt.Sprintf("🃏 Дилер: %s (%d)", cardsLine(st.DealerCards), st.DealerScore()))
	} else {
		sb.WriteString(fmt.Sprintf("🃏 Дилер: [%s ?]", st.DealerUp()))
	}

	return sb.String()
}

func outcomeText(o game.Outcome) string {
	switch o {
	case game.OutcomeBlackjack:
		return "🎰 BLACKJACK!"
	case game.OutcomePush:
		return "🤝 Ничья!"
	case game.OutcomeBust:
		return "💥 Перебор!"
	case game.OutcomeDealerBust:
		return "🎉 Дилер перебрал!"
	case game.OutcomeWin:
		return "🎉 Вы выиграли!"
	default:
		return "😔 Дилер выиграл!"
	}
}

func formatRoundEnd(st *game.State, round game.RoundSettlement, balance int) string {
	var sb strings.Builder
	sb.WriteString(formatStatus(st, true))
	sb.WriteString("\n\n")

	if st.HasMultipleHands() {
		for i, s := range round.Hands {
			sb.WriteString(fmt.Sprintf("Рука %d: %s", i+1, outcomeText(s.Outcome)))
			if s.Delta > 0 {
				sb.WriteString(fmt.Sprintf(" +%d", s.Delta))
			}
			sb.WriteString("\n")
		}
	} else {
		sb.WriteString(outcomeText(round.Hands[0].Outcome))
		sb.WriteString("\n")
	}

	if round.Delta > 0 {
		sb.WriteString(fmt.Sprintf("💰 Возврат: +%d\n", round.Delta))
	}
	sb.WriteString(fmt.Sprintf("💵 Баланс: %d", balance))

	return sb.String()
}

func formatAdvice(adv game.Advice) string {
	return fmt.Sprintf("💡 Совет: %s\n%s", actionLabels[adv.Action], adv.Reason)
}

// formatGrade: отметка за сделанный ход против базовой стратегии.
func formatGrade(correct bool, adv game.Advice) string {
	if correct {
		return "✅ Верно по таблице!"
	}
	return fmt.Sprintf("❌ По таблице: %s\n%s", actionLabels[adv.Action], adv.Reason)
}

func formatScenario(sc *game.Scenario) string {
	return fmt.Sprintf("🎓 Ваша рука: %s\n🃏 Дилер: %s\n\nВаш ход?", cardsLine(sc.Player), sc.Dealer)
}

func kindTitle(kind game.HandKind) string {
	switch kind {
	case game.KindPair:
		return "пары"
	case game.KindSoft:
		return "мягкие руки"
	case game.KindHard:
		return "жёсткие руки"
	default:
		return "все руки"
	}
}
