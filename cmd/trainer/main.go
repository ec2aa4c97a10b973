package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/carltonnorthern/soft-splits-blackjack/internal/game"
)

const quitOption = "⏹ Выход"

var answerOptions = []string{"👊 Hit", "✋ Stand", "💰 Double", "✂️ Split", quitOption}

func actionFor(choice string) (game.Action, bool) {
	switch choice {
	case "👊 Hit":
		return game.ActionHit, true
	case "✋ Stand":
		return game.ActionStand, true
	case "💰 Double":
		return game.ActionDouble, true
	case "✂️ Split":
		return game.ActionSplit, true
	}
	return "", false
}

func labelFor(action game.Action) string {
	for _, opt := range answerOptions {
		if a, ok := actionFor(opt); ok && a == action {
			return opt
		}
	}
	return string(action)
}

func parseKind(mode string) (game.HandKind, error) {
	switch strings.ToLower(mode) {
	case "pair", "pairs":
		return game.KindPair, nil
	case "soft":
		return game.KindSoft, nil
	case "hard":
		return game.KindHard, nil
	case "any", "all", "":
		return "", nil
	}
	return "", fmt.Errorf("unknown mode %q, want pair, soft, hard or any", mode)
}

func kindName(kind game.HandKind) string {
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

func cardsLine(cards []game.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

func main() {
	var (
		seed  = flag.Int64("seed", 0, "seed for the shoe, 0 picks a random one")
		decks = flag.Int("decks", game.DefaultDecks, "number of decks in the shoe")
		mode  = flag.String("mode", "any", "hand kind to drill: pair, soft, hard or any")
		hands = flag.Int("hands", 0, "stop after this many hands, 0 keeps going")
	)
	flag.Parse()

	kind, err := parseKind(*mode)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	if *seed == 0 {
		s, err := game.NewSeed()
		if err != nil {
			s = time.Now().UnixNano()
		}
		*seed = s
	}
	shoe := game.NewShoe(*decks, rand.New(rand.NewSource(*seed)))

	pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1).
		Println("Тренажёр базовой стратегии")
	pterm.Info.Printfln("Раздел: %s | Колод: %d | Seed: %d", kindName(kind), *decks, *seed)

	total, correct := 0, 0
	for *hands == 0 || total < *hands {
		sc, err := game.NewScenario(shoe, kind)
		if err != nil {
			pterm.Error.Printfln("Не получилось сдать руку: %v", err)
			break
		}

		pterm.Println()
		pterm.Printfln("🎴 Ваша рука: %s", cardsLine(sc.Player))
		pterm.Printfln("🃏 Дилер: %s", sc.Dealer)

		choice, err := pterm.DefaultInteractiveSelect.
			WithDefaultText("Ваш ход").
			WithOptions(answerOptions).
			Show()
		if err != nil {
			pterm.Error.Println(err)
			break
		}

		action, ok := actionFor(choice)
		if !ok {
			break
		}

		total++
		if sc.Grade(action) {
			correct++
			pterm.Success.Printfln("Верно! %s", sc.Advice.Reason)
		} else {
			pterm.Error.Printfln("По таблице %s: %s", labelFor(sc.Advice.Action), sc.Advice.Reason)
		}
	}

	if total > 0 {
		summary := fmt.Sprintf("Ходов: %d\nВерных: %d (%.1f%%)",
			total, correct, float64(correct)/float64(total)*100)
		pterm.DefaultBox.WithTitle("Итог").Println(summary)
	}
}
