package bot

import (
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/carltonnorthern/soft-splits-blackjack/internal/config"
	"github.com/carltonnorthern/soft-splits-blackjack/internal/game"
	"github.com/carltonnorthern/soft-splits-blackjack/internal/player"
)

type Handler struct {
	bot      *tgbotapi.BotAPI
	cfg      *config.Config
	players  player.Repository
	sessions *game.Manager
	log      *zap.Logger
}

func NewHandler(bot *tgbotapi.BotAPI, cfg *config.Config, repo player.Repository, log *zap.Logger) *Handler {
	return &Handler{
		bot:      bot,
		cfg:      cfg,
		players:  repo,
		sessions: game.NewManager(cfg.Decks),
		log:      log,
	}
}

// ============== ВСПОМОГАТЕЛЬНЫЕ МЕТОДЫ ==============

func (h *Handler) send(chatID int64, text string) {
	if _, err := h.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		h.log.Error("failed to send message", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

func (h *Handler) sendWithKeyboard(chatID int64, text string, kb tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = kb
	if _, err := h.bot.Send(msg); err != nil {
		h.log.Error("failed to send message", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

func (h *Handler) answerCallback(id, text string) {
	if _, err := h.bot.Request(tgbotapi.NewCallback(id, text)); err != nil {
		h.log.Error("failed to answer callback", zap.Error(err))
	}
}

func (h *Handler) getPlayer(chatID int64) (*player.Player, error) {
	return h.players.GetOrCreate(chatID, h.cfg.StartBalance, h.cfg.DefaultBet)
}

func (h *Handler) savePlayer(p *player.Player) {
	if err := h.players.Save(p); err != nil {
		h.log.Error("failed to save player", zap.Int64("chat_id", p.ChatID), zap.Error(err))
	}
}

// ============== ОБРАБОТЧИКИ КОМАНД ==============

func (h *Handler) HandleStart(chatID int64) {
	p, err := h.getPlayer(chatID)
	if err != nil {
		h.send(chatID, "❌ Ошибка. Попробуйте позже.")
		return
	}

	h.send(chatID, fmt.Sprintf(
		"🎰 Добро пожаловать в Blackjack!\n\n"+
			"💵 Баланс: %d\n\n"+
			"/play <ставка> — играть\n"+
			"/train — тренировать базовую стратегию\n"+
			"/balance — статистика\n"+
			"/top — топ игроков\n"+
			"/help — правила",
		p.Balance))
}

func (h *Handler) HandleHelp(chatID int64) {
	h.send(chatID,
		"📖 Правила Blackjack:\n\n"+
			"🎯 Цель: набрать больше дилера, не перебрав 21\n\n"+
			"📊 Очки:\n"+
			"• 2-10 — номинал\n"+
			"• J, Q, K — 10\n"+
			"• A — 11 или 1\n\n"+
			"🎮 Действия:\n"+
			"• Hit — взять карту\n"+
			"• Stand — остановиться\n"+
			"• Double — удвоить ставку, одна карта\n"+
			"• Split — разделить пару на две руки\n"+
			"• 💡 Подсказка — ход по базовой стратегии\n\n"+
			"🎰 Блэкджек платит 3 к 2\n"+
			"🃏 Дилер стоит на любых 17\n\n"+
			"Каждый ваш ход сверяется с таблицей базовой\n"+
			"стратегии, точность копится в /balance")
}

func (h *Handler) HandleBalance(chatID int64) {
	p, err := h.getPlayer(chatID)
	if err != nil {
		h.send(chatID, "❌ Ошибка")
		return
	}

	h.send(chatID, fmt.Sprintf(
		"💰 Баланс: %d\n\n"+
			"📊 Статистика:\n"+
			"🎮 Игр: %d\n"+
			"✅ Побед: %d (%.1f%%)\n"+
			"❌ Поражений: %d\n"+
			"🤝 Ничьих: %d\n"+
			"🎰 Блэкджеков: %d\n\n"+
			"🎓 Ходов по таблице: %d из %d (%.1f%%)",
		p.Balance, p.Games, p.Wins, p.WinRate(), p.Losses, p.Draws,
		p.Blackjacks, p.Correct, p.Decisions, p.Accuracy()))
}

func (h *Handler) HandleTop(chatID int64) {
	stats, err := h.players.GetTopByBalance(10)
	if err != nil {
		h.send(chatID, "❌ Ошибка")
		return
	}

	if len(stats) == 0 {
		h.send(chatID, "🏆 Пока никто не играл!")
		return
	}

	var sb strings.Builder
	sb.WriteString("🏆 Топ игроков:\n\n")

	medals := []string{"🥇", "🥈", "🥉"}
	for i, s := range stats {
		medal := fmt.Sprintf("%d.", i+1)
		if i < 3 {
			medal = medals[i]
		}
		sb.WriteString(fmt.Sprintf("%s %d 💰 | %d игр (%.0f%%) | 🎯 %.0f%%\n",
			medal, s.Balance, s.Games, s.WinRate, s.Accuracy))
	}

	h.send(chatID, sb.String())
}

func (h *Handler) HandlePlay(chatID int64, args []string) {
	sess := h.sessions.Get(chatID)
	sess.Lock()
	defer sess.Unlock()

	if sess.Round != nil && sess.Round.IsActive {
		h.send(chatID, "⏳ Сначала доиграйте текущий раунд")
		return
	}

	p, err := h.getPlayer(chatID)
	if err != nil {
		h.send(chatID, "❌ Ошибка")
		return
	}

	bet := h.cfg.DefaultBet
	if len(args) > 0 {
		if b, err := strconv.Atoi(args[0]); err == nil && b > 0 {
			bet = b
		} else {
			h.send(chatID, fmt.Sprintf("❌ Неверная ставка. Пример: /play %d", h.cfg.DefaultBet))
			return
		}
	}

	if bet < h.cfg.MinBet || bet > h.cfg.MaxBet {
		h.send(chatID, fmt.Sprintf("❌ Ставка от %d до %d", h.cfg.MinBet, h.cfg.MaxBet))
		return
	}

	if !p.PlaceBet(bet) {
		h.send(chatID, fmt.Sprintf("❌ Недостаточно средств! Баланс: %d", p.Balance))
		return
	}

	st := sess.StartRound(bet)

	// блэкджек с раздачи решает раунд сразу, дилер не добирает
	if game.IsBlackjack(st.Hands[0].Cards) || game.IsBlackjack(st.DealerCards) {
		h.settleRound(chatID, sess, p, "")
		return
	}

	h.savePlayer(p)

	hand := st.Current()
	opts := GameKeyboardOptions{
		CanDouble: hand.CanDouble() && p.CanAfford(hand.Bet),
		CanSplit:  hand.CanSplit() && p.CanAfford(hand.Bet),
	}
	h.sendWithKeyboard(chatID,
		fmt.Sprintf("💰 Ставка: %d | Баланс: %d\n\n%s", bet, p.Balance, formatStatus(st, false)),
		GameKeyboard(opts))
}

func (h *Handler) HandleTrain(chatID int64, args []string) {
	if len(args) > 0 {
		h.startDrill(chatID, args[0])
		return
	}
	h.sendWithKeyboard(chatID, "🎓 Тренировка базовой стратегии.\nВыберите раздел:", TrainKindKeyboard())
}

// ============== ИГРОВЫЕ CALLBACK ==============

// HandleCallback разбирает нажатия кнопок. Каждый апдейт приходит в
// своей горутине, ходы и тренировка выполняются под мьютексом сессии,
// игрок читается и сохраняется там же.
func (h *Handler) HandleCallback(callback *tgbotapi.CallbackQuery) {
	if callback.Message == nil {
		return
	}
	chatID := callback.Message.Chat.ID
	data := callback.Data

	switch {
	case data == CallbackPlayAgain:
		h.answerCallback(callback.ID, "")
		p, err := h.getPlayer(chatID)
		if err != nil {
			h.send(chatID, "❌ Ошибка")
			return
		}
		h.HandlePlay(chatID, []string{strconv.Itoa(p.LastBet)})
		return

	case data == CallbackBalance:
		p, err := h.getPlayer(chatID)
		if err != nil {
			h.answerCallback(callback.ID, "Ошибка")
			return
		}
		h.answerCallback(callback.ID, fmt.Sprintf("💵 %d", p.Balance))
		return

	case strings.HasPrefix(data, CallbackTrainKindPrefix):
		h.answerCallback(callback.ID, "")
		h.startDrill(chatID, strings.TrimPrefix(data, CallbackTrainKindPrefix))
		return

	case strings.HasPrefix(data, CallbackTrainAnswerPrefix):
		h.answerCallback(callback.ID, "")
		h.handleDrillAnswer(chatID, game.Action(strings.TrimPrefix(data, CallbackTrainAnswerPrefix)))
		return

	case data == CallbackTrainStop:
		h.answerCallback(callback.ID, "")
		h.stopDrill(chatID)
		return
	}

	sess := h.sessions.Get(chatID)
	sess.Lock()
	defer sess.Unlock()

	if sess.Round == nil || !sess.Round.IsActive {
		h.answerCallback(callback.ID, "Игра не активна")
		return
	}

	p, err := h.getPlayer(chatID)
	if err != nil {
		h.answerCallback(callback.ID, "Ошибка")
		return
	}

	switch data {
	case CallbackHit:
		h.handleHit(chatID, sess, p)
	case CallbackStand:
		h.handleStand(chatID, sess, p)
	case CallbackDouble:
		h.handleDouble(chatID, sess, p)
	case CallbackSplit:
		h.handleSplit(chatID, sess, p)
	case CallbackHint:
		h.handleHint(chatID, sess)
	}

	h.answerCallback(callback.ID, "")
}

// gradeMove сверяет выбранный ход с таблицей до его применения.
func (h *Handler) gradeMove(st *game.State, p *player.Player, action game.Action) string {
	hand := st.Current()
	if hand == nil {
		return ""
	}

	correct, adv, err := game.GradeAction(hand, st.DealerUp(), action)
	if err != nil {
		h.log.Error("failed to grade action", zap.Error(err))
		return ""
	}
	p.RecordDecision(correct)
	return formatGrade(correct, adv)
}

func (h *Handler) handleHit(chatID int64, sess *game.Session, p *player.Player) {
	grade := h.gradeMove(sess.Round, p, game.ActionHit)
	sess.Round.Hit()
	h.afterMove(chatID, sess, p, grade)
}

func (h *Handler) handleStand(chatID int64, sess *game.Session, p *player.Player) {
	grade := h.gradeMove(sess.Round, p, game.ActionStand)
	sess.Round.Stand()
	h.afterMove(chatID, sess, p, grade)
}

func (h *Handler) handleDouble(chatID int64, sess *game.Session, p *player.Player) {
	st := sess.Round
	hand := st.Current()
	if hand == nil || !hand.CanDouble() {
		return
	}
	if !p.CanAfford(hand.Bet) {
		h.send(chatID, "❌ Недостаточно средств для удвоения")
		return
	}

	grade := h.gradeMove(st, p, game.ActionDouble)
	p.Balance -= hand.Bet
	st.Double()
	h.afterMove(chatID, sess, p, grade)
}

func (h *Handler) handleSplit(chatID int64, sess *game.Session, p *player.Player) {
	st := sess.Round
	hand := st.Current()
	if hand == nil || !hand.CanSplit() {
		return
	}
	if !p.CanAfford(hand.Bet) {
		h.send(chatID, "❌ Недостаточно средств для сплита")
		return
	}

	grade := h.gradeMove(st, p, game.ActionSplit)
	p.Balance -= hand.Bet
	st.Split()
	h.afterMove(chatID, sess, p, grade)
}

// подсказка ничего не меняет и в точность не записывается
func (h *Handler) handleHint(chatID int64, sess *game.Session) {
	st := sess.Round
	hand := st.Current()
	if hand == nil {
		return
	}

	adv, err := game.Recommend(hand.Cards, st.DealerUp(), hand.Options())
	if err != nil {
		h.log.Error("failed to build hint", zap.Error(err))
		return
	}
	h.send(chatID, formatAdvice(adv))
}

// afterMove показывает стол дальше или доигрывает раунд.
func (h *Handler) afterMove(chatID int64, sess *game.Session, p *player.Player, grade string) {
	st := sess.Round

	cur := st.Current()
	if cur != nil && cur.IsStand && !st.NextHand() {
		h.finishRound(chatID, sess, p, grade)
		return
	}
	cur = st.Current()
	if cur == nil {
		h.finishRound(chatID, sess, p, grade)
		return
	}

	h.savePlayer(p)

	text := formatStatus(st, false)
	if grade != "" {
		text = grade + "\n\n" + text
	}
	opts := GameKeyboardOptions{
		CanDouble: cur.CanDouble() && p.CanAfford(cur.Bet),
		CanSplit:  cur.CanSplit() && p.CanAfford(cur.Bet),
	}
	h.sendWithKeyboard(chatID, text, GameKeyboard(opts))
}

func (h *Handler) finishRound(chatID int64, sess *game.Session, p *player.Player, prefix string) {
	sess.Round.Finish()
	h.settleRound(chatID, sess, p, prefix)
}

// settleRound рассчитывает завершённые руки и обновляет игрока.
func (h *Handler) settleRound(chatID int64, sess *game.Session, p *player.Player, prefix string) {
	st := sess.Round
	st.IsActive = false

	round, err := st.Settle()
	if err != nil {
		h.log.Error("failed to settle round", zap.Int64("chat_id", chatID), zap.Error(err))
		h.send(chatID, "❌ Ошибка расчёта раунда")
		return
	}

	for _, s := range round.Hands {
		switch s.Outcome {
		case game.OutcomeBlackjack:
			p.AddBlackjack(s.Delta)
		case game.OutcomeWin, game.OutcomeDealerBust:
			p.AddWin(s.Delta)
		case game.OutcomePush:
			p.AddDraw(s.Delta)
		default:
			p.AddLoss()
		}
	}
	h.savePlayer(p)

	h.log.Info("round settled",
		zap.Int64("chat_id", chatID),
		zap.Int("hands", len(round.Hands)),
		zap.Int("staked", round.Staked),
		zap.Int("returned", round.Delta),
	)

	text := formatRoundEnd(st, round, p.Balance)
	if prefix != "" {
		text = prefix + "\n\n" + text
	}
	h.sendWithKeyboard(chatID, text, EndGameKeyboard(p.LastBet))
}

// ============== ТРЕНИРОВКА ==============

func (h *Handler) startDrill(chatID int64, kindArg string) {
	var kind game.HandKind
	switch strings.ToLower(kindArg) {
	case "pair", "pairs", "пары":
		kind = game.KindPair
	case "soft", "мягкие":
		kind = game.KindSoft
	case "hard", "жёсткие", "жесткие":
		kind = game.KindHard
	case "any", "all", "все":
		kind = ""
	default:
		h.sendWithKeyboard(chatID, "🤔 Не понял раздел. Выберите кнопкой:", TrainKindKeyboard())
		return
	}

	sess := h.sessions.Get(chatID)
	sess.Lock()
	defer sess.Unlock()
	sess.StartDrill(kind)
	h.nextDrill(chatID, sess)
}

// nextDrill сдаёт следующий вопрос. Вызывается под мьютексом сессии.
func (h *Handler) nextDrill(chatID int64, sess *game.Session) {
	sc, err := game.NewScenario(sess.Shoe, sess.DrillKind)
	if err != nil {
		h.log.Error("failed to deal scenario", zap.Int64("chat_id", chatID), zap.Error(err))
		h.send(chatID, "❌ Не получилось сдать руку, попробуйте ещё раз")
		return
	}
	sess.Drill = sc

	h.sendWithKeyboard(chatID,
		fmt.Sprintf("Раздел: %s\n\n%s", kindTitle(sess.DrillKind), formatScenario(sc)),
		TrainAnswerKeyboard())
}

func (h *Handler) handleDrillAnswer(chatID int64, answer game.Action) {
	sess := h.sessions.Get(chatID)
	sess.Lock()
	defer sess.Unlock()

	sc := sess.Drill
	if sc == nil {
		h.send(chatID, "🤷 Вопроса нет. Запустите /train")
		return
	}

	p, err := h.getPlayer(chatID)
	if err != nil {
		h.send(chatID, "❌ Ошибка")
		return
	}

	correct := sc.Grade(answer)
	sess.RecordDrill(correct)
	p.RecordDecision(correct)
	h.savePlayer(p)
	sess.Drill = nil

	if correct {
		h.send(chatID, fmt.Sprintf("✅ Верно! %s", sc.Advice.Reason))
	} else {
		h.send(chatID, formatGrade(false, sc.Advice))
	}

	h.nextDrill(chatID, sess)
}

// stopDrill закрывает тренировку и показывает её счёт.
// Пожизненная точность остаётся в /balance.
func (h *Handler) stopDrill(chatID int64) {
	sess := h.sessions.Get(chatID)
	sess.Lock()
	defer sess.Unlock()
	sess.Drill = nil

	if sess.DrillTotal == 0 {
		h.send(chatID, "🎓 Тренировка окончена.")
		return
	}
	h.send(chatID, fmt.Sprintf(
		"🎓 Тренировка окончена.\nХодов за тренировку: %d, верных: %d (%.1f%%)",
		sess.DrillTotal, sess.DrillCorrect,
		float64(sess.DrillCorrect)/float64(sess.DrillTotal)*100))
}

// ============== ОБРАБОТЧИК СООБЩЕНИЙ ==============

func (h *Handler) HandleMessage(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	parts := strings.Fields(msg.Text)

	if len(parts) == 0 {
		return
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "/start":
		h.HandleStart(chatID)
	case "/help":
		h.HandleHelp(chatID)
	case "/play":
		h.HandlePlay(chatID, args)
	case "/train":
		h.HandleTrain(chatID, args)
	case "/balance":
		h.HandleBalance(chatID)
	case "/top":
		h.HandleTop(chatID)
	}
}
