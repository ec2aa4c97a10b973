package game

import "sync"

// Session живёт на чат: один шуз на много раундов, активный раунд
// и текущая тренировка. Апдейты Telegram обрабатываются в разных
// горутинах, поэтому обработчик держит мьютекс на всё время хода.
type Session struct {
	sync.Mutex

	Shoe      *Shoe
	Round     *State
	Drill     *Scenario
	DrillKind HandKind

	// счёт текущей тренировки, обнуляется в StartDrill
	DrillTotal   int
	DrillCorrect int
}

func NewSession(decks int) *Session {
	return &Session{Shoe: NewShoe(decks, nil)}
}

// StartRound сдаёт новый раунд. Просевший шуз пересобирается
// перед раздачей, внутри раунда его не трогаем.
func (s *Session) StartRound(bet int) *State {
	if s.Shoe.LowOnCards() {
		s.Shoe.Refill()
	}
	s.Round = NewState(bet, s.Shoe)
	return s.Round
}

// StartDrill открывает тренировку раздела kind с чистым счётом.
func (s *Session) StartDrill(kind HandKind) {
	s.DrillKind = kind
	s.Drill = nil
	s.DrillTotal = 0
	s.DrillCorrect = 0
}

// RecordDrill записывает ответ в счёт текущей тренировки.
func (s *Session) RecordDrill(correct bool) {
	s.DrillTotal++
	if correct {
		s.DrillCorrect++
	}
}

// Manager управляет сессиями чатов
type Manager struct {
	sessions map[int64]*Session
	decks    int
	mu       sync.RWMutex
}

func NewManager(decks int) *Manager {
	return &Manager{
		sessions: make(map[int64]*Session),
		decks:    decks,
	}
}

// Get возвращает сессию чата, создавая её при первом обращении.
func (m *Manager) Get(chatID int64) *Session {
	m.mu.RLock()
	sess := m.sessions[chatID]
	m.mu.RUnlock()
	if sess != nil {
		return sess
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if sess = m.sessions[chatID]; sess == nil {
		sess = NewSession(m.decks)
		m.sessions[chatID] = sess
	}
	return sess
}
