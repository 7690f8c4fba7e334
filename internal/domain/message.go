package domain

import "fmt"

// DefaultLogCapacity - сколько строк журнала хранится по умолчанию.
const DefaultLogCapacity = 50

// GameLog - журнал сообщений для игрока. Хранит последние capacity строк.
type GameLog struct {
	entries  []string
	capacity int

	// OnAdd вызывается для каждой новой строки (зеркало в logrus).
	OnAdd func(line string)
}

func NewGameLog(capacity int) *GameLog {
	if capacity <= 0 {
		capacity = DefaultLogCapacity
	}
	return &GameLog{entries: make([]string, 0, capacity), capacity: capacity}
}

// Add добавляет строку, отбрасывая самую старую при переполнении.
func (l *GameLog) Add(format string, args ...any) {
	line := format
	if len(args) > 0 {
		line = fmt.Sprintf(format, args...)
	}
	if len(l.entries) == l.capacity {
		copy(l.entries, l.entries[1:])
		l.entries = l.entries[:len(l.entries)-1]
	}
	l.entries = append(l.entries, line)
	if l.OnAdd != nil {
		l.OnAdd(line)
	}
}

// Recent возвращает до n последних строк, от новой к старой.
func (l *GameLog) Recent(n int) []string {
	if n > len(l.entries) {
		n = len(l.entries)
	}
	out := make([]string, 0, n)
	for i := len(l.entries) - 1; i >= len(l.entries)-n; i-- {
		out = append(out, l.entries[i])
	}
	return out
}

func (l *GameLog) Len() int { return len(l.entries) }
