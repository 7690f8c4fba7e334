package domain

// ReplaySession - всё, что нужно, чтобы детерминированно воспроизвести
// забег: зерно и поток принятых команд в порядке подачи.
type ReplaySession struct {
	Seed      int64
	Timestamp int64 // Unix seconds, момент сохранения
	Commands  []Command
}
