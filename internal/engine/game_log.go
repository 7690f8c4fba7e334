package engine

import (
	"github.com/sirupsen/logrus"

	"dungeon-engine/internal/domain"
	"dungeon-engine/pkg/logger"
)

// newGameLog создаёт журнал игрока, зеркалируя каждую строку в logrus.
func newGameLog(capacity int, seed int64) *domain.GameLog {
	l := domain.NewGameLog(capacity)
	l.OnAdd = func(line string) {
		logger.Log.WithFields(logrus.Fields{
			"component": "game_log",
			"seed":      seed,
		}).Info(line)
	}
	return l
}
