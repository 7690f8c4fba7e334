package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log является глобальным экземпляром логгера для всего приложения.
var Log = logrus.New()

// Init инициализирует глобальный логгер из окружения.
// LOG_LEVEL (по умолчанию "info") и LOG_FORMAT ("json" или "text").
func Init() {
	Log = logrus.New()
	Configure(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))
	Log.SetOutput(os.Stdout)
}

// Configure применяет уровень и формат. Пустые значения не меняют текущие
// настройки, неизвестный уровень откатывается на info.
func Configure(logLevel, logFormat string) {
	if logLevel != "" {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			Log.WithField("level", logLevel).Warn("Unknown log level, falling back to info.")
			level = logrus.InfoLevel
		}
		Log.SetLevel(level)
	}

	switch strings.ToLower(logFormat) {
	case "":
		if _, ok := Log.Formatter.(*logrus.TextFormatter); !ok {
			return
		}
		Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, ForceColors: true})
	case "json":
		Log.SetFormatter(&logrus.JSONFormatter{})
	default:
		Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, ForceColors: true})
	}
}

// Silence направляет вывод в никуда (тесты, бенчмарки).
func Silence() {
	Log.SetOutput(io.Discard)
}
