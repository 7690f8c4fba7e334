package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"

	"dungeon-engine/pkg/dungeon"
)

// DefaultPath - файл конфигурации по умолчанию, относительно рабочей директории.
const DefaultPath = "config/dungeon.toml"

// EnvPath переопределяет путь к конфигурации.
const EnvPath = "DUNGEON_CONFIG"

type Config struct {
	// Seed - зерно генератора. 0 - взять от часов.
	Seed int64 `toml:"seed"`
	// TemplatesPath - YAML с шаблонами монстров и предметов. Пусто - встроенные.
	TemplatesPath string `toml:"templates_path"`

	Map     dungeon.GenOptions `toml:"map"`
	Spawn   SpawnConfig        `toml:"spawn"`
	Player  dungeon.PlayerSpec `toml:"player"`
	Log     LogConfig          `toml:"log"`
	Logging LoggingConfig      `toml:"logging"`
}

type SpawnConfig struct {
	MaxItems     int `toml:"max_items"`     // предметов на комнату, максимум
	ItemAttempts int `toml:"item_attempts"` // попыток найти свободную клетку
}

// LogConfig - журнал сообщений для игрока.
type LogConfig struct {
	Capacity int `toml:"capacity"`
}

// LoggingConfig - logrus.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Load читает TOML поверх значений по умолчанию. Отсутствующий файл не
// ошибка: возвращаются значения по умолчанию.
func Load(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// ResolvePath: явный путь, затем DUNGEON_CONFIG, затем DefaultPath.
func ResolvePath(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	if env := os.Getenv(EnvPath); env != "" {
		return env
	}
	return DefaultPath
}

func (c *Config) Validate() error {
	if err := c.Map.Validate(); err != nil {
		return err
	}
	if c.Spawn.MaxItems < 0 || c.Spawn.ItemAttempts < 0 {
		return fmt.Errorf("spawn: negative limits (max_items=%d, item_attempts=%d)", c.Spawn.MaxItems, c.Spawn.ItemAttempts)
	}
	if c.Player.HP <= 0 {
		return fmt.Errorf("player: hp must be positive, got %d", c.Player.HP)
	}
	if c.Player.SightRange <= 0 {
		return fmt.Errorf("player: sight_range must be positive, got %d", c.Player.SightRange)
	}
	return nil
}

func defaults() *Config {
	return &Config{
		Map: dungeon.DefaultGenOptions(),
		Spawn: SpawnConfig{
			MaxItems:     2,
			ItemAttempts: 10,
		},
		Player: dungeon.DefaultPlayerSpec(),
		Log: LogConfig{
			Capacity: 50,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
