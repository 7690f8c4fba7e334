package types

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// RGB — цвет в формате 0xRRGGBB.
type RGB uint32

// Именованные цвета, доступные в шаблонах.
const (
	ColorBlack   RGB = 0x000000
	ColorWhite   RGB = 0xFFFFFF
	ColorRed     RGB = 0xFF0000
	ColorGreen   RGB = 0x00FF00
	ColorBlue    RGB = 0x0000FF
	ColorYellow  RGB = 0xFFFF00
	ColorMagenta RGB = 0xFF00FF
	ColorCyan    RGB = 0x00FFFF
	ColorOrange  RGB = 0xFFA500
	ColorGrey    RGB = 0x808080
)

var namedColors = map[string]RGB{
	"black":   ColorBlack,
	"white":   ColorWhite,
	"red":     ColorRed,
	"green":   ColorGreen,
	"blue":    ColorBlue,
	"yellow":  ColorYellow,
	"magenta": ColorMagenta,
	"cyan":    ColorCyan,
	"orange":  ColorOrange,
	"grey":    ColorGrey,
	"gray":    ColorGrey,
}

// ParseRGB разбирает "#RRGGBB", "RRGGBB" или имя цвета (без учёта регистра).
func ParseRGB(s string) (RGB, error) {
	s = strings.TrimSpace(s)
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}

	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return 0, fmt.Errorf("color %q: want #RRGGBB or a color name", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("color %q: %w", s, err)
	}
	return RGB(v), nil
}

// R, G, B возвращают отдельные каналы.
func (c RGB) R() uint8 { return uint8(c >> 16) }
func (c RGB) G() uint8 { return uint8(c >> 8) }
func (c RGB) B() uint8 { return uint8(c) }

// String возвращает HEX-представление, например "#00FF00".
func (c RGB) String() string {
	return fmt.Sprintf("#%06X", uint32(c)&maskColor)
}

// UnmarshalYAML позволяет писать в шаблонах `fg: red` или `fg: "#FF0000"`.
func (c *RGB) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := ParseRGB(raw)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*c = parsed
	return nil
}

// MarshalYAML записывает цвет в HEX-виде.
func (c RGB) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}
