package types

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

// Glyph — упакованный символ клетки вместе с цветом переднего плана.
//
//	[0:8]  - код символа (CP437-совместимый байт)
//	[8:32] - цвет переднего плана, RGB
//
// Фон и порядок отрисовки хранятся отдельно в компоненте Renderable:
// симуляции они не нужны, рендерер получает их как есть.
type Glyph uint32

const (
	bitsChar  = 8
	bitsColor = 24

	shiftColor = bitsChar

	maskChar  = (1 << bitsChar) - 1
	maskColor = (1 << bitsColor) - 1
)

// MakeGlyph собирает Glyph из символа и цвета.
//
//	MakeGlyph('g', ColorRed) // 0xFF000067
func MakeGlyph(char byte, fg RGB) Glyph {
	return Glyph((uint32(fg)&maskColor)<<shiftColor | uint32(char)&maskChar)
}

// Char возвращает код символа.
func (g Glyph) Char() byte {
	return byte(g & maskChar)
}

// Rune возвращает символ в Unicode по таблице CP437: байты выше 127 это
// псевдографика (0xDB - '█'), а не Latin-1.
func (g Glyph) Rune() rune {
	return charmap.CodePage437.DecodeByte(g.Char())
}

// Fg возвращает цвет переднего плана.
func (g Glyph) Fg() RGB {
	return RGB(uint32(g>>shiftColor) & maskColor)
}

// WithFg возвращает тот же символ другого цвета.
func (g Glyph) WithFg(fg RGB) Glyph {
	return MakeGlyph(g.Char(), fg)
}

// String реализует fmt.Stringer: "Glyph{char='g', fg=#FF0000}".
func (g Glyph) String() string {
	char := g.Char()
	charStr := string([]byte{char})
	if char < 32 || char > 126 {
		charStr = fmt.Sprintf("\\x%02X", char)
	}
	return fmt.Sprintf("Glyph{char='%s', fg=%s}", charStr, g.Fg())
}
