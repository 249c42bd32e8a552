package types

import (
	"fmt"
)

// Glyph представляет упакованное представление цветного символа тайла.
// Использует 64 бита (uint64) для хранения в формате:
//
//	[0:8]   - символ (8 бит = 1 байт) - маска 0xFF
//	[8:32]  - RGB-цвет переднего плана (24 бита = 3 байта)
//	[32:56] - RGB-цвет фона (24 бита = 3 байта)
//
// Тайлу нужны обе компоненты цвета: подземелье рисуется фоном клетки,
// а символом - сущности и лестницы.
type Glyph uint64

// Константы для битовых операций с Glyph
const (
	// Размеры полей в битах
	bitsChar  = 8  // Символ - 8 бит (0-255)
	bitsColor = 24 // Цвет - 24 бита (RGB)

	// Сдвиги для упаковки/распаковки
	shiftFG = bitsChar            // Смещение цвета переднего плана.
	shiftBG = bitsChar + bitsColor // Смещение цвета фона.

	// Маски для извлечения значений
	maskChar  = (1 << bitsChar) - 1  // 0xFF
	maskColor = (1 << bitsColor) - 1 // 0xFFFFFF
)

// MakeGlyph создает новый Glyph из символа и пары RGB-цветов.
//
// Параметры:
//   - char: ASCII символ для отображения (учитываются младшие 8 бит)
//   - fg: цвет символа в формате 0xRRGGBB (учитываются младшие 24 бита)
//   - bg: цвет фона клетки в формате 0xRRGGBB
//
// Пример:
//
//	// Белая '>' на золотом полу
//	glyph := MakeGlyph('>', 0xFFFFFF, 0xC8B432)
func MakeGlyph(char byte, fg, bg uint32) Glyph {
	return Glyph(uint64(bg&maskColor)<<shiftBG |
		uint64(fg&maskColor)<<shiftFG |
		uint64(char)&maskChar)
}

// Char извлекает символ из Glyph.
func (g Glyph) Char() byte {
	return byte(g & maskChar)
}

// FG извлекает 24-битный RGB-цвет переднего плана из Glyph.
func (g Glyph) FG() uint32 {
	return uint32(g>>shiftFG) & maskColor
}

// BG извлекает 24-битный RGB-цвет фона из Glyph.
func (g Glyph) BG() uint32 {
	return uint32(g>>shiftBG) & maskColor
}

// String возвращает человеко-читаемое представление Glyph.
// Реализует интерфейс fmt.Stringer.
// Формат: "Glyph{char='>', fg=#FFFFFF, bg=#C8B432}"
func (g Glyph) String() string {
	char := g.Char()
	charStr := string([]byte{char})

	// Для непечатаемых символов показываем hex
	if char < 32 || char > 126 {
		charStr = fmt.Sprintf("\\x%02X", char)
	}

	return fmt.Sprintf("Glyph{char='%s', fg=%s, bg=%s}", charStr, g.HexFG(), g.HexBG())
}

// HexFG возвращает строковое HEX-представление цвета символа (например, "#00FF00").
func (g Glyph) HexFG() string {
	return fmt.Sprintf("#%06X", g.FG())
}

// HexBG возвращает строковое HEX-представление цвета фона.
func (g Glyph) HexBG() string {
	return fmt.Sprintf("#%06X", g.BG())
}
