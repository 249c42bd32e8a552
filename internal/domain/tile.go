package domain

import (
	"delve-server/internal/core/types"
)

// TileKind - неизменяемое определение типа тайла.
// Клетка карты хранит ссылку на общее определение, а не копию:
// тайлы - значения без идентичности, свойства у всех стен одинаковы.
type TileKind struct {
	// Walkable - можно ли ходить по тайлу.
	Walkable bool
	// Transparent - пропускает ли тайл взгляд (вход для FOV).
	Transparent bool
	// Dark - внешний вид вне текущего поля зрения (исследовано, но не видно).
	Dark types.Glyph
	// Light - внешний вид внутри поля зрения.
	Light types.Glyph
}

// Shroud - внешний вид клетки, которую игрок ни разу не видел.
var Shroud = types.MakeGlyph(' ', 0xFFFFFF, 0x000000)

// Общие определения тайлов. Генератор пишет в карту указатели на них.
var (
	TileFloor = &TileKind{
		Walkable:    true,
		Transparent: true,
		Dark:        types.MakeGlyph(' ', 0xFFFFFF, 0x323296),
		Light:       types.MakeGlyph(' ', 0xFFFFFF, 0xC8B432),
	}

	TileWall = &TileKind{
		Walkable:    false,
		Transparent: false,
		Dark:        types.MakeGlyph(' ', 0xFFFFFF, 0x000064),
		Light:       types.MakeGlyph(' ', 0xFFFFFF, 0x826E32),
	}

	// TileStairsDown - точка спуска на следующий этаж.
	TileStairsDown = &TileKind{
		Walkable:    true,
		Transparent: true,
		Dark:        types.MakeGlyph('>', 0x000064, 0x323296),
		Light:       types.MakeGlyph('>', 0xFFFFFF, 0xC8B432),
	}
)
