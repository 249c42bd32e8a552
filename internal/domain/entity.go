package domain

import (
	"delve-server/internal/core/types"
)

// --- КОМПОНЕНТЫ ---

// RenderComponent - Визуализация (Клиент)
type RenderComponent struct {
	// Glyph - символ и цвет отображения (@ - герой, o - орк, % - труп).
	Glyph types.Glyph `json:"glyph"`
	// Order - слой отрисовки. Трупы рисуются под живыми акторами.
	Order RenderOrder `json:"order"`
}

// AIComponent - Мозги и Поведение.
// Примечание: У игрока тоже есть этот компонент - наличие AI означает
// "актор еще жив и может действовать". Смерть обнуляет ссылку ровно один раз.
type AIComponent struct {
	Hostile bool `json:"hostile"` // Преследует ли игрока
}

// --- СУЩНОСТЬ ---

type Entity struct {
	// Идентификация
	ID   string `json:"id"`
	Type string `json:"type"`
	Name string `json:"name"`

	Pos Position `json:"pos"`

	// BlocksMovement - занимает ли сущность клетку для прохода.
	// Живые акторы блокируют, предметы и трупы - нет.
	BlocksMovement bool `json:"blocksMovement"`

	// Компоненты (Если nil - значит свойство отсутствует)
	Render  *RenderComponent  `json:"render,omitempty"`
	Fighter *FighterComponent `json:"fighter,omitempty"`
	AI      *AIComponent      `json:"ai,omitempty"`
}

// IsAlive возвращает true, если сущность - живой боец.
func (e *Entity) IsAlive() bool {
	return e.Fighter != nil && e.Fighter.HP() > 0
}

// IsActor возвращает true, если сущность может действовать в свой ход.
func (e *Entity) IsActor() bool {
	return e.AI != nil
}
