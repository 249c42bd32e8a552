package systems

import (
	"delve-server/internal/core/types"
	"delve-server/internal/domain"
	"delve-server/pkg/logger"
	"github.com/sirupsen/logrus"
)

// corpseGlyph - внешний вид останков: темно-красный '%' в нижнем слое.
var corpseGlyph = types.MakeGlyph('%', 0xBF0000, 0x000000)

// ApplyDeath выполняет переход Alive -> Dead ровно один раз.
//
// Ссылка на AI обнуляется первой - именно она защищает от повторного
// срабатывания: у уже мертвой сущности AI нет, и последующие летальные
// записи hp сюда не доходят. Возвращает true, если умер игрок -
// движок переключает режим на GameOver, сама система глобальное
// состояние не трогает.
func ApplyDeath(e *domain.Entity) (playerDied bool) {
	if e.AI == nil {
		// Переход уже выполнен
		return false
	}

	playerDied = e.Type == domain.EntityTypePlayer

	e.AI = nil
	e.BlocksMovement = false
	e.Type = domain.EntityTypeCorpse
	e.Render = &domain.RenderComponent{
		Glyph: corpseGlyph,
		Order: domain.RenderOrderCorpse,
	}
	e.Name = "Останки " + e.Name

	logger.Log.WithFields(logrus.Fields{
		"component":   "death_system",
		"entity_id":   e.ID,
		"entity_name": e.Name,
		"player_died": playerDied,
	}).Info("Death transition applied")

	return playerDied
}
