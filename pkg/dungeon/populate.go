package dungeon

import (
	"math/rand"

	"delve-server/internal/domain"
	"delve-server/pkg/logger"
	"github.com/sirupsen/logrus"
)

// populateRoom расселяет монстров и раскладывает предметы в комнате.
// Количество каждого вида - равномерное U(0, лимит этажа). Занятая клетка
// молча пропускается: плотность и так ограничена лимитом.
func populateRoom(room RectangularRoom, m *domain.GameMap, p Params, floor int, rng *rand.Rand) {
	monsters := rng.Intn(p.MonsterCap(floor) + 1)
	items := rng.Intn(p.ItemCap(floor) + 1)

	x1, y1, x2, y2 := room.Inner()

	for i := 0; i < monsters; i++ {
		pos := domain.Position{
			X: x1 + rng.Intn(x2-x1+1),
			Y: y1 + rng.Intn(y2-y1+1),
		}
		if len(m.GetEntitiesAt(pos.X, pos.Y)) > 0 {
			continue
		}

		// 80% орки, остальное тролли
		var monster *domain.Entity
		if rng.Float64() < domain.DefaultMonsterChance {
			monster = Orc.Spawn(pos, rng)
		} else {
			monster = Troll.Spawn(pos, rng)
		}
		m.AddEntity(monster)
	}

	for i := 0; i < items; i++ {
		pos := domain.Position{
			X: x1 + rng.Intn(x2-x1+1),
			Y: y1 + rng.Intn(y2-y1+1),
		}
		if len(m.GetEntitiesAt(pos.X, pos.Y)) > 0 {
			continue
		}

		m.AddEntity(rollItem(rng).SpawnItem(pos, rng))
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "dungeon",
		"floor":     floor,
		"monsters":  monsters,
		"items":     items,
	}).Debug("Room populated")
}

// rollItem выбирает шаблон предмета по фиксированным порогам вероятности.
func rollItem(rng *rand.Rand) ItemTemplate {
	roll := rng.Float64()
	switch {
	case roll < 0.7:
		return HealthPotion
	case roll < 0.8:
		return FireballScroll
	case roll < 0.9:
		return ConfusionScroll
	default:
		return LightningScroll
	}
}
