package dungeon

import (
	"math/rand"

	"delve-server/internal/core/types"
	"delve-server/internal/domain"
	"delve-server/pkg/utils"
)

// EntityTemplate определяет шаблон для создания существа
type EntityTemplate struct {
	Name    string
	Type    string
	Char    byte
	Color   uint32
	HP      int
	Defense int
	Power   int
	Hostile bool
}

// Spawn создает сущность из шаблона на заданной позиции
func (t EntityTemplate) Spawn(pos domain.Position, rng *rand.Rand) *domain.Entity {
	e := &domain.Entity{
		ID:             utils.GenerateDeterministicID(rng, "e_"),
		Type:           t.Type,
		Name:           t.Name,
		Pos:            pos,
		BlocksMovement: true,
		Render: &domain.RenderComponent{
			Glyph: types.MakeGlyph(t.Char, t.Color, 0x000000),
			Order: domain.RenderOrderActor,
		},
		Fighter: domain.NewFighter(t.HP, t.Defense, t.Power),
	}

	// AI есть у всех существ, включая героя: наличие компонента
	// означает "актор жив и может действовать"
	if t.HP > 0 {
		e.AI = &domain.AIComponent{Hostile: t.Hostile}
	}

	return e
}

// --- ВРАГИ ---

var Orc = EntityTemplate{
	Name:    "Орк",
	Type:    domain.EntityTypeEnemy,
	Char:    'o',
	Color:   0x3F7F3F,
	HP:      10,
	Defense: 0,
	Power:   3,
	Hostile: true,
}

var Troll = EntityTemplate{
	Name:    "Тролль",
	Type:    domain.EntityTypeEnemy,
	Char:    'T',
	Color:   0x007F00,
	HP:      16,
	Defense: 1,
	Power:   4,
	Hostile: true,
}

// --- ИГРОК ---

var Player = EntityTemplate{
	Name:    "Герой",
	Type:    domain.EntityTypePlayer,
	Char:    '@',
	Color:   0xFFFFFF,
	HP:      30,
	Defense: 2,
	Power:   5,
}

// CreatePlayer создает нового героя с постоянным ID сессии.
func CreatePlayer(id string, rng *rand.Rand) *domain.Entity {
	p := Player.Spawn(domain.Position{}, rng)
	p.ID = id
	return p
}

// --- ПРЕДМЕТЫ ---

// ItemTemplate определяет шаблон предмета, лежащего на полу
type ItemTemplate struct {
	Name  string
	Char  byte
	Color uint32
}

// SpawnItem создает Entity-предмет из шаблона
func (t ItemTemplate) SpawnItem(pos domain.Position, rng *rand.Rand) *domain.Entity {
	return &domain.Entity{
		ID:             utils.GenerateDeterministicID(rng, "i_"),
		Type:           domain.EntityTypeItem,
		Name:           t.Name,
		Pos:            pos,
		BlocksMovement: false,
		Render: &domain.RenderComponent{
			Glyph: types.MakeGlyph(t.Char, t.Color, 0x000000),
			Order: domain.RenderOrderItem,
		},
	}
}

var HealthPotion = ItemTemplate{
	Name:  "Зелье лечения",
	Char:  '!',
	Color: 0x7F00FF,
}

var FireballScroll = ItemTemplate{
	Name:  "Свиток огненного шара",
	Char:  '~',
	Color: 0xFF0000,
}

var ConfusionScroll = ItemTemplate{
	Name:  "Свиток смятения",
	Char:  '~',
	Color: 0xCF3FFF,
}

var LightningScroll = ItemTemplate{
	Name:  "Свиток молнии",
	Char:  '~',
	Color: 0xFFFF00,
}
