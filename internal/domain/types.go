package domain

// Типы сущностей
const (
	EntityTypePlayer = "PLAYER"
	EntityTypeEnemy  = "ENEMY"
	EntityTypeItem   = "ITEM"
	EntityTypeCorpse = "CORPSE"
)

// RenderOrder задает порядок отрисовки сущностей в одной клетке.
// Меньшее значение рисуется раньше (НИЖЕ): труп всегда под живым актором.
// Ядро этот порядок не вычисляет - только сортирует по нему.
type RenderOrder uint8

const (
	RenderOrderCorpse RenderOrder = iota
	RenderOrderItem
	RenderOrderActor
)

// GameMode - режим взаимодействия верхнего уровня.
// Единственный переход, инициируемый ядром: Playing -> GameOver при смерти игрока.
type GameMode uint8

const (
	ModePlaying GameMode = iota
	ModeGameOver
)

// String реализует интерфейс Stringer (для fmt.Printf и логов)
func (m GameMode) String() string {
	switch m {
	case ModePlaying:
		return "PLAYING"
	case ModeGameOver:
		return "GAME_OVER"
	}
	return "UNKNOWN"
}
