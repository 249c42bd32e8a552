package domain

// GameMap - один этаж подземелья: сетка тайлов, маски видимости и сущности.
// Уничтожается и заменяется целиком при спуске на следующий этаж.
type GameMap struct {
	// Tiles - плоский массив ссылок на общие определения тайлов.
	// Индекс: Y * Width + X
	Tiles  []*TileKind `json:"-"`
	Width  int         `json:"width"`
	Height int         `json:"height"`

	// Floor - глубина этого этажа (1 - первый этаж).
	Floor int `json:"floor"`

	// Visible пересчитывается целиком при каждом обновлении FOV.
	// Explored только растет: explored |= visible, никогда не очищается.
	Visible  []bool `json:"-"`
	Explored []bool `json:"-"`

	// Downstairs - клетка спуска на следующий этаж (центр последней комнаты).
	Downstairs Position `json:"downstairs"`

	// SpatialHash: Индекс позиции -> Список сущностей
	// Ключ: Y * Width + X
	SpatialHash    map[int][]*Entity  `json:"-"`
	EntityRegistry map[string]*Entity `json:"-"`

	// Entities - владеющий список сущностей этого этажа в порядке добавления.
	Entities []*Entity `json:"-"`
}

// NewGameMap создает карту, целиком заполненную стенами.
func NewGameMap(width, height, floor int) *GameMap {
	size := width * height
	tiles := make([]*TileKind, size)
	for i := range tiles {
		tiles[i] = TileWall
	}
	return &GameMap{
		Tiles:          tiles,
		Width:          width,
		Height:         height,
		Floor:          floor,
		Visible:        make([]bool, size),
		Explored:       make([]bool, size),
		SpatialHash:    make(map[int][]*Entity),
		EntityRegistry: make(map[string]*Entity),
	}
}
