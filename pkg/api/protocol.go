package api

import (
	"encoding/json"
)

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerResponse это корневой объект, который сервер отправляет клиенту.
// Он представляет собой полный "снимок" мира, видимого для конкретного клиента,
// и отправляется после каждого разрешенного хода.
type ServerResponse struct {
	// Type тип сообщения. На данный момент всегда "UPDATE".
	Type string `json:"type"`

	// Mode текущий режим игры: "PLAYING" или "GAME_OVER".
	// После GAME_OVER сервер принимает только ESCAPE.
	Mode string `json:"mode"`

	// Floor номер текущего этажа подземелья (растет при спуске).
	Floor int `json:"floor"`

	// MyEntityID ID сущности, которой управляет данный клиент.
	MyEntityID string `json:"myEntityId,omitempty"`

	// Grid метаданные о размере всей карты.
	Grid *GridMeta `json:"grid,omitempty"`

	// Map срез всех исследованных тайлов. Неисследованные тайлы не посылаются:
	// клиент рендерит на их месте пустоту.
	Map []TileView `json:"map,omitempty"`

	// Entities срез всех видимых сущностей, отсортированный по порядку
	// отрисовки: трупы внизу, актеры поверх всего.
	Entities []EntityView `json:"entities,omitempty"`

	// HealthBar состояние полоски здоровья игрока.
	HealthBar *BarView `json:"healthBar,omitempty"`

	// Logs срез новых сообщений, сгенерированных с прошлого хода.
	Logs []LogEntry `json:"logs,omitempty"`
}

// GridMeta содержит общие размеры карты, чтобы клиент знал,
// какую сетку для рендеринга нужно подготовить.
type GridMeta struct {
	Width  int `json:"w"`
	Height int `json:"h"`
}

// TileView это DTO для одного исследованного тайла карты.
type TileView struct {
	X int `json:"x"`
	Y int `json:"y"`

	// Symbol и цвета - представление тайла с учетом освещения:
	// видимый тайл посылается ярким, исследованный но невидимый - тусклым.
	Symbol string `json:"symbol"`
	FG     string `json:"fg"`
	BG     string `json:"bg"`

	// IsWalkable false, если тайл является непроходимым препятствием.
	IsWalkable bool `json:"isWalkable"`

	// IsVisible true, если тайл находится в текущем поле зрения.
	IsVisible bool `json:"isVisible"`
}

// EntityView это DTO для игровой сущности.
type EntityView struct {
	ID   string `json:"id"`
	Type string `json:"type"` // PLAYER, ENEMY, ITEM, CORPSE
	Name string `json:"name"`

	Pos struct {
		X int `json:"x"`
		Y int `json:"y"`
	} `json:"pos"`

	Render struct {
		Symbol string `json:"symbol"`
		FG     string `json:"fg"`
		BG     string `json:"bg"`
	} `json:"render"`

	// Stats характеристики сущности. Поле может отсутствовать (omitempty)
	// у предметов и трупов.
	Stats *StatsView `json:"stats,omitempty"`
}

// StatsView это DTO для характеристик сущности.
type StatsView struct {
	HP      int  `json:"hp"`
	MaxHP   int  `json:"maxHp"`
	Defense int  `json:"defense"`
	Power   int  `json:"power"`
	IsDead  bool `json:"isDead"`
}

// BarView - числовое состояние полоски (здоровья и т.п.) для рендера клиентом.
type BarView struct {
	Value   int `json:"value"`
	Maximum int `json:"maximum"`
	// Filled - ширина закрашенной части при ширине полоски Width.
	Filled int `json:"filled"`
	Width  int `json:"width"`
}

// LogEntry представляет одну запись в игровом логе (чате).
type LogEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Type      string `json:"type"`      // INFO, COMBAT, DEATH, ERROR
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand это корневой объект для всех сообщений от клиента к серверу.
type ClientCommand struct {
	// Token ID сущности, от имени которой выполняется действие.
	// Обязателен только для первого сообщения "INIT".
	Token string `json:"token,omitempty"`

	// Action название действия: INIT, MOVE, WAIT, DESCEND, ESCAPE.
	Action string `json:"action"`

	// Payload JSON-объект с данными для действия. Его структура зависит от Action.
	Payload json.RawMessage `json:"payload"`
}

// --- Payloads ---

// DirectionPayload используется для действий, связанных с направлением (MOVE).
type DirectionPayload struct {
	Dx int `json:"dx"` // Смещение по X (-1, 0, 1)
	Dy int `json:"dy"` // Смещение по Y (-1, 0, 1)
}

// InitPayload задает параметры новой сессии.
type InitPayload struct {
	// Seed сид генератора. 0 означает случайный сид.
	Seed int64 `json:"seed,omitempty"`
}
