package domain

import "errors"

func (m *GameMap) GetIndex(x, y int) int {
	return y*m.Width + x
}

// InBounds проверяет, лежит ли клетка внутри карты.
func (m *GameMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// TileAt возвращает определение тайла или стену для клеток за границей.
func (m *GameMap) TileAt(x, y int) *TileKind {
	if !m.InBounds(x, y) {
		return TileWall
	}
	return m.Tiles[m.GetIndex(x, y)]
}

// SetTile записывает определение тайла в клетку.
func (m *GameMap) SetTile(x, y int, kind *TileKind) {
	if m.InBounds(x, y) {
		m.Tiles[m.GetIndex(x, y)] = kind
	}
}

// Walkable проверяет проходимость клетки. За границей карты всегда false.
func (m *GameMap) Walkable(x, y int) bool {
	return m.TileAt(x, y).Walkable
}

// Transparent проверяет прозрачность клетки для взгляда.
func (m *GameMap) Transparent(x, y int) bool {
	return m.TileAt(x, y).Transparent
}

// GetEntitiesAt возвращает список сущностей в конкретной клетке (быстро!)
func (m *GameMap) GetEntitiesAt(x, y int) []*Entity {
	if !m.InBounds(x, y) {
		return nil
	}
	return m.SpatialHash[m.GetIndex(x, y)]
}

// BlockingEntityAt возвращает сущность, занимающую клетку для прохода, или nil.
// Предметы и трупы (BlocksMovement=false) проходимы.
func (m *GameMap) BlockingEntityAt(x, y int) *Entity {
	for _, e := range m.GetEntitiesAt(x, y) {
		if e.BlocksMovement {
			return e
		}
	}
	return nil
}

// GetEntity ищет сущность по ID
func (m *GameMap) GetEntity(id string) *Entity {
	if m.EntityRegistry == nil {
		return nil
	}
	return m.EntityRegistry[id]
}

// RegisterEntity добавляет сущность в реестр
func (m *GameMap) RegisterEntity(e *Entity) {
	if m.EntityRegistry == nil {
		m.EntityRegistry = make(map[string]*Entity)
	}
	m.EntityRegistry[e.ID] = e
}

// UnregisterEntity удаляет сущность из реестра
func (m *GameMap) UnregisterEntity(id string) {
	if m.EntityRegistry != nil {
		delete(m.EntityRegistry, id)
	}
}

// AddEntity добавляет сущность в индекс, реестр и владеющий список.
func (m *GameMap) AddEntity(e *Entity) {
	idx := m.GetIndex(e.Pos.X, e.Pos.Y)
	m.SpatialHash[idx] = append(m.SpatialHash[idx], e)
	m.RegisterEntity(e)
	m.Entities = append(m.Entities, e)
}

// RemoveEntity удаляет сущность из индекса и реестра.
func (m *GameMap) RemoveEntity(e *Entity) {
	idx := m.GetIndex(e.Pos.X, e.Pos.Y)
	entities := m.SpatialHash[idx]

	for i, other := range entities {
		if other.ID == e.ID {
			// Swap with last: порядок внутри клетки не важен
			lastIdx := len(entities) - 1
			entities[i] = entities[lastIdx]
			m.SpatialHash[idx] = entities[:lastIdx]
			break
		}
	}
	m.UnregisterEntity(e.ID)

	for i, other := range m.Entities {
		if other.ID == e.ID {
			m.Entities = append(m.Entities[:i], m.Entities[i+1:]...)
			break
		}
	}
}

// UpdateEntityPos перемещает сущность в индексе
func (m *GameMap) UpdateEntityPos(e *Entity, newX, newY int) error {
	// 1. Проверка границ (на всякий случай)
	if !m.InBounds(newX, newY) {
		return errors.New("out of bounds")
	}

	// 2. Удаляем из старой ячейки индекса (не из реестра и не из списка)
	idx := m.GetIndex(e.Pos.X, e.Pos.Y)
	entities := m.SpatialHash[idx]
	for i, other := range entities {
		if other.ID == e.ID {
			lastIdx := len(entities) - 1
			entities[i] = entities[lastIdx]
			m.SpatialHash[idx] = entities[:lastIdx]
			break
		}
	}

	// 3. Обновляем координаты в сущности
	e.Pos.X = newX
	e.Pos.Y = newY

	// 4. Добавляем в новую ячейку
	newIdx := m.GetIndex(newX, newY)
	m.SpatialHash[newIdx] = append(m.SpatialHash[newIdx], e)
	return nil
}

// Actors возвращает всех сущностей с AI-компонентом (тех, кто ходит).
// Список может содержать дубликаты ссылок, если сущность числится в
// списке этажа дважды - потребитель обязан дедуплицировать по ID.
func (m *GameMap) Actors() []*Entity {
	var actors []*Entity
	for _, e := range m.Entities {
		if e.IsActor() {
			actors = append(actors, e)
		}
	}
	return actors
}
