package dungeon

import "fmt"

// Константы генерации по умолчанию
const (
	DefaultMapWidth     = 80
	DefaultMapHeight    = 43
	DefaultMaxRooms     = 30
	DefaultRoomMin      = 6
	DefaultRoomMax      = 10
	DefaultRoomMonsters = 2
	DefaultRoomItems    = 1
)

// FloorCap - ступень расписания: начиная с этажа Floor действует лимит Cap.
type FloorCap struct {
	Floor int
	Cap   int
}

// Расписания населенности: чем глубже, тем плотнее.
var (
	MonsterSchedule = []FloorCap{{1, 2}, {4, 3}, {6, 5}}
	ItemSchedule    = []FloorCap{{1, 1}, {4, 2}}
)

// CapForFloor возвращает лимит для этажа: берется последняя ступень,
// чей порог не превышает floor. До первой ступени лимит нулевой.
func CapForFloor(schedule []FloorCap, floor int) int {
	current := 0
	for _, step := range schedule {
		if step.Floor > floor {
			break
		}
		current = step.Cap
	}
	return current
}

// Params - настройки генератора уровня.
type Params struct {
	Width, Height int
	MaxRooms      int
	RoomMinSize   int
	RoomMaxSize   int

	// Плоские лимиты населенности на комнату. Действуют, когда
	// соответствующее расписание пустое.
	MaxMonstersPerRoom int
	MaxItemsPerRoom    int

	MonsterSchedule []FloorCap
	ItemSchedule    []FloorCap
}

// DefaultParams возвращает настройки классического подземелья.
func DefaultParams() Params {
	return Params{
		Width:              DefaultMapWidth,
		Height:             DefaultMapHeight,
		MaxRooms:           DefaultMaxRooms,
		RoomMinSize:        DefaultRoomMin,
		RoomMaxSize:        DefaultRoomMax,
		MaxMonstersPerRoom: DefaultRoomMonsters,
		MaxItemsPerRoom:    DefaultRoomItems,
		MonsterSchedule:    MonsterSchedule,
		ItemSchedule:       ItemSchedule,
	}
}

// MonsterCap возвращает лимит монстров на комнату для этажа.
// Расписание имеет приоритет над плоским лимитом.
func (p Params) MonsterCap(floor int) int {
	if len(p.MonsterSchedule) > 0 {
		return CapForFloor(p.MonsterSchedule, floor)
	}
	return p.MaxMonstersPerRoom
}

// ItemCap возвращает лимит предметов на комнату для этажа.
func (p Params) ItemCap(floor int) int {
	if len(p.ItemSchedule) > 0 {
		return CapForFloor(p.ItemSchedule, floor)
	}
	return p.MaxItemsPerRoom
}

// Validate проверяет настройки и падает сразу, а не посреди генерации.
func (p Params) Validate() error {
	if p.Width < 3 || p.Height < 3 {
		return fmt.Errorf("map size %dx%d is too small", p.Width, p.Height)
	}
	if p.MaxRooms < 1 {
		return fmt.Errorf("max_rooms must be at least 1, got %d", p.MaxRooms)
	}
	if p.RoomMinSize < 3 {
		return fmt.Errorf("room_min_size must be at least 3, got %d", p.RoomMinSize)
	}
	if p.RoomMaxSize < p.RoomMinSize {
		return fmt.Errorf("room_max_size %d is below room_min_size %d", p.RoomMaxSize, p.RoomMinSize)
	}
	if p.RoomMaxSize > p.Width-2 || p.RoomMaxSize > p.Height-2 {
		return fmt.Errorf("room_max_size %d does not fit the %dx%d map", p.RoomMaxSize, p.Width, p.Height)
	}
	if p.MaxMonstersPerRoom < 0 {
		return fmt.Errorf("max_monsters_per_room must not be negative, got %d", p.MaxMonstersPerRoom)
	}
	if p.MaxItemsPerRoom < 0 {
		return fmt.Errorf("max_items_per_room must not be negative, got %d", p.MaxItemsPerRoom)
	}
	if err := validateSchedule("monster_schedule", p.MonsterSchedule); err != nil {
		return err
	}
	if err := validateSchedule("item_schedule", p.ItemSchedule); err != nil {
		return err
	}
	return nil
}

// validateSchedule отсекает отрицательные лимиты и перепутанные пороги
// до того, как они доберутся до rng.Intn.
func validateSchedule(name string, schedule []FloorCap) error {
	prev := 0
	for i, step := range schedule {
		if step.Cap < 0 {
			return fmt.Errorf("%s: cap %d for floor %d must not be negative", name, step.Cap, step.Floor)
		}
		if i > 0 && step.Floor <= prev {
			return fmt.Errorf("%s: floor thresholds must ascend, got %d after %d", name, step.Floor, prev)
		}
		prev = step.Floor
	}
	return nil
}
