package domain

import (
	"encoding/json"
	"fmt"
)

// FighterComponent - Боевые характеристики.
//
// hp намеренно неэкспортирован: любая запись проходит через SetHP,
// который зажимает значение в [0, MaxHP] и сообщает о смерти.
// Инвариант держится структурно, а не проверками постфактум.
type FighterComponent struct {
	hp      int
	MaxHP   int `json:"maxHp"`
	Defense int `json:"defense"`
	Power   int `json:"power"`
}

// NewFighter создает бойца с полным здоровьем.
func NewFighter(hp, defense, power int) *FighterComponent {
	return &FighterComponent{
		hp:      hp,
		MaxHP:   hp,
		Defense: defense,
		Power:   power,
	}
}

// HP возвращает текущее здоровье.
func (f *FighterComponent) HP() int {
	return f.hp
}

// SetHP записывает здоровье, зажимая его в [0, MaxHP].
// Возвращает примененное значение и флаг died: true только при
// переходе из живого состояния в 0. Повторные записи нуля для уже
// мертвого бойца возвращают died=false - смерть срабатывает один раз.
func (f *FighterComponent) SetHP(value int) (applied int, died bool) {
	wasAlive := f.hp > 0

	applied = value
	if applied < 0 {
		applied = 0
	}
	if applied > f.MaxHP {
		applied = f.MaxHP
	}

	f.hp = applied
	return applied, wasAlive && applied == 0
}

// Damage уменьшает здоровье на amount через зажатый сеттер.
func (f *FighterComponent) Damage(amount int) (applied int, died bool) {
	return f.SetHP(f.hp - amount)
}

// Heal лечит бойца. Труп вылечить нельзя.
func (f *FighterComponent) Heal(amount int) int {
	if f.hp == 0 {
		return 0 // Не лечим трупы! Нет некромантии!
	}
	before := f.hp
	applied, _ := f.SetHP(f.hp + amount)
	return applied - before
}

// MarshalJSON сериализует компонент вместе с приватным hp.
func (f *FighterComponent) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		HP      int `json:"hp"`
		MaxHP   int `json:"maxHp"`
		Defense int `json:"defense"`
		Power   int `json:"power"`
	}{f.hp, f.MaxHP, f.Defense, f.Power})
}

// UnmarshalJSON восстанавливает компонент, прогоняя hp через сеттер.
func (f *FighterComponent) UnmarshalJSON(data []byte) error {
	var raw struct {
		HP      int `json:"hp"`
		MaxHP   int `json:"maxHp"`
		Defense int `json:"defense"`
		Power   int `json:"power"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("fighter component: %w", err)
	}
	f.MaxHP = raw.MaxHP
	f.Defense = raw.Defense
	f.Power = raw.Power
	f.SetHP(raw.HP)
	return nil
}
