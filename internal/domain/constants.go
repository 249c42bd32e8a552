package domain

// Параметры восприятия
const (
	// VisionRadius - радиус поля зрения игрока в клетках.
	VisionRadius = 8
)

// Вероятности спавна по умолчанию
const (
	// DefaultMonsterChance - порог "обычный/редкий" монстр: 80% орк, 20% тролль.
	DefaultMonsterChance = 0.8
)
