package api

import "fmt"

// NewBar вычисляет полоску ресурса фиксированной ширины.
// Закрашенная часть округляется вниз, но не бывает пустой при value > 0.
func NewBar(value, maximum, width int) (*BarView, error) {
	if maximum <= 0 {
		return nil, fmt.Errorf("bar maximum must be positive, got %d", maximum)
	}
	if width <= 0 {
		return nil, fmt.Errorf("bar width must be positive, got %d", width)
	}

	if value < 0 {
		value = 0
	}
	if value > maximum {
		value = maximum
	}

	filled := value * width / maximum
	if value > 0 && filled == 0 {
		filled = 1
	}

	return &BarView{
		Value:   value,
		Maximum: maximum,
		Filled:  filled,
		Width:   width,
	}, nil
}
