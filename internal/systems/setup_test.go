package systems

import (
	"delve-server/internal/domain"
	"delve-server/pkg/logger"
	"os"
	"testing"
)

func TestMain(m *testing.M) {
	// Initialize the global logger before running any tests
	logger.Init()

	// Exit with the result of the tests
	os.Exit(m.Run())
}

// makeFloorMap builds a map of the given size with every tile carved to floor.
func makeFloorMap(width, height int) *domain.GameMap {
	m := domain.NewGameMap(width, height, 1)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			m.SetTile(x, y, domain.TileFloor)
		}
	}
	return m
}
