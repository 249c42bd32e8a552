package engine

import (
	"context"
	"math/rand"

	"delve-server/internal/domain"
	"delve-server/internal/systems"
	"delve-server/pkg/dungeon"
	"delve-server/pkg/logger"
	"github.com/sirupsen/logrus"
)

// Engine - ядро одной игровой сессии: герой, текущий этаж и режим игры.
// Все методы рассчитаны на вызов из одной горутины (см. GameService.Run).
type Engine struct {
	Cfg    Config
	Rng    *rand.Rand
	Player *domain.Entity
	Map    *domain.GameMap
	Mode   domain.GameMode
	Floor  int
}

// NewEngine создает сессию и генерирует первый этаж.
func NewEngine(ctx context.Context, cfg Config) (*Engine, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	player := dungeon.CreatePlayer("hero_1", rng)

	m, err := dungeon.Generate(ctx, cfg.Gen, 1, player, rng)
	if err != nil {
		return nil, err
	}

	g := &Engine{
		Cfg:    cfg,
		Rng:    rng,
		Player: player,
		Map:    m,
		Mode:   domain.ModePlaying,
		Floor:  1,
	}
	g.RefreshVision()

	logger.Log.WithFields(logrus.Fields{
		"component": "engine",
		"seed":      cfg.Seed,
	}).Info("New game session started")

	return g, nil
}

// RefreshVision пересчитывает поле зрения героя после его хода.
func (g *Engine) RefreshVision() {
	systems.UpdateFOV(g.Map, g.Player.Pos, domain.VisionRadius)
}

// EnemyTurns дает сходить каждому монстру ровно один раз и возвращает
// сообщения боя. Снимок списка актеров берется до первого хода, поэтому
// сдвинувшийся по SpatialHash монстр не сходит дважды. Гибель героя
// переводит игру в GAME_OVER, но волна доигрывается до конца: оставшиеся
// монстры стягиваются к останкам, бить труп им уже нечем.
func (g *Engine) EnemyTurns() []string {
	if g.Mode != domain.ModePlaying {
		return nil
	}

	acted := make(map[string]bool)
	var msgs []string

	for _, npc := range g.Map.Actors() {
		if acted[npc.ID] || npc.ID == g.Player.ID {
			continue
		}
		acted[npc.ID] = true

		if !npc.IsAlive() {
			continue
		}

		decision := systems.ComputeNPCAction(npc, g.Player, g.Map)
		if decision.Action != domain.ActionMove {
			continue
		}

		res := systems.CalculateMove(npc, decision.Dx, decision.Dy, g.Map)
		switch {
		case res.BlockedBy == g.Player:
			out := systems.ApplyAttack(npc, g.Player)
			msgs = append(msgs, out.Msg)
			if out.PlayerDied {
				g.Mode = domain.ModeGameOver
			}
		case res.HasMoved:
			systems.ApplyMove(npc, res, g.Map)
		}
	}

	return msgs
}

// Descend переносит героя на следующий этаж. Старый этаж вместе со всеми
// обитателями выбрасывается: возврата наверх нет.
func (g *Engine) Descend(ctx context.Context) error {
	g.Floor++

	m, err := dungeon.Generate(ctx, g.Cfg.Gen, g.Floor, g.Player, g.Rng)
	if err != nil {
		return err
	}

	g.Map = m
	g.RefreshVision()

	logger.Log.WithFields(logrus.Fields{
		"component": "engine",
		"floor":     g.Floor,
		"player_hp": g.Player.Fighter.HP(),
	}).Info("Player descended")

	return nil
}
