package agent

import (
	"encoding/json"
	"math/rand"

	"delve-server/internal/domain"
	"delve-server/internal/engine"
	"delve-server/pkg/api"
	"delve-server/pkg/logger"
	"github.com/sirupsen/logrus"
)

// Bot - "игрок-компьютер" (Headless Agent). Он подключается к хабу так же,
// как обычный клиент: получает снимки мира и отправляет команды обратно.
// Живому серверу бот не нужен; это нагрузочный и дымовой клиент
// (флаг -bot у сервера).
//
// Жизненный цикл:
//  1. NewBot -> регистрация в хабе, получение личного канала (Inbox).
//  2. Run -> запуск в отдельной горутине, слушает свой Inbox.
//  3. На каждый снимок отвечает ровно одной командой.
type Bot struct {
	EntityID string
	Service  *engine.GameService
	Inbox    chan api.ServerResponse
	rng      *rand.Rand
}

func NewBot(service *engine.GameService, seed int64) *Bot {
	entityID := service.Game.Player.ID
	logger.Log.WithFields(logrus.Fields{
		"component": "agent",
		"entity_id": entityID,
	}).Info("Creating autoplay agent")

	return &Bot{
		EntityID: entityID,
		Service:  service,
		Inbox:    service.Hub.Register(entityID),
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// Run запускает цикл жизни бота. Должен быть запущен в горутине.
func (b *Bot) Run() {
	defer b.Service.Hub.Unregister(b.EntityID)

	// Первый снимок приходит в ответ на INIT
	b.send(domain.ActionInit, nil)

	for state := range b.Inbox {
		b.makeMove(state)
	}

	logger.Log.WithField("component", "agent").Info("Agent shut down")
}

// makeMove - мозг бота. Простая жадная стратегия: погибли - выходим,
// стоим на лестнице - спускаемся, видим врага - идем на него (шаг в его
// клетку превращается в атаку), иначе бредем в случайную сторону.
func (b *Bot) makeMove(state api.ServerResponse) {
	if state.Mode == domain.ModeGameOver.String() {
		b.send(domain.ActionEscape, nil)
		return
	}

	me := findSelf(state, b.EntityID)
	if me == nil {
		b.send(domain.ActionWait, nil)
		return
	}

	if onStairs(state, me) {
		b.send(domain.ActionDescend, nil)
		return
	}

	if enemy := nearestEnemy(state, me); enemy != nil {
		dx, dy := stepToward(me, enemy)
		b.send(domain.ActionMove, api.DirectionPayload{Dx: dx, Dy: dy})
		return
	}

	// Никого не видно: случайный шаг, чтобы исследовать карту
	dx := b.rng.Intn(3) - 1
	dy := b.rng.Intn(3) - 1
	if dx == 0 && dy == 0 {
		b.send(domain.ActionWait, nil)
		return
	}
	b.send(domain.ActionMove, api.DirectionPayload{Dx: dx, Dy: dy})
}

func findSelf(state api.ServerResponse, id string) *api.EntityView {
	for i := range state.Entities {
		if state.Entities[i].ID == id {
			return &state.Entities[i]
		}
	}
	return nil
}

// onStairs проверяет по снимку, стоит ли бот на тайле лестницы.
func onStairs(state api.ServerResponse, me *api.EntityView) bool {
	for _, tv := range state.Map {
		if tv.X == me.Pos.X && tv.Y == me.Pos.Y {
			return tv.Symbol == ">"
		}
	}
	return false
}

func nearestEnemy(state api.ServerResponse, me *api.EntityView) *api.EntityView {
	var best *api.EntityView
	bestDist := 1 << 30

	for i := range state.Entities {
		ev := &state.Entities[i]
		if ev.Type != domain.EntityTypeEnemy {
			continue
		}
		if ev.Stats == nil || ev.Stats.IsDead {
			continue
		}

		dx := ev.Pos.X - me.Pos.X
		dy := ev.Pos.Y - me.Pos.Y
		dist := dx*dx + dy*dy
		if dist < bestDist {
			bestDist = dist
			best = ev
		}
	}
	return best
}

func stepToward(me, target *api.EntityView) (int, int) {
	dx, dy := 0, 0
	if target.Pos.X > me.Pos.X {
		dx = 1
	} else if target.Pos.X < me.Pos.X {
		dx = -1
	}
	if target.Pos.Y > me.Pos.Y {
		dy = 1
	} else if target.Pos.Y < me.Pos.Y {
		dy = -1
	}
	return dx, dy
}

func (b *Bot) send(action domain.ActionType, payload interface{}) {
	var raw json.RawMessage
	if payload != nil {
		bytes, err := json.Marshal(payload)
		if err != nil {
			logger.Log.WithField("component", "agent").
				WithError(err).Error("Payload marshalling failed")
			return
		}
		raw = bytes
	}

	b.Service.ProcessCommand(api.ClientCommand{
		Action:  action.String(),
		Token:   b.EntityID,
		Payload: raw,
	})
}
