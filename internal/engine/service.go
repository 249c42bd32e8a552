package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"delve-server/internal/domain"
	"delve-server/internal/engine/handlers"
	"delve-server/internal/engine/handlers/actions"
	"delve-server/internal/network"
	"delve-server/pkg/api"
	"delve-server/pkg/logger"
	"delve-server/pkg/utils"
	"github.com/sirupsen/logrus"
)

// GameService связывает сетевой мир с движком: принимает команды из
// канала, выполняет их строго по одной и рассылает снимки состояния.
type GameService struct {
	Game *Engine

	Logs []api.LogEntry

	CommandChan chan domain.InternalCommand
	Hub         *network.Broadcaster

	handlers map[domain.ActionType]handlers.HandlerFunc

	// exit подменяется в тестах, чтобы ESCAPE не убивал процесс
	exit func(code int)
}

func NewService(ctx context.Context, cfg Config) (*GameService, error) {
	game, err := NewEngine(ctx, cfg)
	if err != nil {
		return nil, err
	}

	s := &GameService{
		Game:        game,
		Logs:        []api.LogEntry{},
		CommandChan: make(chan domain.InternalCommand, 100),
		Hub:         network.NewBroadcaster(),
		handlers:    make(map[domain.ActionType]handlers.HandlerFunc),
		exit:        os.Exit,
	}

	s.registerHandlers()
	return s, nil
}

func (s *GameService) registerHandlers() {
	s.handlers[domain.ActionMove] = handlers.WithPayload(actions.HandleMove)
	s.handlers[domain.ActionWait] = handlers.WithEmptyPayload(actions.HandleWait)
	s.handlers[domain.ActionDescend] = handlers.WithEmptyPayload(actions.HandleDescend)
	s.handlers[domain.ActionEscape] = handlers.WithEmptyPayload(actions.HandleEscape)
	s.handlers[domain.ActionInit] = handlers.WithEmptyPayload(actions.HandleInit)
}

func (s *GameService) Start() {
	go s.Run()
}

// ProcessCommand принимает команду от внешнего мира (WebSocket)
func (s *GameService) ProcessCommand(externalCmd api.ClientCommand) {
	actionType := domain.ParseAction(externalCmd.Action)
	if actionType == domain.ActionUnknown {
		logger.Log.WithFields(logrus.Fields{
			"component": "game_service",
			"action":    externalCmd.Action,
		}).Warn("Unknown action ignored")
		return
	}

	s.CommandChan <- domain.InternalCommand{
		Action:  actionType,
		Token:   externalCmd.Token,
		Payload: externalCmd.Payload,
	}
}

// Run - единственная горутина, которой разрешено трогать состояние игры.
// Все команды сериализуются через CommandChan, блокировки не нужны.
func (s *GameService) Run() {
	logger.Log.WithField("component", "game_service").Info("Game loop started")

	for cmd := range s.CommandChan {
		s.execute(cmd)
	}
}

// execute выполняет одну команду целиком: действие игрока, пересчет
// зрения, волна врагов, рассылка снимка.
func (s *GameService) execute(cmd domain.InternalCommand) {
	// После гибели героя принимается только выход
	if s.Game.Mode == domain.ModeGameOver &&
		cmd.Action != domain.ActionEscape && cmd.Action != domain.ActionInit {
		s.AddLog("Вы мертвы. Нажмите ESCAPE, чтобы выйти.", "ERROR")
		s.publishUpdate()
		return
	}

	// INIT с данными - запрос новой сессии, а не снимка текущей
	if cmd.Action == domain.ActionInit && len(cmd.Payload) > 0 {
		if err := s.reinit(cmd.Payload); err != nil {
			s.AddLog(err.Error(), "ERROR")
			s.publishUpdate()
			return
		}
	}

	handler, ok := s.handlers[cmd.Action]
	if !ok {
		return
	}

	ctx := handlers.Context{
		Map:   s.Game.Map,
		Actor: s.Game.Player,
	}

	result, err := handler(ctx, cmd.Payload)
	if err != nil {
		s.AddLog(err.Error(), "ERROR")
		s.publishUpdate()
		return
	}

	if result.Msg != "" {
		msgType := result.MsgType
		if msgType == "" {
			msgType = "INFO"
		}
		s.AddLog(result.Msg, msgType)
	}

	switch result.Event {
	case handlers.EventDescend:
		if err := s.Game.Descend(context.Background()); err != nil {
			logger.Log.WithField("component", "game_service").
				WithError(err).Error("Level generation failed")
			s.AddLog("Лестница обрушилась. Спуск невозможен.", "ERROR")
			break
		}
		s.AddLog(fmt.Sprintf("Вы спускаетесь на этаж %d.", s.Game.Floor), "INFO")

	case handlers.EventEscape:
		s.publishUpdate()
		logger.Log.WithField("component", "game_service").Info("Player escaped, shutting down")
		s.exit(0)
		return
	}

	if result.EndsTurn {
		s.Game.RefreshVision()
		for _, msg := range s.Game.EnemyTurns() {
			s.AddLog(msg, "COMBAT")
		}
		if s.Game.Mode == domain.ModeGameOver {
			s.AddLog("Вы погибли!", "DEATH")
		}
	}

	s.publishUpdate()
}

// reinit начинает игру заново с присланным сидом. Нулевой сид оставляет
// текущую сессию как есть: клиент просто хочет снимок.
func (s *GameService) reinit(raw json.RawMessage) error {
	var p api.InitPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return fmt.Errorf("invalid payload format: %w", err)
	}
	if err := p.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if p.Seed == 0 {
		return nil
	}

	cfg := s.Game.Cfg
	cfg.Seed = p.Seed
	game, err := NewEngine(context.Background(), cfg)
	if err != nil {
		return err
	}
	s.Game = game

	logger.Log.WithFields(logrus.Fields{
		"component": "game_service",
		"seed":      p.Seed,
	}).Info("Session restarted")
	return nil
}

// publishUpdate шлет персональный снимок подключенному герою.
func (s *GameService) publishUpdate() {
	player := s.Game.Player
	if s.Hub.HasSubscriber(player.ID) {
		state := s.BuildStateFor(player)
		s.Hub.SendTo(player.ID, *state)
	}

	// Логи доставлены, очищаем буфер
	s.Logs = []api.LogEntry{}
}

func (s *GameService) AddLog(text, logType string) {
	s.Logs = append(s.Logs, api.LogEntry{
		ID:        utils.GenerateID(),
		Text:      text,
		Type:      logType,
		Timestamp: time.Now().UnixMilli(),
	})
}
