package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"delve-server/internal/agent"
	"delve-server/internal/engine"
	"delve-server/internal/server"
	"delve-server/internal/telemetry"
	"delve-server/internal/version"
	"delve-server/pkg/logger"
	"github.com/joho/godotenv"
)

func init() {
	// .env опционален: в проде переменные приходят из окружения
	_ = godotenv.Load()
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var seed int64
	var botMode bool
	// Читаем флаг -seed. По умолчанию 0 (значит сгенерировать случайно).
	flag.Int64Var(&seed, "seed", 0, "Initial world seed (0 for random)")
	flag.BoolVar(&botMode, "bot", false, "Attach an autoplay agent (smoke test mode)")
	flag.Parse()

	logger.Log.Info("Starting Delve Server...")
	logger.Log.Info(version.String())

	ctx := context.Background()

	// Телеметрия включается только при заданном OTEL_EXPORTER_OTLP_ENDPOINT
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "" {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			logger.Log.WithError(err).Warn("Telemetry disabled: setup failed")
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					logger.Log.WithError(err).Warn("Telemetry shutdown failed")
				}
			}()
		}
	}

	// Формируем конфиг
	cfg := engine.NewConfig()
	if seed != 0 {
		cfg.Seed = seed
		logger.Log.Infof("🎲 Using explicit Master Seed: %d", seed)
	} else {
		logger.Log.Infof("🎲 Using random Master Seed: %d", cfg.Seed)
	}

	port := os.Getenv("DELVE_PORT")
	if port == "" {
		port = "8080"
	}

	// 2. Инициализация ядра с конфигом
	gameService, err := engine.NewService(ctx, cfg)
	if err != nil {
		logger.Log.Fatal("Engine init error:", err)
	}
	gameService.Start()

	// Дымовой режим: бот играет вместо человека
	if botMode {
		bot := agent.NewBot(gameService, cfg.Seed)
		go bot.Run()
	}

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// 3. Запуск сервера
	srv := server.New(gameService, port)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.Fatal("Server start error:", err)
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")
	logger.Log.Info("Done.")
}
