package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/line/line-bot-sdk-go/v7/linebot"
	"go.uber.org/zap"

	"github.com/yuchiehk/coachbot/internal/app"
	"github.com/yuchiehk/coachbot/internal/config"
	"github.com/yuchiehk/coachbot/internal/controller"
	"github.com/yuchiehk/coachbot/internal/repository"
	"github.com/yuchiehk/coachbot/internal/service"
	"github.com/yuchiehk/coachbot/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	logger.Info("Starting coach booking bot",
		zap.String("environment", cfg.Environment),
		zap.Int("coaches", len(cfg.CoachIDs)))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		logger.Fatal("Failed to create connection pool", zap.Error(err))
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		logger.Fatal("Failed to reach database", zap.Error(err))
	}

	migrator, err := app.NewMigrator(pool, "migrations")
	if err != nil {
		logger.Fatal("Failed to create migrator", zap.Error(err))
	}
	if err := migrator.Run(ctx); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}
	migrator.Close()

	slotRepo := repository.NewSlotRepository(pool)
	overrideRepo := repository.NewOverrideRepository(pool)

	rules := service.NewRuleEvaluator(cfg.OpenWeekdays)
	sessions := session.NewStore()

	availability := service.NewAvailabilityService(slotRepo, overrideRepo, rules, logger)
	booking := service.NewBookingService(availability, slotRepo, sessions, logger)
	coach := service.NewCoachService(availability, slotRepo, overrideRepo, logger)

	client, err := linebot.New(cfg.ChannelSecret, cfg.ChannelToken)
	if err != nil {
		logger.Fatal("Failed to create LINE client", zap.Error(err))
	}

	bot := controller.NewBotController(client, booking, coach, cfg.CoachIDs, logger)
	reminders := service.NewReminderService(slotRepo, bot, cfg.CoachIDs, logger)

	scheduler := app.NewScheduler(coach, reminders, cfg.WeeksAhead, cfg.ReminderHour, logger)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	mux := http.NewServeMux()
	bot.Register(mux)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Listening for webhooks", zap.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server failed", zap.Error(err))
			cancel()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", zap.Error(err))
	}
}
