package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/slack-go/slack"

	"github.com/hunterwatch/boss-alert-bot/internal/alert"
	"github.com/hunterwatch/boss-alert-bot/internal/chat"
	"github.com/hunterwatch/boss-alert-bot/internal/config"
	"github.com/hunterwatch/boss-alert-bot/internal/database"
	"github.com/hunterwatch/boss-alert-bot/internal/domain"
	"github.com/hunterwatch/boss-alert-bot/internal/handlers"
	"github.com/hunterwatch/boss-alert-bot/internal/participation"
	"github.com/hunterwatch/boss-alert-bot/migrator/sqlite"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	log := logger.WithField("service", domain.ServiceName)

	if err := godotenv.Load(); err != nil {
		log.Warn(".env file not found")
	}

	cfg := config.Load()

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize database")
	}
	defer db.Close()

	log.Info("running migrations")
	if err := sqlite.Migrate(db.DB()); err != nil {
		log.WithError(err).Fatal("failed to run migrations")
	}

	dataManager := database.NewInstance(db)

	slackClient := slack.New(cfg.SlackBotToken)
	chatClient := chat.New(slackClient)

	botUserID := ""
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if auth, err := chatClient.AuthTest(ctx); err != nil {
		log.WithError(err).Warn("slack auth failed, bot will report disconnected")
	} else {
		botUserID = auth.UserID
		log.WithField("bot_user", auth.User).Info("slack bot connected")
	}
	cancel()

	store := participation.NewStore()
	alertService := alert.New(store, chatClient, dataManager, cfg.SlackChannelID, log)

	botHandler := handlers.NewBotHandler(alertService, log)
	eventsHandler := handlers.NewEventsHandler(alertService, cfg.SlackSigningSecret, botUserID, log)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/send-boss", botHandler.HandleSendBoss)
	mux.HandleFunc("/api/status", botHandler.HandleStatus)
	mux.Handle("/slack/events", eventsHandler)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	})

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: mux,
	}

	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.WithField("port", cfg.Port).Info("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("failed to start server")
		}
	}()

	<-shutdownCtx.Done()
	log.Info("shutting down")

	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Error("server shutdown failed")
	}
}
