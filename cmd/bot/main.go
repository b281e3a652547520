package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/guildops/slack-tournament-bot/internal/config"
	"github.com/guildops/slack-tournament-bot/internal/domain/message"
	"github.com/guildops/slack-tournament-bot/internal/domain/roster"
	"github.com/guildops/slack-tournament-bot/internal/domain/schedule"
	"github.com/guildops/slack-tournament-bot/internal/domain/service"
	"github.com/guildops/slack-tournament-bot/internal/handlers"
	"github.com/guildops/slack-tournament-bot/internal/scheduler"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/slack-go/slack"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	resolver, err := schedule.NewResolver(schedule.Default())
	if err != nil {
		log.Fatalf("Invalid tournament schedule: %v", err)
	}

	store := roster.New(resolver.Location())
	formatter := message.New(resolver, cfg.ReminderLeadMin)
	slackClient := slack.New(cfg.SlackBotToken)

	services := service.NewInstance(store, resolver, formatter, slackClient, cfg.ChannelID, cfg.ReminderLeadMin)

	sched, err := scheduler.Start(services.Tournament, services.Reminder, cfg.MorningPostTime, cfg.DefaultTournament)
	if err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	handler := handlers.New(services.Tournament, cfg.SlackSigningSecret, cfg.DefaultTournament)

	http.HandleFunc("/slack/commands", handler.HandleSlashCommand)
	http.HandleFunc("/slack/interactions", handler.HandleInteraction)
	http.Handle("/metrics", promhttp.Handler())
	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	})

	log.Printf("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, nil); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
