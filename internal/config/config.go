package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/guildops/slack-tournament-bot/internal/domain/entity"
)

type Config struct {
	SlackBotToken      string
	SlackSigningSecret string
	ChannelID          string
	MorningPostTime    string // HH:MM, display zone
	ReminderLeadMin    int
	DefaultTournament  entity.TournamentType
	Port               string
}

func Load() (*Config, error) {
	cfg := &Config{
		SlackBotToken:      getEnv("SLACK_BOT_TOKEN", ""),
		SlackSigningSecret: getEnv("SLACK_SIGNING_SECRET", ""),
		ChannelID:          getEnv("CHANNEL_ID", ""),
		MorningPostTime:    getEnv("MORNING_POST_TIME", "09:00"),
		Port:               getEnv("PORT", "3000"),
	}

	lead, err := strconv.Atoi(getEnv("REMINDER_LEAD_MINUTES", "30"))
	if err != nil || lead <= 0 {
		return nil, fmt.Errorf("invalid REMINDER_LEAD_MINUTES: %s", getEnv("REMINDER_LEAD_MINUTES", "30"))
	}
	cfg.ReminderLeadMin = lead

	defaultType, err := entity.ParseTournamentType(getEnv("DEFAULT_TOURNAMENT", "ATC"))
	if err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_TOURNAMENT: %w", err)
	}
	cfg.DefaultTournament = defaultType

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
