package service

import (
	"github.com/guildops/slack-tournament-bot/internal/domain/contract"
	"github.com/guildops/slack-tournament-bot/internal/domain/message"
	"github.com/guildops/slack-tournament-bot/internal/domain/roster"
	"github.com/guildops/slack-tournament-bot/internal/domain/schedule"
)

type Instance struct {
	Tournament *tournamentService
	Reminder   *reminderScheduler
}

func NewInstance(store *roster.Store, resolver *schedule.Resolver, formatter *message.Formatter,
	slackClient contract.SlackClient, channelID string, leadMinutes int) *Instance {

	return &Instance{
		Tournament: newTournament(store, resolver, formatter, slackClient, channelID, leadMinutes),
		Reminder:   newReminderScheduler(store, resolver, formatter, slackClient, channelID, leadMinutes),
	}
}

// compile-time contract checks
var (
	_ contract.TournamentService = (*tournamentService)(nil)
	_ contract.ReminderChecker   = (*reminderScheduler)(nil)
)
