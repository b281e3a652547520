package contract

import (
	"github.com/guildops/slack-tournament-bot/internal/domain/entity"
)

// TournamentService is the single entry point for everything the Slack
// surface can trigger: posting announcements, recording RSVPs and building
// the on-demand status text.
type TournamentService interface {
	PostAnnouncement(tt entity.TournamentType) error
	HandleRSVP(tt entity.TournamentType, user string, c entity.Category) error
	Status(tt entity.TournamentType) (string, error)
}

// ReminderChecker is ticked once per minute by the job scheduler.
type ReminderChecker interface {
	CheckReminders()
}
