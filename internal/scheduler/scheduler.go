// Package scheduler wires the two time-driven jobs: the daily announcement
// post at the configured local time and the minute tick that checks for due
// reminders.
package scheduler

import (
	"fmt"
	"log"
	"time"

	"github.com/guildops/slack-tournament-bot/internal/domain"
	"github.com/guildops/slack-tournament-bot/internal/domain/contract"
	"github.com/guildops/slack-tournament-bot/internal/domain/entity"
	"github.com/guildops/slack-tournament-bot/internal/domain/schedule"

	"github.com/go-co-op/gocron/v2"
)

type Scheduler struct {
	s gocron.Scheduler
}

// Start schedules the jobs and launches the scheduler. postTime is "HH:MM"
// in the display zone; defaultType is the tournament announced automatically
// every morning.
func Start(tournamentService contract.TournamentService, reminderChecker contract.ReminderChecker,
	postTime string, defaultType entity.TournamentType) (*Scheduler, error) {

	loc, err := time.LoadLocation(domain.DisplayTimeZone)
	if err != nil {
		return nil, fmt.Errorf("load display zone: %w", err)
	}

	parsed, err := time.Parse("15:04", postTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid morning post time %q, expected HH:MM", domain.ErrConfig, postTime)
	}

	s, err := gocron.NewScheduler(gocron.WithLocation(loc))
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}

	// Daily announcement for the default tournament, local time.
	_, err = s.NewJob(
		gocron.CronJob(fmt.Sprintf("%d %d * * *", parsed.Minute(), parsed.Hour()), false),
		gocron.NewTask(func() {
			if err := tournamentService.PostAnnouncement(defaultType); err != nil {
				log.Printf("Failed to post morning announcement for %s: %v", defaultType, err)
			}
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("schedule morning announcement: %w", err)
	}

	// Reminder tick. The reminder window is sized so one tick per day lands
	// in it; a slower tick would skip reminders.
	_, err = s.NewJob(
		gocron.DurationJob(schedule.TickInterval),
		gocron.NewTask(reminderChecker.CheckReminders),
	)
	if err != nil {
		return nil, fmt.Errorf("schedule reminder tick: %w", err)
	}

	s.Start()
	log.Printf("Scheduler started: morning post at %s (%s), reminder check every %s",
		postTime, domain.DisplayTimeZone, schedule.TickInterval)

	return &Scheduler{s: s}, nil
}

func (s *Scheduler) Stop() {
	if err := s.s.Shutdown(); err != nil {
		log.Printf("Scheduler shutdown error: %v", err)
	}
}
