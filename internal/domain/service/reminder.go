package service

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/guildops/slack-tournament-bot/internal/domain/contract"
	"github.com/guildops/slack-tournament-bot/internal/domain/entity"
	"github.com/guildops/slack-tournament-bot/internal/domain/message"
	"github.com/guildops/slack-tournament-bot/internal/domain/roster"
	"github.com/guildops/slack-tournament-bot/internal/domain/schedule"
	"github.com/guildops/slack-tournament-bot/internal/monitoring"
	"github.com/slack-go/slack"
)

// reminderScheduler checks on every tick whether a tournament's reminder is
// due and posts it at most once per type per day. A day where no tick lands
// in the window (process pause, missed minute) simply gets no reminder;
// there is no catch-up.
type reminderScheduler struct {
	store       *roster.Store
	resolver    *schedule.Resolver
	formatter   *message.Formatter
	slackClient contract.SlackClient
	channelID   string
	leadMinutes int

	mu      sync.Mutex
	firedOn map[entity.TournamentType]string
}

func newReminderScheduler(store *roster.Store, resolver *schedule.Resolver, formatter *message.Formatter,
	slackClient contract.SlackClient, channelID string, leadMinutes int) *reminderScheduler {

	return &reminderScheduler{
		store:       store,
		resolver:    resolver,
		formatter:   formatter,
		slackClient: slackClient,
		channelID:   channelID,
		leadMinutes: leadMinutes,
		firedOn:     make(map[entity.TournamentType]string),
	}
}

// CheckReminders runs once per minute from the job scheduler.
func (s *reminderScheduler) CheckReminders() {
	s.checkReminders(time.Now().UTC())
}

func (s *reminderScheduler) checkReminders(now time.Time) {
	for _, tt := range entity.AllTournamentTypes {
		if err := s.checkReminder(tt, now); err != nil {
			log.Printf("Reminder check failed for %s: %v", tt, err)
		}
	}
}

func (s *reminderScheduler) checkReminder(tt entity.TournamentType, now time.Time) error {
	instant, err := s.resolver.TodayInstant(tt, now)
	if err != nil {
		return err
	}

	if !schedule.WithinReminderWindow(instant, now, s.leadMinutes) {
		return nil
	}

	// The window/tick relationship already makes a double fire unlikely, but
	// the gocron duration job is not wall-aligned, so an explicit per-day
	// guard keeps the at-most-once contract.
	if s.alreadyFired(tt, now) {
		return nil
	}

	ann, err := s.store.Announcement(tt, now)
	if err != nil {
		return err
	}
	if ann == nil {
		log.Printf("No announcement posted today for %s, reminder skipped", tt)
		return nil
	}

	snap, err := s.store.Snapshot(tt)
	if err != nil {
		return err
	}

	lead := s.leadMinutes
	text := s.formatter.Reminder(tt, instant, snap, &lead, now)

	if _, _, err := s.slackClient.PostMessage(s.channelID, slack.MsgOptionText(text, false)); err != nil {
		monitoring.TransportError("send_reminder")
		return fmt.Errorf("failed to send reminder for %s: %w", tt, err)
	}

	s.markFired(tt, now)
	monitoring.ReminderSent(string(tt))
	log.Printf("Reminder for %s sent to channel %s", tt, s.channelID)
	return nil
}

func (s *reminderScheduler) alreadyFired(tt entity.TournamentType, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.firedOn[tt] == s.dayKey(now)
}

func (s *reminderScheduler) markFired(tt entity.TournamentType, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.firedOn[tt] = s.dayKey(now)
}

func (s *reminderScheduler) dayKey(now time.Time) string {
	return now.In(s.resolver.Location()).Format("2006-01-02")
}
