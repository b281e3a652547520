package service

import (
	"fmt"
	"log"
	"time"

	"github.com/guildops/slack-tournament-bot/internal/domain"
	"github.com/guildops/slack-tournament-bot/internal/domain/contract"
	"github.com/guildops/slack-tournament-bot/internal/domain/entity"
	"github.com/guildops/slack-tournament-bot/internal/domain/message"
	"github.com/guildops/slack-tournament-bot/internal/domain/roster"
	"github.com/guildops/slack-tournament-bot/internal/domain/schedule"
	"github.com/guildops/slack-tournament-bot/internal/monitoring"
	"github.com/slack-go/slack"
)

type tournamentService struct {
	store       *roster.Store
	resolver    *schedule.Resolver
	formatter   *message.Formatter
	slackClient contract.SlackClient
	channelID   string
	leadMinutes int
}

func newTournament(store *roster.Store, resolver *schedule.Resolver, formatter *message.Formatter,
	slackClient contract.SlackClient, channelID string, leadMinutes int) *tournamentService {

	return &tournamentService{
		store:       store,
		resolver:    resolver,
		formatter:   formatter,
		slackClient: slackClient,
		channelID:   channelID,
		leadMinutes: leadMinutes,
	}
}

// PostAnnouncement posts the registration message with the three RSVP
// buttons and starts a fresh roster epoch for the type.
func (s *tournamentService) PostAnnouncement(tt entity.TournamentType) error {
	return s.postAnnouncement(tt, time.Now().UTC())
}

func (s *tournamentService) postAnnouncement(tt entity.TournamentType, now time.Time) error {
	if !tt.Valid() {
		return fmt.Errorf("%w: unknown tournament type %q", domain.ErrValidation, tt)
	}

	instant, err := s.resolver.TodayInstant(tt, now)
	if err != nil {
		return err
	}

	text := s.formatter.Announcement(tt, instant, s.resolver.LocalDayName(now))

	channelID, timestamp, err := s.slackClient.PostMessage(s.channelID, rsvpBlocks(tt, text))
	if err != nil {
		monitoring.TransportError("post_announcement")
		return fmt.Errorf("failed to post announcement for %s: %w", tt, err)
	}

	// The roster epoch only advances once Slack confirmed the post. A failed
	// post keeps the previous announcement and its registrations intact.
	if err := s.store.Clear(tt); err != nil {
		return err
	}
	if err := s.store.SetAnnouncement(tt, entity.Announcement{
		ChannelID: channelID,
		Timestamp: timestamp,
		PostedAt:  now,
	}); err != nil {
		return err
	}

	monitoring.AnnouncementPosted(string(tt))
	log.Printf("Announcement for %s posted to channel %s", tt, channelID)
	return nil
}

// HandleRSVP records a button press and re-renders the announcement with the
// updated roster. The mutation is kept even when the edit fails: the next
// RSVP re-renders the full roster anyway.
func (s *tournamentService) HandleRSVP(tt entity.TournamentType, user string, c entity.Category) error {
	return s.handleRSVP(tt, user, c, time.Now().UTC())
}

func (s *tournamentService) handleRSVP(tt entity.TournamentType, user string, c entity.Category, now time.Time) error {
	if err := s.store.SetCategory(tt, user, c); err != nil {
		return err
	}
	monitoring.RsvpReceived(string(tt), string(c))

	ann, err := s.store.Announcement(tt, now)
	if err != nil {
		return err
	}
	if ann == nil {
		log.Printf("No active announcement for %s today, skipping re-render", tt)
		return nil
	}

	snap, err := s.store.Snapshot(tt)
	if err != nil {
		return err
	}
	instant, err := s.resolver.TodayInstant(tt, now)
	if err != nil {
		return err
	}

	text := s.formatter.AnnouncementWithRoster(tt, instant, s.resolver.LocalDayName(now), snap)
	if _, _, _, err := s.slackClient.UpdateMessage(ann.ChannelID, ann.Timestamp, rsvpBlocks(tt, text)); err != nil {
		monitoring.TransportError("edit_announcement")
		log.Printf("Failed to update announcement for %s: %v", tt, err)
	}
	return nil
}

// Status builds the on-demand reminder text with a live countdown. When no
// announcement exists yet today one is posted first, so the buttons are
// always available by the time someone asks for the status.
func (s *tournamentService) Status(tt entity.TournamentType) (string, error) {
	return s.status(tt, time.Now().UTC())
}

func (s *tournamentService) status(tt entity.TournamentType, now time.Time) (string, error) {
	if !tt.Valid() {
		return "", fmt.Errorf("%w: unknown tournament type %q", domain.ErrValidation, tt)
	}

	ann, err := s.store.Announcement(tt, now)
	if err != nil {
		return "", err
	}
	if ann == nil {
		if err := s.postAnnouncement(tt, now); err != nil {
			return "", err
		}
	}

	snap, err := s.store.Snapshot(tt)
	if err != nil {
		return "", err
	}
	instant, err := s.resolver.TodayInstant(tt, now)
	if err != nil {
		return "", err
	}

	return s.formatter.Reminder(tt, instant, snap, nil, now), nil
}

// rsvpBlocks builds the announcement body with the present/absent/late
// buttons. The action ID carries the category, the value carries the type.
func rsvpBlocks(tt entity.TournamentType, text string) slack.MsgOption {
	section := slack.NewSectionBlock(
		slack.NewTextBlockObject(slack.MarkdownType, text, false, false), nil, nil)

	present := slack.NewButtonBlockElement(
		domain.RsvpActionPrefix+string(entity.CategoryPresent), string(tt),
		slack.NewTextBlockObject(slack.PlainTextType, "✅ Présent", true, false))
	present.Style = slack.StylePrimary

	absent := slack.NewButtonBlockElement(
		domain.RsvpActionPrefix+string(entity.CategoryAbsent), string(tt),
		slack.NewTextBlockObject(slack.PlainTextType, "❌ Absent", true, false))

	late := slack.NewButtonBlockElement(
		domain.RsvpActionPrefix+string(entity.CategoryLate), string(tt),
		slack.NewTextBlockObject(slack.PlainTextType, "⏰ En retard", true, false))

	actions := slack.NewActionBlock("rsvp_"+string(tt), present, absent, late)

	return slack.MsgOptionBlocks(section, actions)
}
