// Package message renders every user-facing text of the bot. All copy is
// French and uses Slack mrkdwn. Rendering is pure: formatters never mutate
// state and never decide when something is sent.
package message

import (
	"fmt"
	"strings"
	"time"

	"github.com/guildops/slack-tournament-bot/internal/domain/entity"
	"github.com/guildops/slack-tournament-bot/internal/domain/schedule"
)

type Formatter struct {
	resolver    *schedule.Resolver
	leadMinutes int
}

func New(resolver *schedule.Resolver, leadMinutes int) *Formatter {
	return &Formatter{
		resolver:    resolver,
		leadMinutes: leadMinutes,
	}
}

// Announcement renders the daily registration message body. Roster data is
// not embedded; AnnouncementWithRoster appends it on re-render.
func (f *Formatter) Announcement(tt entity.TournamentType, instant time.Time, dayName string) string {
	return fmt.Sprintf("🏆 *TOURNOI %s - %s* 🏆\n\n", tt, strings.ToUpper(dayName)) +
		fmt.Sprintf("Le tournoi automatique *%s* de ce soir aura lieu à *%s* (heure française).\n\n",
			tt.DisplayName(), f.resolver.LocalClock(instant)) +
		"Cliquez sur les boutons ci-dessous pour indiquer votre présence :\n\n" +
		fmt.Sprintf("Un rappel sera envoyé %d minutes avant le début du tournoi.", f.leadMinutes)
}

// AnnouncementWithRoster renders the announcement plus the current
// registrations. Groups always appear in present, late, absent order; empty
// groups are omitted entirely.
func (f *Formatter) AnnouncementWithRoster(tt entity.TournamentType, instant time.Time, dayName string, snap entity.RosterSnapshot) string {
	var b strings.Builder
	b.WriteString(f.Announcement(tt, instant, dayName))

	if snap.Empty() {
		b.WriteString("\n\n📋 *Aucune inscription pour le moment.*")
		return b.String()
	}

	b.WriteString("\n\n📋 *Inscriptions :*\n")
	writeGroup(&b, "✅ *Présents", snap.Present)
	writeGroup(&b, "⏰ *En retard", snap.Late)
	writeGroup(&b, "❌ *Absents", snap.Absent)
	return b.String()
}

// Reminder renders the pre-tournament reminder. leadMinutes is non-nil when
// the scheduled trigger fires (fixed "dans N minutes"); on-demand status
// calls pass nil and get a live countdown instead. Absentees are excluded:
// only present and late users are listed and counted.
func (f *Formatter) Reminder(tt entity.TournamentType, instant time.Time, snap entity.RosterSnapshot, leadMinutes *int, now time.Time) string {
	timeText := ""
	if leadMinutes != nil {
		timeText = fmt.Sprintf("dans %d minutes", *leadMinutes)
	} else {
		timeText = countdownText(schedule.Countdown(instant, now))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "⏰ *RAPPEL TOURNOI %s* ⏰\n\n", tt)
	fmt.Fprintf(&b, "Le tournoi *%s* commence %s à *%s* !\n\n",
		tt.DisplayName(), timeText, f.resolver.LocalClock(instant))

	if snap.Participants() == 0 {
		b.WriteString("Aucune inscription pour le moment. 😢")
		return b.String()
	}

	fmt.Fprintf(&b, "*%d participant(s) inscrit(s) :*\n", snap.Participants())
	writeGroup(&b, "✅ *Présents", snap.Present)
	writeGroup(&b, "⏰ *En retard", snap.Late)
	return b.String()
}

// RsvpAck is the ephemeral confirmation shown to the user who pressed a
// button.
func RsvpAck(c entity.Category) string {
	switch c {
	case entity.CategoryPresent:
		return "✅ Vous êtes inscrit comme présent !"
	case entity.CategoryAbsent:
		return "❌ Vous êtes marqué comme absent."
	case entity.CategoryLate:
		return "⏰ Vous êtes inscrit comme en retard."
	}
	return ""
}

func writeGroup(b *strings.Builder, header string, users []string) {
	if len(users) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s (%d) :*\n", header, len(users))
	for _, u := range users {
		fmt.Fprintf(b, "• %s\n", u)
	}
}

func countdownText(c entity.Countdown) string {
	if c.Passed {
		return "maintenant"
	}
	if c.Hours > 0 {
		return fmt.Sprintf("dans %dh %02dmin", c.Hours, c.Minutes)
	}
	return fmt.Sprintf("dans %dmin", c.Minutes)
}
