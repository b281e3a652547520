package schedule

import (
	"fmt"
	"time"

	"github.com/guildops/slack-tournament-bot/internal/domain"
	"github.com/guildops/slack-tournament-bot/internal/domain/entity"
)

const (
	// TickInterval is the cadence at which the reminder check runs.
	TickInterval = time.Minute

	// ReminderWindow is how long after the reminder instant a tick still
	// counts as "the reminder minute". Must be >= TickInterval, otherwise
	// a tick can land between windows and the reminder never fires.
	ReminderWindow = time.Minute
)

// Resolver turns schedule table entries into absolute instants and renders
// them in the fixed display zone. Instant resolution is pure UTC math;
// rendering is presentation only and never drives scheduling decisions.
type Resolver struct {
	table Table
	loc   *time.Location
}

// NewResolver validates the table and loads the display zone.
func NewResolver(table Table) (*Resolver, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}
	loc, err := time.LoadLocation(domain.DisplayTimeZone)
	if err != nil {
		return nil, fmt.Errorf("%w: load display zone: %v", domain.ErrConfig, err)
	}
	return &Resolver{table: table, loc: loc}, nil
}

// TodayInstant returns the tournament's UTC start instant on now's calendar
// date. Only the date portion of now matters; the result has seconds and
// nanoseconds zeroed. Day rollover is the caller's concern: this never looks
// across midnight.
func (r *Resolver) TodayInstant(tt entity.TournamentType, now time.Time) (time.Time, error) {
	now = now.UTC()
	entry, err := r.table.Lookup(tt, now.Weekday())
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(now.Year(), now.Month(), now.Day(), entry.Hour, entry.Minute, 0, 0, time.UTC), nil
}

// ReminderInstant is the moment the reminder for a tournament is due.
func ReminderInstant(instant time.Time, leadMinutes int) time.Time {
	return instant.Add(-time.Duration(leadMinutes) * time.Minute)
}

// WithinReminderWindow reports whether now falls in
// [reminder, reminder+ReminderWindow). With a 60s tick exactly one tick per
// day lands in the window; a missed tick silently skips that day's reminder.
func WithinReminderWindow(instant, now time.Time, leadMinutes int) bool {
	due := ReminderInstant(instant, leadMinutes)
	return !now.Before(due) && now.Before(due.Add(ReminderWindow))
}

// Countdown computes the whole hours and minutes remaining until instant.
// Once the instant is reached the countdown reads zero with Passed set.
func Countdown(instant, now time.Time) entity.Countdown {
	diff := instant.Sub(now)
	if diff <= 0 {
		return entity.Countdown{Passed: true}
	}
	return entity.Countdown{
		Hours:   int(diff / time.Hour),
		Minutes: int((diff % time.Hour) / time.Minute),
	}
}

// LocalClock renders an instant as HH:MM in the display zone.
func (r *Resolver) LocalClock(instant time.Time) string {
	return instant.In(r.loc).Format("15:04")
}

// LocalDayName returns the French weekday name of now in the display zone.
func (r *Resolver) LocalDayName(now time.Time) string {
	return domain.WeekdayNamesFR[now.In(r.loc).Weekday()]
}

// Location exposes the display zone for callers that need day boundaries.
func (r *Resolver) Location() *time.Location {
	return r.loc
}
