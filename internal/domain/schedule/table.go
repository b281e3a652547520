package schedule

import (
	"fmt"
	"time"

	"github.com/guildops/slack-tournament-bot/internal/domain"
	"github.com/guildops/slack-tournament-bot/internal/domain/entity"
)

// Entry is the UTC start time of a tournament on one weekday.
type Entry struct {
	Hour   int
	Minute int
}

// Table maps tournament type and weekday to the UTC start time. The table is
// static: loaded once at startup, validated, never mutated.
type Table map[entity.TournamentType]map[time.Weekday]Entry

// Default returns the production schedule. All times UTC.
func Default() Table {
	return Table{
		entity.TournamentATA: {
			time.Sunday:    {Hour: 2},
			time.Monday:    {Hour: 4},
			time.Tuesday:   {Hour: 3},
			time.Wednesday: {Hour: 2},
			time.Thursday:  {Hour: 3},
			time.Friday:    {Hour: 4},
			time.Saturday:  {Hour: 3},
		},
		entity.TournamentATB: {
			time.Sunday:    {Hour: 11},
			time.Monday:    {Hour: 13},
			time.Tuesday:   {Hour: 12},
			time.Wednesday: {Hour: 11},
			time.Thursday:  {Hour: 12},
			time.Friday:    {Hour: 13},
			time.Saturday:  {Hour: 12},
		},
		entity.TournamentATC: {
			time.Sunday:    {Hour: 18},
			time.Monday:    {Hour: 20},
			time.Tuesday:   {Hour: 19},
			time.Wednesday: {Hour: 18},
			time.Thursday:  {Hour: 19},
			time.Friday:    {Hour: 20},
			time.Saturday:  {Hour: 19},
		},
	}
}

// Validate checks that every (type, weekday) pair has exactly one in-range
// entry. An incomplete table produces wrong start times, so this must be
// called at startup and treated as fatal.
func (t Table) Validate() error {
	for _, tt := range entity.AllTournamentTypes {
		days, ok := t[tt]
		if !ok {
			return fmt.Errorf("%w: no schedule for tournament %s", domain.ErrConfig, tt)
		}
		for wd := time.Sunday; wd <= time.Saturday; wd++ {
			entry, ok := days[wd]
			if !ok {
				return fmt.Errorf("%w: tournament %s has no entry for %s", domain.ErrConfig, tt, wd)
			}
			if entry.Hour < 0 || entry.Hour > 23 || entry.Minute < 0 || entry.Minute > 59 {
				return fmt.Errorf("%w: tournament %s has invalid time %02d:%02d on %s",
					domain.ErrConfig, tt, entry.Hour, entry.Minute, wd)
			}
		}
	}
	return nil
}

// Lookup returns the UTC start time of a tournament on the given weekday.
func (t Table) Lookup(tt entity.TournamentType, weekday time.Weekday) (Entry, error) {
	days, ok := t[tt]
	if !ok {
		return Entry{}, fmt.Errorf("%w: no schedule for tournament %s", domain.ErrConfig, tt)
	}
	entry, ok := days[weekday]
	if !ok {
		return Entry{}, fmt.Errorf("%w: tournament %s has no entry for %s", domain.ErrConfig, tt, weekday)
	}
	return entry, nil
}
