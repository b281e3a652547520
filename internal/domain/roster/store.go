package roster

import (
	"fmt"
	"sync"
	"time"

	"github.com/guildops/slack-tournament-bot/internal/domain"
	"github.com/guildops/slack-tournament-bot/internal/domain/entity"
)

// Store holds the in-memory RSVP state for every tournament type: three
// mutually exclusive categories per type plus the handle of today's
// announcement message. State is memory-resident only and resets when the
// process restarts.
//
// Slack delivers interaction callbacks concurrently with scheduler ticks, so
// all access goes through a single mutex.
type Store struct {
	mu      sync.Mutex
	rosters map[entity.TournamentType]*roster
	loc     *time.Location
}

type roster struct {
	category     map[string]entity.Category
	order        map[entity.Category][]string
	announcement *entity.Announcement
}

func newRoster() *roster {
	return &roster{
		category: make(map[string]entity.Category),
		order:    make(map[entity.Category][]string),
	}
}

// New creates a store with an empty roster per known tournament type.
// loc defines the calendar-day boundary for announcement expiry.
func New(loc *time.Location) *Store {
	s := &Store{
		rosters: make(map[entity.TournamentType]*roster),
		loc:     loc,
	}
	for _, tt := range entity.AllTournamentTypes {
		s.rosters[tt] = newRoster()
	}
	return s
}

func (s *Store) roster(tt entity.TournamentType) (*roster, error) {
	r, ok := s.rosters[tt]
	if !ok {
		return nil, fmt.Errorf("%w: unknown tournament type %q", domain.ErrValidation, tt)
	}
	return r, nil
}

// SetCategory registers a user in exactly one category: the user is removed
// from every category first, then appended to the requested one. Repeating
// the same answer is a no-op, so the insertion order is kept.
func (s *Store) SetCategory(tt entity.TournamentType, user string, c entity.Category) error {
	switch c {
	case entity.CategoryPresent, entity.CategoryAbsent, entity.CategoryLate:
	default:
		return fmt.Errorf("%w: unknown rsvp category %q", domain.ErrValidation, c)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	r, err := s.roster(tt)
	if err != nil {
		return err
	}

	if current, ok := r.category[user]; ok {
		if current == c {
			return nil
		}
		r.order[current] = remove(r.order[current], user)
	}

	r.category[user] = c
	r.order[c] = append(r.order[c], user)
	return nil
}

// Clear empties all three categories for a type. Called once per new
// announcement post, after the transport confirmed the post.
func (s *Store) Clear(tt entity.TournamentType) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, err := s.roster(tt)
	if err != nil {
		return err
	}
	r.category = make(map[string]entity.Category)
	r.order = make(map[entity.Category][]string)
	return nil
}

// Snapshot returns the current registrations, each category in insertion
// order since the last Clear.
func (s *Store) Snapshot(tt entity.TournamentType) (entity.RosterSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, err := s.roster(tt)
	if err != nil {
		return entity.RosterSnapshot{}, err
	}
	return entity.RosterSnapshot{
		Present: append([]string(nil), r.order[entity.CategoryPresent]...),
		Late:    append([]string(nil), r.order[entity.CategoryLate]...),
		Absent:  append([]string(nil), r.order[entity.CategoryAbsent]...),
	}, nil
}

// SetAnnouncement records the handle of the announcement posted for a type.
func (s *Store) SetAnnouncement(tt entity.TournamentType, a entity.Announcement) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, err := s.roster(tt)
	if err != nil {
		return err
	}
	r.announcement = &a
	return nil
}

// Announcement returns the handle of today's announcement, or nil when none
// was posted yet. A handle from a previous calendar day (display zone) is
// treated as expired: a stale button press must not edit yesterday's message
// with today's schedule.
func (s *Store) Announcement(tt entity.TournamentType, now time.Time) (*entity.Announcement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, err := s.roster(tt)
	if err != nil {
		return nil, err
	}
	if r.announcement == nil {
		return nil, nil
	}
	if !sameDay(r.announcement.PostedAt, now, s.loc) {
		return nil, nil
	}
	a := *r.announcement
	return &a, nil
}

func sameDay(a, b time.Time, loc *time.Location) bool {
	a, b = a.In(loc), b.In(loc)
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func remove(list []string, user string) []string {
	for i, u := range list {
		if u == user {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
