package entity

import (
	"fmt"
	"strings"
	"time"
)

// TournamentType identifies one of the recurring automated tournaments.
type TournamentType string

const (
	TournamentATA TournamentType = "ATA"
	TournamentATB TournamentType = "ATB"
	TournamentATC TournamentType = "ATC"
)

// AllTournamentTypes lists every known type, in schedule order.
var AllTournamentTypes = []TournamentType{TournamentATA, TournamentATB, TournamentATC}

var tournamentNames = map[TournamentType]string{
	TournamentATA: "AT A (Matin)",
	TournamentATB: "AT B (Après-midi)",
	TournamentATC: "AT C (Soir)",
}

// ParseTournamentType resolves a user-supplied type tag (case insensitive).
func ParseTournamentType(s string) (TournamentType, error) {
	t := TournamentType(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := tournamentNames[t]; !ok {
		return "", fmt.Errorf("unknown tournament type: %s", s)
	}
	return t, nil
}

// Valid reports whether t is one of the known tournament types.
func (t TournamentType) Valid() bool {
	_, ok := tournamentNames[t]
	return ok
}

// DisplayName returns the full tournament name shown in messages.
func (t TournamentType) DisplayName() string {
	return tournamentNames[t]
}

// Category is the closed set of RSVP answers a user can give.
type Category string

const (
	CategoryPresent Category = "present"
	CategoryAbsent  Category = "absent"
	CategoryLate    Category = "late"
)

// ParseCategory validates a category tag coming from the interaction layer.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryPresent, CategoryAbsent, CategoryLate:
		return Category(s), nil
	}
	return "", fmt.Errorf("unknown rsvp category: %s", s)
}

// Announcement is the handle to the registration message posted today for a
// tournament type, kept so RSVPs can edit it in place.
type Announcement struct {
	ChannelID string
	Timestamp string
	PostedAt  time.Time
}

// RosterSnapshot is a read-only view of the current registrations for one
// tournament type, each category in insertion order.
type RosterSnapshot struct {
	Present []string
	Late    []string
	Absent  []string
}

// Empty reports whether nobody has answered yet.
func (s RosterSnapshot) Empty() bool {
	return len(s.Present) == 0 && len(s.Late) == 0 && len(s.Absent) == 0
}

// Participants counts the users expected to play (present + late).
func (s RosterSnapshot) Participants() int {
	return len(s.Present) + len(s.Late)
}

// Countdown is the remaining time until a tournament starts.
type Countdown struct {
	Hours   int
	Minutes int
	Passed  bool
}
