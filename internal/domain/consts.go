package domain

import (
	"errors"
	"time"
)

// WeekdayNamesFR maps Go weekdays to their lowercase French names, matching
// the fr-FR long weekday format used in messages.
var WeekdayNamesFR = map[time.Weekday]string{
	time.Sunday:    "dimanche",
	time.Monday:    "lundi",
	time.Tuesday:   "mardi",
	time.Wednesday: "mercredi",
	time.Thursday:  "jeudi",
	time.Friday:    "vendredi",
	time.Saturday:  "samedi",
}

// DisplayTimeZone is the fixed zone used for posted times and day names.
// Scheduling itself is done in UTC.
const DisplayTimeZone = "Europe/Paris"

// RsvpActionPrefix prefixes the Slack block action IDs of the three RSVP
// buttons; the category tag follows it (e.g. "rsvp_present").
const RsvpActionPrefix = "rsvp_"

// Sentinel errors for the two failure classes of the core.
var (
	// ErrValidation marks an unknown tournament type or RSVP category
	// reaching the core. The action is ignored, no state changes.
	ErrValidation = errors.New("validation error")

	// ErrConfig marks a malformed or incomplete schedule table. Fatal at
	// startup, never recovered at runtime.
	ErrConfig = errors.New("config error")
)
