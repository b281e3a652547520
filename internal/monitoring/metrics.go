package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	announcementsPosted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tournament_announcements_posted_total",
			Help: "Announcement messages posted per tournament type",
		},
		[]string{"type"},
	)

	remindersSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tournament_reminders_sent_total",
			Help: "Reminder messages sent per tournament type",
		},
		[]string{"type"},
	)

	rsvpsReceived = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tournament_rsvps_received_total",
			Help: "RSVP button presses per tournament type and category",
		},
		[]string{"type", "category"},
	)

	transportErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tournament_transport_errors_total",
			Help: "Failed Slack send or edit operations per operation kind",
		},
		[]string{"operation"},
	)
)

func AnnouncementPosted(tournamentType string) {
	announcementsPosted.WithLabelValues(tournamentType).Inc()
}

func ReminderSent(tournamentType string) {
	remindersSent.WithLabelValues(tournamentType).Inc()
}

func RsvpReceived(tournamentType, category string) {
	rsvpsReceived.WithLabelValues(tournamentType, category).Inc()
}

func TransportError(operation string) {
	transportErrors.WithLabelValues(operation).Inc()
}
