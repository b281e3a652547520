package service

import (
	"errors"
	"testing"
	"time"

	"github.com/guildops/slack-tournament-bot/internal/domain/entity"
	"github.com/guildops/slack-tournament-bot/internal/domain/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ATA starts Tuesday 03:00 UTC; with the 30 minute lead the reminder minute
// is 02:30 UTC.
var (
	reminderDue = time.Date(2024, 1, 2, 2, 30, 0, 0, time.UTC)
	postedAt    = time.Date(2024, 1, 2, 1, 0, 0, 0, time.UTC)
)

func seedAnnouncement(t *testing.T, store *roster.Store, tt entity.TournamentType) {
	t.Helper()
	require.NoError(t, store.SetAnnouncement(tt, entity.Announcement{
		ChannelID: testChannelID,
		Timestamp: "1704150000.000100",
		PostedAt:  postedAt,
	}))
}

func Test_reminderScheduler_FiresOncePerDay(t *testing.T) {
	m, inst, store, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	seedAnnouncement(t, store, entity.TournamentATA)
	require.NoError(t, store.SetCategory(entity.TournamentATA, "Alice", entity.CategoryPresent))

	m.mockSlackClient.EXPECT().
		PostMessage(testChannelID, gomock.Any()).
		Return(testChannelID, "1704155400.000100", nil).Times(1)

	inst.Reminder.checkReminders(reminderDue)
	// A drifted second tick inside the same window must not re-fire.
	inst.Reminder.checkReminders(reminderDue.Add(30 * time.Second))
}

func Test_reminderScheduler_OutsideWindow(t *testing.T) {
	_, inst, store, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	seedAnnouncement(t, store, entity.TournamentATA)

	// One minute early, one minute late: no send in either case.
	inst.Reminder.checkReminders(reminderDue.Add(-time.Minute))
	inst.Reminder.checkReminders(reminderDue.Add(time.Minute))
}

func Test_reminderScheduler_NoAnnouncement(t *testing.T) {
	_, inst, _, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	// Nothing was posted today: the due reminder is skipped entirely.
	inst.Reminder.checkReminders(reminderDue)
}

func Test_reminderScheduler_StaleAnnouncement(t *testing.T) {
	_, inst, store, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	// The announcement is from the previous day: treated as absent.
	require.NoError(t, store.SetAnnouncement(entity.TournamentATA, entity.Announcement{
		ChannelID: testChannelID,
		Timestamp: "1704060000.000100",
		PostedAt:  postedAt.AddDate(0, 0, -1),
	}))

	inst.Reminder.checkReminders(reminderDue)
}

func Test_reminderScheduler_RetriesAfterSendFailure(t *testing.T) {
	m, inst, store, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	seedAnnouncement(t, store, entity.TournamentATA)

	gomock.InOrder(
		m.mockSlackClient.EXPECT().
			PostMessage(testChannelID, gomock.Any()).
			Return("", "", errors.New("slack unavailable")),
		m.mockSlackClient.EXPECT().
			PostMessage(testChannelID, gomock.Any()).
			Return(testChannelID, "1704155400.000100", nil),
	)

	// The failed send is not marked as fired, so the next tick still inside
	// the window retries.
	inst.Reminder.checkReminders(reminderDue)
	inst.Reminder.checkReminders(reminderDue.Add(30 * time.Second))
}

func Test_reminderScheduler_AlreadyFiredGuard(t *testing.T) {
	_, inst, _, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	inst.Reminder.markFired(entity.TournamentATA, reminderDue)
	assert.True(t, inst.Reminder.alreadyFired(entity.TournamentATA, reminderDue))
	assert.True(t, inst.Reminder.alreadyFired(entity.TournamentATA, reminderDue.Add(time.Hour)))

	// A new calendar day resets the guard.
	assert.False(t, inst.Reminder.alreadyFired(entity.TournamentATA, reminderDue.AddDate(0, 0, 1)))
	// Other types are unaffected.
	assert.False(t, inst.Reminder.alreadyFired(entity.TournamentATB, reminderDue))
}
