package service

import (
	"testing"

	"github.com/guildops/slack-tournament-bot/internal/domain/message"
	"github.com/guildops/slack-tournament-bot/internal/domain/roster"
	"github.com/guildops/slack-tournament-bot/internal/domain/schedule"
	"github.com/guildops/slack-tournament-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testChannelID   = "C123456789"
	testLeadMinutes = 30
)

type allMocks struct {
	mockSlackClient *mocks.MockSlackClient
}

func newServiceTestMock(t *testing.T) (m allMocks, inst *Instance, store *roster.Store, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	m = allMocks{
		mockSlackClient: mocks.NewMockSlackClient(ctrl),
	}

	resolver, err := schedule.NewResolver(schedule.Default())
	require.NoError(t, err)

	store = roster.New(resolver.Location())
	formatter := message.New(resolver, testLeadMinutes)

	inst = NewInstance(store, resolver, formatter, m.mockSlackClient, testChannelID, testLeadMinutes)
	require.NotNil(t, inst.Tournament)
	require.NotNil(t, inst.Reminder)

	return
}
