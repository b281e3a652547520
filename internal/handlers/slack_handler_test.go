package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/guildops/slack-tournament-bot/internal/domain/entity"
	"github.com/guildops/slack-tournament-bot/internal/handlers/test"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlackHandler_HandleSlashCommand_Post(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		buildMocks    func(m test.ServiceMocks)
		checkResponse func(t *testing.T, resp *httptest.ResponseRecorder)
	}{
		{
			name: "Should post announcement for a valid type",
			text: "post ata",
			buildMocks: func(m test.ServiceMocks) {
				m.TournamentServiceMock.EXPECT().
					PostAnnouncement(entity.TournamentATA).
					Return(nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
				assert.Contains(t, response.Text, "Message pour le tournoi ATA posté avec succès")
			},
		},
		{
			name: "Should accept uppercase type",
			text: "post ATB",
			buildMocks: func(m test.ServiceMocks) {
				m.TournamentServiceMock.EXPECT().
					PostAnnouncement(entity.TournamentATB).
					Return(nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Contains(t, response.Text, "ATB")
			},
		},
		{
			name:       "Should require a type argument",
			text:       "post",
			buildMocks: func(m test.ServiceMocks) {},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
				assert.Contains(t, response.Text, "Précisez le tournoi")
			},
		},
		{
			name:       "Should reject unknown type",
			text:       "post atx",
			buildMocks: func(m test.ServiceMocks) {},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Contains(t, response.Text, "Type de tournoi inconnu")
			},
		},
		{
			name: "Should reply with generic error when the post fails",
			text: "post atc",
			buildMocks: func(m test.ServiceMocks) {
				m.TournamentServiceMock.EXPECT().
					PostAnnouncement(entity.TournamentATC).
					Return(errors.New("slack unavailable")).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Contains(t, response.Text, "Une erreur est survenue")
				assert.NotContains(t, response.Text, "slack unavailable", "internals are not exposed to users")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, handler, ctrl := test.GetHandlerTest(t)
			defer ctrl.Finish()

			tt.buildMocks(m)

			req := test.CreateSlackRequest(t, "/tournament", tt.text, "C123456789", "U987654321", test.SigningSecret)
			resp := test.CreateTestRecorder()

			handler.HandleSlashCommand(resp, req)

			require.Equal(t, http.StatusOK, resp.Code)
			tt.checkResponse(t, resp)
		})
	}
}

func TestSlackHandler_HandleSlashCommand_Status(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		buildMocks    func(m test.ServiceMocks)
		checkResponse func(t *testing.T, resp *httptest.ResponseRecorder)
	}{
		{
			name: "Should default to the configured type",
			text: "status",
			buildMocks: func(m test.ServiceMocks) {
				m.TournamentServiceMock.EXPECT().
					Status(entity.TournamentATC).
					Return("⏰ *RAPPEL TOURNOI ATC* ⏰", nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Equal(t, slack.ResponseTypeInChannel, response.ResponseType)
				assert.Contains(t, response.Text, "RAPPEL TOURNOI ATC")
			},
		},
		{
			name: "Should use the requested type",
			text: "status ata",
			buildMocks: func(m test.ServiceMocks) {
				m.TournamentServiceMock.EXPECT().
					Status(entity.TournamentATA).
					Return("⏰ *RAPPEL TOURNOI ATA* ⏰", nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Contains(t, response.Text, "RAPPEL TOURNOI ATA")
			},
		},
		{
			name: "Should reply with generic error when status fails",
			text: "status",
			buildMocks: func(m test.ServiceMocks) {
				m.TournamentServiceMock.EXPECT().
					Status(entity.TournamentATC).
					Return("", errors.New("boom")).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
				assert.Contains(t, response.Text, "Une erreur est survenue")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, handler, ctrl := test.GetHandlerTest(t)
			defer ctrl.Finish()

			tt.buildMocks(m)

			req := test.CreateSlackRequest(t, "/tournament", tt.text, "C123456789", "U987654321", test.SigningSecret)
			resp := test.CreateTestRecorder()

			handler.HandleSlashCommand(resp, req)

			require.Equal(t, http.StatusOK, resp.Code)
			tt.checkResponse(t, resp)
		})
	}
}

func TestSlackHandler_HandleSlashCommand_Help(t *testing.T) {
	_, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	req := test.CreateSlackRequest(t, "/tournament", "", "C123456789", "U987654321", test.SigningSecret)
	resp := test.CreateTestRecorder()

	handler.HandleSlashCommand(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	response := decodeMsg(t, resp)
	assert.Contains(t, response.Text, "Commandes disponibles")
}

func TestSlackHandler_HandleSlashCommand_InvalidSignature(t *testing.T) {
	_, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	req := test.CreateSlackRequest(t, "/tournament", "status", "C123456789", "U987654321", "wrong-secret")
	resp := test.CreateTestRecorder()

	handler.HandleSlashCommand(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestSlackHandler_HandleInteraction_Rsvp(t *testing.T) {
	tests := []struct {
		name       string
		actionID   string
		value      string
		buildMocks func(m test.ServiceMocks)
	}{
		{
			name:     "Should record a present answer",
			actionID: "rsvp_present",
			value:    "ATA",
			buildMocks: func(m test.ServiceMocks) {
				m.TournamentServiceMock.EXPECT().
					HandleRSVP(entity.TournamentATA, "tester", entity.CategoryPresent).
					Return(nil).Times(1)
			},
		},
		{
			name:     "Should record a late answer",
			actionID: "rsvp_late",
			value:    "ATC",
			buildMocks: func(m test.ServiceMocks) {
				m.TournamentServiceMock.EXPECT().
					HandleRSVP(entity.TournamentATC, "tester", entity.CategoryLate).
					Return(nil).Times(1)
			},
		},
		{
			name:       "Should ignore unknown action IDs",
			actionID:   "open_settings",
			value:      "ATA",
			buildMocks: func(m test.ServiceMocks) {},
		},
		{
			name:       "Should ignore unknown categories",
			actionID:   "rsvp_maybe",
			value:      "ATA",
			buildMocks: func(m test.ServiceMocks) {},
		},
		{
			name:       "Should ignore unknown tournament types",
			actionID:   "rsvp_present",
			value:      "ATX",
			buildMocks: func(m test.ServiceMocks) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, handler, ctrl := test.GetHandlerTest(t)
			defer ctrl.Finish()

			tt.buildMocks(m)

			req := test.CreateInteractionRequest(t, tt.actionID, tt.value, "tester", test.SigningSecret)
			resp := test.CreateTestRecorder()

			handler.HandleInteraction(resp, req)

			assert.Equal(t, http.StatusOK, resp.Code)
		})
	}
}

func TestSlackHandler_HandleInteraction_InvalidSignature(t *testing.T) {
	_, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	req := test.CreateInteractionRequest(t, "rsvp_present", "ATA", "tester", "wrong-secret")
	resp := test.CreateTestRecorder()

	handler.HandleInteraction(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func decodeMsg(t *testing.T, resp *httptest.ResponseRecorder) slack.Msg {
	t.Helper()
	var response slack.Msg
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &response))
	return response
}
