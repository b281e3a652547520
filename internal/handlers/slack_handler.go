package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/guildops/slack-tournament-bot/internal/domain"
	"github.com/guildops/slack-tournament-bot/internal/domain/contract"
	"github.com/guildops/slack-tournament-bot/internal/domain/entity"
	"github.com/guildops/slack-tournament-bot/internal/domain/message"
	slackcmd "github.com/guildops/slack-tournament-bot/internal/domain/slack"
	"github.com/slack-go/slack"
)

const genericErrorText = "Une erreur est survenue lors de l'exécution de la commande."

type SlackHandler struct {
	tournamentService contract.TournamentService
	signingSecret     string
	defaultType       entity.TournamentType
}

func New(tournamentService contract.TournamentService, signingSecret string, defaultType entity.TournamentType) *SlackHandler {
	return &SlackHandler{
		tournamentService: tournamentService,
		signingSecret:     signingSecret,
		defaultType:       defaultType,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	if !h.verifyRequest(w, r) {
		return
	}

	// Parse command
	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	// Parse our command
	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, err.Error())
		return
	}

	// Handle command
	response := h.handleCommand(cmd)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// HandleInteraction processes block-action callbacks from the RSVP buttons.
// Anything that is not one of the three known actions is ignored without a
// state change.
func (h *SlackHandler) HandleInteraction(w http.ResponseWriter, r *http.Request) {
	if !h.verifyRequest(w, r) {
		return
	}

	var callback slack.InteractionCallback
	if err := json.Unmarshal([]byte(r.FormValue("payload")), &callback); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if callback.Type != slack.InteractionTypeBlockActions {
		w.WriteHeader(http.StatusOK)
		return
	}

	for _, action := range callback.ActionCallback.BlockActions {
		if !strings.HasPrefix(action.ActionID, domain.RsvpActionPrefix) {
			continue
		}

		category, err := entity.ParseCategory(strings.TrimPrefix(action.ActionID, domain.RsvpActionPrefix))
		if err != nil {
			log.Printf("Ignoring interaction with unknown category: %v", err)
			continue
		}

		tournamentType, err := entity.ParseTournamentType(action.Value)
		if err != nil {
			log.Printf("Ignoring interaction with unknown tournament type: %v", err)
			continue
		}

		user := displayName(callback.User)
		if err := h.tournamentService.HandleRSVP(tournamentType, user, category); err != nil {
			log.Printf("Failed to handle RSVP for %s: %v", tournamentType, err)
			h.ackInteraction(callback.ResponseURL, fmt.Sprintf("❌ %s", genericErrorText))
			continue
		}

		h.ackInteraction(callback.ResponseURL, message.RsvpAck(category))
	}

	w.WriteHeader(http.StatusOK)
}

func (h *SlackHandler) handleCommand(cmd *slackcmd.Command) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdPost:
		return h.handlePost(cmd)
	case slackcmd.CmdStatus:
		return h.handleStatus(cmd)
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Commande non reconnue")
	}
}

func (h *SlackHandler) handlePost(cmd *slackcmd.Command) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Précisez le tournoi : `/tournament post ata|atb|atc`")
	}

	tournamentType, err := entity.ParseTournamentType(cmd.Args[0])
	if err != nil {
		return h.createErrorResponse("Type de tournoi inconnu. Utilisez ata, atb ou atc.")
	}

	if err := h.tournamentService.PostAnnouncement(tournamentType); err != nil {
		log.Printf("Failed to post announcement for %s: %v", tournamentType, err)
		return h.createErrorResponse(genericErrorText)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("✅ Message pour le tournoi %s posté avec succès !", tournamentType),
	}
}

func (h *SlackHandler) handleStatus(cmd *slackcmd.Command) *slack.Msg {
	tournamentType := h.defaultType
	if len(cmd.Args) > 0 {
		var err error
		tournamentType, err = entity.ParseTournamentType(cmd.Args[0])
		if err != nil {
			return h.createErrorResponse("Type de tournoi inconnu. Utilisez ata, atb ou atc.")
		}
	}

	text, err := h.tournamentService.Status(tournamentType)
	if err != nil {
		log.Printf("Failed to build status for %s: %v", tournamentType, err)
		return h.createErrorResponse(genericErrorText)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         text,
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

// verifyRequest checks the Slack signature and restores the request body for
// later parsing. Returns false after writing the error status.
func (h *SlackHandler) verifyRequest(w http.ResponseWriter, r *http.Request) bool {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return false
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return false
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return false
	}

	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return false
	}

	return true
}

func (h *SlackHandler) ackInteraction(responseURL, text string) {
	if responseURL == "" {
		return
	}
	err := slack.PostWebhook(responseURL, &slack.WebhookMessage{
		Text:            text,
		ResponseType:    slack.ResponseTypeEphemeral,
		ReplaceOriginal: false,
	})
	if err != nil {
		log.Printf("Failed to send interaction ack: %v", err)
	}
}

func displayName(user slack.User) string {
	if user.Profile.DisplayName != "" {
		return user.Profile.DisplayName
	}
	if user.Name != "" {
		return user.Name
	}
	return user.ID
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	response := h.createErrorResponse(message)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
