package slack

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdPost   CommandType = "post"
	CmdStatus CommandType = "status"
	CmdHelp   CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw: text,
	}

	switch parts[0] {
	case "post":
		cmd.Type = CmdPost
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "status", "rappel":
		cmd.Type = CmdStatus
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "help", "":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

func GetHelpText() string {
	return `*Commandes disponibles :*

*Annonces :*
• ` + "`/tournament post ata`" + ` - Poster le message d'inscription du tournoi AT A
• ` + "`/tournament post atb`" + ` - Poster le message d'inscription du tournoi AT B
• ` + "`/tournament post atc`" + ` - Poster le message d'inscription du tournoi AT C

*Statut :*
• ` + "`/tournament status [type]`" + ` - Afficher les inscrits et le temps restant (type par défaut : ATC)

Les boutons Présent / Absent / En retard se trouvent sous le message d'inscription du jour.`
}
