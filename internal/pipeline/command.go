package pipeline

import (
	"strings"

	"github.com/awolk/sms-directions/internal/models"
)

// commandTable maps message prefixes to commands. Order is precedence:
// the first matching prefix wins.
var commandTable = []struct {
	prefix  string
	command models.Command
}{
	{"help", models.Command{Type: models.CommandHelp}},
	{"walk", models.Command{Type: models.CommandWalk, Mode: models.ModeWalking}},
	{"transit", models.Command{Type: models.CommandTransit, Mode: models.ModeTransit}},
	{"drive", models.Command{Type: models.CommandDrive, Mode: models.ModeDriving}},
}

// ParseCommand classifies an inbound message by its lowercase-trimmed prefix.
// Pure and total: anything unrecognized is CommandUnknown.
func ParseCommand(text string) models.Command {
	msg := strings.ToLower(strings.TrimSpace(text))
	for _, entry := range commandTable {
		if strings.HasPrefix(msg, entry.prefix) {
			return entry.command
		}
	}
	return models.Command{Type: models.CommandUnknown}
}
