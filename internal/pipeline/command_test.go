package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/awolk/sms-directions/internal/models"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantType models.CommandType
		wantMode string
	}{
		{"walk lowercase", "walk from A to B", models.CommandWalk, models.ModeWalking},
		{"drive uppercase with leading spaces", "   DRIVE from X to Y", models.CommandDrive, models.ModeDriving},
		{"transit mixed case", "Transit from 1st St to Union Sq", models.CommandTransit, models.ModeTransit},
		{"help bare", "help", models.CommandHelp, ""},
		{"help with trailing text", "   help please", models.CommandHelp, ""},
		{"walk with tab prefix", "\twAlK to the park", models.CommandWalk, models.ModeWalking},
		{"unknown verb", "fly to Mars", models.CommandUnknown, ""},
		{"empty string", "", models.CommandUnknown, ""},
		{"prefix of a longer word", "running from dogs", models.CommandUnknown, ""},
		{"verb not at prefix", "please walk from A to B", models.CommandUnknown, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseCommand(tt.input)
			assert.Equal(t, tt.wantType, got.Type)
			assert.Equal(t, tt.wantMode, got.Mode)
		})
	}
}
