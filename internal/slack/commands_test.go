package slack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantType CommandType
		wantArgs []string
		wantErr  bool
	}{
		{
			name:     "Should parse bare verb",
			input:    "list",
			wantType: CmdList,
		},
		{
			name:     "Should parse verb with arguments",
			input:    "make: 2026-09-10; snacks",
			wantType: CmdMake,
			wantArgs: []string{"2026-09-10", "snacks"},
		},
		{
			name:     "Should parse three arguments",
			input:    "make-for-other: 2026-09-10; bob; snacks",
			wantType: CmdMakeForOther,
			wantArgs: []string{"2026-09-10", "bob", "snacks"},
		},
		{
			name:     "Should trim whitespace around verb and arguments",
			input:    "  delete :  2026-09-10 ;  snacks  ",
			wantType: CmdDelete,
			wantArgs: []string{"2026-09-10", "snacks"},
		},
		{
			name:     "Should accept trailing colon with no arguments",
			input:    "list:",
			wantType: CmdList,
		},
		{
			name:     "Should parse free-text message argument",
			input:    "add-expected: distro; We need someone to bring the distro!",
			wantType: CmdAddExpected,
			wantArgs: []string{"distro", "We need someone to bring the distro!"},
		},
		{
			name:     "Should parse a full announcement command",
			input:    "schedule-announcement: 0 9 * * 1; Weekly schedule; t; f",
			wantType: CmdScheduleAnnouncement,
			wantArgs: []string{"0 9 * * 1", "Weekly schedule", "t", "f"},
		},
		{
			name:     "Should default to help on empty input",
			input:    "",
			wantType: CmdHelp,
		},
		{
			name:     "Should default to help on whitespace-only input",
			input:    "   ",
			wantType: CmdHelp,
		},
		{
			name:    "Should reject unknown verb",
			input:   "frobnicate",
			wantErr: true,
		},
		{
			name:    "Should reject unknown verb with arguments",
			input:   "frobnicate: a; b",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCommand(tt.input)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantType, got.Type)
			assert.Equal(t, tt.wantArgs, got.Args)
			assert.Equal(t, tt.input, got.Raw)
		})
	}
}

func TestGetHelpText(t *testing.T) {
	help := GetHelpText("!reservebot")

	assert.Contains(t, help, "!reservebot list")
	assert.Contains(t, help, "!reservebot make:")
	assert.Contains(t, help, "YYYY-MM-DD")
	assert.NotContains(t, help, "delete-all")
}

func TestGetAdminHelpText(t *testing.T) {
	help := GetAdminHelpText("!reservebot")

	assert.Contains(t, help, "!reservebot make-for-other:")
	assert.Contains(t, help, "!reservebot delete-all")
	assert.Contains(t, help, "!reservebot schedule-announcement:")
	assert.Contains(t, help, "!reservebot kill")
}
