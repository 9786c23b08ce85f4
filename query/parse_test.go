package query

import (
	"testing"
	"txkv/test"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantCommand *Command
		wantError   error
	}{
		{
			name:  "SET simple",
			input: "SET foo bar",
			wantCommand: &Command{
				Type:  CommandSet,
				Key:   "foo",
				Value: "bar",
			},
		},
		{
			name:  "SET lowercase",
			input: "set foo bar",
			wantCommand: &Command{
				Type:  CommandSet,
				Key:   "foo",
				Value: "bar",
			},
		},
		{
			name:  "SET extra whitespace",
			input: "  SET\tfoo   bar  ",
			wantCommand: &Command{
				Type:  CommandSet,
				Key:   "foo",
				Value: "bar",
			},
		},
		{
			name:      "SET missing value",
			input:     "SET foo",
			wantError: ErrInvalidNumberOfTokens,
		},
		{
			name:      "SET value with spaces",
			input:     "SET foo hello world",
			wantError: ErrInvalidNumberOfTokens,
		},
		{
			name:  "GET valid",
			input: "GET foo",
			wantCommand: &Command{
				Type: CommandGet,
				Key:  "foo",
			},
		},
		{
			name:      "GET missing key",
			input:     "GET",
			wantError: ErrInvalidNumberOfTokens,
		},
		{
			name:  "DELETE valid",
			input: "Delete foo",
			wantCommand: &Command{
				Type: CommandDelete,
				Key:  "foo",
			},
		},
		{
			name:      "DELETE too many tokens",
			input:     "DELETE foo bar",
			wantError: ErrInvalidNumberOfTokens,
		},
		{
			name:  "COUNT valid",
			input: "COUNT 10",
			wantCommand: &Command{
				Type:  CommandCount,
				Value: "10",
			},
		},
		{
			name:  "BEGIN",
			input: "begin",
			wantCommand: &Command{
				Type: CommandBegin,
			},
		},
		{
			name:      "BEGIN with argument",
			input:     "BEGIN now",
			wantError: ErrInvalidNumberOfTokens,
		},
		{
			name:  "COMMIT",
			input: "COMMIT",
			wantCommand: &Command{
				Type: CommandCommit,
			},
		},
		{
			name:  "ROLLBACK",
			input: "RollBack",
			wantCommand: &Command{
				Type: CommandRollback,
			},
		},
		{
			name:      "unknown command",
			input:     "FOO bar",
			wantError: ErrUnknownCommand,
		},
		{
			name:      "keyword prefix is not a command",
			input:     "SETX foo bar",
			wantError: ErrUnknownCommand,
		},
		{
			name:      "empty string",
			input:     "",
			wantError: ErrEmptyCommand,
		},
		{
			name:      "whitespace only",
			input:     " \t ",
			wantError: ErrEmptyCommand,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := Parse(tt.input)

			if tt.wantError != nil {
				test.AssertError(t, err, tt.wantError)
				return
			}

			test.AssertNoError(t, err)
			test.AssertEqual(t, *cmd, *tt.wantCommand)
		})
	}
}

func TestCommandRegistry(t *testing.T) {
	t.Run("it describes every command", func(t *testing.T) {
		for _, cmdType := range CommandOrder {
			meta, ok := CommandRegistry[cmdType]

			test.AssertTrue(t, ok)
			test.AssertEqual(t, cmdType.String(), meta.Name)
		}
	})
}
