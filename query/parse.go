package query

import (
	"errors"
	"strings"
)

var (
	ErrEmptyCommand          = errors.New("query: empty command")
	ErrUnknownCommand        = errors.New("query: unknown command")
	ErrInvalidNumberOfTokens = errors.New("query: invalid number of tokens")
)

var keywords = map[string]CommandType{
	SET:      CommandSet,
	GET:      CommandGet,
	DELETE:   CommandDelete,
	COUNT:    CommandCount,
	BEGIN:    CommandBegin,
	COMMIT:   CommandCommit,
	ROLLBACK: CommandRollback,
}

func Parse(input string) (*Command, error) {
	tokens := tokenize(input)

	if len(tokens) == 0 {
		return nil, ErrEmptyCommand
	}

	cmdType, ok := keywords[strings.ToUpper(tokens[0])]
	if !ok {
		return nil, ErrUnknownCommand
	}

	if len(tokens) != CommandRegistry[cmdType].Tokens {
		return nil, ErrInvalidNumberOfTokens
	}

	cmd := &Command{Type: cmdType}

	switch cmdType {
	case CommandSet:
		cmd.Key = tokens[1]
		cmd.Value = tokens[2]

	case CommandGet, CommandDelete:
		cmd.Key = tokens[1]

	case CommandCount:
		cmd.Value = tokens[1]
	}

	return cmd, nil
}
