package processor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"txkv/kvstore"
	"txkv/query"
	"txkv/tx"

	"github.com/rs/zerolog/log"
)

const DefaultPrompt = "> "

// Processor turns one input line into one response line. It never fails:
// every error is reported through the response.
type Processor struct {
	store  *kvstore.KVStore
	prompt string
}

func New(store *kvstore.KVStore, prompt string) *Processor {
	return &Processor{
		store:  store,
		prompt: prompt,
	}
}

func (p *Processor) Execute(line string) string {
	input := line
	if p.prompt != "" {
		input = strings.TrimPrefix(input, p.prompt)
	}

	cmd, err := query.Parse(input)
	if err != nil {
		response := parseErrorResponse(err)

		log.Debug().
			Err(err).
			Str("input", input).
			Str("response", response).
			Msg("processor: rejected command")

		return response
	}

	response := p.dispatch(cmd)

	log.Debug().
		Stringer("command", cmd.Type).
		Str("response", response).
		Int("depth", p.store.Depth()).
		Int("base_keys", p.store.BaseLen()).
		Msg("processor: executed command")

	return response
}

func (p *Processor) dispatch(cmd *query.Command) string {
	switch cmd.Type {
	case query.CommandSet:
		p.store.Set(cmd.Key, cmd.Value)
		return ResponseAdded

	case query.CommandGet:
		value, err := p.store.Get(cmd.Key)
		if err != nil {
			return storeErrorResponse(err, ResponseKeyNotSet)
		}

		return value

	case query.CommandDelete:
		value, err := p.store.Delete(cmd.Key)
		if err != nil {
			return storeErrorResponse(err, ResponseNoSuchValue)
		}

		return fmt.Sprintf("%s \"%s %s\"", ResponseDeleted, cmd.Key, value)

	case query.CommandCount:
		count, err := p.store.Count(cmd.Value)
		if err != nil {
			return storeErrorResponse(err, ResponseValuesNotFound)
		}

		return strconv.Itoa(count)

	case query.CommandBegin:
		p.store.Begin()
		return ""

	case query.CommandCommit:
		if err := p.store.Commit(); err != nil {
			return storeErrorResponse(err, ResponseNoTransaction)
		}

		return ResponseCommitted

	case query.CommandRollback:
		if err := p.store.Rollback(); err != nil {
			return storeErrorResponse(err, ResponseNoTransaction)
		}

		return ResponseRemoved

	default:
		return ResponseCommandDoesNotExist
	}
}

// Arity failures are reported the same way as unknown commands.
func parseErrorResponse(err error) string {
	if errors.Is(err, query.ErrEmptyCommand) {
		return ResponseEnterCommand
	}

	return ResponseCommandDoesNotExist
}

func storeErrorResponse(err error, notFound string) string {
	switch {
	case errors.Is(err, kvstore.ErrKeyNotFound),
		errors.Is(err, kvstore.ErrValueNotFound),
		errors.Is(err, tx.ErrNoActiveTransaction):
		return notFound

	default:
		log.Error().
			Err(err).
			Msg("processor: unexpected store error")

		return ResponseCommandDoesNotExist
	}
}
