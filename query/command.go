package query

type CommandType uint8

const (
	CommandSet CommandType = iota
	CommandGet
	CommandDelete
	CommandCount

	CommandBegin
	CommandCommit
	CommandRollback
)

const (
	SET      = "SET"
	GET      = "GET"
	DELETE   = "DELETE"
	COUNT    = "COUNT"
	BEGIN    = "BEGIN"
	COMMIT   = "COMMIT"
	ROLLBACK = "ROLLBACK"
)

type Command struct {
	Type  CommandType
	Key   string
	Value string
}

type CommandMeta struct {
	Name        string
	Usage       string
	Description string
	Tokens      int
}

var CommandOrder = []CommandType{
	CommandSet,
	CommandGet,
	CommandDelete,
	CommandCount,
	CommandBegin,
	CommandCommit,
	CommandRollback,
}

var CommandRegistry = map[CommandType]CommandMeta{
	CommandSet: {
		Name:        SET,
		Usage:       "SET <key> <value>",
		Description: "Set value for a key",
		Tokens:      3,
	},
	CommandGet: {
		Name:        GET,
		Usage:       "GET <key>",
		Description: "Get value of a key",
		Tokens:      2,
	},
	CommandDelete: {
		Name:        DELETE,
		Usage:       "DELETE <key>",
		Description: "Delete a key",
		Tokens:      2,
	},
	CommandCount: {
		Name:        COUNT,
		Usage:       "COUNT <value>",
		Description: "Count keys holding a value",
		Tokens:      2,
	},
	CommandBegin: {
		Name:        BEGIN,
		Usage:       "BEGIN",
		Description: "Start a nested transaction",
		Tokens:      1,
	},
	CommandCommit: {
		Name:        COMMIT,
		Usage:       "COMMIT",
		Description: "Fold the innermost transaction into its parent",
		Tokens:      1,
	},
	CommandRollback: {
		Name:        ROLLBACK,
		Usage:       "ROLLBACK",
		Description: "Discard the innermost transaction",
		Tokens:      1,
	},
}

func (c CommandType) String() string {
	if meta, ok := CommandRegistry[c]; ok {
		return meta.Name
	}

	return "UNKNOWN"
}
