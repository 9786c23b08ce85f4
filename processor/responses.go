package processor

const (
	ResponseAdded               = "added"
	ResponseKeyNotSet           = "key_not_set"
	ResponseDeleted             = "deleted"
	ResponseNoSuchValue         = "no_such_value"
	ResponseValuesNotFound      = "values_not_found"
	ResponseCommitted           = "last_transaction_committed"
	ResponseRemoved             = "last_transaction_removed"
	ResponseNoTransaction       = "no_transaction"
	ResponseEnterCommand        = "please_enter_the_command"
	ResponseCommandDoesNotExist = "command_does_not_exist"
)
