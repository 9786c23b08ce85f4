package tx

import "errors"

var ErrNoActiveTransaction = errors.New("tx: no active transaction")
