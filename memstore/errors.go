package memstore

import "errors"

var ErrKeyNotFound = errors.New("memstore: key not found")
