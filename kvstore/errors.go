package kvstore

import "errors"

var (
	ErrKeyNotFound   = errors.New("kvstore: key not found")
	ErrValueNotFound = errors.New("kvstore: value not found")
)
