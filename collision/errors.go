package collision

import (
	"errors"
)

var (
	ErrNoSession   = errors.New("no session to Cassandra available")
	ErrSinkClosed  = errors.New("sink closed")
	ErrNoKeyspace  = errors.New("keyspace isn't set")
	ErrBadReplicas = errors.New("replication factor must be at least 1")
)
