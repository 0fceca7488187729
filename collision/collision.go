// Package collision records generated IDs and reports the ones that were
// already seen. MemorySink covers a single process; CassandraSink lets several
// processes, each with its own machine id, check IDs against each other.
package collision

// Sink records IDs.
type Sink interface {
	// Record stores id and reports whether it was new.
	Record(id uint64) (bool, error)
	Close() error
}
