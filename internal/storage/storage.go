package storage

// Store persists JSON-encoded collections under fixed keys, mirroring the
// key-value layout the browser client kept in local storage. Backends are
// swappable (badger, Postgres, in-memory) without touching the filtering
// and matching logic above them.
type Store interface {
	// Get decodes the collection stored under key into the value pointed to
	// by into. A missing collection leaves into untouched and returns nil,
	// so callers see their zero value (typically an empty slice).
	Get(collection string, into interface{}) error

	// Put encodes value and stores it under key, replacing any previous
	// contents of the collection.
	Put(collection string, value interface{}) error

	Close() error
}
