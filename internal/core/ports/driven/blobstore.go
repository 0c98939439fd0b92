package driven

// BlobStore is the raw key/value layer underneath the session cache.
// Implementations persist opaque JSON blobs for the lifetime of a
// session: in memory by default, or SQLite-backed when a session file
// is configured.
type BlobStore interface {
	// Get returns the blob stored under key, or false when absent.
	// Implementations must not fail a read; an unreadable blob is
	// reported as absent.
	Get(key string) ([]byte, bool)

	// Set stores the blob under key, replacing any previous value.
	Set(key string, value []byte) error

	// Delete removes the blob stored under key, if any.
	Delete(key string) error
}
