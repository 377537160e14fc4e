package storage

// Provider is an opaque keyed blob store. Absence of a key is a valid
// empty state, not an error.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Blobs
	GetBlob(key string) ([]byte, bool, error)
	SetBlob(key string, value []byte) error
	Clear() error

	// Utils
	GetConfigPath() string
}
