// internal/storage/storage.go
package storage

// KeyValue is the durable store the session persists into. Get reports
// ok=false when the key is absent. Implementations must be safe for
// concurrent use.
type KeyValue interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Remove(key string) error
}
