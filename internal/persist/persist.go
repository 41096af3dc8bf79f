// internal/persist/persist.go
package persist

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/euphoria-shop/storefront/internal/storage"
)

// Value wraps a single JSON-encoded entry in the key-value store.
// Saves are debounced: rapid successive ScheduleSave calls coalesce
// into one durable write once a quiet period elapses, so intermediate
// values during a burst of edits are never durably observed.
//
// Persistence is best effort. Read failures fall back to a default,
// write failures are logged and dropped; callers are never blocked or
// failed on storage trouble.
type Value[T any] struct {
	store    storage.KeyValue
	key      string
	debounce time.Duration

	mtx     sync.Mutex
	timer   *time.Timer
	pending *T
}

func NewValue[T any](store storage.KeyValue, key string, debounce time.Duration) *Value[T] {
	return &Value[T]{
		store:    store,
		key:      key,
		debounce: debounce,
	}
}

// Load reads and decodes the stored value. A missing key, a read error
// or undecodable bytes all fall back to the given default.
func (v *Value[T]) Load(fallback T) T {
	raw, ok, err := v.store.Get(v.key)
	if err != nil {
		logrus.WithError(err).WithField("key", v.key).Warn("Failed to read persisted value")
		return fallback
	}
	if !ok {
		return fallback
	}

	var decoded T
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		logrus.WithError(err).WithField("key", v.key).Warn("Discarding malformed persisted value")
		return fallback
	}
	return decoded
}

// ScheduleSave records value as the next durable write and re-arms the
// debounce timer. A change arriving before the timer fires cancels the
// previous pending write entirely.
func (v *Value[T]) ScheduleSave(value T) {
	v.mtx.Lock()
	defer v.mtx.Unlock()

	v.pending = &value
	if v.timer != nil {
		v.timer.Stop()
	}
	v.timer = time.AfterFunc(v.debounce, v.firePending)
}

// SaveNow writes value durably right away, bypassing the debounce, and
// drops any pending write it would have superseded.
func (v *Value[T]) SaveNow(value T) {
	v.mtx.Lock()
	v.cancelPending()
	v.mtx.Unlock()

	v.write(value)
}

// Flush forces a pending debounced write out immediately.
func (v *Value[T]) Flush() {
	v.firePending()
}

// Clear removes the durable entry and cancels any pending write.
func (v *Value[T]) Clear() {
	v.mtx.Lock()
	v.cancelPending()
	v.mtx.Unlock()

	if err := v.store.Remove(v.key); err != nil {
		logrus.WithError(err).WithField("key", v.key).Warn("Failed to remove persisted value")
	}
}

func (v *Value[T]) firePending() {
	v.mtx.Lock()
	pending := v.pending
	v.cancelPending()
	v.mtx.Unlock()

	if pending != nil {
		v.write(*pending)
	}
}

// cancelPending must be called with mtx held.
func (v *Value[T]) cancelPending() {
	if v.timer != nil {
		v.timer.Stop()
		v.timer = nil
	}
	v.pending = nil
}

func (v *Value[T]) write(value T) {
	raw, err := json.Marshal(value)
	if err != nil {
		logrus.WithError(err).WithField("key", v.key).Warn("Failed to encode value for persistence")
		return
	}

	if err := v.store.Set(v.key, string(raw)); err != nil {
		logrus.WithError(err).WithField("key", v.key).Warn("Failed to persist value")
	}
}
