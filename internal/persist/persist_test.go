// internal/persist/persist_test.go
package persist

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/euphoria-shop/storefront/internal/storage"
)

// countingStore records how many durable writes actually happen.
type countingStore struct {
	storage.KeyValue
	mtx  sync.Mutex
	sets int
}

func newCountingStore() *countingStore {
	return &countingStore{KeyValue: storage.NewMemoryStore()}
}

func (s *countingStore) Set(key, value string) error {
	s.mtx.Lock()
	s.sets++
	s.mtx.Unlock()
	return s.KeyValue.Set(key, value)
}

func (s *countingStore) setCount() int {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.sets
}

func TestLoadFallsBackOnMissingOrMalformed(t *testing.T) {
	store := storage.NewMemoryStore()
	v := NewValue[map[string]int](store, "slots", time.Millisecond)

	assert.Equal(t, map[string]int{}, v.Load(map[string]int{}))

	require.NoError(t, store.Set("slots", "{not json"))
	assert.Equal(t, map[string]int{}, v.Load(map[string]int{}))

	require.NoError(t, store.Set("slots", `{"euphoria-01":2}`))
	assert.Equal(t, map[string]int{"euphoria-01": 2}, v.Load(map[string]int{}))
}

func TestDebounceCoalescesRapidSaves(t *testing.T) {
	store := newCountingStore()
	v := NewValue[int](store, "counter", 30*time.Millisecond)

	v.ScheduleSave(1)
	v.ScheduleSave(2)
	v.ScheduleSave(3)

	// Nothing durable until the quiet period elapses.
	_, ok, err := store.Get("counter")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Eventually(t, func() bool {
		raw, ok, _ := store.Get("counter")
		return ok && raw == "3"
	}, time.Second, 5*time.Millisecond)

	// Intermediate values were never written.
	assert.Equal(t, 1, store.setCount())
}

func TestNewChangeReplacesPendingTimer(t *testing.T) {
	store := newCountingStore()
	v := NewValue[int](store, "counter", 40*time.Millisecond)

	v.ScheduleSave(1)
	time.Sleep(25 * time.Millisecond)
	v.ScheduleSave(2)
	time.Sleep(25 * time.Millisecond)

	// The first timer would have fired by now had it not been replaced.
	_, ok, err := store.Get("counter")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Eventually(t, func() bool {
		raw, ok, _ := store.Get("counter")
		return ok && raw == "2"
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, 1, store.setCount())
}

func TestSaveNowBypassesDebounce(t *testing.T) {
	store := newCountingStore()
	v := NewValue[bool](store, "locked", time.Hour)

	v.ScheduleSave(true)
	v.SaveNow(false)

	raw, ok, err := store.Get("locked")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "false", raw)

	// The pending debounced write was superseded, not queued.
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 1, store.setCount())
}

func TestFlushForcesPendingWrite(t *testing.T) {
	store := newCountingStore()
	v := NewValue[string](store, "draft", time.Hour)

	v.ScheduleSave("pending")
	v.Flush()

	raw, ok, err := store.Get("draft")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `"pending"`, raw)

	// Flush with nothing pending is a no-op.
	v.Flush()
	assert.Equal(t, 1, store.setCount())
}

func TestClearRemovesEntryAndPendingWrite(t *testing.T) {
	store := newCountingStore()
	v := NewValue[string](store, "draft", 10*time.Millisecond)

	v.SaveNow("kept")
	v.ScheduleSave("doomed")
	v.Clear()

	time.Sleep(30 * time.Millisecond)

	_, ok, err := store.Get("draft")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, store.setCount())
}

func TestWriteErrorsAreSwallowed(t *testing.T) {
	v := NewValue[int](failingStore{}, "counter", 0)

	// Neither call may panic or surface the storage failure.
	v.SaveNow(1)
	v.ScheduleSave(2)
	v.Flush()
	v.Clear()

	assert.Equal(t, 9, v.Load(9))
}

type failingStore struct{}

func (failingStore) Get(string) (string, bool, error) {
	return "", false, assert.AnError
}

func (failingStore) Set(string, string) error {
	return assert.AnError
}

func (failingStore) Remove(string) error {
	return assert.AnError
}
