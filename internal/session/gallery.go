// internal/session/gallery.go
package session

import (
	"fmt"
	"time"

	"github.com/euphoria-shop/storefront/internal/imaging"
	"github.com/euphoria-shop/storefront/internal/persist"
	"github.com/euphoria-shop/storefront/internal/storage"
)

// Durable storage keys.
const (
	keyImageOverrides = "image-overrides"
	keySlotIndices    = "slot-indices"
	keySiteLocked     = "site-locked"
)

// SlotKey identifies one position in a product's image sequence.
func SlotKey(productID string, slot int) string {
	return fmt.Sprintf("%s-%d", productID, slot)
}

// Gallery tracks which image slot each product shows and the uploaded
// overrides that replace catalog defaults. Both maps are persisted on a
// debounce: overrides can be large and change rapidly while an admin is
// re-uploading, so only the settled value is ever written.
type Gallery struct {
	overrides map[string]string
	slots     map[string]int

	overrideStore *persist.Value[map[string]string]
	slotStore     *persist.Value[map[string]int]
	pipeline      *imaging.Pipeline
}

func NewGallery(store storage.KeyValue, pipeline *imaging.Pipeline, debounce time.Duration) *Gallery {
	g := &Gallery{
		overrideStore: persist.NewValue[map[string]string](store, keyImageOverrides, debounce),
		slotStore:     persist.NewValue[map[string]int](store, keySlotIndices, debounce),
		pipeline:      pipeline,
	}
	g.overrides = g.overrideStore.Load(map[string]string{})
	g.slots = g.slotStore.Load(map[string]int{})
	return g
}

// ActiveSlot is the currently displayed image index, 0 when never set.
func (g *Gallery) ActiveSlot(productID string) int {
	return g.slots[productID]
}

// AdvanceSlot cycles to the next image, wrapping back to 0. This is the
// tap-to-cycle interaction.
func (g *Gallery) AdvanceSlot(productID string, totalImages int) int {
	if totalImages <= 0 {
		return 0
	}

	next := (g.slots[productID] + 1) % totalImages
	g.slots[productID] = next
	g.slotStore.ScheduleSave(g.snapshotSlots())
	return next
}

// SetSlot jumps to an explicit image index, used by the slot indicator
// dots.
func (g *Gallery) SetSlot(productID string, index, totalImages int) error {
	if index < 0 || index >= totalImages {
		return ErrSlotOutOfRange
	}

	g.slots[productID] = index
	g.slotStore.ScheduleSave(g.snapshotSlots())
	return nil
}

// DisplayImage resolves a slot to the uploaded override when one
// exists, else the catalog default.
func (g *Gallery) DisplayImage(productID string, slot int, catalogDefault string) string {
	if override, ok := g.overrides[SlotKey(productID, slot)]; ok {
		return override
	}
	return catalogDefault
}

// Upload runs the ingest pipeline and installs the result as the
// override for the given slot. An imaging.DecodeError propagates so the
// caller can decide to no-op.
func (g *Gallery) Upload(productID string, slot int, fileBytes []byte) error {
	payload, err := g.pipeline.Ingest(fileBytes)
	if err != nil {
		return err
	}

	g.overrides[SlotKey(productID, slot)] = payload
	g.overrideStore.ScheduleSave(g.snapshotOverrides())
	return nil
}

// ClearOverrides drops every uploaded image, in memory and durably.
func (g *Gallery) ClearOverrides() {
	g.overrides = make(map[string]string)
	g.overrideStore.Clear()
}

// Flush forces pending debounced writes out, for shutdown.
func (g *Gallery) Flush() {
	g.overrideStore.Flush()
	g.slotStore.Flush()
}

func (g *Gallery) snapshotSlots() map[string]int {
	m := make(map[string]int, len(g.slots))
	for k, v := range g.slots {
		m[k] = v
	}
	return m
}

func (g *Gallery) snapshotOverrides() map[string]string {
	m := make(map[string]string, len(g.overrides))
	for k, v := range g.overrides {
		m[k] = v
	}
	return m
}
