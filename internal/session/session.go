// internal/session/session.go
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/euphoria-shop/storefront/internal/catalog"
	"github.com/euphoria-shop/storefront/internal/imaging"
	"github.com/euphoria-shop/storefront/internal/models"
	"github.com/euphoria-shop/storefront/internal/persist"
	"github.com/euphoria-shop/storefront/internal/storage"
)

// Notifier is the external order-summary boundary. It may fail; the
// session downgrades failures to fallback texts.
type Notifier interface {
	Summarize(ctx context.Context, order *models.Order) (string, error)
}

// Options tune the session timers and money constants.
type Options struct {
	ShippingFee      int
	DebounceInterval time.Duration
	SettleDelay      time.Duration
	BannerWindow     time.Duration
}

// Session is the one owned aggregate of storefront state: view machine,
// edit lock, cart, checkout and gallery. Every mutation goes through a
// method on it; nothing else touches the underlying models.
type Session struct {
	mtx sync.Mutex

	catalog  *catalog.Catalog
	cart     *Cart
	gallery  *Gallery
	checkout *Checkout
	notifier Notifier

	view   models.View
	locked bool

	processing    bool
	orderComplete bool
	bannerTimer   *time.Timer

	lockStore *persist.Value[bool]

	settleDelay  time.Duration
	bannerWindow time.Duration
}

// New builds a session from durable storage. The edit lock and the
// gallery maps are loaded here; a missing or unreadable store falls
// back to a locked site with catalog defaults.
func New(cat *catalog.Catalog, store storage.KeyValue, pipeline *imaging.Pipeline, notifier Notifier, opts Options) *Session {
	s := &Session{
		catalog:      cat,
		cart:         NewCart(),
		gallery:      NewGallery(store, pipeline, opts.DebounceInterval),
		checkout:     NewCheckout(opts.ShippingFee),
		notifier:     notifier,
		view:         models.ViewShop,
		lockStore:    persist.NewValue[bool](store, keySiteLocked, 0),
		settleDelay:  opts.SettleDelay,
		bannerWindow: opts.BannerWindow,
	}
	s.locked = s.lockStore.Load(true)
	return s
}

// View state machine

func (s *Session) View() models.View {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.view
}

// GoTo moves between shop, bag and checkout. Checkout is reachable only
// from the bag; every other transition is unconditional.
func (s *Session) GoTo(view models.View) error {
	if !view.Valid() {
		return ErrUnknownView
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	if view == models.ViewCheckout && s.view != models.ViewBag {
		return ErrBadTransition
	}
	s.view = view
	return nil
}

// Edit lock

func (s *Session) Locked() bool {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.locked
}

// ToggleLock flips the edit lock and persists it immediately. The flag
// gates upload and destructive admin actions, so it must be durable the
// moment it changes.
func (s *Session) ToggleLock() bool {
	s.mtx.Lock()
	s.locked = !s.locked
	locked := s.locked
	s.mtx.Unlock()

	s.lockStore.SaveNow(locked)
	return locked
}

// Cart

// AddToCart validates the size against the catalog and merges into the
// bag. With redirect the shopper jumps straight to the bag (the
// buy-now path).
func (s *Session) AddToCart(productID, size string, quantity int, redirect bool) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	product, ok := s.catalog.ByID(productID)
	if !ok {
		return ErrUnknownProduct
	}

	if err := s.cart.Add(*product, size, quantity); err != nil {
		return err
	}

	if redirect {
		s.view = models.ViewBag
	}
	return nil
}

func (s *Session) AdjustQuantity(index, delta int) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.cart.AdjustQuantity(index, delta)
}

func (s *Session) RemoveItem(index int) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.cart.Remove(index)
}

func (s *Session) CartItems() []models.CartItem {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.cart.Items()
}

func (s *Session) Subtotal() int {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.cart.Subtotal()
}

func (s *Session) ItemCount() int {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.cart.ItemCount()
}

// Checkout form

func (s *Session) UpdateForm(name, phone, address *string) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if name != nil {
		s.checkout.SetName(*name)
	}
	if phone != nil {
		s.checkout.SetPhone(*phone)
	}
	if address != nil {
		s.checkout.SetAddress(*address)
	}
}

func (s *Session) Form() Form {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.checkout.Form()
}

func (s *Session) SelectShipping(method models.ShippingMethod) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.checkout.SelectShipping(method)
}

func (s *Session) ShippingMethod() models.ShippingMethod {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.checkout.ShippingMethod()
}

func (s *Session) ShippingCost() int {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.checkout.ShippingCost()
}

func (s *Session) Total() int {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.cart.Subtotal() + s.checkout.ShippingCost()
}

// Gallery

func (s *Session) ActiveSlot(productID string) int {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.gallery.ActiveSlot(productID)
}

func (s *Session) AdvanceSlot(productID string) (int, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	product, ok := s.catalog.ByID(productID)
	if !ok {
		return 0, ErrUnknownProduct
	}
	return s.gallery.AdvanceSlot(productID, len(product.Images)), nil
}

func (s *Session) SetSlot(productID string, index int) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	product, ok := s.catalog.ByID(productID)
	if !ok {
		return ErrUnknownProduct
	}
	return s.gallery.SetSlot(productID, index, len(product.Images))
}

// DisplayImages resolves every slot of a product to its override or
// catalog default, in slot order.
func (s *Session) DisplayImages(productID string) ([]string, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	product, ok := s.catalog.ByID(productID)
	if !ok {
		return nil, ErrUnknownProduct
	}

	images := make([]string, len(product.Images))
	for i, def := range product.Images {
		images[i] = s.gallery.DisplayImage(productID, i, def)
	}
	return images, nil
}

// UploadImage replaces one catalog image slot with a shopper-supplied
// photo. A locked site makes this a silent no-op, and so does anything
// the decoder cannot parse.
func (s *Session) UploadImage(productID string, slot int, fileBytes []byte) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.locked {
		return nil
	}

	product, ok := s.catalog.ByID(productID)
	if !ok {
		return ErrUnknownProduct
	}
	if slot < 0 || slot >= len(product.Images) {
		return ErrSlotOutOfRange
	}

	err := s.gallery.Upload(productID, slot, fileBytes)
	var decodeErr *imaging.DecodeError
	if errors.As(err, &decodeErr) {
		logrus.WithError(err).WithField("product", productID).Debug("Ignoring undecodable upload")
		return nil
	}
	return err
}

// ClearOverrides drops every uploaded image. Admin-only: it is rejected
// while the site is locked.
func (s *Session) ClearOverrides() error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.locked {
		return ErrSiteLocked
	}
	s.gallery.ClearOverrides()
	return nil
}

// Banner

func (s *Session) OrderComplete() bool {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.orderComplete
}

// raiseBannerLocked must be called with mtx held.
func (s *Session) raiseBannerLocked() {
	s.orderComplete = true
	if s.bannerTimer != nil {
		s.bannerTimer.Stop()
	}
	s.bannerTimer = time.AfterFunc(s.bannerWindow, func() {
		s.mtx.Lock()
		s.orderComplete = false
		s.mtx.Unlock()
	})
}

// State is a read-only snapshot for the HTTP surface.
type State struct {
	View           models.View           `json:"view"`
	Locked         bool                  `json:"locked"`
	Processing     bool                  `json:"processing"`
	OrderComplete  bool                  `json:"order_complete"`
	ItemCount      int                   `json:"item_count"`
	Subtotal       int                   `json:"subtotal"`
	ShippingMethod models.ShippingMethod `json:"shipping_method"`
	ShippingCost   int                   `json:"shipping_cost"`
	Total          int                   `json:"total"`
	Form           Form                  `json:"form"`
}

func (s *Session) State() State {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	subtotal := s.cart.Subtotal()
	shipping := s.checkout.ShippingCost()

	return State{
		View:           s.view,
		Locked:         s.locked,
		Processing:     s.processing,
		OrderComplete:  s.orderComplete,
		ItemCount:      s.cart.ItemCount(),
		Subtotal:       subtotal,
		ShippingMethod: s.checkout.ShippingMethod(),
		ShippingCost:   shipping,
		Total:          subtotal + shipping,
		Form:           s.checkout.Form(),
	}
}

// Flush pushes pending debounced writes to durable storage, for
// shutdown.
func (s *Session) Flush() {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.gallery.Flush()
}
