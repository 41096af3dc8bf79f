// internal/session/checkout_test.go
package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/euphoria-shop/storefront/internal/models"
	"github.com/euphoria-shop/storefront/internal/storage"
)

func fillCheckout(t *testing.T, sess *Session) {
	t.Helper()

	name, phone, address := "Dana Levi", "0521234567", "Herzl 12, Modiin"
	sess.UpdateForm(&name, &phone, &address)
	require.NoError(t, sess.SelectShipping(models.ShippingIsrael))
}

func TestShippingCost(t *testing.T) {
	sess := newTestSession(storage.NewMemoryStore(), &stubNotifier{})

	assert.Equal(t, 0, sess.ShippingCost())

	require.NoError(t, sess.SelectShipping(models.ShippingModiin))
	assert.Equal(t, 0, sess.ShippingCost())

	require.NoError(t, sess.SelectShipping(models.ShippingIsrael))
	assert.Equal(t, 40, sess.ShippingCost())

	// Re-selection stays open until submission.
	require.NoError(t, sess.SelectShipping(models.ShippingModiin))
	assert.Equal(t, 0, sess.ShippingCost())

	assert.Error(t, sess.SelectShipping(models.ShippingMethod("pigeon")))
}

func TestCanSubmitRequiresFormAndShipping(t *testing.T) {
	sess := newTestSession(storage.NewMemoryStore(), &stubNotifier{})
	assert.False(t, sess.CanSubmit())

	name := "Dana Levi"
	sess.UpdateForm(&name, nil, nil)
	assert.False(t, sess.CanSubmit())

	phone, address := "0521234567", "Herzl 12, Modiin"
	sess.UpdateForm(nil, &phone, &address)
	assert.False(t, sess.CanSubmit())

	require.NoError(t, sess.SelectShipping(models.ShippingModiin))
	assert.True(t, sess.CanSubmit())

	// Whitespace-only fields do not count.
	blank := "   "
	sess.UpdateForm(&blank, nil, nil)
	assert.False(t, sess.CanSubmit())
}

func TestFinalizeRejectsIncompleteOrder(t *testing.T) {
	notifier := &stubNotifier{text: "ok"}
	sess := newTestSession(storage.NewMemoryStore(), notifier)

	_, err := sess.Finalize(context.Background())
	assert.ErrorIs(t, err, ErrIncompleteOrder)
	assert.Equal(t, 0, notifier.callCount())
}

func TestFinalizeEndToEnd(t *testing.T) {
	notifier := &stubNotifier{text: "New order summary"}
	sess := newTestSession(storage.NewMemoryStore(), notifier)

	require.NoError(t, sess.AddToCart("euphoria-01", "M", 2, true))
	require.NoError(t, sess.GoTo(models.ViewCheckout))
	fillCheckout(t, sess)

	assert.Equal(t, 250, sess.Subtotal())
	assert.Equal(t, 40, sess.ShippingCost())
	assert.Equal(t, 290, sess.Total())

	text, err := sess.Finalize(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "New order summary", text)

	// Atomic reset: cart, form, shipping, view, plus the banner.
	assert.Equal(t, 0, sess.ItemCount())
	assert.Equal(t, Form{}, sess.Form())
	assert.Equal(t, models.ShippingUnset, sess.ShippingMethod())
	assert.Equal(t, models.ViewShop, sess.View())
	assert.True(t, sess.OrderComplete())

	// The success banner dismisses itself after its window.
	assert.Eventually(t, func() bool {
		return !sess.OrderComplete()
	}, time.Second, 10*time.Millisecond)
}

func TestFinalizeIsSingleFlight(t *testing.T) {
	notifier := &stubNotifier{text: "ok", delay: 80 * time.Millisecond}
	sess := newTestSession(storage.NewMemoryStore(), notifier)

	require.NoError(t, sess.AddToCart("euphoria-02", "L", 1, true))
	require.NoError(t, sess.GoTo(models.ViewCheckout))
	fillCheckout(t, sess)

	done := make(chan error, 1)
	go func() {
		_, err := sess.Finalize(context.Background())
		done <- err
	}()

	// Let the first call pass its guard and park in the notifier.
	time.Sleep(20 * time.Millisecond)

	_, err := sess.Finalize(context.Background())
	assert.ErrorIs(t, err, ErrSubmitInFlight)

	require.NoError(t, <-done)
	assert.Equal(t, 1, notifier.callCount())
	assert.Equal(t, 0, sess.ItemCount())
}

func TestFinalizeNotifierFallbacks(t *testing.T) {
	t.Run("failure downgrades to fallback text", func(t *testing.T) {
		notifier := &stubNotifier{err: errors.New("model unavailable")}
		sess := newTestSession(storage.NewMemoryStore(), notifier)
		require.NoError(t, sess.AddToCart("euphoria-02", "M", 1, false))
		fillCheckout(t, sess)

		text, err := sess.Finalize(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "New Order Notification Error. Check dashboard.", text)

		// The order still went through.
		assert.Equal(t, 0, sess.ItemCount())
		assert.True(t, sess.OrderComplete())
	})

	t.Run("empty result gets generic text", func(t *testing.T) {
		notifier := &stubNotifier{text: ""}
		sess := newTestSession(storage.NewMemoryStore(), notifier)
		require.NoError(t, sess.AddToCart("euphoria-02", "M", 1, false))
		fillCheckout(t, sess)

		text, err := sess.Finalize(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "New Order Received.", text)
	})
}

func TestFinalizeSnapshotsOrder(t *testing.T) {
	var captured *models.Order
	notifier := &captureNotifier{out: &captured}
	sess := newTestSession(storage.NewMemoryStore(), notifier)

	require.NoError(t, sess.AddToCart("euphoria-01", "M", 2, false))
	require.NoError(t, sess.AddToCart("euphoria-02", "L", 1, false))
	fillCheckout(t, sess)

	_, err := sess.Finalize(context.Background())
	require.NoError(t, err)

	require.NotNil(t, captured)
	assert.Equal(t, "Dana Levi", captured.CustomerName)
	assert.Len(t, captured.Items, 2)
	assert.Equal(t, 375, captured.Subtotal)
	assert.Equal(t, 40, captured.ShippingCost)
	assert.Equal(t, 415, captured.Total)
	assert.Equal(t, models.PaymentBit, captured.PaymentMethod)
	assert.NotEqual(t, "", captured.Reference.String())
}

type captureNotifier struct {
	out **models.Order
}

func (n *captureNotifier) Summarize(ctx context.Context, order *models.Order) (string, error) {
	*n.out = order
	return "captured", nil
}
