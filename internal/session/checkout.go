// internal/session/checkout.go
package session

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/euphoria-shop/storefront/internal/models"
)

// Fallback texts when the notification boundary misbehaves. Notification
// is observability, not a correctness gate: an order is placed either
// way.
const (
	fallbackNotifyError = "New Order Notification Error. Check dashboard."
	fallbackNotifyEmpty = "New Order Received."
)

// Form is the checkout contact form. All fields are required, free
// text, trimmed for the purpose of completeness checks only.
type Form struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (f Form) Complete() bool {
	return strings.TrimSpace(f.Name) != "" &&
		strings.TrimSpace(f.Phone) != "" &&
		strings.TrimSpace(f.Address) != ""
}

// Checkout holds the contact form and shipping selection. The shipping
// method starts unset and stays re-selectable until submission.
type Checkout struct {
	form        Form
	shipping    models.ShippingMethod
	shippingFee int
}

func NewCheckout(shippingFee int) *Checkout {
	return &Checkout{shippingFee: shippingFee}
}

func (c *Checkout) Form() Form {
	return c.form
}

func (c *Checkout) SetName(name string) {
	c.form.Name = name
}

func (c *Checkout) SetPhone(phone string) {
	c.form.Phone = phone
}

func (c *Checkout) SetAddress(address string) {
	c.form.Address = address
}

func (c *Checkout) SelectShipping(method models.ShippingMethod) error {
	if !method.Valid() {
		return &ValidationError{Reason: "unknown shipping method"}
	}
	c.shipping = method
	return nil
}

func (c *Checkout) ShippingMethod() models.ShippingMethod {
	return c.shipping
}

// ShippingCost is 0 for local delivery and while unset, a flat fee for
// nationwide shipping.
func (c *Checkout) ShippingCost() int {
	if c.shipping == models.ShippingIsrael {
		return c.shippingFee
	}
	return 0
}

func (c *Checkout) reset() {
	c.form = Form{}
	c.shipping = models.ShippingUnset
}

// CanSubmit reports whether an order could be finalized right now:
// complete contact form, a shipping method chosen, and no submission
// already in flight.
func (s *Session) CanSubmit() bool {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.canSubmitLocked()
}

func (s *Session) canSubmitLocked() bool {
	return s.checkout.form.Complete() &&
		s.checkout.shipping.Valid() &&
		!s.processing
}

// Finalize runs the order protocol: guard, snapshot, notify, settle,
// reset. It is single-flight; a second call while one is in flight is
// rejected without touching anything. Once validation passes the order
// is placed optimistically: a notifier failure downgrades to a fallback
// text and never rolls the cart back.
func (s *Session) Finalize(ctx context.Context) (string, error) {
	s.mtx.Lock()
	if s.processing {
		s.mtx.Unlock()
		return "", ErrSubmitInFlight
	}
	if !s.canSubmitLocked() {
		s.mtx.Unlock()
		return "", ErrIncompleteOrder
	}
	s.processing = true
	order := s.snapshotOrderLocked()
	s.mtx.Unlock()

	text, err := s.notifier.Summarize(ctx, order)
	if err != nil {
		logrus.WithError(err).WithField("reference", order.Reference).Error("Order notification failed")
		text = fallbackNotifyError
	} else if text == "" {
		text = fallbackNotifyEmpty
	}

	logrus.WithFields(logrus.Fields{
		"reference": order.Reference,
		"items":     len(order.Items),
		"total":     order.Total,
		"shipping":  order.ShippingMethod,
	}).Info("Order processed")

	// Settle window between acceptance and reset.
	if s.settleDelay > 0 {
		select {
		case <-time.After(s.settleDelay):
		case <-ctx.Done():
		}
	}

	s.mtx.Lock()
	s.cart.Clear()
	s.checkout.reset()
	s.view = models.ViewShop
	s.processing = false
	s.raiseBannerLocked()
	s.mtx.Unlock()

	return text, nil
}

func (s *Session) snapshotOrderLocked() *models.Order {
	subtotal := s.cart.Subtotal()
	shipping := s.checkout.ShippingCost()

	return &models.Order{
		Reference:      uuid.New(),
		CustomerName:   s.checkout.form.Name,
		Phone:          s.checkout.form.Phone,
		Address:        s.checkout.form.Address,
		Items:          s.cart.Items(),
		Subtotal:       subtotal,
		ShippingMethod: s.checkout.shipping,
		ShippingCost:   shipping,
		Total:          subtotal + shipping,
		PaymentMethod:  models.PaymentBit,
		PlacedAt:       time.Now(),
	}
}
