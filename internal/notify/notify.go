// internal/notify/notify.go
package notify

import (
	"bytes"
	"context"
	"fmt"
	"net/smtp"
	"text/template"

	"github.com/sirupsen/logrus"

	"github.com/euphoria-shop/storefront/internal/config"
	"github.com/euphoria-shop/storefront/internal/models"
)

const orderTemplate = `New order {{.Order.Reference}}

Customer: {{.Order.CustomerName}}
Phone: {{.Order.Phone}}
Address: {{.Order.Address}}

Items:
{{- range .Order.Items}}
  {{.Quantity}}x {{.Product.Name}} ({{.SelectedSize}})
{{- end}}

Subtotal: {{.Order.Subtotal}} ILS
Shipping ({{.Order.ShippingMethod}}): {{.Order.ShippingCost}} ILS
Total: {{.Order.Total}} ILS

Payment: BIT transfer to {{.BrandPhone}}.`

// EmailNotifier summarizes an order for the shop owner and mails it
// out. Without SMTP configured the summary is only logged, which is
// enough for a single-owner shop watching the server output.
type EmailNotifier struct {
	config     config.EmailConfig
	brandName  string
	brandPhone string
	tmpl       *template.Template
}

func NewEmailNotifier(cfg config.EmailConfig, brandName, brandPhone string) *EmailNotifier {
	return &EmailNotifier{
		config:     cfg,
		brandName:  brandName,
		brandPhone: brandPhone,
		tmpl:       template.Must(template.New("order").Parse(orderTemplate)),
	}
}

func (n *EmailNotifier) Summarize(ctx context.Context, order *models.Order) (string, error) {
	var buf bytes.Buffer
	err := n.tmpl.Execute(&buf, struct {
		Order      *models.Order
		BrandPhone string
	}{order, n.brandPhone})
	if err != nil {
		return "", fmt.Errorf("failed to render order summary: %w", err)
	}
	summary := buf.String()

	if n.config.SMTPHost == "" {
		// Email not configured, just log
		logrus.WithField("reference", order.Reference).Info("Order summary:\n" + summary)
		return summary, nil
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	subject := fmt.Sprintf("%s: new order %s", n.brandName, order.Reference)
	msg := []byte(fmt.Sprintf("To: %s\r\nSubject: %s\r\n\r\n%s", n.config.OwnerEmail, subject, summary))

	auth := smtp.PlainAuth("", n.config.SMTPUsername, n.config.SMTPPassword, n.config.SMTPHost)
	addr := fmt.Sprintf("%s:%s", n.config.SMTPHost, n.config.SMTPPort)
	if err := smtp.SendMail(addr, auth, n.config.FromEmail, []string{n.config.OwnerEmail}, msg); err != nil {
		return "", fmt.Errorf("failed to send order email: %w", err)
	}

	return summary, nil
}
