// internal/services/mailer_service.go
package services

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"

	"github.com/sirupsen/logrus"

	"github.com/shopora/storefront-api/internal/config"
	"github.com/shopora/storefront-api/internal/models"
)

// MailerService sends transactional mail. Without SMTP credentials it only
// logs, which keeps development and tests offline.
type MailerService struct {
	config *config.Config
}

const orderConfirmationTemplate = `
<h2>Thanks for your order, {{.Name}}!</h2>
<p>Order <strong>{{.OrderID}}</strong> was received and is now {{.Status}}.</p>
<table>
	{{range .Items}}<tr><td>{{.Title}}</td><td>{{.Quantity}} × {{printf "%.2f" .Price}}</td></tr>{{end}}
</table>
<p>Items: {{printf "%.2f" .ItemsPrice}}<br>
Tax: {{printf "%.2f" .TaxPrice}}<br>
Shipping: {{printf "%.2f" .ShippingPrice}}<br>
<strong>Total: {{printf "%.2f" .TotalPrice}}</strong></p>
<p><a href="{{.OrderURL}}">Track your order</a></p>
`

func NewMailerService(config *config.Config) *MailerService {
	return &MailerService{config: config}
}

// SendOrderConfirmation renders and sends the receipt mail. The order must
// arrive with its User association loaded.
func (s *MailerService) SendOrderConfirmation(order *models.Order) error {
	if order.User == nil {
		return fmt.Errorf("order %s has no user loaded", order.ID)
	}

	data := map[string]interface{}{
		"Name":          order.User.Name,
		"OrderID":       order.ID,
		"Status":        order.Status,
		"Items":         order.Items,
		"ItemsPrice":    order.ItemsPrice,
		"TaxPrice":      order.TaxPrice,
		"ShippingPrice": order.ShippingPrice,
		"TotalPrice":    order.TotalPrice,
		"OrderURL":      fmt.Sprintf("%s/orders/%s", s.config.Frontend.BaseURL, order.ID),
	}

	subject := fmt.Sprintf("Order confirmation %s", order.ID)
	body, err := renderTemplate(orderConfirmationTemplate, data)
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	return s.sendEmail(order.User.Email, subject, body)
}

func (s *MailerService) sendEmail(to, subject, body string) error {
	if s.config.Email.SMTPUsername == "" {
		logrus.WithFields(logrus.Fields{
			"to":      to,
			"subject": subject,
		}).Info("SMTP not configured, skipping email")
		return nil
	}

	auth := smtp.PlainAuth(
		"",
		s.config.Email.SMTPUsername,
		s.config.Email.SMTPPassword,
		s.config.Email.SMTPHost,
	)

	msg := fmt.Sprintf(
		"From: %s <%s>\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n%s",
		s.config.Email.FromName, s.config.Email.FromEmail, to, subject, body,
	)

	addr := fmt.Sprintf("%s:%s", s.config.Email.SMTPHost, s.config.Email.SMTPPort)
	if err := smtp.SendMail(addr, auth, s.config.Email.FromEmail, []string{to}, []byte(msg)); err != nil {
		logrus.WithError(err).WithField("to", to).Error("Failed to send email")
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func renderTemplate(tmpl string, data interface{}) (string, error) {
	t, err := template.New("email").Parse(tmpl)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}
