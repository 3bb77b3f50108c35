// internal/pkg/email/service.go
package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/order"
)

// Service sends transactional email over SMTP
type Service struct {
	config *config.Config
	logger *logrus.Logger
}

// NewService creates a new email service
func NewService(cfg *config.Config, logger *logrus.Logger) *Service {
	return &Service{
		config: cfg,
		logger: logger,
	}
}

// SendOrderConfirmation sends the order confirmation email to the customer.
// Delivery is best effort; the caller decides whether a failure matters.
func (s *Service) SendOrderConfirmation(o *order.Order) error {
	if !s.config.Email.Enabled {
		s.logger.WithField("order_id", o.OrderID).Debug("Email disabled, skipping order confirmation")
		return nil
	}

	htmlContent, err := s.renderOrderConfirmation(o)
	if err != nil {
		return fmt.Errorf("failed to render order confirmation: %w", err)
	}

	subject := fmt.Sprintf("Order confirmation %s", o.OrderID)
	return s.send([]string{o.CustomerEmail}, subject, htmlContent)
}

// send delivers a single HTML email over SMTP
func (s *Service) send(to []string, subject, htmlContent string) error {
	if s.config.Email.SMTPHost == "" {
		return fmt.Errorf("SMTP configuration incomplete: missing host")
	}

	var auth smtp.Auth
	if s.config.Email.SMTPUser != "" {
		auth = smtp.PlainAuth("", s.config.Email.SMTPUser, s.config.Email.SMTPPass, s.config.Email.SMTPHost)
	}

	from := s.config.Email.FromEmail
	if s.config.Email.FromName != "" {
		from = fmt.Sprintf("%s <%s>", s.config.Email.FromName, s.config.Email.FromEmail)
	}

	headers := map[string]string{
		"From":         from,
		"To":           strings.Join(to, ", "),
		"Subject":      subject,
		"MIME-Version": "1.0",
		"Content-Type": `text/html; charset="utf-8"`,
	}

	var msg bytes.Buffer
	for key, value := range headers {
		msg.WriteString(fmt.Sprintf("%s: %s\r\n", key, value))
	}
	msg.WriteString("\r\n")
	msg.WriteString(htmlContent)

	serverAddr := fmt.Sprintf("%s:%d", s.config.Email.SMTPHost, s.config.Email.SMTPPort)
	return smtp.SendMail(serverAddr, auth, s.config.Email.FromEmail, to, msg.Bytes())
}

type orderConfirmationData struct {
	StoreName string
	Currency  string
	WhatsApp  string
	Order     *order.Order
	Remaining int64
}

func (s *Service) renderOrderConfirmation(o *order.Order) (string, error) {
	tmpl := template.Must(template.New("order_confirmation").Parse(orderConfirmationTemplate))

	data := orderConfirmationData{
		StoreName: s.config.App.Name,
		Currency:  s.config.App.Currency,
		WhatsApp:  s.config.App.WhatsApp,
		Order:     o,
		Remaining: o.RemainingAtDelivery(),
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

const orderConfirmationTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Order {{.Order.OrderID}}</title>
</head>
<body style="font-family: Arial, sans-serif; color: #333;">
    <h2>Thank you for your order, {{.Order.ShippingAddress.FullName}}!</h2>
    <p>Your order <strong>{{.Order.OrderID}}</strong> has been received and is now {{.Order.Status}}.</p>

    <table width="100%" cellpadding="6" style="border-collapse: collapse;">
        <tr style="background: #f5f5f5;">
            <th align="left">Item</th>
            <th align="right">Qty</th>
            <th align="right">Price</th>
        </tr>
        {{range .Order.Items}}
        <tr style="border-bottom: 1px solid #eee;">
            <td>{{.Title}}{{if .Variation}} ({{.Variation}}){{end}}</td>
            <td align="right">{{.Quantity}}</td>
            <td align="right">{{$.Currency}} {{.Price}}</td>
        </tr>
        {{end}}
        <tr>
            <td colspan="2" align="right">Subtotal</td>
            <td align="right">{{.Currency}} {{.Order.Subtotal}}</td>
        </tr>
        <tr>
            <td colspan="2" align="right">Shipping</td>
            <td align="right">{{if eq .Order.ShippingCost 0}}Free{{else}}{{.Currency}} {{.Order.ShippingCost}}{{end}}</td>
        </tr>
        <tr>
            <td colspan="2" align="right"><strong>Total</strong></td>
            <td align="right"><strong>{{.Currency}} {{.Order.Total}}</strong></td>
        </tr>
        {{if .Order.CODAdvanceRequired}}
        <tr>
            <td colspan="2" align="right">Advance paid</td>
            <td align="right">{{.Currency}} {{.Order.CODAdvanceAmount}}</td>
        </tr>
        <tr>
            <td colspan="2" align="right">Due at delivery</td>
            <td align="right">{{.Currency}} {{.Remaining}}</td>
        </tr>
        {{end}}
    </table>

    <p>Shipping to: {{.Order.ShippingAddress.Address}}, {{.Order.ShippingAddress.City}}, {{.Order.ShippingAddress.Country}}</p>
    <p>Questions? WhatsApp us at {{.WhatsApp}}.</p>
    <p>{{.StoreName}}</p>
</body>
</html>
`
