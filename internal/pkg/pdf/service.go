// internal/pkg/pdf/service.go
package pdf

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/order"
)

// Service handles PDF generation
type Service struct {
	config *config.Config
}

// NewService creates a new PDF service
func NewService(cfg *config.Config) *Service {
	return &Service{
		config: cfg,
	}
}

// GenerateReceipt generates a PDF receipt for a placed order
func (s *Service) GenerateReceipt(o *order.Order) (*bytes.Buffer, error) {
	data := receiptData{
		StoreName: s.config.App.Name,
		WhatsApp:  s.config.App.WhatsApp,
		Currency:  s.config.App.Currency,
		OrderDate: o.CreatedAt.Format("January 2, 2006"),
		Order:     o,
		Remaining: o.RemainingAtDelivery(),
	}

	htmlContent, err := s.generateHTML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to generate HTML: %w", err)
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF generator: %w", err)
	}

	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)
	pdfg.Grayscale.Set(false)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader([]byte(htmlContent)))
	page.FooterRight.Set("[page]")
	page.FooterFontSize.Set(9)
	page.Zoom.Set(0.95)

	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("failed to create PDF: %w", err)
	}

	return bytes.NewBuffer(pdfg.Bytes()), nil
}

// generateHTML generates HTML content from template
func (s *Service) generateHTML(data receiptData) (string, error) {
	tmpl := template.Must(template.New("receipt").Parse(receiptTemplate))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// receiptData represents the data passed to the receipt template
type receiptData struct {
	StoreName string
	WhatsApp  string
	Currency  string
	OrderDate string
	Order     *order.Order
	Remaining int64
}

// Receipt HTML template
const receiptTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Receipt {{.Order.OrderID}}</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            margin: 0;
            padding: 20px;
            color: #333;
        }
        .header {
            display: flex;
            justify-content: space-between;
            border-bottom: 2px solid #333;
            padding-bottom: 16px;
            margin-bottom: 24px;
        }
        .store-name {
            font-size: 22px;
            font-weight: bold;
        }
        .meta {
            text-align: right;
            font-size: 12px;
        }
        table {
            width: 100%;
            border-collapse: collapse;
            margin-bottom: 24px;
        }
        th, td {
            padding: 8px;
            border-bottom: 1px solid #ddd;
            font-size: 12px;
        }
        th {
            background: #f5f5f5;
            text-align: left;
        }
        .right {
            text-align: right;
        }
        .totals td {
            border-bottom: none;
        }
        .grand-total {
            font-weight: bold;
            font-size: 14px;
        }
        .footer {
            font-size: 11px;
            color: #777;
            margin-top: 32px;
        }
    </style>
</head>
<body>
    <div class="header">
        <div class="store-name">{{.StoreName}}</div>
        <div class="meta">
            Receipt for order <strong>{{.Order.OrderID}}</strong><br>
            {{.OrderDate}}<br>
            Status: {{.Order.Status}}
        </div>
    </div>

    <p>
        <strong>{{.Order.ShippingAddress.FullName}}</strong><br>
        {{.Order.ShippingAddress.Address}}<br>
        {{.Order.ShippingAddress.City}}{{if .Order.ShippingAddress.PostalCode}}, {{.Order.ShippingAddress.PostalCode}}{{end}}<br>
        {{.Order.ShippingAddress.Country}}<br>
        {{.Order.ShippingAddress.Phone}}
    </p>

    <table>
        <tr>
            <th>Item</th>
            <th class="right">Qty</th>
            <th class="right">Price</th>
            <th class="right">Total</th>
        </tr>
        {{range .Order.Items}}
        <tr>
            <td>{{.Title}}{{if .Variation}} ({{.Variation}}){{end}}{{if .Size}} / {{.Size}}{{end}}</td>
            <td class="right">{{.Quantity}}</td>
            <td class="right">{{$.Currency}} {{.Price}}</td>
            <td class="right">{{$.Currency}} {{.LineTotal}}</td>
        </tr>
        {{end}}
        <tr class="totals">
            <td colspan="3" class="right">Subtotal</td>
            <td class="right">{{.Currency}} {{.Order.Subtotal}}</td>
        </tr>
        <tr class="totals">
            <td colspan="3" class="right">Shipping ({{.Order.Shipping}})</td>
            <td class="right">{{if eq .Order.ShippingCost 0}}Free{{else}}{{.Currency}} {{.Order.ShippingCost}}{{end}}</td>
        </tr>
        <tr class="totals grand-total">
            <td colspan="3" class="right">Total</td>
            <td class="right">{{.Currency}} {{.Order.Total}}</td>
        </tr>
        {{if .Order.CODAdvanceRequired}}
        <tr class="totals">
            <td colspan="3" class="right">Advance paid</td>
            <td class="right">{{.Currency}} {{.Order.CODAdvanceAmount}}</td>
        </tr>
        <tr class="totals">
            <td colspan="3" class="right">Due at delivery</td>
            <td class="right">{{.Currency}} {{.Remaining}}</td>
        </tr>
        {{end}}
    </table>

    <p>Payment method: {{.Order.Payment}}</p>

    <div class="footer">
        Questions about this order? Contact us on WhatsApp at {{.WhatsApp}}.
    </div>
</body>
</html>
`
