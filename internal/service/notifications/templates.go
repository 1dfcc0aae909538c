package notifications

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
)

var summaryTemplate = template.Must(template.New("summary").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 480px; margin: 0 auto; background: #fff; border-radius: 12px; padding: 32px 24px;">
  <div style="text-align: center; margin-bottom: 24px;">
    <h2 style="color: #b91c1c; font-size: 1.5rem; font-weight: bold; margin-bottom: 8px;">Payment Successful!</h2>
    <p style="color: #374151; font-size: 1.1rem;">Thank you for booking your training class.</p>
  </div>
  <div style="background: #f9fafb; border-radius: 8px; padding: 20px 16px; margin-bottom: 24px;">
    <h3 style="color: #b91c1c; font-size: 1.1rem; font-weight: bold; margin-bottom: 12px;">Booking Details</h3>
    <ul style="list-style: none; padding: 0; margin: 0; color: #374151; font-size: 1rem;">
      <li><strong>Class:</strong> {{.ClassName}}</li>
      <li><strong>Name:</strong> {{.CustomerName}}</li>
      <li><strong>Email:</strong> {{.CustomerEmail}}</li>
      <li><strong>Phone:</strong> {{.CustomerPhone}}</li>
      <li><strong>Date:</strong> {{.BookingDate}}</li>
      <li><strong>Time:</strong> {{.BookingTime}}</li>
      <li><strong>Amount Paid:</strong> ${{.Amount}}</li>
      <li><strong>Payment Status:</strong> Confirmed</li>
      <li><strong>Session ID:</strong> {{.SessionID}}</li>
    </ul>
  </div>
  {{if .ContactEmail}}<p style="color: #374151; font-size: 1rem; margin-bottom: 16px;">If you have any questions, please contact us at <a href="mailto:{{.ContactEmail}}" style="color: #e53e3e;">{{.ContactEmail}}</a>.</p>{{end}}
</div>
`))

var contactTemplate = template.Must(template.New("contact").Parse(`
<h2>New Contact Form Submission</h2>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Message:</strong></p>
<p>{{.Message}}</p>
`))

type summaryView struct {
	ClassName     string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	BookingDate   string
	BookingTime   string
	Amount        string
	SessionID     string
	ContactEmail  string
}

func renderSummary(c *domain.PaymentConfirmation, contactEmail string) (string, error) {
	var buf bytes.Buffer
	err := summaryTemplate.Execute(&buf, summaryView{
		ClassName:     c.ClassName,
		CustomerName:  c.CustomerName,
		CustomerEmail: c.CustomerEmail,
		CustomerPhone: c.CustomerPhone,
		BookingDate:   c.BookingDate,
		BookingTime:   c.BookingTime,
		Amount:        fmt.Sprintf("%.2f", c.Amount),
		SessionID:     c.SessionID,
		ContactEmail:  contactEmail,
	})
	if err != nil {
		return "", fmt.Errorf("%w: summary: %v", ErrRender, err)
	}
	return buf.String(), nil
}

func renderContact(m *ContactMessage) (string, error) {
	var buf bytes.Buffer
	if err := contactTemplate.Execute(&buf, m); err != nil {
		return "", fmt.Errorf("%w: contact: %v", ErrRender, err)
	}
	return buf.String(), nil
}
