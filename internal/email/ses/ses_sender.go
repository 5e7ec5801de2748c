package ses

import (
	"context"
	"fmt"
	"html"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"payvlo/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
}

// NewSESSender creates a new SES-backed EmailSender.
func NewSESSender(ctx context.Context, region, fromAddress, fromName string) (port.EmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	return &sesSender{
		client:      sesv2.NewFromConfig(cfg),
		fromAddress: fromAddress,
		fromName:    fromName,
	}, nil
}

func (s *sesSender) SendInvoiceEmail(ctx context.Context, msg port.InvoiceEmail) error {
	subject := Subject(msg)
	htmlBody := buildInvoiceHTML(msg)
	textBody := BuildInvoiceText(msg)

	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{msg.ToEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody},
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

// Subject is the subject line of an invoice e-mail.
func Subject(msg port.InvoiceEmail) string {
	return fmt.Sprintf("Invoice %s from %s", msg.InvoiceNumber, msg.CompanyName)
}

// BuildInvoiceText renders the plain-text body of an invoice e-mail.
func BuildInvoiceText(msg port.InvoiceEmail) string {
	return fmt.Sprintf("Dear %s,\n\nPlease find invoice %s dated %s for %s (%s).\n\nDownload: %s\n\nThis link expires, please save a copy.\n\n%s",
		msg.ToName, msg.InvoiceNumber, msg.InvoiceDate, msg.Amount, msg.AmountInWords, msg.DownloadURL, msg.CompanyName)
}

func buildInvoiceHTML(msg port.InvoiceEmail) string {
	e := html.EscapeString
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #164078;">Invoice %s</h2>
  <p>Dear %s,</p>
  <p>Please find below the invoice issued on %s.</p>
  <table style="border-collapse: collapse; margin: 20px 0;">
    <tr><td style="padding: 4px 12px 4px 0; color: #666;">Amount</td><td style="font-weight: bold;">%s</td></tr>
    <tr><td style="padding: 4px 12px 4px 0; color: #666;">In words</td><td>%s</td></tr>
  </table>
  <p style="text-align: center; margin: 30px 0;">
    <a href="%s" style="background-color: #164078; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">Download Invoice</a>
  </p>
  <p style="color: #999; font-size: 12px;">The download link expires. Please save a copy for your records.</p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">%s</p>
</body>
</html>`, e(msg.InvoiceNumber), e(msg.ToName), e(msg.InvoiceDate), e(msg.Amount),
		e(msg.AmountInWords), e(msg.DownloadURL), e(msg.CompanyName))
}
