// internal/adapters/out/mail/sendgrid_client.go
package mail

import (
	"context"
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

const senderName = "Urban Threads"

// SendGridClient implements EmailClient via the SendGrid v3 API.
type SendGridClient struct {
	apiKey string
}

func NewSendGridClient(apiKey string) *SendGridClient {
	return &SendGridClient{apiKey: apiKey}
}

func (c *SendGridClient) Send(ctx context.Context, from, to, subject, text, html string) error {
	if c.apiKey == "" {
		return fmt.Errorf("sendgrid api key is empty")
	}
	if from == "" {
		return fmt.Errorf("from address is empty")
	}
	if to == "" {
		return fmt.Errorf("to address is empty")
	}
	if html == "" {
		html = text
	}

	msg := sgmail.NewSingleEmail(
		sgmail.NewEmail(senderName, from),
		subject,
		sgmail.NewEmail("", to),
		text,
		html,
	)

	resp, err := sendgrid.NewSendClient(c.apiKey).Send(msg)
	if err != nil {
		return fmt.Errorf("sendgrid send error: %w", err)
	}
	if resp.StatusCode >= 400 {
		log.Printf("[sendgrid] error status=%d, body=%s", resp.StatusCode, resp.Body)
		return fmt.Errorf("sendgrid send failed: status=%d, body=%s", resp.StatusCode, resp.Body)
	}

	log.Printf("[sendgrid] mail sent: status=%d to=%s subject=%s", resp.StatusCode, to, subject)
	return nil
}
