// internal/adapters/out/mail/welcome_mailer.go
package mail

import (
	"context"
	"fmt"
	"strings"
)

// EmailClient abstracts the concrete mail transport (SendGrid, SMTP, a log
// sink in development). An empty html body means the mail is plain-text only.
type EmailClient interface {
	Send(ctx context.Context, from, to, subject, text, html string) error
}

// WelcomeMailer sends the newsletter welcome email. It satisfies the
// application layer's WelcomeMailerPort and owns both the plain-text and the
// HTML rendering of the message.
type WelcomeMailer struct {
	client       EmailClient
	fromAddress  string
	storeBaseURL string
}

func NewWelcomeMailer(client EmailClient, fromAddress, storeBaseURL string) *WelcomeMailer {
	return &WelcomeMailer{
		client:       client,
		fromAddress:  fromAddress,
		storeBaseURL: strings.TrimRight(storeBaseURL, "/"),
	}
}

func (m *WelcomeMailer) SendWelcomeEmail(ctx context.Context, toEmail string) error {
	subject := "Welcome to the Urban Threads newsletter"
	productsURL := m.storeBaseURL + "/products"

	text := fmt.Sprintf(
		`Thanks for subscribing to Urban Threads.

You'll be the first to hear about new drops, restocks and subscriber-only
discounts.

Browse the latest arrivals here: %s

If you didn't sign up for this newsletter, you can safely ignore this email.

--
Urban Threads`,
		productsURL,
	)

	html := fmt.Sprintf(
		`<p>Thanks for subscribing to <strong>Urban Threads</strong>.</p>
<p>You'll be the first to hear about new drops, restocks and subscriber-only
discounts.</p>
<p><a href="%s">Browse the latest arrivals</a></p>
<p>If you didn't sign up for this newsletter, you can safely ignore this
email.</p>`,
		productsURL,
	)

	return m.client.Send(ctx, m.fromAddress, strings.TrimSpace(toEmail), subject, text, html)
}
