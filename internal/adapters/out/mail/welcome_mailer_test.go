// internal/adapters/out/mail/welcome_mailer_test.go
package mail

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureClient struct {
	from, to, subject, text, html string
}

func (c *captureClient) Send(ctx context.Context, from, to, subject, text, html string) error {
	c.from, c.to, c.subject, c.text, c.html = from, to, subject, text, html
	return nil
}

func TestSendWelcomeEmail(t *testing.T) {
	client := &captureClient{}
	m := NewWelcomeMailer(client, "hello@urbanthreads.example", "https://shop.example/")

	err := m.SendWelcomeEmail(context.Background(), "  ada@example.com ")
	require.NoError(t, err)

	assert.Equal(t, "hello@urbanthreads.example", client.from)
	assert.Equal(t, "ada@example.com", client.to, "recipient is trimmed")
	assert.Equal(t, "Welcome to the Urban Threads newsletter", client.subject)

	// Both renderings carry the storefront link, with the trailing slash
	// of the base URL collapsed.
	assert.Contains(t, client.text, "https://shop.example/products")
	assert.Contains(t, client.html, `<a href="https://shop.example/products">`)
	assert.NotContains(t, client.html, "<pre>")
}
