// internal/adapters/out/mail/log_client.go
package mail

import (
	"context"
	"log"
)

// LogClient is an EmailClient that only logs. Used in local development where
// no SendGrid key is configured.
type LogClient struct{}

func NewLogClient() *LogClient {
	return &LogClient{}
}

func (c *LogClient) Send(ctx context.Context, from, to, subject, text, html string) error {
	log.Printf("[mail] (log only) from=%s to=%s subject=%q text=%dB html=%dB", from, to, subject, len(text), len(html))
	return nil
}
