// internal/application/usecase/newsletter_usecase.go
package usecase

import (
	"context"
	"log"

	"urbanthreads/internal/domain/common"
	userdom "urbanthreads/internal/domain/user"
)

// WelcomeMailerPort is the outbound port for the newsletter welcome mail
// (SendGrid in production, a logger locally).
type WelcomeMailerPort interface {
	SendWelcomeEmail(ctx context.Context, toEmail string) error
}

// NewsletterUsecase handles storefront newsletter signups.
type NewsletterUsecase struct {
	mailer WelcomeMailerPort
}

func NewNewsletterUsecase(mailer WelcomeMailerPort) *NewsletterUsecase {
	return &NewsletterUsecase{mailer: mailer}
}

// Subscribe sends the welcome mail to email.
func (uc *NewsletterUsecase) Subscribe(ctx context.Context, email string) error {
	addr := userdom.NormalizeEmail(email)
	if addr == "" {
		return common.Validation("invalid email address")
	}

	if err := uc.mailer.SendWelcomeEmail(ctx, addr); err != nil {
		log.Printf("[newsletter_usecase] welcome mail failed to=%s: %v", addr, err)
		return common.Internal("failed to subscribe")
	}
	return nil
}
