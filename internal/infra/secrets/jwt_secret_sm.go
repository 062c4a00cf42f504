// internal/infra/secrets/jwt_secret_sm.go
package secrets

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
)

var (
	ErrSecretNotConfigured = errors.New("jwt_secret_sm: not configured")
	ErrSecretNotFound      = errors.New("jwt_secret_sm: secret not found")
)

// JWTSecretSM resolves the token signing secret from Secret Manager. Used on
// Cloud Run where the secret is not injected as a plain env var.
type JWTSecretSM struct {
	Client    *secretmanager.Client
	ProjectID string
}

func NewJWTSecretSM(ctx context.Context, projectID string) (*JWTSecretSM, error) {
	pid := strings.TrimSpace(projectID)
	if pid == "" {
		pid = strings.TrimSpace(os.Getenv("GOOGLE_CLOUD_PROJECT"))
	}
	if pid == "" {
		return nil, fmt.Errorf("%w: projectID is empty", ErrSecretNotConfigured)
	}

	c, err := secretmanager.NewClient(ctx)
	if err != nil {
		return nil, err
	}

	return &JWTSecretSM{Client: c, ProjectID: pid}, nil
}

// Fetch reads the latest version of secretName.
func (p *JWTSecretSM) Fetch(ctx context.Context, secretName string) (string, error) {
	if p == nil || p.Client == nil {
		return "", ErrSecretNotConfigured
	}

	id := strings.TrimSpace(secretName)
	if id == "" {
		return "", ErrSecretNotConfigured
	}

	name := fmt.Sprintf("projects/%s/secrets/%s/versions/latest", p.ProjectID, id)
	res, err := p.Client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{Name: name})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSecretNotFound, err)
	}
	if res == nil || res.Payload == nil {
		return "", ErrSecretNotFound
	}

	s := strings.TrimSpace(string(res.Payload.Data))
	if s == "" {
		return "", ErrSecretNotFound
	}
	return s, nil
}

func (p *JWTSecretSM) Close() error {
	if p == nil || p.Client == nil {
		return nil
	}
	return p.Client.Close()
}
