package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/AlexZinkM/rail-wallet/internal/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// MinSecretLength is the shortest accepted key encryption secret.
const MinSecretLength = 16

var ErrNoSecret = errors.New("no key encryption secret: set KEY_ENC_SECRET or KEY_ENC_SECRET_ARN, or run interactively")

// SecretsAPI is the part of the Secrets Manager client used here.
type SecretsAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// LoadSecret resolves the key encryption secret for c. Secrets Manager is
// only contacted when KEY_ENC_SECRET_ARN is set.
func LoadSecret(ctx context.Context, c *Config) ([]byte, error) {
	var sm SecretsAPI
	if c.KeyEncSecretARN != "" {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
		}
		sm = secretsmanager.NewFromConfig(awsCfg)
	}
	return ResolveSecret(ctx, c, sm, promptForSecret)
}

// ResolveSecret tries, in order, Secrets Manager (when an ARN is set),
// KEY_ENC_SECRET and then prompt. prompt may be nil.
func ResolveSecret(ctx context.Context, c *Config, sm SecretsAPI, prompt func() ([]byte, error)) ([]byte, error) {
	if c.KeyEncSecretARN != "" && sm != nil {
		secret, err := fetchSecret(ctx, sm, c.KeyEncSecretARN)
		if err == nil {
			logger.Info("key encryption secret loaded from Secrets Manager")
			return validSecret(secret)
		}
		if c.KeyEncSecret == "" {
			return nil, err
		}
		logger.Warn("failed to retrieve secret from Secrets Manager, falling back to KEY_ENC_SECRET", zap.Error(err))
	}

	if c.KeyEncSecret != "" {
		return validSecret([]byte(c.KeyEncSecret))
	}

	if prompt == nil {
		return nil, ErrNoSecret
	}
	secret, err := prompt()
	if err != nil {
		return nil, err
	}
	return validSecret(secret)
}

func fetchSecret(ctx context.Context, sm SecretsAPI, arn string) ([]byte, error) {
	out, err := sm.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(arn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch secret %s: %w", arn, err)
	}
	if out.SecretString == nil || strings.TrimSpace(*out.SecretString) == "" {
		return nil, fmt.Errorf("secret %s is empty", arn)
	}
	return []byte(strings.TrimSpace(*out.SecretString)), nil
}

func validSecret(secret []byte) ([]byte, error) {
	if len(secret) < MinSecretLength {
		clear(secret)
		return nil, fmt.Errorf("key encryption secret must be at least %d characters", MinSecretLength)
	}
	return secret, nil
}

// promptForSecret reads the secret from the terminal without echo.
func promptForSecret() ([]byte, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, ErrNoSecret
	}
	fmt.Fprint(os.Stderr, "Enter key encryption secret: ")
	defer fmt.Fprintln(os.Stderr)

	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return nil, fmt.Errorf("failed to read secret: %w", err)
	}
	if len(raw) == 0 {
		return nil, errors.New("secret cannot be empty")
	}

	secret := make([]byte, len(raw))
	copy(secret, raw)
	clear(raw)
	return secret, nil
}
