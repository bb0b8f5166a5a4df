package secret

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	smtypes "github.com/aws/aws-sdk-go-v2/service/secretsmanager/types"
)

// secretsManagerAPI is the subset of the Secrets Manager client used here.
type secretsManagerAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// AWSStore reads secrets from AWS Secrets Manager.
//
// Plain string secrets are returned as-is. When the secret string is a JSON
// object and Key is set, the value of that field is returned instead.
type AWSStore struct {
	api secretsManagerAPI
	key string
}

// NewAWSStore builds a Secrets Manager client from the default credential chain.
func NewAWSStore(ctx context.Context, region, key string) (*AWSStore, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("aws: failed to load config: %w", err)
	}

	return &AWSStore{api: secretsmanager.NewFromConfig(cfg), key: key}, nil
}

// GetSecret fetches the current version of the secret called name.
func (s *AWSStore) GetSecret(ctx context.Context, name string) (string, error) {
	out, err := s.api.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(name),
	})
	if err != nil {
		var nf *smtypes.ResourceNotFoundException
		if errors.As(err, &nf) {
			return "", fmt.Errorf("aws secret %s: %w", name, ErrNotFound)
		}
		return "", fmt.Errorf("aws secret %s: %w: %v", name, ErrUnavailable, err)
	}

	value := aws.ToString(out.SecretString)
	if value == "" {
		return "", fmt.Errorf("aws secret %s: %w", name, ErrNotFound)
	}

	return s.extract(name, value)
}

func (s *AWSStore) extract(name, value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if s.key == "" || !strings.HasPrefix(trimmed, "{") {
		return value, nil
	}

	var fields map[string]interface{}
	if err := json.Unmarshal([]byte(trimmed), &fields); err != nil {
		return value, nil
	}

	field, ok := fields[s.key].(string)
	if !ok || field == "" {
		return "", fmt.Errorf("aws secret %s: field %q: %w", name, s.key, ErrNotFound)
	}
	return field, nil
}
