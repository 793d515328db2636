package database

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/rs/zerolog/log"
)

const (
	defaultRegion = "us-east-1"
	// DynamoDB Local does not validate credentials, but the SDK requires some.
	localAccessKey = "local"
)

// Settings selects the DynamoDB target. An Endpoint (e.g. http://dynamodb:8000)
// points the client at DynamoDB Local; empty static keys then fall back to
// placeholder credentials. Without an Endpoint and keys, the default AWS
// credential chain applies.
type Settings struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
	Endpoint        string
}

func NewDynamoDBConfig(ctx context.Context, s Settings) (aws.Config, error) {
	region := s.Region
	if region == "" {
		region = defaultRegion
	}

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
	}

	accessKey, secretKey := s.AccessKeyID, s.SecretAccessKey
	if accessKey == "" && s.Endpoint != "" {
		accessKey, secretKey = localAccessKey, localAccessKey
	}
	if accessKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, s.SessionToken),
		))
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}

// NewDynamoDBClient builds a client from Settings.
func NewDynamoDBClient(ctx context.Context, s Settings) (*dynamodb.Client, error) {
	cfg, err := NewDynamoDBConfig(ctx, s)
	if err != nil {
		return nil, err
	}

	client := dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if s.Endpoint != "" {
			o.BaseEndpoint = aws.String(s.Endpoint)
		}
	})
	log.Info().Str("region", cfg.Region).Str("endpoint", s.Endpoint).Msg("[database] dynamodb client ready")
	return client, nil
}
