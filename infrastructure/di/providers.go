package di

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	awssns "github.com/aws/aws-sdk-go-v2/service/sns"
	"go.uber.org/zap"

	"shopping-backend/application/ports"
	"shopping-backend/application/services"
	"shopping-backend/infrastructure/config"
	"shopping-backend/infrastructure/messaging/sns"
	"shopping-backend/infrastructure/persistence/dynamodb"
	"shopping-backend/infrastructure/storage/s3"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideAWSConfig creates AWS configuration
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
}

// ProvideDynamoDBClient creates a DynamoDB client
func ProvideDynamoDBClient(awsCfg aws.Config) *awsdynamodb.Client {
	return awsdynamodb.NewFromConfig(awsCfg)
}

// ProvideSNSClient creates an SNS client
func ProvideSNSClient(awsCfg aws.Config) *awssns.Client {
	return awssns.NewFromConfig(awsCfg)
}

// ProvideS3Client creates an S3 client, honoring a custom endpoint
func ProvideS3Client(awsCfg aws.Config, cfg *config.Config) *awss3.Client {
	return s3.NewClient(awsCfg, cfg)
}

// ProvideItemRepository creates the DynamoDB-backed item repository
func ProvideItemRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.ItemRepository {
	return dynamodb.NewItemRepository(client, cfg.ItemsTable, logger)
}

// ProvideNotificationPublisher creates the SNS notification publisher
func ProvideNotificationPublisher(client *awssns.Client, cfg *config.Config, logger *zap.Logger) ports.NotificationPublisher {
	return sns.NewPublisher(client, cfg.SNSTopicARN, logger)
}

// ProvidePhotoStore creates the S3-backed photo store
func ProvidePhotoStore(client *awss3.Client, cfg *config.Config, logger *zap.Logger) ports.PhotoStore {
	return s3.NewPhotoStore(client, cfg.PhotoBucket, logger)
}

// ProvideItemService creates the item application service
func ProvideItemService(
	repo ports.ItemRepository,
	publisher ports.NotificationPublisher,
	logger *zap.Logger,
) *services.ItemService {
	return services.NewItemService(repo, publisher, logger)
}
