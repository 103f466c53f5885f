// Package sns publishes item change notifications to a fixed SNS topic.
package sns

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
	"go.uber.org/zap"

	"shopping-backend/application/ports"
	"shopping-backend/domain/events"
	apperrors "shopping-backend/pkg/errors"
)

// Publisher implements ports.NotificationPublisher using AWS SNS
type Publisher struct {
	client   *sns.Client
	topicARN string
	logger   *zap.Logger
}

// NewPublisher creates a new SNS publisher
func NewPublisher(client *sns.Client, topicARN string, logger *zap.Logger) ports.NotificationPublisher {
	return &Publisher{
		client:   client,
		topicARN: topicARN,
		logger:   logger,
	}
}

// Publish sends one notification to the topic. The body is the JSON envelope
// {eventType, data}; eventType is also attached as a String message attribute
// for downstream subscription filtering. The call is awaited but delivery is
// fire-and-forget: nothing verifies downstream consumption.
func (p *Publisher) Publish(ctx context.Context, eventType string, data interface{}) error {
	input, err := buildPublishInput(p.topicARN, eventType, data)
	if err != nil {
		return err
	}

	result, err := p.client.Publish(ctx, input)
	if err != nil {
		p.logger.Error("Failed to publish notification",
			zap.Error(err),
			zap.String("eventType", eventType),
			zap.String("topicARN", p.topicARN),
		)
		return apperrors.NewExternalError("sns", err)
	}

	p.logger.Debug("Notification published",
		zap.String("eventType", eventType),
		zap.String("messageID", aws.ToString(result.MessageId)),
	)
	return nil
}

// buildPublishInput serializes the event envelope into a PublishInput
func buildPublishInput(topicARN, eventType string, data interface{}) (*sns.PublishInput, error) {
	body, err := json.Marshal(events.Envelope{
		EventType: eventType,
		Data:      data,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal notification: %w", err)
	}

	return &sns.PublishInput{
		TopicArn: aws.String(topicARN),
		Message:  aws.String(string(body)),
		Subject:  aws.String(fmt.Sprintf("CRUD Event: %s", eventType)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"eventType": {
				DataType:    aws.String("String"),
				StringValue: aws.String(eventType),
			},
		},
	}, nil
}
