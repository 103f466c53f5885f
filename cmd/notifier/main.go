// Package main implements the notification-consumer Lambda. It is subscribed
// to the item change topic and logs every delivered message; nothing further
// happens downstream.
package main

import (
	"context"
	"encoding/json"
	"log"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	domainevents "shopping-backend/domain/events"
)

var logger *zap.Logger

func init() {
	var err error
	logger, err = zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	log.Println("Notification consumer initialized")
}

// Handler is invoked once per SNS delivery. It logs each record's subject,
// event type and payload; there is no acknowledgement beyond returning nil.
func Handler(ctx context.Context, event events.SNSEvent) error {
	for _, record := range event.Records {
		msg := record.SNS

		eventType := ""
		if attr, ok := msg.MessageAttributes["eventType"]; ok {
			if m, ok := attr.(map[string]interface{}); ok {
				eventType, _ = m["Value"].(string)
			}
		}

		var envelope domainevents.Envelope
		if err := json.Unmarshal([]byte(msg.Message), &envelope); err != nil {
			logger.Warn("Received notification with unparseable body",
				zap.String("messageID", msg.MessageID),
				zap.Error(err),
			)
		}

		logger.Info("Received notification",
			zap.String("messageID", msg.MessageID),
			zap.String("subject", msg.Subject),
			zap.String("eventType", eventType),
			zap.String("message", msg.Message),
		)
	}

	return nil
}

func main() {
	lambda.Start(Handler)
}
