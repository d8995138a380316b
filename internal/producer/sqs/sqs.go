// Package sqs is an aws sqs implementation of producer.
package sqs

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/sqs"
	"github.com/aws/aws-sdk-go/service/sqs/sqsiface"

	"github.com/amoredev/amore/internal/producer"
)

var _ producer.Producer = &impl{}

type impl struct {
	queueURL string
	sqs      sqsiface.SQSAPI
}

// New returns new instance of impl.
func New(sqs sqsiface.SQSAPI, queueURL string) *impl { // nolint:golint
	return &impl{
		sqs:      sqs,
		queueURL: queueURL,
	}
}

// Produce sends message to SQS. The interaction type and actor are duplicated
// into message attributes so consumers can filter without parsing the body.
func (i impl) Produce(ctx context.Context, m *producer.InteractionMessage) error {
	body, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	if _, err := i.sqs.SendMessageWithContext(ctx, &sqs.SendMessageInput{
		MessageBody: aws.String(string(body)),
		QueueUrl:    &i.queueURL,
		MessageAttributes: map[string]*sqs.MessageAttributeValue{
			"type": {
				DataType:    aws.String("String"),
				StringValue: aws.String(m.Type),
			},
			"actor_id": {
				DataType:    aws.String("String"),
				StringValue: aws.String(m.ActorID),
			},
		},
	}); err != nil {
		return fmt.Errorf("failed to send sqs message: %w", err)
	}

	return nil
}
