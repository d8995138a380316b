package sqs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	awssqs "github.com/aws/aws-sdk-go/service/sqs"
	"github.com/aws/aws-sdk-go/service/sqs/sqsiface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amoredev/amore/internal/producer"
)

type fakeSQS struct {
	sqsiface.SQSAPI

	in  *awssqs.SendMessageInput
	err error
}

func (f *fakeSQS) SendMessageWithContext(_ aws.Context, in *awssqs.SendMessageInput, _ ...request.Option) (*awssqs.SendMessageOutput, error) {
	f.in = in
	return &awssqs.SendMessageOutput{}, f.err
}

func TestProduce(t *testing.T) {
	f := &fakeSQS{}
	p := New(f, "http://queue.url")

	err := p.Produce(context.Background(), &producer.InteractionMessage{
		Type:      "liked",
		ActorID:   "actor",
		TargetID:  "target",
		CreatedAt: time.Date(2022, time.March, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	require.NotNil(t, f.in)
	assert.Equal(t, "http://queue.url", *f.in.QueueUrl)
	assert.JSONEq(t, `{
		"type": "liked",
		"actor_id": "actor",
		"target_id": "target",
		"created_at": "2022-03-01T00:00:00Z"
	}`, *f.in.MessageBody)

	require.Contains(t, f.in.MessageAttributes, "type")
	assert.Equal(t, "liked", *f.in.MessageAttributes["type"].StringValue)
	require.Contains(t, f.in.MessageAttributes, "actor_id")
	assert.Equal(t, "actor", *f.in.MessageAttributes["actor_id"].StringValue)
}

func TestProduce_Error(t *testing.T) {
	f := &fakeSQS{err: errors.New("test")}
	p := New(f, "http://queue.url")

	err := p.Produce(context.Background(), &producer.InteractionMessage{Type: "liked"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send sqs message")
}
