package aws

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

// SQSAPI is the subset of the SQS API used for publishing.
type SQSAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// SQSPublisher sends JSON messages to a single queue.
type SQSPublisher struct {
	api      SQSAPI
	queueURL string
}

// NewSQSClient builds an SQS client from the default AWS configuration chain.
func NewSQSClient(ctx context.Context) (*sqs.Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}
	return sqs.NewFromConfig(cfg), nil
}

// NewSQSPublisher returns a publisher for queueURL.
func NewSQSPublisher(api SQSAPI, queueURL string) *SQSPublisher {
	return &SQSPublisher{api: api, queueURL: queueURL}
}

// Publish marshals payload as the message body and attaches string attributes.
// It returns the SQS message ID.
func (p *SQSPublisher) Publish(ctx context.Context, payload interface{}, attributes map[string]string) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal queue message: %w", err)
	}

	input := &sqs.SendMessageInput{
		QueueUrl:    aws.String(p.queueURL),
		MessageBody: aws.String(string(body)),
	}
	if len(attributes) > 0 {
		input.MessageAttributes = make(map[string]types.MessageAttributeValue, len(attributes))
		for k, v := range attributes {
			input.MessageAttributes[k] = types.MessageAttributeValue{
				DataType:    aws.String("String"),
				StringValue: aws.String(v),
			}
		}
	}

	out, err := p.api.SendMessage(ctx, input)
	if err != nil {
		return "", fmt.Errorf("failed to send message to queue: %w", err)
	}
	return aws.ToString(out.MessageId), nil
}
