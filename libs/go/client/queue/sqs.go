package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/campusperks/campusperks-api/libs/go/logger"
	"github.com/campusperks/campusperks-api/libs/go/types/business"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// SQSAPI is the subset of the SQS client the producer uses
type SQSAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// SQSJobQueue publishes email jobs to an SQS queue consumed by the mail worker.
type SQSJobQueue struct {
	client   SQSAPI
	queueURL string
	logger   *zap.Logger
}

// NewSQSClient loads the default AWS config. A non-empty endpoint points the
// client at a local SQS emulator using static credentials.
func NewSQSClient(ctx context.Context, endpoint string) (*sqs.Client, error) {
	var opts []func(*config.LoadOptions) error
	if endpoint != "" {
		opts = append(opts,
			config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider("local", "local", "")),
			config.WithRegion("us-east-1"),
		)
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "unable to load AWS SDK config for SQS")
	}

	return sqs.NewFromConfig(awsCfg, func(o *sqs.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	}), nil
}

// NewSQSJobQueue creates an SQS-backed job queue
func NewSQSJobQueue(client SQSAPI, queueURL string) *SQSJobQueue {
	return &SQSJobQueue{client: client, queueURL: queueURL, logger: logger.Log}
}

// Enqueue implements interfaces.JobQueue
func (q *SQSJobQueue) Enqueue(ctx context.Context, job business.EmailJob) error {
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}

	body, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal email job: %w", err)
	}

	out, err := q.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(q.queueURL),
		MessageBody: aws.String(string(body)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"JobType": {
				DataType:    aws.String("String"),
				StringValue: aws.String(string(job.Type)),
			},
		},
	})
	if err != nil {
		return errors.Wrapf(err, "failed to send email job %s to sqs", job.ID)
	}

	q.logger.Debug("email job queued",
		zap.String("job_id", job.ID.String()),
		zap.String("type", string(job.Type)),
		zap.String("message_id", aws.ToString(out.MessageId)))
	return nil
}

// DecodeJob parses an SQS message body into an EmailJob
func DecodeJob(body string) (business.EmailJob, error) {
	var job business.EmailJob
	if err := json.Unmarshal([]byte(body), &job); err != nil {
		return job, errors.Wrap(err, "failed to decode email job")
	}
	if job.To == "" || job.Type == "" {
		return job, errors.New("email job missing recipient or type")
	}
	return job, nil
}
