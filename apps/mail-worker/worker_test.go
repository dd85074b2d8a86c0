package mailworker_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-lambda-go/events"
	mailworker "github.com/campusperks/campusperks-api/apps/mail-worker"
	"github.com/campusperks/campusperks-api/libs/go/client/queue"
	"github.com/campusperks/campusperks-api/libs/go/logger"
	"github.com/campusperks/campusperks-api/libs/go/mocks"
	"github.com/campusperks/campusperks-api/libs/go/types/business"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	logger.InitLogger("test")
}

var fastPolicy = queue.RetryPolicy{
	MaxAttempts:     2,
	InitialInterval: time.Millisecond,
	MaxInterval:     2 * time.Millisecond,
}

func jobMessage(t *testing.T, messageID, to string) events.SQSMessage {
	t.Helper()
	body, err := json.Marshal(business.EmailJob{
		ID:   uuid.New(),
		Type: business.EmailJobVerificationCode,
		To:   to,
		Data: map[string]string{"code": "482913"},
	})
	require.NoError(t, err)
	return events.SQSMessage{MessageId: messageID, Body: string(body)}
}

func TestApplication_HandleSQSEvent(t *testing.T) {
	tests := []struct {
		name         string
		records      func(t *testing.T) []events.SQSMessage
		setupMocks   func(sender *mocks.MockEmailSender)
		wantFailures []string
	}{
		{
			name: "all delivered",
			records: func(t *testing.T) []events.SQSMessage {
				return []events.SQSMessage{
					jobMessage(t, "m-1", "ana@ox.ac.uk"),
					jobMessage(t, "m-2", "ben@ox.ac.uk"),
				}
			},
			setupMocks: func(sender *mocks.MockEmailSender) {
				sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil).Times(2)
			},
		},
		{
			name: "transient failure recovers within the policy",
			records: func(t *testing.T) []events.SQSMessage {
				return []events.SQSMessage{jobMessage(t, "m-1", "ana@ox.ac.uk")}
			},
			setupMocks: func(sender *mocks.MockEmailSender) {
				gomock.InOrder(
					sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("429 too many requests")),
					sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil),
				)
			},
		},
		{
			name: "exhausted retries reported as batch item failure",
			records: func(t *testing.T) []events.SQSMessage {
				return []events.SQSMessage{
					jobMessage(t, "m-1", "ana@ox.ac.uk"),
					jobMessage(t, "m-2", "down@ox.ac.uk"),
				}
			},
			setupMocks: func(sender *mocks.MockEmailSender) {
				sender.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, job business.EmailJob) error {
					if job.To == "down@ox.ac.uk" {
						return errors.New("resend unavailable")
					}
					return nil
				}).Times(3)
			},
			wantFailures: []string{"m-2"},
		},
		{
			name: "malformed records are dropped without retry",
			records: func(t *testing.T) []events.SQSMessage {
				return []events.SQSMessage{
					{MessageId: "bad-json", Body: "{"},
					{MessageId: "no-recipient", Body: `{"type":"verification_code"}`},
				}
			},
			setupMocks: func(sender *mocks.MockEmailSender) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			sender := mocks.NewMockEmailSender(ctrl)
			tt.setupMocks(sender)

			app := mailworker.NewApplication(sender, fastPolicy)
			resp, err := app.HandleSQSEvent(context.Background(), events.SQSEvent{Records: tt.records(t)})
			require.NoError(t, err)

			var failed []string
			for _, f := range resp.BatchItemFailures {
				failed = append(failed, f.ItemIdentifier)
			}
			assert.Equal(t, tt.wantFailures, failed)
		})
	}
}
