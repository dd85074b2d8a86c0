package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/campusperks/campusperks-api/libs/go/services"
	"github.com/campusperks/campusperks-api/libs/go/types/business"
	"github.com/google/uuid"
	"github.com/resend/resend-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeResend struct {
	sent []*resend.SendEmailRequest
	err  error
}

func (f *fakeResend) Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sent = append(f.sent, params)
	return &resend.SendEmailResponse{Id: "email_123"}, nil
}

func TestEmailService_Send(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name         string
		job          business.EmailJob
		wantHTML     string
		wantText     string
		absentInText string
		errContains  string
	}{
		{
			name: "verification code",
			job: business.EmailJob{
				Type:    business.EmailJobVerificationCode,
				To:      "jo@ox.ac.uk",
				Subject: "Your student verification code",
				Data:    map[string]string{"code": "482913", "expires_at": "2025-03-12T14:30:00Z"},
			},
			wantHTML: "<strong>482913</strong>",
			wantText: "Your student verification code is 482913. It expires at 2025-03-12T14:30:00Z.",
		},
		{
			name: "rejection includes reason",
			job: business.EmailJob{
				Type: business.EmailJobVerificationResult,
				To:   "jo@ox.ac.uk",
				Data: map[string]string{"status": "rejected", "reason": "Document unreadable"},
			},
			wantHTML: "<p>Reason: Document unreadable</p>",
			wantText: "Your student verification is now rejected. Reason: Document unreadable",
		},
		{
			name: "receipt without cashback",
			job: business.EmailJob{
				Type: business.EmailJobRedemptionReceipt,
				To:   "jo@ox.ac.uk",
				Data: map[string]string{
					"title": "20% off textbooks", "claim_code": "STU-0A1B2C3D-1234",
					"transaction_amount": "50.00", "discount_amount": "10.00", "savings": "10.00",
				},
			},
			wantText:     "total saved: 10.00.",
			absentInText: "cashback",
		},
		{
			name: "html escapes user supplied text",
			job: business.EmailJob{
				Type: business.EmailJobDiscountReviewed,
				To:   "partner@example.com",
				Data: map[string]string{"title": "<script>x</script>", "status": "approved"},
			},
			wantHTML: "&lt;script&gt;",
		},
		{
			name:        "unknown type",
			job:         business.EmailJob{Type: "newsletter", To: "jo@ox.ac.uk"},
			errContains: `unknown email job type "newsletter"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeResend{}
			service := services.NewEmailServiceWithClient(client, "no-reply@campusperks.io", "CampusPerks", zap.NewNop())
			tt.job.ID = uuid.New()

			err := service.Send(ctx, tt.job)
			if tt.errContains != "" {
				assert.ErrorContains(t, err, tt.errContains)
				assert.Empty(t, client.sent)
				return
			}
			require.NoError(t, err)
			require.Len(t, client.sent, 1)

			req := client.sent[0]
			assert.Equal(t, "CampusPerks <no-reply@campusperks.io>", req.From)
			assert.Equal(t, []string{tt.job.To}, req.To)
			assert.Equal(t, tt.job.ID.String(), req.Headers["X-Entity-Ref-ID"])
			assert.Equal(t, []resend.Tag{{Name: "category", Value: string(tt.job.Type)}}, req.Tags)
			if tt.wantHTML != "" {
				assert.Contains(t, req.Html, tt.wantHTML)
			}
			if tt.wantText != "" {
				assert.Contains(t, req.Text, tt.wantText)
			}
			if tt.absentInText != "" {
				assert.NotContains(t, req.Text, tt.absentInText)
			}
		})
	}
}

func TestEmailService_SendFailure(t *testing.T) {
	client := &fakeResend{err: errors.New("rate limited")}
	service := services.NewEmailServiceWithClient(client, "no-reply@campusperks.io", "CampusPerks", zap.NewNop())

	err := service.Send(context.Background(), business.EmailJob{
		ID:   uuid.New(),
		Type: business.EmailJobReverifyReminder,
		To:   "jo@ox.ac.uk",
		Data: map[string]string{"expires_at": "2025-04-01T00:00:00Z"},
	})
	assert.ErrorContains(t, err, "failed to send email: rate limited")
}
