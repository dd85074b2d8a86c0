package services

import (
	"bytes"
	"context"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"

	"github.com/campusperks/campusperks-api/libs/go/types/business"
	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

// ResendEmails is the part of the Resend client the email service calls
type ResendEmails interface {
	Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// EmailService renders email jobs and delivers them through Resend.
type EmailService struct {
	emails    ResendEmails
	logger    *zap.Logger
	fromEmail string
	fromName  string
	html      *htmltemplate.Template
	text      *texttemplate.Template
}

// NewEmailService creates an email service backed by the Resend API
func NewEmailService(apiKey string, fromEmail string, fromName string, logger *zap.Logger) *EmailService {
	client := resend.NewClient(apiKey)
	return NewEmailServiceWithClient(client.Emails, fromEmail, fromName, logger)
}

// NewEmailServiceWithClient creates an email service with a custom Resend emails client
func NewEmailServiceWithClient(emails ResendEmails, fromEmail string, fromName string, logger *zap.Logger) *EmailService {
	html := htmltemplate.New("email")
	text := texttemplate.New("email")
	for jobType, tmpl := range emailTemplates {
		htmltemplate.Must(html.New(string(jobType)).Parse(tmpl.html))
		texttemplate.Must(text.New(string(jobType)).Parse(tmpl.text))
	}

	return &EmailService{
		emails:    emails,
		logger:    logger,
		fromEmail: fromEmail,
		fromName:  fromName,
		html:      html,
		text:      text,
	}
}

// Send implements interfaces.EmailSender
func (s *EmailService) Send(ctx context.Context, job business.EmailJob) error {
	if _, ok := emailTemplates[job.Type]; !ok {
		return fmt.Errorf("unknown email job type %q", job.Type)
	}

	var htmlBody bytes.Buffer
	if err := s.html.ExecuteTemplate(&htmlBody, string(job.Type), job.Data); err != nil {
		return fmt.Errorf("failed to render HTML template: %w", err)
	}
	var textBody bytes.Buffer
	if err := s.text.ExecuteTemplate(&textBody, string(job.Type), job.Data); err != nil {
		return fmt.Errorf("failed to render text template: %w", err)
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail),
		To:      []string{job.To},
		Subject: job.Subject,
		Html:    htmlBody.String(),
		Text:    textBody.String(),
		Headers: map[string]string{
			"X-Entity-Ref-ID": job.ID.String(),
		},
		Tags: []resend.Tag{
			{Name: "category", Value: string(job.Type)},
		},
	}

	sent, err := s.emails.Send(params)
	if err != nil {
		s.logger.Error("failed to send email",
			zap.Error(err),
			zap.String("job_id", job.ID.String()),
			zap.String("type", string(job.Type)))
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Info("email sent successfully",
		zap.String("email_id", sent.Id),
		zap.String("job_id", job.ID.String()),
		zap.String("type", string(job.Type)),
		zap.Int("attempt", job.Attempts))
	return nil
}

type emailTemplate struct {
	html string
	text string
}

var emailTemplates = map[business.EmailJobType]emailTemplate{
	business.EmailJobVerificationCode: {
		html: `<p>Your student verification code is <strong>{{.code}}</strong>.</p><p>It expires at {{.expires_at}}.</p>`,
		text: "Your student verification code is {{.code}}. It expires at {{.expires_at}}.",
	},
	business.EmailJobVerificationResult: {
		html: `<p>Your student verification is now <strong>{{.status}}</strong>.</p>{{if .reason}}<p>Reason: {{.reason}}</p>{{end}}`,
		text: "Your student verification is now {{.status}}.{{if .reason}} Reason: {{.reason}}{{end}}",
	},
	business.EmailJobReverifyReminder: {
		html: `<p>Your student verification expires at {{.expires_at}}. Please verify again to keep your discounts.</p>`,
		text: "Your student verification expires at {{.expires_at}}. Please verify again to keep your discounts.",
	},
	business.EmailJobGracePeriodStarted: {
		html: `<p>Your student verification has expired. You can keep claiming discounts until {{.grace_period_ends_at}} while you re-verify.</p>`,
		text: "Your student verification has expired. You can keep claiming discounts until {{.grace_period_ends_at}} while you re-verify.",
	},
	business.EmailJobDiscountReviewed: {
		html: `<p>Your discount <strong>{{.title}}</strong> was {{.status}}.</p>{{if .reason}}<p>Reason: {{.reason}}</p>{{end}}`,
		text: "Your discount {{.title}} was {{.status}}.{{if .reason}} Reason: {{.reason}}{{end}}",
	},
	business.EmailJobRedemptionReceipt: {
		html: `<p>You redeemed <strong>{{.title}}</strong> with code {{.claim_code}}.</p><p>Purchase: {{.transaction_amount}}<br>Discount: {{.discount_amount}}{{if .cashback_amount}}<br>Cashback: {{.cashback_amount}}{{end}}<br>Total saved: {{.savings}}</p>`,
		text: "You redeemed {{.title}} with code {{.claim_code}}. Purchase: {{.transaction_amount}}, discount: {{.discount_amount}}{{if .cashback_amount}}, cashback: {{.cashback_amount}}{{end}}, total saved: {{.savings}}.",
	},
}
