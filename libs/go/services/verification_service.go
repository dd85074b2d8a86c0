package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/campusperks/campusperks-api/libs/go/constants"
	"github.com/campusperks/campusperks-api/libs/go/db"
	"github.com/campusperks/campusperks-api/libs/go/helpers"
	"github.com/campusperks/campusperks-api/libs/go/logger"
	"github.com/campusperks/campusperks-api/libs/go/types/api/params"
	"github.com/campusperks/campusperks-api/libs/go/types/business"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"
)

const verificationCodeDigits = 6

// VerificationService runs the student verification state machine.
type VerificationService struct {
	queries       db.Querier
	txRunner      helpers.TxRunner
	fraud         *FraudService
	audit         *AuditService
	notifications *NotificationService
	now           func() time.Time
	generateCode  func(int) (string, error)
	logger        *zap.Logger
}

// NewVerificationService creates a new verification service
func NewVerificationService(
	queries db.Querier,
	txRunner helpers.TxRunner,
	fraud *FraudService,
	audit *AuditService,
	notifications *NotificationService,
	opts ...Option,
) *VerificationService {
	o := applyOptions(opts)
	return &VerificationService{
		queries:       queries,
		txRunner:      txRunner,
		fraud:         fraud,
		audit:         audit,
		notifications: notifications,
		now:           o.now,
		generateCode:  helpers.GenerateNumericCode,
		logger:        logger.Log,
	}
}

// StartEmailVerification sends a one-time code to the student's university address.
func (s *VerificationService) StartEmailVerification(ctx context.Context, p params.StartEmailVerificationParams) (*db.StudentVerification, error) {
	user, err := s.getUser(ctx, p.UserID)
	if err != nil {
		return nil, err
	}
	if err := checkVerificationTransition(user, business.VerificationPendingEmail); err != nil {
		return nil, err
	}

	email := helpers.NormalizeEmail(p.StudentEmail)
	if !helpers.IsValidEmail(email) {
		return nil, helpers.NewBadRequestError("Invalid student email address")
	}
	if helpers.IsDisposableEmailDomain(helpers.EmailDomain(email)) {
		return nil, helpers.NewBadRequestError("Disposable email addresses are not accepted")
	}
	if p.UniversityID != nil {
		if _, err := s.getUniversity(ctx, *p.UniversityID); err != nil {
			return nil, err
		}
	}

	code, err := s.generateCode(verificationCodeDigits)
	if err != nil {
		return nil, fmt.Errorf("failed to generate verification code: %w", err)
	}
	expiresAt := s.now().Add(constants.VerificationCodeTTL)

	var verification db.StudentVerification
	err = s.txRunner.RunInTx(ctx, func(qtx db.Querier) error {
		var err error
		verification, err = qtx.CreateStudentVerification(ctx, db.CreateStudentVerificationParams{
			UserID:        user.ID,
			Method:        string(business.VerificationMethodEmail),
			StudentEmail:  helpers.StringToNullableText(email),
			UniversityID:  helpers.UUIDPtrToNullable(p.UniversityID),
			CodeHash:      helpers.StringToNullableText(helpers.HashCode(code)),
			CodeExpiresAt: helpers.TimeToNullableTimestamptz(expiresAt),
			Status:        string(business.VerificationPendingEmail),
		})
		if err != nil {
			return fmt.Errorf("failed to create verification: %w", err)
		}
		if _, err := qtx.StartUserEmailVerification(ctx, db.StartUserEmailVerificationParams{
			ID:           user.ID,
			StudentEmail: helpers.StringToNullableText(email),
		}); err != nil {
			return fmt.Errorf("failed to update user verification status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifications.VerificationCode(ctx, email, code, expiresAt)
	s.logger.Info("email verification started",
		zap.String("user_id", user.ID.String()),
		zap.String("verification_id", verification.ID.String()))

	return &verification, nil
}

// ConfirmEmailVerification checks the code and decides the outcome from the
// fraud score: suspend, auto-verify through a known university domain, or
// queue for manual review.
func (s *VerificationService) ConfirmEmailVerification(ctx context.Context, p params.ConfirmEmailVerificationParams) (*business.VerificationOutcome, error) {
	user, err := s.getUser(ctx, p.UserID)
	if err != nil {
		return nil, err
	}
	if user.VerificationStatus != string(business.VerificationPendingEmail) {
		return nil, helpers.NewBadRequestError("No email verification in progress")
	}

	verification, err := s.queries.GetLatestVerificationForUser(ctx, user.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, helpers.NewBadRequestError("No email verification in progress")
		}
		return nil, fmt.Errorf("failed to get verification: %w", err)
	}
	if verification.Method != string(business.VerificationMethodEmail) ||
		verification.Status != string(business.VerificationPendingEmail) {
		return nil, helpers.NewBadRequestError("No email verification in progress")
	}
	if verification.Attempts >= constants.VerificationMaxAttempts {
		return nil, helpers.NewBadRequestError("Too many failed attempts, request a new code")
	}

	now := s.now()
	if !verification.CodeExpiresAt.Valid || now.After(verification.CodeExpiresAt.Time) {
		return nil, helpers.NewBadRequestError("Verification code has expired, request a new code")
	}

	expected := []byte(verification.CodeHash.String)
	actual := []byte(helpers.HashCode(strings.TrimSpace(p.Code)))
	if subtle.ConstantTimeCompare(expected, actual) != 1 {
		updated, err := s.queries.IncrementVerificationAttempts(ctx, verification.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to record verification attempt: %w", err)
		}
		remaining := constants.VerificationMaxAttempts - int(updated.Attempts)
		if remaining < 0 {
			remaining = 0
		}
		return nil, helpers.NewBadRequestError(fmt.Sprintf("Invalid verification code, %d attempts remaining", remaining))
	}

	email := verification.StudentEmail.String
	university, err := s.universityForEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	assessment, err := s.assess(ctx, user, verification, email, university, now)
	if err != nil {
		return nil, err
	}
	score := assessment.Capped(constants.FraudScoreMax)

	switch {
	case score >= constants.FraudScoreSuspendThreshold:
		return s.suspend(ctx, user, verification, assessment, score)
	case university != nil && score < constants.FraudScoreReviewThreshold:
		return s.autoVerify(ctx, user, verification, *university, assessment, score, now)
	default:
		return s.queueForReview(ctx, user, verification, assessment, score)
	}
}

// SubmitDocument queues a document-based verification for admin review
func (s *VerificationService) SubmitDocument(ctx context.Context, p params.SubmitDocumentParams) (*db.StudentVerification, error) {
	user, err := s.getUser(ctx, p.UserID)
	if err != nil {
		return nil, err
	}
	if err := checkVerificationTransition(user, business.VerificationPendingReview); err != nil {
		return nil, err
	}

	docURL, err := url.ParseRequestURI(strings.TrimSpace(p.DocumentURL))
	if err != nil || (docURL.Scheme != "https" && docURL.Scheme != "http") || docURL.Host == "" {
		return nil, helpers.NewBadRequestError("Document URL must be an http(s) URL")
	}
	if _, err := s.getUniversity(ctx, p.UniversityID); err != nil {
		return nil, err
	}

	var verification db.StudentVerification
	err = s.txRunner.RunInTx(ctx, func(qtx db.Querier) error {
		var err error
		verification, err = qtx.CreateStudentVerification(ctx, db.CreateStudentVerificationParams{
			UserID:       user.ID,
			Method:       string(business.VerificationMethodDocument),
			UniversityID: helpers.UUIDToNullable(p.UniversityID),
			DocumentUrl:  helpers.StringToNullableText(docURL.String()),
			Status:       string(business.VerificationPendingReview),
		})
		if err != nil {
			return fmt.Errorf("failed to create verification: %w", err)
		}
		if _, err := qtx.SetUserVerificationStatus(ctx, db.SetUserVerificationStatusParams{
			VerificationStatus: string(business.VerificationPendingReview),
			FraudScore:         user.FraudScore,
			ID:                 user.ID,
		}); err != nil {
			return fmt.Errorf("failed to update user verification status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("verification document submitted",
		zap.String("user_id", user.ID.String()),
		zap.String("verification_id", verification.ID.String()))
	return &verification, nil
}

// ReviewVerification records an admin decision on a pending_review verification.
func (s *VerificationService) ReviewVerification(ctx context.Context, p params.ReviewVerificationParams) (*business.VerificationOutcome, error) {
	verification, err := s.queries.GetStudentVerification(ctx, p.VerificationID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, helpers.NewNotFoundError("Verification not found")
		}
		return nil, fmt.Errorf("failed to get verification: %w", err)
	}

	from, err := business.ParseVerificationStatus(verification.Status)
	if err != nil {
		return nil, fmt.Errorf("verification %s: %w", verification.ID, err)
	}
	to := business.VerificationRejected
	if p.Approve {
		to = business.VerificationVerified
	}
	if from != business.VerificationPendingReview || !from.CanTransitionTo(to) {
		return nil, helpers.NewBadRequestError(fmt.Sprintf("Verification is already %s", from))
	}

	reason := strings.TrimSpace(p.Reason)
	if !p.Approve && reason == "" {
		return nil, helpers.NewBadRequestError("Rejection reason is required")
	}

	user, err := s.getUser(ctx, verification.UserID)
	if err != nil {
		return nil, err
	}
	if err := checkVerificationTransition(user, to); err != nil {
		return nil, err
	}

	now := s.now()
	outcome := business.VerificationOutcome{}
	err = s.txRunner.RunInTx(ctx, func(qtx db.Querier) error {
		var err error
		outcome.Verification, err = qtx.UpdateStudentVerificationStatus(ctx, db.UpdateStudentVerificationStatusParams{
			Status:          string(to),
			FraudScore:      verification.FraudScore,
			ReviewedBy:      helpers.UUIDToNullable(p.ReviewerID),
			ReviewedAt:      helpers.TimeToNullableTimestamptz(now),
			RejectionReason: helpers.StringToNullableText(reason),
			ID:              verification.ID,
			ExpectedStatus:  string(business.VerificationPendingReview),
		})
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return helpers.NewBadRequestError("Verification is no longer pending review")
			}
			return fmt.Errorf("failed to update verification: %w", err)
		}

		if p.Approve {
			outcome.User, err = qtx.MarkUserVerified(ctx, db.MarkUserVerifiedParams{
				UniversityID:          verification.UniversityID,
				StudentEmail:          verification.StudentEmail,
				VerifiedAt:            helpers.TimeToNullableTimestamptz(now),
				VerificationExpiresAt: helpers.TimeToNullableTimestamptz(now.Add(constants.VerificationValidity)),
				FraudScore:            user.FraudScore,
				ID:                    user.ID,
			})
		} else {
			outcome.User, err = qtx.SetUserVerificationStatus(ctx, db.SetUserVerificationStatusParams{
				VerificationStatus: string(business.VerificationRejected),
				FraudScore:         user.FraudScore,
				ID:                 user.ID,
			})
		}
		if err != nil {
			return fmt.Errorf("failed to update user verification status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, p.ReviewerID, constants.AuditVerificationDecided, constants.EntityVerification, verification.ID, map[string]interface{}{
		"user_id": user.ID.String(),
		"status":  string(to),
		"reason":  reason,
	})
	s.notifications.VerificationResult(ctx, user.Email, to, reason)

	return &outcome, nil
}

// GetStatus returns the user and their latest verification attempt, if any
func (s *VerificationService) GetStatus(ctx context.Context, userID uuid.UUID) (*db.User, *db.StudentVerification, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	latest, err := s.queries.GetLatestVerificationForUser(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &user, nil, nil
		}
		return nil, nil, fmt.Errorf("failed to get latest verification: %w", err)
	}
	return &user, &latest, nil
}

// ListPendingReviews returns verifications waiting for an admin, oldest first
func (s *VerificationService) ListPendingReviews(ctx context.Context, limit, offset int32) ([]db.StudentVerification, error) {
	verifications, err := s.queries.ListPendingReviewVerifications(ctx, db.ListPendingReviewVerificationsParams{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list pending verifications: %w", err)
	}
	return verifications, nil
}

// VerificationSweepResult counts users moved by ProcessExpiry
type VerificationSweepResult struct {
	GracePeriodsStarted int
	Expired             int
	Reminded            int
}

// ProcessExpiry moves lapsed verifications into the grace period, expires ended
// grace periods and sends re-verification reminders. Per-user failures are
// logged and skipped.
func (s *VerificationService) ProcessExpiry(ctx context.Context) (VerificationSweepResult, error) {
	var result VerificationSweepResult
	now := s.now()

	lapsed, err := s.queries.ListUsersWithLapsedVerification(ctx, db.ListUsersWithLapsedVerificationParams{
		Now:      helpers.TimeToNullableTimestamptz(now),
		RowLimit: constants.SweepBatchSize,
	})
	if err != nil {
		return result, fmt.Errorf("failed to list lapsed verifications: %w", err)
	}
	graceEnds := now.Add(constants.VerificationGracePeriod)
	for _, u := range lapsed {
		if err := checkVerificationTransition(u, business.VerificationGracePeriod); err != nil {
			s.logger.Warn("skipping grace period", zap.String("user_id", u.ID.String()), zap.Error(err))
			continue
		}
		updated, err := s.queries.StartUserGracePeriod(ctx, db.StartUserGracePeriodParams{
			ID:                u.ID,
			GracePeriodEndsAt: helpers.TimeToNullableTimestamptz(graceEnds),
		})
		if err != nil {
			if !errors.Is(err, pgx.ErrNoRows) {
				s.logger.Error("failed to start grace period", zap.String("user_id", u.ID.String()), zap.Error(err))
			}
			continue
		}
		result.GracePeriodsStarted++
		s.notifications.GracePeriodStarted(ctx, updated.Email, graceEnds)
	}

	ended, err := s.queries.ListUsersWithEndedGracePeriod(ctx, db.ListUsersWithEndedGracePeriodParams{
		Now:      helpers.TimeToNullableTimestamptz(now),
		RowLimit: constants.SweepBatchSize,
	})
	if err != nil {
		return result, fmt.Errorf("failed to list ended grace periods: %w", err)
	}
	for _, u := range ended {
		if err := checkVerificationTransition(u, business.VerificationExpired); err != nil {
			s.logger.Warn("skipping verification expiry", zap.String("user_id", u.ID.String()), zap.Error(err))
			continue
		}
		if _, err := s.queries.ExpireUserVerification(ctx, u.ID); err != nil {
			if !errors.Is(err, pgx.ErrNoRows) {
				s.logger.Error("failed to expire verification", zap.String("user_id", u.ID.String()), zap.Error(err))
			}
			continue
		}
		result.Expired++
	}

	due, err := s.queries.ListUsersDueReverificationReminder(ctx, db.ListUsersDueReverificationReminderParams{
		RemindBefore: helpers.TimeToNullableTimestamptz(now.Add(constants.VerificationReminderLead)),
		RowLimit:     constants.SweepBatchSize,
	})
	if err != nil {
		return result, fmt.Errorf("failed to list reminder candidates: %w", err)
	}
	for _, u := range due {
		if err := s.queries.MarkReverificationReminderSent(ctx, db.MarkReverificationReminderSentParams{
			ID:                           u.ID,
			ReverificationReminderSentAt: helpers.TimeToNullableTimestamptz(now),
		}); err != nil {
			s.logger.Error("failed to mark reminder sent", zap.String("user_id", u.ID.String()), zap.Error(err))
			continue
		}
		result.Reminded++
		s.notifications.ReverificationReminder(ctx, u.Email, u.VerificationExpiresAt.Time)
	}

	return result, nil
}

// assess scores the risk signals for a confirmed email verification.
func (s *VerificationService) assess(ctx context.Context, user db.User, v db.StudentVerification, email string, university *db.University, now time.Time) (business.FraudAssessment, error) {
	var a business.FraudAssessment

	if university == nil || helpers.IsDisposableEmailDomain(helpers.EmailDomain(email)) {
		a.Add("unknown_domain", constants.FraudScoreUnknownDomain)
	}
	if university != nil && v.UniversityID.Valid && uuid.UUID(v.UniversityID.Bytes) != university.ID {
		a.Add("university_mismatch", constants.FraudScoreUniversityMismatch)
	}
	if extra := int(v.Attempts) - constants.FraudScoreFreeFailedAttempts; extra > 0 {
		a.Add("failed_attempts", extra*constants.FraudScorePerFailedAttempt)
	}

	duplicates, err := s.queries.CountVerifiedUsersByStudentEmail(ctx, db.CountVerifiedUsersByStudentEmailParams{
		StudentEmail:  email,
		ExcludeUserID: user.ID,
	})
	if err != nil {
		return a, fmt.Errorf("failed to check duplicate student email: %w", err)
	}
	if duplicates > 0 {
		a.Add("duplicate_student_email", constants.FraudScoreDuplicateStudentEmail)
	}

	recentClaims, err := s.queries.CountUserClaimsSince(ctx, db.CountUserClaimsSinceParams{
		UserID:    user.ID,
		ClaimedAt: helpers.TimeToNullableTimestamptz(now.Add(-24 * time.Hour)),
	})
	if err != nil {
		return a, fmt.Errorf("failed to count recent claims: %w", err)
	}
	if recentClaims > constants.FraudClaimVelocityLimit {
		a.Add("claim_velocity", constants.FraudScoreClaimVelocity)
	}

	return a, nil
}

func (s *VerificationService) suspend(ctx context.Context, user db.User, v db.StudentVerification, a business.FraudAssessment, score int) (*business.VerificationOutcome, error) {
	outcome, err := s.decide(ctx, user, v, business.VerificationSuspended, score, pgtype.UUID{}, func(qtx db.Querier) (db.User, error) {
		return qtx.SetUserVerificationStatus(ctx, db.SetUserVerificationStatusParams{
			VerificationStatus: string(business.VerificationSuspended),
			FraudScore:         int32(score),
			ID:                 user.ID,
		})
	})
	if err != nil {
		return nil, err
	}
	outcome.Assessment = a

	s.fraud.RaiseAlert(ctx, business.FraudAlertInput{
		UserID:    user.ID,
		AlertType: business.FraudAlertVerification,
		Severity:  business.FraudSeverityHigh,
		Score:     score,
		Details:   map[string]interface{}{"signals": a.Signals, "verification_id": v.ID.String()},
	})
	s.audit.Record(ctx, uuid.Nil, constants.AuditVerificationSuspended, constants.EntityVerification, v.ID, map[string]interface{}{
		"user_id": user.ID.String(),
		"score":   score,
		"signals": a.Signals,
	})
	s.notifications.VerificationResult(ctx, user.Email, business.VerificationSuspended, "")
	return outcome, nil
}

func (s *VerificationService) autoVerify(ctx context.Context, user db.User, v db.StudentVerification, university db.University, a business.FraudAssessment, score int, now time.Time) (*business.VerificationOutcome, error) {
	universityID := helpers.UUIDToNullable(university.ID)
	outcome, err := s.decide(ctx, user, v, business.VerificationVerified, score, universityID, func(qtx db.Querier) (db.User, error) {
		return qtx.MarkUserVerified(ctx, db.MarkUserVerifiedParams{
			UniversityID:          universityID,
			StudentEmail:          v.StudentEmail,
			VerifiedAt:            helpers.TimeToNullableTimestamptz(now),
			VerificationExpiresAt: helpers.TimeToNullableTimestamptz(now.Add(constants.VerificationValidity)),
			FraudScore:            int32(score),
			ID:                    user.ID,
		})
	})
	if err != nil {
		return nil, err
	}
	outcome.Assessment = a

	s.logger.Info("student auto-verified",
		zap.String("user_id", user.ID.String()),
		zap.String("university_id", university.ID.String()),
		zap.Int("fraud_score", score))
	s.notifications.VerificationResult(ctx, user.Email, business.VerificationVerified, "")
	return outcome, nil
}

func (s *VerificationService) queueForReview(ctx context.Context, user db.User, v db.StudentVerification, a business.FraudAssessment, score int) (*business.VerificationOutcome, error) {
	outcome, err := s.decide(ctx, user, v, business.VerificationPendingReview, score, pgtype.UUID{}, func(qtx db.Querier) (db.User, error) {
		return qtx.SetUserVerificationStatus(ctx, db.SetUserVerificationStatusParams{
			VerificationStatus: string(business.VerificationPendingReview),
			FraudScore:         int32(score),
			ID:                 user.ID,
		})
	})
	if err != nil {
		return nil, err
	}
	outcome.Assessment = a

	if score >= constants.FraudScoreReviewThreshold {
		s.fraud.RaiseAlert(ctx, business.FraudAlertInput{
			UserID:    user.ID,
			AlertType: business.FraudAlertVerification,
			Severity:  business.FraudSeverityMedium,
			Score:     score,
			Details:   map[string]interface{}{"signals": a.Signals, "verification_id": v.ID.String()},
		})
	}
	return outcome, nil
}

// decide moves the verification record out of pending_email and applies the
// matching user update in one transaction.
func (s *VerificationService) decide(
	ctx context.Context,
	user db.User,
	v db.StudentVerification,
	to business.VerificationStatus,
	score int,
	universityID pgtype.UUID,
	updateUser func(qtx db.Querier) (db.User, error),
) (*business.VerificationOutcome, error) {
	if !business.VerificationPendingEmail.CanTransitionTo(to) {
		return nil, fmt.Errorf("invalid verification transition %s -> %s", business.VerificationPendingEmail, to)
	}

	outcome := &business.VerificationOutcome{}
	err := s.txRunner.RunInTx(ctx, func(qtx db.Querier) error {
		var err error
		outcome.Verification, err = qtx.UpdateStudentVerificationStatus(ctx, db.UpdateStudentVerificationStatusParams{
			Status:         string(to),
			FraudScore:     int32(score),
			UniversityID:   universityID,
			ID:             v.ID,
			ExpectedStatus: string(business.VerificationPendingEmail),
		})
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return helpers.NewConflictError("Verification was already completed")
			}
			return fmt.Errorf("failed to update verification: %w", err)
		}
		outcome.User, err = updateUser(qtx)
		if err != nil {
			return fmt.Errorf("failed to update user verification status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("email verification decided",
		zap.String("user_id", user.ID.String()),
		zap.String("verification_id", v.ID.String()),
		zap.String("status", string(to)),
		zap.Int("fraud_score", score))
	return outcome, nil
}

func (s *VerificationService) universityForEmail(ctx context.Context, email string) (*db.University, error) {
	for _, domain := range helpers.ParentDomains(helpers.EmailDomain(email)) {
		university, err := s.queries.GetUniversityByEmailDomain(ctx, domain)
		if err == nil {
			return &university, nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("failed to look up university domain: %w", err)
		}
	}
	return nil, nil
}

func (s *VerificationService) getUser(ctx context.Context, userID uuid.UUID) (db.User, error) {
	user, err := s.queries.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return db.User{}, helpers.NewNotFoundError("User not found")
		}
		return db.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (s *VerificationService) getUniversity(ctx context.Context, universityID uuid.UUID) (db.University, error) {
	university, err := s.queries.GetUniversityByID(ctx, universityID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return db.University{}, helpers.NewNotFoundError("University not found")
		}
		return db.University{}, fmt.Errorf("failed to get university: %w", err)
	}
	return university, nil
}

func checkVerificationTransition(user db.User, to business.VerificationStatus) error {
	from, err := business.ParseVerificationStatus(user.VerificationStatus)
	if err != nil {
		return fmt.Errorf("user %s: %w", user.ID, err)
	}
	if from == business.VerificationSuspended {
		return helpers.NewForbiddenError("Account is suspended")
	}
	if !from.CanTransitionTo(to) {
		return helpers.NewBadRequestError(fmt.Sprintf("Cannot move verification from %s to %s", from, to))
	}
	return nil
}
