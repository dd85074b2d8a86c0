package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/campusperks/campusperks-api/libs/go/db"
	"github.com/campusperks/campusperks-api/libs/go/helpers"
	"github.com/campusperks/campusperks-api/libs/go/mocks"
	"github.com/campusperks/campusperks-api/libs/go/services"
	"github.com/campusperks/campusperks-api/libs/go/testutil"
	"github.com/campusperks/campusperks-api/libs/go/types/api/params"
	"github.com/campusperks/campusperks-api/libs/go/types/business"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testCode = "482913"

type verificationFixture struct {
	querier *mocks.MockQuerier
	queue   *mocks.MockJobQueue
	service *services.VerificationService
}

func newVerificationFixture(t *testing.T) *verificationFixture {
	ctrl := gomock.NewController(t)
	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockQueue := mocks.NewMockJobQueue(ctrl)
	clock := services.WithClock(testutil.Clock(testutil.FixedNow))

	audit := services.NewAuditService(mockQuerier)
	fraud := services.NewFraudService(mockQuerier, audit, clock)

	return &verificationFixture{
		querier: mockQuerier,
		queue:   mockQueue,
		service: services.NewVerificationService(mockQuerier, helpers.NewQuerierTxRunner(mockQuerier), fraud, audit,
			services.NewNotificationService(mockQueue), clock),
	}
}

func pendingEmailVerification(userID uuid.UUID, email string, attempts int32) db.StudentVerification {
	return db.StudentVerification{
		ID:            uuid.New(),
		UserID:        userID,
		Method:        "email",
		StudentEmail:  text(email),
		CodeHash:      text(helpers.HashCode(testCode)),
		CodeExpiresAt: helpers.TimeToNullableTimestamptz(testutil.FixedNow.Add(10 * time.Minute)),
		Attempts:      attempts,
		Status:        "pending_email",
	}
}

// expectRiskLookups answers the domain, duplicate and velocity queries made while scoring.
func (f *verificationFixture) expectRiskLookups(university *db.University, universityDomain string, duplicates, recentClaims int64) {
	f.querier.EXPECT().GetUniversityByEmailDomain(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, domain string) (db.University, error) {
			if university != nil && domain == universityDomain {
				return *university, nil
			}
			return db.University{}, pgx.ErrNoRows
		}).AnyTimes()
	f.querier.EXPECT().CountVerifiedUsersByStudentEmail(gomock.Any(), gomock.Any()).Return(duplicates, nil)
	f.querier.EXPECT().CountUserClaimsSince(gomock.Any(), gomock.Any()).Return(recentClaims, nil)
}

func TestVerificationService_StartEmailVerification(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a hashed code and emails it", func(t *testing.T) {
		f := newVerificationFixture(t)
		user := testutil.CreateTestUser("student", "unverified")

		var storedHash string
		f.querier.EXPECT().GetUserByID(ctx, user.ID).Return(user, nil)
		f.querier.EXPECT().CreateStudentVerification(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, arg db.CreateStudentVerificationParams) (db.StudentVerification, error) {
				assert.Equal(t, "jo@cs.ox.ac.uk", arg.StudentEmail.String)
				assert.Equal(t, "pending_email", arg.Status)
				assert.Equal(t, testutil.FixedNow.Add(30*time.Minute), arg.CodeExpiresAt.Time)
				storedHash = arg.CodeHash.String
				return db.StudentVerification{ID: uuid.New(), UserID: user.ID, Status: arg.Status}, nil
			})
		f.querier.EXPECT().StartUserEmailVerification(ctx, gomock.Any()).Return(user, nil)
		f.queue.EXPECT().Enqueue(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, job business.EmailJob) error {
				assert.Equal(t, business.EmailJobVerificationCode, job.Type)
				assert.Equal(t, "jo@cs.ox.ac.uk", job.To)
				assert.Len(t, job.Data["code"], 6)
				assert.Equal(t, storedHash, helpers.HashCode(job.Data["code"]))
				return nil
			})

		v, err := f.service.StartEmailVerification(ctx, params.StartEmailVerificationParams{
			UserID:       user.ID,
			StudentEmail: " Jo@CS.Ox.ac.uk ",
		})
		require.NoError(t, err)
		assert.Equal(t, "pending_email", v.Status)
	})

	t.Run("suspended accounts cannot restart", func(t *testing.T) {
		f := newVerificationFixture(t)
		user := testutil.CreateTestUser("student", "suspended")
		f.querier.EXPECT().GetUserByID(ctx, user.ID).Return(user, nil)

		_, err := f.service.StartEmailVerification(ctx, params.StartEmailVerificationParams{UserID: user.ID, StudentEmail: "jo@ox.ac.uk"})
		assert.EqualError(t, err, "Account is suspended")
		assert.Equal(t, helpers.KindForbidden, helpers.ErrorKindOf(err))
	})

	t.Run("pending review cannot restart by email", func(t *testing.T) {
		f := newVerificationFixture(t)
		user := testutil.CreateTestUser("student", "pending_review")
		f.querier.EXPECT().GetUserByID(ctx, user.ID).Return(user, nil)

		_, err := f.service.StartEmailVerification(ctx, params.StartEmailVerificationParams{UserID: user.ID, StudentEmail: "jo@ox.ac.uk"})
		assert.Equal(t, helpers.KindBadRequest, helpers.ErrorKindOf(err))
	})

	t.Run("disposable domains rejected", func(t *testing.T) {
		f := newVerificationFixture(t)
		user := testutil.CreateTestUser("student", "unverified")
		f.querier.EXPECT().GetUserByID(ctx, user.ID).Return(user, nil)

		_, err := f.service.StartEmailVerification(ctx, params.StartEmailVerificationParams{UserID: user.ID, StudentEmail: "jo@mailinator.com"})
		assert.EqualError(t, err, "Disposable email addresses are not accepted")
	})

	t.Run("unknown university", func(t *testing.T) {
		f := newVerificationFixture(t)
		user := testutil.CreateTestUser("student", "unverified")
		universityID := uuid.New()
		f.querier.EXPECT().GetUserByID(ctx, user.ID).Return(user, nil)
		f.querier.EXPECT().GetUniversityByID(ctx, universityID).Return(db.University{}, pgx.ErrNoRows)

		_, err := f.service.StartEmailVerification(ctx, params.StartEmailVerificationParams{
			UserID: user.ID, StudentEmail: "jo@ox.ac.uk", UniversityID: &universityID,
		})
		assert.Equal(t, helpers.KindNotFound, helpers.ErrorKindOf(err))
	})
}

func TestVerificationService_ConfirmEmailVerification(t *testing.T) {
	ctx := context.Background()
	oxford := testutil.CreateTestUniversity("University of Oxford", "ox.ac.uk")

	t.Run("known domain with low risk auto-verifies", func(t *testing.T) {
		f := newVerificationFixture(t)
		user := testutil.CreateTestUser("student", "pending_email")
		verification := pendingEmailVerification(user.ID, "jo@cs.ox.ac.uk", 0)

		f.querier.EXPECT().GetUserByID(ctx, user.ID).Return(user, nil)
		f.querier.EXPECT().GetLatestVerificationForUser(ctx, user.ID).Return(verification, nil)
		f.expectRiskLookups(&oxford, "ox.ac.uk", 0, 0)
		f.querier.EXPECT().UpdateStudentVerificationStatus(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, arg db.UpdateStudentVerificationStatusParams) (db.StudentVerification, error) {
				assert.Equal(t, "verified", arg.Status)
				assert.Equal(t, "pending_email", arg.ExpectedStatus)
				assert.Equal(t, helpers.UUIDToNullable(oxford.ID), arg.UniversityID)
				v := verification
				v.Status = arg.Status
				return v, nil
			})
		f.querier.EXPECT().MarkUserVerified(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, arg db.MarkUserVerifiedParams) (db.User, error) {
				assert.Equal(t, testutil.FixedNow.Add(365*24*time.Hour), arg.VerificationExpiresAt.Time)
				assert.Equal(t, int32(0), arg.FraudScore)
				u := user
				u.VerificationStatus = "verified"
				return u, nil
			})
		f.queue.EXPECT().Enqueue(ctx, gomock.Any()).Return(nil)

		outcome, err := f.service.ConfirmEmailVerification(ctx, params.ConfirmEmailVerificationParams{UserID: user.ID, Code: " " + testCode})
		require.NoError(t, err)
		assert.Equal(t, "verified", outcome.User.VerificationStatus)
		assert.Equal(t, 0, outcome.Assessment.Score)
	})

	t.Run("high risk suspends and raises a high alert", func(t *testing.T) {
		f := newVerificationFixture(t)
		user := testutil.CreateTestUser("student", "pending_email")
		verification := pendingEmailVerification(user.ID, "jo@example.org", 4)

		f.querier.EXPECT().GetUserByID(ctx, user.ID).Return(user, nil)
		f.querier.EXPECT().GetLatestVerificationForUser(ctx, user.ID).Return(verification, nil)
		// unknown domain 25 + duplicate email 40 + two extra attempts 20
		f.expectRiskLookups(nil, "", 1, 0)
		f.querier.EXPECT().UpdateStudentVerificationStatus(ctx, gomock.Any()).Return(verification, nil)
		f.querier.EXPECT().SetUserVerificationStatus(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, arg db.SetUserVerificationStatusParams) (db.User, error) {
				assert.Equal(t, "suspended", arg.VerificationStatus)
				assert.Equal(t, int32(85), arg.FraudScore)
				return user, nil
			})
		f.querier.EXPECT().CreateFraudAlert(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, arg db.CreateFraudAlertParams) (db.FraudAlert, error) {
				assert.Equal(t, "high", arg.Severity)
				assert.Equal(t, business.FraudAlertVerification, arg.AlertType)
				return db.FraudAlert{ID: uuid.New()}, nil
			})
		f.querier.EXPECT().CreateAuditLog(ctx, gomock.Any()).Return(nil)
		f.queue.EXPECT().Enqueue(ctx, gomock.Any()).Return(nil)

		outcome, err := f.service.ConfirmEmailVerification(ctx, params.ConfirmEmailVerificationParams{UserID: user.ID, Code: testCode})
		require.NoError(t, err)
		assert.Equal(t, 85, outcome.Assessment.Score)
		assert.ElementsMatch(t, []string{"unknown_domain", "failed_attempts", "duplicate_student_email"}, outcome.Assessment.Signals)
	})

	t.Run("medium risk is queued for review with an alert", func(t *testing.T) {
		f := newVerificationFixture(t)
		user := testutil.CreateTestUser("student", "pending_email")
		verification := pendingEmailVerification(user.ID, "jo@example.org", 0)

		f.querier.EXPECT().GetUserByID(ctx, user.ID).Return(user, nil)
		f.querier.EXPECT().GetLatestVerificationForUser(ctx, user.ID).Return(verification, nil)
		f.expectRiskLookups(nil, "", 1, 0)
		f.querier.EXPECT().UpdateStudentVerificationStatus(ctx, gomock.Any()).Return(verification, nil)
		f.querier.EXPECT().SetUserVerificationStatus(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, arg db.SetUserVerificationStatusParams) (db.User, error) {
				assert.Equal(t, "pending_review", arg.VerificationStatus)
				return user, nil
			})
		f.querier.EXPECT().CreateFraudAlert(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, arg db.CreateFraudAlertParams) (db.FraudAlert, error) {
				assert.Equal(t, "medium", arg.Severity)
				assert.Equal(t, int32(65), arg.Score)
				return db.FraudAlert{ID: uuid.New()}, nil
			})

		_, err := f.service.ConfirmEmailVerification(ctx, params.ConfirmEmailVerificationParams{UserID: user.ID, Code: testCode})
		require.NoError(t, err)
	})

	t.Run("unknown domain with low risk goes to review silently", func(t *testing.T) {
		f := newVerificationFixture(t)
		user := testutil.CreateTestUser("student", "pending_email")
		verification := pendingEmailVerification(user.ID, "jo@college.example", 0)

		f.querier.EXPECT().GetUserByID(ctx, user.ID).Return(user, nil)
		f.querier.EXPECT().GetLatestVerificationForUser(ctx, user.ID).Return(verification, nil)
		f.expectRiskLookups(nil, "", 0, 0)
		f.querier.EXPECT().UpdateStudentVerificationStatus(ctx, gomock.Any()).Return(verification, nil)
		f.querier.EXPECT().SetUserVerificationStatus(ctx, gomock.Any()).Return(user, nil)

		outcome, err := f.service.ConfirmEmailVerification(ctx, params.ConfirmEmailVerificationParams{UserID: user.ID, Code: testCode})
		require.NoError(t, err)
		assert.Equal(t, 25, outcome.Assessment.Score)
	})

	t.Run("wrong code counts an attempt", func(t *testing.T) {
		f := newVerificationFixture(t)
		user := testutil.CreateTestUser("student", "pending_email")
		verification := pendingEmailVerification(user.ID, "jo@ox.ac.uk", 2)

		f.querier.EXPECT().GetUserByID(ctx, user.ID).Return(user, nil)
		f.querier.EXPECT().GetLatestVerificationForUser(ctx, user.ID).Return(verification, nil)
		f.querier.EXPECT().IncrementVerificationAttempts(ctx, verification.ID).Return(db.StudentVerification{Attempts: 3}, nil)

		_, err := f.service.ConfirmEmailVerification(ctx, params.ConfirmEmailVerificationParams{UserID: user.ID, Code: "000000"})
		assert.EqualError(t, err, "Invalid verification code, 2 attempts remaining")
	})

	t.Run("too many attempts", func(t *testing.T) {
		f := newVerificationFixture(t)
		user := testutil.CreateTestUser("student", "pending_email")

		f.querier.EXPECT().GetUserByID(ctx, user.ID).Return(user, nil)
		f.querier.EXPECT().GetLatestVerificationForUser(ctx, user.ID).Return(pendingEmailVerification(user.ID, "jo@ox.ac.uk", 5), nil)

		_, err := f.service.ConfirmEmailVerification(ctx, params.ConfirmEmailVerificationParams{UserID: user.ID, Code: testCode})
		assert.EqualError(t, err, "Too many failed attempts, request a new code")
	})

	t.Run("expired code", func(t *testing.T) {
		f := newVerificationFixture(t)
		user := testutil.CreateTestUser("student", "pending_email")
		verification := pendingEmailVerification(user.ID, "jo@ox.ac.uk", 0)
		verification.CodeExpiresAt = helpers.TimeToNullableTimestamptz(testutil.FixedNow.Add(-time.Second))

		f.querier.EXPECT().GetUserByID(ctx, user.ID).Return(user, nil)
		f.querier.EXPECT().GetLatestVerificationForUser(ctx, user.ID).Return(verification, nil)

		_, err := f.service.ConfirmEmailVerification(ctx, params.ConfirmEmailVerificationParams{UserID: user.ID, Code: testCode})
		assert.EqualError(t, err, "Verification code has expired, request a new code")
	})

	t.Run("concurrent confirmation loses the race", func(t *testing.T) {
		f := newVerificationFixture(t)
		user := testutil.CreateTestUser("student", "pending_email")
		verification := pendingEmailVerification(user.ID, "jo@ox.ac.uk", 0)

		f.querier.EXPECT().GetUserByID(ctx, user.ID).Return(user, nil)
		f.querier.EXPECT().GetLatestVerificationForUser(ctx, user.ID).Return(verification, nil)
		f.expectRiskLookups(&oxford, "ox.ac.uk", 0, 0)
		f.querier.EXPECT().UpdateStudentVerificationStatus(ctx, gomock.Any()).Return(db.StudentVerification{}, pgx.ErrNoRows)

		_, err := f.service.ConfirmEmailVerification(ctx, params.ConfirmEmailVerificationParams{UserID: user.ID, Code: testCode})
		assert.Equal(t, helpers.KindConflict, helpers.ErrorKindOf(err))
	})

	t.Run("no verification in progress", func(t *testing.T) {
		f := newVerificationFixture(t)
		user := testutil.CreateTestUser("student", "verified")
		f.querier.EXPECT().GetUserByID(ctx, user.ID).Return(user, nil)

		_, err := f.service.ConfirmEmailVerification(ctx, params.ConfirmEmailVerificationParams{UserID: user.ID, Code: testCode})
		assert.EqualError(t, err, "No email verification in progress")
	})
}

func TestVerificationService_SubmitDocument(t *testing.T) {
	ctx := context.Background()
	university := testutil.CreateTestUniversity("University of Leeds", "leeds.ac.uk")

	t.Run("queues for review", func(t *testing.T) {
		f := newVerificationFixture(t)
		user := testutil.CreateTestUser("student", "rejected")

		f.querier.EXPECT().GetUserByID(ctx, user.ID).Return(user, nil)
		f.querier.EXPECT().GetUniversityByID(ctx, university.ID).Return(university, nil)
		f.querier.EXPECT().CreateStudentVerification(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, arg db.CreateStudentVerificationParams) (db.StudentVerification, error) {
				assert.Equal(t, "document", arg.Method)
				assert.Equal(t, "pending_review", arg.Status)
				assert.Equal(t, "https://files.example.com/id.pdf", arg.DocumentUrl.String)
				return db.StudentVerification{ID: uuid.New(), Status: arg.Status}, nil
			})
		f.querier.EXPECT().SetUserVerificationStatus(ctx, gomock.Any()).Return(user, nil)

		v, err := f.service.SubmitDocument(ctx, params.SubmitDocumentParams{
			UserID:       user.ID,
			DocumentURL:  "https://files.example.com/id.pdf",
			UniversityID: university.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, "pending_review", v.Status)
	})

	t.Run("rejects non http urls", func(t *testing.T) {
		f := newVerificationFixture(t)
		user := testutil.CreateTestUser("student", "unverified")
		f.querier.EXPECT().GetUserByID(ctx, user.ID).Return(user, nil)

		_, err := f.service.SubmitDocument(ctx, params.SubmitDocumentParams{
			UserID: user.ID, DocumentURL: "file:///etc/passwd", UniversityID: university.ID,
		})
		assert.EqualError(t, err, "Document URL must be an http(s) URL")
	})
}

func TestVerificationService_ReviewVerification(t *testing.T) {
	ctx := context.Background()
	adminID := uuid.New()

	pendingReview := func(userID uuid.UUID) db.StudentVerification {
		return db.StudentVerification{
			ID:           uuid.New(),
			UserID:       userID,
			Method:       "document",
			UniversityID: helpers.UUIDToNullable(uuid.New()),
			Status:       "pending_review",
		}
	}

	t.Run("approve verifies the user", func(t *testing.T) {
		f := newVerificationFixture(t)
		user := testutil.CreateTestUser("student", "pending_review")
		v := pendingReview(user.ID)

		f.querier.EXPECT().GetStudentVerification(ctx, v.ID).Return(v, nil)
		f.querier.EXPECT().GetUserByID(ctx, user.ID).Return(user, nil)
		f.querier.EXPECT().UpdateStudentVerificationStatus(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, arg db.UpdateStudentVerificationStatusParams) (db.StudentVerification, error) {
				assert.Equal(t, "verified", arg.Status)
				assert.Equal(t, "pending_review", arg.ExpectedStatus)
				assert.Equal(t, helpers.UUIDToNullable(adminID), arg.ReviewedBy)
				return v, nil
			})
		f.querier.EXPECT().MarkUserVerified(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, arg db.MarkUserVerifiedParams) (db.User, error) {
				assert.Equal(t, v.UniversityID, arg.UniversityID)
				u := user
				u.VerificationStatus = "verified"
				return u, nil
			})
		f.querier.EXPECT().CreateAuditLog(ctx, gomock.Any()).Return(nil)
		f.queue.EXPECT().Enqueue(ctx, gomock.Any()).Return(nil)

		outcome, err := f.service.ReviewVerification(ctx, params.ReviewVerificationParams{VerificationID: v.ID, ReviewerID: adminID, Approve: true})
		require.NoError(t, err)
		assert.Equal(t, "verified", outcome.User.VerificationStatus)
	})

	t.Run("reject requires a reason", func(t *testing.T) {
		f := newVerificationFixture(t)
		v := pendingReview(uuid.New())
		f.querier.EXPECT().GetStudentVerification(ctx, v.ID).Return(v, nil)

		_, err := f.service.ReviewVerification(ctx, params.ReviewVerificationParams{VerificationID: v.ID, ReviewerID: adminID})
		assert.EqualError(t, err, "Rejection reason is required")
	})

	t.Run("already decided", func(t *testing.T) {
		f := newVerificationFixture(t)
		v := pendingReview(uuid.New())
		v.Status = "verified"
		f.querier.EXPECT().GetStudentVerification(ctx, v.ID).Return(v, nil)

		_, err := f.service.ReviewVerification(ctx, params.ReviewVerificationParams{VerificationID: v.ID, ReviewerID: adminID, Approve: true})
		assert.EqualError(t, err, "Verification is already verified")
	})

	t.Run("unknown verification", func(t *testing.T) {
		f := newVerificationFixture(t)
		id := uuid.New()
		f.querier.EXPECT().GetStudentVerification(ctx, id).Return(db.StudentVerification{}, pgx.ErrNoRows)

		_, err := f.service.ReviewVerification(ctx, params.ReviewVerificationParams{VerificationID: id, ReviewerID: adminID, Approve: true})
		assert.Equal(t, helpers.KindNotFound, helpers.ErrorKindOf(err))
	})
}

func TestVerificationService_GetStatus_NoAttempts(t *testing.T) {
	f := newVerificationFixture(t)
	ctx := context.Background()
	user := testutil.CreateTestUser("student", "unverified")

	f.querier.EXPECT().GetUserByID(ctx, user.ID).Return(user, nil)
	f.querier.EXPECT().GetLatestVerificationForUser(ctx, user.ID).Return(db.StudentVerification{}, pgx.ErrNoRows)

	got, latest, err := f.service.GetStatus(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Nil(t, latest)
}

func TestVerificationService_ProcessExpiry(t *testing.T) {
	f := newVerificationFixture(t)
	ctx := context.Background()
	now := testutil.FixedNow

	lapsed := testutil.CreateTestUser("student", "verified")
	endedA := testutil.CreateTestUser("student", "grace_period")
	endedB := testutil.CreateTestUser("student", "grace_period")
	due := testutil.CreateTestUser("student", "verified")
	due.VerificationExpiresAt = helpers.TimeToNullableTimestamptz(now.Add(20 * 24 * time.Hour))

	f.querier.EXPECT().ListUsersWithLapsedVerification(ctx, gomock.Any()).Return([]db.User{lapsed}, nil)
	f.querier.EXPECT().StartUserGracePeriod(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.StartUserGracePeriodParams) (db.User, error) {
			assert.Equal(t, now.Add(14*24*time.Hour), arg.GracePeriodEndsAt.Time)
			return lapsed, nil
		})
	f.querier.EXPECT().ListUsersWithEndedGracePeriod(ctx, gomock.Any()).Return([]db.User{endedA, endedB}, nil)
	f.querier.EXPECT().ExpireUserVerification(ctx, endedA.ID).Return(endedA, nil)
	f.querier.EXPECT().ExpireUserVerification(ctx, endedB.ID).Return(db.User{}, errors.New("lock timeout"))
	f.querier.EXPECT().ListUsersDueReverificationReminder(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.ListUsersDueReverificationReminderParams) ([]db.User, error) {
			assert.Equal(t, now.Add(30*24*time.Hour), arg.RemindBefore.Time)
			return []db.User{due}, nil
		})
	f.querier.EXPECT().MarkReverificationReminderSent(ctx, gomock.Any()).Return(nil)

	var jobs []business.EmailJobType
	f.queue.EXPECT().Enqueue(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, job business.EmailJob) error {
			jobs = append(jobs, job.Type)
			return nil
		}).Times(2)

	result, err := f.service.ProcessExpiry(ctx)
	require.NoError(t, err)
	assert.Equal(t, services.VerificationSweepResult{GracePeriodsStarted: 1, Expired: 1, Reminded: 1}, result)
	assert.Equal(t, []business.EmailJobType{business.EmailJobGracePeriodStarted, business.EmailJobReverifyReminder}, jobs)
}

func TestVerificationService_ProcessExpiry_SkipsDisallowedTransitions(t *testing.T) {
	f := newVerificationFixture(t)
	ctx := context.Background()

	suspended := testutil.CreateTestUser("student", "suspended")
	rejected := testutil.CreateTestUser("student", "rejected")

	f.querier.EXPECT().ListUsersWithLapsedVerification(ctx, gomock.Any()).Return([]db.User{suspended}, nil)
	f.querier.EXPECT().ListUsersWithEndedGracePeriod(ctx, gomock.Any()).Return([]db.User{rejected}, nil)
	f.querier.EXPECT().ListUsersDueReverificationReminder(ctx, gomock.Any()).Return(nil, nil)
	f.querier.EXPECT().StartUserGracePeriod(gomock.Any(), gomock.Any()).Times(0)
	f.querier.EXPECT().ExpireUserVerification(gomock.Any(), gomock.Any()).Times(0)

	result, err := f.service.ProcessExpiry(ctx)
	require.NoError(t, err)
	assert.Equal(t, services.VerificationSweepResult{}, result)
}
