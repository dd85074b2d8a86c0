package services_test

import (
	"context"
	"encoding/json"
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
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestScoreDiscount(t *testing.T) {
	now := testutil.FixedNow
	categoryID := uuid.New()
	brandID := uuid.New()
	affinity := services.BuildAffinity([]db.ListRecentUserClaimAffinityRow{
		{CategoryID: pgtype.UUID{Bytes: categoryID, Valid: true}},
		{BrandID: pgtype.UUID{Bytes: brandID, Valid: true}},
	})

	tests := []struct {
		name     string
		discount func(d *db.Discount)
		rating   float64
		location *business.Location
		want     float64
	}{
		{name: "value and rating only", rating: 4, want: 0.3*20 + 20*4},
		{name: "featured", discount: func(d *db.Discount) { d.IsFeatured = true }, want: 6 + 10},
		{
			name:     "expiring soon",
			discount: func(d *db.Discount) { d.EndDate = helpers.TimeToNullableTimestamptz(now.Add(72 * time.Hour)) },
			want:     6 + 15,
		},
		{
			name:     "category affinity",
			discount: func(d *db.Discount) { d.CategoryID = pgtype.UUID{Bytes: categoryID, Valid: true} },
			want:     6 + 15,
		},
		{
			name:     "brand affinity",
			discount: func(d *db.Discount) { d.BrandID = pgtype.UUID{Bytes: brandID, Valid: true} },
			want:     6 + 10,
		},
		{
			name: "nearby",
			discount: func(d *db.Discount) {
				d.Latitude = helpers.Float64Ptr(51.5080)
				d.Longitude = helpers.Float64Ptr(-0.1281)
			},
			location: &business.Location{Latitude: 51.5155, Longitude: -0.1410},
			want:     6 + 20,
		},
		{
			name: "far away",
			discount: func(d *db.Discount) {
				d.Latitude = helpers.Float64Ptr(51.5080)
				d.Longitude = helpers.Float64Ptr(-0.1281)
			},
			location: &business.Location{Latitude: 52.2053, Longitude: 0.1218},
			want:     6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := testutil.CreateTestDiscount(uuid.New(), now)
			if tt.discount != nil {
				tt.discount(&d)
			}
			assert.InDelta(t, tt.want, services.ScoreDiscount(d, tt.rating, affinity, tt.location, now), 1e-9)
		})
	}
}

func TestRankDiscounts_StableAndTruncated(t *testing.T) {
	a, b, c := db.Discount{Title: "a"}, db.Discount{Title: "b"}, db.Discount{Title: "c"}
	ranked := services.RankDiscounts([]business.ScoredDiscount{
		{Discount: a, Score: 10},
		{Discount: b, Score: 30},
		{Discount: c, Score: 10},
	}, 2)

	require.Len(t, ranked, 2)
	assert.Equal(t, "b", ranked[0].Title)
	assert.Equal(t, "a", ranked[1].Title)
}

func TestRecommendationService_Recommend(t *testing.T) {
	ctx := context.Background()
	now := testutil.FixedNow
	student := testutil.CreateVerifiedStudent(uuid.New(), 2, now)

	t.Run("featured outranks an otherwise identical discount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQuerier := mocks.NewMockQuerier(ctrl)
		mockCache := mocks.NewMockCache(ctrl)
		service := services.NewRecommendationService(mockQuerier, mockCache, services.WithClock(testutil.Clock(now)))

		plain := testutil.CreateTestDiscount(uuid.New(), now)
		featured := testutil.CreateTestDiscount(uuid.New(), now)
		featured.IsFeatured = true

		mockCache.EXPECT().Get(ctx, gomock.Any()).Return(nil, false, nil)
		mockQuerier.EXPECT().GetUserByID(ctx, student.ID).Return(student, nil)
		mockQuerier.EXPECT().ListRecentUserClaimAffinity(ctx, db.ListRecentUserClaimAffinityParams{UserID: student.ID, Limit: 50}).Return(nil, nil)
		mockQuerier.EXPECT().ListRecommendationCandidates(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, arg db.ListRecommendationCandidatesParams) ([]db.ListRecommendationCandidatesRow, error) {
				assert.Equal(t, int32(20), arg.RowLimit)
				assert.Equal(t, student.UniversityID, arg.UniversityID)
				return []db.ListRecommendationCandidatesRow{
					{Discount: plain, BrandRating: 4},
					{Discount: featured, BrandRating: 4},
				}, nil
			})
		mockCache.EXPECT().Set(ctx, gomock.Any(), gomock.Any(), 5*time.Minute).Return(nil)

		got, err := service.Recommend(ctx, params.RecommendParams{UserID: student.ID})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, featured.ID, got[0].ID)
	})

	t.Run("cache hit skips the database", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQuerier := mocks.NewMockQuerier(ctrl)
		mockCache := mocks.NewMockCache(ctrl)
		service := services.NewRecommendationService(mockQuerier, mockCache, services.WithClock(testutil.Clock(now)))

		cached := []db.Discount{testutil.CreateTestDiscount(uuid.New(), now)}
		raw, err := json.Marshal(cached)
		require.NoError(t, err)

		key := "recommendations:" + student.ID.String() + ":51.51,-0.13:5"
		mockCache.EXPECT().Get(ctx, key).Return(raw, true, nil)

		got, err := service.Recommend(ctx, params.RecommendParams{
			UserID:   student.ID,
			Location: &business.Location{Latitude: 51.5080, Longitude: -0.1281},
			Limit:    5,
		})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, cached[0].ID, got[0].ID)
	})

	t.Run("cache errors fall through to the database", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQuerier := mocks.NewMockQuerier(ctrl)
		mockCache := mocks.NewMockCache(ctrl)
		service := services.NewRecommendationService(mockQuerier, mockCache, services.WithClock(testutil.Clock(now)))

		mockCache.EXPECT().Get(ctx, gomock.Any()).Return(nil, false, errors.New("redis down"))
		mockQuerier.EXPECT().GetUserByID(ctx, student.ID).Return(student, nil)
		mockQuerier.EXPECT().ListRecentUserClaimAffinity(ctx, gomock.Any()).Return(nil, nil)
		mockQuerier.EXPECT().ListRecommendationCandidates(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, arg db.ListRecommendationCandidatesParams) ([]db.ListRecommendationCandidatesRow, error) {
				// limit clamps to 50
				assert.Equal(t, int32(100), arg.RowLimit)
				return nil, nil
			})
		mockCache.EXPECT().Set(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

		got, err := service.Recommend(ctx, params.RecommendParams{UserID: student.ID, Limit: 500})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("invalid coordinates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := services.NewRecommendationService(mocks.NewMockQuerier(ctrl), mocks.NewMockCache(ctrl))

		_, err := service.Recommend(ctx, params.RecommendParams{UserID: student.ID, Location: &business.Location{Longitude: 200}})
		assert.Equal(t, helpers.KindBadRequest, helpers.ErrorKindOf(err))
	})
}
