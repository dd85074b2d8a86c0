package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/campusperks/campusperks-api/libs/go/constants"
	"github.com/campusperks/campusperks-api/libs/go/db"
	"github.com/campusperks/campusperks-api/libs/go/helpers"
	"github.com/campusperks/campusperks-api/libs/go/interfaces"
	"github.com/campusperks/campusperks-api/libs/go/logger"
	"github.com/campusperks/campusperks-api/libs/go/types/api/params"
	"github.com/campusperks/campusperks-api/libs/go/types/business"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// RecommendationService ranks live discounts for a student.
type RecommendationService struct {
	queries db.Querier
	cache   interfaces.Cache
	now     func() time.Time
	logger  *zap.Logger
}

// NewRecommendationService creates a new recommendation service
func NewRecommendationService(queries db.Querier, cache interfaces.Cache, opts ...Option) *RecommendationService {
	o := applyOptions(opts)
	return &RecommendationService{
		queries: queries,
		cache:   cache,
		now:     o.now,
		logger:  logger.Log,
	}
}

// Recommend returns up to limit discounts ordered by score.
func (s *RecommendationService) Recommend(ctx context.Context, p params.RecommendParams) ([]db.Discount, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = constants.RecommendationDefaultLimit
	}
	if limit > constants.RecommendationMaxLimit {
		limit = constants.RecommendationMaxLimit
	}
	if p.Location != nil && !helpers.IsValidCoordinate(p.Location.Latitude, p.Location.Longitude) {
		return nil, helpers.NewBadRequestError("Invalid location coordinates")
	}

	key := recommendationCacheKey(p.UserID, p.Location, limit)
	if cached, ok := s.fromCache(ctx, key); ok {
		return cached, nil
	}

	user, err := s.queries.GetUserByID(ctx, p.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, helpers.NewNotFoundError("User not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	history, err := s.queries.ListRecentUserClaimAffinity(ctx, db.ListRecentUserClaimAffinityParams{
		UserID: user.ID,
		Limit:  constants.RecommendationHistorySize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load claim history: %w", err)
	}

	now := s.now()
	candidates, err := s.queries.ListRecommendationCandidates(ctx, db.ListRecommendationCandidatesParams{
		Now:          helpers.TimeToNullableTimestamptz(now),
		UniversityID: user.UniversityID,
		RowLimit:     int32(limit * constants.RecommendationCandidateFactor),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list recommendation candidates: %w", err)
	}

	affinity := BuildAffinity(history)
	scored := make([]business.ScoredDiscount, 0, len(candidates))
	for _, c := range candidates {
		scored = append(scored, business.ScoredDiscount{
			Discount: c.Discount,
			Score:    ScoreDiscount(c.Discount, c.BrandRating, affinity, p.Location, now),
		})
	}

	result := RankDiscounts(scored, limit)
	s.toCache(ctx, key, result)
	return result, nil
}

// BuildAffinity collects the categories and brands from a user's recent claims
func BuildAffinity(rows []db.ListRecentUserClaimAffinityRow) business.Affinity {
	affinity := business.Affinity{
		Categories: make(map[uuid.UUID]struct{}),
		Brands:     make(map[uuid.UUID]struct{}),
	}
	for _, row := range rows {
		if row.CategoryID.Valid {
			affinity.Categories[uuid.UUID(row.CategoryID.Bytes)] = struct{}{}
		}
		if row.BrandID.Valid {
			affinity.Brands[uuid.UUID(row.BrandID.Bytes)] = struct{}{}
		}
	}
	return affinity
}

// ScoreDiscount is a linear sum of value, brand rating and bonus terms.
func ScoreDiscount(d db.Discount, brandRating float64, affinity business.Affinity, location *business.Location, now time.Time) float64 {
	score := constants.ScoreWeightDiscountValue*d.DiscountValue + constants.ScoreWeightBrandRating*brandRating

	if d.EndDate.Valid && d.EndDate.Time.Sub(now) <= constants.ExpiringSoonWindow {
		score += constants.ScoreBonusExpiringSoon
	}
	if d.CategoryID.Valid {
		if _, ok := affinity.Categories[uuid.UUID(d.CategoryID.Bytes)]; ok {
			score += constants.ScoreBonusCategoryAffinity
		}
	}
	if d.BrandID.Valid {
		if _, ok := affinity.Brands[uuid.UUID(d.BrandID.Bytes)]; ok {
			score += constants.ScoreBonusBrandAffinity
		}
	}
	if location != nil && d.Latitude != nil && d.Longitude != nil {
		if helpers.HaversineMeters(location.Latitude, location.Longitude, *d.Latitude, *d.Longitude) <= constants.NearbyRadiusMeters {
			score += constants.ScoreBonusNearby
		}
	}
	if d.IsFeatured {
		score += constants.ScoreBonusFeatured
	}
	return score
}

// RankDiscounts sorts by score descending, keeping candidate order on ties, and
// drops the scores.
func RankDiscounts(scored []business.ScoredDiscount, limit int) []db.Discount {
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if len(scored) > limit {
		scored = scored[:limit]
	}
	out := make([]db.Discount, len(scored))
	for i, sd := range scored {
		out[i] = sd.Discount
	}
	return out
}

func recommendationCacheKey(userID uuid.UUID, location *business.Location, limit int) string {
	loc := "none"
	if location != nil {
		loc = fmt.Sprintf("%.2f,%.2f", location.Latitude, location.Longitude)
	}
	return fmt.Sprintf("recommendations:%s:%s:%d", userID, loc, limit)
}

func (s *RecommendationService) fromCache(ctx context.Context, key string) ([]db.Discount, bool) {
	raw, found, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("recommendation cache read failed", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	if !found {
		return nil, false
	}
	var discounts []db.Discount
	if err := json.Unmarshal(raw, &discounts); err != nil {
		s.logger.Warn("recommendation cache entry corrupt", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return discounts, true
}

func (s *RecommendationService) toCache(ctx context.Context, key string, discounts []db.Discount) {
	raw, err := json.Marshal(discounts)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, raw, constants.RecommendationCacheTTL); err != nil {
		s.logger.Warn("recommendation cache write failed", zap.String("key", key), zap.Error(err))
	}
}
