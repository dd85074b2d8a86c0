package business

import (
	"github.com/campusperks/campusperks-api/libs/go/db"
	"github.com/google/uuid"
)

// ScoredDiscount pairs a candidate with its ranking score
type ScoredDiscount struct {
	Discount db.Discount
	Score    float64
}

// Affinity holds the categories and brands a user has claimed from recently
type Affinity struct {
	Categories map[uuid.UUID]struct{}
	Brands     map[uuid.UUID]struct{}
}
