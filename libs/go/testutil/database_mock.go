package testutil

import (
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/mock/gomock"

	"github.com/campusperks/campusperks-api/libs/go/db"
	"github.com/campusperks/campusperks-api/libs/go/mocks"
)

// MockDatabase provides utilities for database mocking in unit tests
type MockDatabase struct {
	Ctrl    *gomock.Controller
	Querier *mocks.MockQuerier
	t       *testing.T
}

// NewMockDatabase creates a new mock database for unit testing
func NewMockDatabase(t *testing.T) *MockDatabase {
	ctrl := gomock.NewController(t)

	return &MockDatabase{
		Ctrl:    ctrl,
		Querier: mocks.NewMockQuerier(ctrl),
		t:       t,
	}
}

// ExpectDiscount sets up a single GetDiscount lookup. A nil discount yields pgx.ErrNoRows.
func (m *MockDatabase) ExpectDiscount(discountID uuid.UUID, discount *db.Discount) {
	if discount != nil {
		m.Querier.EXPECT().
			GetDiscount(gomock.Any(), discountID).
			Return(*discount, nil).
			Times(1)
	} else {
		m.Querier.EXPECT().
			GetDiscount(gomock.Any(), discountID).
			Return(db.Discount{}, pgx.ErrNoRows).
			Times(1)
	}
}

// ExpectUser sets up a single GetUserByID lookup. A nil user yields pgx.ErrNoRows.
func (m *MockDatabase) ExpectUser(userID uuid.UUID, user *db.User) {
	if user != nil {
		m.Querier.EXPECT().
			GetUserByID(gomock.Any(), userID).
			Return(*user, nil).
			Times(1)
	} else {
		m.Querier.EXPECT().
			GetUserByID(gomock.Any(), userID).
			Return(db.User{}, pgx.ErrNoRows).
			Times(1)
	}
}

// ExpectClaimByCode sets up a single GetDiscountClaimByCode lookup.
func (m *MockDatabase) ExpectClaimByCode(code string, claim *db.DiscountClaim) {
	if claim != nil {
		m.Querier.EXPECT().
			GetDiscountClaimByCode(gomock.Any(), code).
			Return(*claim, nil).
			Times(1)
	} else {
		m.Querier.EXPECT().
			GetDiscountClaimByCode(gomock.Any(), code).
			Return(db.DiscountClaim{}, pgx.ErrNoRows).
			Times(1)
	}
}

// ExpectUserClaimCount answers the lifetime per-user claim count for a discount.
func (m *MockDatabase) ExpectUserClaimCount(count int64) {
	m.Querier.EXPECT().
		CountUserClaimsForDiscount(gomock.Any(), gomock.Any()).
		Return(count, nil).
		Times(1)
}

// AllowAudit accepts any number of audit log writes.
func (m *MockDatabase) AllowAudit() {
	m.Querier.EXPECT().
		CreateAuditLog(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()
}

// AllowFraudAlerts accepts any number of fraud alert inserts.
func (m *MockDatabase) AllowFraudAlerts() {
	m.Querier.EXPECT().
		CreateFraudAlert(gomock.Any(), gomock.Any()).
		Return(db.FraudAlert{ID: uuid.New()}, nil).
		AnyTimes()
}
