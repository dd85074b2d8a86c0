package business

import "fmt"

// ApprovalStatus is the moderation state of a discount
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

var approvalTransitions = map[ApprovalStatus][]ApprovalStatus{
	ApprovalPending: {ApprovalApproved, ApprovalRejected},
}

// ParseApprovalStatus validates a stored approval status
func ParseApprovalStatus(s string) (ApprovalStatus, error) {
	switch st := ApprovalStatus(s); st {
	case ApprovalPending, ApprovalApproved, ApprovalRejected:
		return st, nil
	default:
		return "", fmt.Errorf("unknown approval status %q", s)
	}
}

// CanTransitionTo reports whether the approval table allows from -> to.
func (s ApprovalStatus) CanTransitionTo(to ApprovalStatus) bool {
	return allowed(approvalTransitions[s], to)
}

// ClaimStatus is the lifecycle state of a discount claim
type ClaimStatus string

const (
	ClaimStatusClaimed  ClaimStatus = "claimed"
	ClaimStatusRedeemed ClaimStatus = "redeemed"
	ClaimStatusExpired  ClaimStatus = "expired"
)

var claimTransitions = map[ClaimStatus][]ClaimStatus{
	ClaimStatusClaimed: {ClaimStatusRedeemed, ClaimStatusExpired},
}

// ParseClaimStatus validates a stored claim status
func ParseClaimStatus(s string) (ClaimStatus, error) {
	switch st := ClaimStatus(s); st {
	case ClaimStatusClaimed, ClaimStatusRedeemed, ClaimStatusExpired:
		return st, nil
	default:
		return "", fmt.Errorf("unknown claim status %q", s)
	}
}

// CanTransitionTo reports whether the claim table allows from -> to.
func (s ClaimStatus) CanTransitionTo(to ClaimStatus) bool {
	return allowed(claimTransitions[s], to)
}

func allowed[T comparable](targets []T, to T) bool {
	for _, t := range targets {
		if t == to {
			return true
		}
	}
	return false
}

// EligibilityCode identifies which predicate denied a claim
type EligibilityCode string

const (
	EligibilityOK                EligibilityCode = "eligible"
	EligibilityInactive          EligibilityCode = "inactive"
	EligibilityNotApproved       EligibilityCode = "not_approved"
	EligibilityNotStarted        EligibilityCode = "not_started"
	EligibilityEnded             EligibilityCode = "ended"
	EligibilityOutsideHours      EligibilityCode = "outside_hours"
	EligibilityWrongDay          EligibilityCode = "wrong_day"
	EligibilityUniversity        EligibilityCode = "university"
	EligibilityCourseYear        EligibilityCode = "course_year"
	EligibilityFirstTimeOnly     EligibilityCode = "first_time_only"
	EligibilityLocationRequired  EligibilityCode = "location_required"
	EligibilityOutOfRange        EligibilityCode = "out_of_range"
	EligibilityUserLimitReached  EligibilityCode = "user_limit_reached"
	EligibilityTotalLimitReached EligibilityCode = "total_limit_reached"
)

// EligibilityResult is the outcome of evaluating one discount for one user.
type EligibilityResult struct {
	Allowed bool            `json:"allowed"`
	Code    EligibilityCode `json:"code"`
	Reason  string          `json:"reason,omitempty"`
}

// Eligible is the passing result
func Eligible() EligibilityResult {
	return EligibilityResult{Allowed: true, Code: EligibilityOK}
}

// Denied builds a failing result
func Denied(code EligibilityCode, reason string) EligibilityResult {
	return EligibilityResult{Allowed: false, Code: code, Reason: reason}
}

// Location is a caller-supplied coordinate
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
