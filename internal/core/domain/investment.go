package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// InvestmentStatus is the closed set of states an investment moves through.
type InvestmentStatus string

const (
	InvestmentPending   InvestmentStatus = "pending"
	InvestmentConfirmed InvestmentStatus = "confirmed"
	InvestmentRejected  InvestmentStatus = "rejected"
	InvestmentCanceled  InvestmentStatus = "canceled"
	InvestmentCompleted InvestmentStatus = "completed"
)

// ParseInvestmentStatus validates a raw status value and normalizes the
// alternate "cancelled" spelling to the canonical InvestmentCanceled.
func ParseInvestmentStatus(raw string) (InvestmentStatus, error) {
	switch InvestmentStatus(raw) {
	case InvestmentPending, InvestmentConfirmed, InvestmentRejected, InvestmentCanceled, InvestmentCompleted:
		return InvestmentStatus(raw), nil
	}
	if raw == "cancelled" {
		return InvestmentCanceled, nil
	}
	return "", fmt.Errorf("invalid status %q", raw)
}

// validTransitions enumerates every permitted status transition. Anything not
// listed here is invalid and must be rejected, never silently ignored.
var validTransitions = map[InvestmentStatus][]InvestmentStatus{
	InvestmentPending:   {InvestmentConfirmed, InvestmentRejected, InvestmentCanceled},
	InvestmentConfirmed: {InvestmentCompleted, InvestmentCanceled},
}

// CanTransitionTo reports whether the status machine permits moving from s to target.
func (s InvestmentStatus) CanTransitionTo(target InvestmentStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are possible from s.
func (s InvestmentStatus) IsTerminal() bool {
	return len(validTransitions[s]) == 0
}

// CountsTowardFunding reports whether an investment in this status contributes
// to its project's current funded amount.
func (s InvestmentStatus) CountsTowardFunding() bool {
	return s == InvestmentConfirmed || s == InvestmentCompleted
}

// FundingDelta returns the change a from→to transition applies to the owning
// project's current amount: +amount when entering the counting set, -amount when
// leaving it, zero otherwise. Creation into pending is modeled as a transition
// from the empty status and therefore contributes nothing.
func FundingDelta(from, to InvestmentStatus, amount decimal.Decimal) decimal.Decimal {
	switch {
	case !from.CountsTowardFunding() && to.CountsTowardFunding():
		return amount
	case from.CountsTowardFunding() && !to.CountsTowardFunding():
		return amount.Neg()
	default:
		return decimal.Zero
	}
}

// Investment is a partner's capital commitment to a project. Amount, UserID,
// ProjectID and InvestedAt are fixed at creation; only the status (and the
// optional notes and contract reference) change afterwards. Investments are
// never deleted in normal operation — removal is a transition to a terminal
// non-funding status, preserving history.
type Investment struct {
	InvestmentID      string           `json:"investmentID"`
	UserID            string           `json:"userID"`
	ProjectID         string           `json:"projectID"`
	Amount            decimal.Decimal  `json:"amount"`
	Status            InvestmentStatus `json:"status"`
	Notes             string           `json:"notes,omitempty"`
	ContractReference string           `json:"contractReference,omitempty"`
	InvestedAt        time.Time        `json:"investedAt"`
	AuditFields
}
