package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvestmentStatus mirrors domain.InvestmentStatus at the storage layer.
// Only the canonical spellings are ever persisted.
type InvestmentStatus string

const (
	InvestmentPending   InvestmentStatus = "pending"
	InvestmentConfirmed InvestmentStatus = "confirmed"
	InvestmentRejected  InvestmentStatus = "rejected"
	InvestmentCanceled  InvestmentStatus = "canceled"
	InvestmentCompleted InvestmentStatus = "completed"
)

// Investment represents a row of the investments table.
type Investment struct {
	InvestmentID      string           `db:"investment_id"`
	UserID            string           `db:"user_id"`
	ProjectID         string           `db:"project_id"`
	Amount            decimal.Decimal  `db:"amount"`
	Status            InvestmentStatus `db:"status"`
	Notes             string           `db:"notes"`
	ContractReference string           `db:"contract_reference"`
	InvestedAt        time.Time        `db:"invested_at"`
	AuditFields
}
