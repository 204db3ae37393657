package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInvalidCategory = errors.New("invalid transaction category")
	ErrInvalidAccount  = errors.New("invalid bank account")
	ErrInvalidDate     = errors.New("transaction date must be YYYY-MM-DD")
	ErrInvalidSign     = errors.New("amount sign does not match category")
)

// Transaction is one synthetic transaction record. Date is kept as an ISO
// string so lexicographic order equals chronological order.
type Transaction struct {
	ID        uint            `gorm:"primaryKey;autoIncrement" json:"id,omitempty"`
	BatchID   uuid.UUID       `gorm:"type:uuid;index" json:"batch_id,omitempty"`
	Date      string          `gorm:"type:varchar(10);not null;index" json:"date"`
	Detail    string          `gorm:"column:details;type:text;not null" json:"details"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,0);not null;index" json:"amount"`
	Account   string          `gorm:"type:varchar(50)" json:"account"`
	Category  string          `gorm:"type:varchar(50);not null;index" json:"category"`
	CreatedAt time.Time       `json:"created_at,omitempty"`
}

// TableName keeps the table name aligned with the SQL migrations
func (Transaction) TableName() string {
	return "transactions"
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	return t.Validate()
}

// IsIncome reports whether the record is an income record
func (t *Transaction) IsIncome() bool {
	return t.Category == CategorySalary
}

// Validate checks the record against the fixed tables and sign rule.
// A zero amount is valid for either direction.
func (t *Transaction) Validate() error {
	if _, err := time.Parse(DateLayout, t.Date); err != nil {
		return ErrInvalidDate
	}
	if !IsValidCategory(t.Category) {
		return ErrInvalidCategory
	}
	if !IsValidAccount(t.Account) {
		return ErrInvalidAccount
	}
	if t.IsIncome() && t.Amount.IsNegative() || !t.IsIncome() && t.Amount.IsPositive() {
		return ErrInvalidSign
	}
	return nil
}

// CSVRecord returns the record in output column order
func (t *Transaction) CSVRecord() []string {
	return []string{t.Date, t.Detail, t.Amount.String(), t.Account, t.Category}
}
