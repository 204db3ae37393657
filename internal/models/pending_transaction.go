package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PendingTransaction is a staged row awaiting review. Rows marked for
// deletion are dropped when their batch is confirmed.
type PendingTransaction struct {
	ID                uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	BatchID           uuid.UUID       `gorm:"type:uuid;not null;index" json:"batch_id"`
	Date              string          `gorm:"type:varchar(10);not null" json:"date"`
	Detail            string          `gorm:"column:details;type:text;not null" json:"details"`
	Amount            decimal.Decimal `gorm:"type:decimal(15,0);not null" json:"amount"`
	Account           string          `gorm:"type:varchar(50)" json:"account"`
	Category          string          `gorm:"type:varchar(50);not null" json:"category"`
	MarkedForDeletion bool            `gorm:"not null;default:false" json:"marked_for_deletion"`
	CreatedAt         time.Time       `json:"created_at"`
}

func (PendingTransaction) TableName() string {
	return "pending_transactions"
}

// BeforeCreate hook for PendingTransaction
func (p *PendingTransaction) BeforeCreate(tx *gorm.DB) error {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	return p.ToTransaction().Validate()
}

// NewPendingTransaction stages t under batchID
func NewPendingTransaction(batchID uuid.UUID, t *Transaction) *PendingTransaction {
	return &PendingTransaction{
		BatchID:  batchID,
		Date:     t.Date,
		Detail:   t.Detail,
		Amount:   t.Amount,
		Account:  t.Account,
		Category: t.Category,
	}
}

// ToTransaction returns the stored form of the staged row, keeping its batch
func (p *PendingTransaction) ToTransaction() *Transaction {
	return &Transaction{
		BatchID:  p.BatchID,
		Date:     p.Date,
		Detail:   p.Detail,
		Amount:   p.Amount,
		Account:  p.Account,
		Category: p.Category,
	}
}
