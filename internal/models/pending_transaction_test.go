package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPendingTransaction_RoundTrip(t *testing.T) {
	batchID := uuid.New()
	original := &Transaction{
		Date:     "2024-05-02",
		Detail:   "Indomaret",
		Amount:   decimal.NewFromInt(-45000),
		Account:  AccountJenius,
		Category: CategoryShopping,
	}

	pending := NewPendingTransaction(batchID, original)
	assert.Equal(t, batchID, pending.BatchID)
	assert.False(t, pending.MarkedForDeletion)

	stored := pending.ToTransaction()
	assert.Equal(t, batchID, stored.BatchID)
	assert.Equal(t, original.Date, stored.Date)
	assert.Equal(t, original.Detail, stored.Detail)
	assert.True(t, original.Amount.Equal(stored.Amount))
	assert.Equal(t, original.Account, stored.Account)
	assert.Equal(t, original.Category, stored.Category)
	assert.Zero(t, stored.ID)
}

func TestPendingTransaction_TableName(t *testing.T) {
	assert.Equal(t, "pending_transactions", PendingTransaction{}.TableName())
}
