package repositories

import (
	"context"

	"transaction-seeder/internal/models"

	"github.com/google/uuid"
)

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	CreateBatch(ctx context.Context, batchID uuid.UUID, transactions []*models.Transaction) error
	ReplaceBatch(ctx context.Context, batchID uuid.UUID, transactions []*models.Transaction) (int64, error)
	GetByID(ctx context.Context, id uint) (*models.Transaction, error)
	List(ctx context.Context, filters models.TransactionFilters) ([]models.Transaction, int64, error)
	ExpensesByCategory(ctx context.Context, startDate, endDate string) ([]models.CategoryTotal, error)
	MonthlyTotals(ctx context.Context, year int) ([]models.MonthlyTotal, error)
	Count(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// PendingTransactionRepositoryInterface defines the staging area that batches
// pass through before they are confirmed into transactions
type PendingTransactionRepositoryInterface interface {
	StageBatch(ctx context.Context, batchID uuid.UUID, transactions []*models.Transaction) error
	List(ctx context.Context, batchID *uuid.UUID) ([]models.PendingTransaction, error)
	ToggleDeletion(ctx context.Context, id uint) (*models.PendingTransaction, error)
	UpdateCategory(ctx context.Context, id uint, category string) (*models.PendingTransaction, error)
	Delete(ctx context.Context, id uint) error
	Clear(ctx context.Context, batchID *uuid.UUID) (int64, error)
	Confirm(ctx context.Context, batchID *uuid.UUID) (int64, error)
}
