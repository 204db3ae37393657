package repositories

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"transaction-seeder/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	defaultListLimit = 100
	insertBatchSize  = 200
)

var (
	ErrEmptyBatch          = errors.New("transaction batch is empty")
	ErrTransactionNotFound = errors.New("transaction not found")
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// CreateBatch inserts all transactions under one batch ID in a single database transaction
func (r *transactionRepository) CreateBatch(ctx context.Context, batchID uuid.UUID, transactions []*models.Transaction) error {
	if len(transactions) == 0 {
		return ErrEmptyBatch
	}

	for _, t := range transactions {
		t.BatchID = batchID
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(transactions, insertBatchSize).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create transaction batch: %w", err)
	}
	return nil
}

// ReplaceBatch deletes every stored transaction and inserts the new batch in
// one database transaction. Nothing is deleted if any insert fails.
func (r *transactionRepository) ReplaceBatch(ctx context.Context, batchID uuid.UUID, transactions []*models.Transaction) (int64, error) {
	if len(transactions) == 0 {
		return 0, ErrEmptyBatch
	}

	for _, t := range transactions {
		t.BatchID = batchID
	}

	var deleted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Transaction{})
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected
		return tx.CreateInBatches(transactions, insertBatchSize).Error
	})
	if err != nil {
		return 0, fmt.Errorf("failed to replace transactions: %w", err)
	}
	return deleted, nil
}

// GetByID retrieves a stored transaction by its ID
func (r *transactionRepository) GetByID(ctx context.Context, id uint) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := r.db.WithContext(ctx).First(&transaction, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &transaction, nil
}

// List returns transactions matching filters, newest first, with the total match count
func (r *transactionRepository) List(ctx context.Context, filters models.TransactionFilters) ([]models.Transaction, int64, error) {
	var transactions []models.Transaction
	var total int64

	if err := r.filtered(ctx, filters).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	if err := r.filtered(ctx, filters).Order("date DESC").Order("id ASC").
		Offset(filters.Offset).Limit(limit).
		Find(&transactions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}

	return transactions, total, nil
}

func (r *transactionRepository) filtered(ctx context.Context, filters models.TransactionFilters) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&models.Transaction{})
	if filters.StartDate != "" {
		query = query.Where("date >= ?", filters.StartDate)
	}
	if filters.EndDate != "" {
		query = query.Where("date <= ?", filters.EndDate)
	}
	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}
	if filters.Account != "" {
		query = query.Where("account = ?", filters.Account)
	}
	return query
}

type categoryTotalRow struct {
	Category string
	Total    decimal.Decimal
	Count    int64
}

// ExpensesByCategory sums outflows per category between two inclusive dates, largest outflow first
func (r *transactionRepository) ExpensesByCategory(ctx context.Context, startDate, endDate string) ([]models.CategoryTotal, error) {
	var rows []categoryTotalRow

	err := r.db.WithContext(ctx).Model(&models.Transaction{}).
		Select("category, SUM(amount) AS total, COUNT(*) AS count").
		Where("date BETWEEN ? AND ?", startDate, endDate).
		Where("amount < 0").
		Group("category").
		Order("total ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum expenses by category: %w", err)
	}

	totals := make([]models.CategoryTotal, 0, len(rows))
	for _, row := range rows {
		totals = append(totals, models.CategoryTotal{
			Category: row.Category,
			Total:    row.Total,
			Count:    row.Count,
		})
	}
	return totals, nil
}

type monthlyTotalRow struct {
	Month    string
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

// MonthlyTotals returns income and absolute expenses per month of the given year
func (r *transactionRepository) MonthlyTotals(ctx context.Context, year int) ([]models.MonthlyTotal, error) {
	var rows []monthlyTotalRow

	err := r.db.WithContext(ctx).Model(&models.Transaction{}).
		Select(`SUBSTR(date, 1, 7) AS month,
			SUM(CASE WHEN amount > 0 THEN amount ELSE 0 END) AS income,
			SUM(CASE WHEN amount < 0 THEN -amount ELSE 0 END) AS expenses`).
		Where("SUBSTR(date, 1, 4) = ?", strconv.Itoa(year)).
		Group("SUBSTR(date, 1, 7)").
		Order("month ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute monthly totals: %w", err)
	}

	totals := make([]models.MonthlyTotal, 0, len(rows))
	for _, row := range rows {
		totals = append(totals, models.MonthlyTotal{
			Month:    row.Month,
			Income:   row.Income,
			Expenses: row.Expenses,
		})
	}
	return totals, nil
}

// Count returns the number of stored transactions
func (r *transactionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Transaction{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}

// DeleteAll removes every stored transaction and reports how many were deleted
func (r *transactionRepository) DeleteAll(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Transaction{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete transactions: %w", result.Error)
	}
	return result.RowsAffected, nil
}
