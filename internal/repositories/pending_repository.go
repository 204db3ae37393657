package repositories

import (
	"context"
	"errors"
	"fmt"

	"transaction-seeder/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrPendingNotFound = errors.New("pending transaction not found")

type pendingTransactionRepository struct {
	db *gorm.DB
}

// NewPendingTransactionRepository creates a new pending transaction repository
func NewPendingTransactionRepository(db *gorm.DB) PendingTransactionRepositoryInterface {
	return &pendingTransactionRepository{
		db: db,
	}
}

// StageBatch copies the transactions into the staging table under batchID
func (r *pendingTransactionRepository) StageBatch(ctx context.Context, batchID uuid.UUID, transactions []*models.Transaction) error {
	if len(transactions) == 0 {
		return ErrEmptyBatch
	}

	rows := make([]*models.PendingTransaction, 0, len(transactions))
	for _, t := range transactions {
		rows = append(rows, models.NewPendingTransaction(batchID, t))
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(rows, insertBatchSize).Error
	})
	if err != nil {
		return fmt.Errorf("failed to stage transaction batch: %w", err)
	}
	return nil
}

// List returns staged rows. One batch is listed newest date first; without a
// batch, the most recently staged rows come first.
func (r *pendingTransactionRepository) List(ctx context.Context, batchID *uuid.UUID) ([]models.PendingTransaction, error) {
	var rows []models.PendingTransaction

	query := r.db.WithContext(ctx).Model(&models.PendingTransaction{})
	if batchID != nil {
		query = query.Where("batch_id = ?", *batchID).Order("date DESC").Order("id ASC")
	} else {
		query = query.Order("created_at DESC").Order("date DESC").Order("id ASC")
	}

	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list pending transactions: %w", err)
	}
	return rows, nil
}

// ToggleDeletion flips the deletion mark of one staged row
func (r *pendingTransactionRepository) ToggleDeletion(ctx context.Context, id uint) (*models.PendingTransaction, error) {
	var row models.PendingTransaction

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&row, id).Error; err != nil {
			return err
		}
		row.MarkedForDeletion = !row.MarkedForDeletion
		return tx.Model(&row).Update("marked_for_deletion", row.MarkedForDeletion).Error
	})
	if err != nil {
		return nil, r.wrap("toggle pending deletion", err)
	}
	return &row, nil
}

// UpdateCategory recategorizes one staged row. The row must still be a valid
// transaction afterwards, sign rule included.
func (r *pendingTransactionRepository) UpdateCategory(ctx context.Context, id uint, category string) (*models.PendingTransaction, error) {
	var row models.PendingTransaction

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&row, id).Error; err != nil {
			return err
		}
		row.Category = category
		if err := row.ToTransaction().Validate(); err != nil {
			return err
		}
		return tx.Model(&row).Update("category", category).Error
	})
	if err != nil {
		return nil, r.wrap("update pending category", err)
	}
	return &row, nil
}

// Delete removes one staged row
func (r *pendingTransactionRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.PendingTransaction{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete pending transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrPendingNotFound
	}
	return nil
}

// Clear removes the staged rows of one batch, or of every batch when batchID is nil
func (r *pendingTransactionRepository) Clear(ctx context.Context, batchID *uuid.UUID) (int64, error) {
	result := r.scoped(r.db.WithContext(ctx), batchID).Delete(&models.PendingTransaction{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to clear pending transactions: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// Confirm moves the unmarked rows of a batch (or of every batch) into
// transactions, oldest first, and empties the staged batch. Either all of it
// happens or none of it does.
func (r *pendingTransactionRepository) Confirm(ctx context.Context, batchID *uuid.UUID) (int64, error) {
	var imported int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rows []models.PendingTransaction
		if err := r.scoped(tx, batchID).
			Where("marked_for_deletion = ?", false).
			Order("date ASC").Order("id ASC").
			Find(&rows).Error; err != nil {
			return err
		}

		if len(rows) > 0 {
			transactions := make([]*models.Transaction, 0, len(rows))
			for i := range rows {
				transactions = append(transactions, rows[i].ToTransaction())
			}
			if err := tx.CreateInBatches(transactions, insertBatchSize).Error; err != nil {
				return err
			}
		}

		if err := r.scoped(tx, batchID).Delete(&models.PendingTransaction{}).Error; err != nil {
			return err
		}
		imported = int64(len(rows))
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to confirm pending transactions: %w", err)
	}
	return imported, nil
}

func (r *pendingTransactionRepository) scoped(db *gorm.DB, batchID *uuid.UUID) *gorm.DB {
	if batchID != nil {
		return db.Where("batch_id = ?", *batchID)
	}
	return db.Session(&gorm.Session{AllowGlobalUpdate: true})
}

func (r *pendingTransactionRepository) wrap(op string, err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrPendingNotFound
	case errors.Is(err, models.ErrInvalidCategory), errors.Is(err, models.ErrInvalidSign):
		return err
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}
