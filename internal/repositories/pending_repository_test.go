package repositories

import (
	"context"
	"testing"

	"transaction-seeder/internal/database"
	"transaction-seeder/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// PendingTransactionRepositoryTestSuite runs the staging repository against in-memory SQLite
type PendingTransactionRepositoryTestSuite struct {
	suite.Suite
	db           *database.DB
	repo         PendingTransactionRepositoryInterface
	transactions TransactionRepositoryInterface
	ctx          context.Context
}

func TestPendingTransactionRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(PendingTransactionRepositoryTestSuite))
}

func (s *PendingTransactionRepositoryTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewPendingTransactionRepository(s.db.DB)
	s.transactions = NewTransactionRepository(s.db.DB)
	s.ctx = context.Background()
}

func (s *PendingTransactionRepositoryTestSuite) stage() uuid.UUID {
	batchID := uuid.New()
	s.Require().NoError(s.repo.StageBatch(s.ctx, batchID, fixture()))
	return batchID
}

func (s *PendingTransactionRepositoryTestSuite) pendingIDs(batchID uuid.UUID) []uint {
	rows, err := s.repo.List(s.ctx, &batchID)
	s.Require().NoError(err)
	ids := make([]uint, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	return ids
}

func (s *PendingTransactionRepositoryTestSuite) TestStageBatch() {
	batchID := s.stage()

	rows, err := s.repo.List(s.ctx, &batchID)
	s.Require().NoError(err)
	s.Len(rows, 6)
	for _, row := range rows {
		s.Equal(batchID, row.BatchID)
		s.False(row.MarkedForDeletion)
		s.False(row.CreatedAt.IsZero())
	}

	count, err := s.transactions.Count(s.ctx)
	s.Require().NoError(err)
	s.Zero(count)
}

func (s *PendingTransactionRepositoryTestSuite) TestStageBatch_Empty() {
	s.ErrorIs(s.repo.StageBatch(s.ctx, uuid.New(), nil), ErrEmptyBatch)
}

func (s *PendingTransactionRepositoryTestSuite) TestStageBatch_InvalidRecordRollsBack() {
	transactions := fixture()
	transactions[0].Amount = decimal.NewFromInt(-1)

	s.ErrorIs(s.repo.StageBatch(s.ctx, uuid.New(), transactions), models.ErrInvalidSign)

	rows, err := s.repo.List(s.ctx, nil)
	s.Require().NoError(err)
	s.Empty(rows)
}

func (s *PendingTransactionRepositoryTestSuite) TestList_ByBatchNewestFirst() {
	batchID := s.stage()
	s.stage()

	rows, err := s.repo.List(s.ctx, &batchID)
	s.Require().NoError(err)
	s.Len(rows, 6)
	s.Equal("2024-06-25", rows[0].Date)
	s.Equal("2023-12-31", rows[5].Date)

	all, err := s.repo.List(s.ctx, nil)
	s.Require().NoError(err)
	s.Len(all, 12)
}

func (s *PendingTransactionRepositoryTestSuite) TestToggleDeletion() {
	batchID := s.stage()
	id := s.pendingIDs(batchID)[0]

	row, err := s.repo.ToggleDeletion(s.ctx, id)
	s.Require().NoError(err)
	s.True(row.MarkedForDeletion)

	row, err = s.repo.ToggleDeletion(s.ctx, id)
	s.Require().NoError(err)
	s.False(row.MarkedForDeletion)
}

func (s *PendingTransactionRepositoryTestSuite) TestToggleDeletion_NotFound() {
	_, err := s.repo.ToggleDeletion(s.ctx, 999)
	s.ErrorIs(err, ErrPendingNotFound)
}

func (s *PendingTransactionRepositoryTestSuite) TestUpdateCategory() {
	batchID := s.stage()
	rows, err := s.repo.List(s.ctx, &batchID)
	s.Require().NoError(err)
	food := rows[1]
	s.Require().Equal(models.CategoryFood, food.Category)

	updated, err := s.repo.UpdateCategory(s.ctx, food.ID, models.CategoryTransport)
	s.Require().NoError(err)
	s.Equal(models.CategoryTransport, updated.Category)

	rows, err = s.repo.List(s.ctx, &batchID)
	s.Require().NoError(err)
	s.Equal(models.CategoryTransport, rows[1].Category)
}

func (s *PendingTransactionRepositoryTestSuite) TestUpdateCategory_Rejected() {
	batchID := s.stage()
	rows, err := s.repo.List(s.ctx, &batchID)
	s.Require().NoError(err)
	food := rows[1]

	tests := []struct {
		name     string
		category string
		wantErr  error
	}{
		{name: "unknown category", category: "Groceries", wantErr: models.ErrInvalidCategory},
		{name: "expense as salary", category: models.CategorySalary, wantErr: models.ErrInvalidSign},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.repo.UpdateCategory(s.ctx, food.ID, tt.category)
			s.ErrorIs(err, tt.wantErr)
		})
	}

	rows, err = s.repo.List(s.ctx, &batchID)
	s.Require().NoError(err)
	s.Equal(models.CategoryFood, rows[1].Category)
}

func (s *PendingTransactionRepositoryTestSuite) TestUpdateCategory_NotFound() {
	_, err := s.repo.UpdateCategory(s.ctx, 999, models.CategoryFood)
	s.ErrorIs(err, ErrPendingNotFound)
}

func (s *PendingTransactionRepositoryTestSuite) TestDelete() {
	batchID := s.stage()
	id := s.pendingIDs(batchID)[0]

	s.Require().NoError(s.repo.Delete(s.ctx, id))
	s.Len(s.pendingIDs(batchID), 5)
	s.ErrorIs(s.repo.Delete(s.ctx, id), ErrPendingNotFound)
}

func (s *PendingTransactionRepositoryTestSuite) TestClear() {
	first := s.stage()
	second := s.stage()

	cleared, err := s.repo.Clear(s.ctx, &first)
	s.Require().NoError(err)
	s.Equal(int64(6), cleared)
	s.Empty(s.pendingIDs(first))
	s.Len(s.pendingIDs(second), 6)

	cleared, err = s.repo.Clear(s.ctx, nil)
	s.Require().NoError(err)
	s.Equal(int64(6), cleared)
}

func (s *PendingTransactionRepositoryTestSuite) TestConfirm_SkipsMarkedRows() {
	batchID := s.stage()
	other := s.stage()
	ids := s.pendingIDs(batchID)
	_, err := s.repo.ToggleDeletion(s.ctx, ids[0])
	s.Require().NoError(err)

	imported, err := s.repo.Confirm(s.ctx, &batchID)
	s.Require().NoError(err)
	s.Equal(int64(5), imported)

	s.Empty(s.pendingIDs(batchID))
	s.Len(s.pendingIDs(other), 6)

	stored, total, err := s.transactions.List(s.ctx, models.TransactionFilters{})
	s.Require().NoError(err)
	s.Equal(int64(5), total)
	for _, t := range stored {
		s.Equal(batchID, t.BatchID)
		s.NotEqual("2024-06-25", t.Date)
	}
}

func (s *PendingTransactionRepositoryTestSuite) TestConfirm_OldestFirst() {
	batchID := s.stage()

	_, err := s.repo.Confirm(s.ctx, &batchID)
	s.Require().NoError(err)

	first, err := s.transactions.GetByID(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal("2023-12-31", first.Date)
}

func (s *PendingTransactionRepositoryTestSuite) TestConfirm_AllBatches() {
	s.stage()
	s.stage()

	imported, err := s.repo.Confirm(s.ctx, nil)
	s.Require().NoError(err)
	s.Equal(int64(12), imported)

	rows, err := s.repo.List(s.ctx, nil)
	s.Require().NoError(err)
	s.Empty(rows)
}

func (s *PendingTransactionRepositoryTestSuite) TestConfirm_FailureKeepsStagedRows() {
	batchID := s.stage()
	ids := s.pendingIDs(batchID)
	s.Require().NoError(s.db.Exec("UPDATE pending_transactions SET account = ? WHERE id = ?", "Cash", ids[2]).Error)

	imported, err := s.repo.Confirm(s.ctx, &batchID)

	s.ErrorIs(err, models.ErrInvalidAccount)
	s.Zero(imported)
	s.Len(s.pendingIDs(batchID), 6)
	count, err := s.transactions.Count(s.ctx)
	s.Require().NoError(err)
	s.Zero(count)
}

func (s *PendingTransactionRepositoryTestSuite) TestConfirm_EmptyBatch() {
	batchID := uuid.New()

	imported, err := s.repo.Confirm(s.ctx, &batchID)

	s.Require().NoError(err)
	s.Zero(imported)
}
