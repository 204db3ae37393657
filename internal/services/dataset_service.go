package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"transaction-seeder/internal/export"
	"transaction-seeder/internal/models"
	"transaction-seeder/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrNoRepository        = errors.New("no transaction repository configured")
	ErrNoPendingRepository = errors.New("no pending transaction repository configured")
)

// GenerateRequest describes one generation run. A nil Seed draws a seed from
// the clock; the seed actually used is reported on the Dataset.
type GenerateRequest struct {
	Scenario string
	Rows     int
	Seed     *int64
}

// Dataset is one generated batch plus everything needed to reproduce it
type Dataset struct {
	Scenario     models.Scenario
	Window       models.DateWindow
	Seed         int64
	Transactions []*models.Transaction
	Summary      models.Summary
}

// IncomeRows counts the income records in the batch
func (d *Dataset) IncomeRows() int {
	count := 0
	for _, t := range d.Transactions {
		if t.IsIncome() {
			count++
		}
	}
	return count
}

type datasetService struct {
	repo       repositories.TransactionRepositoryInterface
	pending    repositories.PendingTransactionRepositoryInterface
	writer     *export.CSVWriter
	summarizer TransactionSummarizerInterface
	logger     GenerationLoggerInterface
	metrics    MetricsRecorderInterface
	now        func() time.Time
}

// DatasetOption configures a dataset service
type DatasetOption func(*datasetService)

// WithDatasetClock overrides the clock used for "today" windows and default seeds
func WithDatasetClock(now func() time.Time) DatasetOption {
	return func(s *datasetService) {
		s.now = now
	}
}

// WithRepository enables Persist against the given repository
func WithRepository(repo repositories.TransactionRepositoryInterface) DatasetOption {
	return func(s *datasetService) {
		s.repo = repo
	}
}

// WithPendingRepository enables Stage against the given staging repository
func WithPendingRepository(repo repositories.PendingTransactionRepositoryInterface) DatasetOption {
	return func(s *datasetService) {
		s.pending = repo
	}
}

// NewDatasetService creates a new dataset service
func NewDatasetService(
	writer *export.CSVWriter,
	logger GenerationLoggerInterface,
	metrics MetricsRecorderInterface,
	opts ...DatasetOption,
) DatasetServiceInterface {
	s := &datasetService{
		writer:     writer,
		summarizer: NewTransactionSummarizer(),
		logger:     logger,
		metrics:    metrics,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate validates the request, then builds and summarizes one batch.
// The row count is checked before the scenario is resolved or any value drawn.
func (s *datasetService) Generate(ctx context.Context, req GenerateRequest) (*Dataset, error) {
	if req.Rows <= 0 {
		s.fail(ctx, req.Scenario, "invalid_row_count", ErrInvalidRowCount)
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRowCount, req.Rows)
	}

	scenario, err := models.LookupScenario(req.Scenario)
	if err != nil {
		s.fail(ctx, req.Scenario, "unknown_scenario", err)
		return nil, err
	}

	seed := s.now().UnixNano()
	if req.Seed != nil {
		seed = *req.Seed
	}

	s.logger.LogGenerationStarted(ctx, scenario.Name, req.Rows, seed)
	start := time.Now()

	generator, err := NewTransactionGenerator(scenario, WithSeed(seed), WithClock(s.now))
	if err != nil {
		s.fail(ctx, scenario.Name, "invalid_scenario", err)
		return nil, err
	}

	transactions, err := generator.GenerateTransactions(req.Rows)
	if err != nil {
		s.fail(ctx, scenario.Name, "generation_error", err)
		return nil, err
	}

	duration := time.Since(start)
	s.metrics.RecordGenerationDuration(duration)
	for _, t := range transactions {
		s.metrics.RecordTransactionGenerated(scenario.Name, t.Category)
		amount, _ := t.Amount.Abs().Float64()
		if t.IsIncome() {
			s.metrics.RecordAmount("inflow", amount)
		} else {
			s.metrics.RecordAmount("outflow", amount)
		}
	}

	dataset := &Dataset{
		Scenario:     scenario,
		Window:       generator.Window(),
		Seed:         seed,
		Transactions: transactions,
		Summary:      s.summarizer.Summarize(transactions),
	}

	s.logger.LogGenerationCompleted(ctx, scenario.Name, len(transactions), dataset.IncomeRows(), duration.Milliseconds())
	s.logger.LogSummary(ctx,
		dataset.Summary.NetWorth.String(),
		dataset.Summary.TotalIncome.String(),
		dataset.Summary.TotalExpenses.String(),
		dataset.Summary.TotalInvestments.String(),
	)

	return dataset, nil
}

// WriteCSV writes the dataset to path with the configured CSV writer
func (s *datasetService) WriteCSV(ctx context.Context, path string, dataset *Dataset) error {
	if err := s.writer.WriteFile(path, dataset.Transactions); err != nil {
		s.fail(ctx, dataset.Scenario.Name, "write_error", err)
		return err
	}

	s.metrics.RecordRowsWritten(len(dataset.Transactions))
	s.logger.LogFileWritten(ctx, path, len(dataset.Transactions))
	return nil
}

// Persist stores the dataset under a fresh batch ID. With replace set, the
// previously stored rows are swapped for the new batch atomically.
func (s *datasetService) Persist(ctx context.Context, dataset *Dataset, replace bool) (uuid.UUID, error) {
	if s.repo == nil {
		return uuid.Nil, ErrNoRepository
	}

	start := time.Now()
	batchID := uuid.New()

	var err error
	if replace {
		_, err = s.repo.ReplaceBatch(ctx, batchID, dataset.Transactions)
	} else {
		err = s.repo.CreateBatch(ctx, batchID, dataset.Transactions)
	}
	if err != nil {
		s.fail(ctx, dataset.Scenario.Name, "persist_error", err)
		return uuid.Nil, err
	}

	s.metrics.RecordRowsPersisted(len(dataset.Transactions))
	s.logger.LogBatchPersisted(ctx, batchID, len(dataset.Transactions), time.Since(start).Milliseconds())
	return batchID, nil
}

// Stage puts the dataset into the pending area under a fresh batch ID. Nothing
// reaches the transactions table until the batch is confirmed.
func (s *datasetService) Stage(ctx context.Context, dataset *Dataset) (uuid.UUID, error) {
	if s.pending == nil {
		return uuid.Nil, ErrNoPendingRepository
	}

	batchID := uuid.New()
	if err := s.pending.StageBatch(ctx, batchID, dataset.Transactions); err != nil {
		s.fail(ctx, dataset.Scenario.Name, "stage_error", err)
		return uuid.Nil, err
	}

	s.metrics.RecordRowsStaged(len(dataset.Transactions))
	s.logger.LogBatchStaged(ctx, batchID, len(dataset.Transactions))
	return batchID, nil
}

func (s *datasetService) fail(ctx context.Context, scenario, reason string, err error) {
	s.metrics.RecordGenerationFailure(reason)
	s.logger.LogGenerationFailed(ctx, scenario, err.Error())
}
