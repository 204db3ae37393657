package services

import (
	"context"
	"time"

	"transaction-seeder/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionGeneratorInterface generates synthetic transaction records
type TransactionGeneratorInterface interface {
	Scenario() models.Scenario
	Window() models.DateWindow
	GenerateTransactions(count int) ([]*models.Transaction, error)
	GenerateTransaction(window models.DateWindow) *models.Transaction
	GenerateDate(window models.DateWindow) string
	SelectCategory() models.CategoryDefinition
	GenerateAmount(def models.CategoryDefinition) decimal.Decimal
	SelectAccount() string
}

// TransactionSummarizerInterface computes dashboard metrics for a batch
type TransactionSummarizerInterface interface {
	Summarize(transactions []*models.Transaction) models.Summary
}

// DatasetServiceInterface drives a generation run end to end
type DatasetServiceInterface interface {
	Generate(ctx context.Context, req GenerateRequest) (*Dataset, error)
	WriteCSV(ctx context.Context, path string, dataset *Dataset) error
	Persist(ctx context.Context, dataset *Dataset, replace bool) (uuid.UUID, error)
	Stage(ctx context.Context, dataset *Dataset) (uuid.UUID, error)
}

// GenerationLoggerInterface defines structured logging for generation events
type GenerationLoggerInterface interface {
	LogGenerationStarted(ctx context.Context, scenario string, rows int, seed int64)
	LogGenerationCompleted(ctx context.Context, scenario string, rows, incomeRows int, durationMs int64)
	LogGenerationFailed(ctx context.Context, scenario string, errorMsg string)
	LogFileWritten(ctx context.Context, path string, rows int)
	LogBatchPersisted(ctx context.Context, batchID uuid.UUID, rows int, durationMs int64)
	LogBatchStaged(ctx context.Context, batchID uuid.UUID, rows int)
	LogSummary(ctx context.Context, netWorth, income, expenses, investments string)
}

// MetricsRecorderInterface defines metrics recording for generation runs
type MetricsRecorderInterface interface {
	RecordTransactionGenerated(scenario, category string)
	RecordGenerationDuration(duration time.Duration)
	RecordGenerationFailure(reason string)
	RecordRowsWritten(rows int)
	RecordRowsPersisted(rows int)
	RecordRowsStaged(rows int)
	RecordAmount(direction string, amount float64)
}
