package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"transaction-seeder/internal/export"
	"transaction-seeder/internal/models"
	"transaction-seeder/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
)

type DatasetServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	repo     *repository_mocks.MockTransactionRepositoryInterface
	pending  *repository_mocks.MockPendingTransactionRepositoryInterface
	metrics  *PrometheusMetrics
	logs     *bytes.Buffer
	service  DatasetServiceInterface
	now      time.Time
	ctx      context.Context
	registry *prometheus.Registry
}

func TestDatasetServiceSuite(t *testing.T) {
	suite.Run(t, new(DatasetServiceTestSuite))
}

func (s *DatasetServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.pending = repository_mocks.NewMockPendingTransactionRepositoryInterface(s.ctrl)
	s.registry = prometheus.NewRegistry()
	s.metrics = NewPrometheusMetrics(s.registry).(*PrometheusMetrics)
	s.now = time.Date(2024, time.July, 1, 12, 0, 0, 0, time.UTC)
	s.ctx = context.Background()

	var logger GenerationLoggerInterface
	logger, s.logs = newCapturingLogger()

	s.service = NewDatasetService(
		export.NewCSVWriter(export.Options{}),
		logger,
		s.metrics,
		WithRepository(s.repo),
		WithPendingRepository(s.pending),
		WithDatasetClock(func() time.Time { return s.now }),
	)
}

func (s *DatasetServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

var errDatabaseDown = errors.New("database is down")

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func seedPtr(seed int64) *int64 {
	return &seed
}

func (s *DatasetServiceTestSuite) generate(rows int, seed int64) *Dataset {
	dataset, err := s.service.Generate(s.ctx, GenerateRequest{
		Scenario: models.ScenarioRecent,
		Rows:     rows,
		Seed:     seedPtr(seed),
	})
	s.Require().NoError(err)
	return dataset
}

// Generate

func (s *DatasetServiceTestSuite) TestGenerate_Success() {
	dataset := s.generate(120, 42)

	s.Len(dataset.Transactions, 120)
	s.Equal(int64(42), dataset.Seed)
	s.Equal(models.ScenarioRecent, dataset.Scenario.Name)
	s.Equal("2024-07-01", dataset.Window.End().Format(models.DateLayout))
	s.Equal(120, dataset.Summary.Rows)
	for _, t := range dataset.Transactions {
		s.True(dataset.Window.Contains(t.Date))
	}

	total := 0.0
	for _, category := range models.AllCategories() {
		total += testutil.ToFloat64(s.metrics.transactionsGenerated.WithLabelValues(models.ScenarioRecent, category))
	}
	s.Equal(float64(120), total)
	s.Contains(s.logs.String(), `"event_type":"generation_started"`)
	s.Contains(s.logs.String(), `"event_type":"generation_completed"`)
	s.Contains(s.logs.String(), `"event_type":"batch_summary"`)
}

func (s *DatasetServiceTestSuite) TestGenerate_SeedIsReproducible() {
	first := s.generate(60, 7)
	second := s.generate(60, 7)

	s.Equal(first.Transactions, second.Transactions)
}

func (s *DatasetServiceTestSuite) TestGenerate_SeedFromClockWhenUnset() {
	dataset, err := s.service.Generate(s.ctx, GenerateRequest{Scenario: models.ScenarioHistorical, Rows: 5})

	s.Require().NoError(err)
	s.Equal(s.now.UnixNano(), dataset.Seed)
	s.Contains(s.logs.String(), `"seed":`)
}

func (s *DatasetServiceTestSuite) TestGenerate_InvalidRowCount() {
	for _, rows := range []int{0, -3} {
		dataset, err := s.service.Generate(s.ctx, GenerateRequest{Scenario: models.ScenarioRecent, Rows: rows})

		s.ErrorIs(err, ErrInvalidRowCount)
		s.Nil(dataset)
	}
	s.Equal(float64(2), testutil.ToFloat64(s.metrics.generationFailures.WithLabelValues("invalid_row_count")))
	s.NotContains(s.logs.String(), "generation_started")
}

func (s *DatasetServiceTestSuite) TestGenerate_RowCountCheckedBeforeScenario() {
	_, err := s.service.Generate(s.ctx, GenerateRequest{Scenario: "unknown", Rows: 0})

	s.ErrorIs(err, ErrInvalidRowCount)
	s.NotErrorIs(err, models.ErrUnknownScenario)
}

func (s *DatasetServiceTestSuite) TestGenerate_UnknownScenario() {
	dataset, err := s.service.Generate(s.ctx, GenerateRequest{Scenario: "weekly", Rows: 10})

	s.ErrorIs(err, models.ErrUnknownScenario)
	s.Nil(dataset)
	s.Equal(float64(1), testutil.ToFloat64(s.metrics.generationFailures.WithLabelValues("unknown_scenario")))
}

// WriteCSV

func (s *DatasetServiceTestSuite) TestWriteCSV_Success() {
	dataset := s.generate(25, 3)
	path := filepath.Join(s.T().TempDir(), "transactions.csv")

	s.Require().NoError(s.service.WriteCSV(s.ctx, path, dataset))

	data, err := os.ReadFile(path)
	s.Require().NoError(err)
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	s.Len(lines, 26)
	s.Equal("date,transaction details,amount,bank account,category", lines[0])
	s.Equal(float64(25), testutil.ToFloat64(s.metrics.rowsWritten))
	s.Contains(s.logs.String(), `"event_type":"file_written"`)
}

func (s *DatasetServiceTestSuite) TestWriteCSV_BadPath() {
	dataset := s.generate(5, 3)
	path := filepath.Join(s.T().TempDir(), "missing", "transactions.csv")

	err := s.service.WriteCSV(s.ctx, path, dataset)

	s.Error(err)
	s.Equal(float64(1), testutil.ToFloat64(s.metrics.generationFailures.WithLabelValues("write_error")))
	s.Zero(testutil.ToFloat64(s.metrics.rowsWritten))
}

// Persist

func (s *DatasetServiceTestSuite) TestPersist_Append() {
	dataset := s.generate(10, 9)

	s.repo.EXPECT().
		CreateBatch(s.ctx, gomock.Any(), dataset.Transactions).
		Return(nil)

	batchID, err := s.service.Persist(s.ctx, dataset, false)

	s.Require().NoError(err)
	s.NotEqual(uuid.Nil, batchID)
	s.Equal(float64(10), testutil.ToFloat64(s.metrics.rowsPersisted))
	s.Contains(s.logs.String(), batchID.String())
}

func (s *DatasetServiceTestSuite) TestPersist_ReplaceIsOneRepositoryCall() {
	dataset := s.generate(10, 9)

	var replaced uuid.UUID
	s.repo.EXPECT().
		ReplaceBatch(s.ctx, gomock.Any(), dataset.Transactions).
		DoAndReturn(func(_ context.Context, batchID uuid.UUID, _ []*models.Transaction) (int64, error) {
			replaced = batchID
			return 200, nil
		})

	batchID, err := s.service.Persist(s.ctx, dataset, true)

	s.Require().NoError(err)
	s.Equal(replaced, batchID)
	s.Equal(float64(10), testutil.ToFloat64(s.metrics.rowsPersisted))
}

func (s *DatasetServiceTestSuite) TestPersist_ReplaceFails() {
	dataset := s.generate(10, 9)

	s.repo.EXPECT().ReplaceBatch(s.ctx, gomock.Any(), dataset.Transactions).Return(int64(0), errDatabaseDown)

	batchID, err := s.service.Persist(s.ctx, dataset, true)

	s.ErrorIs(err, errDatabaseDown)
	s.Equal(uuid.Nil, batchID)
	s.Equal(float64(1), testutil.ToFloat64(s.metrics.generationFailures.WithLabelValues("persist_error")))
	s.Zero(testutil.ToFloat64(s.metrics.rowsPersisted))
}

func (s *DatasetServiceTestSuite) TestPersist_CreateFails() {
	dataset := s.generate(10, 9)

	s.repo.EXPECT().CreateBatch(s.ctx, gomock.Any(), gomock.Any()).Return(errDatabaseDown)

	_, err := s.service.Persist(s.ctx, dataset, false)

	s.ErrorIs(err, errDatabaseDown)
	s.Zero(testutil.ToFloat64(s.metrics.rowsPersisted))
}

func (s *DatasetServiceTestSuite) TestPersist_NoRepository() {
	service := NewDatasetService(export.NewCSVWriter(export.Options{}), NewGenerationLogger(discardLogger()), NewNoOpMetrics())
	dataset := s.generate(3, 1)

	_, err := service.Persist(s.ctx, dataset, false)
	s.ErrorIs(err, ErrNoRepository)
}

// Stage

func (s *DatasetServiceTestSuite) TestStage_Success() {
	dataset := s.generate(8, 4)

	var staged uuid.UUID
	s.pending.EXPECT().
		StageBatch(s.ctx, gomock.Any(), dataset.Transactions).
		DoAndReturn(func(_ context.Context, batchID uuid.UUID, _ []*models.Transaction) error {
			staged = batchID
			return nil
		})

	batchID, err := s.service.Stage(s.ctx, dataset)

	s.Require().NoError(err)
	s.Equal(staged, batchID)
	s.Equal(float64(8), testutil.ToFloat64(s.metrics.rowsStaged))
	s.Zero(testutil.ToFloat64(s.metrics.rowsPersisted))
	s.Contains(s.logs.String(), "batch_staged")
}

func (s *DatasetServiceTestSuite) TestStage_Fails() {
	dataset := s.generate(8, 4)

	s.pending.EXPECT().StageBatch(s.ctx, gomock.Any(), gomock.Any()).Return(errDatabaseDown)

	batchID, err := s.service.Stage(s.ctx, dataset)

	s.ErrorIs(err, errDatabaseDown)
	s.Equal(uuid.Nil, batchID)
	s.Equal(float64(1), testutil.ToFloat64(s.metrics.generationFailures.WithLabelValues("stage_error")))
}

func (s *DatasetServiceTestSuite) TestStage_NoPendingRepository() {
	service := NewDatasetService(export.NewCSVWriter(export.Options{}), NewGenerationLogger(discardLogger()), NewNoOpMetrics())
	dataset := s.generate(3, 1)

	_, err := service.Stage(s.ctx, dataset)
	s.ErrorIs(err, ErrNoPendingRepository)
}
