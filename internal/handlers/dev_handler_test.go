package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"transaction-seeder/internal/models"
	"transaction-seeder/internal/repositories/repository_mocks"
	"transaction-seeder/internal/services"
	"transaction-seeder/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type DevHandlerTestSuite struct {
	suite.Suite
	echo                *echo.Echo
	ctrl                *gomock.Controller
	mockDatasets        *service_mocks.MockDatasetServiceInterface
	mockTransactionRepo *repository_mocks.MockTransactionRepositoryInterface
	handler             *DevHandler
}

func TestDevHandlerSuite(t *testing.T) {
	suite.Run(t, new(DevHandlerTestSuite))
}

func (s *DevHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.ctrl = gomock.NewController(s.T())
	s.mockDatasets = service_mocks.NewMockDatasetServiceInterface(s.ctrl)
	s.mockTransactionRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.handler = NewDevHandler(s.mockDatasets, s.mockTransactionRepo)
}

func (s *DevHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *DevHandlerTestSuite) request(method, target string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(TraceIDContextKey, "test-trace-id")
	return c, rec
}

func (s *DevHandlerTestSuite) errorCode(rec *httptest.ResponseRecorder) string {
	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	return response.Error.Code
}

func recentDataset(seed int64) *services.Dataset {
	scenario := models.RecentScenario()
	transactions := []*models.Transaction{
		{Date: "2024-06-30", Detail: "Monthly Salary", Amount: decimal.NewFromInt(12000000), Account: models.AccountBCA, Category: models.CategorySalary},
		{Date: "2024-06-02", Detail: "Gofood", Amount: decimal.NewFromInt(-85000), Account: models.AccountGoPay, Category: models.CategoryFood},
	}
	return &services.Dataset{
		Scenario:     scenario,
		Window:       scenario.Window(time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)),
		Seed:         seed,
		Transactions: transactions,
		Summary:      services.NewTransactionSummarizer().Summarize(transactions),
	}
}

// RegenerateDataset

func (s *DevHandlerTestSuite) TestRegenerateDataset_Success() {
	seed := int64(42)
	dataset := recentDataset(seed)
	batchID := uuid.New()

	gomock.InOrder(
		s.mockDatasets.EXPECT().
			Generate(gomock.Any(), services.GenerateRequest{Scenario: models.ScenarioRecent, Rows: 2, Seed: &seed}).
			Return(dataset, nil),
		s.mockDatasets.EXPECT().Persist(gomock.Any(), dataset, true).Return(batchID, nil),
	)

	c, rec := s.request(http.MethodPost, "/api/dev/regenerate?scenario=recent&rows=2&seed=42")
	s.NoError(s.handler.RegenerateDataset(c))

	s.Equal(http.StatusCreated, rec.Code)

	var response struct {
		Message string             `json:"message"`
		Data    RegenerateResponse `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("Transactions regenerated", response.Message)
	s.Equal(batchID, response.Data.BatchID)
	s.Equal(models.ScenarioRecent, response.Data.Scenario)
	s.Equal(int64(42), response.Data.Seed)
	s.Equal(2, response.Data.Rows)
	s.Equal("2024-01-03", response.Data.WindowStart)
	s.Equal("2024-07-01", response.Data.WindowEnd)
	s.True(decimal.NewFromInt(12000000).Equal(response.Data.Summary.TotalIncome))
}

func (s *DevHandlerTestSuite) TestRegenerateDataset_Defaults() {
	dataset := recentDataset(7)

	s.mockDatasets.EXPECT().
		Generate(gomock.Any(), services.GenerateRequest{Scenario: models.ScenarioRecent, Rows: models.RecentScenario().DefaultRows}).
		Return(dataset, nil)
	s.mockDatasets.EXPECT().Persist(gomock.Any(), dataset, true).Return(uuid.New(), nil)

	c, rec := s.request(http.MethodPost, "/api/dev/regenerate")
	s.NoError(s.handler.RegenerateDataset(c))

	s.Equal(http.StatusCreated, rec.Code)
}

func (s *DevHandlerTestSuite) TestRegenerateDataset_HistoricalDefaultRows() {
	dataset := recentDataset(7)

	s.mockDatasets.EXPECT().
		Generate(gomock.Any(), services.GenerateRequest{Scenario: models.ScenarioHistorical, Rows: models.HistoricalScenario().DefaultRows}).
		Return(dataset, nil)
	s.mockDatasets.EXPECT().Persist(gomock.Any(), dataset, true).Return(uuid.New(), nil)

	c, rec := s.request(http.MethodPost, "/api/dev/regenerate?scenario=historical")
	s.NoError(s.handler.RegenerateDataset(c))

	s.Equal(http.StatusCreated, rec.Code)
}

func (s *DevHandlerTestSuite) TestRegenerateDataset_InvalidQuery() {
	tests := []struct {
		name     string
		target   string
		wantCode string
	}{
		{name: "non numeric rows", target: "/api/dev/regenerate?rows=many", wantCode: "VALIDATION_003"},
		{name: "negative rows", target: "/api/dev/regenerate?rows=-3", wantCode: "VALIDATION_001"},
		{name: "too many rows", target: "/api/dev/regenerate?rows=100001", wantCode: "VALIDATION_001"},
		{name: "unknown scenario", target: "/api/dev/regenerate?scenario=weekly", wantCode: "VALIDATION_001"},
		{name: "non numeric seed", target: "/api/dev/regenerate?seed=abc", wantCode: "VALIDATION_003"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			c, rec := s.request(http.MethodPost, tt.target)
			s.NoError(s.handler.RegenerateDataset(c))

			s.Equal(http.StatusBadRequest, rec.Code)
			s.Equal(tt.wantCode, s.errorCode(rec))
		})
	}
}

func (s *DevHandlerTestSuite) TestRegenerateDataset_GenerateErrors() {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "row count", err: fmt.Errorf("rows=0: %w", services.ErrInvalidRowCount), wantStatus: http.StatusBadRequest, wantCode: "GENERATOR_001"},
		{name: "unknown scenario", err: models.ErrUnknownScenario, wantStatus: http.StatusBadRequest, wantCode: "GENERATOR_002"},
		{name: "invalid scenario", err: fmt.Errorf("weights: %w", models.ErrInvalidScenario), wantStatus: http.StatusUnprocessableEntity, wantCode: "GENERATOR_003"},
		{name: "unexpected", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantCode: "SYSTEM_001"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.mockDatasets.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			c, rec := s.request(http.MethodPost, "/api/dev/regenerate?rows=5")
			s.NoError(s.handler.RegenerateDataset(c))

			s.Equal(tt.wantStatus, rec.Code)
			s.Equal(tt.wantCode, s.errorCode(rec))
		})
	}
}

func (s *DevHandlerTestSuite) TestRegenerateDataset_PersistFailure() {
	dataset := recentDataset(1)
	s.mockDatasets.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(dataset, nil)
	s.mockDatasets.EXPECT().Persist(gomock.Any(), dataset, true).Return(uuid.Nil, errors.New("database is locked"))

	c, rec := s.request(http.MethodPost, "/api/dev/regenerate?rows=2")
	s.NoError(s.handler.RegenerateDataset(c))

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("SYSTEM_001", s.errorCode(rec))
}

// ClearTransactions

func (s *DevHandlerTestSuite) TestClearTransactions_Success() {
	s.mockTransactionRepo.EXPECT().DeleteAll(gomock.Any()).Return(int64(200), nil)

	c, rec := s.request(http.MethodDelete, "/api/dev/transactions")
	s.NoError(s.handler.ClearTransactions(c))

	s.Equal(http.StatusOK, rec.Code)

	var response struct {
		Message string           `json:"message"`
		Data    map[string]int64 `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("Transactions cleared", response.Message)
	s.Equal(int64(200), response.Data["deleted"])
}

func (s *DevHandlerTestSuite) TestClearTransactions_Error() {
	s.mockTransactionRepo.EXPECT().DeleteAll(gomock.Any()).Return(int64(0), errors.New("database is locked"))

	c, rec := s.request(http.MethodDelete, "/api/dev/transactions")
	s.NoError(s.handler.ClearTransactions(c))

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("SYSTEM_001", s.errorCode(rec))
}
