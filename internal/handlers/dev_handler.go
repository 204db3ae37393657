package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	apierrors "transaction-seeder/internal/errors"
	"transaction-seeder/internal/models"
	"transaction-seeder/internal/repositories"
	"transaction-seeder/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints
// These endpoints are only mounted when APP_ENV is development
type DevHandler struct {
	datasets        services.DatasetServiceInterface
	transactionRepo repositories.TransactionRepositoryInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(
	datasets services.DatasetServiceInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
) *DevHandler {
	return &DevHandler{
		datasets:        datasets,
		transactionRepo: transactionRepo,
	}
}

type regenerateQuery struct {
	Scenario string `query:"scenario" validate:"omitempty,scenario"`
	Rows     int    `query:"rows" validate:"omitempty,min=1,max=100000"`
	Seed     string `query:"seed"`
}

// RegenerateResponse describes the batch that replaced the stored transactions
type RegenerateResponse struct {
	BatchID     uuid.UUID      `json:"batch_id"`
	Scenario    string         `json:"scenario"`
	Seed        int64          `json:"seed"`
	Rows        int            `json:"rows"`
	WindowStart string         `json:"window_start"`
	WindowEnd   string         `json:"window_end"`
	Summary     models.Summary `json:"summary"`
}

// RegenerateDataset replaces the stored transactions with a fresh batch
//
// Method: POST /api/dev/regenerate
// Environment: Development only
//
// Query parameters:
//   - scenario: recent or historical (default: recent)
//   - rows: Number of rows (default: scenario default, max: 100000)
//   - seed: Random seed; omitted means a clock-derived seed
//
// Success Response: 201 Created with the batch description
//
// Error Responses:
//   - 400: Invalid parameters, row count or scenario
//   - 500: Generation or persistence failure
func (h *DevHandler) RegenerateDataset(c echo.Context) error {
	var query regenerateQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return sendQueryError(c, fmt.Errorf("%w: %v", errInvalidQuery, err))
	}
	if err := c.Validate(&query); err != nil {
		return sendQueryError(c, err)
	}

	req := services.GenerateRequest{Scenario: query.Scenario, Rows: query.Rows}
	if req.Scenario == "" {
		req.Scenario = models.ScenarioRecent
	}
	if req.Rows == 0 {
		scenario, err := models.LookupScenario(req.Scenario)
		if err != nil {
			return SendError(c, apierrors.GeneratorUnknownScenario)
		}
		req.Rows = scenario.DefaultRows
	}
	if query.Seed != "" {
		seed, err := strconv.ParseInt(query.Seed, 10, 64)
		if err != nil {
			return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("seed must be an integer"))
		}
		req.Seed = &seed
	}

	ctx := c.Request().Context()
	dataset, err := h.datasets.Generate(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidRowCount):
			return SendError(c, apierrors.GeneratorInvalidRowCount)
		case errors.Is(err, models.ErrUnknownScenario):
			return SendError(c, apierrors.GeneratorUnknownScenario)
		case errors.Is(err, models.ErrInvalidScenario):
			return SendError(c, apierrors.GeneratorInvalidScenario)
		default:
			return SendSystemError(c, err)
		}
	}

	batchID, err := h.datasets.Persist(ctx, dataset, true)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Message: "Transactions regenerated",
		Data: RegenerateResponse{
			BatchID:     batchID,
			Scenario:    dataset.Scenario.Name,
			Seed:        dataset.Seed,
			Rows:        len(dataset.Transactions),
			WindowStart: dataset.Window.Start.Format(models.DateLayout),
			WindowEnd:   dataset.Window.End().Format(models.DateLayout),
			Summary:     dataset.Summary,
		},
	})
}

// ClearTransactions removes every stored transaction
//
// Method: DELETE /api/dev/transactions
// Environment: Development only
func (h *DevHandler) ClearTransactions(c echo.Context) error {
	deleted, err := h.transactionRepo.DeleteAll(c.Request().Context())
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Transactions cleared",
		Data:    map[string]int64{"deleted": deleted},
	})
}
