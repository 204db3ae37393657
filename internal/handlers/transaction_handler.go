package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	apierrors "transaction-seeder/internal/errors"
	"transaction-seeder/internal/export"
	"transaction-seeder/internal/models"
	"transaction-seeder/internal/repositories"
	"transaction-seeder/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

const (
	defaultPageLimit = 100

	groupByCategory = "category"
	groupByMonth    = "month"
)

// transactionQuery is the full set of query parameters accepted by the list endpoint
type transactionQuery struct {
	models.TransactionFilters
	GroupBy string `query:"groupBy" validate:"omitempty,oneof=category month"`
	Year    int    `query:"year" validate:"omitempty,min=1900,max=9999"`
}

// ListMeta describes the page returned by the list endpoint
type ListMeta struct {
	Total  int64 `json:"total"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
}

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionRepo repositories.TransactionRepositoryInterface
	summarizer      services.TransactionSummarizerInterface
	csvWriter       *export.CSVWriter
	now             func() time.Time
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(
	transactionRepo repositories.TransactionRepositoryInterface,
	summarizer services.TransactionSummarizerInterface,
	csvWriter *export.CSVWriter,
) *TransactionHandler {
	return &TransactionHandler{
		transactionRepo: transactionRepo,
		summarizer:      summarizer,
		csvWriter:       csvWriter,
		now:             time.Now,
	}
}

// ListTransactions returns stored transactions, newest first, or grouped totals.
// groupBy=category needs startDate and endDate and sums expenses per category;
// groupBy=month sums income and expenses per month of year (default current year).
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	query, err := h.bindQuery(c)
	if err != nil {
		return sendQueryError(c, err)
	}

	ctx := c.Request().Context()

	switch query.GroupBy {
	case groupByCategory:
		if query.StartDate == "" || query.EndDate == "" {
			return SendError(c, apierrors.ValidationRequiredField,
				apierrors.WithDetails("startDate and endDate are required when grouping by category"))
		}
		totals, err := h.transactionRepo.ExpensesByCategory(ctx, query.StartDate, query.EndDate)
		if err != nil {
			return SendSystemError(c, err)
		}
		return c.JSON(http.StatusOK, SuccessResponse{Data: totals})

	case groupByMonth:
		year := query.Year
		if year == 0 {
			year = h.now().Year()
		}
		totals, err := h.transactionRepo.MonthlyTotals(ctx, year)
		if err != nil {
			return SendSystemError(c, err)
		}
		return c.JSON(http.StatusOK, SuccessResponse{
			Data: totals,
			Meta: map[string]string{"year": strconv.Itoa(year)},
		})
	}

	filters := query.TransactionFilters
	if filters.Limit == 0 {
		filters.Limit = defaultPageLimit
	}

	transactions, total, err := h.transactionRepo.List(ctx, filters)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: transactions,
		Meta: ListMeta{
			Total:  total,
			Limit:  filters.Limit,
			Offset: filters.Offset,
		},
	})
}

// GetTransaction returns one stored transaction by its numeric ID
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid transaction ID"))
	}

	transaction, err := h.transactionRepo.GetByID(c.Request().Context(), uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return SendError(c, apierrors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: transaction})
}

// ExportTransactions streams the stored transactions as CSV in the generator's column layout
func (h *TransactionHandler) ExportTransactions(c echo.Context) error {
	query, err := h.bindQuery(c)
	if err != nil {
		return sendQueryError(c, err)
	}

	transactions, err := h.loadAll(c.Request().Context(), query.TransactionFilters)
	if err != nil {
		return SendSystemError(c, err)
	}

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	res.Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", export.DefaultFileName))
	res.WriteHeader(http.StatusOK)

	return h.csvWriter.Write(res, transactions)
}

// GetSummary returns the dashboard metrics for the stored transactions
func (h *TransactionHandler) GetSummary(c echo.Context) error {
	query, err := h.bindQuery(c)
	if err != nil {
		return sendQueryError(c, err)
	}

	transactions, err := h.loadAll(c.Request().Context(), query.TransactionFilters)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: h.summarizer.Summarize(transactions)})
}

// bindQuery parses and validates query parameters
func (h *TransactionHandler) bindQuery(c echo.Context) (transactionQuery, error) {
	var query transactionQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return query, fmt.Errorf("%w: %v", errInvalidQuery, err)
	}
	if err := c.Validate(&query); err != nil {
		return query, err
	}
	return query, nil
}

var errInvalidQuery = errors.New("invalid query parameters")

// sendQueryError reports a bind or validation failure from bindQuery
func sendQueryError(c echo.Context, err error) error {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}
	return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid query parameters"))
}

// loadAll fetches every transaction matching the filters, ignoring paging
func (h *TransactionHandler) loadAll(ctx context.Context, filters models.TransactionFilters) ([]*models.Transaction, error) {
	count, err := h.transactionRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return []*models.Transaction{}, nil
	}

	filters.Limit = int(count)
	filters.Offset = 0
	rows, _, err := h.transactionRepo.List(ctx, filters)
	if err != nil {
		return nil, err
	}

	transactions := make([]*models.Transaction, len(rows))
	for i := range rows {
		transactions[i] = &rows[i]
	}
	return transactions, nil
}
