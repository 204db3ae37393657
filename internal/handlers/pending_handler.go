package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	apierrors "transaction-seeder/internal/errors"
	"transaction-seeder/internal/middleware"
	"transaction-seeder/internal/models"
	"transaction-seeder/internal/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

const (
	actionToggleDelete   = "toggleDelete"
	actionUpdateCategory = "updateCategory"
)

// PendingInput is one row submitted for staging
type PendingInput struct {
	Date     string          `json:"date" validate:"required,iso_date"`
	Detail   string          `json:"details" validate:"required,max=255"`
	Amount   decimal.Decimal `json:"amount"`
	Account  string          `json:"account" validate:"required,bank_account"`
	Category string          `json:"category" validate:"required,category"`
}

// StageRequest is the body of POST /api/pending. A missing batch ID gets a fresh one.
type StageRequest struct {
	BatchID      *uuid.UUID     `json:"batchId"`
	Transactions []PendingInput `json:"transactions" validate:"required,min=1,max=100000,dive"`
}

// StageResponse reports where a staged batch landed
type StageResponse struct {
	BatchID  uuid.UUID `json:"batchId"`
	Inserted int       `json:"inserted"`
}

// UpdatePendingRequest is the body of PATCH /api/pending/:id
type UpdatePendingRequest struct {
	Action   string `json:"action" validate:"required,oneof=toggleDelete updateCategory"`
	Category string `json:"category" validate:"omitempty,category"`
}

// PendingMeta counts the rows of a pending listing
type PendingMeta struct {
	Total  int `json:"total"`
	Marked int `json:"marked"`
}

// PendingHandler serves the review area that batches wait in before they
// are confirmed into transactions
type PendingHandler struct {
	pendingRepo repositories.PendingTransactionRepositoryInterface
}

// NewPendingHandler creates a new pending handler
func NewPendingHandler(pendingRepo repositories.PendingTransactionRepositoryInterface) *PendingHandler {
	return &PendingHandler{
		pendingRepo: pendingRepo,
	}
}

// ListPending returns the staged rows of batchId, or of every batch
func (h *PendingHandler) ListPending(c echo.Context) error {
	batchID, err := batchIDParam(c)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("batchId must be a UUID"))
	}

	rows, err := h.pendingRepo.List(c.Request().Context(), batchID)
	if err != nil {
		return SendSystemError(c, err)
	}

	meta := PendingMeta{Total: len(rows)}
	for _, row := range rows {
		if row.MarkedForDeletion {
			meta.Marked++
		}
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: rows, Meta: meta})
}

// StagePending stores the submitted rows in the review area
func (h *PendingHandler) StagePending(c echo.Context) error {
	var req StageRequest
	if err := (&echo.DefaultBinder{}).BindBody(c, &req); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return sendBodyError(c, err)
	}

	transactions := make([]*models.Transaction, 0, len(req.Transactions))
	for i, in := range req.Transactions {
		if !in.Amount.IsInteger() {
			return SendError(c, apierrors.ValidationGeneral,
				apierrors.WithDetails(fmt.Sprintf("transactions[%d].amount must be a whole number", i)))
		}
		transactions = append(transactions, &models.Transaction{
			Date:     in.Date,
			Detail:   in.Detail,
			Amount:   in.Amount,
			Account:  in.Account,
			Category: in.Category,
		})
	}

	batchID := uuid.New()
	if req.BatchID != nil {
		batchID = *req.BatchID
	}

	if err := h.pendingRepo.StageBatch(c.Request().Context(), batchID, transactions); err != nil {
		return sendPendingError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Message: "Transactions staged",
		Data:    StageResponse{BatchID: batchID, Inserted: len(transactions)},
	})
}

// UpdatePending toggles the deletion mark of one row or recategorizes it
func (h *PendingHandler) UpdatePending(c echo.Context) error {
	id, ok := pendingIDParam(c)
	if !ok {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid pending transaction ID"))
	}

	var req UpdatePendingRequest
	if err := (&echo.DefaultBinder{}).BindBody(c, &req); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return sendBodyError(c, err)
	}
	if req.Action == actionUpdateCategory && req.Category == "" {
		return SendError(c, apierrors.ValidationRequiredField, apierrors.WithDetails("category is required for updateCategory"))
	}

	ctx := c.Request().Context()

	var (
		row *models.PendingTransaction
		err error
	)
	switch req.Action {
	case actionToggleDelete:
		row, err = h.pendingRepo.ToggleDeletion(ctx, id)
	case actionUpdateCategory:
		row, err = h.pendingRepo.UpdateCategory(ctx, id, req.Category)
	}
	if err != nil {
		return sendPendingError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: row})
}

// DeletePending removes one staged row
func (h *PendingHandler) DeletePending(c echo.Context) error {
	id, ok := pendingIDParam(c)
	if !ok {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid pending transaction ID"))
	}

	if err := h.pendingRepo.Delete(c.Request().Context(), id); err != nil {
		return sendPendingError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ClearPending drops a staged batch, or every batch with clearAll=true
func (h *PendingHandler) ClearPending(c echo.Context) error {
	batchID, err := batchIDParam(c)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("batchId must be a UUID"))
	}
	if batchID == nil && c.QueryParam("clearAll") != "true" {
		return SendError(c, apierrors.ValidationRequiredField,
			apierrors.WithDetails("batchId or clearAll=true is required"))
	}

	cleared, err := h.pendingRepo.Clear(c.Request().Context(), batchID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Pending transactions cleared",
		Data:    map[string]int64{"cleared": cleared},
	})
}

// ConfirmPending moves the unmarked rows of batchId, or of every batch, into transactions
func (h *PendingHandler) ConfirmPending(c echo.Context) error {
	batchID, err := batchIDParam(c)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("batchId must be a UUID"))
	}

	imported, err := h.pendingRepo.Confirm(c.Request().Context(), batchID)
	if err != nil {
		return sendPendingError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: fmt.Sprintf("Imported %d transactions", imported),
		Data:    map[string]int64{"imported": imported},
	})
}

// batchIDParam reads the optional batchId query parameter
func batchIDParam(c echo.Context) (*uuid.UUID, error) {
	raw := c.QueryParam("batchId")
	if raw == "" {
		return nil, nil
	}
	batchID, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &batchID, nil
}

func pendingIDParam(c echo.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func sendBodyError(c echo.Context, err error) error {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		fieldErrors := make(map[string]string, len(validationErrs))
		for _, fe := range validationErrs {
			fieldErrors[fe.Namespace()] = fe.Tag()
		}
		resp := apierrors.NewValidationError(fieldErrors, middleware.GetTraceID(c))
		return c.JSON(resp.GetHTTPStatus(), resp)
	}
	return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
}

// sendPendingError maps staging failures onto API codes
func sendPendingError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, repositories.ErrPendingNotFound):
		return SendError(c, apierrors.PendingNotFound)
	case errors.Is(err, models.ErrInvalidCategory),
		errors.Is(err, models.ErrInvalidAccount),
		errors.Is(err, models.ErrInvalidDate),
		errors.Is(err, models.ErrInvalidSign):
		return SendError(c, apierrors.TransactionValidationFailed, apierrors.WithDetails(err.Error()))
	}
	return SendSystemError(c, err)
}
