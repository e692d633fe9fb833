// Package expensedelivery manages delivery layer of expenses.
package expensedelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-split/internal/domain"
	"github.com/go-petr/pet-split/pkg/errorspkg"
	"github.com/go-petr/pet-split/pkg/web"
)

// Service provides service layer interface needed by expense delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package expensedelivery
type Service interface {
	Create(ctx context.Context, participants []string, paidBy, amount, description string) (domain.CreateExpenseResult, error)
	ListLastNDays(ctx context.Context, numDays int32) ([]domain.ExpenseDetail, error)
}

// Handler facilitates expense delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns expense handler.
func NewHandler(es Service) Handler {
	return Handler{service: es}
}

type createRequest struct {
	Participants []string `json:"participants" binding:"required,min=1"`
	PaidBy       string   `json:"paid_by" binding:"required"`
	Amount       float64  `json:"amount" binding:"required,gt=0"`
	Description  string   `json:"description" binding:"required"`
}

// Create handles http request to create an equally split expense.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		errMsg := err.Error()

		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			errMsg = web.GetErrorMsg(ve)
		}

		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: errMsg})

		return
	}

	amount := decimal.NewFromFloat(req.Amount).String()

	result, err := h.service.Create(ctx, req.Participants, req.PaidBy, amount, req.Description)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidAmount) {
			l.Info().Err(err).Send()
			gctx.JSON(http.StatusBadRequest, web.Error(err))

			return
		}

		respondError(gctx, err)

		return
	}

	res := web.Response{
		Data:     result,
		Warnings: droppedWarnings(result.Dropped),
	}

	gctx.JSON(http.StatusOK, res)
}

type listRequest struct {
	NumDays int32 `form:"num_days" binding:"required,min=1"`
}

type dataExpenses struct {
	Expenses []domain.ExpenseDetail `json:"expenses"`
}

// List handles http request to get expenses of the last n days.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req listRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		errMsg := err.Error()

		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			errMsg = web.GetErrorMsg(ve)
		}

		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: errMsg})

		return
	}

	expenses, err := h.service.ListLastNDays(ctx, req.NumDays)
	if err != nil {
		respondError(gctx, err)
		return
	}

	res := web.Response{Data: dataExpenses{expenses}}

	gctx.JSON(http.StatusOK, res)
}

func droppedWarnings(dropped []string) []string {
	warnings := make([]string, 0, len(dropped))
	for _, name := range dropped {
		warnings = append(warnings, "participant "+name+" was not found and was dropped")
	}

	return warnings
}

func respondError(gctx *gin.Context, err error) {
	l := zerolog.Ctx(gctx)

	if errors.Is(err, errorspkg.ErrUnconfigured) {
		l.Warn().Err(err).Send()
		gctx.JSON(http.StatusServiceUnavailable, web.Error(err))

		return
	}

	var re *domain.RemoteError
	if errors.As(err, &re) {
		if re.Kind == domain.KindValidation {
			l.Info().Err(err).Send()
			gctx.JSON(http.StatusUnprocessableEntity, web.Error(err))

			return
		}

		l.Error().Err(err).Send()
		gctx.JSON(http.StatusBadGateway, web.Error(err))

		return
	}

	l.Error().Err(err).Send()
	gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
}
