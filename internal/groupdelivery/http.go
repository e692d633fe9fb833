// Package groupdelivery manages delivery layer of groups.
package groupdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-split/internal/domain"
	"github.com/go-petr/pet-split/pkg/errorspkg"
	"github.com/go-petr/pet-split/pkg/web"
)

// Service provides service layer interface needed by group delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package groupdelivery
type Service interface {
	Provision(ctx context.Context, name string, firstNames, lastNames, emails []string) (domain.CreateGroupResult, error)
}

// Handler facilitates group delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns group handler.
func NewHandler(gs Service) Handler {
	return Handler{service: gs}
}

type createRequest struct {
	GroupName  string   `json:"group_name" binding:"required"`
	FirstNames []string `json:"first_names" binding:"required,min=1"`
	LastNames  []string `json:"last_names" binding:"required"`
	Emails     []string `json:"emails" binding:"required,dive,email"`
}

// Create handles http request to create a group and enroll its members.
//
// A failure response still carries the partial provisioning progress so
// that callers can learn what was committed before the first error.
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

	result, err := h.service.Provision(ctx, req.GroupName, req.FirstNames, req.LastNames, req.Emails)
	if err != nil {
		res := web.Error(err)
		if result.GroupID != 0 {
			res.Data = result
		}

		if errors.Is(err, errorspkg.ErrUnconfigured) {
			l.Warn().Err(err).Send()
			gctx.JSON(http.StatusServiceUnavailable, res)

			return
		}

		var re *domain.RemoteError
		if errors.As(err, &re) {
			if re.Kind == domain.KindValidation {
				l.Info().Err(err).Send()
				gctx.JSON(http.StatusUnprocessableEntity, res)

				return
			}

			l.Error().Err(err).Send()
			gctx.JSON(http.StatusBadGateway, res)

			return
		}

		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	res := web.Response{Data: result}

	gctx.JSON(http.StatusOK, res)
}
