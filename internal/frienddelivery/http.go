// Package frienddelivery manages delivery layer of friends.
package frienddelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-split/internal/domain"
	"github.com/go-petr/pet-split/pkg/errorspkg"
	"github.com/go-petr/pet-split/pkg/web"
)

// Service provides service layer interface needed by friend delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package frienddelivery
type Service interface {
	List(ctx context.Context) ([]domain.FriendBalance, error)
}

// Handler facilitates friend delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns friend handler.
func NewHandler(fs Service) Handler {
	return Handler{service: fs}
}

type dataFriends struct {
	Friends []domain.FriendBalance `json:"friends"`
}

// List handles http request to fetch all friends with balances.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	friends, err := h.service.List(ctx)
	if err != nil {
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

		return
	}

	res := web.Response{Data: dataFriends{friends}}

	gctx.JSON(http.StatusOK, res)
}
