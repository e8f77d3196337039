// Package assetdelivery manages delivery layer of user assets.
package assetdelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/coin-wallet/internal/domain"
	"github.com/go-petr/coin-wallet/pkg/errorspkg"
	"github.com/go-petr/coin-wallet/pkg/web"
)

// Service provides service layer interface needed by asset delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package assetdelivery
type Service interface {
	Create(ctx context.Context, arg domain.CreateUserAssetParams) (domain.UserAsset, error)
	Get(ctx context.Context, id int32) (domain.UserAsset, error)
	ListByOwner(ctx context.Context, userID int32) ([]domain.UserAsset, error)
	Update(ctx context.Context, id int32, patch domain.UserAssetPatch) (domain.UserAsset, error)
}

// Handler facilitates asset delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns asset handler.
func NewHandler(as Service) Handler {
	return Handler{service: as}
}

type ownerRequest struct {
	UserID int32 `uri:"userId"`
}

// ListByOwner handles http request to list assets of a user.
func (h *Handler) ListByOwner(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri ownerRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.URIError(err))

		return
	}

	assets, err := h.service.ListByOwner(ctx, uri.UserID)
	if err != nil {
		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	if assets == nil {
		assets = []domain.UserAsset{}
	}

	gctx.JSON(http.StatusOK, assets)
}

type createRequest struct {
	UserID        int32  `json:"userId" binding:"required,min=1"`
	CryptoID      int32  `json:"cryptoId" binding:"required,min=1"`
	Balance       string `json:"balance" binding:"required,decimal"`
	LockedBalance string `json:"lockedBalance" binding:"omitempty,decimal"`
}

// Create handles http request to open an asset position.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.ValidationError(err))

		return
	}

	asset, err := h.service.Create(ctx, domain.CreateUserAssetParams{
		UserID:        req.UserID,
		CryptoID:      req.CryptoID,
		Balance:       req.Balance,
		LockedBalance: req.LockedBalance,
	})
	if err != nil {
		if err == domain.ErrAssetAlreadyExists {
			gctx.JSON(http.StatusConflict, web.Error(err))
			return
		}

		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusCreated, asset)
}

type uriRequest struct {
	ID int32 `uri:"id" binding:"required,min=1"`
}

// Get handles http request to get an asset.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri uriRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.URIError(err))

		return
	}

	asset, err := h.service.Get(ctx, uri.ID)
	if err != nil {
		if err == domain.ErrAssetNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, asset)
}

type updateRequest struct {
	Balance       *string `json:"balance" binding:"omitempty,decimal"`
	LockedBalance *string `json:"lockedBalance" binding:"omitempty,decimal"`
}

// Update handles http request to overwrite asset balances.
func (h *Handler) Update(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri uriRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.URIError(err))

		return
	}

	var req updateRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.ValidationError(err))

		return
	}

	asset, err := h.service.Update(ctx, uri.ID, domain.UserAssetPatch{
		Balance:       req.Balance,
		LockedBalance: req.LockedBalance,
	})
	if err != nil {
		if err == domain.ErrAssetNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, asset)
}
