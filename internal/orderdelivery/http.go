// Package orderdelivery manages delivery layer of trading orders.
package orderdelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/coin-wallet/internal/domain"
	"github.com/go-petr/coin-wallet/pkg/errorspkg"
	"github.com/go-petr/coin-wallet/pkg/web"
)

// Service provides service layer interface needed by order delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package orderdelivery
type Service interface {
	Create(ctx context.Context, arg domain.CreateOrderParams) (domain.Order, error)
	Get(ctx context.Context, id int32) (domain.Order, error)
	ListByOwner(ctx context.Context, userID int32) ([]domain.Order, error)
	Update(ctx context.Context, id int32, patch domain.OrderPatch) (domain.Order, error)
}

// Handler facilitates order delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns order handler.
func NewHandler(ors Service) Handler {
	return Handler{service: ors}
}

type ownerRequest struct {
	UserID int32 `uri:"userId"`
}

// ListByOwner handles http request to list orders of a user.
func (h *Handler) ListByOwner(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri ownerRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.URIError(err))

		return
	}

	orders, err := h.service.ListByOwner(ctx, uri.UserID)
	if err != nil {
		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	if orders == nil {
		orders = []domain.Order{}
	}

	gctx.JSON(http.StatusOK, orders)
}

type createRequest struct {
	UserID       int32  `json:"userId" binding:"required,min=1"`
	Type         string `json:"type" binding:"required,oneof=buy sell"`
	FromCryptoID int32  `json:"fromCryptoId" binding:"required,min=1"`
	ToCryptoID   int32  `json:"toCryptoId" binding:"required,min=1"`
	Amount       string `json:"amount" binding:"required,decimal"`
	Price        string `json:"price" binding:"required,decimal"`
	Status       string `json:"status" binding:"omitempty,oneof=pending completed cancelled"`
}

// Create handles http request to place an order.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.ValidationError(err))

		return
	}

	order, err := h.service.Create(ctx, domain.CreateOrderParams{
		UserID:       req.UserID,
		Type:         req.Type,
		FromCryptoID: req.FromCryptoID,
		ToCryptoID:   req.ToCryptoID,
		Amount:       req.Amount,
		Price:        req.Price,
		Status:       req.Status,
	})
	if err != nil {
		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusCreated, order)
}

type uriRequest struct {
	ID int32 `uri:"id" binding:"required,min=1"`
}

// Get handles http request to get an order.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri uriRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.URIError(err))

		return
	}

	order, err := h.service.Get(ctx, uri.ID)
	if err != nil {
		if err == domain.ErrOrderNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, order)
}

type updateRequest struct {
	Amount *string `json:"amount" binding:"omitempty,decimal"`
	Price  *string `json:"price" binding:"omitempty,decimal"`
	Status *string `json:"status" binding:"omitempty,oneof=pending completed cancelled"`
}

// Update handles http request to amend or cancel an order.
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

	order, err := h.service.Update(ctx, uri.ID, domain.OrderPatch{
		Amount: req.Amount,
		Price:  req.Price,
		Status: req.Status,
	})
	if err != nil {
		if err == domain.ErrOrderNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, order)
}
