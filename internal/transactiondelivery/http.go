// Package transactiondelivery manages delivery layer of transactions and swaps.
package transactiondelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/coin-wallet/internal/domain"
	"github.com/go-petr/coin-wallet/pkg/errorspkg"
	"github.com/go-petr/coin-wallet/pkg/web"
)

// Service provides service layer interface needed by transaction delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package transactiondelivery
type Service interface {
	Create(ctx context.Context, arg domain.CreateTransactionParams) (domain.Transaction, error)
	Get(ctx context.Context, id int32) (domain.Transaction, error)
	ListByOwner(ctx context.Context, userID int32) ([]domain.Transaction, error)
	Swap(ctx context.Context, arg domain.SwapParams) (domain.SwapResult, error)
	Update(ctx context.Context, id int32, patch domain.TransactionPatch) (domain.Transaction, error)
}

// Handler facilitates transaction delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns transaction handler.
func NewHandler(ts Service) Handler {
	return Handler{service: ts}
}

type ownerRequest struct {
	UserID int32 `uri:"userId"`
}

// ListByOwner handles http request to list transactions of a user.
func (h *Handler) ListByOwner(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri ownerRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.URIError(err))

		return
	}

	txs, err := h.service.ListByOwner(ctx, uri.UserID)
	if err != nil {
		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	if txs == nil {
		txs = []domain.Transaction{}
	}

	gctx.JSON(http.StatusOK, txs)
}

type createRequest struct {
	UserID   int32   `json:"userId" binding:"required,min=1"`
	Type     string  `json:"type" binding:"required,oneof=buy sell transfer receive swap"`
	CryptoID int32   `json:"cryptoId" binding:"required,min=1"`
	Amount   string  `json:"amount" binding:"required,decimal"`
	Price    *string `json:"price" binding:"omitempty,decimal"`
	Status   string  `json:"status" binding:"omitempty,oneof=pending completed failed"`
}

// Create handles http request to record a transaction.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.ValidationError(err))

		return
	}

	tx, err := h.service.Create(ctx, domain.CreateTransactionParams{
		UserID:   req.UserID,
		Type:     req.Type,
		CryptoID: req.CryptoID,
		Amount:   req.Amount,
		Price:    req.Price,
		Status:   req.Status,
	})
	if err != nil {
		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusCreated, tx)
}

type uriRequest struct {
	ID int32 `uri:"id" binding:"required,min=1"`
}

// Get handles http request to get a transaction.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri uriRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.URIError(err))

		return
	}

	tx, err := h.service.Get(ctx, uri.ID)
	if err != nil {
		if err == domain.ErrTransactionNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, tx)
}

type updateRequest struct {
	Amount *string `json:"amount" binding:"omitempty,decimal"`
	Price  *string `json:"price" binding:"omitempty,decimal"`
	Status *string `json:"status" binding:"omitempty,oneof=pending completed failed"`
}

// Update handles http request to change a transaction, typically its status.
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

	tx, err := h.service.Update(ctx, uri.ID, domain.TransactionPatch{
		Amount: req.Amount,
		Price:  req.Price,
		Status: req.Status,
	})
	if err != nil {
		if err == domain.ErrTransactionNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, tx)
}

type swapRequest struct {
	UserID       int32  `json:"userId" binding:"required,min=1"`
	FromCryptoID int32  `json:"fromCryptoId" binding:"required,min=1"`
	ToCryptoID   int32  `json:"toCryptoId" binding:"required,min=1"`
	Amount       string `json:"amount" binding:"required,decimal"`
}

// Swap handles http request to exchange one cryptocurrency for another.
func (h *Handler) Swap(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req swapRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.ValidationError(err))

		return
	}

	res, err := h.service.Swap(ctx, domain.SwapParams{
		UserID:       req.UserID,
		FromCryptoID: req.FromCryptoID,
		ToCryptoID:   req.ToCryptoID,
		Amount:       req.Amount,
	})
	if err != nil {
		if err == domain.ErrInvalidAmount {
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		}

		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, res)
}
