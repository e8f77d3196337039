// Package cryptodelivery manages delivery layer of cryptocurrencies.
package cryptodelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/coin-wallet/internal/domain"
	"github.com/go-petr/coin-wallet/pkg/errorspkg"
	"github.com/go-petr/coin-wallet/pkg/web"
)

// Service provides service layer interface needed by cryptocurrency delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package cryptodelivery
type Service interface {
	Create(ctx context.Context, arg domain.CreateCryptocurrencyParams) (domain.Cryptocurrency, error)
	Get(ctx context.Context, id int32) (domain.Cryptocurrency, error)
	List(ctx context.Context) ([]domain.Cryptocurrency, error)
	Update(ctx context.Context, id int32, patch domain.CryptocurrencyPatch) (domain.Cryptocurrency, error)
}

// Handler facilitates cryptocurrency delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns cryptocurrency handler.
func NewHandler(cs Service) Handler {
	return Handler{service: cs}
}

// List handles http request to list all cryptocurrencies.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	cryptos, err := h.service.List(ctx)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	if cryptos == nil {
		cryptos = []domain.Cryptocurrency{}
	}

	gctx.JSON(http.StatusOK, cryptos)
}

type uriRequest struct {
	ID int32 `uri:"id" binding:"required,min=1"`
}

// Get handles http request to get a cryptocurrency.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri uriRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.URIError(err))

		return
	}

	crypto, err := h.service.Get(ctx, uri.ID)
	if err != nil {
		if err == domain.ErrCryptocurrencyNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, crypto)
}

type createRequest struct {
	Symbol    string  `json:"symbol" binding:"required,alphanum"`
	Name      string  `json:"name" binding:"required"`
	Icon      *string `json:"icon" binding:"omitempty,url"`
	Price     string  `json:"price" binding:"required,decimal"`
	Change24h string  `json:"change24h" binding:"required,decimal"`
	MarketCap *string `json:"marketCap" binding:"omitempty,decimal"`
}

// Create handles http request to list a new cryptocurrency.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.ValidationError(err))

		return
	}

	crypto, err := h.service.Create(ctx, domain.CreateCryptocurrencyParams{
		Symbol:    req.Symbol,
		Name:      req.Name,
		Icon:      req.Icon,
		Price:     req.Price,
		Change24h: req.Change24h,
		MarketCap: req.MarketCap,
	})
	if err != nil {
		if err == domain.ErrSymbolAlreadyExists {
			gctx.JSON(http.StatusConflict, web.Error(err))
			return
		}

		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusCreated, crypto)
}

type updateRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=1"`
	Icon      *string `json:"icon" binding:"omitempty,url"`
	Price     *string `json:"price" binding:"omitempty,decimal"`
	Change24h *string `json:"change24h" binding:"omitempty,decimal"`
	MarketCap *string `json:"marketCap" binding:"omitempty,decimal"`
}

// Update handles http request to change market data of a cryptocurrency.
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

	crypto, err := h.service.Update(ctx, uri.ID, domain.CryptocurrencyPatch{
		Name:      req.Name,
		Icon:      req.Icon,
		Price:     req.Price,
		Change24h: req.Change24h,
		MarketCap: req.MarketCap,
	})
	if err != nil {
		if err == domain.ErrCryptocurrencyNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, crypto)
}
