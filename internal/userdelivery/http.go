// Package userdelivery manages delivery layer of users.
package userdelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/coin-wallet/internal/domain"
	"github.com/go-petr/coin-wallet/pkg/errorspkg"
	"github.com/go-petr/coin-wallet/pkg/web"
)

// Service provides service layer interface needed by user delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package userdelivery
type Service interface {
	Create(ctx context.Context, in domain.CreateUserInput) (domain.User, error)
	Get(ctx context.Context, id int32) (domain.User, error)
	Update(ctx context.Context, id int32, patch domain.UserPatch) (domain.User, error)
}

// Handler facilitates user delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns user handler.
func NewHandler(us Service) Handler {
	return Handler{service: us}
}

type createRequest struct {
	Username         string  `json:"username" binding:"required,alphanum"`
	Password         string  `json:"password" binding:"required,min=6"`
	Email            string  `json:"email" binding:"required,email"`
	FirstName        string  `json:"firstName" binding:"required"`
	LastName         string  `json:"lastName" binding:"required"`
	Avatar           *string `json:"avatar" binding:"omitempty,url"`
	TotalBalance     string  `json:"totalBalance" binding:"omitempty,decimal"`
	AvailableBalance string  `json:"availableBalance" binding:"omitempty,decimal"`
}

// Create handles http request to register a user.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.ValidationError(err))

		return
	}

	user, err := h.service.Create(ctx, domain.CreateUserInput{
		Username:         req.Username,
		Password:         req.Password,
		Email:            req.Email,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Avatar:           req.Avatar,
		TotalBalance:     req.TotalBalance,
		AvailableBalance: req.AvailableBalance,
	})
	if err != nil {
		switch err {
		case domain.ErrUsernameAlreadyExists, domain.ErrEmailAlreadyExists:
			gctx.JSON(http.StatusConflict, web.Error(err))
			return
		}

		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusCreated, user)
}

type uriRequest struct {
	UserID int32 `uri:"userId" binding:"required,min=1"`
}

// Get handles http request to get a user profile.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri uriRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.URIError(err))

		return
	}

	user, err := h.service.Get(ctx, uri.UserID)
	if err != nil {
		if err == domain.ErrUserNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, user)
}

type updateRequest struct {
	Email            *string `json:"email" binding:"omitempty,email"`
	FirstName        *string `json:"firstName" binding:"omitempty,min=1"`
	LastName         *string `json:"lastName" binding:"omitempty,min=1"`
	Avatar           *string `json:"avatar" binding:"omitempty,url"`
	TotalBalance     *string `json:"totalBalance" binding:"omitempty,decimal"`
	AvailableBalance *string `json:"availableBalance" binding:"omitempty,decimal"`
}

// Update handles http request to change user profile fields.
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

	user, err := h.service.Update(ctx, uri.UserID, domain.UserPatch{
		Email:            req.Email,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Avatar:           req.Avatar,
		TotalBalance:     req.TotalBalance,
		AvailableBalance: req.AvailableBalance,
	})
	if err != nil {
		switch err {
		case domain.ErrUserNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		case domain.ErrEmailAlreadyExists:
			gctx.JSON(http.StatusConflict, web.Error(err))
			return
		}

		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, user)
}
