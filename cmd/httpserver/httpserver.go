// Package httpserver manages server creation and api routing.
package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	ginprom "github.com/zsais/go-gin-prometheus"
	"golang.org/x/time/rate"

	"github.com/go-petr/coin-wallet/internal/assetdelivery"
	"github.com/go-petr/coin-wallet/internal/assetrepo"
	"github.com/go-petr/coin-wallet/internal/assetservice"
	"github.com/go-petr/coin-wallet/internal/cryptodelivery"
	"github.com/go-petr/coin-wallet/internal/cryptorepo"
	"github.com/go-petr/coin-wallet/internal/cryptoservice"
	"github.com/go-petr/coin-wallet/internal/memdb"
	"github.com/go-petr/coin-wallet/internal/middleware"
	"github.com/go-petr/coin-wallet/internal/orderdelivery"
	"github.com/go-petr/coin-wallet/internal/orderrepo"
	"github.com/go-petr/coin-wallet/internal/orderservice"
	"github.com/go-petr/coin-wallet/internal/seed"
	"github.com/go-petr/coin-wallet/internal/transactiondelivery"
	"github.com/go-petr/coin-wallet/internal/transactionrepo"
	"github.com/go-petr/coin-wallet/internal/transactionservice"
	"github.com/go-petr/coin-wallet/internal/userdelivery"
	"github.com/go-petr/coin-wallet/internal/userrepo"
	"github.com/go-petr/coin-wallet/internal/userservice"
	"github.com/go-petr/coin-wallet/pkg/configpkg"
	"github.com/go-petr/coin-wallet/pkg/ratelimit"
	"github.com/go-petr/coin-wallet/pkg/web"
)

// ErrRouteNotFound is returned for unknown routes.
var ErrRouteNotFound = errors.New("route not found")

// Server holds the store, handlers router and configuration.
type Server struct {
	Store  *memdb.DB
	Engine *gin.Engine
	Config configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
//
// ctx bounds background work such as the rate limiter janitor.
func New(ctx context.Context, store *memdb.DB, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	userService := userservice.New(userrepo.NewRepoMem(store))
	cryptoService := cryptoservice.New(cryptorepo.NewRepoMem(store))
	assetService := assetservice.New(assetrepo.NewRepoMem(store))
	transactionService := transactionservice.New(transactionrepo.NewRepoMem(store))
	orderService := orderservice.New(orderrepo.NewRepoMem(store))

	if config.SeedData {
		if err := seed.Run(logger.WithContext(ctx), cryptoService, userService); err != nil {
			return nil, err
		}
	}

	userHandler := userdelivery.NewHandler(userService)
	cryptoHandler := cryptodelivery.NewHandler(cryptoService)
	assetHandler := assetdelivery.NewHandler(assetService)
	transactionHandler := transactiondelivery.NewHandler(transactionService)
	orderHandler := orderdelivery.NewHandler(orderService)

	if err := web.SetupValidator(); err != nil {
		return nil, errors.New("cannot register decimal validator")
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	if config.MetricsEnabled {
		p := ginprom.NewPrometheus("coinwallet")
		p.Use(engine)
	}

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())
	engine.Use(corsMiddleware(config.CORSAllowedOrigins))

	if config.RateLimitRPS > 0 {
		limits := ratelimit.NewStore(rate.Limit(config.RateLimitRPS), config.RateLimitBurst, 10*time.Minute)
		limits.StartJanitor(ctx, time.Minute)
		engine.Use(middleware.RateLimit(limits))
	}

	engine.NoRoute(func(gctx *gin.Context) {
		gctx.JSON(http.StatusNotFound, web.Error(ErrRouteNotFound))
	})

	api := engine.Group("/api")

	api.GET("/cryptocurrencies", cryptoHandler.List)
	api.POST("/cryptocurrencies", cryptoHandler.Create)
	api.GET("/cryptocurrencies/:id", cryptoHandler.Get)
	api.PATCH("/cryptocurrencies/:id", cryptoHandler.Update)

	api.POST("/users", userHandler.Create)
	api.GET("/users/:userId", userHandler.Get)
	api.PATCH("/users/:userId", userHandler.Update)

	api.GET("/users/:userId/assets", assetHandler.ListByOwner)
	api.POST("/assets", assetHandler.Create)
	api.GET("/assets/:id", assetHandler.Get)
	api.PATCH("/assets/:id", assetHandler.Update)

	api.GET("/users/:userId/transactions", transactionHandler.ListByOwner)
	api.POST("/transactions", transactionHandler.Create)
	api.GET("/transactions/:id", transactionHandler.Get)
	api.PATCH("/transactions/:id", transactionHandler.Update)
	api.POST("/swap", transactionHandler.Swap)

	api.GET("/users/:userId/orders", orderHandler.ListByOwner)
	api.POST("/orders", orderHandler.Create)
	api.GET("/orders/:id", orderHandler.Get)
	api.PATCH("/orders/:id", orderHandler.Update)

	server := &Server{
		Store:  store,
		Engine: engine,
		Config: config,
	}

	return server, nil
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	if len(origins) == 0 {
		return cors.Default()
	}

	return cors.New(cors.Config{
		AllowOrigins:  origins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	})
}
