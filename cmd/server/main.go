package main

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/go-petr/pet-split/pkg/configpkg"

	"github.com/go-petr/pet-split/internal/expensedelivery"
	"github.com/go-petr/pet-split/internal/expenseservice"
	"github.com/go-petr/pet-split/internal/frienddelivery"
	"github.com/go-petr/pet-split/internal/friendservice"
	"github.com/go-petr/pet-split/internal/groupdelivery"
	"github.com/go-petr/pet-split/internal/groupservice"
	"github.com/go-petr/pet-split/internal/middleware"
	"github.com/go-petr/pet-split/internal/splitwise"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.GetLogger(config)

	if err := config.ValidateCredentials(); err != nil {
		logger.Warn().Err(err).Msg("tools will fail until splitwise credentials are configured")
	}

	server := createServer(logger, config)

	err = server.Run(config.ServerAddress)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot start server")
	}
}

func createServer(logger zerolog.Logger, config configpkg.Config) *gin.Engine {
	client := splitwise.New(splitwise.Config{
		APIKey:         config.APIKey,
		ConsumerKey:    config.ConsumerKey,
		ConsumerSecret: config.ConsumerSecret,
		BaseURL:        config.SplitwiseAddress,
	})

	friendService := friendservice.New(client)
	expenseService := expenseservice.New(client)
	groupService := groupservice.New(client)

	friendHandler := frienddelivery.NewHandler(friendService)
	expenseHandler := expensedelivery.NewHandler(expenseService)
	groupHandler := groupdelivery.NewHandler(groupService)

	gin.SetMode(gin.ReleaseMode)
	server := gin.New()

	server.Use(middleware.RequestLogger(logger))
	server.Use(middleware.Metrics())

	server.GET("/friends", friendHandler.List)
	server.GET("/expenses", expenseHandler.List)
	server.POST("/expenses", expenseHandler.Create)
	server.POST("/groups", groupHandler.Create)

	server.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return server
}
