package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/openmarket/goapi/base/ctx"
	"github.com/openmarket/goapi/base/database/mongoclient"
	"github.com/openmarket/goapi/base/database/redisclient"
	"github.com/openmarket/goapi/base/log"
	bValidator "github.com/openmarket/goapi/base/validator"
	mmiddleware "github.com/openmarket/goapi/middleware"
	"github.com/openmarket/goapi/service/chain"
	"github.com/openmarket/goapi/service/chain/contract"
	"github.com/openmarket/goapi/service/payout"
	"github.com/openmarket/goapi/service/query"
	"github.com/openmarket/goapi/service/redis"
	auth_delivery "github.com/openmarket/goapi/stores/auth/delivery/http"
	auth_middleware "github.com/openmarket/goapi/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/openmarket/goapi/stores/auth/usecase"
	hc_delivery "github.com/openmarket/goapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/openmarket/goapi/stores/healthcheck/repository"
	hc_usecase "github.com/openmarket/goapi/stores/healthcheck/usecase"
	marketplace_delivery "github.com/openmarket/goapi/stores/marketplace/delivery/http"
	marketplace_repository "github.com/openmarket/goapi/stores/marketplace/repository"
	marketplace_usecase "github.com/openmarket/goapi/stores/marketplace/usecase"
)

func init() {
	configFile := pflag.String("config", "infra/configs/config.yaml", "path of config file")
	pflag.Parse()
	if err := viper.BindPFlags(pflag.CommandLine); err != nil {
		panic(err)
	}

	viper.SetConfigType("yaml")
	viper.SetConfigFile(*configFile)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient, checkIndex)

	// init redis service
	context.Info("init redis cache")
	redisCacheName := viper.GetString("redis_cache.name")
	redisCacheURI := viper.GetString("redis_cache.uri")
	redisCachePwd := viper.GetString("redis_cache.password")
	redisCachePool := redisclient.MustConnectRedis(redisCacheURI, redisCachePwd)
	redisCache := redis.New(redisCacheName, redisCachePool)

	mmiddleware.SetupCache(redisCache)

	// init chain service
	networks := viper.Sub("networks")
	keys := networks.AllSettings()
	rpcs := make(map[int32]string)
	operatorKeys := make(map[int32]string)
	for k := range keys {
		chainId := networks.GetInt32(fmt.Sprintf("%s.chainId", k))
		rpcs[chainId] = networks.GetString(fmt.Sprintf("%s.rpcUrl", k))
		operatorKeys[chainId] = networks.GetString(fmt.Sprintf("%s.operatorKey", k))
	}
	chainService, err := chain.NewClient(context, &chain.ClientCfg{
		RpcUrls:      rpcs,
		OperatorKeys: operatorKeys,
	})
	if err != nil {
		context.WithField("err", err).Warn("chainService started with error")
	}
	erc721Service := contract.NewErc721(chainService)

	payoutClient := payout.NewClient(&payout.ClientCfg{
		HttpClient: http.Client{},
		Url:        viper.GetString("payout.url"),
		ApiKey:     viper.GetString("payout.apikey"),
		Timeout:    viper.GetDuration("payout.timeout"),
	})

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(mongoClient, redisCache)
	listingRepo := marketplace_repository.NewListingRepo(q)
	proceedsRepo := marketplace_repository.NewProceedsRepo(q)
	activityRepo := marketplace_repository.NewActivityRepo(q)

	healthcheck := hc_usecase.New(hcRepo)
	auth := auth_usecase.New(viper.GetString("jwt.secret"), viper.GetString("jwt.signingMsg"))
	marketplace := marketplace_usecase.New(&marketplace_usecase.MarketplaceUseCaseCfg{
		ListingRepo:  listingRepo,
		ProceedsRepo: proceedsRepo,
		ActivityRepo: activityRepo,
		Erc721:       erc721Service,
		Payout:       payoutClient,
	})

	authMiddleware := auth_middleware.New(auth)

	hc_delivery.New(e, healthcheck)
	auth_delivery.New(e, auth, viper.GetString("jwt.signingMsg"))
	marketplace_delivery.New(e, marketplace, authMiddleware.Auth())

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
