package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	gstorage "cloud.google.com/go/storage"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"google.golang.org/api/option"

	"github.com/justunlock/goapi/base/ctx"
	"github.com/justunlock/goapi/base/database/mongoclient"
	"github.com/justunlock/goapi/base/log"
	bValidator "github.com/justunlock/goapi/base/validator"
	"github.com/justunlock/goapi/domain"
	"github.com/justunlock/goapi/domain/unlock"
	mmiddleware "github.com/justunlock/goapi/middleware"
	"github.com/justunlock/goapi/service/chain"
	"github.com/justunlock/goapi/service/coinbase"
	"github.com/justunlock/goapi/service/ens"
	"github.com/justunlock/goapi/service/query"
	"github.com/justunlock/goapi/service/storage"
	auth_delivery "github.com/justunlock/goapi/stores/auth/delivery/http"
	auth_middleware "github.com/justunlock/goapi/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/justunlock/goapi/stores/auth/usecase"
	hc_delivery "github.com/justunlock/goapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/justunlock/goapi/stores/healthcheck/repository"
	hc_usecase "github.com/justunlock/goapi/stores/healthcheck/usecase"
	listing_delivery "github.com/justunlock/goapi/stores/listing/delivery/http"
	listing_repository "github.com/justunlock/goapi/stores/listing/repository"
	listing_usecase "github.com/justunlock/goapi/stores/listing/usecase"
	purchase_delivery "github.com/justunlock/goapi/stores/purchase/delivery/http"
	purchase_repository "github.com/justunlock/goapi/stores/purchase/repository"
	purchase_usecase "github.com/justunlock/goapi/stores/purchase/usecase"
	unlock_delivery "github.com/justunlock/goapi/stores/unlock/delivery/http"
	unlock_usecase "github.com/justunlock/goapi/stores/unlock/usecase"
)

func init() {
	configPath := pflag.String("config", "infra/configs/config.yaml", "path to config file")
	pflag.Parse()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(*configPath)
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
	if err := mongoClient.EnsureIndexes(); err != nil {
		context.WithField("err", err).Panic("mongoClient.EnsureIndexes failed")
	}
	q := query.New(mongoClient, checkIndex)

	// init chain service
	chainId := domain.ChainId(viper.GetInt32("deployment.chainId"))
	chainService, err := chain.NewClient(context, &chain.ClientCfg{
		RpcUrls: map[domain.ChainId]string{
			chainId: viper.GetString("deployment.rpcUrl"),
		},
	})
	if err != nil {
		context.WithField("err", err).Warn("chainService started with error")
	}

	deployment := unlock.DeploymentCfg{
		ChainId:            chainId,
		ContractAddress:    domain.Address(viper.GetString("deployment.contract")).ToLower(),
		StablecoinAddress:  domain.Address(viper.GetString("deployment.stablecoin")).ToLower(),
		StablecoinDecimals: viper.GetInt32("deployment.stablecoinDecimals"),
		NativeDecimals:     18,
	}

	oracle := coinbase.NewClient(&coinbase.ClientCfg{
		HttpClient: http.Client{},
		Timeout:    viper.GetDuration("coinbase.timeout"),
		Pair:       viper.GetString("coinbase.pair"),
	})

	// ens on ethereum
	ensService := ens.New(viper.GetString("ens.rpcUrl"))

	// init cloud storage
	context.Info("init cloud storage")
	var storageOpts []option.ClientOption
	if credsFile := viper.GetString("storage.credentialsFile"); credsFile != "" {
		storageOpts = append(storageOpts, option.WithCredentialsFile(credsFile))
	}
	storageClient, err := gstorage.NewClient(context, storageOpts...)
	if err != nil {
		context.WithField("err", err).Panic("storage.NewClient failed")
	}
	signerKey, err := os.ReadFile(viper.GetString("storage.signerKeyFile"))
	if err != nil {
		context.WithField("err", err).Panic("read storage signer key failed")
	}
	storageService := storage.NewCloudStorage(&storage.CloudStorageCfg{
		Client:      storageClient,
		BucketName:  viper.GetString("storage.bucket"),
		Timeout:     30 * time.Second,
		SignerEmail: viper.GetString("storage.signerEmail"),
		SignerKey:   signerKey,
		UrlTtl:      viper.GetDuration("storage.urlTtl"),
	})

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(mongoClient)
	listingRepo := listing_repository.NewListing(q)
	secretRepo := listing_repository.NewSecret(q)
	purchaseRepo := purchase_repository.New(q)

	hc := hc_usecase.New(hcRepo)
	auth := auth_usecase.New(viper.GetString("auth.jwtSecret"))
	listingUsecase := listing_usecase.New(listingRepo, secretRepo, storageService, ensService)
	purchaseUsecase := purchase_usecase.New(purchaseRepo, listingRepo, ensService)
	unlockUsecase := unlock_usecase.New(deployment, listingRepo, secretRepo, purchaseRepo, chainService, oracle, storageService)

	adminAddresses := viper.GetStringSlice("admin.addresses")
	authMiddleware := auth_middleware.New(auth, adminAddresses)

	hc_delivery.New(e, hc)
	auth_delivery.New(e, auth)
	listing_delivery.New(e, listingUsecase, authMiddleware)
	purchase_delivery.New(e, purchaseUsecase, listingUsecase, authMiddleware)
	unlock_delivery.New(e, unlockUsecase)

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
