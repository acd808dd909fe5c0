package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quote-and-translate/internal/config"
	"quote-and-translate/internal/logger"
	"quote-and-translate/internal/modules/quote"
	"quote-and-translate/internal/modules/translate"
	"quote-and-translate/pkg/location"
	"quote-and-translate/pkg/notify"
	"quote-and-translate/pkg/translator"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	appLogger, err := logger.New()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer appLogger.Sync()

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		appLogger.Fatal("failed to load aws config", zap.Error(err))
	}

	locationClient := location.NewClient(awsCfg)
	translatorClient := translator.NewClient(awsCfg)

	var notifier quote.Notifier
	if cfg.ContactNotifySender != "" && cfg.ContactNotifyRecipient != "" {
		notifier = notify.NewClient(awsCfg, cfg.ContactNotifySender, cfg.ContactNotifyRecipient)
		appLogger.Info("contact lead notification enabled",
			zap.String("recipient", cfg.ContactNotifyRecipient))
	}

	quoteSvc := quote.NewService(locationClient, locationClient, quote.Settings{
		PlaceIndex:      cfg.LocationPlaceIndex,
		RouteCalculator: cfg.LocationRouteCalculator,
		OriginAddress:   cfg.QuoteOriginAddress,
		WindowStartHour: cfg.QuoteWindowStartHour,
		WindowEndHour:   cfg.QuoteWindowEndHour,
	}, appLogger)
	quoteHandler := quote.NewHandler(quoteSvc, notifier, appLogger)

	translateSvc := translate.NewService(translatorClient, appLogger)
	translateHandler := translate.NewHandler(translateSvc)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Origins(),
		AllowMethods: []string{http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "UP"})
	})

	api := e.Group("")
	quoteHandler.RegisterRoutes(api)
	translateHandler.RegisterRoutes(api)

	go func() {
		appLogger.Info("starting server", zap.String("port", cfg.ServerPort))
		if err := e.Start(":" + cfg.ServerPort); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("listen failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		appLogger.Fatal("server forced to shutdown", zap.Error(err))
	}

	appLogger.Info("server exiting")
}
